// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package transport

import (
	"context"
	"errors"
	"net/http"
)

// headerAPIKey carries the API key on consumer-platform requests. The key
// goes in a header, never in the URL, so it cannot leak through access logs.
const headerAPIKey = "x-goog-api-key"

// ErrNoProject is returned by clients whose credential is not bound to a
// cloud project.
var ErrNoProject = errors.New("credential is not bound to a project")

// APIKeyClient authenticates against the consumer deployment with a plain
// API key.
type APIKeyClient struct {
	apiKey     string
	httpClient *http.Client
}

// NewAPIKeyClient builds an APIKeyClient. A nil httpClient falls back to
// http.DefaultClient.
func NewAPIKeyClient(apiKey string, httpClient *http.Client) *APIKeyClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIKeyClient{apiKey: apiKey, httpClient: httpClient}
}

// Do implements [Client.Do].
func (c *APIKeyClient) Do(ctx context.Context, req *Request) (*http.Response, error) {
	hr, err := newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	hr.Header.Set(headerAPIKey, c.apiKey)
	return c.httpClient.Do(hr)
}

// ProjectID implements [Client.ProjectID]. API keys carry no project
// binding; consumer-platform URLs never need one.
func (c *APIKeyClient) ProjectID(context.Context) (string, error) {
	return "", ErrNoProject
}

// Kind implements [Client.Kind].
func (c *APIKeyClient) Kind() CredentialKind { return CredentialAPIKey }
