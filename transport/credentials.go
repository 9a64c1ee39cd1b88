// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package transport

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/compute/metadata"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/sync/singleflight"
)

// cloudPlatformScope is the OAuth scope the enterprise deployment requires.
const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// CredentialsClient authenticates against the enterprise deployment with
// Google IAM credentials, resolved through Application Default Credentials.
type CredentialsClient struct {
	tokenSource oauth2.TokenSource
	// credsProjectID is the project carried by the resolved credentials,
	// empty when the credential material has none (e.g. user credentials).
	credsProjectID string
	// projectID overrides credential-derived project resolution when set.
	projectID  string
	httpClient *http.Client
	group      singleflight.Group
}

// NewCredentialsClient resolves Application Default Credentials and builds a
// client over them. projectID overrides the project carried by the
// credentials when non-empty. A nil httpClient falls back to
// http.DefaultClient.
func NewCredentialsClient(ctx context.Context, projectID string, httpClient *http.Client) (*CredentialsClient, error) {
	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("resolving default credentials: %w", err)
	}
	return NewCredentialsClientFromTokenSource(creds.TokenSource, creds.ProjectID, projectID, httpClient), nil
}

// NewCredentialsClientFromTokenSource builds a client over an existing token
// source, bypassing Application Default Credentials resolution.
func NewCredentialsClientFromTokenSource(ts oauth2.TokenSource, credsProjectID, projectID string, httpClient *http.Client) *CredentialsClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CredentialsClient{
		tokenSource:    ts,
		credsProjectID: credsProjectID,
		projectID:      projectID,
		httpClient:     httpClient,
	}
}

// Do implements [Client.Do]. The bearer token is fetched per attempt so the
// token source can rotate expiring tokens underneath.
func (c *CredentialsClient) Do(ctx context.Context, req *Request) (*http.Response, error) {
	token, err := c.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("fetching access token: %w", err)
	}
	hr, err := newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	token.SetAuthHeader(hr)
	return c.httpClient.Do(hr)
}

// ProjectID implements [Client.ProjectID]. The project comes from the
// explicit override, then the credential material, then the metadata server
// when running on GCE. Concurrent lookups share one metadata round trip.
func (c *CredentialsClient) ProjectID(ctx context.Context) (string, error) {
	if c.projectID != "" {
		return c.projectID, nil
	}
	if c.credsProjectID != "" {
		return c.credsProjectID, nil
	}
	v, err, _ := c.group.Do("projectID", func() (any, error) {
		if !metadata.OnGCE() {
			return nil, ErrNoProject
		}
		return metadata.ProjectIDWithContext(ctx)
	})
	if err != nil {
		return "", fmt.Errorf("resolving project for credentials: %w", err)
	}
	return v.(string), nil
}

// Kind implements [Client.Kind].
func (c *CredentialsClient) Kind() CredentialKind { return CredentialGoogleAuth }
