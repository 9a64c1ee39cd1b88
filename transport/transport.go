// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

// Package transport performs the authenticated HTTP attempts the dispatch
// core delegates to. A Client stamps credentials on a request and makes
// exactly one attempt; a Caller wraps attempts in a retry and cancellation
// policy. The dispatch core composes the two and never retries on its own.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

// CredentialKind tags the kind of credential a Client is bound to. The
// dispatch core consumes it to derive the default platform for a call.
type CredentialKind string

const (
	// CredentialAPIKey is a plain API key for the consumer deployment.
	CredentialAPIKey CredentialKind = "apiKey"
	// CredentialGoogleAuth is an IAM credential for the enterprise
	// deployment.
	CredentialGoogleAuth CredentialKind = "googleAuth"
)

// Request describes one outbound HTTP attempt.
type Request struct {
	URL    string
	Method string
	Header http.Header
	Body   []byte
	// Stream indicates the caller will consume the response body
	// incrementally rather than reading it whole.
	Stream bool
}

// Client stamps credentials on a request and performs exactly one HTTP
// attempt. Implementations must be safe for concurrent use.
type Client interface {
	// Do performs a single attempt. Network failures and non-2xx statuses
	// are returned as-is; retrying is the Caller's concern.
	Do(ctx context.Context, req *Request) (*http.Response, error)
	// ProjectID resolves the cloud project bound to the client's credential.
	// It fails when no project can be resolved, which is fatal for calls
	// that need a project-scoped URL.
	ProjectID(ctx context.Context) (string, error)
	// Kind reports the kind of credential the client is bound to.
	Kind() CredentialKind
}

// newHTTPRequest builds the http.Request for one attempt. The method
// defaults to POST, which is the only verb the generateContent family uses.
func newHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodPost
	}
	hr, err := http.NewRequestWithContext(ctx, method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for key, values := range req.Header {
		for _, value := range values {
			hr.Header.Add(key, value)
		}
	}
	return hr, nil
}
