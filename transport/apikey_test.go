// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package transport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIKeyClientDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		// The key lives in a header, never in the URL.
		require.Empty(t, r.URL.Query().Get("key"))
		require.Equal(t, "secret-key", r.Header.Get("x-goog-api-key"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"contents":[]}`, string(body))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewAPIKeyClient("secret-key", nil)
	resp, err := client.Do(t.Context(), &Request{
		URL:    srv.URL,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   []byte(`{"contents":[]}`),
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIKeyClientProjectID(t *testing.T) {
	client := NewAPIKeyClient("secret-key", nil)
	_, err := client.ProjectID(t.Context())
	require.ErrorIs(t, err, ErrNoProject)
}

func TestAPIKeyClientKind(t *testing.T) {
	require.Equal(t, CredentialAPIKey, NewAPIKeyClient("k", nil).Kind())
}
