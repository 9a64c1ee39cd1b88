// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package dispatch

import "github.com/envoyproxy/gemini-dispatch/transport"

// Platform identifies which published deployment of the model family a call
// targets.
type Platform string

const (
	// PlatformConsumer is the API-key authenticated, publicly hosted
	// Generative Language API deployment.
	PlatformConsumer Platform = "gai"
	// PlatformEnterprise is the IAM-authenticated, regionally hosted Vertex
	// AI deployment.
	PlatformEnterprise Platform = "gcp"
)

// ResolvePlatform computes the platform for one call: the explicit override
// when set, else consumer for API-key credentials, else enterprise. It is
// evaluated fresh on every call that needs it; a connection holds no cached
// platform state.
func ResolvePlatform(kind transport.CredentialKind, override Platform) Platform {
	if override != "" {
		return override
	}
	if kind == transport.CredentialAPIKey {
		return PlatformConsumer
	}
	return PlatformEnterprise
}
