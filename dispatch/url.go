// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package dispatch

import (
	"context"
	"fmt"

	"github.com/envoyproxy/gemini-dispatch/translator"
)

const (
	// consumerHost is the fixed public host of the consumer deployment.
	consumerHost = "generativelanguage.googleapis.com"

	// modelPublisher scopes enterprise model paths. Only first-party models
	// are dispatched through this library.
	modelPublisher = "google"

	defaultLocation   = "us-central1"
	defaultAPIVersion = "v1"
)

// defaultEndpoint is the regional enterprise endpoint for a location.
func defaultEndpoint(location string) string {
	return fmt.Sprintf("%s-aiplatform.googleapis.com", location)
}

// buildURL constructs the target URL for one call on the given platform.
// Method-suffix resolution fails for unknown model families before any
// network activity; on the enterprise path the project lookup may fail,
// which is fatal for the call.
//
// Unrecognized platform values take the enterprise branch: an override
// carrying an unknown tag fails open toward the regional deployment rather
// than rejecting the call.
func (c *Connection) buildURL(ctx context.Context, platform Platform) (string, error) {
	suffix, err := translator.MethodSuffix(c.cfg.Model)
	if err != nil {
		return "", err
	}

	switch platform {
	case PlatformConsumer:
		return fmt.Sprintf("https://%s/%s/models/%s:%s",
			consumerHost, c.cfg.APIVersion, c.cfg.Model, suffix), nil
	default:
		projectID, err := c.client.ProjectID(ctx)
		if err != nil {
			return "", fmt.Errorf("resolving project for enterprise call: %w", err)
		}
		return fmt.Sprintf("https://%s/%s/projects/%s/locations/%s/publishers/%s/models/%s:%s",
			c.cfg.Endpoint, c.cfg.APIVersion, projectID, c.cfg.Location, modelPublisher, c.cfg.Model, suffix), nil
	}
}
