// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/envoyproxy/gemini-dispatch/dispatch"
	"github.com/envoyproxy/gemini-dispatch/translator"
	"github.com/envoyproxy/gemini-dispatch/transport"
)

// generate sends one generate content request and copies the raw response
// body to stdout. The transport client is chosen from the available
// credentials: an API key from the environment selects the consumer
// platform, anything else falls back to Application Default Credentials and
// the enterprise platform.
func generate(ctx context.Context, c cmdGenerate, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := readConnectionConfig(c.Config)
	if err != nil {
		return err
	}

	var client transport.Client
	if key := cfg.apiKey(); key != "" {
		client = transport.NewAPIKeyClient(key, nil)
	} else {
		if client, err = transport.NewCredentialsClient(ctx, cfg.ProjectID, nil); err != nil {
			return err
		}
	}

	conn := dispatch.NewConnection(cfg.dispatchConfig(c.Model), client, &transport.RetryCaller{}, logger)
	resp, err := conn.Request(ctx, translator.Prompt(c.Prompt), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider returned status %s: %s", resp.Status, body)
	}
	_, err = io.Copy(stdout, resp.Body)
	return err
}
