// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/envoyproxy/gemini-dispatch/dispatch"
)

// connectionConfig is the yaml schema of the configuration file consumed by
// the generate command. Every field is optional; connection-level defaults
// apply per field.
type connectionConfig struct {
	Model      string `yaml:"model,omitempty"`
	Platform   string `yaml:"platform,omitempty"`
	Endpoint   string `yaml:"endpoint,omitempty"`
	Location   string `yaml:"location,omitempty"`
	APIVersion string `yaml:"apiVersion,omitempty"`
	// ProjectID overrides credential-derived project resolution for
	// enterprise calls.
	ProjectID string `yaml:"projectID,omitempty"`
	// APIKeyEnv names the environment variable holding the consumer API
	// key. Defaults to GEMINI_API_KEY. The key itself never appears in the
	// configuration file.
	APIKeyEnv string `yaml:"apiKeyEnv,omitempty"`
	Streaming bool   `yaml:"streaming,omitempty"`
}

const (
	defaultModel     = "gemini-pro"
	defaultAPIKeyEnv = "GEMINI_API_KEY"
)

// readConnectionConfig loads the yaml configuration from path. An empty path
// yields the zero configuration, leaving everything to defaults.
func readConnectionConfig(path string) (*connectionConfig, error) {
	cfg := &connectionConfig{}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}
	return cfg, nil
}

// dispatchConfig projects the yaml configuration onto the connection
// configuration. model overrides the configured model when non-empty.
func (c *connectionConfig) dispatchConfig(model string) dispatch.Config {
	if model == "" {
		model = c.Model
	}
	if model == "" {
		model = defaultModel
	}
	return dispatch.Config{
		Model:      model,
		Platform:   dispatch.Platform(c.Platform),
		Endpoint:   c.Endpoint,
		Location:   c.Location,
		APIVersion: c.APIVersion,
		Streaming:  c.Streaming,
	}
}

// apiKey resolves the consumer API key from the environment, if present.
func (c *connectionConfig) apiKey() string {
	env := c.APIKeyEnv
	if env == "" {
		env = defaultAPIKeyEnv
	}
	return os.Getenv(env)
}
