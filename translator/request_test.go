// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package translator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestFormatRequestBasic(t *testing.T) {
	req, err := FormatRequest(nil, Input{Messages: []Message{
		{Role: genai.RoleUser, Text: "Hello"},
		{Role: genai.RoleModel, Text: "Hi, how can I help?"},
		{Text: "What is the weather like?"},
	}}, nil)
	require.NoError(t, err)

	require.Len(t, req.Contents, 3)
	require.Equal(t, "user", req.Contents[0].Role)
	require.Equal(t, "model", req.Contents[1].Role)
	// Empty role defaults to user.
	require.Equal(t, "user", req.Contents[2].Role)
	require.Equal(t, "Hello", req.Contents[0].Parts[0].Text)
	require.NotNil(t, req.GenerationConfig)
}

func TestFormatRequestFieldPresence(t *testing.T) {
	tests := []struct {
		name       string
		params     *GenerationParameters
		wantFields []string
		skipFields []string
	}{
		{
			name:       "nil parameters",
			params:     nil,
			wantFields: []string{"contents", "generationConfig"},
			skipFields: []string{"tools", "safetySettings"},
		},
		{
			name:       "empty lists are omitted, not sent empty",
			params:     &GenerationParameters{Tools: []Tool{}, SafetySettings: []*genai.SafetySetting{}},
			wantFields: []string{"contents", "generationConfig"},
			skipFields: []string{"tools", "safetySettings"},
		},
		{
			name: "non-empty lists are present",
			params: &GenerationParameters{
				Tools: []Tool{NewFunctionTool("t", "", map[string]any{"type": "object"})},
				SafetySettings: []*genai.SafetySetting{
					{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_ONLY_HIGH"},
				},
			},
			wantFields: []string{"contents", "generationConfig", "tools", "safetySettings"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := FormatRequest(TextFormatter{}, Prompt("hi"), tc.params)
			require.NoError(t, err)

			raw, err := json.Marshal(req)
			require.NoError(t, err)
			var payload map[string]any
			require.NoError(t, json.Unmarshal(raw, &payload))

			for _, field := range tc.wantFields {
				require.Contains(t, payload, field)
			}
			for _, field := range tc.skipFields {
				require.NotContains(t, payload, field)
			}
		})
	}
}

func TestFormatRequestToolGroup(t *testing.T) {
	req, err := FormatRequest(nil, Prompt("hi"), &GenerationParameters{
		Tools: []Tool{
			NewFunctionTool("a", "", map[string]any{"type": "object"}),
			NewFunctionTool("b", "", map[string]any{"type": "object"}),
		},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	var payload struct {
		Tools []struct {
			FunctionDeclarations []struct {
				Name string `json:"name"`
			} `json:"functionDeclarations"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload.Tools, 1)
	require.Len(t, payload.Tools[0].FunctionDeclarations, 2)
	require.Equal(t, "a", payload.Tools[0].FunctionDeclarations[0].Name)
	require.Equal(t, "b", payload.Tools[0].FunctionDeclarations[1].Name)
}
