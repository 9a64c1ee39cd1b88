// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	type weather struct {
		Location string `json:"location"`
		Unit     string `json:"unit,omitempty"`
	}

	tests := []struct {
		name     string
		input    any
		expected map[string]any
		wantErr  bool
	}{
		{
			name:    "nil schema",
			input:   nil,
			wantErr: true,
		},
		{
			name: "schema map",
			input: map[string]any{
				"type":       "object",
				"properties": map[string]any{"location": map[string]any{"type": "string"}},
			},
			expected: map[string]any{
				"type":       "object",
				"properties": map[string]any{"location": map[string]any{"type": "string"}},
			},
		},
		{
			name:     "raw JSON",
			input:    json.RawMessage(`{"type":"object"}`),
			expected: map[string]any{"type": "object"},
		},
		{
			name:     "byte slice",
			input:    []byte(`{"type":"string"}`),
			expected: map[string]any{"type": "string"},
		},
		{
			name:     "struct value",
			input:    weather{Location: "Warsaw"},
			expected: map[string]any{"location": "Warsaw"},
		},
		{
			name:    "non-object value",
			input:   "just a string",
			wantErr: true,
		},
		{
			name:    "invalid raw JSON",
			input:   json.RawMessage(`{`),
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Convert mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertCopies(t *testing.T) {
	original := map[string]any{"type": "object", "properties": map[string]any{}}
	got, err := Convert(original)
	require.NoError(t, err)

	got["type"] = "changed"
	require.Equal(t, "object", original["type"])
}

func TestSanitizeForGemini(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any
	}{
		{
			name: "strips $schema and additionalProperties",
			input: map[string]any{
				"$schema":              "http://json-schema.org/draft-07/schema#",
				"additionalProperties": false,
				"type":                 "object",
				"properties":           map[string]any{"location": map[string]any{"type": "string"}},
				"required":             []any{"location"},
			},
			expected: map[string]any{
				"type":       "object",
				"properties": map[string]any{"location": map[string]any{"type": "string"}},
				"required":   []any{"location"},
			},
		},
		{
			name:     "nothing to strip",
			input:    map[string]any{"type": "object"},
			expected: map[string]any{"type": "object"},
		},
		{
			name: "nested occurrences are preserved",
			input: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"config": map[string]any{
						"type":                 "object",
						"additionalProperties": true,
					},
				},
			},
			expected: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"config": map[string]any{
						"type":                 "object",
						"additionalProperties": true,
					},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SanitizeForGemini(tc.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("SanitizeForGemini mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSanitizeForGeminiCopies(t *testing.T) {
	input := map[string]any{"$schema": "x", "type": "object"}
	_, err := SanitizeForGemini(input)
	require.NoError(t, err)
	require.Contains(t, input, "$schema")
}
