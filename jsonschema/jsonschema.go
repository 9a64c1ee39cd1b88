// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

// Package jsonschema renders externally defined tool input schemas into the
// generic JSON-schema-shaped maps the Gemini function-calling API consumes,
// and applies the provider-specific compatibility fixes that API requires.
package jsonschema

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// geminiRejectedFields are top-level schema fields the Gemini function-calling
// API rejects outright. They carry no meaning for the provider and must be
// dropped rather than passed through.
var geminiRejectedFields = []string{"$schema", "additionalProperties"}

// Convert renders an arbitrary schema value as a generic JSON-schema-shaped
// map. It accepts schema maps, raw JSON, and any Go value whose JSON encoding
// is a schema object. Conversion is best effort: values that do not encode to
// a JSON object fail with an error, which propagates unmodified to the
// caller.
func Convert(schema any) (map[string]any, error) {
	switch s := schema.(type) {
	case nil:
		return nil, fmt.Errorf("cannot convert nil schema")
	case map[string]any:
		return deepCopyMap(s)
	case json.RawMessage:
		return unmarshalObject([]byte(s))
	case []byte:
		return unmarshalObject(s)
	default:
		raw, err := json.Marshal(schema)
		if err != nil {
			return nil, fmt.Errorf("marshaling schema: %w", err)
		}
		return unmarshalObject(raw)
	}
}

// SanitizeForGemini returns a copy of schema with the top-level "$schema" and
// "additionalProperties" fields removed, all sibling fields preserved. Nested
// occurrences are left alone: only the top-level fields trip the API.
func SanitizeForGemini(schema map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	doc := string(raw)
	for _, field := range geminiRejectedFields {
		if !gjson.Get(doc, field).Exists() {
			continue
		}
		if doc, err = sjson.Delete(doc, field); err != nil {
			return nil, fmt.Errorf("removing %q from schema: %w", field, err)
		}
	}
	return unmarshalObject([]byte(doc))
}

// deepCopyMap copies a schema map through a JSON round trip so later
// sanitization cannot mutate the caller's value.
func deepCopyMap(m map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("copying schema: %w", err)
	}
	return unmarshalObject(raw)
}

func unmarshalObject(raw []byte) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("schema is not a JSON object: %w", err)
	}
	return out, nil
}
