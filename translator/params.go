// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package translator

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/envoyproxy/gemini-dispatch/apischema/gemini"
	"github.com/envoyproxy/gemini-dispatch/jsonschema"
)

// GenerationParameters are the generic, all-optional generation knobs of a
// call. Absent fields are omitted from the wire payload rather than sent as
// defaults, so the provider's own defaults apply.
type GenerationParameters struct {
	Temperature     *float32
	TopK            *float32
	TopP            *float32
	MaxOutputTokens int32
	StopSequences   []string
	// SafetySettings are passed through to the wire payload verbatim.
	SafetySettings []*genai.SafetySetting
	// Tools the model may call. Nil or empty omits tools from the payload.
	Tools []Tool
}

// Tool is a discriminated tool variant. Exactly one field must be set;
// setting neither or both is a translation error.
type Tool struct {
	// Function is an externally defined tool whose input schema has not been
	// rendered to the provider's declaration shape yet.
	Function *FunctionTool
	// Declaration is a provider-native function declaration, passed through
	// unchanged.
	Declaration *gemini.FunctionDeclaration
}

// FunctionTool is an externally defined structured tool. Schema may be a
// schema map, raw JSON, or any Go value whose JSON encoding is a schema
// object; it is converted and sanitized at format time.
type FunctionTool struct {
	Name        string
	Description string
	Schema      any
}

// NewFunctionTool wraps an externally defined tool as a Tool variant.
func NewFunctionTool(name, description string, schema any) Tool {
	return Tool{Function: &FunctionTool{Name: name, Description: description, Schema: schema}}
}

// NewDeclaration wraps a provider-native function declaration as a Tool
// variant.
func NewDeclaration(decl gemini.FunctionDeclaration) Tool {
	return Tool{Declaration: &decl}
}

// FormatGenerationConfig projects the generic parameters onto the wire
// generation config field for field. No validation or clamping happens here:
// out-of-range values pass through untouched and are the provider's to
// reject.
func FormatGenerationConfig(params *GenerationParameters) *genai.GenerationConfig {
	cfg := &genai.GenerationConfig{}
	if params == nil {
		return cfg
	}
	cfg.Temperature = params.Temperature
	cfg.TopK = params.TopK
	cfg.TopP = params.TopP
	cfg.MaxOutputTokens = params.MaxOutputTokens
	cfg.StopSequences = params.StopSequences
	return cfg
}

// FormatSafetySettings passes the safety settings through verbatim,
// defaulting to an empty sequence when absent.
func FormatSafetySettings(params *GenerationParameters) []*genai.SafetySetting {
	if params == nil {
		return nil
	}
	return params.SafetySettings
}

// FormatTools resolves the tool variants into provider declarations. The wire
// format groups every declaration of a request under one tool entry, so a
// non-empty input yields exactly one group. Nil or empty input yields nil,
// which the final assembly omits from the payload.
func FormatTools(tools []Tool) ([]gemini.Tool, error) {
	if len(tools) == 0 {
		return nil, nil
	}
	decls := make([]gemini.FunctionDeclaration, 0, len(tools))
	for i, tool := range tools {
		decl, err := formatTool(tool)
		if err != nil {
			return nil, fmt.Errorf("tool %d: %w", i, err)
		}
		decls = append(decls, decl)
	}
	return []gemini.Tool{{FunctionDeclarations: decls}}, nil
}

func formatTool(tool Tool) (gemini.FunctionDeclaration, error) {
	switch {
	case tool.Function != nil && tool.Declaration != nil:
		return gemini.FunctionDeclaration{}, fmt.Errorf("tool sets both the function and the declaration variant")
	case tool.Function != nil:
		schema, err := jsonschema.Convert(tool.Function.Schema)
		if err != nil {
			return gemini.FunctionDeclaration{}, fmt.Errorf("converting schema of %q: %w", tool.Function.Name, err)
		}
		params, err := jsonschema.SanitizeForGemini(schema)
		if err != nil {
			return gemini.FunctionDeclaration{}, fmt.Errorf("sanitizing schema of %q: %w", tool.Function.Name, err)
		}
		return gemini.FunctionDeclaration{
			Name:        tool.Function.Name,
			Description: tool.Function.Description,
			Parameters:  params,
		}, nil
	case tool.Declaration != nil:
		return *tool.Declaration, nil
	default:
		return gemini.FunctionDeclaration{}, fmt.Errorf("tool sets neither the function nor the declaration variant")
	}
}
