// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

// Package gemini defines the wire-level request schema for the
// generateContent family of methods. The same body is accepted by both
// published deployments of the model family: the API-key authenticated
// Generative Language API and the IAM-authenticated Vertex AI API.
package gemini

import "google.golang.org/genai"

// GenerateContentRequest is the JSON body POSTed to a generateContent-style
// method.
//
// Contents and GenerationConfig are always present. Tools and SafetySettings
// are omitted entirely when empty: the API treats an absent list differently
// from an empty one, so `"tools": []` must never be sent.
type GenerateContentRequest struct {
	// Contains the multipart content of the conversation.
	//
	// https://github.com/googleapis/go-genai/blob/6a8184fcaf8bf15f0c566616a7b356560309be9b/types.go#L858
	Contents []*genai.Content `json:"contents"`
	// Generation parameters for the request. Absent fields take the API
	// default values, see
	// https://cloud.google.com/vertex-ai/generative-ai/docs/model-reference/inference#generationconfig
	GenerationConfig *genai.GenerationConfig `json:"generationConfig"`
	// Tools the model may use to generate a response. All function
	// declarations of a request are grouped under a single entry.
	Tools []Tool `json:"tools,omitempty"`
	// Per-category safety thresholds, passed through verbatim.
	//
	// https://github.com/googleapis/go-genai/blob/6a8184fcaf8bf15f0c566616a7b356560309be9b/types.go#L729
	SafetySettings []*genai.SafetySetting `json:"safetySettings,omitempty"`
}

// Tool groups the function declarations of a request.
type Tool struct {
	FunctionDeclarations []FunctionDeclaration `json:"functionDeclarations"`
}

// FunctionDeclaration describes a single callable function for function
// calling. Parameters is a JSON-schema-shaped object. The function-calling
// API rejects bodies whose parameters object carries "$schema" or
// "additionalProperties", so declarations built from external schemas must be
// sanitized first (see the jsonschema package).
type FunctionDeclaration struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}
