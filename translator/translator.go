// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

// Package translator builds the Gemini wire payload from generic inputs:
// model input messages, generation parameters, and tool definitions. All
// functions are pure; nothing in this package performs I/O.
package translator

import (
	"fmt"
	"strings"
)

// ModelFamily classifies a model identifier, determining which formatting and
// method-resolution rules apply to it.
type ModelFamily string

const (
	// FamilyGemini covers model identifiers with the "gemini" prefix.
	FamilyGemini ModelFamily = "gemini"
	// FamilyUnknown is every identifier not matching a known family prefix.
	// Method resolution fails for it before any network call.
	FamilyUnknown ModelFamily = "unknown"
)

// MethodStreamGenerateContent is the only generate method either deployment
// publishes for the Gemini family. There is no genuinely non-streamed
// variant: a buffered call still targets this method and reads the stream
// whole.
const MethodStreamGenerateContent = "streamGenerateContent"

// Family classifies a model identifier by its prefix.
func Family(model string) ModelFamily {
	if strings.HasPrefix(model, "gemini") {
		return FamilyGemini
	}
	return FamilyUnknown
}

// MethodSuffix resolves the URL method suffix ("model:<suffix>") for a model.
// The result does not depend on whether the response will be consumed
// streamed or buffered. An identifier outside the known families is a fatal
// configuration error, raised here so it surfaces before a network attempt.
func MethodSuffix(model string) (string, error) {
	switch family := Family(model); family {
	case FamilyGemini:
		return MethodStreamGenerateContent, nil
	default:
		return "", fmt.Errorf("no generate method known for model family %q (model %q)", family, model)
	}
}
