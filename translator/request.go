// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package translator

import (
	"fmt"

	"github.com/envoyproxy/gemini-dispatch/apischema/gemini"
)

// FormatRequest assembles the wire payload from the generic input and
// parameters. Contents and the generation config are always present; the
// tools and safety-settings fields appear only when non-empty. That
// presence-vs-absence distinction is part of the wire contract, not an
// optimization.
func FormatRequest(formatter ContentFormatter, input Input, params *GenerationParameters) (*gemini.GenerateContentRequest, error) {
	if formatter == nil {
		formatter = TextFormatter{}
	}
	contents, err := formatter.FormatContents(input)
	if err != nil {
		return nil, fmt.Errorf("formatting contents: %w", err)
	}

	var tools []gemini.Tool
	if params != nil {
		if tools, err = FormatTools(params.Tools); err != nil {
			return nil, err
		}
	}

	req := &gemini.GenerateContentRequest{
		Contents:         contents,
		GenerationConfig: FormatGenerationConfig(params),
	}
	if len(tools) > 0 {
		req.Tools = tools
	}
	if settings := FormatSafetySettings(params); len(settings) > 0 {
		req.SafetySettings = settings
	}
	return req, nil
}
