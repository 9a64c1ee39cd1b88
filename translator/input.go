// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package translator

import "google.golang.org/genai"

// Message is one role-tagged text message of the generic model input.
type Message struct {
	// Role is the conversation role. Empty defaults to the user role.
	Role genai.Role
	Text string
}

// Input is the generic model input: an ordered sequence of messages.
type Input struct {
	Messages []Message
}

// Prompt wraps a single piece of user text as an Input.
func Prompt(text string) Input {
	return Input{Messages: []Message{{Role: genai.RoleUser, Text: text}}}
}

// ContentFormatter converts generic input into the ordered role-tagged
// content blocks of the wire payload. Implementations decide how message
// content maps onto parts; this package imposes no further constraint.
type ContentFormatter interface {
	FormatContents(input Input) ([]*genai.Content, error)
}

// TextFormatter is the default ContentFormatter: one single-part text content
// block per message, in input order.
type TextFormatter struct{}

// FormatContents implements [ContentFormatter.FormatContents].
func (TextFormatter) FormatContents(input Input) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(input.Messages))
	for _, msg := range input.Messages {
		role := msg.Role
		if role == "" {
			role = genai.RoleUser
		}
		contents = append(contents, &genai.Content{
			Role:  string(role),
			Parts: []*genai.Part{genai.NewPartFromText(msg.Text)},
		})
	}
	return contents, nil
}
