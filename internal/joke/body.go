// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package joke

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Model families with distinct request/response shapes.
const (
	FamilyClaude = "claude"
	FamilyTitan  = "titan"
)

const anthropicVersion = "bedrock-2023-05-31"

// Family returns the request family of a model id, or "" if unsupported.
func Family(model string) string {
	switch {
	case strings.Contains(model, "claude"):
		return FamilyClaude
	case strings.Contains(model, "titan"):
		return FamilyTitan
	default:
		return ""
	}
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int32           `json:"max_tokens"`
	Messages         []claudeMessage `json:"messages"`
	Temperature      *float32        `json:"temperature,omitempty"`
	TopP             *float32        `json:"top_p,omitempty"`
}

type titanConfig struct {
	MaxTokenCount int32    `json:"maxTokenCount"`
	Temperature   *float32 `json:"temperature,omitempty"`
	TopP          *float32 `json:"topP,omitempty"`
	StopSequences []string `json:"stopSequences,omitempty"`
}

type titanRequest struct {
	InputText            string      `json:"inputText"`
	TextGenerationConfig titanConfig `json:"textGenerationConfig"`
}

// RequestBody renders the JSON body for model.
func RequestBody(model string, prompt string, p Params) ([]byte, error) {
	temperature, topP := p.Temperature, p.TopP

	switch Family(model) {
	case FamilyClaude:
		return json.Marshal(claudeRequest{
			AnthropicVersion: anthropicVersion,
			MaxTokens:        p.MaxTokens,
			Messages:         []claudeMessage{{Role: "user", Content: prompt}},
			Temperature:      &temperature,
			TopP:             &topP,
		})
	case FamilyTitan:
		return json.Marshal(titanRequest{
			InputText: prompt,
			TextGenerationConfig: titanConfig{
				MaxTokenCount: p.MaxTokens,
				Temperature:   &temperature,
				TopP:          &topP,
				StopSequences: []string{"\n\n"},
			},
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, model)
	}
}

// ProbeBody is the smallest valid request for model, used to test access.
func ProbeBody(model string) ([]byte, error) {
	switch Family(model) {
	case FamilyClaude:
		return json.Marshal(claudeRequest{
			AnthropicVersion: anthropicVersion,
			MaxTokens:        10,
			Messages:         []claudeMessage{{Role: "user", Content: "Hi"}},
		})
	case FamilyTitan:
		return json.Marshal(titanRequest{
			InputText:            "Hi",
			TextGenerationConfig: titanConfig{MaxTokenCount: 10},
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, model)
	}
}

// ParseResponse extracts the generated text from a response body.
func ParseResponse(model string, body []byte) (string, error) {
	var path string
	switch Family(model) {
	case FamilyClaude:
		path = "content.0.text"
	case FamilyTitan:
		path = "results.0.outputText"
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedModel, model)
	}

	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: response is not JSON", ErrEmptyResponse)
	}
	text := gjson.GetBytes(body, path)
	if !text.Exists() {
		return "", fmt.Errorf("%w: no %s in response", ErrEmptyResponse, path)
	}
	return strings.TrimSpace(text.String()), nil
}
