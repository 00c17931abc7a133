// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package joke

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Known model ids. The first is the default.
const (
	ModelClaudeHaiku  = "anthropic.claude-3-haiku-20240307-v1:0"
	ModelClaudeSonnet = "anthropic.claude-3-sonnet-20240229-v1:0"
	ModelTitanExpress = "amazon.titan-text-express-v1"
)

// Models lists the selectable models in menu order.
var Models = []string{ModelClaudeHaiku, ModelClaudeSonnet, ModelTitanExpress}

// DefaultStyle is used for an empty or unknown style.
const DefaultStyle = "witty"

type style struct {
	name   string
	prompt string
}

var styles = []style{
	{"pun", "Create a clever pun-based joke"},
	{"dad", "Create a classic dad joke"},
	{"witty", "Create a witty, clever joke"},
	{"silly", "Create a silly, lighthearted joke"},
	{"observational", "Create an observational comedy joke"},
	{"wordplay", "Create a joke using wordplay"},
}

// Styles returns the style names in menu order.
func Styles() []string {
	out := make([]string, 0, len(styles))
	for _, s := range styles {
		out = append(out, s.name)
	}
	return out
}

// ResolveStyle lower-cases s and maps anything unknown to DefaultStyle.
func ResolveStyle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range styles {
		if st.name == s {
			return s
		}
	}
	return DefaultStyle
}

func stylePrompt(name string) string {
	name = ResolveStyle(name)
	for _, st := range styles {
		if st.name == name {
			return st.prompt
		}
	}
	return ""
}

// Prompt builds the instruction sent to the model.
func Prompt(topic string, styleName string) string {
	return fmt.Sprintf(`You are a professional comedian. %s about the topic: "%s".

Requirements:
- Keep it clean and family-friendly
- Make it genuinely funny and original
- Keep it concise (1-3 sentences max)
- Focus specifically on the topic: %s

Topic: %s
Joke:`, stylePrompt(styleName), topic, topic, topic)
}

// Params are the sampling parameters sent with every request.
type Params struct {
	MaxTokens   int32
	Temperature float32
	TopP        float32
}

// DefaultParams returns the stock sampling parameters.
func DefaultParams() Params {
	return Params{MaxTokens: 200, Temperature: 0.8, TopP: 0.9}
}

// Invoker is the part of the Bedrock runtime client used here.
type Invoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Generator turns topics into jokes through one Bedrock model at a time.
// It is not safe for concurrent SetModel and Generate calls.
type Generator struct {
	client Invoker
	model  string
	params Params
}

// Option customizes a Generator.
type Option func(*Generator)

// WithModel selects the initial model. Unknown ids are ignored with a
// warning and the default is kept.
func WithModel(id string) Option {
	return func(g *Generator) {
		if err := g.SetModel(id); err != nil {
			log.Warnf("%v, keeping %s", err, g.model)
		}
	}
}

// WithParams overrides the sampling parameters.
func WithParams(p Params) Option {
	return func(g *Generator) { g.params = p }
}

// New returns a Generator using client.
func New(client Invoker, opts ...Option) *Generator {
	g := &Generator{client: client, model: Models[0], params: DefaultParams()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Model returns the current model id.
func (g *Generator) Model() string {
	return g.model
}

// Params returns the sampling parameters in use.
func (g *Generator) Params() Params {
	return g.params
}

// SetModel switches to a known model.
func (g *Generator) SetModel(id string) error {
	for _, m := range Models {
		if m == id {
			g.model = id
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownModel, id)
}

// Generate asks the current model for a joke about topic in the given
// style. AWS errors come back wrapped in one of this package's sentinels.
func (g *Generator) Generate(ctx context.Context, topic string, styleName string) (string, error) {
	body, err := RequestBody(g.model, Prompt(topic, styleName), g.params)
	if err != nil {
		return "", err
	}

	log.Debugf("invoking %s (%d bytes)", g.model, len(body))
	out, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     awsv2.String(g.model),
		Body:        body,
		ContentType: awsv2.String("application/json"),
		Accept:      awsv2.String("application/json"),
	})
	if err != nil {
		return "", Friendly(err)
	}

	return ParseResponse(g.model, out.Body)
}
