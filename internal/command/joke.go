// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/wittygo/internal/aws"
	"github.com/staranto/wittygo/internal/joke"
	"github.com/staranto/wittygo/internal/meta"
	"github.com/staranto/wittygo/internal/output"
	"github.com/staranto/wittygo/internal/ui"
)

// newInvoker returns the Bedrock runtime client for cmd. Replaced in tests.
var newInvoker = func(ctx context.Context, cmd *cli.Command) (joke.Invoker, error) {
	cfg, err := LoadAWSConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return aws.NewBedrockRuntime(cfg), nil
}

// NewJokeGenerator builds a generator from the model and sampling flags.
func NewJokeGenerator(ctx context.Context, cmd *cli.Command) (*joke.Generator, error) {
	client, err := newInvoker(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return joke.New(client,
		joke.WithModel(cmd.String("model")),
		joke.WithParams(joke.Params{
			MaxTokens:   int32(cmd.Int("max-tokens")), //nolint:gosec
			Temperature: float32(cmd.Float("temperature")),
			TopP:        float32(cmd.Float("top-p")),
		}),
	), nil
}

// JokeCommandAction prints jokes for the topic arguments or, with none, runs
// the interactive session.
func JokeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	gen, err := NewJokeGenerator(ctx, cmd)
	if err != nil {
		return fmt.Errorf("cannot proceed without AWS Bedrock access: %w", err)
	}

	emitter, err := NewEmitter(ctx, cmd, m.Stdout)
	if err != nil {
		return err
	}

	tell := func(ctx context.Context, topic string, style string) error {
		text, err := gen.Generate(ctx, topic, style)
		if err != nil {
			return err
		}
		return emitter.Emit(ctx, output.Piece{
			Kind:   "joke",
			Topic:  topic,
			Text:   text,
			Source: gen.Model(),
			Style:  style,
		})
	}

	fixedStyle := cmd.String("style")

	if topics := cmd.Args().Slice(); len(topics) > 0 {
		style := joke.ResolveStyle(fixedStyle)
		for _, topic := range topics {
			if err := tell(ctx, topic, style); err != nil {
				return fmt.Errorf("error generating joke: %w", err)
			}
		}
		return nil
	}

	styles := strings.Join(joke.Styles(), ", ")
	s := &Session{
		In:  m.Stdin,
		Out: m.Stdout,
		Banner: fmt.Sprintf("🎭 AWS Bedrock Joke Generator 🎭\n%s\n\n🤖 Current AI Model: %s\n🎨 Available Styles: %s",
			strings.Repeat("=", 50), gen.Model(), styles), //nolint:mnd
		Prompt:     func() string { return "🎯 Enter a topic for your joke (or 'quit' to exit): " },
		FollowUp:   "   Press Enter for another joke, 'settings' for options, or 'quit' to exit: ",
		Goodbye:    "🎉 Thanks for the laughs! Keep smiling! 👋",
		ErrorLabel: "Error generating joke",
		Handle: func(ctx context.Context, s *Session, topic string) error {
			style := fixedStyle
			if style == "" {
				s.Printf("\n🎨 Choose a style (%s) or press Enter for '%s':\n", styles, joke.DefaultStyle)
				style, _ = s.Ask("Style: ")
			}
			style = joke.ResolveStyle(style)

			s.Printf("\n🎭 Generating a %s joke about '%s'...\n⏳ Please wait...\n", style, topic)
			return tell(ctx, topic, style)
		},
		Settings: func(_ context.Context, s *Session) error {
			return modelSettings(s, gen)
		},
	}
	return s.Run(ctx)
}

// modelSettings lets the user switch models, with the TUI picker on a
// terminal and a numbered menu otherwise.
func modelSettings(s *Session, gen *joke.Generator) error {
	current := slices.Index(joke.Models, gen.Model())

	if f, ok := s.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		idx, chosen, err := ui.Pick("⚙️  Select a model", joke.Models, current, s.In, s.Out)
		if err != nil || !chosen {
			return err
		}
		return setModel(s, gen, joke.Models[idx])
	}

	for {
		s.Printf("\n⚙️  Settings Menu\n%s\n", strings.Repeat(rule, 20)) //nolint:mnd
		s.Printf("Current Model: %s\n\nAvailable Models:\n", gen.Model())
		for i, model := range joke.Models {
			marker := " "
			if model == gen.Model() {
				marker = "→"
			}
			s.Printf("%s %d. %s\n", marker, i+1, model)
		}
		s.Printf("\nOptions:\n1-%d: Select model\nb: Back to joke generation\n", len(joke.Models))

		choice, ok := s.Ask("\nChoice: ")
		if !ok || strings.EqualFold(choice, "b") {
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(joke.Models) {
			s.Printf("❌ Invalid selection\n")
			continue
		}
		if err := setModel(s, gen, joke.Models[n-1]); err != nil {
			return err
		}
	}
}

func setModel(s *Session, gen *joke.Generator, model string) error {
	if err := gen.SetModel(model); err != nil {
		return fmt.Errorf("failed to change model: %w", err)
	}
	s.Printf("✅ Model changed to: %s\n", model)
	return nil
}

// JokeCommandBuilder constructs the cli.Command definition for the "joke"
// command.
func JokeCommandBuilder(meta meta.Meta) *cli.Command {
	flags := append(NewJokeFlags("joke", meta.Config.Source), NewAWSFlags("joke", meta.Config.Source)...)
	return (&CommandBuilder{
		Name:      "joke",
		Usage:     "generate jokes with an AWS Bedrock model",
		UsageText: `witty joke [@set] [topic...] [options]`,
		Description: `With topics, prints one joke per topic and exits. Without topics, starts
an interactive session; type 'settings' at the follow-up prompt to switch
models.`,
		Flags:  flags,
		Action: JokeCommandAction,
		Meta:   meta,
	}).Build()
}
