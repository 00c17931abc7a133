// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/wittygo/internal/config"
	"github.com/staranto/wittygo/internal/limerick"
	"github.com/staranto/wittygo/internal/meta"
	"github.com/staranto/wittygo/internal/output"
)

const limerickBanner = `🎭✨ Witty Limerick Generator ✨🎭
=======================================================
🎯 I can create witty limericks about any topic you choose!

💡 Popular topics: cat, dog, programming, coffee, travel, music
   But feel free to try anything - I love a challenge!`

// NewLimerickGenerator builds the generator selected by --variant, --seed
// and --history, adding any topic profiles from the config file.
func NewLimerickGenerator(cmd *cli.Command) (limerick.Generator, error) {
	opts := []limerick.Option{limerick.WithHistorySize(cmd.Int("history"))}
	if seed := cmd.Int64("seed"); seed != 0 {
		opts = append(opts, limerick.WithSeed(seed))
	}

	var profiles limerick.Profiles
	if err := config.Decode("topics", &profiles); err == nil && len(profiles) > 0 {
		log.Debugf("%d topic profiles from config", len(profiles))
		opts = append(opts, limerick.WithProfiles(profiles))
	}

	gen, err := limerick.New(cmd.String("variant"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build limerick generator: %w", err)
	}
	return gen, nil
}

// LimerickCommandAction prints limericks for the topic arguments or, with
// none, runs the interactive session.
func LimerickCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	gen, err := NewLimerickGenerator(cmd)
	if err != nil {
		return err
	}

	emitter, err := NewEmitter(ctx, cmd, m.Stdout)
	if err != nil {
		return err
	}

	piece := func(topic string, text string) output.Piece {
		return output.Piece{Kind: "limerick", Topic: topic, Text: text, Source: cmd.String("variant")}
	}

	if topics := cmd.Args().Slice(); len(topics) > 0 {
		for _, topic := range topics {
			for range cmd.Int("count") {
				text, err := gen.Generate(topic)
				if err != nil {
					return fmt.Errorf("error generating limerick: %w", err)
				}
				if err := emitter.Emit(ctx, piece(topic, text)); err != nil {
					return err
				}
			}
		}
		return nil
	}

	s := &Session{
		In:     m.Stdin,
		Out:    m.Stdout,
		Banner: limerickBanner,
		Prompt: func() string {
			return fmt.Sprintf("What would you like your limerick to be about?\n🎯 Enter your topic (try '%s' or 'quit' to exit): ", gen.Suggestion())
		},
		FollowUp:   "   Press Enter for another limerick, or type 'quit' to exit: ",
		Goodbye:    "🎉 Thanks for the laughs! Keep rhyming! 👋",
		ErrorLabel: "Error generating limerick",
		Handle: func(ctx context.Context, _ *Session, topic string) error {
			text, err := gen.Generate(topic)
			if err != nil {
				return err
			}
			return emitter.Emit(ctx, piece(topic, text))
		},
	}
	return s.Run(ctx)
}

// LimerickCommandBuilder constructs the cli.Command definition for the
// "limerick" command.
func LimerickCommandBuilder(meta meta.Meta) *cli.Command {
	flags := append(NewLimerickFlags("limerick", meta.Config.Source), NewAWSFlags("limerick", meta.Config.Source)...)
	return (&CommandBuilder{
		Name:      "limerick",
		Usage:     "generate limericks from templates",
		UsageText: `witty limerick [topic...] [options]`,
		Description: `With topics, prints one limerick per topic (--count each) and exits.
Without topics, starts an interactive session.`,
		Flags:  flags,
		Action: LimerickCommandAction,
		Meta:   meta,
	}).Build()
}
