// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/staranto/wittygo/internal/config"
	"github.com/staranto/wittygo/internal/meta"
	"github.com/staranto/wittygo/internal/setup"
)

var ErrSetupIncomplete = errors.New("bedrock setup incomplete")

// SetupCommandAction runs the AWS and Bedrock checks.
func SetupCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "setup") {
		return nil
	}

	m := GetMeta(cmd)

	cfg, err := LoadAWSConfig(ctx, cmd)
	if err != nil {
		return err
	}

	checker := setup.NewChecker(cfg, cmd.Int("cache-hours"))
	if err := checker.Cache.Purge(); err != nil {
		return err
	}

	regions := cmd.StringSlice("regions")
	if len(regions) == 0 {
		regions, _ = config.GetStringSlice("regions")
	}

	if checker.Run(ctx, m.Stdout, regions) == "" {
		return ErrSetupIncomplete
	}
	return nil
}

// SetupCommandBuilder constructs the cli.Command definition for the "setup"
// command.
func SetupCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "setup",
		Usage:     "check AWS credentials and Bedrock model access",
		UsageText: "witty setup [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(append(NewSetupFlags("setup", meta.Config.Source),
			NewAWSFlags("setup", meta.Config.Source)...), newTLDRFlag()),
		Action: SetupCommandAction,
	}
}
