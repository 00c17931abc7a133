// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/staranto/wittygo/internal/archive"
	"github.com/staranto/wittygo/internal/aws"
	"github.com/staranto/wittygo/internal/meta"
	"github.com/staranto/wittygo/internal/output"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr witty <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "witty", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value. Nil streams default
// to the process stdin/stdout.
func GetMeta(cmd *cli.Command) meta.Meta {
	m := meta.Meta{}
	if cmd != nil && cmd.Metadata != nil {
		if mm, ok := cmd.Metadata["meta"].(meta.Meta); ok {
			m = mm
		}
	}
	if m.Stdin == nil {
		m.Stdin = os.Stdin
	}
	if m.Stdout == nil {
		m.Stdout = os.Stdout
	}
	return m
}

// LoadAWSConfig builds the AWS config from the --profile, --region and
// --max-attempts flags.
func LoadAWSConfig(ctx context.Context, cmd *cli.Command) (awsv2.Config, error) {
	cfg, err := aws.LoadAWSConfig(ctx,
		aws.WithProfile(cmd.String("profile")),
		aws.WithRegion(cmd.String("region")),
		aws.WithMaxAttempts(cmd.Int("max-attempts")),
	)
	if err != nil {
		return cfg, fmt.Errorf("failed to load AWS config: %w", err)
	}
	log.Debugf("aws region: %s", cfg.Region)
	return cfg, nil
}

// Emitter writes pieces in the selected output format and archives them
// when --archive is set.
type Emitter struct {
	Out    io.Writer
	Format string
	Opts   output.Options
	Sink   archive.Sink
}

// NewEmitter reads the output flags of cmd. An s3:// archive loads the AWS
// config; a directory archive does not.
func NewEmitter(ctx context.Context, cmd *cli.Command, out io.Writer) (*Emitter, error) {
	e := &Emitter{
		Out:    out,
		Format: cmd.String("output"),
		Opts:   output.Options{Color: cmd.Bool("color")},
	}
	if f, ok := out.(*os.File); ok {
		e.Opts.Width = output.TerminalWidth(f)
	}

	dest := cmd.String("archive")
	if dest == "" {
		return e, nil
	}

	var newS3 func() archive.PutObjectAPI
	if strings.HasPrefix(dest, "s3://") {
		cfg, err := LoadAWSConfig(ctx, cmd)
		if err != nil {
			return nil, err
		}
		newS3 = func() archive.PutObjectAPI { return aws.NewS3(cfg) }
	}

	sink, err := archive.Open(dest, newS3)
	if err != nil {
		return nil, err
	}
	e.Sink = sink
	return e, nil
}

// Emit archives p, if configured, and writes it. An archive failure is
// logged and does not stop the output.
func (e *Emitter) Emit(ctx context.Context, p output.Piece) error {
	if e.Sink != nil {
		if key, err := archive.Store(ctx, e.Sink, p.Kind, p.Text); err != nil {
			log.WithError(err).Warn("archive failed")
		} else {
			p.Archived = key
		}
	}
	return output.Write(e.Out, p, e.Format, e.Opts)
}

// CommandBuilder constructs a cli.Command for the generating subcommands
// using a consistent pattern: metadata wiring, shared flags, and the action.
type CommandBuilder struct {
	Name        string
	Usage       string
	UsageText   string
	Description string
	Flags       []cli.Flag
	Action      func(context.Context, *cli.Command) error
	Meta        meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (b *CommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:        b.Name,
		Usage:       b.Usage,
		UsageText:   b.UsageText,
		Description: b.Description,
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Flags: append(b.Flags, NewGlobalFlags(b.Name, b.Meta.Config.Source)...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if ShortCircuitTLDR(ctx, c, b.Name) {
				return nil
			}
			log.Debugf("executing %s with args %v", b.Name, c.Args().Slice())
			return b.Action(ctx, c)
		},
	}
}
