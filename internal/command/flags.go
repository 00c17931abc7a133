// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/wittygo/internal/aws"
	"github.com/staranto/wittygo/internal/joke"
	"github.com/staranto/wittygo/internal/limerick"
	"github.com/staranto/wittygo/internal/output"
)

// configChain returns the env var (if any) followed by the namespaced and
// global config file keys for name.
func configChain(ns string, path string, name string, env ...string) cli.ValueSourceChain {
	var sources []cli.ValueSource
	for _, e := range env {
		sources = append(sources, cli.EnvVar(e))
	}
	sources = append(sources,
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)),
		yaml.YAML(name, altsrc.StringSourcer(path)),
	)
	return cli.NewValueSourceChain(sources...)
}

func newTLDRFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
}

// NewGlobalFlags are the output flags shared by the generating commands.
func NewGlobalFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: configChain(ns, path, "color"),
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, plain, json, yaml)",
			Sources: configChain(ns, path, "output", "WITTY_OUTPUT"),
			Value:   output.FormatText,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "archive",
			Aliases: []string{"a"},
			Usage:   "also store each result in a directory or s3://bucket/prefix",
			Sources: configChain(ns, path, "archive", "WITTY_ARCHIVE"),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		newTLDRFlag(),
	}
}

// NewAWSFlags select the account, region and retry policy for AWS calls.
func NewAWSFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS shared config profile",
			Sources: configChain(ns, path, "profile", "WITTY_PROFILE"),
		},
		&cli.StringFlag{
			Name:    "region",
			Aliases: []string{"r"},
			Usage:   "AWS region (default from the AWS environment, else " + aws.DefaultRegion + ")",
			Sources: configChain(ns, path, "region", "WITTY_REGION"),
		},
		&cli.IntFlag{
			Name:    "max-attempts",
			Usage:   "maximum attempts per AWS request",
			Sources: configChain(ns, path, "max-attempts"),
			Value:   3,
			Validator: func(value int) error {
				return FlagValidators(value, RangeValidator(1, 10))
			},
		},
	}
}

// NewLimerickFlags are the flags specific to the limerick command.
func NewLimerickFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "variant",
			Usage:   "generator variant (enhanced, classic)",
			Sources: configChain(ns, path, "variant"),
			Value:   limerick.VariantEnhanced,
			Validator: func(value string) error {
				return FlagValidators(value, OneOfValidator(limerick.Variants...))
			},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed for repeatable output (0 seeds from the clock)",
			Sources: configChain(ns, path, "seed", "WITTY_SEED"),
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "limericks per topic when topics are given as arguments",
			Value:   1,
			Validator: func(value int) error {
				return FlagValidators(value, RangeValidator(1, 100))
			},
		},
		&cli.IntFlag{
			Name:    "history",
			Usage:   "recent combinations the enhanced variant avoids repeating",
			Sources: configChain(ns, path, "history"),
			Value:   limerick.DefaultHistorySize,
			Validator: func(value int) error {
				return FlagValidators(value, RangeValidator(1, 1000))
			},
		},
	}
}

// NewJokeFlags are the model and sampling flags of the joke command.
func NewJokeFlags(ns string, path string) []cli.Flag {
	def := joke.DefaultParams()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "model",
			Aliases: []string{"m"},
			Usage:   "Bedrock model id",
			Sources: configChain(ns, path, "model", "WITTY_MODEL"),
			Value:   joke.Models[0],
			Validator: func(value string) error {
				return FlagValidators(value, OneOfValidator(joke.Models...))
			},
		},
		&cli.StringFlag{
			Name:    "style",
			Aliases: []string{"s"},
			Usage:   "joke style; the interactive prompt asks when unset",
			Sources: configChain(ns, path, "style"),
			Validator: func(value string) error {
				return FlagValidators(value, OneOfValidator(joke.Styles()...))
			},
		},
		&cli.IntFlag{
			Name:    "max-tokens",
			Usage:   "maximum tokens to generate",
			Sources: configChain(ns, path, "max-tokens"),
			Value:   int(def.MaxTokens),
			Validator: func(value int) error {
				return FlagValidators(value, RangeValidator(1, 4096))
			},
		},
		&cli.FloatFlag{
			Name:    "temperature",
			Usage:   "sampling temperature",
			Sources: configChain(ns, path, "temperature"),
			Value:   float64(def.Temperature),
			Validator: func(value float64) error {
				return FlagValidators(value, UnitIntervalValidator)
			},
		},
		&cli.FloatFlag{
			Name:    "top-p",
			Usage:   "nucleus sampling probability",
			Sources: configChain(ns, path, "top-p"),
			Value:   float64(def.TopP),
			Validator: func(value float64) error {
				return FlagValidators(value, UnitIntervalValidator)
			},
		},
	}
}

// NewSetupFlags are the flags specific to the setup command.
func NewSetupFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "regions",
			Usage: "regions to check for Bedrock access (default us-east-1, us-west-2, eu-west-1)",
		},
		&cli.IntFlag{
			Name:    "cache-hours",
			Usage:   "hours to trust a cached model probe (0 disables the cache)",
			Sources: configChain(ns, path, "cache-hours", "WITTY_CACHE_HOURS"),
			Value:   24,
			Validator: func(value int) error {
				return FlagValidators(value, RangeValidator(0, 24*30))
			},
		},
	}
}

// pathHas reports whether target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
