// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package setup

import (
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/staranto/wittygo/internal/aws"
	"github.com/staranto/wittygo/internal/cacheutil"
	"github.com/staranto/wittygo/internal/joke"
)

// NewChecker wires a Checker to real AWS clients built from cfg. Probe
// answers are cached for cacheHours.
func NewChecker(cfg awsv2.Config, cacheHours int) *Checker {
	return &Checker{
		Credentials: cfg.Credentials,
		Identity:    aws.NewSTS(cfg),
		Catalog: func(region string) CatalogAPI {
			return aws.NewBedrock(aws.InRegion(cfg, region))
		},
		Runtime: func(region string) joke.Invoker {
			return aws.NewBedrockRuntime(aws.InRegion(cfg, region))
		},
		Models: joke.Models,
		Cache:  cacheutil.Open("probes", cacheHours),
	}
}
