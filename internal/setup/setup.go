// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package setup verifies that the AWS credentials and Bedrock access needed
// by the joke command are in place.
package setup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/dustin/go-humanize"

	"github.com/staranto/wittygo/internal/cacheutil"
	"github.com/staranto/wittygo/internal/joke"
)

// DefaultRegions are checked when none are configured.
var DefaultRegions = []string{"us-east-1", "us-west-2", "eu-west-1"}

// IdentityAPI is the part of the STS client used here.
type IdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// CatalogAPI is the part of the Bedrock control-plane client used here.
type CatalogAPI interface {
	ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error)
}

// Checker runs the individual checks. Catalog and Runtime build a client for
// a region.
type Checker struct {
	Credentials awsv2.CredentialsProvider
	Identity    IdentityAPI
	Catalog     func(region string) CatalogAPI
	Runtime     func(region string) joke.Invoker
	Models      []string
	Cache       cacheutil.Store
}

// Result is the outcome of one check.
type Result struct {
	OK      bool
	Message string
}

const limitedSuffix = " (limited access)"

const probeOK = "ok"

// CheckCredentials confirms credentials resolve and are accepted by STS.
func (c *Checker) CheckCredentials(ctx context.Context) Result {
	if c.Credentials != nil {
		creds, err := c.Credentials.Retrieve(ctx)
		if err != nil || !creds.HasKeys() {
			log.Debugf("no credentials: %v", err)
			return Result{false, "AWS credentials not configured"}
		}
	}

	out, err := c.Identity.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Result{false, fmt.Sprintf("Error checking credentials: %v", err)}
	}

	arn := "Unknown"
	if out.Arn != nil {
		arn = *out.Arn
	}
	return Result{true, "Credentials valid for: " + arn}
}

// CheckBedrockAccess lists foundation models in region.
func (c *Checker) CheckBedrockAccess(ctx context.Context, region string) Result {
	out, err := c.Catalog(region).ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{})
	if err != nil {
		switch code := joke.ErrorCode(err); code {
		case "AccessDeniedException":
			return Result{false, fmt.Sprintf("Access denied to Bedrock in %s. Check IAM permissions.", region)}
		case "":
			return Result{false, fmt.Sprintf("Error accessing Bedrock: %v", err)}
		default:
			return Result{false, fmt.Sprintf("Bedrock error in %s: %s", region, code)}
		}
	}

	n := int64(len(out.ModelSummaries))
	return Result{true, fmt.Sprintf("Bedrock accessible. Found %s models in %s", humanize.Comma(n), region)}
}

// CheckModelAccess sends a minimal request to each model and returns the
// ones that answered. A model rejected by the service for any reason other
// than access denial is listed as having limited access. A failure without
// a service error code, such as a network error, stops the check and is
// returned. Answers are cached.
func (c *Checker) CheckModelAccess(ctx context.Context, region string) ([]string, error) {
	client := c.Runtime(region)
	accessible := []string{}

	for _, model := range c.Models {
		key := region + "/" + model
		if e, ok := c.Cache.Get(key); ok {
			log.Debugf("cache hit for %s", key)
			accessible = append(accessible, cachedLabel(model, string(e.Data)))
			continue
		}

		status, err := c.probe(ctx, client, model)
		if err != nil {
			return accessible, fmt.Errorf("probing %s: %w", model, err)
		}
		if status == "" {
			continue
		}
		if err := c.Cache.Put(key, []byte(status)); err != nil {
			log.WithError(err).Warn("cache write failed")
		}
		accessible = append(accessible, cachedLabel(model, status))
	}

	return accessible, nil
}

func cachedLabel(model string, status string) string {
	if status == probeOK {
		return model
	}
	return model + limitedSuffix
}

// probe returns "" for models that are skipped or denied.
func (c *Checker) probe(ctx context.Context, client joke.Invoker, model string) (string, error) {
	body, err := joke.ProbeBody(model)
	if err != nil {
		log.WithError(err).Warn("skipping model")
		return "", nil
	}

	_, err = client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     awsv2.String(model),
		Body:        body,
		ContentType: awsv2.String("application/json"),
	})
	if err == nil {
		return probeOK, nil
	}

	log.Debugf("probe %s: %v", model, err)
	switch joke.ErrorCode(err) {
	case "":
		return "", err
	case "AccessDeniedException":
		return "", nil
	}
	return "limited", nil
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

// Run performs every check in order, writing a report to w, and returns
// the first accessible region or "".
func (c *Checker) Run(ctx context.Context, w io.Writer, regions []string) string {
	if len(regions) == 0 {
		regions = DefaultRegions
	}

	fmt.Fprintln(w, "🔧 AWS Bedrock Setup Checker")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	fmt.Fprintln(w, "\n1. Checking AWS Credentials...")
	creds := c.CheckCredentials(ctx)
	fmt.Fprintf(w, "   %s %s\n", mark(creds.OK), creds.Message)
	if !creds.OK {
		fmt.Fprint(w, credentialsHint)
		return ""
	}

	fmt.Fprintln(w, "\n2. Checking Bedrock Access...")
	var accessible []string
	for _, region := range regions {
		r := c.CheckBedrockAccess(ctx, region)
		fmt.Fprintf(w, "   %s %s: %s\n", mark(r.OK), region, r.Message)
		if r.OK {
			accessible = append(accessible, region)
		}
	}
	if len(accessible) == 0 {
		fmt.Fprint(w, accessHint)
		return ""
	}

	region := accessible[0]
	fmt.Fprintf(w, "\n3. Checking Model Access in %s...\n", region)
	models, err := c.CheckModelAccess(ctx, region)
	if err != nil {
		fmt.Fprintf(w, "   ❌ Error testing models: %v\n", err)
	}
	for _, m := range models {
		fmt.Fprintf(w, "   ✅ %s\n", m)
	}

	if len(models) == 0 {
		fmt.Fprintf(w, "\n❌ No models accessible in %s\n", region)
		return region
	}

	fmt.Fprintln(w, "\n🎉 Setup Complete! You can use the joke generator.")
	fmt.Fprintf(w, "   Recommended region: %s\n", region)
	fmt.Fprintf(w, "   Available models: %d\n", len(models))
	return region
}

const credentialsHint = `
📋 To configure AWS credentials:
   Option 1: Run 'aws configure'
   Option 2: Set environment variables:
     export AWS_ACCESS_KEY_ID=your_key
     export AWS_SECRET_ACCESS_KEY=your_secret
     export AWS_DEFAULT_REGION=us-east-1
`

const accessHint = `
📋 To enable Bedrock access:
   1. Go to AWS Console → Bedrock
   2. Navigate to 'Model access' in the left sidebar
   3. Request access to Claude and Titan models
   4. Wait for approval (usually instant for Claude Haiku)
`
