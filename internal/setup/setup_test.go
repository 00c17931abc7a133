// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package setup

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/wittygo/internal/cacheutil"
	"github.com/staranto/wittygo/internal/joke"
)

type fakeSTS struct {
	arn string
	err error
}

func (f fakeSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{Arn: awsv2.String(f.arn)}, nil
}

type fakeCatalog struct {
	n   int
	err error
}

func (f fakeCatalog) ListFoundationModels(context.Context, *bedrock.ListFoundationModelsInput, ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &bedrock.ListFoundationModelsOutput{ModelSummaries: make([]types.FoundationModelSummary, f.n)}, nil
}

type fakeRuntime struct {
	errs  map[string]error
	calls int
}

func (f *fakeRuntime) InvokeModel(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.calls++
	if err := f.errs[*in.ModelId]; err != nil {
		return nil, err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(`{}`)}, nil
}

func apiErr(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code}
}

func newChecker(catalogs map[string]fakeCatalog, rt *fakeRuntime) *Checker {
	return &Checker{
		Credentials: awsv2.CredentialsProviderFunc(func(context.Context) (awsv2.Credentials, error) {
			return awsv2.Credentials{AccessKeyID: "AKID", SecretAccessKey: "secret"}, nil
		}),
		Identity: fakeSTS{arn: "arn:aws:iam::123456789012:user/me"},
		Catalog:  func(region string) CatalogAPI { return catalogs[region] },
		Runtime:  func(string) joke.Invoker { return rt },
		Models:   joke.Models,
	}
}

func TestCheckCredentials(t *testing.T) {
	c := newChecker(nil, nil)
	r := c.CheckCredentials(context.Background())
	assert.True(t, r.OK)
	assert.Equal(t, "Credentials valid for: arn:aws:iam::123456789012:user/me", r.Message)

	c.Credentials = awsv2.CredentialsProviderFunc(func(context.Context) (awsv2.Credentials, error) {
		return awsv2.Credentials{}, errors.New("no chain")
	})
	r = c.CheckCredentials(context.Background())
	assert.False(t, r.OK)
	assert.Equal(t, "AWS credentials not configured", r.Message)

	c.Credentials = nil
	c.Identity = fakeSTS{err: errors.New("expired")}
	r = c.CheckCredentials(context.Background())
	assert.False(t, r.OK)
	assert.Contains(t, r.Message, "expired")
}

func TestCheckBedrockAccess(t *testing.T) {
	c := newChecker(map[string]fakeCatalog{
		"us-east-1": {n: 1234},
		"us-west-2": {err: apiErr("AccessDeniedException")},
		"eu-west-1": {err: apiErr("UnrecognizedClientException")},
	}, nil)
	ctx := context.Background()

	r := c.CheckBedrockAccess(ctx, "us-east-1")
	assert.True(t, r.OK)
	assert.Equal(t, "Bedrock accessible. Found 1,234 models in us-east-1", r.Message)

	r = c.CheckBedrockAccess(ctx, "us-west-2")
	assert.False(t, r.OK)
	assert.Equal(t, "Access denied to Bedrock in us-west-2. Check IAM permissions.", r.Message)

	r = c.CheckBedrockAccess(ctx, "eu-west-1")
	assert.Equal(t, "Bedrock error in eu-west-1: UnrecognizedClientException", r.Message)
}

func TestCheckModelAccess(t *testing.T) {
	rt := &fakeRuntime{errs: map[string]error{
		joke.ModelClaudeSonnet: apiErr("AccessDeniedException"),
		joke.ModelTitanExpress: apiErr("ValidationException"),
	}}
	c := newChecker(nil, rt)

	got, err := c.CheckModelAccess(context.Background(), "us-east-1")
	require.NoError(t, err)
	assert.Equal(t, []string{
		joke.ModelClaudeHaiku,
		joke.ModelTitanExpress + " (limited access)",
	}, got)
	assert.Equal(t, 3, rt.calls)
}

func TestCheckModelAccessCached(t *testing.T) {
	rt := &fakeRuntime{errs: map[string]error{
		joke.ModelTitanExpress: apiErr("ValidationException"),
	}}
	c := newChecker(nil, rt)
	c.Cache = cacheutil.Store{Dir: t.TempDir(), MaxAge: time.Hour}

	first, err := c.CheckModelAccess(context.Background(), "us-east-1")
	require.NoError(t, err)
	require.Equal(t, 3, rt.calls)

	second, err := c.CheckModelAccess(context.Background(), "us-east-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, rt.calls)

	_, err = c.CheckModelAccess(context.Background(), "us-west-2")
	require.NoError(t, err)
	assert.Equal(t, 6, rt.calls)
}

func TestCheckModelAccessNetworkError(t *testing.T) {
	rt := &fakeRuntime{errs: map[string]error{
		joke.ModelClaudeSonnet: errors.New("dial tcp: no route to host"),
	}}
	c := newChecker(nil, rt)

	got, err := c.CheckModelAccess(context.Background(), "us-east-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route to host")
	assert.Equal(t, []string{joke.ModelClaudeHaiku}, got)
	assert.Equal(t, 2, rt.calls)
}

func TestRunReportsModelError(t *testing.T) {
	rt := &fakeRuntime{errs: map[string]error{}}
	for _, m := range joke.Models {
		rt.errs[m] = errors.New("endpoint unreachable")
	}
	c := newChecker(map[string]fakeCatalog{"us-east-1": {n: 3}}, rt)

	var buf bytes.Buffer
	assert.Equal(t, "us-east-1", c.Run(context.Background(), &buf, []string{"us-east-1"}))

	out := buf.String()
	assert.Contains(t, out, "❌ Error testing models: probing "+joke.ModelClaudeHaiku+": endpoint unreachable")
	assert.Contains(t, out, "No models accessible in us-east-1")
	assert.Equal(t, 1, rt.calls)
}

func TestRun(t *testing.T) {
	c := newChecker(map[string]fakeCatalog{
		"us-east-1": {err: apiErr("AccessDeniedException")},
		"us-west-2": {n: 42},
	}, &fakeRuntime{})

	var buf bytes.Buffer
	region := c.Run(context.Background(), &buf, []string{"us-east-1", "us-west-2"})
	assert.Equal(t, "us-west-2", region)

	out := buf.String()
	assert.Contains(t, out, "1. Checking AWS Credentials...")
	assert.Contains(t, out, "❌ us-east-1: Access denied")
	assert.Contains(t, out, "✅ us-west-2: Bedrock accessible. Found 42 models in us-west-2")
	assert.Contains(t, out, "3. Checking Model Access in us-west-2...")
	assert.Contains(t, out, "Recommended region: us-west-2")
	assert.Contains(t, out, "Available models: 3")
}

func TestRunStopsEarly(t *testing.T) {
	c := newChecker(nil, nil)
	c.Identity = fakeSTS{err: errors.New("bad token")}

	var buf bytes.Buffer
	assert.Equal(t, "", c.Run(context.Background(), &buf, nil))
	assert.Contains(t, buf.String(), "aws configure")
	assert.NotContains(t, buf.String(), "2. Checking")

	c = newChecker(map[string]fakeCatalog{
		"us-east-1": {err: apiErr("AccessDeniedException")},
		"us-west-2": {err: apiErr("AccessDeniedException")},
		"eu-west-1": {err: apiErr("AccessDeniedException")},
	}, nil)
	buf.Reset()
	assert.Equal(t, "", c.Run(context.Background(), &buf, nil))
	assert.Contains(t, buf.String(), "Request access to Claude and Titan models")
}
