// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package archive

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	bucket, key, body string
	err               error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket, f.key = *in.Bucket, *in.Key
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func TestKey(t *testing.T) {
	at := time.Date(2025, 3, 7, 23, 0, 0, 0, time.UTC)
	k := Key("limerick", "hello", at)
	assert.Equal(t, "limerick/2025/03/07/5d41402abc4b2a76b9719d911017c592.txt", k)
	assert.Equal(t, k, Key("limerick", "hello", at))
	assert.NotEqual(t, k, Key("joke", "hello", at))
}

func TestOpen(t *testing.T) {
	client := &fakeS3{}
	newS3 := func() PutObjectAPI { return client }

	sink, err := Open("s3://my-bucket/some/prefix/", newS3)
	require.NoError(t, err)
	s3s, ok := sink.(*S3Sink)
	require.True(t, ok)
	assert.Equal(t, "my-bucket", s3s.Bucket)
	assert.Equal(t, "some/prefix", s3s.Prefix)
	assert.Equal(t, "s3://my-bucket/some/prefix", sink.String())

	sink, err = Open("s3://b", newS3)
	require.NoError(t, err)
	assert.Equal(t, "s3://b", sink.String())

	dir := t.TempDir()
	sink, err = Open(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, DirSink(dir), sink)

	for _, bad := range []string{"s3://", "s3:///x", ""} {
		_, err = Open(bad, newS3)
		assert.ErrorIs(t, err, ErrBadDestination, bad)
	}
	_, err = Open("s3://b", nil)
	assert.ErrorIs(t, err, ErrBadDestination)

	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = Open(file, nil)
	assert.ErrorIs(t, err, ErrBadDestination)
}

func TestStoreDir(t *testing.T) {
	dir := t.TempDir()
	key, err := Store(context.Background(), DirSink(dir), "joke", "knock knock")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "joke/"))

	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "knock knock\n", string(b))
}

func TestStoreS3(t *testing.T) {
	client := &fakeS3{}
	sink := &S3Sink{Client: client, Bucket: "b", Prefix: "p"}

	key, err := Store(context.Background(), sink, "limerick", "verse")
	require.NoError(t, err)
	assert.Equal(t, "b", client.bucket)
	assert.Equal(t, "p/"+key, client.key)
	assert.Equal(t, "verse\n", client.body)

	client.err = errors.New("denied")
	_, err = Store(context.Background(), sink, "limerick", "verse")
	assert.ErrorContains(t, err, "failed to archive to s3://b/p: denied")
}
