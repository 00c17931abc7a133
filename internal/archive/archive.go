// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package archive keeps a copy of every generated piece, either under a
// local directory or in an S3 bucket.
package archive

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"
)

var ErrBadDestination = errors.New("invalid archive destination")

// Sink stores one piece of text under key.
type Sink interface {
	Put(ctx context.Context, key string, text string) error
	String() string
}

// Key returns <kind>/<yyyy>/<mm>/<dd>/<hash>.txt for text written at t.
func Key(kind string, text string, t time.Time) string {
	sum := md5.Sum([]byte(text))
	return path.Join(kind, t.UTC().Format("2006/01/02"), hex.EncodeToString(sum[:])+".txt")
}

// Store writes text to sink under Key(kind, text, now).
func Store(ctx context.Context, sink Sink, kind string, text string) (string, error) {
	key := Key(kind, text, time.Now())
	if err := sink.Put(ctx, key, text); err != nil {
		return "", fmt.Errorf("failed to archive to %s: %w", sink, err)
	}
	log.Debugf("archived %s to %s/%s", humanize.Bytes(uint64(len(text))), sink, key)
	return key, nil
}

// PutObjectAPI is the part of the S3 client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Open parses dest into a sink. s3://bucket[/prefix] needs a client from
// newS3; anything else is a local directory.
func Open(dest string, newS3 func() PutObjectAPI) (Sink, error) {
	if rest, ok := strings.CutPrefix(dest, "s3://"); ok {
		bucket, prefix, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return nil, fmt.Errorf("%w: %s: missing bucket", ErrBadDestination, dest)
		}
		if newS3 == nil {
			return nil, fmt.Errorf("%w: %s: no S3 client", ErrBadDestination, dest)
		}
		return &S3Sink{Client: newS3(), Bucket: bucket, Prefix: strings.Trim(prefix, "/")}, nil
	}

	if strings.TrimSpace(dest) == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadDestination)
	}
	if info, err := os.Stat(dest); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrBadDestination, dest)
	}
	return DirSink(dest), nil
}

// DirSink writes keys as files beneath a directory.
type DirSink string

func (d DirSink) Put(_ context.Context, key string, text string) error {
	p := filepath.Join(string(d), filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil { //nolint:mnd
		return err
	}
	return os.WriteFile(p, []byte(text+"\n"), 0o644) //nolint:mnd
}

func (d DirSink) String() string {
	return string(d)
}

// S3Sink writes keys as objects under Prefix in Bucket.
type S3Sink struct {
	Client PutObjectAPI
	Bucket string
	Prefix string
}

func (s *S3Sink) Put(ctx context.Context, key string, text string) error {
	if s.Prefix != "" {
		key = s.Prefix + "/" + key
	}
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awsv2.String(s.Bucket),
		Key:         awsv2.String(key),
		Body:        bytes.NewReader([]byte(text + "\n")),
		ContentType: awsv2.String("text/plain; charset=utf-8"),
	})
	return err
}

func (s *S3Sink) String() string {
	if s.Prefix == "" {
		return "s3://" + s.Bucket
	}
	return "s3://" + s.Bucket + "/" + s.Prefix
}
