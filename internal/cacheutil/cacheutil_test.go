// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirAndEnabled(t *testing.T) {
	t.Setenv("WITTY_CACHE_DIR", "/tmp/witty-cache")
	d, ok := Dir()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/witty-cache", d)

	for _, v := range []string{"0", "false"} {
		t.Setenv("WITTY_CACHE", v)
		assert.False(t, Enabled(), v)
	}
	t.Setenv("WITTY_CACHE", "")
	assert.True(t, Enabled())
}

func TestOpen(t *testing.T) {
	base := t.TempDir()
	t.Setenv("WITTY_CACHE_DIR", base)
	t.Setenv("WITTY_CACHE", "")

	s := Open("probes", 2)
	assert.True(t, s.Usable())
	assert.Equal(t, filepath.Join(base, "probes"), s.Dir)
	assert.Equal(t, 2*time.Hour, s.MaxAge)

	assert.False(t, Open("probes", 0).Usable())

	t.Setenv("WITTY_CACHE", "false")
	assert.False(t, Open("probes", 2).Usable())
}

func TestPutGet(t *testing.T) {
	s := Store{Dir: filepath.Join(t.TempDir(), "x"), MaxAge: time.Hour}

	_, ok := s.Get("us-east-1/model")
	assert.False(t, ok)

	require.NoError(t, s.Put("us-east-1/model", []byte("ok\n")))
	e, ok := s.Get("us-east-1/model")
	require.True(t, ok)
	assert.Equal(t, "ok", string(e.Data))
	assert.Equal(t, encodeKey("us-east-1/model"), e.EncodedKey)
	assert.Equal(t, s.Path("us-east-1/model"), e.Path)
}

func TestExpiryAndPurge(t *testing.T) {
	s := Store{Dir: t.TempDir(), MaxAge: time.Hour}
	require.NoError(t, s.Put("old", []byte("1")))
	require.NoError(t, s.Put("new", []byte("2")))

	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(s.Path("old"), past, past))

	_, ok := s.Get("old")
	assert.False(t, ok)

	require.NoError(t, s.Purge())
	_, err := os.Stat(s.Path("old"))
	assert.True(t, os.IsNotExist(err))
	_, ok = s.Get("new")
	assert.True(t, ok)
}

func TestDisabledStore(t *testing.T) {
	var s Store
	assert.NoError(t, s.Put("k", []byte("v")))
	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.NoError(t, s.Purge())
}
