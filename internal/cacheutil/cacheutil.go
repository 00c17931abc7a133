// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
)

// Entry is a cached artifact on disk. Key is the clear-text key and
// EncodedKey the hashed filename.
type Entry struct {
	Key        string
	EncodedKey string
	Path       string
	Data       []byte
	Written    time.Time
}

// Store is a directory of hashed-key files that expire after MaxAge.
// A zero Store is disabled.
type Store struct {
	Dir    string
	MaxAge time.Duration
}

// Dir resolves the base cache directory.
// Precedence:
//  1. WITTY_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/witty
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("WITTY_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "witty"), true
	}
	return "", false
}

// Enabled returns true unless WITTY_CACHE explicitly disables it ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("WITTY_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// Open returns a Store rooted at Dir()/sub whose entries live for hours.
// Caching is off when hours <= 0, WITTY_CACHE disables it, or no base
// directory resolves.
func Open(sub string, hours int) Store {
	if hours <= 0 || !Enabled() {
		log.Debug("cache disabled")
		return Store{}
	}
	base, ok := Dir()
	if !ok {
		return Store{}
	}
	return Store{
		Dir:    filepath.Join(base, sub),
		MaxAge: time.Duration(hours) * time.Hour,
	}
}

// Usable reports whether the store reads and writes anything.
func (s Store) Usable() bool {
	return s.Dir != "" && s.MaxAge > 0
}

// Path returns where key would be stored.
func (s Store) Path(key string) string {
	return filepath.Join(s.Dir, encodeKey(key))
}

// Get returns the entry for key if it exists and has not expired.
func (s Store) Get(key string) (*Entry, bool) {
	if !s.Usable() {
		return nil, false
	}
	p := s.Path(key)
	info, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > s.MaxAge {
		log.Debugf("cache entry %s expired", p)
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	return &Entry{
		Key:        key,
		EncodedKey: encodeKey(key),
		Path:       p,
		Data:       bytes.TrimSpace(b),
		Written:    info.ModTime(),
	}, true
}

// Put stores data under key, creating the directory as needed.
func (s Store) Put(key string, data []byte) error {
	if !s.Usable() {
		return nil
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(s.Path(key), data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// Purge removes expired files from the store.
func (s Store) Purge() error {
	if !s.Usable() {
		return nil
	}
	if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
		return nil
	}
	if err := filepath.Walk(s.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil //nolint:nilerr
		}
		if !info.IsDir() && time.Since(info.ModTime()) > s.MaxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// encodeKey hashes k with MD5 and returns the hex string.
func encodeKey(k string) string {
	h := md5.New()
	_, _ = h.Write([]byte(k))
	return hex.EncodeToString(h.Sum(nil))
}
