// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrEmptyCategory is returned by Validate for a category with no words.
var ErrEmptyCategory = errors.New("empty word category")

// WordBank maps a category name (nouns, verbs, places...) to its candidate
// words.
type WordBank map[string][]string

// Validate reports the first (by name) category that has no words.
func (wb WordBank) Validate() error {
	names := make([]string, 0, len(wb))
	for name := range wb {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if len(wb[name]) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyCategory, name)
		}
	}
	return nil
}

// Pick draws one word uniformly from category.
func (wb WordBank) Pick(rng *rand.Rand, category string) (string, error) {
	words, ok := wb[category]
	if !ok || len(words) == 0 {
		return "", fmt.Errorf("%w: no category %q", ErrMissingWord, category)
	}
	return words[rng.Intn(len(words))], nil
}

// Overlay returns a new bank holding wb's categories with those in over
// taking precedence. Neither input is modified.
func (wb WordBank) Overlay(over WordBank) WordBank {
	out := make(WordBank, len(wb)+len(over))
	for k, v := range wb {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}
