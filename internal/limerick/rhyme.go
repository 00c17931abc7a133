// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrShortRhymeSet is returned when a rhyme set cannot supply a pair.
var ErrShortRhymeSet = errors.New("rhyme set needs at least two words")

// RhymeSet is a group of words sharing an ending sound. Any two words taken
// from the same set rhyme.
type RhymeSet []string

// Has reports whether every word is a member of the set.
func (s RhymeSet) Has(words ...string) bool {
	for _, w := range words {
		found := false
		for _, m := range s {
			if m == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// RhymeGroups maps a rhyme group (places, names, actions) to its sets.
type RhymeGroups map[string][]RhymeSet

// Validate checks that every group has sets and every set can supply a pair.
func (g RhymeGroups) Validate() error {
	for name, sets := range g {
		if len(sets) == 0 {
			return fmt.Errorf("%w: rhyme group %s", ErrEmptyCategory, name)
		}
		for i, s := range sets {
			if len(s) < 2 {
				return fmt.Errorf("%w: %s[%d]", ErrShortRhymeSet, name, i)
			}
		}
	}
	return nil
}

// choose draws one set from group and returns it with its index.
func (g RhymeGroups) choose(rng *rand.Rand, group string) (int, RhymeSet, error) {
	sets := g[group]
	if len(sets) == 0 {
		return 0, nil, fmt.Errorf("%w: no rhyme group %q", ErrMissingWord, group)
	}
	i := rng.Intn(len(sets))
	return i, sets[i], nil
}
