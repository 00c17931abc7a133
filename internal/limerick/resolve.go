// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

import (
	"fmt"
	"math/rand"
)

// Draw carries the choices shared by every placeholder of one generation:
// the random source, the topic's word bank and the rhyme set drawn for each
// rhyme group.
type Draw struct {
	rng    *rand.Rand
	words  WordBank
	rhymes map[string]RhymeSet
}

// NewDraw builds a Draw. rhymes may be nil for templates without rhyme
// placeholders.
func NewDraw(rng *rand.Rand, words WordBank, rhymes map[string]RhymeSet) *Draw {
	return &Draw{rng: rng, words: words, rhymes: rhymes}
}

// Binding produces the word for one placeholder.
type Binding func(d *Draw) (string, error)

// Bindings maps placeholder names to the binding that fills them.
type Bindings map[string]Binding

// FromCategory draws a word from a word bank category.
func FromCategory(category string) Binding {
	return func(d *Draw) (string, error) {
		return d.words.Pick(d.rng, category)
	}
}

// FromRhyme takes the word at pos of the set drawn for group. Placeholders
// bound to the same group always share a set, so their words rhyme.
func FromRhyme(group string, pos int) Binding {
	return func(d *Draw) (string, error) {
		set, ok := d.rhymes[group]
		if !ok {
			return "", fmt.Errorf("%w: rhyme group %q was not drawn", ErrMissingWord, group)
		}
		if pos < 0 || pos >= len(set) {
			return "", fmt.Errorf("%w: %s has no position %d", ErrShortRhymeSet, group, pos)
		}
		return set[pos], nil
	}
}

// Literal always yields s.
func Literal(s string) Binding {
	return func(*Draw) (string, error) {
		return s, nil
	}
}

// FromPhrase picks one of phrases and renders it with its own bindings. It is
// used for the middle lines, which are small templates themselves.
func FromPhrase(phrases []Template, sub Bindings) Binding {
	return func(d *Draw) (string, error) {
		if len(phrases) == 0 {
			return "", fmt.Errorf("%w: no phrases", ErrEmptyCategory)
		}
		t := phrases[d.rng.Intn(len(phrases))]
		words, err := sub.Resolve(d, t)
		if err != nil {
			return "", err
		}
		return t.Render(words)
	}
}

// Resolve returns a word for every placeholder in t. A placeholder without
// a binding fails with ErrMissingWord.
func (b Bindings) Resolve(d *Draw, t Template) (map[string]string, error) {
	words := make(map[string]string, len(t.slots))
	for _, slot := range t.slots {
		bind, ok := b[slot]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingWord, slot)
		}
		w, err := bind(d)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", slot, err)
		}
		words[slot] = w
	}
	return words, nil
}
