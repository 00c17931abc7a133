// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingWord is returned when a template placeholder has no word to
	// substitute. It indicates a template/word bank mismatch, not bad input.
	ErrMissingWord = errors.New("missing word type")

	// ErrBadTemplate is returned when a template cannot be parsed.
	ErrBadTemplate = errors.New("malformed template")
)

// Template is a multi-line pattern with named {slot} placeholders. It is
// parsed once into alternating literal and slot segments.
type Template struct {
	Name     string
	source   string
	segments []segment
	slots    []string
}

type segment struct {
	text string
	slot bool
}

// ParseTemplate splits src into literal text and {name} placeholders.
func ParseTemplate(name string, src string) (Template, error) {
	t := Template{Name: name, source: src}
	seen := make(map[string]bool)

	rest := src
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			t.segments = append(t.segments, segment{text: rest})
			break
		}
		if open > 0 {
			t.segments = append(t.segments, segment{text: rest[:open]})
		}

		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			offset := len(src) - len(rest) + open
			return Template{}, fmt.Errorf("%w: %s: unterminated placeholder at offset %d", ErrBadTemplate, name, offset)
		}

		slot := rest[open+1 : open+end]
		if slot == "" || strings.ContainsAny(slot, "{ \t\n") {
			return Template{}, fmt.Errorf("%w: %s: invalid placeholder %q", ErrBadTemplate, name, slot)
		}

		t.segments = append(t.segments, segment{text: slot, slot: true})
		if !seen[slot] {
			seen[slot] = true
			t.slots = append(t.slots, slot)
		}
		rest = rest[open+end+1:]
	}

	return t, nil
}

// MustParseTemplate is ParseTemplate for the built-in catalogs. It panics on
// a malformed template.
func MustParseTemplate(name string, src string) Template {
	t, err := ParseTemplate(name, src)
	if err != nil {
		panic(err)
	}
	return t
}

// Slots returns the distinct placeholder names in first-appearance order.
func (t Template) Slots() []string {
	out := make([]string, len(t.slots))
	copy(out, t.slots)
	return out
}

// String returns the unparsed template text.
func (t Template) String() string {
	return t.source
}

// Render substitutes every placeholder with its word. Line breaks in the
// template are preserved as-is.
func (t Template) Render(words map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(t.source))

	for _, s := range t.segments {
		if !s.slot {
			b.WriteString(s.text)
			continue
		}
		w, ok := words[s.text]
		if !ok {
			return "", fmt.Errorf("%w %q", ErrMissingWord, s.text)
		}
		b.WriteString(w)
	}

	return b.String(), nil
}
