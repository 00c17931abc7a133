// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/apex/log"
)

// Variant names accepted by New.
const (
	VariantClassic  = "classic"
	VariantEnhanced = "enhanced"
)

// Variants lists the generator variants in display order.
var Variants = []string{VariantEnhanced, VariantClassic}

// ErrUnknownVariant is returned by New for an unrecognized variant.
var ErrUnknownVariant = errors.New("unknown limerick variant")

// Generator produces a limerick for a topic.
type Generator interface {
	Generate(topic string) (string, error)
	Suggestion() string
}

// options holds the overrides applied when building a generator.
type options struct {
	rng         *rand.Rand
	profiles    Profiles
	templates   []string
	historySize int
}

// Option customizes a generator. With no options the generator is
// time-seeded and uses its built-in catalog.
type Option func(*options)

// WithSeed makes generation deterministic.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects the random source. The generator takes ownership of r.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithProfiles adds topic profiles, replacing built-in ones of the same name.
func WithProfiles(p Profiles) Option {
	return func(o *options) { o.profiles = p }
}

// WithTemplates replaces the built-in template set.
func WithTemplates(src ...string) Option {
	return func(o *options) { o.templates = src }
}

// WithHistorySize sets how many recent combinations the enhanced variant
// avoids. Ignored by the classic variant.
func WithHistorySize(n int) Option {
	return func(o *options) { o.historySize = n }
}

// New builds the named generator variant.
func New(variant string, opts ...Option) (Generator, error) {
	switch variant {
	case VariantClassic:
		return NewClassic(opts...)
	case VariantEnhanced, "":
		return NewEnhanced(opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

func buildOptions(opts []Option) options {
	o := options{historySize: DefaultHistorySize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// catalog is the static configuration of one variant.
type catalog struct {
	templates   []string
	generic     WordBank
	profiles    Profiles
	rhymes      RhymeGroups
	bindings    Bindings
	suggestions []string
	// fallback builds the overlay for a topic with no profile.
	fallback func(topic string) WordBank
}

// engine is the shared state of both variants. mu guards rng and anything
// the embedding generator mutates.
type engine struct {
	mu          sync.Mutex
	rng         *rand.Rand
	templates   []Template
	generic     WordBank
	profiles    Profiles
	rhymes      RhymeGroups
	bindings    Bindings
	suggestions []string
	fallback    func(topic string) WordBank
}

func newEngine(name string, c catalog, o options) (*engine, error) {
	sources := c.templates
	if len(o.templates) > 0 {
		sources = o.templates
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w: no templates", name, ErrBadTemplate)
	}

	e := &engine{
		rng:         o.rng,
		generic:     c.generic,
		profiles:    c.profiles.Merge(o.profiles),
		rhymes:      c.rhymes,
		bindings:    c.bindings,
		suggestions: c.suggestions,
		fallback:    c.fallback,
	}

	for i, src := range sources {
		t, err := ParseTemplate(fmt.Sprintf("%s#%d", name, i), src)
		if err != nil {
			return nil, err
		}
		e.templates = append(e.templates, t)
	}

	if err := e.generic.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := e.profiles.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := e.rhymes.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return e, nil
}

// selectTemplate picks a template uniformly. Caller holds mu.
func (e *engine) selectTemplate() (int, Template) {
	i := e.rng.Intn(len(e.templates))
	log.Debugf("template: %s", e.templates[i].Name)
	return i, e.templates[i]
}

// words returns the bank for a normalized topic: the generic bank overlaid
// with the synthesized topic words and then with the topic's profile, so a
// partial profile still covers every category.
func (e *engine) words(topic string) WordBank {
	wb := e.generic.Overlay(e.fallback(topic))
	if p, ok := e.profiles[topic]; ok {
		log.Debugf("profile: %s", topic)
		return wb.Overlay(p)
	}
	log.Debugf("no profile for %q, using generic words", topic)
	return wb
}

// Suggestion returns a random topic worth trying.
func (e *engine) Suggestion() string {
	if len(e.suggestions) == 0 {
		return "cat"
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.suggestions[e.rng.Intn(len(e.suggestions))]
}

// Templates returns the parsed template set.
func (e *engine) Templates() []Template {
	out := make([]Template, len(e.templates))
	copy(out, e.templates)
	return out
}
