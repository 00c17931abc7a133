// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

import (
	"sort"

	"github.com/apex/log"
)

// maxAttempts bounds how many combinations Compose draws before settling
// for the simple limerick.
const maxAttempts = 5

// Rhyme groups drawn once per enhanced generation.
const (
	groupPlaces  = "places"
	groupNames   = "names"
	groupActions = "actions"
)

// simpleLimerick is used when every drawn combination was recently used. It
// only takes the topic's adjective, noun and verb.
var simpleLimerick = MustParseTemplate("simple",
	"There once was a {adj} {noun} so bright,\n"+
		"Who {verb} from morning till night,\n"+
		"They'd dance and they'd play,\n"+
		"In their own special way,\n"+
		"What a truly delightful sight!")

var simpleBindings = Bindings{
	"adj":  FromCategory("adjectives"),
	"noun": FromCategory("nouns"),
	"verb": FromCategory("verbs"),
}

// Result is one enhanced generation.
type Result struct {
	Text      string
	Signature Signature
	// Fallback is set when the simple limerick was used. Signature is then
	// the zero value and nothing was recorded in the history.
	Fallback bool
	Words    map[string]string
}

// Enhanced draws from six templates, topic profiles and rhyme sets and
// avoids repeating a recent (template, rhyme set) combination.
type Enhanced struct {
	*engine
	history *History
}

// NewEnhanced builds an enhanced generator.
func NewEnhanced(opts ...Option) (*Enhanced, error) {
	o := buildOptions(opts)
	e, err := newEngine(VariantEnhanced, enhancedCatalog(), o)
	if err != nil {
		return nil, err
	}
	return &Enhanced{engine: e, history: NewHistory(o.historySize)}, nil
}

// Generate returns a limerick about topic, avoiding recent combinations.
func (g *Enhanced) Generate(topic string) (string, error) {
	r, err := g.Compose(topic)
	if err != nil {
		return "", err
	}
	return r.Text, nil
}

// Compose draws up to maxAttempts combinations and renders the first one
// missing from the history. When all collide it renders the simple limerick.
func (g *Enhanced) Compose(topic string) (Result, error) {
	topic = NormalizeTopic(topic)

	g.mu.Lock()
	defer g.mu.Unlock()

	words := g.words(topic)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ti, t := g.selectTemplate()
		pi, places, err := g.rhymes.choose(g.rng, groupPlaces)
		if err != nil {
			return Result{}, err
		}
		ai, actions, err := g.rhymes.choose(g.rng, groupActions)
		if err != nil {
			return Result{}, err
		}
		_, names, err := g.rhymes.choose(g.rng, groupNames)
		if err != nil {
			return Result{}, err
		}

		sig := Signature{Template: ti, Places: pi, Actions: ai}
		if g.history.Seen(sig) {
			log.Debugf("combination %+v used recently (attempt %d)", sig, attempt)
			continue
		}

		draw := NewDraw(g.rng, words, map[string]RhymeSet{
			groupPlaces:  places,
			groupNames:   names,
			groupActions: actions,
		})
		resolved, err := g.bindings.Resolve(draw, t)
		if err != nil {
			return Result{}, err
		}
		text, err := t.Render(resolved)
		if err != nil {
			return Result{}, err
		}

		g.history.Push(sig)
		return Result{Text: text, Signature: sig, Words: resolved}, nil
	}

	log.Debugf("no fresh combination after %d attempts, using simple limerick", maxAttempts)
	resolved, err := simpleBindings.Resolve(NewDraw(g.rng, words, nil), simpleLimerick)
	if err != nil {
		return Result{}, err
	}
	text, err := simpleLimerick.Render(resolved)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text, Fallback: true, Words: resolved}, nil
}

// ResolveWords draws words for every placeholder of t with freshly drawn
// rhyme sets. The history is not consulted or updated.
func (g *Enhanced) ResolveWords(topic string, t Template) (map[string]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	groups := make([]string, 0, len(g.rhymes))
	for group := range g.rhymes {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	rhymes := make(map[string]RhymeSet, len(groups))
	for _, group := range groups {
		_, set, err := g.rhymes.choose(g.rng, group)
		if err != nil {
			return nil, err
		}
		rhymes[group] = set
	}
	return g.bindings.Resolve(NewDraw(g.rng, g.words(NormalizeTopic(topic)), rhymes), t)
}

// History returns the recorded signatures, oldest first.
func (g *Enhanced) History() []Signature {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.history.Entries()
}

// RhymeGroups exposes the configured rhyme sets.
func (g *Enhanced) RhymeGroups() RhymeGroups {
	return g.rhymes
}
