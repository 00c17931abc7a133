// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package limerick

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var supportedTopics = []string{"cat", "dog", "programming", "coffee", "kayaking", "pizza"}

func TestEnhanced_NoUnresolvedPlaceholders(t *testing.T) {
	g, err := NewEnhanced(WithSeed(11))
	require.NoError(t, err)

	for _, topic := range supportedTopics {
		for i := 0; i < 40; i++ {
			out, err := g.Generate(topic)
			require.NoError(t, err)
			assert.NotContains(t, out, "{", "topic %s: %s", topic, out)
			assert.NotContains(t, out, "}", "topic %s: %s", topic, out)
			assert.Len(t, strings.Split(out, "\n"), 5)
		}
	}
}

func TestEnhanced_PairedRhymesShareSet(t *testing.T) {
	g, err := NewEnhanced(WithSeed(23))
	require.NoError(t, err)
	groups := g.RhymeGroups()

	pairs := map[string][2]string{
		groupPlaces:  {"place1", "place2"},
		groupNames:   {"name1", "name2"},
		groupActions: {"end1", "end2"},
	}

	for i := 0; i < 200; i++ {
		r, err := g.Compose(supportedTopics[i%len(supportedTopics)])
		require.NoError(t, err)
		if r.Fallback {
			continue
		}
		for group, pair := range pairs {
			a, okA := r.Words[pair[0]]
			b, okB := r.Words[pair[1]]
			if !okA || !okB {
				continue
			}
			together := false
			for _, set := range groups[group] {
				if set.Has(a, b) {
					together = true
					break
				}
			}
			assert.True(t, together, "%s and %s should come from one %s set", a, b, group)
		}
	}
}

func TestEnhanced_NoRepeatOfRecentSignature(t *testing.T) {
	g, err := NewEnhanced(WithSeed(99))
	require.NoError(t, err)

	var last *Signature
	for i := 0; i < 100; i++ {
		before := g.History()
		r, err := g.Compose("cat")
		require.NoError(t, err)

		after := g.History()
		assert.LessOrEqual(t, len(after), DefaultHistorySize)

		if r.Fallback {
			assert.Equal(t, before, after, "fallback must not touch the history")
			continue
		}
		for _, s := range before {
			assert.NotEqual(t, s, r.Signature)
		}
		if last != nil {
			assert.NotEqual(t, *last, r.Signature)
		}
		sig := r.Signature
		last = &sig
	}
}

func TestEnhanced_HistorySize(t *testing.T) {
	g, err := NewEnhanced(WithSeed(4), WithHistorySize(3))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		_, err := g.Generate("dog")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(g.History()), 3)
	}
}

func TestEnhanced_CatNouns(t *testing.T) {
	g, err := NewEnhanced(WithSeed(8))
	require.NoError(t, err)
	catNouns := []string{"cat", "kitten", "feline", "tabby", "tom"}
	tmpl := MustParseTemplate("t", "{noun1} {verb1} {adj1}")

	for i := 0; i < 30; i++ {
		words, err := g.ResolveWords(" CAT ", tmpl)
		require.NoError(t, err)
		assert.Contains(t, catNouns, words["noun1"])
		assert.NotContains(t, words["noun1"], "lover")
	}

	for i := 0; i < 30; i++ {
		r, err := g.Compose("cat")
		require.NoError(t, err)
		key := "noun1"
		if r.Fallback {
			key = "noun"
		}
		assert.Contains(t, catNouns, r.Words[key])
	}
}

func TestEnhanced_UnknownTopicUsesGenericProfile(t *testing.T) {
	g, err := NewEnhanced(WithSeed(15))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		out, err := g.Generate("Kayaking")
		require.NoError(t, err)
		assert.Contains(t, out, "kayaking")
	}
}

func TestEnhanced_EveryTemplateNamesTopicNoun(t *testing.T) {
	g, err := NewEnhanced(WithSeed(1))
	require.NoError(t, err)

	require.Len(t, g.Templates(), 6)
	for _, tmpl := range g.Templates() {
		assert.Contains(t, tmpl.Slots(), "noun1", tmpl.String())
	}
}

func TestEnhanced_ConfiguredProfile(t *testing.T) {
	g, err := NewEnhanced(WithSeed(2), WithProfiles(Profiles{
		"sailing": {"nouns": {"sailor", "skipper"}},
	}))
	require.NoError(t, err)

	tmpl := MustParseTemplate("t", "{noun1} {verb1}")
	words, err := g.ResolveWords("sailing", tmpl)
	require.NoError(t, err)
	assert.Contains(t, []string{"sailor", "skipper"}, words["noun1"])
	// Categories the profile leaves out come from the generic profile.
	assert.Contains(t, GenericProfile("sailing")["verbs"], words["verb1"])
}

func TestEnhanced_FallsBackWhenEveryCombinationIsRecent(t *testing.T) {
	// One template, 5 place sets and 5 action sets gives 25 combinations; a
	// history larger than that eventually rejects everything.
	src := enhancedCatalog().templates[0]
	g, err := NewEnhanced(WithSeed(31), WithTemplates(src), WithHistorySize(100))
	require.NoError(t, err)

	var r Result
	for i := 0; i < 1000; i++ {
		r, err = g.Compose("dog")
		require.NoError(t, err)
	}

	assert.True(t, r.Fallback)
	assert.Len(t, g.History(), 25)
	assert.Contains(t, r.Text, "so bright")
	assert.Contains(t, []string{"dog", "puppy", "hound", "mutt", "pup"}, r.Words["noun"])
	assert.Equal(t, Signature{}, r.Signature)
}

func TestEnhanced_MissingWordType(t *testing.T) {
	g, err := NewEnhanced(WithSeed(1), WithTemplates("A {adj1} {gizmo}"))
	require.NoError(t, err)

	_, err = g.Generate("cat")
	assert.ErrorIs(t, err, ErrMissingWord)
	assert.Contains(t, err.Error(), "gizmo")
}

func TestEnhanced_ConcurrentUse(t *testing.T) {
	g, err := NewEnhanced(WithSeed(6))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_, err := g.Generate("coffee")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, len(g.History()), DefaultHistorySize)
}
