// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package limerick

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassic_NoUnresolvedPlaceholders(t *testing.T) {
	g, err := NewClassic(WithSeed(7))
	require.NoError(t, err)

	for _, topic := range []string{"cat", "programming", "coffee", "kayaking", "  Travel  "} {
		for i := 0; i < 25; i++ {
			out, err := g.Generate(topic)
			require.NoError(t, err)
			assert.NotContains(t, out, "{")
			assert.NotContains(t, out, "}")
			assert.Len(t, strings.Split(out, "\n"), 5)
		}
	}
}

func TestClassic_TopicNoun(t *testing.T) {
	g, err := NewClassic(WithSeed(3))
	require.NoError(t, err)
	tmpl := MustParseTemplate("t", "{noun}")

	words, err := g.ResolveWords("Programming", tmpl)
	require.NoError(t, err)
	assert.Equal(t, "programmer", words["noun"])

	words, err = g.ResolveWords("kayaking", tmpl)
	require.NoError(t, err)
	assert.Contains(t, words["noun"], "kayaking")
}

func TestClassic_MissingWordType(t *testing.T) {
	g, err := NewClassic(WithSeed(1), WithTemplates("A {adjective} {wombat}"))
	require.NoError(t, err)

	_, err = g.Generate("cat")
	assert.ErrorIs(t, err, ErrMissingWord)
	assert.Contains(t, err.Error(), "wombat")
}

func TestClassic_Deterministic(t *testing.T) {
	a, err := NewClassic(WithSeed(42))
	require.NoError(t, err)
	b, err := NewClassic(WithSeed(42))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		x, err := a.Generate("dog")
		require.NoError(t, err)
		y, err := b.Generate("dog")
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestNew_Variants(t *testing.T) {
	g, err := New(VariantClassic, WithSeed(1))
	require.NoError(t, err)
	assert.IsType(t, &Classic{}, g)

	g, err = New(VariantEnhanced, WithSeed(1))
	require.NoError(t, err)
	assert.IsType(t, &Enhanced{}, g)

	g, err = New("", WithSeed(1))
	require.NoError(t, err)
	assert.IsType(t, &Enhanced{}, g)

	_, err = New("sonnet")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestNew_BadTemplate(t *testing.T) {
	_, err := New(VariantClassic, WithTemplates("{broken"))
	assert.ErrorIs(t, err, ErrBadTemplate)
}

func TestNew_EmptyProfileCategory(t *testing.T) {
	_, err := New(VariantEnhanced, WithProfiles(Profiles{"tea": {"nouns": {}}}))
	assert.ErrorIs(t, err, ErrEmptyCategory)
}

func TestSuggestion(t *testing.T) {
	g, err := NewEnhanced(WithSeed(5))
	require.NoError(t, err)

	s := g.Suggestion()
	assert.NotEmpty(t, s)
	assert.Contains(t, enhancedCatalog().suggestions, s)
}
