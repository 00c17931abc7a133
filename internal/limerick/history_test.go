// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package limerick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_BoundedFIFO(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Push(Signature{Template: i})
		assert.LessOrEqual(t, h.Len(), 3)
	}

	assert.Equal(t, []Signature{{Template: 2}, {Template: 3}, {Template: 4}}, h.Entries())
	assert.False(t, h.Seen(Signature{Template: 0}))
	assert.True(t, h.Seen(Signature{Template: 4}))
}

func TestHistory_MinimumCapacity(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, 1, h.Cap())

	h.Push(Signature{Places: 1})
	h.Push(Signature{Places: 2})
	assert.Equal(t, []Signature{{Places: 2}}, h.Entries())
}

func TestHistory_EntriesIsCopy(t *testing.T) {
	h := NewHistory(2)
	h.Push(Signature{Actions: 1})

	e := h.Entries()
	e[0] = Signature{Actions: 9}
	assert.True(t, h.Seen(Signature{Actions: 1}))
}
