// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

// DefaultHistorySize is how many recent combinations are remembered.
const DefaultHistorySize = 10

// Signature identifies a (template, place set, action set) combination.
type Signature struct {
	Template int
	Places   int
	Actions  int
}

// History is a bounded FIFO of recently used signatures. It is not safe for
// concurrent use; the owning generator serializes access.
type History struct {
	capacity int
	entries  []Signature
}

// NewHistory returns an empty history holding at most capacity entries.
// A capacity below one is raised to one.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{capacity: capacity, entries: make([]Signature, 0, capacity+1)}
}

// Seen reports whether sig is among the recent entries.
func (h *History) Seen(sig Signature) bool {
	for _, e := range h.entries {
		if e == sig {
			return true
		}
	}
	return false
}

// Push records sig, dropping the oldest entry once the capacity is exceeded.
func (h *History) Push(sig Signature) {
	h.entries = append(h.entries, sig)
	if len(h.entries) > h.capacity {
		h.entries = append(h.entries[:0], h.entries[len(h.entries)-h.capacity:]...)
	}
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Cap() int {
	return h.capacity
}

// Entries returns the recorded signatures, oldest first.
func (h *History) Entries() []Signature {
	out := make([]Signature, len(h.entries))
	copy(out, h.entries)
	return out
}
