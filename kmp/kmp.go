// Package kmp implements Knuth-Morris-Pratt substring search over sequences
// of any comparable token type.
//
// A Matcher is built once per pattern and can be run against any number of
// texts. Texts are consumed in a single forward pass, so they may be streams
// that never exist in memory as a whole.
package kmp

import (
	"iter"
	"slices"
)

type (
	// Matcher finds every occurrence of a fixed pattern.
	Matcher[T comparable] struct {
		pattern []T
		// shifts[i] is how far the match start moves after a mismatch once
		// i tokens of the pattern matched.
		shifts []int

		// state of the incremental Feed API
		st state
	}

	state struct {
		start   int
		matched int
	}
)

func New[T comparable](pattern []T) *Matcher[T] {
	p := slices.Clone(pattern)

	shifts := make([]int, len(p)+1)
	for i := range shifts {
		shifts[i] = 1
	}
	shift := 1
	for pos := 0; pos < len(p); pos++ {
		for shift <= pos && p[pos] != p[pos-shift] {
			shift += shifts[pos-shift]
		}
		shifts[pos+1] = shift
	}

	return &Matcher[T]{pattern: p, shifts: shifts}
}

// Len returns the pattern length.
func (m *Matcher[T]) Len() int {
	return len(m.pattern)
}

// Search yields the 0-based start position of every occurrence of the pattern
// in text, left to right, overlapping matches included. When it yields, text
// has been read exactly up to and including the last token of that match.
//
// An empty pattern yields nothing.
func (m *Matcher[T]) Search(text iter.Seq[T]) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(m.pattern) == 0 {
			return
		}
		var st state
		for tok := range text {
			if pos, ok := m.step(&st, tok); ok {
				if !yield(pos) {
					return
				}
			}
		}
	}
}

// Feed advances the incremental matcher by one token of a text. It reports
// the start position of the occurrence that ends at tok, if any. Positions
// count tokens fed since the last Reset.
func (m *Matcher[T]) Feed(tok T) (int, bool) {
	if len(m.pattern) == 0 {
		return 0, false
	}
	return m.step(&m.st, tok)
}

// Reset forgets every token given to Feed.
func (m *Matcher[T]) Reset() {
	m.st = state{}
}

func (m *Matcher[T]) step(st *state, tok T) (int, bool) {
	n := len(m.pattern)
	for st.matched == n || st.matched >= 0 && m.pattern[st.matched] != tok {
		st.start += m.shifts[st.matched]
		st.matched -= m.shifts[st.matched]
	}
	st.matched++
	if st.matched == n {
		return st.start, true
	}
	return 0, false
}

func Search[T comparable](text, pattern []T) iter.Seq[int] {
	return New(pattern).Search(slices.Values(text))
}

// Index returns the position of the first occurrence of pattern in text, or
// -1. An empty pattern is not searched for and reports -1.
func Index[T comparable](text, pattern []T) int {
	for pos := range Search(text, pattern) {
		return pos
	}
	return -1
}

func Contains[T comparable](text, pattern []T) bool {
	return Index(text, pattern) >= 0
}
