package seqtrie

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/e11jah/seqtrie/kmp"
)

// Tuple is an immutable sequence of arbitrary comparable tokens. It makes
// word n-grams, numeric sequences, graph paths and the like usable as trie
// keys through TupleOf.
//
// The zero value is the empty tuple, the identity of Concat.
type Tuple[T comparable] struct {
	tokens []T
}

// NewTuple copies tokens into a new tuple.
func NewTuple[T comparable](tokens ...T) Tuple[T] {
	if len(tokens) == 0 {
		return Tuple[T]{}
	}
	return Tuple[T]{tokens: slices.Clone(tokens)}
}

func (t Tuple[T]) Len() int {
	return len(t.tokens)
}

func (t Tuple[T]) IsEmpty() bool {
	return len(t.tokens) == 0
}

// Token returns the raw i-th token.
func (t Tuple[T]) Token(i int) T {
	return t.tokens[i]
}

// At returns the i-th token as a tuple of length one.
func (t Tuple[T]) At(i int) Tuple[T] {
	return Tuple[T]{tokens: t.tokens[i : i+1 : i+1]}
}

// Slice returns the tokens in [i, j) as a tuple, with slice expression bounds rules.
func (t Tuple[T]) Slice(i, j int) Tuple[T] {
	tokens := t.tokens[i:j:j]
	if len(tokens) == 0 {
		return Tuple[T]{}
	}
	return Tuple[T]{tokens: tokens}
}

func (t Tuple[T]) Concat(other Tuple[T]) Tuple[T] {
	switch {
	case len(other.tokens) == 0:
		return t
	case len(t.tokens) == 0:
		return other
	}
	tokens := make([]T, 0, len(t.tokens)+len(other.tokens))
	tokens = append(tokens, t.tokens...)
	tokens = append(tokens, other.tokens...)
	return Tuple[T]{tokens: tokens}
}

// Tokens iterates the raw tokens.
func (t Tuple[T]) Tokens() iter.Seq[T] {
	return slices.Values(t.tokens)
}

// All iterates the tokens, each one wrapped as a tuple of length one.
func (t Tuple[T]) All() iter.Seq[Tuple[T]] {
	return func(yield func(Tuple[T]) bool) {
		for i := range t.tokens {
			if !yield(t.At(i)) {
				return
			}
		}
	}
}

func (t Tuple[T]) Equal(other Tuple[T]) bool {
	return slices.Equal(t.tokens, other.tokens)
}

// Contains reports whether needle occurs as a contiguous run of tokens in t.
// Every tuple contains the empty tuple.
func (t Tuple[T]) Contains(needle Tuple[T]) bool {
	if needle.IsEmpty() {
		return true
	}
	return kmp.Contains(t.tokens, needle.tokens)
}

func (t Tuple[T]) String() string {
	parts := make([]string, len(t.tokens))
	for i, tok := range t.tokens {
		parts[i] = fmt.Sprintf("%v", tok)
	}
	return "Tuple(" + strings.Join(parts, ", ") + ")"
}

type tupleContract[T comparable] struct{}

// TupleOf returns the contract of tuples of T. Its identity is the empty tuple.
func TupleOf[T comparable]() Contract[Tuple[T], T] {
	return tupleContract[T]{}
}

func (tupleContract[T]) Empty() Tuple[T] { return Tuple[T]{} }
func (tupleContract[T]) Tokens(k Tuple[T]) iter.Seq[T] { return k.Tokens() }
func (tupleContract[T]) Unit(tok T) Tuple[T] { return Tuple[T]{tokens: []T{tok}} }
func (tupleContract[T]) Concat(a, b Tuple[T]) Tuple[T] { return a.Concat(b) }
func (tupleContract[T]) Len(k Tuple[T]) int { return k.Len() }
func (tupleContract[T]) Equal(a, b Tuple[T]) bool { return a.Equal(b) }
func (tupleContract[T]) Contains(haystack, needle Tuple[T]) bool { return haystack.Contains(needle) }
