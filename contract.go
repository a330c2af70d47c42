package seqtrie

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Contract describes a sequence-like key type K made of tokens of type T.
//
// Implementations must form a monoid: Concat is associative, Empty is its
// identity, and folding Concat over Unit of every token of a key starting at
// Empty gives the key back. Every key contains the identity and itself.
type Contract[K any, T comparable] interface {
	// Empty returns the identity element, the key of length zero.
	Empty() K
	// Tokens iterates the tokens of k from first to last.
	Tokens(k K) iter.Seq[T]
	// Unit returns the key made of the single token t.
	Unit(t T) K
	Concat(a, b K) K
	Len(k K) int
	Equal(a, b K) bool
	// Contains reports whether needle occurs as a contiguous run of tokens in haystack.
	Contains(haystack, needle K) bool
}

var (
	// Runes treats strings as sequences of Unicode code points. Strings that
	// are not valid UTF-8 do not satisfy it.
	Runes Contract[string, rune] = runeContract{}
	// Bytes treats strings as sequences of bytes.
	Bytes Contract[string, byte] = byteContract{}
)

type (
	runeContract struct{}
	byteContract struct{}
)

func (runeContract) Empty() string { return "" }

func (runeContract) Tokens(k string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range k {
			if !yield(r) {
				return
			}
		}
	}
}

func (runeContract) Unit(r rune) string { return string(r) }
func (runeContract) Concat(a, b string) string { return a + b }
func (runeContract) Len(k string) int { return utf8.RuneCountInString(k) }
func (runeContract) Equal(a, b string) bool { return a == b }
func (runeContract) Contains(haystack, needle string) bool { return strings.Contains(haystack, needle) }

func (byteContract) Empty() string { return "" }

func (byteContract) Tokens(k string) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(k); i++ {
			if !yield(k[i]) {
				return
			}
		}
	}
}

func (byteContract) Unit(b byte) string { return string([]byte{b}) }
func (byteContract) Concat(a, b string) string { return a + b }
func (byteContract) Len(k string) int { return len(k) }
func (byteContract) Equal(a, b string) bool { return a == b }
func (byteContract) Contains(haystack, needle string) bool { return strings.Contains(haystack, needle) }

// IsSequenceLike reports whether candidate could belong to a sequence-like
// type whose identity is identity, under the operations of c. It can only
// test the one value it is given, so a true result is evidence, not proof.
// A contract that panics while being checked fails the check.
func IsSequenceLike[K any, T comparable](c Contract[K, T], candidate, identity K) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	if !c.Contains(candidate, identity) || !c.Contains(candidate, candidate) {
		return false
	}

	left, right := c.Concat(identity, candidate), c.Concat(candidate, identity)
	if !c.Equal(left, candidate) || !c.Equal(right, candidate) {
		return false
	}

	acc := identity
	for tok := range c.Tokens(candidate) {
		acc = c.Concat(acc, c.Unit(tok))
	}
	return c.Equal(acc, candidate)
}
