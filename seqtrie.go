// Package seqtrie provides tries over arbitrary sequence-like keys.
//
// A key type only has to form a sequence of comparable tokens with an
// identity element and a concatenation operation, described by a Contract.
// Strings (as runes or bytes) and Tuple values are supported out of the box,
// which makes tries of characters, word n-grams, numeric sequences or graph
// paths equally easy to build.
//
// Tries are insert-only and not safe for concurrent use; see SyncSet.
package seqtrie

import (
	"errors"
)

const (
	linear nodeType = iota
	hashed
)

const (
	// node constraints
	// a linear node keeps up to linearMax children before it grows into a hashed node
	linearMax = 16
)

var (
	ErrContractViolation    = errors.New("key does not satisfy the sequence contract")
	ErrNotAPrefix           = errors.New("not a prefix of any contained key")
	ErrNoPrefixFound        = errors.New("no contained key is a prefix")
	ErrIncompatibleIdentity = errors.New("tries have different identity elements")
	ErrNoMoreKeys           = errors.New("there are no more keys in the iterator")
)

type (
	nodeType int

	// node of a trie. The path of tokens from the root to a node spells a
	// prefix of at least one contained key; terminal marks the prefixes that
	// are keys themselves.
	node[T comparable, V any] struct {
		_type nodeType

		// linear children, keys[i] labels the edge to children[i]
		keys     []T
		children []*node[T, V]
		// hashed children
		table map[T]*node[T, V]

		terminal bool
		value    V
	}

	// tree is the engine shared by Set and Dict.
	tree[K any, T comparable, V any] struct {
		contract Contract[K, T]
		identity K
		root     *node[T, V]
		opts     options
	}

	walkLevel[K any, T comparable, V any] struct {
		node  *node[T, V]
		acc   K
		depth int
	}
)

func newNode[T comparable, V any]() *node[T, V] {
	return &node[T, V]{_type: linear}
}

func (t nodeType) String() string {
	return []string{"Linear", "Hashed"}[t]
}
