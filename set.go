package seqtrie

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Set is an insert-only set of sequence-like keys.
type Set[K any, T comparable] struct {
	*tree[K, T, struct{}]
}

// NewSet returns an empty set of keys described by c. It fails with
// ErrContractViolation if the identity of c does not pass IsSequenceLike.
func NewSet[K any, T comparable](c Contract[K, T], opts ...OptionFn) (*Set[K, T], error) {
	t, err := newTree[K, T, struct{}](c, opts)
	if err != nil {
		return nil, err
	}
	return &Set[K, T]{tree: t}, nil
}

// NewSetFrom returns a set populated with keys.
func NewSetFrom[K any, T comparable](c Contract[K, T], keys []K, opts ...OptionFn) (*Set[K, T], error) {
	s, err := NewSet(c, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Update(keys...); err != nil {
		return nil, err
	}
	return s, nil
}

// Insert adds key. Inserting a contained key changes nothing. A key rejected
// by the contract check leaves the set untouched.
func (s *Set[K, T]) Insert(key K) error {
	_, _, err := s.insert(key)
	return err
}

// Update inserts keys in order and stops at the first rejected one; the keys
// before it stay inserted.
func (s *Set[K, T]) Update(keys ...K) error {
	for _, key := range keys {
		if err := s.Insert(key); err != nil {
			return err
		}
	}
	return nil
}

// Union returns a new set with the keys of s and other.
func (s *Set[K, T]) Union(other *Set[K, T]) (*Set[K, T], error) {
	res, err := s.derive(other, "union")
	if err != nil {
		return nil, err
	}
	for key := range Seq(s.Keys()) {
		res.put(key)
	}
	for key := range Seq(other.Keys()) {
		res.put(key)
	}
	return res, nil
}

// Intersection returns a new set with the keys contained in both s and other.
func (s *Set[K, T]) Intersection(other *Set[K, T]) (*Set[K, T], error) {
	res, err := s.derive(other, "intersection")
	if err != nil {
		return nil, err
	}
	for key := range Seq(s.Keys()) {
		if other.Contains(key) {
			res.put(key)
		}
	}
	return res, nil
}

// Difference returns a new set with the keys of s that other does not contain.
func (s *Set[K, T]) Difference(other *Set[K, T]) (*Set[K, T], error) {
	res, err := s.derive(other, "difference")
	if err != nil {
		return nil, err
	}
	for key := range Seq(s.Keys()) {
		if !other.Contains(key) {
			res.put(key)
		}
	}
	return res, nil
}

func (s *Set[K, T]) IsSubsetOf(other *Set[K, T]) bool {
	for key := range Seq(s.Keys()) {
		if !other.Contains(key) {
			return false
		}
	}
	return true
}

func (s *Set[K, T]) IsSupersetOf(other *Set[K, T]) bool {
	return other.IsSubsetOf(s)
}

// Equal reports whether s and other contain the same keys, however their
// trees are shaped.
func (s *Set[K, T]) Equal(other *Set[K, T]) bool {
	return s.IsSubsetOf(other) && other.IsSubsetOf(s)
}

func (s *Set[K, T]) String() string {
	var sb strings.Builder
	sb.WriteString("Set[")
	first := true
	for key := range Seq(s.Keys()) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", key)
	}
	sb.WriteByte(']')
	return sb.String()
}

// derive returns an empty set sharing the contract and options of s, once
// other is known to use the same identity.
func (s *Set[K, T]) derive(other *Set[K, T], op string) (*Set[K, T], error) {
	if !s.contract.Equal(s.identity, other.identity) {
		s.opts.logger.Warn("set operation on tries with different identities",
			zap.String("op", op), zap.Any("identity", s.identity), zap.Any("otherIdentity", other.identity))
		return nil, fmt.Errorf("%w: %v and %v", ErrIncompatibleIdentity, s.identity, other.identity)
	}
	return &Set[K, T]{tree: s.emptyLike()}, nil
}
