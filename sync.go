package seqtrie

import (
	"sync"
)

// SyncSet guards a Set with a read-write lock so it can be shared between
// goroutines. Inserts are exclusive. Enumerations run under the read lock
// and return the keys found at call time.
type SyncSet[K any, T comparable] struct {
	mu  sync.RWMutex
	set *Set[K, T]
}

func NewSyncSet[K any, T comparable](c Contract[K, T], opts ...OptionFn) (*SyncSet[K, T], error) {
	s, err := NewSet(c, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncSet[K, T]{set: s}, nil
}

func (s *SyncSet[K, T]) Insert(key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Insert(key)
}

func (s *SyncSet[K, T]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Contains(key)
}

func (s *SyncSet[K, T]) HasPrefix(prefix K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.HasPrefix(prefix)
}

func (s *SyncSet[K, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Len()
}

func (s *SyncSet[K, T]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Collect(s.set.Keys())
}

func (s *SyncSet[K, T]) Successors(prefix K) ([]K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collectErr[K](s.set.Successors(prefix))
}

func (s *SyncSet[K, T]) Suffixes(prefix K, membersOnly bool) ([]K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collectErr[K](s.set.Suffixes(prefix, membersOnly))
}

func (s *SyncSet[K, T]) Extensions(prefix K, membersOnly bool) ([]K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collectErr[K](s.set.Extensions(prefix, membersOnly))
}

func (s *SyncSet[K, T]) Prefixes(str K) []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Collect(s.set.Prefixes(str))
}

func (s *SyncSet[K, T]) MaximalSuffix(prefix K) (K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.MaximalSuffix(prefix)
}

func (s *SyncSet[K, T]) MaximalExtension(prefix K) (K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.MaximalExtension(prefix)
}

func (s *SyncSet[K, T]) MaximalPrefix(str K) (K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.MaximalPrefix(str)
}

// Snapshot copies the current keys into a new, unsynchronized Set.
func (s *SyncSet[K, T]) Snapshot() *Set[K, T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := &Set[K, T]{tree: s.set.emptyLike()}
	for key := range Seq(s.set.Keys()) {
		res.put(key)
	}
	return res
}

func collectErr[K any](it Iterator[K], err error) ([]K, error) {
	if err != nil {
		return nil, err
	}
	return Collect(it), nil
}
