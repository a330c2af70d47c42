package seqtrie

// Trie is the query surface shared by Set and Dict.
type Trie[K any] interface {
	Identity() K
	Contains(key K) bool
	HasPrefix(prefix K) bool
	Len() int
	Keys() Iterator[K]
	Successors(prefix K) (Iterator[K], error)
	Suffixes(prefix K, membersOnly bool) (Iterator[K], error)
	Extensions(prefix K, membersOnly bool) (Iterator[K], error)
	MaximalSuffix(prefix K) (K, error)
	MaximalExtension(prefix K) (K, error)
	Prefixes(s K) Iterator[K]
	MaximalPrefix(s K) (K, error)
}

// Iterator walks a lazily computed sequence once. Iterators read the trie
// they came from as they go; inserting into that trie before an iterator is
// exhausted leaves the iterator in an undefined state. Call the producing
// method again to start over.
type Iterator[E any] interface {
	HasNext() bool
	Next() (E, error)
}

// New returns an empty set of strings seen as sequences of runes.
func New(opts ...OptionFn) *Set[string, rune] {
	s, err := NewSet(Runes, opts...)
	if err != nil {
		// the rune contract always accepts its identity
		panic(err)
	}
	return s
}

var (
	_ Trie[string]     = (*Set[string, rune])(nil)
	_ Trie[Tuple[int]] = (*Set[Tuple[int], int])(nil)
	_ Trie[string]     = (*Dict[string, byte, int])(nil)
)
