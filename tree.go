package seqtrie

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

func newTree[K any, T comparable, V any](c Contract[K, T], opts []OptionFn) (*tree[K, T, V], error) {
	o := buildOptions(opts)
	identity := c.Empty()
	if o.checkContract && !IsSequenceLike(c, identity, identity) {
		o.logger.Debug("identity element is not sequence-like", zap.Any("identity", identity))
		return nil, fmt.Errorf("%w: identity %v is not itself sequence-like", ErrContractViolation, identity)
	}

	return &tree[K, T, V]{
		contract: c,
		identity: identity,
		root:     newNode[T, V](),
		opts:     o,
	}, nil
}

// emptyLike returns an empty tree with the contract, identity and options of t.
func (t *tree[K, T, V]) emptyLike() *tree[K, T, V] {
	return &tree[K, T, V]{
		contract: t.contract,
		identity: t.identity,
		root:     newNode[T, V](),
		opts:     t.opts,
	}
}

// Identity returns the empty key of the trie.
func (t *tree[K, T, V]) Identity() K {
	return t.identity
}

// insert checks key against the contract and stores it. It returns the
// terminal node of key and whether key was already contained.
func (t *tree[K, T, V]) insert(key K) (*node[T, V], bool, error) {
	if t.opts.checkContract && !IsSequenceLike(t.contract, key, t.identity) {
		t.opts.logger.Debug("rejected key", zap.Any("key", key), zap.Any("identity", t.identity))
		return nil, false, fmt.Errorf("%w: %v", ErrContractViolation, key)
	}
	n, existed := t.put(key)
	return n, existed, nil
}

// put stores key without checking it.
func (t *tree[K, T, V]) put(key K) (*node[T, V], bool) {
	cur := t.root
	for tok := range t.contract.Tokens(key) {
		next := cur.findChild(tok)
		if next == nil {
			next = newNode[T, V]()
			cur.addChild(tok, next)
		}
		cur = next
	}

	existed := cur.terminal
	cur.terminal = true
	return cur, existed
}

// nodeAt returns the node reached by the tokens of prefix, or nil.
func (t *tree[K, T, V]) nodeAt(prefix K) *node[T, V] {
	cur := t.root
	for tok := range t.contract.Tokens(prefix) {
		if cur = cur.findChild(tok); cur == nil {
			return nil
		}
	}
	return cur
}

func (t *tree[K, T, V]) prefixNode(prefix K) (*node[T, V], error) {
	n := t.nodeAt(prefix)
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAPrefix, prefix)
	}
	return n, nil
}

func (t *tree[K, T, V]) Contains(key K) bool {
	n := t.nodeAt(key)
	return n != nil && n.terminal
}

// HasPrefix reports whether prefix is a prefix of at least one contained key.
func (t *tree[K, T, V]) HasPrefix(prefix K) bool {
	return t.nodeAt(prefix) != nil
}

// Len returns the number of contained keys, the empty key included.
func (t *tree[K, T, V]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}

	size := 0
	stack := []*node[T, V]{t.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.terminal {
			size++
		}
		cur.eachChild(func(_ T, child *node[T, V]) {
			stack = append(stack, child)
		})
	}
	return size
}

// Keys iterates every contained key in no particular order.
func (t *tree[K, T, V]) Keys() Iterator[K] {
	return newWalkIterator(newWalker(t.contract, t.root, t.identity), isTerminal[K, T, V], levelAcc[K, T, V])
}

// Successors iterates the one-token extensions of prefix that are prefixes
// of contained keys.
func (t *tree[K, T, V]) Successors(prefix K) (Iterator[K], error) {
	n, err := t.prefixNode(prefix)
	if err != nil {
		return nil, err
	}
	return &childIterator[K, T]{contract: t.contract, prefix: prefix, tokens: n.childTokens()}, nil
}

// Suffixes iterates the suffixes s such that prefix+s is a contained key, or,
// unless membersOnly, a prefix of a contained key.
func (t *tree[K, T, V]) Suffixes(prefix K, membersOnly bool) (Iterator[K], error) {
	n, err := t.prefixNode(prefix)
	if err != nil {
		return nil, err
	}
	return newWalkIterator(newWalker(t.contract, n, t.identity), acceptLevels[K, T, V](membersOnly), levelAcc[K, T, V]), nil
}

// Extensions is like Suffixes but yields prefix+s.
func (t *tree[K, T, V]) Extensions(prefix K, membersOnly bool) (Iterator[K], error) {
	n, err := t.prefixNode(prefix)
	if err != nil {
		return nil, err
	}
	return newWalkIterator(
		newWalker(t.contract, n, t.identity),
		acceptLevels[K, T, V](membersOnly),
		func(lvl walkLevel[K, T, V]) K {
			return t.contract.Concat(prefix, lvl.acc)
		},
	), nil
}

// MaximalSuffix returns a longest suffix s such that prefix+s is a contained
// key. Which one is returned when several have the same length is undefined.
func (t *tree[K, T, V]) MaximalSuffix(prefix K) (K, error) {
	n, err := t.prefixNode(prefix)
	if err != nil {
		return t.identity, err
	}

	best, bestLen := t.identity, -1
	w := newWalker(t.contract, n, t.identity)
	for lvl, ok := w.pop(); ok; lvl, ok = w.pop() {
		if lvl.node.terminal && lvl.depth > bestLen {
			best, bestLen = lvl.acc, lvl.depth
		}
	}
	return best, nil
}

func (t *tree[K, T, V]) MaximalExtension(prefix K) (K, error) {
	suffix, err := t.MaximalSuffix(prefix)
	if err != nil {
		return t.identity, err
	}
	return t.contract.Concat(prefix, suffix), nil
}

// Prefixes iterates the contained keys that are prefixes of s, shortest
// first. A string without such keys yields nothing.
func (t *tree[K, T, V]) Prefixes(s K) Iterator[K] {
	return newPathIterator(t.contract, t.root, t.identity, slices.Collect(t.contract.Tokens(s)))
}

// MaximalPrefix returns the longest contained key that is a prefix of s.
func (t *tree[K, T, V]) MaximalPrefix(s K) (K, error) {
	longest, found := t.identity, false
	for key := range Seq(t.Prefixes(s)) {
		longest, found = key, true
	}
	if !found {
		return t.identity, fmt.Errorf("%w: %v", ErrNoPrefixFound, s)
	}
	return longest, nil
}

func isTerminal[K any, T comparable, V any](lvl walkLevel[K, T, V]) bool {
	return lvl.node.terminal
}

func levelAcc[K any, T comparable, V any](lvl walkLevel[K, T, V]) K {
	return lvl.acc
}

func acceptLevels[K any, T comparable, V any](membersOnly bool) func(walkLevel[K, T, V]) bool {
	if membersOnly {
		return isTerminal[K, T, V]
	}
	return func(walkLevel[K, T, V]) bool { return true }
}
