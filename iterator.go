package seqtrie

import (
	"iter"
)

type (
	// walker enumerates a subtree depth first with an explicit stack. Each
	// level carries the tokens consumed since the start node.
	walker[K any, T comparable, V any] struct {
		contract Contract[K, T]
		stack    []walkLevel[K, T, V]
	}

	walkIterator[K any, T comparable, V any, R any] struct {
		walker[K, T, V]
		accept func(lvl walkLevel[K, T, V]) bool
		emit   func(lvl walkLevel[K, T, V]) R

		next    R
		hasNext bool
	}

	// pathIterator follows the path of a fixed key from the root and yields
	// the consumed tokens at every terminal node on the way.
	pathIterator[K any, T comparable, V any] struct {
		contract Contract[K, T]
		tokens   []T
		pos      int
		cur      *node[T, V]
		acc      K

		next    K
		hasNext bool
	}

	// childIterator yields prefix+token for a snapshot of child tokens.
	childIterator[K any, T comparable] struct {
		contract Contract[K, T]
		prefix   K
		tokens   []T
		pos      int
	}
)

func newWalker[K any, T comparable, V any](c Contract[K, T], start *node[T, V], acc K) walker[K, T, V] {
	return walker[K, T, V]{
		contract: c,
		stack:    []walkLevel[K, T, V]{{node: start, acc: acc}},
	}
}

func (w *walker[K, T, V]) pop() (walkLevel[K, T, V], bool) {
	if len(w.stack) == 0 {
		return walkLevel[K, T, V]{}, false
	}
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	top.node.eachChild(func(tok T, child *node[T, V]) {
		w.stack = append(w.stack, walkLevel[K, T, V]{
			node:  child,
			acc:   w.contract.Concat(top.acc, w.contract.Unit(tok)),
			depth: top.depth + 1,
		})
	})
	return top, true
}

func newWalkIterator[K any, T comparable, V any, R any](
	w walker[K, T, V],
	accept func(walkLevel[K, T, V]) bool,
	emit func(walkLevel[K, T, V]) R,
) *walkIterator[K, T, V, R] {
	it := &walkIterator[K, T, V, R]{walker: w, accept: accept, emit: emit}
	it.advance()
	return it
}

func (it *walkIterator[K, T, V, R]) HasNext() bool {
	return it != nil && it.hasNext
}

func (it *walkIterator[K, T, V, R]) Next() (R, error) {
	if !it.HasNext() {
		return *new(R), ErrNoMoreKeys
	}
	cur := it.next
	it.advance()
	return cur, nil
}

func (it *walkIterator[K, T, V, R]) advance() {
	for {
		lvl, ok := it.pop()
		if !ok {
			it.next, it.hasNext = *new(R), false
			return
		}
		if it.accept(lvl) {
			it.next, it.hasNext = it.emit(lvl), true
			return
		}
	}
}

func newPathIterator[K any, T comparable, V any](c Contract[K, T], root *node[T, V], identity K, tokens []T) *pathIterator[K, T, V] {
	it := &pathIterator[K, T, V]{contract: c, tokens: tokens, cur: root, acc: identity}
	it.advance()
	return it
}

func (it *pathIterator[K, T, V]) HasNext() bool {
	return it != nil && it.hasNext
}

func (it *pathIterator[K, T, V]) Next() (K, error) {
	if !it.HasNext() {
		return *new(K), ErrNoMoreKeys
	}
	cur := it.next
	it.advance()
	return cur, nil
}

func (it *pathIterator[K, T, V]) advance() {
	for it.cur != nil {
		n, acc := it.cur, it.acc

		if it.pos < len(it.tokens) {
			tok := it.tokens[it.pos]
			it.pos++
			it.cur = n.findChild(tok)
			it.acc = it.contract.Concat(acc, it.contract.Unit(tok))
		} else {
			it.cur = nil
		}

		if n.terminal {
			it.next, it.hasNext = acc, true
			return
		}
	}
	it.next, it.hasNext = *new(K), false
}

func (it *childIterator[K, T]) HasNext() bool {
	return it != nil && it.pos < len(it.tokens)
}

func (it *childIterator[K, T]) Next() (K, error) {
	if !it.HasNext() {
		return *new(K), ErrNoMoreKeys
	}
	tok := it.tokens[it.pos]
	it.pos++
	return it.contract.Concat(it.prefix, it.contract.Unit(tok)), nil
}

// Seq adapts an Iterator for use with range. The iterator is consumed.
func Seq[E any](it Iterator[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains an Iterator into a slice.
func Collect[E any](it Iterator[E]) []E {
	var res []E
	for v := range Seq(it) {
		res = append(res, v)
	}
	return res
}

var (
	_ Iterator[string] = (*walkIterator[string, rune, struct{}, string])(nil)
	_ Iterator[string] = (*pathIterator[string, rune, struct{}])(nil)
	_ Iterator[string] = (*childIterator[string, rune])(nil)
)
