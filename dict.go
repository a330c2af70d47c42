package seqtrie

// Item is a key of a Dict with its value.
type Item[K any, V any] struct {
	Key   K
	Value V
}

// Dict maps sequence-like keys to values. It answers every query a Set
// answers, over its keys.
type Dict[K any, T comparable, V any] struct {
	*tree[K, T, V]
}

func NewDict[K any, T comparable, V any](c Contract[K, T], opts ...OptionFn) (*Dict[K, T, V], error) {
	t, err := newTree[K, T, V](c, opts)
	if err != nil {
		return nil, err
	}
	return &Dict[K, T, V]{tree: t}, nil
}

// Put maps key to value. If key was already present its value is replaced
// and returned with replaced set to true.
func (d *Dict[K, T, V]) Put(key K, value V) (old V, replaced bool, err error) {
	n, existed, err := d.insert(key)
	if err != nil {
		return old, false, err
	}
	if existed {
		old = n.value
	}
	n.value = value
	return old, existed, nil
}

func (d *Dict[K, T, V]) Get(key K) (V, bool) {
	n := d.nodeAt(key)
	if n == nil || !n.terminal {
		return *new(V), false
	}
	return n.value, true
}

// Update puts items in order and stops at the first rejected key.
func (d *Dict[K, T, V]) Update(items ...Item[K, V]) error {
	for _, it := range items {
		if _, _, err := d.Put(it.Key, it.Value); err != nil {
			return err
		}
	}
	return nil
}

// Items iterates the key/value pairs in no particular order.
func (d *Dict[K, T, V]) Items() Iterator[Item[K, V]] {
	return newWalkIterator(
		newWalker(d.contract, d.root, d.identity),
		isTerminal[K, T, V],
		func(lvl walkLevel[K, T, V]) Item[K, V] {
			return Item[K, V]{Key: lvl.acc, Value: lvl.node.value}
		},
	)
}

// Values iterates the values in the order Items would yield them.
func (d *Dict[K, T, V]) Values() Iterator[V] {
	return newWalkIterator(
		newWalker(d.contract, d.root, d.identity),
		isTerminal[K, T, V],
		func(lvl walkLevel[K, T, V]) V {
			return lvl.node.value
		},
	)
}
