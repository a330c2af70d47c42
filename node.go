package seqtrie

func (n *node[T, V]) findChild(tok T) *node[T, V] {
	switch n._type {
	case linear:
		if idx := n.index(tok); idx != -1 {
			return n.children[idx]
		}
	case hashed:
		return n.table[tok]
	}
	return nil
}

func (n *node[T, V]) index(tok T) int {
	for idx := range n.keys {
		if n.keys[idx] == tok {
			return idx
		}
	}
	return -1
}

// addChild links child under tok. tok must not be present yet.
func (n *node[T, V]) addChild(tok T, child *node[T, V]) {
	switch n._type {
	case linear:
		if len(n.keys) >= linearMax {
			n.grow()
			n.table[tok] = child
			return
		}
		n.keys = append(n.keys, tok)
		n.children = append(n.children, child)
	case hashed:
		n.table[tok] = child
	}
}

// grow moves the linear children into a hash table.
func (n *node[T, V]) grow() {
	table := make(map[T]*node[T, V], 2*len(n.keys))
	for i, tok := range n.keys {
		table[tok] = n.children[i]
	}
	n.keys, n.children = nil, nil
	n.table = table
	n._type = hashed
}

func (n *node[T, V]) numChildren() int {
	if n._type == hashed {
		return len(n.table)
	}
	return len(n.keys)
}

func (n *node[T, V]) eachChild(fn func(tok T, child *node[T, V])) {
	switch n._type {
	case linear:
		for i, tok := range n.keys {
			fn(tok, n.children[i])
		}
	case hashed:
		for tok, child := range n.table {
			fn(tok, child)
		}
	}
}

func (n *node[T, V]) childTokens() []T {
	toks := make([]T, 0, n.numChildren())
	n.eachChild(func(tok T, _ *node[T, V]) {
		toks = append(toks, tok)
	})
	return toks
}
