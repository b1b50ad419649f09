package bstmap

// makeNode creates a detached node. Together with setTree it lets tests
// build trees of a known shape.
func makeNode[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{key: key, value: value, left: left, right: right}
}

// setTree replaces the tree of m, bypassing all invariant maintenance.
func (m *Map[K, V]) setTree(root *node[K, V], size int) {
	m.root = root
	m.size = size
}
