package bstmap

// Remove deletes key from the map and returns the value it has been
// associated with. If key is not present, the tree is left untouched and
// Remove returns the zero value of V and false.
//
// A node with at most one child is replaced by that child. A node with two
// children takes over key and value of its in-order successor, the leftmost
// node of its right subtree; the successor node is then spliced out of its
// former position.
func (m *Map[K, V]) Remove(key K) (V, bool, error) {
	var zero V
	if err := m.checkKey(key); err != nil {
		return zero, false, err
	}
	slot := &m.root
	for *slot != nil {
		n := *slot
		c, err := m.compare(key, n.key)
		if err != nil {
			return zero, false, err
		}
		if c < 0 {
			slot = &n.left
			continue
		} else if c > 0 {
			slot = &n.right
			continue
		}
		old := n.value
		m.deleteAt(slot)
		m.size--
		return old, true, nil
	}
	return zero, false, nil
}

// deleteAt removes the node occupying slot from the tree.
func (m *Map[K, V]) deleteAt(slot **node[K, V]) {
	n := *slot
	if n.left == nil {
		T().Debugf("bstmap: delete %v, promote right child", n.key)
		*slot = n.right
		return
	}
	if n.right == nil {
		T().Debugf("bstmap: delete %v, promote left child", n.key)
		*slot = n.left
		return
	}
	succParent, succ := n, n.right
	for succ.left != nil {
		succParent, succ = succ, succ.left
	}
	T().Debugf("bstmap: delete %v, successor is %v", n.key, succ.key)
	// the successor has no left child; its right subtree takes its place
	if succParent == n {
		succParent.right = succ.right
	} else {
		succParent.left = succ.right
	}
	n.key, n.value = succ.key, succ.value
	succ.right = nil
}
