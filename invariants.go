package bstmap

import "fmt"

type checkFrame[K, V any] struct {
	n     *node[K, V]
	lower *node[K, V] // nearest ancestor the subtree is right of
	upper *node[K, V] // nearest ancestor the subtree is left of
	depth int
}

// Check validates the structural invariants of the tree: keys are strictly
// ordered, no node is reachable twice and the size counter matches the
// number of nodes.
//
// Check walks the whole tree and is meant to be used in tests.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrCorrupted)
	}
	if m.compare == nil {
		return fmt.Errorf("%w: map has no comparator", ErrCorrupted)
	}
	seen := make(map[*node[K, V]]struct{}, m.size)
	stack := []checkFrame[K, V]{}
	if m.root != nil {
		stack = append(stack, checkFrame[K, V]{n: m.root, depth: 1})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := seen[f.n]; dup {
			return fmt.Errorf("%w: node %v reachable twice", ErrCorrupted, f.n.key)
		}
		seen[f.n] = struct{}{}
		if isNilKey(f.n.key) {
			return fmt.Errorf("%w: nil key at depth %d", ErrCorrupted, f.depth)
		}
		if f.lower != nil {
			if c, err := m.compare(f.n.key, f.lower.key); err != nil || c <= 0 {
				return fmt.Errorf("%w: key %v not greater than ancestor %v", ErrCorrupted,
					f.n.key, f.lower.key)
			}
		}
		if f.upper != nil {
			if c, err := m.compare(f.n.key, f.upper.key); err != nil || c >= 0 {
				return fmt.Errorf("%w: key %v not less than ancestor %v", ErrCorrupted,
					f.n.key, f.upper.key)
			}
		}
		if f.n.left != nil {
			stack = append(stack, checkFrame[K, V]{n: f.n.left, lower: f.lower, upper: f.n, depth: f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, checkFrame[K, V]{n: f.n.right, lower: f.n, upper: f.upper, depth: f.depth + 1})
		}
	}
	if len(seen) != m.size {
		return fmt.Errorf("%w: size is %d, tree has %d nodes", ErrCorrupted, m.size, len(seen))
	}
	return nil
}
