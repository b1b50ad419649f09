package bstmap

import (
	"iter"
	"reflect"
)

// All returns an iterator over the map's entries in ascending key order.
//
// The map must not be modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		m.inorder(func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}
}

// inorder visits nodes left–node–right, using an explicit stack instead of
// recursion. Iteration stops early if visit returns false.
func (m *Map[K, V]) inorder(visit func(*node[K, V]) bool) {
	var stack []*node[K, V]
	n := m.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		n = n.right
	}
}

// preorder visits every node in no particular documented order. It is the
// cheapest full traversal and is used where order does not matter.
func (m *Map[K, V]) preorder(visit func(*node[K, V]) bool) {
	if m.root == nil {
		return
	}
	stack := []*node[K, V]{m.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
}

// Keys returns all keys in strictly ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns one value per key, in ascending order of their keys.
// Equal values stored under different keys are all reported; see
// DistinctValues for a de-duplicated view.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// Entries returns all key-value pairs in ascending key order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// ContainsValueFunc reports whether match returns true for any of the
// map's values. The search stops at the first match.
func (m *Map[K, V]) ContainsValueFunc(match func(V) bool) bool {
	if m == nil || match == nil {
		return false
	}
	found := false
	m.preorder(func(n *node[K, V]) bool {
		found = match(n.value)
		return !found
	})
	return found
}

// ContainsValue reports whether any key of m maps to target.
// For values of nillable types, a nil target matches nil values only.
// Values which do not support == (such as slices held in an interface)
// are compared with reflect.DeepEqual.
func ContainsValue[K any, V comparable](m *Map[K, V], target V) bool {
	return m.ContainsValueFunc(func(v V) bool {
		return valuesEqual(v, target)
	})
}

// DistinctValues returns the set of values stored in m, each value reported
// once regardless of how many keys map to it. The order of the result is
// unspecified.
func DistinctValues[K any, V comparable](m *Map[K, V]) []V {
	var values []V
	if m == nil {
		return values
	}
	seen := make(map[V]struct{}, m.Len())
	var unhashable []V // deduplicated by linear scan
	m.preorder(func(n *node[K, V]) bool {
		if !hashable(n.value) {
			for _, u := range unhashable {
				if reflect.DeepEqual(any(u), any(n.value)) {
					return true
				}
			}
			unhashable = append(unhashable, n.value)
			values = append(values, n.value)
			return true
		}
		if _, ok := seen[n.value]; !ok {
			seen[n.value] = struct{}{}
			values = append(values, n.value)
		}
		return true
	})
	return values
}

// hashable reports whether v may be used with == and as a map key without
// panicking. Interface-typed values are checked by their dynamic content.
func hashable[V comparable](v V) bool {
	rv := reflect.ValueOf(any(v))
	return !rv.IsValid() || rv.Comparable()
}

func valuesEqual[V comparable](a, b V) bool {
	ra, rb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !ra.IsValid() || !rb.IsValid() {
		return ra.IsValid() == rb.IsValid()
	}
	if ra.Type() != rb.Type() {
		return false
	}
	if ra.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(any(a), any(b))
}

// Height returns the height of the tree, where 0 means empty and 1 means a
// single root node. It is intended for diagnostics: the tree is not balanced,
// so the height may be as large as Len.
func (m *Map[K, V]) Height() int {
	if m == nil || m.root == nil {
		return 0
	}
	height := 0
	level := []*node[K, V]{m.root}
	for len(level) > 0 {
		height++
		var next []*node[K, V]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}
