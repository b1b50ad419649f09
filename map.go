package bstmap

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
)

// node is a tree node holding one key. A node is owned by exactly one slot:
// either the map's root or the left/right link of its parent.
type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// Map is an ordered map backed by an unbalanced binary search tree.
//
// For every node, all keys in its left subtree compare less and all keys in
// its right subtree compare greater than the node's key. Maps have to be
// created with New, NewFunc or NewDynamic.
type Map[K, V any] struct {
	root     *node[K, V]
	size     int
	compare  comparator[K]
	nillable bool // K is a kind which may hold nil
}

// Entry is a key-value pair, as delivered by Entries.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// New creates an empty map for keys with a built-in total order.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return newMap[K, V](orderedComparator[K]())
}

// NewFunc creates an empty map ordering keys with a three-way comparison
// function, which has to return a negative number for a < b, 0 for a == b and
// a positive number for a > b. compare must define a total order on K, for
// example time.Time.Compare.
func NewFunc[K, V any](compare func(a, b K) int) (*Map[K, V], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: compare function is required", ErrInvalidArgument)
	}
	return newMap[K, V](funcComparator(compare)), nil
}

// NewDynamic creates an empty map for keys of arbitrary type. Keys are
// ordered at run-time: integers, floats and strings compare within their own
// kind family, other keys have to implement Comparable. Operations with keys
// which cannot be ordered against the map's contents fail with ErrTypeMismatch.
func NewDynamic[V any]() *Map[any, V] {
	return newMap[any, V](compareDynamic)
}

func newMap[K, V any](compare comparator[K]) *Map[K, V] {
	return &Map[K, V]{
		compare:  compare,
		nillable: isNillableType[K](),
	}
}

func isNillableType[K any]() bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return true
	}
	return false
}

func (m *Map[K, V]) checkKey(key K) error {
	if m.nillable && isNilKey(key) {
		return fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	return nil
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// IsEmpty reports whether the map holds no keys.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Clear removes all entries. Dropping the root releases the whole tree.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.size = 0
}

// Get returns the value stored for key. If key is not present, Get returns
// the zero value of V and false.
func (m *Map[K, V]) Get(key K) (V, bool, error) {
	var zero V
	n, err := m.findNode(key)
	if err != nil || n == nil {
		return zero, false, err
	}
	return n.value, true, nil
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) (bool, error) {
	n, err := m.findNode(key)
	return n != nil, err
}

func (m *Map[K, V]) findNode(key K) (*node[K, V], error) {
	if err := m.checkKey(key); err != nil {
		return nil, err
	}
	n := m.root
	for n != nil {
		c, err := m.compare(key, n.key)
		if err != nil {
			return nil, err
		}
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n, nil
		}
	}
	return nil, nil
}

// Put associates value with key. If key has been present, its value is
// replaced in place and Put returns the previous value and true. Otherwise a
// new leaf is attached and Put returns the zero value of V and false.
func (m *Map[K, V]) Put(key K, value V) (V, bool, error) {
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
		switch {
		case c < 0:
			slot = &n.left
		case c > 0:
			slot = &n.right
		default:
			old := n.value
			n.value = value
			return old, true, nil
		}
	}
	*slot = &node[K, V]{key: key, value: value}
	m.size++
	return zero, false, nil
}

// PutAll puts every key-value pair of seq, stopping at the first error.
func (m *Map[K, V]) PutAll(seq iter.Seq2[K, V]) error {
	for k, v := range seq {
		if _, _, err := m.Put(k, v); err != nil {
			return err
		}
	}
	return nil
}
