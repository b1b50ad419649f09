package profile

import (
	"container/list"
	"math/rand"

	"github.com/google/btree"
	"github.com/npillmayer/bstmap"
)

// Funcs adapts a pair of functions to the Timeable interface.
type Funcs struct {
	SetupFunc  func(n int)
	TimeMeFunc func(n int)
}

// Setup calls SetupFunc, if set.
func (f Funcs) Setup(n int) {
	if f.SetupFunc != nil {
		f.SetupFunc(n)
	}
}

// TimeMe calls TimeMeFunc.
func (f Funcs) TimeMe(n int) {
	f.TimeMeFunc(n)
}

const element = "a string"

// SliceAppendEnd adds n elements to the end of a slice.
func SliceAppendEnd() Timeable {
	var s []string
	return Funcs{
		SetupFunc: func(int) { s = nil },
		TimeMeFunc: func(n int) {
			for range n {
				s = append(s, element)
			}
		},
	}
}

// SliceInsertFront adds n elements to the beginning of a slice, shifting
// all existing elements each time.
func SliceInsertFront() Timeable {
	var s []string
	return Funcs{
		SetupFunc: func(int) { s = nil },
		TimeMeFunc: func(n int) {
			for range n {
				s = append(s, "")
				copy(s[1:], s)
				s[0] = element
			}
		},
	}
}

// ListPushFront adds n elements to the beginning of a linked list.
func ListPushFront() Timeable {
	var l *list.List
	return Funcs{
		SetupFunc: func(int) { l = list.New() },
		TimeMeFunc: func(n int) {
			for range n {
				l.PushFront(element)
			}
		},
	}
}

// ListPushBack adds n elements to the end of a linked list.
func ListPushBack() Timeable {
	var l *list.List
	return Funcs{
		SetupFunc: func(int) { l = list.New() },
		TimeMeFunc: func(n int) {
			for range n {
				l.PushBack(element)
			}
		},
	}
}

// MapPutRandom puts n keys in random order into a bstmap.Map.
// The expected tree height is logarithmic.
func MapPutRandom(seed int64) Timeable {
	var m *bstmap.Map[int, int]
	var keys []int
	return Funcs{
		SetupFunc: func(n int) {
			m = bstmap.New[int, int]()
			keys = rand.New(rand.NewSource(seed)).Perm(n)
		},
		TimeMeFunc: func(int) {
			for _, k := range keys {
				m.Put(k, k)
			}
		},
	}
}

// MapPutSorted puts n keys in ascending order into a bstmap.Map. The tree
// degenerates into a list, so the total time grows quadratically.
func MapPutSorted() Timeable {
	var m *bstmap.Map[int, int]
	return Funcs{
		SetupFunc: func(int) { m = bstmap.New[int, int]() },
		TimeMeFunc: func(n int) {
			for k := range n {
				m.Put(k, k)
			}
		},
	}
}

// BTreePutSorted puts n keys in ascending order into a balanced B-tree, as
// a baseline for MapPutSorted.
func BTreePutSorted() Timeable {
	var t *btree.BTreeG[int]
	return Funcs{
		SetupFunc: func(int) { t = btree.NewOrderedG[int](32) },
		TimeMeFunc: func(n int) {
			for k := range n {
				t.ReplaceOrInsert(k)
			}
		},
	}
}

// Profile names a built-in Timeable together with sizing hints.
type Profile struct {
	Name     string
	Timeable Timeable
	Config   Config
}

// Builtin returns the catalogue of built-in profiles, keyed by name in
// ascending order.
func Builtin() *bstmap.Map[string, Profile] {
	catalogue := bstmap.New[string, Profile]()
	for _, p := range []Profile{
		{"slice-append-end", SliceAppendEnd(), Config{StartN: 32000, EndMillis: 2000}},
		{"slice-insert-front", SliceInsertFront(), Config{StartN: 4000, EndMillis: 1000}},
		{"list-push-front", ListPushFront(), Config{StartN: 32000, EndMillis: 2000}},
		{"list-push-back", ListPushBack(), Config{StartN: 32000, EndMillis: 2000}},
		{"map-put-random", MapPutRandom(1), Config{StartN: 8000, EndMillis: 2000}},
		{"map-put-sorted", MapPutSorted(), Config{StartN: 1000, EndMillis: 2000}},
		{"btree-put-sorted", BTreePutSorted(), Config{StartN: 8000, EndMillis: 2000}},
	} {
		catalogue.Put(p.Name, p)
	}
	return catalogue
}
