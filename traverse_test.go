package bstmap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestKeysAscending(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := New[int, bool]()
	rnd := rand.New(rand.NewSource(17))
	for range 500 {
		m.Put(rnd.Intn(200), true)
	}
	keys := m.Keys()
	if len(keys) != m.Len() {
		t.Errorf("expected %d keys, got %d", m.Len(), len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not strictly ascending at %d: %d >= %d", i, keys[i-1], keys[i])
		}
	}
}

func TestAllStopsEarly(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := buildIntMap(t, 4, 2, 6, 1, 3, 5, 7)
	var seen []int
	for k := range m.All() {
		if k > 3 {
			break
		}
		seen = append(seen, k)
	}
	if !slices.Equal(seen, []int{1, 2, 3}) {
		t.Errorf("expected 1 2 3, got %v", seen)
	}
	entries := m.Entries()
	if len(entries) != 7 || entries[6].Key != 7 || entries[6].Value != 70 {
		t.Errorf("unexpected entries %v", entries)
	}
}

func TestValues(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 1)
	if values := m.Values(); !slices.Equal(values, []int{1, 2, 1}) {
		t.Errorf("expected one value per key, got %v", values)
	}
	distinct := DistinctValues(m)
	slices.Sort(distinct)
	if !slices.Equal(distinct, []int{1, 2}) {
		t.Errorf("expected distinct values {1,2}, got %v", distinct)
	}
	if len(DistinctValues(New[string, int]())) != 0 {
		t.Errorf("expected no values for empty map")
	}
}

func TestContainsValue(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := buildIntMap(t, 5, 3, 8, 1)
	if !ContainsValue(m, 80) || !ContainsValue(m, 10) {
		t.Errorf("expected values 80 and 10 to be found")
	}
	if ContainsValue(m, 42) {
		t.Errorf("did not expect to find 42")
	}
	calls := 0
	m.ContainsValueFunc(func(v int) bool {
		calls++
		return v == 50 // root is visited first
	})
	if calls != 1 {
		t.Errorf("expected search to stop at first match, took %d calls", calls)
	}
	//
	one := 1
	pm := New[string, *int]()
	pm.Put("set", &one)
	if ContainsValue(pm, nil) {
		t.Errorf("nil target must not match a non-nil value")
	}
	pm.Put("unset", nil)
	if !ContainsValue(pm, nil) {
		t.Errorf("nil target must match a nil value")
	}
}

func TestValuesWithoutEquality(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := New[string, any]()
	m.Put("a", []int{1})
	m.Put("b", []int{1})
	m.Put("c", 1)
	m.Put("d", 1)
	m.Put("e", nil)
	if ContainsValue[string, any](m, []int{2}) {
		t.Errorf("did not expect to find []int{2}")
	}
	if !ContainsValue[string, any](m, []int{1}) {
		t.Errorf("expected to find []int{1}")
	}
	if !ContainsValue[string, any](m, nil) {
		t.Errorf("expected to find nil value")
	}
	if ContainsValue[string, any](m, "1") {
		t.Errorf("string must not match int or slice values")
	}
	distinct := DistinctValues(m)
	if len(distinct) != 3 {
		t.Errorf("expected 3 distinct values, got %v", distinct)
	}
}

func TestHeight(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := buildIntMap(t, 50, 30, 70, 20, 40, 60, 80)
	if m.Height() != 3 {
		t.Errorf("expected balanced tree of height 3, is %d", m.Height())
	}
	// sorted insertion degenerates into a list
	s := New[int, int]()
	for i := range 10000 {
		s.Put(i, i)
	}
	if s.Height() != 10000 {
		t.Errorf("expected degenerate height 10000, is %d", s.Height())
	}
	if keys := s.Keys(); len(keys) != 10000 || keys[9999] != 9999 {
		t.Errorf("deep tree not traversed completely")
	}
	if _, removed, _ := s.Remove(9999); !removed {
		t.Errorf("expected to remove deepest key")
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := New[int, int]()
	//    10
	//   5  15
	//     3      <- 3 is right of 10
	m.setTree(makeNode(10, 0,
		makeNode[int, int](5, 0, nil, nil),
		makeNode(15, 0, makeNode[int, int](3, 0, nil, nil), nil)), 4)
	if err := m.Check(); err == nil {
		t.Errorf("expected BST violation to be detected")
	}
	m.setTree(makeNode[int, int](10, 0, nil, nil), 2)
	if err := m.Check(); err == nil {
		t.Errorf("expected size mismatch to be detected")
	}
	shared := makeNode[int, int](12, 0, nil, nil)
	m.setTree(makeNode(10, 0, nil, makeNode(14, 0, shared, shared)), 4)
	if err := m.Check(); err == nil {
		t.Errorf("expected shared node to be detected")
	}
}
