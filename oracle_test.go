package bstmap

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

type pair struct {
	key, value int
}

func lessPair(a, b pair) bool { return a.key < b.key }

// TestAgainstBTree runs random operation sequences against a Map and a
// balanced B-tree, checking invariants after every step.
func TestAgainstBTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, seed := range []int64{1, 2, 3, 42, 1234} {
		rnd := rand.New(rand.NewSource(seed))
		m := New[int, int]()
		oracle := btree.NewG[pair](4, lessPair)
		for step := range 2000 {
			k := rnd.Intn(300)
			switch rnd.Intn(3) {
			case 0, 1:
				v := rnd.Int()
				old, replaced, err := m.Put(k, v)
				require.NoError(t, err)
				prev, had := oracle.ReplaceOrInsert(pair{k, v})
				require.Equal(t, had, replaced, "seed %d step %d: put %d", seed, step, k)
				if had {
					require.Equal(t, prev.value, old)
				}
			case 2:
				old, removed, err := m.Remove(k)
				require.NoError(t, err)
				prev, had := oracle.Delete(pair{key: k})
				require.Equal(t, had, removed, "seed %d step %d: remove %d", seed, step, k)
				if had {
					require.Equal(t, prev.value, old)
				}
			}
			require.Equal(t, oracle.Len(), m.Len())
			require.NoError(t, m.Check())
		}
		var want []int
		oracle.Ascend(func(p pair) bool {
			want = append(want, p.key)
			return true
		})
		require.Equal(t, want, m.Keys())
		for _, k := range want {
			v, found, err := m.Get(k)
			require.NoError(t, err)
			require.True(t, found)
			p, _ := oracle.Get(pair{key: k})
			require.Equal(t, p.value, v)
		}
	}
}
