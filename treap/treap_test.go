package treap

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func keysOf(tr *Treap[int, string]) []int {
	var out []int
	for it := tr.Begin(); it.Valid(); it.Next() {
		out = append(out, it.Key())
	}
	return out
}

func TestInsertFindErase(t *testing.T) {
	tr := New[int, string]()
	require.True(t, tr.Insert(5, "e"))
	require.True(t, tr.Insert(1, "a"))
	require.True(t, tr.Insert(3, "c"))
	require.False(t, tr.Insert(3, "C"))
	require.Equal(t, 3, tr.Len())

	require.Equal(t, []int{1, 3, 5}, keysOf(tr))

	it := tr.Find(3)
	require.True(t, it.Valid())
	require.Equal(t, "c", it.Value())
	require.False(t, tr.Find(99).Valid())

	require.True(t, tr.Erase(3))
	require.False(t, tr.Erase(3))
	require.Equal(t, 2, tr.Len())
	require.Equal(t, []int{1, 5}, keysOf(tr))
}

func TestPredecessorSuccessor(t *testing.T) {
	tr := New[int, string]()
	for _, k := range []int{10, 20, 30} {
		tr.Insert(k, "")
	}
	require.False(t, tr.Predecessor(10).Valid())
	require.Equal(t, 20, tr.Successor(10).Key())
	require.Equal(t, 20, tr.Predecessor(30).Key())
	require.False(t, tr.Successor(30).Valid())
	require.Equal(t, 20, tr.Predecessor(25).Key())
	require.Equal(t, 30, tr.Successor(25).Key())
}

func TestEraseNodeWithTwoChildren(t *testing.T) {
	tr := New[int, string]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tr.Insert(k, "")
	}
	require.True(t, tr.Erase(50))
	require.Equal(t, []int{20, 30, 40, 60, 70, 80}, keysOf(tr))
	require.Equal(t, 6, tr.Len())
}

func TestClearEmptiesTreap(t *testing.T) {
	tr := New[int, string]()
	for i := 0; i < 100; i++ {
		tr.Insert(i, "")
	}
	tr.Clear()
	require.Equal(t, 0, tr.Len())
	require.False(t, tr.Begin().Valid())
}

func TestFullInsertEraseSequenceEmptiesTreap(t *testing.T) {
	tr := New[int, string]()
	keys := rand.Perm(200)
	for _, k := range keys {
		require.True(t, tr.Insert(k, ""))
	}
	require.Equal(t, 200, tr.Len())

	order := rand.Perm(200)
	for _, k := range order {
		require.True(t, tr.Erase(k))
	}
	require.Equal(t, 0, tr.Len())
	require.False(t, tr.Begin().Valid())
}

func TestIterationAlwaysAscendingUnderRandomOps(t *testing.T) {
	tr := New[int, int]()
	present := map[int]bool{}
	for i := 0; i < 500; i++ {
		k := rand.IntN(200)
		if present[k] {
			tr.Erase(k)
			delete(present, k)
		} else {
			tr.Insert(k, k)
			present[k] = true
		}

		var got []int
		for it := tr.Begin(); it.Valid(); it.Next() {
			got = append(got, it.Key())
		}
		require.True(t, sort.IntsAreSorted(got))
		require.Equal(t, len(present), tr.Len())
	}
}

func TestEndPrevReachesMaximum(t *testing.T) {
	tr := New[int, string]()
	for _, k := range []int{1, 2, 3} {
		tr.Insert(k, "")
	}
	it := tr.End()
	it.Prev()
	require.True(t, it.Valid())
	require.Equal(t, 3, it.Key())
}

// Insertion order must never leak into iteration order, since the shape
// is driven by random priorities, not insertion sequence.
func TestIterationOrderIndependentOfInsertionOrder(t *testing.T) {
	keys := []int{7, 2, 9, 4, 1, 8, 3, 6, 5}

	trA := New[int, int]()
	for _, k := range keys {
		trA.Insert(k, k)
	}

	shuffled := append([]int(nil), keys...)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	trB := New[int, int]()
	for _, k := range shuffled {
		trB.Insert(k, k)
	}

	var gotA, gotB []int
	for it := trA.Begin(); it.Valid(); it.Next() {
		gotA = append(gotA, it.Key())
	}
	for it := trB.Begin(); it.Valid(); it.Next() {
		gotB = append(gotB, it.Key())
	}
	require.Equal(t, gotA, gotB)
	require.True(t, sort.IntsAreSorted(gotA))
}
