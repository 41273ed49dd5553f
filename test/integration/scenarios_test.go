// Package integration runs the concrete end-to-end scenarios and
// universal invariants against each container directly, in place of
// the teacher's spawned-HTTP-process black-box tests.
package integration

import (
	"testing"

	"github.com/dreamware/ordcontainers/avltree"
	"github.com/dreamware/ordcontainers/flatmap"
	"github.com/dreamware/ordcontainers/linkedhashmap"
	"github.com/dreamware/ordcontainers/radixsort"
	"github.com/dreamware/ordcontainers/xfasttrie"
	"github.com/stretchr/testify/require"
)

// Scenario 1: Trie insertion order.
func TestScenarioTrieInsertionOrder(t *testing.T) {
	tr := xfasttrie.New[uint32, int]()
	require.True(t, tr.Insert(1, 1))
	require.True(t, tr.Insert(3, 3))
	require.True(t, tr.Insert(2, 2))

	var gotKeys []uint32
	var gotVals []int
	for it := tr.Begin(); it.Valid(); it.Next() {
		gotKeys = append(gotKeys, it.Key())
		gotVals = append(gotVals, it.Value())
	}
	require.Equal(t, []uint32{1, 2, 3}, gotKeys)
	require.Equal(t, []int{1, 2, 3}, gotVals)

	require.True(t, tr.Contains(1))
	require.True(t, tr.Contains(2))
	require.True(t, tr.Contains(3))
	require.False(t, tr.Contains(4))
}

// Scenario 2: Trie neighbor queries.
func TestScenarioTrieNeighborQueries(t *testing.T) {
	tr := xfasttrie.New[uint32, int]()
	tr.Insert(10, 1)
	tr.Insert(20, 2)
	tr.Insert(30, 3)

	pred30 := tr.Predecessor(30)
	require.True(t, pred30.Valid())
	require.Equal(t, uint32(20), pred30.Key())
	require.Equal(t, 2, pred30.Value())

	require.False(t, tr.Predecessor(10).Valid())

	succ10 := tr.Successor(10)
	require.True(t, succ10.Valid())
	require.Equal(t, uint32(20), succ10.Key())

	require.False(t, tr.Successor(30).Valid())
}

// Scenario 3: AVL deletion rebalance.
func TestScenarioAVLDeletionRebalance(t *testing.T) {
	tree := avltree.New[int, int]()
	for _, k := range []int{10, 20, 30, 40, 50} {
		tree.Insert(k, k)
	}
	require.Equal(t, 2, tree.Height())

	require.True(t, tree.Erase(10))

	var got []int
	for it := tree.Begin(); it.Valid(); it.Next() {
		got = append(got, it.Key())
	}
	require.Equal(t, []int{20, 30, 40, 50}, got)
	require.LessOrEqual(t, tree.Height(), 2)
}

// Scenario 4: flat map batch insert with duplicate keys.
func TestScenarioFlatMapBatch(t *testing.T) {
	m := flatmap.New[int, string]()
	m.InsertBatch([]flatmap.Entry[int, string]{
		{Key: 5, Value: "a"},
		{Key: 1, Value: "b"},
		{Key: 3, Value: "c"},
		{Key: 5, Value: "d"},
		{Key: 2, Value: "e"},
	})

	var keys []int
	for it := m.Begin(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{1, 2, 3, 5}, keys)

	it := m.Find(5)
	require.True(t, it.Valid())
	require.Equal(t, "a", it.Value(), "first occurrence of a duplicate key survives a stable batch insert")
}

// Scenario 5: radix sort signedness.
func TestScenarioRadixSortSignedness(t *testing.T) {
	got := []int{-3, 5, 0, -1, 2}
	radixsort.SortBy(got, func(v int) int { return v })
	require.Equal(t, []int{-3, -1, 0, 2, 5}, got)
}

// Scenario 6: linked hash map splice operations.
func TestScenarioLinkedHashMapSplice(t *testing.T) {
	m := linkedhashmap.New[int, string]()
	require.NoError(t, m.AddHead(2, "b"))
	require.NoError(t, m.AddTail(5, "e"))
	require.NoError(t, m.InsertBefore(3, "c", 5))
	require.NoError(t, m.InsertAfter(4, "d", 3))
	require.NoError(t, m.InsertBefore(1, "a", 2))

	require.Equal(t, []int{1, 2, 3, 4, 5}, keysOfLinkedHashMap(m))

	require.True(t, m.Remove(3))
	require.Equal(t, []int{1, 2, 4, 5}, keysOfLinkedHashMap(m))

	require.False(t, m.Remove(9))
	require.Equal(t, []int{1, 2, 4, 5}, keysOfLinkedHashMap(m))
}

func keysOfLinkedHashMap(m *linkedhashmap.Map[int, string]) []int {
	var out []int
	for it := m.Begin(); it.Valid(); it.Next() {
		out = append(out, it.Key())
	}
	return out
}
