// Cross-implementation equivalence (spec.md §8): every container, driven by
// the same operation sequence, must agree on final iteration order with an
// independent reference ordered container. google/btree stands in for the
// spec's "reference map<K,V>" (DESIGN.md, SPEC_FULL.md §2).
package integration

import (
	"math/rand/v2"
	"testing"

	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/dreamware/ordcontainers/avltree"
	"github.com/dreamware/ordcontainers/flatmap"
	"github.com/dreamware/ordcontainers/ordmap"
	"github.com/dreamware/ordcontainers/treap"
	"github.com/dreamware/ordcontainers/xfasttrie"
)

type kv struct {
	key int32
	val int
}

func lessKV(a, b kv) bool { return a.key < b.key }

// referenceKeys drives a google/btree.BTreeG the same way each container
// under test is driven, and returns the resulting ascending key sequence.
func referenceKeys(inserts []int32, erase []int32) []int32 {
	ref := btree.NewG(32, lessKV)
	for i, k := range inserts {
		ref.ReplaceOrInsert(kv{key: k, val: i})
	}
	for _, k := range erase {
		ref.Delete(kv{key: k})
	}
	var out []int32
	ref.Ascend(func(item kv) bool {
		out = append(out, item.key)
		return true
	})
	return out
}

func forwardKeys[K ordmap.Key, V any](m ordmap.OrderedMap[K, V]) []K {
	var out []K
	for it := m.Begin(); it.Valid(); it.Next() {
		out = append(out, it.Key())
	}
	return out
}

// TestCrossImplementationEquivalence inserts N=1000 random keys, erases a
// random 500 of them, then checks every container's iteration order matches
// the google/btree reference (spec.md §8).
func TestCrossImplementationEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	seen := make(map[int32]bool)
	var inserts []int32
	for len(inserts) < 1000 {
		k := rng.Int32()
		if k == ordmap.NullKey[int32]() || seen[k] {
			continue
		}
		seen[k] = true
		inserts = append(inserts, k)
	}

	shuffled := append([]int32(nil), inserts...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	erase := append([]int32(nil), inserts...)
	rng.Shuffle(len(erase), func(i, j int) { erase[i], erase[j] = erase[j], erase[i] })
	erase = erase[:500]

	want := referenceKeys(shuffled, erase)

	drive := func(m ordmap.OrderedMap[int32, int]) []int32 {
		for i, k := range shuffled {
			m.Insert(k, i)
		}
		for _, k := range erase {
			m.Erase(k)
		}
		return forwardKeys[int32, int](m)
	}

	t.Run("avltree", func(t *testing.T) {
		got := drive(avltree.New[int32, int]())
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("avltree iteration order mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("treap", func(t *testing.T) {
		got := drive(treap.New[int32, int]())
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("treap iteration order mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("flatmap", func(t *testing.T) {
		got := drive(flatmap.New[int32, int]())
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("flatmap iteration order mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("xfasttrie", func(t *testing.T) {
		got := drive(xfasttrie.New[int32, int]())
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("xfasttrie iteration order mismatch (-want +got):\n%s", diff)
		}
	})
}

// TestPermutationInvariance checks spec.md §8's round-trip property: for any
// permutation of a key set, inserting in that order and iterating produces
// the same ascending sequence, across every ordered-map container.
func TestPermutationInvariance(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 80).Draw(rt, "n")
		seen := make(map[int32]bool)
		var keys []int32
		for len(keys) < n {
			k := rapid.Int32Range(-1_000_000, 1_000_000).Draw(rt, "k")
			if seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}

		perm := rapid.Permutation(keys).Draw(rt, "perm")

		want := append([]int32(nil), keys...)
		for i := range want {
			for j := i + 1; j < len(want); j++ {
				if want[j] < want[i] {
					want[i], want[j] = want[j], want[i]
				}
			}
		}

		check := func(name string, m ordmap.OrderedMap[int32, int]) {
			for i, k := range perm {
				m.Insert(k, i)
			}
			got := forwardKeys[int32, int](m)
			if len(got) != len(want) {
				rt.Fatalf("%s: length mismatch: got %d want %d", name, len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					rt.Fatalf("%s: order mismatch at %d: got %v want %v", name, i, got, want)
				}
			}
		}

		check("avltree", avltree.New[int32, int]())
		check("treap", treap.New[int32, int]())
		check("flatmap", flatmap.New[int32, int]())
		check("xfasttrie", xfasttrie.New[int32, int]())
	})
}

// TestBatchInsertMatchesIndividualInserts checks spec.md §8: batch-insert of
// a sequence produces the same iteration order as individual inserts of the
// same sequence into a fresh container (flatmap's InsertBatch path).
func TestBatchInsertMatchesIndividualInserts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 60).Draw(rt, "n")
		seen := make(map[int32]bool)
		type pair struct {
			k int32
			v int
		}
		var pairs []pair
		for len(pairs) < n {
			k := rapid.Int32Range(-10_000, 10_000).Draw(rt, "k")
			if seen[k] {
				continue
			}
			seen[k] = true
			pairs = append(pairs, pair{k: k, v: len(pairs)})
		}

		individual := flatmap.New[int32, int]()
		for _, p := range pairs {
			individual.Insert(p.k, p.v)
		}

		batched := flatmap.New[int32, int]()
		entries := make([]flatmap.Entry[int32, int], len(pairs))
		for i, p := range pairs {
			entries[i] = flatmap.Entry[int32, int]{Key: p.k, Value: p.v}
		}
		batched.InsertBatch(entries)

		wantKeys := forwardKeys[int32, int](individual)
		gotKeys := forwardKeys[int32, int](batched)
		if diff := cmp.Diff(wantKeys, gotKeys); diff != "" {
			rt.Fatalf("batch vs individual insert order mismatch (-want +got):\n%s", diff)
		}
	})
}
