// Command containerdemo exercises every ordered-map container in this
// module against one shared random dataset, printing what each
// container reports for iteration, predecessor/successor, and batch
// operations so the containers' behavior can be eyeballed side by
// side.
//
// Configuration:
//   - -n: how many random keys to generate (default 20)
//   - -seed: PRNG seed, for reproducible runs (default 1)
//
// Example usage:
//
//	containerdemo -n 50 -seed 7
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/dreamware/ordcontainers/avltree"
	"github.com/dreamware/ordcontainers/batchlist"
	"github.com/dreamware/ordcontainers/flatmap"
	"github.com/dreamware/ordcontainers/linkedhashmap"
	"github.com/dreamware/ordcontainers/treap"
	"github.com/dreamware/ordcontainers/xfasttrie"
)

func main() {
	n := flag.Int("n", 20, "number of random keys to generate")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	if *n <= 0 {
		log.Fatalf("n must be positive, got %d", *n)
	}

	keys := randomKeys(*n, uint64(*seed))
	log.Printf("generated %d keys (seed %d)", len(keys), *seed)

	demoFlatMap(keys)
	demoAVLTree(keys)
	demoTreap(keys)
	demoLinkedHashMap(keys)
	demoBatchList(keys)
	demoXFastTrie(keys)
}

// randomKeys returns n distinct int32 keys drawn from a PCG generator
// seeded deterministically from seed, so two runs with the same -seed
// produce the same dataset.
func randomKeys(n int, seed uint64) []int32 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	seen := make(map[int32]bool, n)
	keys := make([]int32, 0, n)
	for len(keys) < n {
		k := int32(rng.IntN(1_000_000) - 500_000)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

func demoFlatMap(keys []int32) {
	m := flatmap.New[int32, int]()
	entries := make([]flatmap.Entry[int32, int], len(keys))
	for i, k := range keys {
		entries[i] = flatmap.Entry[int32, int]{Key: k, Value: i}
	}
	m.InsertBatch(entries)
	log.Printf("flatmap: %d entries, min=%v max=%v", m.Len(), firstKey(m), lastKey(m))
}

func demoAVLTree(keys []int32) {
	t := avltree.New[int32, int]()
	for i, k := range keys {
		t.Insert(k, i)
	}
	log.Printf("avltree: %d entries, height=%d", t.Len(), t.Height())
}

func demoTreap(keys []int32) {
	tr := treap.New[int32, int]()
	for i, k := range keys {
		tr.Insert(k, i)
	}
	log.Printf("treap: %d entries", tr.Len())
}

func demoLinkedHashMap(keys []int32) {
	m := linkedhashmap.New[int32, int]()
	for i, k := range keys {
		if err := m.AddTail(k, i); err != nil {
			log.Printf("linkedhashmap: AddTail(%d) failed: %v", k, err)
		}
	}
	log.Printf("linkedhashmap: %d entries, head=%d tail=%d", m.Len(), m.Head(), m.Tail())
}

func demoBatchList(keys []int32) {
	l := batchlist.New[int32, int]()
	entries := make([]batchlist.Entry[int32, int], len(keys))
	for i, k := range keys {
		entries[i] = batchlist.Entry[int32, int]{Key: k, Value: i}
	}
	l.BatchInsert(entries)
	fmt.Printf("batchlist: %d entries, ascending from %v\n", l.Len(), l.Begin().Key())
}

func demoXFastTrie(keys []int32) {
	t := xfasttrie.New[int32, int]()
	for i, k := range keys {
		t.Insert(k, i)
	}
	mid := keys[len(keys)/2]
	pred := t.Predecessor(mid)
	succ := t.Successor(mid)
	log.Printf("xfasttrie: %d entries; around %d: pred=%s succ=%s",
		t.Len(), mid, describe(pred), describe(succ))
}

func describe(it interface{ Valid() bool }) string {
	if !it.Valid() {
		return "<none>"
	}
	return "present"
}

func firstKey(m *flatmap.Map[int32, int]) any {
	it := m.Begin()
	if !it.Valid() {
		return nil
	}
	return it.Key()
}

func lastKey(m *flatmap.Map[int32, int]) any {
	it := m.End()
	it.Prev()
	if !it.Valid() {
		return nil
	}
	return it.Key()
}
