package batchlist

import (
	"github.com/dreamware/ordcontainers/linkedhashmap"
	"github.com/dreamware/ordcontainers/ordmap"
	"github.com/dreamware/ordcontainers/radixsort"
)

// Entry is a single (key, value) pair, used by the batch APIs.
type Entry[K ordmap.Key, V any] struct {
	Key   K
	Value V
}

type node[K ordmap.Key, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// BatchList is a plain doubly linked list that allows duplicate keys and
// re-sorts on demand rather than maintaining order incrementally.
type BatchList[K ordmap.Key, V any] struct {
	head, tail *node[K, V]
	size       int
}

// New creates an empty BatchList.
func New[K ordmap.Key, V any]() *BatchList[K, V] {
	return &BatchList[K, V]{}
}

// Len returns the number of entries.
func (l *BatchList[K, V]) Len() int { return l.size }

func digit[K ordmap.Key](k K, shift uint) byte {
	u := ordmap.ToUint64(ordmap.Unsigned(k))
	return byte((u >> shift) & 0xFF)
}

// resort detaches every node and redistributes it into one of 256
// buckets per byte of the key, for BitWidth(K)/8 passes, restitching
// the buckets back into a single list after each pass.
func (l *BatchList[K, V]) resort() {
	if l.size <= 1 {
		return
	}
	passes := ordmap.BitWidth[K]() / 8
	for pass := 0; pass < passes; pass++ {
		shift := uint(8 * pass)
		var bucketHead, bucketTail [256]*node[K, V]

		n := l.head
		for n != nil {
			next := n.next
			n.prev, n.next = nil, nil
			d := digit(n.key, shift)
			if bucketHead[d] == nil {
				bucketHead[d] = n
				bucketTail[d] = n
			} else {
				bucketTail[d].next = n
				n.prev = bucketTail[d]
				bucketTail[d] = n
			}
			n = next
		}

		var newHead, newTail *node[K, V]
		for d := 0; d < 256; d++ {
			if bucketHead[d] == nil {
				continue
			}
			if newHead == nil {
				newHead, newTail = bucketHead[d], bucketTail[d]
			} else {
				newTail.next = bucketHead[d]
				bucketHead[d].prev = newTail
				newTail = bucketTail[d]
			}
		}
		l.head, l.tail = newHead, newTail
	}
}

func (l *BatchList[K, V]) prepend(k K, v V) *node[K, V] {
	n := &node[K, V]{key: k, value: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
	return n
}

// Insert prepends (k, v) and re-sorts. Duplicate keys are allowed, as
// in the original structure.
func (l *BatchList[K, V]) Insert(k K, v V) {
	l.prepend(k, v)
	l.resort()
}

// BatchInsert prepends every entry, then re-sorts once.
func (l *BatchList[K, V]) BatchInsert(entries []Entry[K, V]) {
	for _, e := range entries {
		l.prepend(e.Key, e.Value)
	}
	l.resort()
}

// Find returns an iterator to the first entry with key k, or End() if
// none. Unlike Predecessor/Successor, Find does not re-sort first.
func (l *BatchList[K, V]) Find(k K) ordmap.Iterator[K, V] {
	for n := l.head; n != nil; n = n.next {
		if n.key == k {
			return &iterator[K, V]{l: l, n: n}
		}
	}
	return l.End()
}

// Predecessor re-sorts, then returns an iterator to the largest key
// strictly less than k, or End() if none.
func (l *BatchList[K, V]) Predecessor(k K) ordmap.Iterator[K, V] {
	l.resort()
	var pred *node[K, V]
	for n := l.head; n != nil && n.key < k; n = n.next {
		pred = n
	}
	return &iterator[K, V]{l: l, n: pred}
}

// Successor re-sorts, then returns an iterator to the smallest key
// strictly greater than k, or End() if none.
func (l *BatchList[K, V]) Successor(k K) ordmap.Iterator[K, V] {
	l.resort()
	n := l.head
	for n != nil && n.key <= k {
		n = n.next
	}
	return &iterator[K, V]{l: l, n: n}
}

// EraseKey removes every node with key k. Returns whether any were
// removed.
func (l *BatchList[K, V]) EraseKey(k K) bool {
	erased := false
	n := l.head
	for n != nil {
		next := n.next
		if n.key == k {
			l.unlink(n)
			erased = true
		}
		n = next
	}
	return erased
}

func (l *BatchList[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.size--
}

// BatchFind re-sorts the list and a copy of keys, then returns one
// iterator per query key in sorted-query order (not the order keys was
// given in).
func (l *BatchList[K, V]) BatchFind(keys []K) []ordmap.Iterator[K, V] {
	l.resort()
	sorted := append([]K(nil), keys...)
	radixsort.SortBy(sorted, func(k K) K { return k })

	results := make([]ordmap.Iterator[K, V], 0, len(sorted))
	cur := l.head
	for _, k := range sorted {
		for cur != nil && cur.key < k {
			cur = cur.next
		}
		if cur != nil && cur.key == k {
			results = append(results, &iterator[K, V]{l: l, n: cur})
		} else {
			results = append(results, l.End())
		}
	}
	return results
}

// BatchPredecessors is the batch form of Predecessor.
func (l *BatchList[K, V]) BatchPredecessors(keys []K) []ordmap.Iterator[K, V] {
	l.resort()
	sorted := append([]K(nil), keys...)
	radixsort.SortBy(sorted, func(k K) K { return k })

	results := make([]ordmap.Iterator[K, V], 0, len(sorted))
	cur := l.head
	var pred *node[K, V]
	for _, k := range sorted {
		for cur != nil && cur.key < k {
			pred = cur
			cur = cur.next
		}
		results = append(results, &iterator[K, V]{l: l, n: pred})
	}
	return results
}

// BatchSuccessors is the batch form of Successor.
func (l *BatchList[K, V]) BatchSuccessors(keys []K) []ordmap.Iterator[K, V] {
	l.resort()
	sorted := append([]K(nil), keys...)
	radixsort.SortBy(sorted, func(k K) K { return k })

	results := make([]ordmap.Iterator[K, V], 0, len(sorted))
	cur := l.head
	for _, k := range sorted {
		for cur != nil && cur.key <= k {
			cur = cur.next
		}
		results = append(results, &iterator[K, V]{l: l, n: cur})
	}
	return results
}

// BatchErase re-sorts the list and a deduplicated copy of keys, then
// removes at most one node per queried key via a single linear merge.
func (l *BatchList[K, V]) BatchErase(keys []K) {
	if len(keys) == 0 || l.size == 0 {
		return
	}
	l.resort()
	toErase := append([]K(nil), keys...)
	radixsort.SortBy(toErase, func(k K) K { return k })
	toErase = dedupKeysFirst(toErase)

	n := l.head
	i := 0
	for n != nil && i < len(toErase) {
		switch {
		case n.key < toErase[i]:
			n = n.next
		case n.key == toErase[i]:
			next := n.next
			l.unlink(n)
			n = next
			i++
		default:
			i++
		}
	}
}

func dedupKeysFirst[K ordmap.Key](keys []K) []K {
	if len(keys) == 0 {
		return keys
	}
	write := 0
	for read := 1; read < len(keys); read++ {
		if keys[write] != keys[read] {
			write++
			keys[write] = keys[read]
		}
	}
	return keys[:write+1]
}

// Begin returns an iterator to the head node (in current, possibly
// unsorted, order), or End() if empty.
func (l *BatchList[K, V]) Begin() ordmap.Iterator[K, V] {
	return &iterator[K, V]{l: l, n: l.head}
}

// End returns the past-the-end sentinel iterator.
func (l *BatchList[K, V]) End() ordmap.Iterator[K, V] {
	return &iterator[K, V]{l: l}
}

type iterator[K ordmap.Key, V any] struct {
	l *BatchList[K, V]
	n *node[K, V]
}

func (it *iterator[K, V]) Valid() bool { return it.n != nil }
func (it *iterator[K, V]) Key() K      { return it.n.key }
func (it *iterator[K, V]) Value() V    { return it.n.value }
func (it *iterator[K, V]) SetValue(v V) {
	it.n.value = v
}
func (it *iterator[K, V]) Next() { it.n = it.n.next }
func (it *iterator[K, V]) Prev() {
	if it.n == nil {
		it.n = it.l.tail
		return
	}
	it.n = it.n.prev
}

// BatchHashList is linkedhashmap.Map with the same re-sort-on-demand
// contract as BatchList, grounded on
// original_source/src/Batch_N_Hash_List.h: it re-sorts by snapshotting
// into a slice, radix-sorting the slice, and relinking the hash map's
// prev/next pointers to match — never rehashing.
type BatchHashList[K ordmap.Key, V any] struct {
	m *linkedhashmap.Map[K, V]
}

// NewHash creates an empty BatchHashList.
func NewHash[K ordmap.Key, V any]() *BatchHashList[K, V] {
	return &BatchHashList[K, V]{m: linkedhashmap.New[K, V]()}
}

// Len returns the number of entries.
func (l *BatchHashList[K, V]) Len() int { return l.m.Len() }

func (l *BatchHashList[K, V]) resort() {
	order := make([]K, 0, l.m.Len())
	for it := l.m.Begin(); it.Valid(); it.Next() {
		order = append(order, it.Key())
	}
	radixsort.SortBy(order, func(k K) K { return k })
	l.m.Relink(order)
}

// Insert prepends (k, v) (silently a no-op if k is already present, per
// linkedhashmap.Map.AddHead) and re-sorts.
func (l *BatchHashList[K, V]) Insert(k K, v V) {
	l.m.AddHead(k, v)
	l.resort()
}

// BatchInsert prepends every entry, then re-sorts once.
func (l *BatchHashList[K, V]) BatchInsert(entries []Entry[K, V]) {
	for _, e := range entries {
		l.m.AddHead(e.Key, e.Value)
	}
	l.resort()
}

// Find returns an iterator to the entry for k, or End() if absent. This
// is a direct hash lookup and does not re-sort.
func (l *BatchHashList[K, V]) Find(k K) ordmap.Iterator[K, V] { return l.m.Find(k) }

// Predecessor re-sorts, then returns an iterator to the largest key
// strictly less than k, or End() if none.
func (l *BatchHashList[K, V]) Predecessor(k K) ordmap.Iterator[K, V] {
	l.resort()
	var pred ordmap.Iterator[K, V] = l.m.End()
	for it := l.m.Begin(); it.Valid() && it.Key() < k; it.Next() {
		pred = it
	}
	return pred
}

// Successor re-sorts, then returns an iterator to the smallest key
// strictly greater than k, or End() if none.
func (l *BatchHashList[K, V]) Successor(k K) ordmap.Iterator[K, V] {
	l.resort()
	it := l.m.Begin()
	for it.Valid() && it.Key() <= k {
		it.Next()
	}
	return it
}

// BatchFind re-sorts, then returns one iterator per query key in
// sorted-query order.
func (l *BatchHashList[K, V]) BatchFind(keys []K) []ordmap.Iterator[K, V] {
	l.resort()
	sorted := append([]K(nil), keys...)
	radixsort.SortBy(sorted, func(k K) K { return k })

	results := make([]ordmap.Iterator[K, V], 0, len(sorted))
	it := l.m.Begin()
	for _, k := range sorted {
		for it.Valid() && it.Key() < k {
			it.Next()
		}
		if it.Valid() && it.Key() == k {
			results = append(results, l.m.Find(it.Key()))
		} else {
			results = append(results, l.m.End())
		}
	}
	return results
}

// BatchPredecessors is the batch form of Predecessor.
func (l *BatchHashList[K, V]) BatchPredecessors(keys []K) []ordmap.Iterator[K, V] {
	l.resort()
	sorted := append([]K(nil), keys...)
	radixsort.SortBy(sorted, func(k K) K { return k })

	results := make([]ordmap.Iterator[K, V], 0, len(sorted))
	it := l.m.Begin()
	var predKey K
	havePred := false
	for _, k := range sorted {
		for it.Valid() && it.Key() < k {
			predKey, havePred = it.Key(), true
			it.Next()
		}
		if havePred {
			results = append(results, l.m.Find(predKey))
		} else {
			results = append(results, l.m.End())
		}
	}
	return results
}

// BatchSuccessors is the batch form of Successor.
func (l *BatchHashList[K, V]) BatchSuccessors(keys []K) []ordmap.Iterator[K, V] {
	l.resort()
	sorted := append([]K(nil), keys...)
	radixsort.SortBy(sorted, func(k K) K { return k })

	results := make([]ordmap.Iterator[K, V], 0, len(sorted))
	it := l.m.Begin()
	for _, k := range sorted {
		for it.Valid() && it.Key() <= k {
			it.Next()
		}
		if it.Valid() {
			results = append(results, l.m.Find(it.Key()))
		} else {
			results = append(results, l.m.End())
		}
	}
	return results
}

// BatchErase re-sorts, deduplicates a copy of keys, then removes at
// most one entry per queried key via a single linear merge.
func (l *BatchHashList[K, V]) BatchErase(keys []K) {
	if len(keys) == 0 || l.m.Len() == 0 {
		return
	}
	l.resort()
	toErase := append([]K(nil), keys...)
	radixsort.SortBy(toErase, func(k K) K { return k })
	toErase = dedupKeysFirst(toErase)

	it := l.m.Begin()
	i := 0
	for it.Valid() && i < len(toErase) {
		switch {
		case it.Key() < toErase[i]:
			it.Next()
		case it.Key() == toErase[i]:
			victim := it.Key()
			it.Next()
			l.m.Remove(victim)
			i++
		default:
			i++
		}
	}
}

// Begin returns an iterator to the first entry in current order, or
// End() if empty.
func (l *BatchHashList[K, V]) Begin() ordmap.Iterator[K, V] { return l.m.Begin() }

// End returns the past-the-end sentinel iterator.
func (l *BatchHashList[K, V]) End() ordmap.Iterator[K, V] { return l.m.End() }
