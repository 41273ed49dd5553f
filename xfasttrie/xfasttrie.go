package xfasttrie

import (
	"github.com/dreamware/ordcontainers/linkedhashmap"
	"github.com/dreamware/ordcontainers/ordmap"
)

// Trie is an X-Fast Trie over a w-bit keyspace (spec.md §4.7).
type Trie[K ordmap.Key, V any] struct {
	w      int
	levels []map[uint64]uint64 // level i: an (i+1)-bit prefix -> descendant
	bottom *linkedhashmap.Map[uint64, V]
	null   uint64 // 2^w - 1: "both children populated" / reserved key
}

// New creates an empty Trie.
func New[K ordmap.Key, V any]() *Trie[K, V] {
	w := ordmap.BitWidth[K]()
	levels := make([]map[uint64]uint64, w-1)
	for i := range levels {
		levels[i] = make(map[uint64]uint64)
	}
	return &Trie[K, V]{
		w:      w,
		levels: levels,
		bottom: linkedhashmap.New[uint64, V](),
		null:   internalMax(w),
	}
}

func internalMax(w int) uint64 {
	return (uint64(1) << uint(w)) - 1
}

func toInternal[K ordmap.Key](k K) uint64 {
	return ordmap.ToUint64(ordmap.Unsigned(k))
}

func (t *Trie[K, V]) fromInternal(u uint64) K {
	return ordmap.Unsigned(K(u))
}

// prefixAt returns the (level+1)-bit prefix of the internal key u, for
// level in 0..w-1 (level == w-1 yields u itself, the full key).
func (t *Trie[K, V]) prefixAt(u uint64, level int) uint64 {
	return u >> uint(t.w-(level+1))
}

// Len returns the number of entries.
func (t *Trie[K, V]) Len() int { return t.bottom.Len() }

// Contains reports whether k is present, in O(1).
func (t *Trie[K, V]) Contains(k K) bool {
	return t.bottom.Contains(toInternal(k))
}

// childExists reports whether the child prefix one level below level
// is populated: a lookup in the next upper level, or — at the deepest
// upper level — a membership check against the bottom (children there
// are full w-bit keys, not prefixes).
func (t *Trie[K, V]) childExists(level int, childPrefix uint64) bool {
	if level+1 == t.w-1 {
		return t.bottom.Contains(childPrefix)
	}
	_, ok := t.levels[level+1][childPrefix]
	return ok
}

// longestCommonPrefixLevel binary-searches levels 0..w-2 for the
// deepest level whose prefix of u is present, or -1 if not even the
// top bit is shared with anything currently stored.
func (t *Trie[K, V]) longestCommonPrefixLevel(u uint64) int {
	lo, hi, best := 0, t.w-2, -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if _, ok := t.levels[mid][t.prefixAt(u, mid)]; ok {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

// approxNeighbor finds a bottom-level key "close to" an absent u: the
// global head/tail if u falls outside the stored range, otherwise the
// concrete descendant reached by binary search plus a bit-directed
// descent through ancestors whose summary is NULL_KEY (spec.md §4.7,
// "Predecessor / Successor"). ok is false only if the trie is empty.
func (t *Trie[K, V]) approxNeighbor(u uint64) (desc uint64, ok bool) {
	if t.bottom.Len() == 0 {
		return 0, false
	}
	head, tail := t.bottom.Head(), t.bottom.Tail()
	if u < head {
		return head, true
	}
	if u > tail {
		return tail, true
	}

	level := t.longestCommonPrefixLevel(u)
	desc = t.levels[level][t.prefixAt(u, level)]
	for desc == t.null {
		level++
		childPrefix := t.prefixAt(u, level)
		if level == t.w-1 {
			desc = childPrefix
			break
		}
		desc = t.levels[level][childPrefix]
	}
	return desc, true
}

// Insert adds (k, v). Returns false if k is the reserved sentinel or
// already present.
func (t *Trie[K, V]) Insert(k K, v V) bool {
	u := toInternal(k)
	if u == t.null || t.bottom.Contains(u) {
		return false
	}

	if t.bottom.Len() == 0 {
		for level := 0; level < t.w-1; level++ {
			t.levels[level][t.prefixAt(u, level)] = u
		}
		t.bottom.AddHead(u, v)
		return true
	}

	head, tail := t.bottom.Head(), t.bottom.Tail()
	switch {
	case u < head:
		t.bottom.AddHead(u, v)
	case u > tail:
		t.bottom.AddTail(u, v)
	default:
		neighbor, _ := t.approxNeighbor(u)
		if neighbor < u {
			t.bottom.InsertAfter(u, v, neighbor)
		} else {
			t.bottom.InsertBefore(u, v, neighbor)
		}
	}

	L := t.longestCommonPrefixLevel(u)

	// Levels strictly deeper than L are new on this key's path: they
	// have no prior occupant, so their descendant is simply k.
	for level := t.w - 2; level > L; level-- {
		t.levels[level][t.prefixAt(u, level)] = u
	}

	if L < 0 {
		return true
	}

	// Level L just gained k as a second child: both sides now exist.
	t.levels[L][t.prefixAt(u, L)] = t.null

	// Levels above L were already on k's path before this insert, so
	// which side is populated doesn't change — only a min/max
	// descendant value might need to move to k.
	for level := L - 1; level >= 0; level-- {
		prefix := t.prefixAt(u, level)
		cur, ok := t.levels[level][prefix]
		if !ok || cur == t.null {
			continue
		}
		childBit := t.prefixAt(u, level+1) & 1
		if childBit == 1 {
			if u < cur {
				t.levels[level][prefix] = u
			}
		} else if u > cur {
			t.levels[level][prefix] = u
		}
	}
	return true
}

// Erase removes the entry for k, if present.
func (t *Trie[K, V]) Erase(k K) bool {
	u := toInternal(k)
	if !t.bottom.Contains(u) {
		return false
	}

	predIt := t.bottom.Find(u)
	predIt.Prev()
	var pred uint64
	if predIt.Valid() {
		pred = predIt.Key()
	}
	succIt := t.bottom.Find(u)
	succIt.Next()
	var succ uint64
	if succIt.Valid() {
		succ = succIt.Key()
	}

	t.bottom.Remove(u)

	if t.bottom.Len() == 0 {
		for level := range t.levels {
			t.levels[level] = make(map[uint64]uint64)
		}
		return true
	}

	// Walk every ancestor: one above a two-child node can still hold k
	// as its min/max summary, so the walk does not stop early.
	for level := t.w - 2; level >= 0; level-- {
		prefix := t.prefixAt(u, level)
		leftChild := prefix << 1
		rightChild := leftChild | 1
		leftExists := t.childExists(level, leftChild)
		rightExists := t.childExists(level, rightChild)
		cur := t.levels[level][prefix]
		switch {
		case leftExists && rightExists:
			t.levels[level][prefix] = t.null
		case !leftExists && !rightExists:
			delete(t.levels[level], prefix)
		case cur != t.null && cur != u:
			// The summary names another key, still the extremal one.
		case rightExists:
			t.levels[level][prefix] = succ
		default:
			t.levels[level][prefix] = pred
		}
	}
	return true
}

// Find returns an iterator to the entry for k, or End() if absent.
func (t *Trie[K, V]) Find(k K) ordmap.Iterator[K, V] {
	return &iterator[K, V]{t: t, inner: t.bottom.Find(toInternal(k))}
}

// Predecessor returns an iterator to the largest key strictly less
// than k, or End() if none.
func (t *Trie[K, V]) Predecessor(k K) ordmap.Iterator[K, V] {
	u := toInternal(k)
	if it := t.bottom.Find(u); it.Valid() {
		it.Prev()
		return t.wrapOrEnd(it)
	}
	desc, ok := t.approxNeighbor(u)
	if !ok {
		return t.End()
	}
	it := t.bottom.Find(desc)
	if desc < u {
		return &iterator[K, V]{t: t, inner: it}
	}
	it.Prev()
	return t.wrapOrEnd(it)
}

// Successor returns an iterator to the smallest key strictly greater
// than k, or End() if none.
func (t *Trie[K, V]) Successor(k K) ordmap.Iterator[K, V] {
	u := toInternal(k)
	if it := t.bottom.Find(u); it.Valid() {
		it.Next()
		return t.wrapOrEnd(it)
	}
	desc, ok := t.approxNeighbor(u)
	if !ok {
		return t.End()
	}
	it := t.bottom.Find(desc)
	if desc > u {
		return &iterator[K, V]{t: t, inner: it}
	}
	it.Next()
	return t.wrapOrEnd(it)
}

func (t *Trie[K, V]) wrapOrEnd(it ordmap.Iterator[uint64, V]) ordmap.Iterator[K, V] {
	if !it.Valid() {
		return t.End()
	}
	return &iterator[K, V]{t: t, inner: it}
}

// Begin returns an iterator to the minimum key, or End() if empty.
func (t *Trie[K, V]) Begin() ordmap.Iterator[K, V] {
	return &iterator[K, V]{t: t, inner: t.bottom.Begin()}
}

// End returns the past-the-end sentinel iterator.
func (t *Trie[K, V]) End() ordmap.Iterator[K, V] {
	return &iterator[K, V]{t: t, inner: t.bottom.End()}
}

type iterator[K ordmap.Key, V any] struct {
	t     *Trie[K, V]
	inner ordmap.Iterator[uint64, V]
}

func (it *iterator[K, V]) Valid() bool { return it.inner.Valid() }

func (it *iterator[K, V]) Key() K { return it.t.fromInternal(it.inner.Key()) }

func (it *iterator[K, V]) Value() V { return it.inner.Value() }

func (it *iterator[K, V]) SetValue(v V) { it.inner.SetValue(v) }

func (it *iterator[K, V]) Next() { it.inner.Next() }

func (it *iterator[K, V]) Prev() { it.inner.Prev() }

var _ ordmap.OrderedMap[int, int] = (*Trie[int, int])(nil)
