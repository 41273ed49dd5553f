package flatmap

import (
	"sort"

	"github.com/dreamware/ordcontainers/ordmap"
	"github.com/dreamware/ordcontainers/radixsort"
)

// Entry is a single (key, value) pair, used by the batch APIs.
type Entry[K ordmap.Key, V any] struct {
	Key   K
	Value V
}

type entry[K ordmap.Key, V any] struct {
	key   K
	value V
}

// Map is a sorted-vector map: entries are kept in a single ascending-sorted
// slice. It implements ordmap.OrderedMap[K, V].
type Map[K ordmap.Key, V any] struct {
	entries []entry[K, V]
}

// New creates an empty Map.
func New[K ordmap.Key, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.entries) }

// lowerBound returns the first index with key >= k.
func (m *Map[K, V]) lowerBound(k K) int {
	return sort.Search(len(m.entries), func(i int) bool { return m.entries[i].key >= k })
}

// upperBound returns the first index with key > k.
func (m *Map[K, V]) upperBound(k K) int {
	return sort.Search(len(m.entries), func(i int) bool { return m.entries[i].key > k })
}

// Insert adds (k, v). Returns false, leaving the map unchanged, if k is
// already present.
func (m *Map[K, V]) Insert(k K, v V) bool {
	pos := m.lowerBound(k)
	if pos < len(m.entries) && m.entries[pos].key == k {
		return false
	}
	m.entries = append(m.entries, entry[K, V]{})
	copy(m.entries[pos+1:], m.entries[pos:])
	m.entries[pos] = entry[K, V]{key: k, value: v}
	return true
}

// Erase removes the entry for k, if present.
func (m *Map[K, V]) Erase(k K) bool {
	pos := m.lowerBound(k)
	if pos >= len(m.entries) || m.entries[pos].key != k {
		return false
	}
	copy(m.entries[pos:], m.entries[pos+1:])
	m.entries = m.entries[:len(m.entries)-1]
	return true
}

// Find returns an iterator to the entry for k, or End() if absent.
func (m *Map[K, V]) Find(k K) ordmap.Iterator[K, V] {
	pos := m.lowerBound(k)
	if pos >= len(m.entries) || m.entries[pos].key != k {
		return m.End()
	}
	return &iterator[K, V]{m: m, idx: pos}
}

// Predecessor returns an iterator to the largest key strictly less than k,
// or End() if none.
func (m *Map[K, V]) Predecessor(k K) ordmap.Iterator[K, V] {
	pos := m.lowerBound(k)
	if pos == 0 {
		return m.End()
	}
	return &iterator[K, V]{m: m, idx: pos - 1}
}

// Successor returns an iterator to the smallest key strictly greater than
// k, or End() if none.
func (m *Map[K, V]) Successor(k K) ordmap.Iterator[K, V] {
	pos := m.upperBound(k)
	if pos >= len(m.entries) {
		return m.End()
	}
	return &iterator[K, V]{m: m, idx: pos}
}

// Begin returns an iterator to the minimum key, or End() if empty.
func (m *Map[K, V]) Begin() ordmap.Iterator[K, V] {
	if len(m.entries) == 0 {
		return m.End()
	}
	return &iterator[K, V]{m: m, idx: 0}
}

// End returns the past-the-end sentinel iterator.
func (m *Map[K, V]) End() ordmap.Iterator[K, V] {
	return &iterator[K, V]{m: m, idx: len(m.entries)}
}

// GetOrInsert returns a pointer to the value for k, inserting a zero-valued
// entry first if k is absent. This is the Go rendering of spec.md's
// "indexing(k)" operator: the returned pointer is only valid until the next
// mutating call, which may reallocate or shift the backing slice.
func (m *Map[K, V]) GetOrInsert(k K) *V {
	pos := m.lowerBound(k)
	if pos < len(m.entries) && m.entries[pos].key == k {
		return &m.entries[pos].value
	}
	m.entries = append(m.entries, entry[K, V]{})
	copy(m.entries[pos+1:], m.entries[pos:])
	m.entries[pos] = entry[K, V]{key: k}
	return &m.entries[pos].value
}

// InsertBatch appends entries, radix-sorts the whole map by key, and
// deduplicates keeping the first occurrence of each key (see doc.go).
func (m *Map[K, V]) InsertBatch(entries []Entry[K, V]) {
	for _, e := range entries {
		m.entries = append(m.entries, entry[K, V]{key: e.Key, value: e.Value})
	}
	radixsort.SortBy(m.entries, func(e entry[K, V]) K { return e.key })
	m.entries = dedupFirst(m.entries)
}

// EraseBatch removes every key in keys that is present, in O(n + m log m)
// time (m = len(keys)) rather than m individual O(log n + n) erases.
func (m *Map[K, V]) EraseBatch(keys []K) {
	if len(keys) == 0 || len(m.entries) == 0 {
		return
	}
	toErase := append([]K(nil), keys...)
	radixsort.SortBy(toErase, func(k K) K { return k })
	toErase = dedupKeysFirst(toErase)

	write := 0
	erase := 0
	for read := 0; read < len(m.entries); read++ {
		for erase < len(toErase) && toErase[erase] < m.entries[read].key {
			erase++
		}
		if erase < len(toErase) && toErase[erase] == m.entries[read].key {
			continue
		}
		if write != read {
			m.entries[write] = m.entries[read]
		}
		write++
	}
	m.entries = m.entries[:write]
}

func dedupFirst[K ordmap.Key, V any](entries []entry[K, V]) []entry[K, V] {
	if len(entries) == 0 {
		return entries
	}
	write := 0
	for read := 1; read < len(entries); read++ {
		if entries[write].key != entries[read].key {
			write++
			entries[write] = entries[read]
		}
	}
	return entries[:write+1]
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

type iterator[K ordmap.Key, V any] struct {
	m   *Map[K, V]
	idx int
}

func (it *iterator[K, V]) Valid() bool { return it.idx >= 0 && it.idx < len(it.m.entries) }
func (it *iterator[K, V]) Key() K      { return it.m.entries[it.idx].key }
func (it *iterator[K, V]) Value() V    { return it.m.entries[it.idx].value }
func (it *iterator[K, V]) SetValue(v V) {
	it.m.entries[it.idx].value = v
}
func (it *iterator[K, V]) Next() { it.idx++ }
func (it *iterator[K, V]) Prev() { it.idx-- }

var _ ordmap.OrderedMap[int, int] = (*Map[int, int])(nil)
