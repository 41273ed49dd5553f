package linkedhashmap

import "github.com/dreamware/ordcontainers/ordmap"

type nodeProps[K ordmap.Key, V any] struct {
	prev, next K
	value      V
}

// KV is a (key, value) snapshot returned by the iterator's Pair method.
type KV[K ordmap.Key, V any] struct {
	Key   K
	Value V
}

// Map is a doubly-linked list of entries indexed by a hash map for O(1)
// lookup, splice, and removal by key. Traversal order is
// insertion-positional, not key order (see doc.go).
type Map[K ordmap.Key, V any] struct {
	index      map[K]*nodeProps[K, V]
	head, tail K
}

// New creates an empty Map.
func New[K ordmap.Key, V any]() *Map[K, V] {
	null := ordmap.NullKey[K]()
	return &Map[K, V]{
		index: make(map[K]*nodeProps[K, V]),
		head:  null,
		tail:  null,
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.index) }

// Head returns the head key, or NullKey if empty.
func (m *Map[K, V]) Head() K { return m.head }

// Tail returns the tail key, or NullKey if empty.
func (m *Map[K, V]) Tail() K { return m.tail }

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	_, ok := m.index[k]
	return ok
}

func (m *Map[K, V]) null() K { return ordmap.NullKey[K]() }

// AddHead prepends (k, v). If k is already present, this is a silent
// no-op (matches the original structure's addHead — see doc.go).
func (m *Map[K, V]) AddHead(k K, v V) error {
	if k == m.null() {
		return ordmap.ErrReservedKey
	}
	if _, exists := m.index[k]; exists {
		return nil
	}
	n := &nodeProps[K, V]{prev: m.null(), next: m.null(), value: v}
	if len(m.index) == 0 {
		m.head, m.tail = k, k
	} else {
		m.index[m.head].prev = k
		n.next = m.head
		m.head = k
	}
	m.index[k] = n
	return nil
}

// AddTail appends (k, v). Returns ordmap.ErrDuplicateKey if k is
// already present — unlike AddHead (see doc.go).
func (m *Map[K, V]) AddTail(k K, v V) error {
	if k == m.null() {
		return ordmap.ErrReservedKey
	}
	if _, exists := m.index[k]; exists {
		return ordmap.ErrDuplicateKey
	}
	n := &nodeProps[K, V]{prev: m.null(), next: m.null(), value: v}
	if len(m.index) == 0 {
		m.head, m.tail = k, k
	} else {
		m.index[m.tail].next = k
		n.prev = m.tail
		m.tail = k
	}
	m.index[k] = n
	return nil
}

// InsertBefore inserts (k, v) immediately before anchor.
func (m *Map[K, V]) InsertBefore(k K, v V, anchor K) error {
	if k == m.null() {
		return ordmap.ErrReservedKey
	}
	if _, exists := m.index[k]; exists {
		return ordmap.ErrDuplicateKey
	}
	anchorNode, ok := m.index[anchor]
	if !ok {
		return ordmap.ErrNotFound
	}
	if anchor == m.head {
		return m.AddHead(k, v)
	}
	prevKey := anchorNode.prev
	n := &nodeProps[K, V]{prev: prevKey, next: anchor, value: v}
	m.index[prevKey].next = k
	anchorNode.prev = k
	m.index[k] = n
	return nil
}

// InsertAfter inserts (k, v) immediately after anchor.
func (m *Map[K, V]) InsertAfter(k K, v V, anchor K) error {
	if k == m.null() {
		return ordmap.ErrReservedKey
	}
	if _, exists := m.index[k]; exists {
		return ordmap.ErrDuplicateKey
	}
	anchorNode, ok := m.index[anchor]
	if !ok {
		return ordmap.ErrNotFound
	}
	if anchor == m.tail {
		return m.AddTail(k, v)
	}
	nextKey := anchorNode.next
	n := &nodeProps[K, V]{prev: anchor, next: nextKey, value: v}
	m.index[nextKey].prev = k
	anchorNode.next = k
	m.index[k] = n
	return nil
}

// RemoveHead removes the head entry. Returns false if empty.
func (m *Map[K, V]) RemoveHead() bool {
	if len(m.index) == 0 {
		return false
	}
	return m.Remove(m.head)
}

// RemoveTail removes the tail entry. Returns false if empty.
func (m *Map[K, V]) RemoveTail() bool {
	if len(m.index) == 0 {
		return false
	}
	return m.Remove(m.tail)
}

// Remove removes the entry for k. Returns false if absent.
func (m *Map[K, V]) Remove(k K) bool {
	n, ok := m.index[k]
	if !ok {
		return false
	}
	switch {
	case k == m.head && k == m.tail:
		m.head, m.tail = m.null(), m.null()
	case k == m.head:
		m.head = n.next
		m.index[m.head].prev = m.null()
	case k == m.tail:
		m.tail = n.prev
		m.index[m.tail].next = m.null()
	default:
		m.index[n.prev].next = n.next
		m.index[n.next].prev = n.prev
	}
	delete(m.index, k)
	return true
}

// ValueAt returns the value at the given 0-based positional offset from
// head, and whether that offset exists.
func (m *Map[K, V]) ValueAt(index int) (V, bool) {
	var zero V
	if index < 0 || index >= len(m.index) {
		return zero, false
	}
	k := m.head
	for i := 0; i < index; i++ {
		k = m.index[k].next
	}
	return m.index[k].value, true
}

// Find returns an iterator to the entry for k, or End() if absent.
func (m *Map[K, V]) Find(k K) ordmap.Iterator[K, V] {
	if _, ok := m.index[k]; !ok {
		return m.End()
	}
	return &iterator[K, V]{m: m, key: k}
}

// Begin returns an iterator to the head entry, or End() if empty.
func (m *Map[K, V]) Begin() ordmap.Iterator[K, V] {
	return &iterator[K, V]{m: m, key: m.head}
}

// End returns the past-the-end sentinel iterator.
func (m *Map[K, V]) End() ordmap.Iterator[K, V] {
	return &iterator[K, V]{m: m, key: m.null()}
}

// Equal reports pointwise value equality by forward traversal: same
// length and same value sequence from head to tail. Key identity is not
// compared, matching the original structure's operator==.
func (m *Map[K, V]) Equal(other *Map[K, V], valuesEqual func(a, b V) bool) bool {
	if len(m.index) != len(other.index) {
		return false
	}
	a, b := m.head, other.head
	null := m.null()
	for a != null {
		if !valuesEqual(m.index[a].value, other.index[b].value) {
			return false
		}
		a = m.index[a].next
		b = other.index[b].next
	}
	return true
}

// Relink rewrites every node's prev/next links so that forward
// traversal visits order exactly, without touching the hash index.
// order must be a permutation of the map's current keys; it is the
// primitive batchlist.BatchHashList uses to re-sort after a radix-sort
// of a snapshot, avoiding a rehash (see
// original_source/src/Batch_N_Hash_List.h's rebuild_sorted_links).
func (m *Map[K, V]) Relink(order []K) {
	null := m.null()
	if len(order) == 0 {
		m.head, m.tail = null, null
		return
	}
	for i, k := range order {
		n := m.index[k]
		if i == 0 {
			n.prev = null
		} else {
			n.prev = order[i-1]
		}
		if i == len(order)-1 {
			n.next = null
		} else {
			n.next = order[i+1]
		}
	}
	m.head, m.tail = order[0], order[len(order)-1]
}

// Clear empties the map.
func (m *Map[K, V]) Clear() {
	m.index = make(map[K]*nodeProps[K, V])
	m.head, m.tail = m.null(), m.null()
}

type iterator[K ordmap.Key, V any] struct {
	m   *Map[K, V]
	key K
}

func (it *iterator[K, V]) Valid() bool { return it.key != it.m.null() }

func (it *iterator[K, V]) Key() K { return it.key }

func (it *iterator[K, V]) Value() V { return it.m.index[it.key].value }

func (it *iterator[K, V]) Pair() KV[K, V] {
	return KV[K, V]{Key: it.key, Value: it.m.index[it.key].value}
}

func (it *iterator[K, V]) SetValue(v V) {
	it.m.index[it.key].value = v
}

func (it *iterator[K, V]) Next() {
	it.key = it.m.index[it.key].next
}

func (it *iterator[K, V]) Prev() {
	if it.key == it.m.null() {
		it.key = it.m.tail
		return
	}
	it.key = it.m.index[it.key].prev
}
