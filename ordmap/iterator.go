package ordmap

// Iterator is a bidirectional, mutable iterator over a container's Entries
// in ascending key order (spec.md §4.8).
//
// Dereferencing an invalid iterator (Valid() == false) is undefined;
// calling Next on the end iterator or Prev on the begin-before iterator is
// undefined. Iterators must not outlive the container they reference, and
// any mutation to the container invalidates every iterator into it, except
// where a container's documentation says otherwise.
type Iterator[K Key, V any] interface {
	// Valid reports whether the iterator is positioned on a live entry.
	// false means the iterator is the end sentinel (or, symmetrically, one
	// step before the first entry after a Prev past the beginning).
	Valid() bool

	// Key returns the entry's key. Undefined if !Valid().
	Key() K

	// Value returns the entry's value. Undefined if !Valid().
	Value() V

	// SetValue replaces the entry's value in place, without affecting key
	// order. Undefined if !Valid().
	SetValue(v V)

	// Next advances to the entry with the next-larger key, or to the end
	// sentinel if this was the maximum entry. Undefined if !Valid().
	Next()

	// Prev retreats to the entry with the next-smaller key. Calling Prev
	// on the end iterator positions it at the maximum entry, if any
	// (spec.md: "--end() positions at the maximum key"). Undefined if
	// called again once already before the first entry.
	Prev()
}

// OrderedMap is the capability set every container in this module
// implements (spec.md §2): lookup, ordered predecessor/successor, range
// iteration, insertion, and deletion over keys kept in ascending order.
type OrderedMap[K Key, V any] interface {
	// Len returns the number of live entries.
	Len() int

	// Insert adds (k, v). Returns false without modifying the container if
	// k is already present (spec.md §7: "a failed operation leaves the
	// container unchanged").
	Insert(k K, v V) bool

	// Erase removes the entry for k, if present. Returns whether an entry
	// was removed.
	Erase(k K) bool

	// Find returns an iterator to the entry for k, or End() if absent.
	Find(k K) Iterator[K, V]

	// Predecessor returns an iterator to the largest key strictly less
	// than k, or End() if none.
	Predecessor(k K) Iterator[K, V]

	// Successor returns an iterator to the smallest key strictly greater
	// than k, or End() if none.
	Successor(k K) Iterator[K, V]

	// Begin returns an iterator to the minimum key, or End() if empty.
	Begin() Iterator[K, V]

	// End returns the past-the-end sentinel iterator.
	End() Iterator[K, V]
}
