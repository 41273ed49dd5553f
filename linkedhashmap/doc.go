// Package linkedhashmap implements a doubly-linked list indexed by a hash
// map (spec.md §4.5): head/tail splices and by-key lookup are both O(1),
// but the traversal order is *insertion-positional*, not key order. It
// only becomes key-ordered once something (batchlist's re-sort, or
// xfasttrie's maintenance) has arranged it that way.
//
// This is grounded on original_source/src/Doubly_Linked_Hash_Map.h: a
// hash map from key to {prev, next, value}, plus head/tail sentinel
// keys. NULL_KEY (ordmap.NullKey) marks "no neighbor" and is itself a
// reserved key that can never be inserted.
//
// # AddHead/AddTail asymmetry
//
// The original source's addHead silently no-ops on a duplicate key,
// while addTail raises on one. That is preserved here exactly —
// AddHead returns nil for a duplicate, AddTail returns
// ordmap.ErrDuplicateKey. It reads like an inconsistency, but it is the
// documented, exercised behavior of the structure this package is
// adapted from, not a bug to paper over.
//
// # KV and Pair()
//
// The original's iterator dereferences to a proxy object binding a
// stable key reference and a mutable value reference (so `it->first`
// and `it->second` both work and assignment through `it->second`
// mutates the map). Go has no reference types to replay that with
// faithfully; KV[K, V] is a plain value pair returned by the Pair method
// of this package's iterator type (Pair is not part of ordmap.Iterator),
// and mutation goes through Iterator.SetValue instead.
package linkedhashmap
