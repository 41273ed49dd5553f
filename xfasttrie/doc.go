// Package xfasttrie implements the X-Fast Trie of spec.md §4.7: w-1
// prefix-hash levels over a w-bit keyspace (w = ordmap.BitWidth[K]()),
// with a linkedhashmap.Map holding the actual entries at the bottom.
// Predecessor/successor resolve in O(log w) via a binary search over
// levels plus a bounded descent; insert/erase touch O(w) levels.
//
// # Internal representation
//
// Every lookup here needs to slice a key into prefixes of 1..w-1 bits,
// which means right-shifting by an amount that depends on w. Doing
// that shift directly on a K-typed value is unsafe: ordmap.Unsigned
// flips K's sign bit to make two's-complement order match unsigned
// order, but for a signed K whose original value was non-negative, the
// flip sets what is now K's sign bit, so the flipped value is itself
// negative in K's own representation — and Go's right shift on a
// negative signed integer sign-extends, filling the vacated high bits
// with ones instead of zeros. That corrupts exactly the prefix bits
// this package hashes on. (The same family of bug, from the opposite
// direction — an untyped bit-mask literal not fitting every width in
// K's type set — is why radixsort.digit and batchlist.digit widen to
// uint64 before masking; see ordmap.ToUint64.)
//
// So every level map, and the bottom linkedhashmap.Map, is keyed on
// uint64: toInternal flips the sign bit and widens via ordmap.ToUint64
// (always a logical, zero-filling shift); fromInternal reverses both
// steps at the public API boundary. Comparisons between two internal
// values (deciding which of two keys is smaller) are plain uint64
// comparisons — always unsigned in Go — which is exactly the ordering
// ordmap.Unsigned was designed to produce.
//
// # Reserved sentinel
//
// The internal all-ones value (2^w - 1) marks "both children
// populated, no single descendant to report" in an ancestor's summary
// (spec.md §3: "NULL_KEY when both subtrees exist"). This is not an
// arbitrary choice: it is exactly the internal representation of
// ordmap.NullKey[K](), the same reserved maximum key every container
// in this module refuses to store. Insert rejects that key by returning
// false (linkedhashmap's splices return ordmap.ErrReservedKey instead).
//
// # Algorithm
//
// Insert, Erase, Predecessor, and Successor follow
// original_source/src/X-fast_Trie.h directly: ancestor summaries are
// maintained by walking the inserted/erased key's own root-to-leaf
// path (never a full re-scan), and predecessor/successor absent-key
// queries binary-search for the deepest level still sharing a prefix
// with the query, then descend from there, following the query's own
// bits, until a concrete (non-NULL_KEY) descendant is found.
package xfasttrie
