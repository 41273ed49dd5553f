// Package ordmap defines the shared contract implemented by every ordered
// associative container in this module: the key constraint, the bidirectional
// iterator, the common OrderedMap capability set, and the sentinel errors
// used consistently across all implementations.
//
// # Overview
//
// Four containers in this repository (avltree, treap, flatmap, xfasttrie)
// implement OrderedMap: they store keys in ascending order and expose the
// same surface: lookup, ordered predecessor/successor, forward/backward
// iteration, insertion, and deletion. ordmap pulls that surface into one
// place so a caller can swap one index structure for another without
// touching call sites, and so benchmarks can drive all of them through a
// single interface. linkedhashmap and batchlist use the Key constraint,
// Iterator, and errors but do not implement OrderedMap: linkedhashmap is
// ordered by position rather than key, and batchlist's lists re-sort on
// demand, with BatchList accepting duplicate keys.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│           OrderedMap[K, V]           │
//	│  Insert / Erase / Find / Predecessor │
//	│  Successor / Begin / End / Len       │
//	└─────────────────────────────────────┘
//	                 │
//	    ┌────────────┼───────────┬────────────┐
//	    ▼             ▼           ▼            ▼
//	┌────────┐   ┌─────────┐ ┌────────┐  ┌────────────┐
//	│ AVLTree│   │  Treap  │ │ FlatMap│  │ XFastTrie  │
//	└────────┘   └─────────┘ └────────┘  └────────────┘
//
// # Key constraint
//
// K must satisfy Key (any fixed-width signed or unsigned integer type). The
// X-Fast trie and radix sort need to reason about K's bit width and sign
// bit directly; BitWidth, IsSigned, and NullKey expose that without any
// container needing its own bit-twiddling.
//
// # Errors
//
// All containers report failures through the sentinels defined here
// (ErrDuplicateKey, ErrReservedKey, ErrNotFound, ErrOutOfRange,
// ErrCorruption), checked with errors.Is. Boolean-returning mutators
// (Insert, Erase) prefer a plain bool return over an error for the common
// "key already present" / "key absent" cases, matching spec.md's
// error-propagation policy; ErrReservedKey and ErrNotFound surface as
// actual errors from linkedhashmap's positional inserts, which can't
// express their failure as a bool. ErrCorruption is never
// returned: detecting it panics, since a corrupted container cannot
// continue and the caller's recovery options are "discard it" or "crash."
//
// # Iterators
//
// Iterator[K, V] is bidirectional and mutable-by-default: Value/SetValue let
// a caller update in place, and Key returns the immutable key. There is no
// separate const_iterator type — a caller who wants read-only access simply
// doesn't call SetValue. Mutating the owning container invalidates every
// iterator into it, with one documented exception (linkedhashmap's
// positional erase, which only invalidates the iterator to the erased key).
package ordmap
