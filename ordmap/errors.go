package ordmap

import "errors"

// Error taxonomy shared by every container (spec.md §7).
//
// ErrDuplicateKey and ErrNotFound are mostly surfaced as a plain bool from
// Insert/Erase; they exist as sentinels for the handful of operations that
// can't express failure as a bool, such as positional splices.
var (
	// ErrDuplicateKey is returned when a strict positional insert names a
	// key that is already present (e.g. linkedhashmap.AddTail,
	// InsertBefore, InsertAfter). Plain Insert reports the same condition
	// by returning false instead.
	ErrDuplicateKey = errors.New("ordmap: duplicate key")

	// ErrReservedKey is returned by linkedhashmap's positional inserts when
	// a caller attempts to insert the sentinel NullKey value.
	// xfasttrie.Trie.Insert, which also reserves NullKey, reports the same
	// condition by returning false.
	ErrReservedKey = errors.New("ordmap: reserved key")

	// ErrNotFound is returned when a positional anchor (insert-before,
	// insert-after) names a key that is not present. Positional erase
	// (linkedhashmap.Map.Remove) reports an absent key by returning false.
	ErrNotFound = errors.New("ordmap: not found")

	// ErrOutOfRange is the sentinel for an index that is >= the
	// container's size. No container in this module returns it:
	// linkedhashmap.Map.ValueAt, the one index-based accessor, reports such
	// an index through its bool result.
	ErrOutOfRange = errors.New("ordmap: index out of range")

	// ErrCorruption indicates an internal structural invariant was
	// violated mid-operation. It is unrecoverable; containers that detect
	// it panic with this error rather than returning it, since there is no
	// well-defined state for the caller to resume from.
	ErrCorruption = errors.New("ordmap: internal invariant violated")
)
