// Package batchlist implements the two "sort on demand" containers of
// spec.md §4.6: BatchList, a plain doubly linked list, and
// BatchHashList, a linkedhashmap.Map with the same re-sort contract.
// Neither keeps itself sorted as entries arrive; instead, every
// operation that depends on order (Predecessor, Successor, and all the
// Batch* queries) re-sorts first.
//
// # Re-sort mechanics
//
// BatchList re-sorts in place: each pass detaches every node from the
// list and redistributes it into one of 256 buckets (keyed on one byte
// of ordmap.Unsigned(key), shifted per pass), keeping per-bucket
// head/tail pointers, then restitches the buckets 0..255 back into a
// single list. BitWidth(K)/8 passes produce a stable ascending sort
// without ever allocating a second list, matching
// original_source/src/Batch_List.h's sort_keys.
//
// BatchHashList can't redistribute in place without rehashing every
// node, so it snapshots the current keys into a slice,
// radix-sorts the slice with radixsort.SortBy, and calls
// linkedhashmap.Map.Relink to rewrite prev/next pointers to match —
// the hash index itself is never touched, matching
// original_source/src/Batch_N_Hash_List.h's rebuild_sorted_links.
//
// # Batch queries
//
// BatchFind/BatchPredecessors/BatchSuccessors/BatchErase all radix-sort
// a copy of the query keys, then walk the (now sorted) container and
// the sorted queries together in one linear merge, producing one
// result per query key in sorted-query order (not the caller's
// original order) — this mirrors the original's by-value std::vector
// parameter, which the original code sorts in place.
//
// # The erase_key defect
//
// original_source/src/Batch_List.h's erase_key advances a list iterator
// it has just invalidated by erasing through it — spec.md §9 flags this
// explicitly as a pre-existing defect to fix, not preserve. EraseKey
// here captures the next node before unlinking, so it is safe to erase
// every node matching the key (this list allows duplicate keys; nothing
// in the original enforces uniqueness at this layer).
package batchlist
