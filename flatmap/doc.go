// Package flatmap implements a sorted-vector ("flat") map: entries kept in
// a single ascending-sorted slice, located by binary search (spec.md §4.2).
//
// FlatMap trades O(n) single-key insert/erase for extremely fast point
// lookups (one cache-friendly binary search, no pointer chasing) and for
// fast batch operations: InsertBatch and EraseBatch append/collect then
// sort the whole working set once with radixsort, rather than doing n
// individual O(log n) searches plus O(n) shifts.
//
// # Batch semantics
//
// InsertBatch appends the new entries to the existing slice, radix-sorts
// the whole thing by key, then removes duplicates keeping the first
// occurrence of each key in that sorted-stable order — since stable sort
// preserves input order among equal keys, and existing entries are always
// listed before the newly appended ones, an existing value survives over a
// batch-inserted duplicate, and among several new entries sharing a key
// the earliest-listed one survives.
//
// EraseBatch radix-sorts and deduplicates the keys to erase, then performs
// a single linear two-pointer pass over the map, copying surviving entries
// left and truncating — no binary search per key.
package flatmap
