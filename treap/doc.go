// Package treap implements a randomized binary search tree (spec.md §4.4):
// a standard BST keyed by K, additionally heap-ordered by an independent
// random priority assigned to each node at insertion. The combination
// gives an expected O(log n) depth without any deterministic rebalancing
// bookkeeping (no heights, no balance factors).
//
// This implementation uses min-heap priority order, matching
// original_source/src/Treap.h: the node with the smallest priority in any
// subtree is that subtree's root. Insert descends as an ordinary BST
// insert, then bubbles the new leaf up with rotations for as long as its
// priority is smaller than its parent's. Erase bubbles the target node
// down — at each step rotating up whichever child has the smaller
// priority — until it is a leaf, then snips it.
//
// Like avltree, nodes carry no parent pointer, so iterators hold a
// snapshot of the root-to-node path and are invalidated by any Insert or
// Erase.
//
// Each Treap owns a private math/rand/v2 source, seeded once at
// construction, so priority assignment doesn't contend with or depend on
// the global generator.
package treap
