// Package avltree implements a height-balanced binary search tree (spec.md
// §4.3): every node's left and right subtree heights differ by at most one,
// restored after every insert and erase by rotation.
//
// # Node shape
//
// Each node holds {key, value, left, right, height, balance}, matching
// spec.md §3 exactly — no parent pointer. Iterators therefore carry their
// own root-to-node path (a stack of ancestors) rather than walking parent
// links; that path is a snapshot, so like every other mutation in this
// module, inserting or erasing invalidates outstanding iterators.
//
// # Rebalancing
//
// Insert records the descent path, attaches the new leaf, then walks the
// path bottom-up recomputing height/balance and rotating where balance
// reaches ±2, stopping as soon as an ancestor's height comes out unchanged
// from before the insert — once that happens, nothing further up the tree
// can have changed. Erase walks the same way but never stops early: a
// deleted subtree's height change can propagate all the way to the root.
// Tree clearing walks an explicit work-queue (a slice used as a stack)
// rather than recursing, so it runs in bounded stack space regardless of
// tree height.
package avltree
