package treap

import (
	"math/rand/v2"

	"github.com/dreamware/ordcontainers/ordmap"
)

type node[K ordmap.Key, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	priority    uint64
}

// Treap is a randomized, heap-ordered (min-heap on priority) binary
// search tree. It implements ordmap.OrderedMap[K, V].
type Treap[K ordmap.Key, V any] struct {
	root *node[K, V]
	size int
	rng  *rand.Rand
}

// New creates an empty Treap with its own randomness source.
func New[K ordmap.Key, V any]() *Treap[K, V] {
	return &Treap[K, V]{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Len returns the number of entries.
func (t *Treap[K, V]) Len() int { return t.size }

func rotateLeft[K ordmap.Key, V any](n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	return r
}

func rotateRight[K ordmap.Key, V any](n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	return l
}

// descend walks from the root toward k, returning the strict ancestor
// chain (root first, not including the result) and the node holding k,
// or nil if absent.
func (t *Treap[K, V]) descend(k K) (path []*node[K, V], target *node[K, V]) {
	cur := t.root
	for cur != nil {
		if k == cur.key {
			return path, cur
		}
		path = append(path, cur)
		if k < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return path, nil
}

func (t *Treap[K, V]) setChild(path []*node[K, V], i int, newChild *node[K, V]) {
	old := path[i]
	if i == 0 {
		t.root = newChild
		return
	}
	parent := path[i-1]
	if parent.left == old {
		parent.left = newChild
	} else {
		parent.right = newChild
	}
}

// Insert adds (k, v). Returns false, leaving the treap unchanged, if k
// is already present.
func (t *Treap[K, V]) Insert(k K, v V) bool {
	path, target := t.descend(k)
	if target != nil {
		return false
	}
	leaf := &node[K, V]{key: k, value: v, priority: t.rng.Uint64()}
	if len(path) == 0 {
		t.root = leaf
	} else {
		parent := path[len(path)-1]
		if k < parent.key {
			parent.left = leaf
		} else {
			parent.right = leaf
		}
	}
	t.size++
	t.bubbleUp(path, leaf)
	return true
}

// bubbleUp rotates the newly inserted leaf up past any ancestor with a
// larger priority, stopping at the first ancestor whose priority is
// already smaller (the heap property holds above that point).
func (t *Treap[K, V]) bubbleUp(path []*node[K, V], child *node[K, V]) {
	for i := len(path) - 1; i >= 0; i-- {
		parent := path[i]
		if child.priority >= parent.priority {
			return
		}
		var newSub *node[K, V]
		if parent.right == child {
			newSub = rotateLeft(parent)
		} else {
			newSub = rotateRight(parent)
		}
		t.setChild(path, i, newSub)
		child = newSub
	}
}

// Erase removes the entry for k, if present.
func (t *Treap[K, V]) Erase(k K) bool {
	path, target := t.descend(k)
	if target == nil {
		return false
	}

	for target.left != nil || target.right != nil {
		var newSub *node[K, V]
		switch {
		case target.left == nil:
			newSub = rotateLeft(target)
		case target.right == nil:
			newSub = rotateRight(target)
		case target.left.priority < target.right.priority:
			newSub = rotateRight(target)
		default:
			newSub = rotateLeft(target)
		}

		if len(path) == 0 {
			t.root = newSub
		} else {
			parent := path[len(path)-1]
			if parent.left == target {
				parent.left = newSub
			} else {
				parent.right = newSub
			}
		}
		path = append(path, newSub)
	}

	if len(path) == 0 {
		t.root = nil
	} else {
		parent := path[len(path)-1]
		if parent.left == target {
			parent.left = nil
		} else {
			parent.right = nil
		}
	}
	t.size--
	return true
}

// Find returns an iterator to the entry for k, or End() if absent.
func (t *Treap[K, V]) Find(k K) ordmap.Iterator[K, V] {
	var stack []*node[K, V]
	cur := t.root
	for cur != nil {
		stack = append(stack, cur)
		if k == cur.key {
			return &iterator[K, V]{t: t, stack: stack}
		}
		if k < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return t.End()
}

// Predecessor returns an iterator to the largest key strictly less than
// k, or End() if none.
func (t *Treap[K, V]) Predecessor(k K) ordmap.Iterator[K, V] {
	var stack, candidate []*node[K, V]
	cur := t.root
	for cur != nil {
		stack = append(stack, cur)
		if cur.key < k {
			candidate = append([]*node[K, V](nil), stack...)
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	if candidate == nil {
		return t.End()
	}
	return &iterator[K, V]{t: t, stack: candidate}
}

// Successor returns an iterator to the smallest key strictly greater
// than k, or End() if none.
func (t *Treap[K, V]) Successor(k K) ordmap.Iterator[K, V] {
	var stack, candidate []*node[K, V]
	cur := t.root
	for cur != nil {
		stack = append(stack, cur)
		if cur.key > k {
			candidate = append([]*node[K, V](nil), stack...)
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if candidate == nil {
		return t.End()
	}
	return &iterator[K, V]{t: t, stack: candidate}
}

// Begin returns an iterator to the minimum key, or End() if empty.
func (t *Treap[K, V]) Begin() ordmap.Iterator[K, V] {
	if t.root == nil {
		return t.End()
	}
	var stack []*node[K, V]
	cur := t.root
	for cur != nil {
		stack = append(stack, cur)
		cur = cur.left
	}
	return &iterator[K, V]{t: t, stack: stack}
}

// End returns the past-the-end sentinel iterator.
func (t *Treap[K, V]) End() ordmap.Iterator[K, V] {
	return &iterator[K, V]{t: t}
}

// Clear empties the treap using an explicit work-queue instead of
// recursion.
func (t *Treap[K, V]) Clear() {
	if t.root == nil {
		return
	}
	queue := []*node[K, V]{t.root}
	for len(queue) > 0 {
		n := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	t.root = nil
	t.size = 0
}

type iterator[K ordmap.Key, V any] struct {
	t     *Treap[K, V]
	stack []*node[K, V]
}

func (it *iterator[K, V]) Valid() bool { return len(it.stack) > 0 }

func (it *iterator[K, V]) Key() K { return it.stack[len(it.stack)-1].key }

func (it *iterator[K, V]) Value() V { return it.stack[len(it.stack)-1].value }

func (it *iterator[K, V]) SetValue(v V) {
	it.stack[len(it.stack)-1].value = v
}

func (it *iterator[K, V]) Next() {
	n := it.stack[len(it.stack)-1]
	if n.right != nil {
		cur := n.right
		it.stack = append(it.stack, cur)
		for cur.left != nil {
			cur = cur.left
			it.stack = append(it.stack, cur)
		}
		return
	}
	child := n
	it.stack = it.stack[:len(it.stack)-1]
	for len(it.stack) > 0 {
		parent := it.stack[len(it.stack)-1]
		if parent.left == child {
			return
		}
		child = parent
		it.stack = it.stack[:len(it.stack)-1]
	}
}

func (it *iterator[K, V]) Prev() {
	if len(it.stack) == 0 {
		if it.t.root == nil {
			return
		}
		cur := it.t.root
		it.stack = append(it.stack, cur)
		for cur.right != nil {
			cur = cur.right
			it.stack = append(it.stack, cur)
		}
		return
	}
	n := it.stack[len(it.stack)-1]
	if n.left != nil {
		cur := n.left
		it.stack = append(it.stack, cur)
		for cur.right != nil {
			cur = cur.right
			it.stack = append(it.stack, cur)
		}
		return
	}
	child := n
	it.stack = it.stack[:len(it.stack)-1]
	for len(it.stack) > 0 {
		parent := it.stack[len(it.stack)-1]
		if parent.right == child {
			return
		}
		child = parent
		it.stack = it.stack[:len(it.stack)-1]
	}
}

var _ ordmap.OrderedMap[int, int] = (*Treap[int, int])(nil)
