package avltree

import "github.com/dreamware/ordcontainers/ordmap"

type node[K ordmap.Key, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	height      int
	balance     int8
}

// Tree is a height-balanced binary search tree. It implements
// ordmap.OrderedMap[K, V].
type Tree[K ordmap.Key, V any] struct {
	root *node[K, V]
	size int
}

// New creates an empty Tree.
func New[K ordmap.Key, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of entries.
func (t *Tree[K, V]) Len() int { return t.size }

func height[K ordmap.Key, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func updateHeightBalance[K ordmap.Key, V any](n *node[K, V]) {
	lh, rh := height(n.left), height(n.right)
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
	n.balance = int8(lh - rh)
}

func rotateRight[K ordmap.Key, V any](n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	updateHeightBalance(n)
	updateHeightBalance(l)
	return l
}

func rotateLeft[K ordmap.Key, V any](n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	updateHeightBalance(n)
	updateHeightBalance(r)
	return r
}

// rebalance applies the single or double rotation indicated by n's
// balance factor (which must be ±2) and the balance factor of its taller
// child, per spec.md §4.3.
func rebalance[K ordmap.Key, V any](n *node[K, V]) *node[K, V] {
	switch {
	case n.balance == 2:
		if n.left.balance == -1 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case n.balance == -2:
		if n.right.balance == 1 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	default:
		return n
	}
}

// descend walks from the root toward k, returning the ancestor chain
// (root first). found reports whether a node with key k was reached; in
// that case path does not include it.
func (t *Tree[K, V]) descend(k K) (path []*node[K, V], found bool) {
	cur := t.root
	for cur != nil {
		if k == cur.key {
			return path, true
		}
		path = append(path, cur)
		if k < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return path, false
}

// Insert adds (k, v). Returns false, leaving the tree unchanged, if k is
// already present.
func (t *Tree[K, V]) Insert(k K, v V) bool {
	path, found := t.descend(k)
	if found {
		return false
	}
	leaf := &node[K, V]{key: k, value: v, height: 0, balance: 0}
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
	t.rebalanceAfterInsert(path)
	return true
}

// rebalanceAfterInsert walks the ancestor chain bottom-up, rotating where
// needed, and stops as soon as an ancestor's height comes out equal to
// what it was before the insert: past that point nothing higher up the
// tree changed.
func (t *Tree[K, V]) rebalanceAfterInsert(path []*node[K, V]) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		oldHeight := n.height
		updateHeightBalance(n)

		replacement := n
		if n.balance == 2 || n.balance == -2 {
			replacement = rebalance(n)
			t.setChild(path, i, replacement)
		}

		if replacement.height == oldHeight {
			return
		}
	}
}

// setChild installs newChild in place of the node previously at path[i]:
// as the root if i is the first ancestor, otherwise as the appropriate
// child of path[i-1].
func (t *Tree[K, V]) setChild(path []*node[K, V], i int, newChild *node[K, V]) {
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

// Erase removes the entry for k, if present.
func (t *Tree[K, V]) Erase(k K) bool {
	var path []*node[K, V]
	cur := t.root
	for cur != nil && cur.key != k {
		path = append(path, cur)
		if k < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur == nil {
		return false
	}
	target := cur

	if target.left != nil && target.right != nil {
		path = append(path, target)
		succ := target.right
		for succ.left != nil {
			path = append(path, succ)
			succ = succ.left
		}
		target.key = succ.key
		target.value = succ.value
		target = succ
	}

	var child *node[K, V]
	if target.left != nil {
		child = target.left
	} else {
		child = target.right
	}
	if len(path) == 0 {
		t.root = child
	} else {
		parent := path[len(path)-1]
		if parent.left == target {
			parent.left = child
		} else {
			parent.right = child
		}
	}
	t.size--
	t.rebalanceAfterErase(path)
	return true
}

// rebalanceAfterErase walks the full ancestor chain to the root: unlike
// insert, a single erase can require rotations at every level.
func (t *Tree[K, V]) rebalanceAfterErase(path []*node[K, V]) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		updateHeightBalance(n)
		if n.balance == 2 || n.balance == -2 {
			t.setChild(path, i, rebalance(n))
		}
	}
}

// Find returns an iterator to the entry for k, or End() if absent.
func (t *Tree[K, V]) Find(k K) ordmap.Iterator[K, V] {
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
func (t *Tree[K, V]) Predecessor(k K) ordmap.Iterator[K, V] {
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
func (t *Tree[K, V]) Successor(k K) ordmap.Iterator[K, V] {
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
func (t *Tree[K, V]) Begin() ordmap.Iterator[K, V] {
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
func (t *Tree[K, V]) End() ordmap.Iterator[K, V] {
	return &iterator[K, V]{t: t}
}

// Clear empties the tree using an explicit work-queue instead of
// recursion, so it runs in bounded stack space regardless of height.
func (t *Tree[K, V]) Clear() {
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

// Height returns the height of the tree (-1 if empty), for diagnostics
// and tests: an AVL tree of n nodes always has height O(log n).
func (t *Tree[K, V]) Height() int { return height(t.root) }

type iterator[K ordmap.Key, V any] struct {
	t     *Tree[K, V]
	stack []*node[K, V] // root-to-current path; nil means End().
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

var _ ordmap.OrderedMap[int, int] = (*Tree[int, int])(nil)
