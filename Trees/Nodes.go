package Trees

import "github.com/codifire/glare"

// Balance of an AVL node: which of its subtrees, if any, is one level taller.
type Balance int8

const (
	RightHigher Balance = iota - 1
	EqualHeight
	LeftHigher
)

func (b Balance) String() string {
	switch b {
	case LeftHigher:
		return "LH"
	case RightHigher:
		return "RH"
	default:
		return "EH"
	}
}

// A node in the binary trees.
// bf is only maintained by AVLTree; the other trees leave it EqualHeight.
type node[K, V any] struct {
	k    K
	v    V
	l, r nodePtr[K, V]
	bf   Balance
}

// Pointer to a node, nil is an empty subtree.
type nodePtr[K, V any] *node[K, V]

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[K, V any](n *nodePtr[K, V]) {
	r := *n
	glare.Assert(r != nil && r.r != nil, "left rotation without a right child")
	rc := r.r
	r.r = rc.l
	rc.l = r
	*n = rc
}

// rotateRight performs a right rotation on nodePtr n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateRight[K, V any](n *nodePtr[K, V]) {
	r := *n
	glare.Assert(r != nil && r.l != nil, "right rotation without a left child")
	lc := r.l
	r.l = lc.r
	lc.r = r
	*n = lc
}

// search iteratively for k in the subtree rooting at cur.
// Time: O(D)
func search[K, V any](cur nodePtr[K, V], k K, cmp func(K, K) int) nodePtr[K, V] {
	for cur != nil {
		if c := cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// walk the subtree rooting at cur recursively in order o.
func walk[K, V any](cur nodePtr[K, V], o glare.Order, f func(K, V)) {
	if cur == nil {
		return
	}
	switch o {
	case glare.InOrder:
		walk(cur.l, o, f)
		f(cur.k, cur.v)
		walk(cur.r, o, f)
	case glare.PostOrder:
		walk(cur.l, o, f)
		walk(cur.r, o, f)
		f(cur.k, cur.v)
	default:
		f(cur.k, cur.v)
		walk(cur.l, o, f)
		walk(cur.r, o, f)
	}
}

// cloneNodes deep copies the subtree rooting at cur in pre-order, balance
// factors included.
// Time: O(n)
func cloneNodes[K, V any](cur nodePtr[K, V]) nodePtr[K, V] {
	if cur == nil {
		return nil
	}
	return &node[K, V]{cur.k, cur.v, cloneNodes(cur.l), cloneNodes(cur.r), cur.bf}
}

// height of the subtree rooting at cur, 0 for an empty subtree.
func height[K, V any](cur nodePtr[K, V]) int {
	if cur == nil {
		return 0
	}
	return max(height(cur.l), height(cur.r)) + 1
}

// ordered returns whether every key of the subtree rooting at cur lies
// strictly between lo and hi. A nil bound is unbounded.
func ordered[K, V any](cur nodePtr[K, V], lo, hi *K, cmp func(K, K) int) bool {
	if cur == nil {
		return true
	}
	if (lo != nil && cmp(*lo, cur.k) >= 0) || (hi != nil && cmp(cur.k, *hi) >= 0) {
		return false
	}
	return ordered(cur.l, lo, &cur.k, cmp) && ordered(cur.r, &cur.k, hi, cmp)
}

// count the nodes of the subtree rooting at cur.
func count[K, V any](cur nodePtr[K, V]) uint {
	if cur == nil {
		return 0
	}
	return count(cur.l) + count(cur.r) + 1
}

// leftmost node of a non empty subtree.
func leftmost[K, V any](cur nodePtr[K, V]) nodePtr[K, V] {
	for cur.l != nil {
		cur = cur.l
	}
	return cur
}

// rightmost node of a non empty subtree.
func rightmost[K, V any](cur nodePtr[K, V]) nodePtr[K, V] {
	for cur.r != nil {
		cur = cur.r
	}
	return cur
}
