package Trees

import (
	"cmp"

	"github.com/codifire/glare"
)

// BSTree is an unbalanced binary search tree with no repeated keys. Its
// height D depends on the insertion order: O(log n) for random orders, n
// for sorted ones.
// The zero value is not usable, create trees with NewBSTree or NewBSTreeFunc.
type BSTree[K, V any] struct {
	root  nodePtr[K, V]
	size  uint
	cmp   func(a, b K) int
	order glare.Order
}

// NewBSTree returns an empty BSTree ordered by cmp.Compare.
func NewBSTree[K cmp.Ordered, V any]() *BSTree[K, V] {
	return NewBSTreeFunc[K, V](cmp.Compare[K])
}

// NewBSTreeFunc returns an empty BSTree ordered by the three way comparator c.
func NewBSTreeFunc[K, V any](c func(a, b K) int) *BSTree[K, V] {
	return &BSTree[K, V]{cmp: c}
}

func (u *BSTree[K, V]) Size() uint {
	return u.size
}

func (u *BSTree[K, V]) Empty() bool {
	return u.size == 0
}

func (u *BSTree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

func (u *BSTree[K, V]) SetOrder(o glare.Order) {
	u.order = o
}

// Insert [Tree.Insert]
// Time: O(D)
func (u *BSTree[K, V]) Insert(k K, v V) bool {
	curPtr := &u.root
	for *curPtr != nil {
		if c := u.cmp(k, (*curPtr).k); c < 0 {
			curPtr = &(*curPtr).l
		} else if c > 0 {
			curPtr = &(*curPtr).r
		} else {
			return false
		}
	}
	*curPtr = &node[K, V]{k: k, v: v}
	u.size++
	return true
}

func (u *BSTree[K, V]) InsertPair(p glare.Pair[K, V]) bool {
	return u.Insert(p.Key, p.Value)
}

// remove k from the subtree rooting at *curPtr recursively. A node with
// two children takes over its in-order predecessor, which is then removed
// from the left subtree instead.
// Time: O(D)
func (u *BSTree[K, V]) remove(curPtr *nodePtr[K, V], k K) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if c := u.cmp(k, cur.k); c < 0 {
		return u.remove(&cur.l, k)
	} else if c > 0 {
		return u.remove(&cur.r, k)
	}
	if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		pred := rightmost(cur.l)
		cur.k, cur.v = pred.k, pred.v
		u.remove(&cur.l, pred.k)
	}
	return true
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BSTree[K, V]) Remove(k K) bool {
	if !u.remove(&u.root, k) {
		return false
	}
	u.size--
	return true
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Find(k K) (v V, ok bool) {
	if n := search(u.root, k, u.cmp); n != nil {
		return n.v, true
	}
	return
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Get(k K) *V {
	if n := search(u.root, k, u.cmp); n != nil {
		return &n.v
	}
	return nil
}

// Traverse [Tree.Traverse]. Recursive.
func (u *BSTree[K, V]) Traverse(f func(K, V)) {
	walk(u.root, u.order, f)
}

// Clone [Cloner.Clone]. Recursive.
func (u *BSTree[K, V]) Clone() *BSTree[K, V] {
	return &BSTree[K, V]{cloneNodes(u.root), u.size, u.cmp, u.order}
}

func (u *BSTree[K, V]) Assign(src *BSTree[K, V]) {
	if u != src {
		*u = *src.Clone()
	}
}

func (u *BSTree[K, V]) Height() int {
	return height(u.root)
}

// Corrupt [Tree.Corrupt]. Recursive.
func (u *BSTree[K, V]) Corrupt() bool {
	return !ordered(u.root, nil, nil, u.cmp) || count(u.root) != u.size
}
