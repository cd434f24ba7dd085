package Trees

import (
	"cmp"

	"github.com/codifire/glare"
)

// SplayTree is a self adjusting binary search tree with no repeated keys.
// Every access splays the accessed key, or the last node on its search
// path, to the root with top-down splaying, so the contents never change
// on lookup but the shape does. Operations are O(log n) amortized.
// The zero value is not usable, create trees with NewSplayTree or NewSplayTreeFunc.
type SplayTree[K, V any] struct {
	root  nodePtr[K, V]
	size  uint
	cmp   func(a, b K) int
	order glare.Order
}

// NewSplayTree returns an empty SplayTree ordered by cmp.Compare.
func NewSplayTree[K cmp.Ordered, V any]() *SplayTree[K, V] {
	return NewSplayTreeFunc[K, V](cmp.Compare[K])
}

// NewSplayTreeFunc returns an empty SplayTree ordered by the three way comparator c.
func NewSplayTreeFunc[K, V any](c func(a, b K) int) *SplayTree[K, V] {
	return &SplayTree[K, V]{cmp: c}
}

// joinLarger moves *cur, with its right subtree, to the left end of the
// larger-key subtree whose smallest node is *firstLarge; *cur becomes its
// old left child.
func joinLarger[K, V any](cur, firstLarge *nodePtr[K, V]) {
	(*firstLarge).l = *cur
	*firstLarge = *cur
	*cur = (*cur).l
}

// joinSmaller moves *cur, with its left subtree, to the right end of the
// smaller-key subtree whose greatest node is *lastSmall; *cur becomes its
// old right child.
func joinSmaller[K, V any](cur, lastSmall *nodePtr[K, V]) {
	(*lastSmall).r = *cur
	*lastSmall = *cur
	*cur = (*cur).r
}

// splay the subtree rooting at root around k. The tree is split three ways
// while descending: the central subtree where k would be, the smaller-key
// and the larger-key subtrees. At the end the last node reached becomes
// the root with the smaller-key and larger-key subtrees as its children.
// Returns the new root, which holds k if k is present.
// Time: O(D), O(log n) amortized
func splay[K, V any](root nodePtr[K, V], k K, cmp func(K, K) int) nodePtr[K, V] {
	if root == nil {
		return nil
	}
	var dummy node[K, V]
	cur, lastSmall, firstLarge := root, nodePtr[K, V](&dummy), nodePtr[K, V](&dummy)
	for {
		if c := cmp(k, cur.k); c < 0 {
			if cur.l == nil {
				break
			}
			if cmp(k, cur.l.k) < 0 {
				rotateRight(&cur)
				if cur.l == nil {
					break
				}
			}
			joinLarger(&cur, &firstLarge)
		} else if c > 0 {
			if cur.r == nil {
				break
			}
			if cmp(k, cur.r.k) > 0 {
				rotateLeft(&cur)
				if cur.r == nil {
					break
				}
			}
			joinSmaller(&cur, &lastSmall)
		} else {
			break
		}
	}
	lastSmall.r, firstLarge.l = cur.l, cur.r
	cur.l, cur.r = dummy.r, dummy.l
	return cur
}

// access splays k to the root and returns the root if it holds k.
func (u *SplayTree[K, V]) access(k K) nodePtr[K, V] {
	u.root = splay(u.root, k, u.cmp)
	if u.root != nil && u.cmp(k, u.root.k) == 0 {
		return u.root
	}
	return nil
}

func (u *SplayTree[K, V]) Size() uint {
	return u.size
}

func (u *SplayTree[K, V]) Empty() bool {
	return u.size == 0
}

func (u *SplayTree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

func (u *SplayTree[K, V]) SetOrder(o glare.Order) {
	u.order = o
}

// Insert [Tree.Insert]. A new key becomes the root, splitting the splayed
// tree around it.
// Time: O(log n) amortized
func (u *SplayTree[K, V]) Insert(k K, v V) bool {
	n := &node[K, V]{k: k, v: v}
	if u.root = splay(u.root, k, u.cmp); u.root != nil {
		if c := u.cmp(k, u.root.k); c == 0 {
			return false
		} else if c < 0 {
			n.l, n.r = u.root.l, u.root
			u.root.l = nil
		} else {
			n.l, n.r = u.root, u.root.r
			u.root.r = nil
		}
	}
	u.root = n
	u.size++
	return true
}

func (u *SplayTree[K, V]) InsertPair(p glare.Pair[K, V]) bool {
	return u.Insert(p.Key, p.Value)
}

// Remove [Tree.Remove]. The greatest key of the left subtree is splayed up
// to take the removed root's place.
// Time: O(log n) amortized
func (u *SplayTree[K, V]) Remove(k K) bool {
	r := u.access(k)
	if r == nil {
		return false
	}
	if r.l == nil {
		u.root = r.r
	} else {
		u.root = splay(r.l, k, u.cmp)
		u.root.r = r.r
	}
	u.size--
	return true
}

// Find [Tree.Find]. Splays.
// Time: O(log n) amortized
func (u *SplayTree[K, V]) Find(k K) (v V, ok bool) {
	if n := u.access(k); n != nil {
		return n.v, true
	}
	return
}

// Get [Tree.Get]. Splays.
// Time: O(log n) amortized
func (u *SplayTree[K, V]) Get(k K) *V {
	if n := u.access(k); n != nil {
		return &n.v
	}
	return nil
}

// Root returns the key at the root, the last one accessed if it was present.
func (u *SplayTree[K, V]) Root() (k K, ok bool) {
	if u.root != nil {
		return u.root.k, true
	}
	return
}

// Traverse [Tree.Traverse]. Doesn't splay. Recursive.
// Time: O(n)
func (u *SplayTree[K, V]) Traverse(f func(K, V)) {
	walk(u.root, u.order, f)
}

// Clone [Cloner.Clone]. Recursive.
// Time: O(n)
func (u *SplayTree[K, V]) Clone() *SplayTree[K, V] {
	return &SplayTree[K, V]{cloneNodes(u.root), u.size, u.cmp, u.order}
}

func (u *SplayTree[K, V]) Assign(src *SplayTree[K, V]) {
	if u != src {
		*u = *src.Clone()
	}
}

// Height of the tree, 0 when empty. Recursive.
func (u *SplayTree[K, V]) Height() int {
	return height(u.root)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *SplayTree[K, V]) Corrupt() bool {
	return !ordered(u.root, nil, nil, u.cmp) || count(u.root) != u.size
}
