package Trees

import (
	"cmp"

	"github.com/codifire/glare"
)

// AVLTree is a binary search tree with no repeated keys. It maintains
// balance through rotations driven by the balance factor kept in every
// node: the heights of the two subtrees of any node differ by at most 1.
// The height D of the tree is less than 1.44*log2(n+2), so every keyed
// operation is O(log n).
// The zero value is not usable, create trees with NewAVLTree or NewAVLTreeFunc.
type AVLTree[K, V any] struct {
	root  nodePtr[K, V]
	size  uint
	cmp   func(a, b K) int
	order glare.Order
}

// NewAVLTree returns an empty AVLTree ordered by cmp.Compare.
func NewAVLTree[K cmp.Ordered, V any]() *AVLTree[K, V] {
	return NewAVLTreeFunc[K, V](cmp.Compare[K])
}

// NewAVLTreeFunc returns an empty AVLTree ordered by the three way comparator c.
func NewAVLTreeFunc[K, V any](c func(a, b K) int) *AVLTree[K, V] {
	return &AVLTree[K, V]{cmp: c}
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V]) Size() uint {
	return u.size
}

func (u *AVLTree[K, V]) Empty() bool {
	return u.size == 0
}

// Clear [Tree.Clear]. The nodes are left to the garbage collector.
// Time: O(1)
func (u *AVLTree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

func (u *AVLTree[K, V]) SetOrder(o glare.Order) {
	u.order = o
}

// Traverse [Tree.Traverse]. Recursive.
// Time: O(n)
func (u *AVLTree[K, V]) Traverse(f func(K, V)) {
	walk(u.root, u.order, f)
}

// Result of inserting into a subtree.
type growth byte

const (
	duplicate growth = iota // key already present, nothing changed
	absorbed                // inserted, subtree height unchanged
	taller                  // inserted, subtree is one level taller
)

// Result of removing from a subtree.
type shrinkage byte

const (
	notFound shrinkage = iota // key absent, nothing changed
	removed                   // removed, subtree height unchanged
	shorter                   // removed, subtree is one level shorter
)

// balanceLeft restores the subtree rooting at *curPtr whose left subtree is
// two levels taller than its right one. Returns whether the subtree got
// shorter than it was before the rebalance, which is false only when the
// left child was EqualHeight; that case is reachable only through removal.
// Time: O(1)
func balanceLeft[K, V any](curPtr *nodePtr[K, V]) bool {
	cur := *curPtr
	lc := cur.l
	switch lc.bf {
	case LeftHigher:
		cur.bf, lc.bf = EqualHeight, EqualHeight
		rotateRight(curPtr)
	case EqualHeight:
		cur.bf, lc.bf = LeftHigher, RightHigher
		rotateRight(curPtr)
		return false
	case RightHigher:
		gc := lc.r
		switch gc.bf {
		case LeftHigher:
			cur.bf, lc.bf = RightHigher, EqualHeight
		case EqualHeight:
			cur.bf, lc.bf = EqualHeight, EqualHeight
		case RightHigher:
			cur.bf, lc.bf = EqualHeight, LeftHigher
		}
		gc.bf = EqualHeight
		rotateLeft(&cur.l)
		rotateRight(curPtr)
	}
	return true
}

// balanceRight mirrors balanceLeft.
// Time: O(1)
func balanceRight[K, V any](curPtr *nodePtr[K, V]) bool {
	cur := *curPtr
	rc := cur.r
	switch rc.bf {
	case RightHigher:
		cur.bf, rc.bf = EqualHeight, EqualHeight
		rotateLeft(curPtr)
	case EqualHeight:
		cur.bf, rc.bf = RightHigher, LeftHigher
		rotateLeft(curPtr)
		return false
	case LeftHigher:
		gc := rc.l
		switch gc.bf {
		case RightHigher:
			cur.bf, rc.bf = LeftHigher, EqualHeight
		case EqualHeight:
			cur.bf, rc.bf = EqualHeight, EqualHeight
		case LeftHigher:
			cur.bf, rc.bf = EqualHeight, RightHigher
		}
		gc.bf = EqualHeight
		rotateRight(&cur.r)
		rotateLeft(curPtr)
	}
	return true
}

// insert the pair (k, v) into the subtree rooting at *curPtr recursively.
// curPtr is passed by reference.
// Time: O(D)
func (u *AVLTree[K, V]) insert(curPtr *nodePtr[K, V], k K, v V) growth {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[K, V]{k: k, v: v}
		return taller
	}
	c := u.cmp(k, cur.k)
	if c == 0 {
		return duplicate
	} else if c < 0 {
		if g := u.insert(&cur.l, k, v); g != taller {
			return g
		}
		switch cur.bf {
		case LeftHigher:
			glare.Assert(balanceLeft(curPtr), "equal height child rebalancing an insertion at %v", cur.k)
			return absorbed
		case EqualHeight:
			cur.bf = LeftHigher
			return taller
		default:
			cur.bf = EqualHeight
			return absorbed
		}
	} else {
		if g := u.insert(&cur.r, k, v); g != taller {
			return g
		}
		switch cur.bf {
		case RightHigher:
			glare.Assert(balanceRight(curPtr), "equal height child rebalancing an insertion at %v", cur.k)
			return absorbed
		case EqualHeight:
			cur.bf = RightHigher
			return taller
		default:
			cur.bf = EqualHeight
			return absorbed
		}
	}
}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *AVLTree[K, V]) Insert(k K, v V) bool {
	if u.insert(&u.root, k, v) == duplicate {
		return false
	}
	u.size++
	return true
}

func (u *AVLTree[K, V]) InsertPair(p glare.Pair[K, V]) bool {
	return u.Insert(p.Key, p.Value)
}

// leftShrunk updates *curPtr after its left subtree reported s.
func leftShrunk[K, V any](curPtr *nodePtr[K, V], s shrinkage) shrinkage {
	if s != shorter {
		return s
	}
	switch cur := *curPtr; cur.bf {
	case LeftHigher:
		cur.bf = EqualHeight
		return shorter
	case EqualHeight:
		cur.bf = RightHigher
		return removed
	default:
		if balanceRight(curPtr) {
			return shorter
		}
		return removed
	}
}

// rightShrunk mirrors leftShrunk.
func rightShrunk[K, V any](curPtr *nodePtr[K, V], s shrinkage) shrinkage {
	if s != shorter {
		return s
	}
	switch cur := *curPtr; cur.bf {
	case RightHigher:
		cur.bf = EqualHeight
		return shorter
	case EqualHeight:
		cur.bf = LeftHigher
		return removed
	default:
		if balanceLeft(curPtr) {
			return shorter
		}
		return removed
	}
}

// remove k from the subtree rooting at *curPtr recursively. curPtr is
// passed by reference. A node with two children takes over its in-order
// predecessor, which is then removed from the left subtree instead.
// Time: O(D)
func (u *AVLTree[K, V]) remove(curPtr *nodePtr[K, V], k K) shrinkage {
	cur := *curPtr
	if cur == nil {
		return notFound
	}
	c := u.cmp(k, cur.k)
	if c == 0 {
		if cur.l == nil {
			*curPtr = cur.r
			return shorter
		} else if cur.r == nil {
			*curPtr = cur.l
			return shorter
		}
		pred := rightmost(cur.l)
		cur.k, cur.v = pred.k, pred.v
		return leftShrunk(curPtr, u.remove(&cur.l, pred.k))
	} else if c < 0 {
		return leftShrunk(curPtr, u.remove(&cur.l, k))
	}
	return rightShrunk(curPtr, u.remove(&cur.r, k))
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *AVLTree[K, V]) Remove(k K) bool {
	if u.remove(&u.root, k) == notFound {
		return false
	}
	u.size--
	return true
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V]) Find(k K) (v V, ok bool) {
	if n := search(u.root, k, u.cmp); n != nil {
		return n.v, true
	}
	return
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V]) Get(k K) *V {
	if n := search(u.root, k, u.cmp); n != nil {
		return &n.v
	}
	return nil
}

// Has k in the tree.
func (u *AVLTree[K, V]) Has(k K) bool {
	return search(u.root, k, u.cmp) != nil
}

// Min returns the smallest key and its value.
// Time: O(D)
func (u *AVLTree[K, V]) Min() (k K, v V, ok bool) {
	if u.root != nil {
		n := leftmost(u.root)
		return n.k, n.v, true
	}
	return
}

// Max returns the greatest key and its value.
// Time: O(D)
func (u *AVLTree[K, V]) Max() (k K, v V, ok bool) {
	if u.root != nil {
		n := rightmost(u.root)
		return n.k, n.v, true
	}
	return
}

// Height of the tree, 0 when empty. Recursive.
// Time: O(n)
func (u *AVLTree[K, V]) Height() int {
	return height(u.root)
}

// Root returns the key at the root.
func (u *AVLTree[K, V]) Root() (k K, ok bool) {
	if u.root != nil {
		return u.root.k, true
	}
	return
}

// Clone [Cloner.Clone]. Nodes are copied in pre-order. Recursive.
// Time: O(n)
func (u *AVLTree[K, V]) Clone() *AVLTree[K, V] {
	return &AVLTree[K, V]{cloneNodes(u.root), u.size, u.cmp, u.order}
}

// Assign replaces the content of u with a deep copy of src. Assigning a
// tree to itself does nothing.
// Time: O(n)
func (u *AVLTree[K, V]) Assign(src *AVLTree[K, V]) {
	if u != src {
		*u = *src.Clone()
	}
}

// balanced checks the subtree rooting at cur against its balance factors
// and returns its height, or -1 if some node is off.
func balanced[K, V any](cur nodePtr[K, V]) int {
	if cur == nil {
		return 0
	}
	lh, rh := balanced(cur.l), balanced(cur.r)
	if lh < 0 || rh < 0 {
		return -1
	}
	switch d := lh - rh; {
	case d == 1 && cur.bf == LeftHigher, d == 0 && cur.bf == EqualHeight, d == -1 && cur.bf == RightHigher:
		return max(lh, rh) + 1
	}
	return -1
}

// Corrupt [Tree.Corrupt]. Checks the search order, the height balance and
// that every balance factor encodes the actual height difference. Recursive.
// Time: O(n)
func (u *AVLTree[K, V]) Corrupt() bool {
	return !ordered(u.root, nil, nil, u.cmp) || balanced(u.root) < 0 || count(u.root) != u.size
}

// AVLRecord is one entry of a flattened AVLTree.
type AVLRecord[K, V any] struct {
	Key     K
	Value   V
	Balance Balance
}

// Direction of SerializeList.
type Direction bool

const (
	SerializeRead  Direction = true  // tree to list
	SerializeWrite Direction = false // list to tree
)

// SerializeList converts between the tree and a flat list.
// SerializeRead appends the pre-order flattening of the tree to *list,
// each record carrying the node's balance factor.
// SerializeWrite clears the tree and inserts the records of *list in
// order. Balance factors are derived again by the insertions, the ones
// stored in the records are not trusted. Records with repeated keys after
// the first are skipped.
// Time: O(n) for read; O(n log n) for write.
func (u *AVLTree[K, V]) SerializeList(list *[]AVLRecord[K, V], dir Direction) {
	if dir == SerializeRead {
		var flatten func(nodePtr[K, V])
		flatten = func(cur nodePtr[K, V]) {
			if cur != nil {
				*list = append(*list, AVLRecord[K, V]{cur.k, cur.v, cur.bf})
				flatten(cur.l)
				flatten(cur.r)
			}
		}
		flatten(u.root)
	} else {
		u.Clear()
		for _, r := range *list {
			u.Insert(r.Key, r.Value)
		}
	}
}
