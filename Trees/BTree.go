package Trees

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/codifire/glare"
	"github.com/codifire/glare/Queues"
)

// DefaultFreeListSize is the most released nodes a BTree keeps for reuse.
const DefaultFreeListSize = 32

// BTree is an in memory multiway search tree with no repeated keys. Every
// node holds at most MaxKeys()=order-1 keys, and every node except the root
// at least MinKeys()=MaxKeys()/2 keys. All leaves are at the same depth D,
// which is O(log n / log order).
// The tree grows only at the root, when a split propagates above it, and
// shrinks only at the root, when it is left without keys.
// The zero value is not usable, create trees with NewBTree or NewBTreeFunc.
type BTree[K, V any] struct {
	root  *bnode[K, V]
	order int
	size  uint
	cmp   func(a, b K) int
	walk  glare.Order
	free  []*bnode[K, V] // released nodes, reused before allocating
}

// NewBTree returns an empty BTree of the given order ordered by cmp.Compare.
// Panics with glare.InvariantError if order<3.
func NewBTree[K cmp.Ordered, V any](order int) *BTree[K, V] {
	return NewBTreeFunc[K, V](order, cmp.Compare[K])
}

// NewBTreeFunc returns an empty BTree of the given order ordered by the
// three way comparator c. Panics with glare.InvariantError if order<3.
func NewBTreeFunc[K, V any](order int, c func(a, b K) int) *BTree[K, V] {
	glare.Assert(order >= 3, "btree order %d is less than 3", order)
	return &BTree[K, V]{order: order, cmp: c, free: make([]*bnode[K, V], 0, DefaultFreeListSize)}
}

// Order is the maximum number of children of a node.
func (u *BTree[K, V]) Order() int {
	return u.order
}

// MaxKeys a node can hold.
func (u *BTree[K, V]) MaxKeys() int {
	return u.order - 1
}

// MinKeys a node other than the root must hold.
func (u *BTree[K, V]) MinKeys() int {
	return (u.order - 1) / 2
}

func (u *BTree[K, V]) newNode() *bnode[K, V] {
	if i := len(u.free) - 1; i >= 0 {
		n := u.free[i]
		u.free[i] = nil
		u.free = u.free[:i]
		return n
	}
	return &bnode[K, V]{keys: make([]K, u.order-1), vals: make([]V, u.order-1), kids: make([]*bnode[K, V], u.order)}
}

// freeNode keeps n for reuse if there's room.
func (u *BTree[K, V]) freeNode(n *bnode[K, V]) {
	n.clearFrom(0)
	n.kids[0] = nil
	n.n = 0
	if len(u.free) < cap(u.free) {
		u.free = append(u.free, n)
	}
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BTree[K, V]) Size() uint {
	return u.size
}

func (u *BTree[K, V]) Empty() bool {
	return u.size == 0
}

// Clear [Tree.Clear]. The free list is kept.
// Time: O(1)
func (u *BTree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

func (u *BTree[K, V]) SetOrder(o glare.Order) {
	u.walk = o
}

// pushDown inserts (k, v) into the subtree rooting at cur recursively. If
// cur had to split, or cur is nil, it returns the median pair and the
// median's right branch for the caller to insert. cur==nil reports a split
// of an empty subtree whose median is (k, v) itself.
// Time: O(D*order)
func (u *BTree[K, V]) pushDown(cur *bnode[K, V], k K, v V) (g growth, mk K, mv V, right *bnode[K, V]) {
	if cur == nil {
		return taller, k, v, nil
	}
	pos, found := cur.findKeyPosition(k, u.cmp)
	if found {
		g = duplicate
		return
	}
	if g, mk, mv, right = u.pushDown(cur.kids[pos], k, v); g != taller {
		return
	}
	if !cur.full() {
		cur.insertAt(pos, mk, mv, right)
		return absorbed, mk, mv, nil
	}
	out := u.newNode()
	mk, mv = cur.splitInsertAt(pos, mk, mv, right, out)
	return taller, mk, mv, out
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D*order)
func (u *BTree[K, V]) Insert(k K, v V) bool {
	g, mk, mv, right := u.pushDown(u.root, k, v)
	if g == duplicate {
		return false
	}
	if g == taller {
		nr := u.newNode()
		nr.keys[0], nr.vals[0] = mk, mv
		nr.kids[0], nr.kids[1] = u.root, right
		nr.n = 1
		u.root = nr
	}
	u.size++
	return true
}

func (u *BTree[K, V]) InsertPair(p glare.Pair[K, V]) bool {
	return u.Insert(p.Key, p.Value)
}

// restore gives cur.kids[pos], which is one key short, an entry from a
// sibling or combines it with one.
// Time: O(order)
func (u *BTree[K, V]) restore(cur *bnode[K, V], pos int) {
	minKeys := u.MinKeys()
	switch {
	case pos == cur.n:
		if cur.kids[pos-1].n > minKeys {
			cur.moveRight(pos-1, minKeys)
		} else {
			u.freeNode(cur.combine(pos))
		}
	case pos == 0:
		if cur.kids[1].n > minKeys {
			cur.moveLeft(1, minKeys)
		} else {
			u.freeNode(cur.combine(1))
		}
	default:
		if cur.kids[pos+1].n > minKeys {
			cur.moveLeft(pos+1, minKeys)
		} else if cur.kids[pos-1].n > minKeys {
			cur.moveRight(pos-1, minKeys)
		} else {
			u.freeNode(cur.combine(pos + 1))
		}
	}
}

// remove k from the subtree rooting at cur recursively. A key found in an
// internal node is overwritten by its predecessor, which is then removed
// from the left branch instead.
// Time: O(D*order)
func (u *BTree[K, V]) remove(cur *bnode[K, V], k K) bool {
	if cur == nil {
		return false
	}
	pos, found := cur.findKeyPosition(k, u.cmp)
	if found {
		if cur.leaf() {
			cur.removeLeafData(pos)
			return true
		}
		u.remove(cur.kids[pos], cur.copyInPredecessor(pos))
	} else if !u.remove(cur.kids[pos], k) {
		return false
	}
	if cur.kids[pos].n < u.MinKeys() {
		u.restore(cur, pos)
	}
	return true
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D*order)
func (u *BTree[K, V]) Remove(k K) bool {
	if !u.remove(u.root, k) {
		return false
	}
	u.size--
	if u.root.n == 0 {
		old := u.root
		u.root = old.kids[0]
		u.freeNode(old)
	}
	return true
}

func (u *BTree[K, V]) find(k K) (*bnode[K, V], int) {
	for cur := u.root; cur != nil; {
		pos, found := cur.findKeyPosition(k, u.cmp)
		if found {
			return cur, pos
		}
		cur = cur.kids[pos]
	}
	return nil, 0
}

// Find [Tree.Find]
// Time: O(D*log order); Space: O(1)
func (u *BTree[K, V]) Find(k K) (v V, ok bool) {
	if n, i := u.find(k); n != nil {
		return n.vals[i], true
	}
	return
}

// Get [Tree.Get]
// Time: O(D*log order); Space: O(1)
func (u *BTree[K, V]) Get(k K) *V {
	if n, i := u.find(k); n != nil {
		return &n.vals[i]
	}
	return nil
}

func (u *BTree[K, V]) Has(k K) bool {
	n, _ := u.find(k)
	return n != nil
}

// Height is the number of levels, 0 when empty.
// Time: O(D)
func (u *BTree[K, V]) Height() (h int) {
	for cur := u.root; cur != nil; cur = cur.kids[0] {
		h++
	}
	return
}

// RootKeys returns a copy of the keys held by the root.
func (u *BTree[K, V]) RootKeys() []K {
	if u.root == nil {
		return nil
	}
	return append([]K(nil), u.root.keys[:u.root.n]...)
}

// ChildKeys returns a copy of the keys of every child of the root, nil for
// an empty tree or a root that is a leaf.
func (u *BTree[K, V]) ChildKeys() [][]K {
	if u.root == nil || u.root.leaf() {
		return nil
	}
	res := make([][]K, u.root.n+1)
	for i, c := range u.root.kids[:u.root.n+1] {
		res[i] = append([]K(nil), c.keys[:c.n]...)
	}
	return res
}

// walkNode visits the subtree rooting at cur recursively. Pre-order visits
// the keys of a node before its children, post-order after them, and
// in-order interleaves them in ascending key order.
func walkNode[K, V any](cur *bnode[K, V], o glare.Order, f func(K, V)) {
	if cur == nil {
		return
	}
	switch o {
	case glare.InOrder:
		for i := 0; i < cur.n; i++ {
			walkNode(cur.kids[i], o, f)
			f(cur.keys[i], cur.vals[i])
		}
		walkNode(cur.kids[cur.n], o, f)
	case glare.PostOrder:
		for _, c := range cur.kids[:cur.n+1] {
			walkNode(c, o, f)
		}
		for i := 0; i < cur.n; i++ {
			f(cur.keys[i], cur.vals[i])
		}
	default:
		for i := 0; i < cur.n; i++ {
			f(cur.keys[i], cur.vals[i])
		}
		for _, c := range cur.kids[:cur.n+1] {
			walkNode(c, o, f)
		}
	}
}

// Traverse [Tree.Traverse]. Recursive.
// Time: O(n)
func (u *BTree[K, V]) Traverse(f func(K, V)) {
	walkNode(u.root, u.walk, f)
}

func (u *BTree[K, V]) cloneNode(cur *bnode[K, V]) *bnode[K, V] {
	if cur == nil {
		return nil
	}
	n := &bnode[K, V]{cur.n, make([]K, u.order-1), make([]V, u.order-1), make([]*bnode[K, V], u.order)}
	copy(n.keys, cur.keys)
	copy(n.vals, cur.vals)
	for i, c := range cur.kids[:cur.n+1] {
		n.kids[i] = u.cloneNode(c)
	}
	return n
}

// Clone [Cloner.Clone]. The copy gets its own empty free list. Recursive.
// Time: O(n)
func (u *BTree[K, V]) Clone() *BTree[K, V] {
	c := NewBTreeFunc[K, V](u.order, u.cmp)
	c.root, c.size, c.walk = u.cloneNode(u.root), u.size, u.walk
	return c
}

// Assign replaces the content of u with a deep copy of src. Assigning a
// tree to itself does nothing.
// Time: O(n)
func (u *BTree[K, V]) Assign(src *BTree[K, V]) {
	if u != src {
		*u = *src.Clone()
	}
}

// check the subtree rooting at cur whose keys must lie strictly between lo
// and hi. Returns the depth of its leaves, or -1 if anything is off.
func (u *BTree[K, V]) check(cur *bnode[K, V], lo, hi *K, isRoot bool) int {
	if cur.n > u.MaxKeys() || (!isRoot && cur.n < u.MinKeys()) || (isRoot && cur.n == 0) {
		return -1
	}
	for i := 0; i < cur.n; i++ {
		if (i > 0 && u.cmp(cur.keys[i-1], cur.keys[i]) >= 0) ||
			(lo != nil && u.cmp(*lo, cur.keys[i]) >= 0) || (hi != nil && u.cmp(cur.keys[i], *hi) >= 0) {
			return -1
		}
	}
	if cur.leaf() {
		for _, c := range cur.kids {
			if c != nil {
				return -1
			}
		}
		return 1
	}
	d := -1
	for i, c := range cur.kids {
		if i > cur.n {
			if c != nil {
				return -1
			}
			continue
		} else if c == nil {
			return -1
		}
		l, h := lo, hi
		if i > 0 {
			l = &cur.keys[i-1]
		}
		if i < cur.n {
			h = &cur.keys[i]
		}
		cd := u.check(c, l, h, false)
		if cd < 0 || (d >= 0 && cd != d) {
			return -1
		}
		d = cd
	}
	return d + 1
}

// Corrupt [Tree.Corrupt]. Checks key counts, key order, that every internal
// node has n+1 children and that all leaves are at the same depth. Recursive.
// Time: O(n)
func (u *BTree[K, V]) Corrupt() bool {
	if u.root == nil {
		return u.size != 0
	}
	if u.check(u.root, nil, nil, true) < 0 {
		return true
	}
	var n uint
	walkNode(u.root, glare.PreOrder, func(K, V) { n++ })
	return n != u.size
}

// String renders the keys level by level, one line per level, nodes as
// bracketed lists.
// Time: O(n)
func (u *BTree[K, V]) String() string {
	if u.root == nil {
		return "[]"
	}
	type leveled struct {
		n     *bnode[K, V]
		level int
	}
	var sb strings.Builder
	q := Queues.MakeArrayQueue[leveled](uint(u.order))
	q.Push(leveled{u.root, 0})
	for last := 0; !q.Empty(); {
		cur, _ := q.Pop()
		if cur.level != last {
			sb.WriteByte('\n')
			last = cur.level
		} else if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for i := 0; i < cur.n.n; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, cur.n.keys[i])
		}
		sb.WriteByte(']')
		if !cur.n.leaf() {
			for _, c := range cur.n.kids[:cur.n.n+1] {
				q.Push(leveled{c, cur.level + 1})
			}
		}
	}
	return sb.String()
}
