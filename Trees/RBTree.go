package Trees

import (
	"cmp"

	"github.com/codifire/glare"
)

type color bool

const (
	red   color = false
	black color = true
)

// A node in the RBTree. p is the parent, nil for the root; it doesn't own
// the parent.
type rbnode[K, V any] struct {
	k       K
	v       V
	l, r, p *rbnode[K, V]
	c       color
}

// RBTree is a red black tree with no repeated keys: the root is black, no
// red node has a red child and every path from a node down to a missing
// child passes the same number of black nodes. The height D of the tree is
// at most 2*log2(n+1).
// Nodes keep parent links, so iterators move in O(1) amortized time and
// removal through an iterator doesn't search.
// The zero value is not usable, create trees with NewRBTree or NewRBTreeFunc.
type RBTree[K, V any] struct {
	root  *rbnode[K, V]
	size  uint
	cmp   func(a, b K) int
	order glare.Order
}

// NewRBTree returns an empty RBTree ordered by cmp.Compare.
func NewRBTree[K cmp.Ordered, V any]() *RBTree[K, V] {
	return NewRBTreeFunc[K, V](cmp.Compare[K])
}

// NewRBTreeFunc returns an empty RBTree ordered by the three way comparator c.
func NewRBTreeFunc[K, V any](c func(a, b K) int) *RBTree[K, V] {
	return &RBTree[K, V]{cmp: c}
}

func isRed[K, V any](n *rbnode[K, V]) bool {
	return n != nil && n.c == red
}

// replace links n into the place of old under old's parent. old keeps its
// own links.
func (u *RBTree[K, V]) replace(old, n *rbnode[K, V]) {
	p := old.p
	if n != nil {
		n.p = p
	}
	if p == nil {
		u.root = n
	} else if p.l == old {
		p.l = n
	} else {
		p.r = n
	}
}

// Time: O(1)
func (u *RBTree[K, V]) rotateLeft(x *rbnode[K, V]) {
	y := x.r
	glare.Assert(y != nil, "left rotation without a right child")
	x.r = y.l
	if y.l != nil {
		y.l.p = x
	}
	u.replace(x, y)
	y.l, x.p = x, y
}

// Time: O(1)
func (u *RBTree[K, V]) rotateRight(x *rbnode[K, V]) {
	y := x.l
	glare.Assert(y != nil, "right rotation without a left child")
	x.l = y.r
	if y.r != nil {
		y.r.p = x
	}
	u.replace(x, y)
	y.r, x.p = x, y
}

func (u *RBTree[K, V]) Size() uint {
	return u.size
}

func (u *RBTree[K, V]) Empty() bool {
	return u.size == 0
}

func (u *RBTree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

func (u *RBTree[K, V]) SetOrder(o glare.Order) {
	u.order = o
}

// insertFixup repaints and rotates upwards from the new red node z until
// no red node has a red parent.
// Time: O(D)
func (u *RBTree[K, V]) insertFixup(z *rbnode[K, V]) {
	for isRed(z.p) {
		p := z.p
		g := p.p
		if p == g.l {
			if y := g.r; isRed(y) {
				p.c, y.c, g.c = black, black, red
				z = g
				continue
			}
			if z == p.r {
				z = p
				u.rotateLeft(z)
				p = z.p
			}
			p.c, g.c = black, red
			u.rotateRight(g)
		} else {
			if y := g.l; isRed(y) {
				p.c, y.c, g.c = black, black, red
				z = g
				continue
			}
			if z == p.l {
				z = p
				u.rotateRight(z)
				p = z.p
			}
			p.c, g.c = black, red
			u.rotateLeft(g)
		}
	}
	u.root.c = black
}

// Insert [Tree.Insert]
// Time: O(D)
func (u *RBTree[K, V]) Insert(k K, v V) bool {
	var p *rbnode[K, V]
	c := 0
	for cur := u.root; cur != nil; {
		p = cur
		if c = u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return false
		}
	}
	z := &rbnode[K, V]{k: k, v: v, p: p, c: red}
	if p == nil {
		u.root = z
	} else if c < 0 {
		p.l = z
	} else {
		p.r = z
	}
	u.insertFixup(z)
	u.size++
	return true
}

func (u *RBTree[K, V]) InsertPair(p glare.Pair[K, V]) bool {
	return u.Insert(p.Key, p.Value)
}

// deleteFixup restores the black heights after a black node was spliced
// out above x. x may be nil, so its parent xp is passed along.
// Time: O(D)
func (u *RBTree[K, V]) deleteFixup(x, xp *rbnode[K, V]) {
	for x != u.root && !isRed(x) {
		if x == xp.l {
			w := xp.r
			if w.c == red {
				w.c, xp.c = black, red
				u.rotateLeft(xp)
				w = xp.r
			}
			if !isRed(w.l) && !isRed(w.r) {
				w.c = red
				x, xp = xp, xp.p
				continue
			}
			if !isRed(w.r) {
				w.l.c, w.c = black, red
				u.rotateRight(w)
				w = xp.r
			}
			w.c, xp.c = xp.c, black
			w.r.c = black
			u.rotateLeft(xp)
		} else {
			w := xp.l
			if w.c == red {
				w.c, xp.c = black, red
				u.rotateRight(xp)
				w = xp.l
			}
			if !isRed(w.l) && !isRed(w.r) {
				w.c = red
				x, xp = xp, xp.p
				continue
			}
			if !isRed(w.l) {
				w.r.c, w.c = black, red
				u.rotateLeft(w)
				w = xp.l
			}
			w.c, xp.c = xp.c, black
			w.l.c = black
			u.rotateRight(xp)
		}
		x = u.root
	}
	if x != nil {
		x.c = black
	}
}

// erase splices z out of the tree. A node with two children is replaced by
// its successor node, so no other node changes identity.
// Time: O(D)
func (u *RBTree[K, V]) erase(z *rbnode[K, V]) {
	var x, xp *rbnode[K, V]
	removed := z.c
	if z.l == nil {
		x, xp = z.r, z.p
		u.replace(z, z.r)
	} else if z.r == nil {
		x, xp = z.l, z.p
		u.replace(z, z.l)
	} else {
		y := z.r
		for y.l != nil {
			y = y.l
		}
		removed, x = y.c, y.r
		if y.p == z {
			xp = y
		} else {
			xp = y.p
			u.replace(y, y.r)
			y.r = z.r
			y.r.p = y
		}
		u.replace(z, y)
		y.l = z.l
		y.l.p = y
		y.c = z.c
	}
	if removed == black {
		u.deleteFixup(x, xp)
	}
	z.l, z.r, z.p = nil, nil, nil
	u.size--
}

func (u *RBTree[K, V]) find(k K) *rbnode[K, V] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Remove [Tree.Remove]
// Time: O(D)
func (u *RBTree[K, V]) Remove(k K) bool {
	if z := u.find(k); z != nil {
		u.erase(z)
		return true
	}
	return false
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *RBTree[K, V]) Find(k K) (v V, ok bool) {
	if n := u.find(k); n != nil {
		return n.v, true
	}
	return
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *RBTree[K, V]) Get(k K) *V {
	if n := u.find(k); n != nil {
		return &n.v
	}
	return nil
}

func (u *RBTree[K, V]) Has(k K) bool {
	return u.find(k) != nil
}

func rbWalk[K, V any](cur *rbnode[K, V], o glare.Order, f func(K, V)) {
	if cur == nil {
		return
	}
	switch o {
	case glare.InOrder:
		rbWalk(cur.l, o, f)
		f(cur.k, cur.v)
		rbWalk(cur.r, o, f)
	case glare.PostOrder:
		rbWalk(cur.l, o, f)
		rbWalk(cur.r, o, f)
		f(cur.k, cur.v)
	default:
		f(cur.k, cur.v)
		rbWalk(cur.l, o, f)
		rbWalk(cur.r, o, f)
	}
}

// Traverse [Tree.Traverse]. Recursive.
// Time: O(n)
func (u *RBTree[K, V]) Traverse(f func(K, V)) {
	rbWalk(u.root, u.order, f)
}

func rbClone[K, V any](cur, p *rbnode[K, V]) *rbnode[K, V] {
	if cur == nil {
		return nil
	}
	n := &rbnode[K, V]{k: cur.k, v: cur.v, p: p, c: cur.c}
	n.l, n.r = rbClone(cur.l, n), rbClone(cur.r, n)
	return n
}

// Clone [Cloner.Clone]. Recursive.
// Time: O(n)
func (u *RBTree[K, V]) Clone() *RBTree[K, V] {
	return &RBTree[K, V]{rbClone(u.root, nil), u.size, u.cmp, u.order}
}

// Assign replaces the content of u with a deep copy of src. Assigning a
// tree to itself does nothing.
func (u *RBTree[K, V]) Assign(src *RBTree[K, V]) {
	if u != src {
		*u = *src.Clone()
	}
}

// Swap the contents of u and o.
// Time: O(1)
func (u *RBTree[K, V]) Swap(o *RBTree[K, V]) {
	*u, *o = *o, *u
}

// blackHeight of the subtree rooting at cur, or -1 if it breaks a colour
// rule, a parent link or the key order between lo and hi.
func (u *RBTree[K, V]) blackHeight(cur *rbnode[K, V], lo, hi *K) int {
	if cur == nil {
		return 1
	}
	if (lo != nil && u.cmp(*lo, cur.k) >= 0) || (hi != nil && u.cmp(cur.k, *hi) >= 0) {
		return -1
	}
	if (cur.l != nil && cur.l.p != cur) || (cur.r != nil && cur.r.p != cur) {
		return -1
	}
	if cur.c == red && (isRed(cur.l) || isRed(cur.r)) {
		return -1
	}
	lh, rh := u.blackHeight(cur.l, lo, &cur.k), u.blackHeight(cur.r, &cur.k, hi)
	if lh < 0 || lh != rh {
		return -1
	}
	if cur.c == black {
		lh++
	}
	return lh
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *RBTree[K, V]) Corrupt() bool {
	if u.root == nil {
		return u.size != 0
	}
	var n uint
	rbWalk(u.root, glare.PreOrder, func(K, V) { n++ })
	return u.root.c != black || u.root.p != nil || u.blackHeight(u.root, nil, nil) < 0 || n != u.size
}

// Height of the tree, 0 when empty. Recursive.
func (u *RBTree[K, V]) Height() int {
	var h func(*rbnode[K, V]) int
	h = func(n *rbnode[K, V]) int {
		if n == nil {
			return 0
		}
		return max(h(n.l), h(n.r)) + 1
	}
	return h(u.root)
}

func successor[K, V any](n *rbnode[K, V]) *rbnode[K, V] {
	if n.r != nil {
		for n = n.r; n.l != nil; n = n.l {
		}
		return n
	}
	for n.p != nil && n == n.p.r {
		n = n.p
	}
	return n.p
}

func predecessor[K, V any](n *rbnode[K, V]) *rbnode[K, V] {
	if n.l != nil {
		for n = n.l; n.r != nil; n = n.r {
		}
		return n
	}
	for n.p != nil && n == n.p.l {
		n = n.p
	}
	return n.p
}

// RBIterator points at one pair of an RBTree, or past either end. The
// tree must not be modified while iterating, except through Erase.
type RBIterator[K, V any] struct {
	t *RBTree[K, V]
	n *rbnode[K, V]
}

// Begin returns an iterator at the smallest key.
// Time: O(D)
func (u *RBTree[K, V]) Begin() RBIterator[K, V] {
	n := u.root
	for n != nil && n.l != nil {
		n = n.l
	}
	return RBIterator[K, V]{u, n}
}

// Last returns an iterator at the greatest key, the start of a reverse
// iteration.
// Time: O(D)
func (u *RBTree[K, V]) Last() RBIterator[K, V] {
	n := u.root
	for n != nil && n.r != nil {
		n = n.r
	}
	return RBIterator[K, V]{u, n}
}

// Seek returns an iterator at k, invalid if k is absent.
// Time: O(D)
func (u *RBTree[K, V]) Seek(k K) RBIterator[K, V] {
	return RBIterator[K, V]{u, u.find(k)}
}

// Min returns the smallest key and its value.
func (u *RBTree[K, V]) Min() (k K, v V, ok bool) {
	if it := u.Begin(); it.Valid() {
		return it.Key(), *it.Value(), true
	}
	return
}

// Max returns the greatest key and its value.
func (u *RBTree[K, V]) Max() (k K, v V, ok bool) {
	if it := u.Last(); it.Valid() {
		return it.Key(), *it.Value(), true
	}
	return
}

// Valid is false once the iterator moved past either end.
func (it *RBIterator[K, V]) Valid() bool {
	return it.n != nil
}

func (it *RBIterator[K, V]) Key() K {
	return it.n.k
}

// Value returns a pointer to the value the iterator points at.
func (it *RBIterator[K, V]) Value() *V {
	return &it.n.v
}

// Next moves to the next greater key. Returns Valid().
// Time: amortized O(1)
func (it *RBIterator[K, V]) Next() bool {
	if it.n != nil {
		it.n = successor(it.n)
	}
	return it.n != nil
}

// Prev moves to the next smaller key. Returns Valid().
// Time: amortized O(1)
func (it *RBIterator[K, V]) Prev() bool {
	if it.n != nil {
		it.n = predecessor(it.n)
	}
	return it.n != nil
}

// Erase removes the pair the iterator points at and moves to the next
// greater key. Returns Valid().
// Time: O(D)
func (it *RBIterator[K, V]) Erase() bool {
	if it.n == nil {
		return false
	}
	next := successor(it.n)
	it.t.erase(it.n)
	it.n = next
	return next != nil
}
