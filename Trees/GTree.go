package Trees

import (
	"github.com/codifire/glare"
	"github.com/codifire/glare/Queues"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// A node in the GTree. kids holds the children as *gnode[T] in insertion
// order; parent doesn't own the parent.
type gnode[T any] struct {
	v      T
	parent *gnode[T]
	kids   *doublylinkedlist.List
}

func newGNode[T any](v T, parent *gnode[T]) *gnode[T] {
	return &gnode[T]{v, parent, doublylinkedlist.New()}
}

// GTree is a general tree: every node has any number of ordered children.
// It is not a search tree; shape is decided by the caller through AddRoot
// and AddChild, and navigated with a GCursor.
type GTree[T any] struct {
	root  *gnode[T]
	size  uint
	order glare.Order
}

func NewGTree[T any]() *GTree[T] {
	return &GTree[T]{}
}

func (u *GTree[T]) Size() uint {
	return u.size
}

func (u *GTree[T]) Empty() bool {
	return u.size == 0
}

func (u *GTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// SetOrder for Traverse. In-order visits the first child's subtree, then
// the node, then the other children's subtrees.
func (u *GTree[T]) SetOrder(o glare.Order) {
	u.order = o
}

// AddRoot puts v above the current root, which becomes its only child.
// Time: O(1)
func (u *GTree[T]) AddRoot(v T) {
	n := newGNode(v, nil)
	if u.root != nil {
		u.root.parent = n
		n.kids.Add(u.root)
	}
	u.root = n
	u.size++
}

// AddChild appends v as the last child of the node c points at and moves
// c's child position back to the first child. Returns false if c is
// invalid or belongs to another tree.
// Time: O(1)
func (u *GTree[T]) AddChild(c *GCursor[T], v T) bool {
	if c.t != u || c.n == nil {
		return false
	}
	c.n.kids.Add(newGNode(v, c.n))
	c.resetChildren()
	u.size++
	return true
}

func gwalk[T any](cur *gnode[T], o glare.Order, f func(T)) {
	it := cur.kids.Iterator()
	switch o {
	case glare.InOrder:
		if it.Next() {
			gwalk(it.Value().(*gnode[T]), o, f)
		}
		f(cur.v)
		for it.Next() {
			gwalk(it.Value().(*gnode[T]), o, f)
		}
	case glare.PostOrder:
		for it.Next() {
			gwalk(it.Value().(*gnode[T]), o, f)
		}
		f(cur.v)
	default:
		f(cur.v)
		for it.Next() {
			gwalk(it.Value().(*gnode[T]), o, f)
		}
	}
}

// Traverse calls f on every value in the order set by SetOrder. Recursive.
// Time: O(n)
func (u *GTree[T]) Traverse(f func(T)) {
	if u.root != nil {
		gwalk(u.root, u.order, f)
	}
}

// LevelOrder calls f on every value breadth first, children left to right.
// Time: O(n)
func (u *GTree[T]) LevelOrder(f func(T)) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*gnode[T]](u.size)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		f(cur.v)
		for it := cur.kids.Iterator(); it.Next(); {
			q.Push(it.Value().(*gnode[T]))
		}
	}
}

func gcount[T any](cur *gnode[T]) uint {
	c := uint(1)
	for it := cur.kids.Iterator(); it.Next(); {
		c += gcount(it.Value().(*gnode[T]))
	}
	return c
}

// Count the nodes by walking the tree. Always equals Size. Recursive.
// Time: O(n)
func (u *GTree[T]) Count() uint {
	if u.root == nil {
		return 0
	}
	return gcount(u.root)
}

func gclone[T any](cur, parent *gnode[T]) *gnode[T] {
	n := newGNode(cur.v, parent)
	for it := cur.kids.Iterator(); it.Next(); {
		n.kids.Add(gclone(it.Value().(*gnode[T]), n))
	}
	return n
}

// Clone returns a deep copy of the tree. Recursive.
// Time: O(n)
func (u *GTree[T]) Clone() *GTree[T] {
	c := &GTree[T]{size: u.size, order: u.order}
	if u.root != nil {
		c.root = gclone(u.root, nil)
	}
	return c
}

// Cursor returns a GCursor at the root.
func (u *GTree[T]) Cursor() *GCursor[T] {
	c := &GCursor[T]{t: u}
	c.Root()
	return c
}

// GCursor points at a node of a GTree and, within that node, at one of its
// children or past the last one. It moves up to the parent, down to the
// child it points at, and forth and back among the children.
type GCursor[T any] struct {
	t  *GTree[T]
	n  *gnode[T]
	it doublylinkedlist.Iterator
}

func (c *GCursor[T]) resetChildren() {
	if c.n != nil {
		c.it = c.n.kids.Iterator()
		c.it.First()
	}
}

// Root moves the cursor to the root of its tree.
func (c *GCursor[T]) Root() {
	c.n = c.t.root
	c.resetChildren()
}

// Valid is false for a cursor of an empty tree.
func (c *GCursor[T]) Valid() bool {
	return c.n != nil
}

// Value returns a pointer to the value of the node the cursor is at.
func (c *GCursor[T]) Value() *T {
	return &c.n.v
}

// Children is the number of children of the node the cursor is at.
func (c *GCursor[T]) Children() int {
	return c.n.kids.Size()
}

// Up moves to the parent. Returns false, not moving, at the root.
func (c *GCursor[T]) Up() bool {
	if c.n == nil || c.n.parent == nil {
		return false
	}
	c.n = c.n.parent
	c.resetChildren()
	return true
}

// Down moves to the child the cursor points at. Returns false, not moving,
// if it points past the last child.
func (c *GCursor[T]) Down() bool {
	if c.n == nil || c.IsChildEnd() {
		return false
	}
	c.n = c.it.Value().(*gnode[T])
	c.resetChildren()
	return true
}

// ChildForth points at the next child. Returns false once it points past
// the last one.
func (c *GCursor[T]) ChildForth() bool {
	return !c.IsChildEnd() && c.it.Next()
}

// ChildBack points at the previous child. Returns false, not moving, at
// the first child.
func (c *GCursor[T]) ChildBack() bool {
	if c.IsChildFirst() {
		return false
	}
	return c.it.Prev()
}

// IsChildFirst reports whether the cursor points at the first child, or
// the node has none.
func (c *GCursor[T]) IsChildFirst() bool {
	return c.it.Index() <= 0
}

// IsChildEnd reports whether the cursor points past the last child.
func (c *GCursor[T]) IsChildEnd() bool {
	return c.n == nil || c.it.Index() >= c.n.kids.Size()
}

// Child returns the value of the child the cursor points at.
func (c *GCursor[T]) Child() (v T, ok bool) {
	if c.IsChildEnd() {
		return
	}
	return c.it.Value().(*gnode[T]).v, true
}
