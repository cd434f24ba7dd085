package arrTree

import (
	"cmp"

	"github.com/codifire/glare"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree with no repeated keys stored in a single
// slice without links, see base. It doesn't rebalance: its height D
// depends on the insertion order, and the slice needs 2^D-1 slots.
// K is the key type, V the value type and S the type of the indexes into
// the slice, which bounds the capacity to the range of S.
// Pointers returned by Get are invalidated when an Insert grows the slice.
type Tree[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	base[K, V, S]
	size  S
	order glare.Order
}

// New returns an empty Tree with room for hint slots.
func New[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *Tree[K, V, S] {
	return &Tree[K, V, S]{base: base[K, V, S]{make([]slot[K, V], hint)}}
}

// find k starting at the root. Returns the slot of k, or the empty slot
// where k would go, possibly beyond the slice.
// Time: O(D)
func (u *Tree[K, V, S]) find(k K) (uint64, bool) {
	i := uint64(0)
	for u.valid(i) {
		if s := &u.slots[i]; k < s.k {
			i = left(i)
		} else if k > s.k {
			i = right(i)
		} else {
			return i, true
		}
	}
	return i, false
}

// Insert [Trees.Tree.Insert]. Grows the slice when k lands beyond it.
// Time: O(D), O(cap) when growing
func (u *Tree[K, V, S]) Insert(k K, v V) bool {
	i, found := u.find(k)
	if found {
		return false
	}
	if i >= uint64(len(u.slots)) {
		u.grow(i)
	}
	u.slots[i] = slot[K, V]{k, v, true}
	u.size++
	return true
}

func (u *Tree[K, V, S]) InsertPair(p glare.Pair[K, V]) bool {
	return u.Insert(p.Key, p.Value)
}

// Remove [Trees.Tree.Remove]
// Time: O(D)
func (u *Tree[K, V, S]) Remove(k K) bool {
	i, found := u.find(k)
	if !found {
		return false
	}
	u.deleteSlot(i)
	u.size--
	return true
}

// Find [Trees.Tree.Find]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Find(k K) (v V, ok bool) {
	if i, found := u.find(k); found {
		return u.slots[i].v, true
	}
	return
}

// Get [Trees.Tree.Get]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Get(k K) *V {
	if i, found := u.find(k); found {
		return &u.slots[i].v
	}
	return nil
}

func (u *Tree[K, V, S]) Has(k K) bool {
	_, found := u.find(k)
	return found
}

func (u *Tree[K, V, S]) Size() uint {
	return uint(u.size)
}

func (u *Tree[K, V, S]) Empty() bool {
	return u.size == 0
}

// Cap is the number of slots.
func (u *Tree[K, V, S]) Cap() uint {
	return uint(len(u.slots))
}

// Clear the tree, keeping the slice.
// Time: O(cap)
func (u *Tree[K, V, S]) Clear() {
	clear(u.slots)
	u.size = 0
}

func (u *Tree[K, V, S]) SetOrder(o glare.Order) {
	u.order = o
}

// Traverse [Trees.Tree.Traverse]. Recursive.
// Time: O(n)
func (u *Tree[K, V, S]) Traverse(f func(K, V)) {
	u.walk(0, u.order, f)
}

// InOrder traversal of the tree using the stack st, which is returned for
// reuse. The traversal stops early once f returns false. f may modify the
// value but the tree must not be modified.
// Time: O(n); Space: O(D)
func (u *Tree[K, V, S]) InOrder(f func(K, *V) bool, st []S) []S {
	st = st[:0]
	for i := uint64(0); u.valid(i); i = left(i) {
		st = append(st, S(i))
	}
	for len(st) > 0 {
		i := uint64(st[len(st)-1])
		st = st[:len(st)-1]
		if !f(u.slots[i].k, &u.slots[i].v) {
			break
		}
		for i = right(i); u.valid(i); i = left(i) {
			st = append(st, S(i))
		}
	}
	return st
}

// Height of the tree, 0 when empty. Recursive.
func (u *Tree[K, V, S]) Height() int {
	return u.height(0)
}

// Clone returns a tree with a copy of u's slice.
// Time: O(cap)
func (u *Tree[K, V, S]) Clone() *Tree[K, V, S] {
	return &Tree[K, V, S]{base[K, V, S]{append([]slot[K, V](nil), u.slots...)}, u.size, u.order}
}

func (u *Tree[K, V, S]) Assign(src *Tree[K, V, S]) {
	if u != src {
		*u = *src.Clone()
	}
}

// Corrupt [Trees.Tree.Corrupt]. Checks that every used slot other than the
// root has a used parent, the search order and the size. Recursive.
// Time: O(cap)
func (u *Tree[K, V, S]) Corrupt() bool {
	var n S
	for i := range u.slots {
		if u.slots[i].used {
			n++
			if i > 0 && !u.slots[(i-1)>>1].used {
				return true
			}
		}
	}
	var ordered func(i uint64, lo, hi *K) bool
	ordered = func(i uint64, lo, hi *K) bool {
		if !u.valid(i) {
			return true
		}
		k := &u.slots[i].k
		if (lo != nil && *k <= *lo) || (hi != nil && *k >= *hi) {
			return false
		}
		return ordered(left(i), lo, k) && ordered(right(i), k, hi)
	}
	return n != u.size || !ordered(0, nil, nil)
}
