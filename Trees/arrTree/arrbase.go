package arrTree

import (
	"math"

	"github.com/codifire/glare"
	"golang.org/x/exp/constraints"
)

// A slot of the tree's array. The zero value is an empty slot.
type slot[K, V any] struct {
	k    K
	v    V
	used bool
}

// base is the array of slots addressed by implicit indexes: the children
// of slot i are at 2i+1 and 2i+2, its parent at (i-1)/2. Slot 0 is the root.
type base[K, V any, S constraints.Unsigned] struct {
	slots []slot[K, V]
}

// limit is the number of slots indexable by S.
func limit[S constraints.Unsigned]() uint64 {
	if m := uint64(^S(0)); m < math.MaxUint64 {
		return m + 1
	}
	return math.MaxUint64
}

func left(i uint64) uint64 {
	return i<<1 + 1
}

func right(i uint64) uint64 {
	return i<<1 + 2
}

func (u *base[K, V, S]) valid(i uint64) bool {
	return i < uint64(len(u.slots)) && u.slots[i].used
}

func (u *base[K, V, S]) leaf(i uint64) bool {
	return !u.valid(left(i)) && !u.valid(right(i))
}

// grow the array level by level, to 2*cap+1 slots each time, until slot i
// exists. Panics with glare.InvariantError if i is not indexable by S.
// Time: O(cap)
func (u *base[K, V, S]) grow(i uint64) {
	lim := limit[S]()
	glare.Assert(i < lim, "slot %d is not indexable", i)
	c := uint64(len(u.slots))
	for c <= i {
		c = 2*c + 1
	}
	ns := make([]slot[K, V], min(c, lim))
	copy(ns, u.slots)
	u.slots = ns
}

// predecessor is the rightmost slot of the subtree rooting at i.
func (u *base[K, V, S]) predecessor(i uint64) uint64 {
	for u.valid(right(i)) {
		i = right(i)
	}
	return i
}

// successor is the leftmost slot of the subtree rooting at i.
func (u *base[K, V, S]) successor(i uint64) uint64 {
	for u.valid(left(i)) {
		i = left(i)
	}
	return i
}

// deleteSlot empties slot i. A slot with children takes the greatest
// entry of its left subtree, or the smallest of its right one when it has
// no left child, and the slot that entry came from is emptied in turn, so
// entries only ever move up and every subtree stays in place.
// Time: O(D)
func (u *base[K, V, S]) deleteSlot(i uint64) {
	for !u.leaf(i) {
		var j uint64
		if u.valid(left(i)) {
			j = u.predecessor(left(i))
		} else {
			j = u.successor(right(i))
		}
		u.slots[i].k, u.slots[i].v = u.slots[j].k, u.slots[j].v
		i = j
	}
	u.slots[i] = slot[K, V]{}
}

// walk the subtree rooting at i recursively in order o.
func (u *base[K, V, S]) walk(i uint64, o glare.Order, f func(K, V)) {
	if !u.valid(i) {
		return
	}
	s := &u.slots[i]
	switch o {
	case glare.InOrder:
		u.walk(left(i), o, f)
		f(s.k, s.v)
		u.walk(right(i), o, f)
	case glare.PostOrder:
		u.walk(left(i), o, f)
		u.walk(right(i), o, f)
		f(s.k, s.v)
	default:
		f(s.k, s.v)
		u.walk(left(i), o, f)
		u.walk(right(i), o, f)
	}
}

func (u *base[K, V, S]) height(i uint64) int {
	if !u.valid(i) {
		return 0
	}
	return max(u.height(left(i)), u.height(right(i))) + 1
}
