package Queues

import (
	"cmp"

	"github.com/codifire/glare"
)

// Heap is a binary heap of key value pairs stored level by level in one
// slice: the children of slot i are 2i+1 and 2i+2. The root is the pair
// whose key comes first according to before; no parent comes after either
// of its children. Repeated keys are allowed.
// The zero value is not usable, create heaps with NewMaxHeap, NewMinHeap or
// NewHeapFunc.
type Heap[K, V any] struct {
	content []glare.Pair[K, V] // len(content) is the capacity, the first sz slots are used
	sz      uint
	before  func(a, b K) bool
}

// NewMaxHeap returns an empty heap with the greatest key at the root and
// room for hint pairs.
func NewMaxHeap[K cmp.Ordered, V any](hint uint) *Heap[K, V] {
	return NewHeapFunc[K, V](hint, func(a, b K) bool { return cmp.Less(b, a) })
}

// NewMinHeap returns an empty heap with the smallest key at the root and
// room for hint pairs.
func NewMinHeap[K cmp.Ordered, V any](hint uint) *Heap[K, V] {
	return NewHeapFunc[K, V](hint, cmp.Less[K])
}

// NewHeapFunc returns an empty heap where a is closer to the root than b
// whenever before(a, b), with room for hint pairs.
func NewHeapFunc[K, V any](hint uint, before func(a, b K) bool) *Heap[K, V] {
	return &Heap[K, V]{content: make([]glare.Pair[K, V], hint), before: before}
}

func (u *Heap[K, V]) Size() uint {
	return u.sz
}

// Cap is the number of pairs the heap holds before growing.
func (u *Heap[K, V]) Cap() uint {
	return uint(len(u.content))
}

func (u *Heap[K, V]) Empty() bool {
	return u.sz == 0
}

// Resize the storage to n slots, or to Size() if n is less.
// Time: O(Size())
func (u *Heap[K, V]) Resize(n uint) {
	nc := make([]glare.Pair[K, V], max(n, u.sz))
	copy(nc, u.content[:u.sz])
	u.content = nc
}

// Clear the heap and release its storage.
func (u *Heap[K, V]) Clear() {
	u.content, u.sz = nil, 0
}

// reheapUp moves the pair at i towards the root until its parent doesn't
// come after it.
// Time: O(log n)
func (u *Heap[K, V]) reheapUp(i uint) {
	for i > 0 {
		p := (i - 1) >> 1
		if !u.before(u.content[i].Key, u.content[p].Key) {
			return
		}
		u.content[i], u.content[p] = u.content[p], u.content[i]
		i = p
	}
}

// reheapDown moves the pair at i towards the leaves until neither child
// comes before it.
// Time: O(log n)
func (u *Heap[K, V]) reheapDown(i uint) {
	for {
		c := 2*i + 1
		if c >= u.sz {
			return
		}
		if r := c + 1; r < u.sz && u.before(u.content[r].Key, u.content[c].Key) {
			c = r
		}
		if !u.before(u.content[c].Key, u.content[i].Key) {
			return
		}
		u.content[i], u.content[c] = u.content[c], u.content[i]
		i = c
	}
}

// Insert the pair (k, v). The storage grows to 2*Cap()+1 slots, one more
// level, when full.
// Time: O(log n) amortized
func (u *Heap[K, V]) Insert(k K, v V) {
	u.InsertPair(glare.Pair[K, V]{Key: k, Value: v})
}

func (u *Heap[K, V]) InsertPair(p glare.Pair[K, V]) {
	if u.sz == uint(len(u.content)) {
		u.Resize(2*u.sz + 1)
	}
	u.content[u.sz] = p
	u.sz++
	u.reheapUp(u.sz - 1)
}

// Root returns the first pair without removing it.
// Time: O(1)
func (u *Heap[K, V]) Root() (k K, v V, ok bool) {
	if u.sz > 0 {
		return u.content[0].Key, u.content[0].Value, true
	}
	return
}

// RootValue returns a pointer to the value of the first pair, nil if empty.
func (u *Heap[K, V]) RootValue() *V {
	if u.sz > 0 {
		return &u.content[0].Value
	}
	return nil
}

// RemoveRoot removes the first pair. Returns false if the heap is empty.
// Time: O(log n)
func (u *Heap[K, V]) RemoveRoot() bool {
	if u.sz == 0 {
		return false
	}
	u.sz--
	u.content[0] = u.content[u.sz]
	u.content[u.sz] = glare.Pair[K, V]{}
	u.reheapDown(0)
	return true
}

// Clone returns a heap with a copy of u's storage.
// Time: O(Cap())
func (u *Heap[K, V]) Clone() *Heap[K, V] {
	return &Heap[K, V]{append([]glare.Pair[K, V](nil), u.content...), u.sz, u.before}
}

// Corrupt returns whether some parent comes after one of its children.
// Time: O(n)
func (u *Heap[K, V]) Corrupt() bool {
	for i := uint(1); i < u.sz; i++ {
		if u.before(u.content[i].Key, u.content[(i-1)>>1].Key) {
			return true
		}
	}
	return false
}
