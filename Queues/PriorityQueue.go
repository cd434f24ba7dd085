package Queues

import (
	"cmp"

	"github.com/codifire/glare"
)

// PriorityQueue dequeues values by the priority of the key they were
// enqueued with. It is a Queue of pairs: Push enqueues and Pop dequeues
// the whole pair.
type PriorityQueue[K, V any] struct {
	h *Heap[K, V]
}

// NewPriorityQueue returns an empty queue serving the greatest key first.
func NewPriorityQueue[K cmp.Ordered, V any](hint uint) *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{NewMaxHeap[K, V](hint)}
}

// NewPriorityQueueFunc returns an empty queue serving a before b whenever
// before(a, b).
func NewPriorityQueueFunc[K, V any](hint uint, before func(a, b K) bool) *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{NewHeapFunc[K, V](hint, before)}
}

func (u *PriorityQueue[K, V]) Enqueue(k K, v V) {
	u.h.Insert(k, v)
}

// Dequeue removes the value with the first key.
func (u *PriorityQueue[K, V]) Dequeue() (v V, ok bool) {
	if _, v, ok = u.h.Root(); ok {
		u.h.RemoveRoot()
	}
	return
}

// PeekValue returns the value with the first key without removing it.
func (u *PriorityQueue[K, V]) PeekValue() (v V, ok bool) {
	_, v, ok = u.h.Root()
	return
}

func (u *PriorityQueue[K, V]) Size() uint {
	return u.h.Size()
}

func (u *PriorityQueue[K, V]) Resize(n uint) {
	u.h.Resize(n)
}

func (u *PriorityQueue[K, V]) Clear() {
	u.h.Clear()
}

func (u *PriorityQueue[K, V]) Empty() bool {
	return u.h.Empty()
}

// Push [Queue.Push]
func (u *PriorityQueue[K, V]) Push(p glare.Pair[K, V]) {
	u.h.InsertPair(p)
}

// Pop [Queue.Pop]
func (u *PriorityQueue[K, V]) Pop() (p glare.Pair[K, V], e error) {
	var ok bool
	if p.Key, p.Value, ok = u.h.Root(); !ok {
		return p, &EmptyQueueError{}
	}
	u.h.RemoveRoot()
	return p, nil
}

// Peek [Queue.Peek]
func (u *PriorityQueue[K, V]) Peek() (p glare.Pair[K, V]) {
	p.Key, p.Value, _ = u.h.Root()
	return
}

// Clone returns a queue with a copy of u's heap.
func (u *PriorityQueue[K, V]) Clone() *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{u.h.Clone()}
}
