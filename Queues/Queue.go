package Queues

// Queue is a first in first out container, or a priority ordered one for
// PriorityQueue.
type Queue[T any] interface {
	Push(item T)
	//Pop the front item. Returns *EmptyQueueError if there is none.
	Pop() (T, error)
	//Peek the front item without removing it. The zero value if empty.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
