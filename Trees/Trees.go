package Trees

import "github.com/codifire/glare"

// Tree represents an ordered associative container mapping unique keys to
// values. Receivers that have a bool as the last return value report
// whether the other return values are defined. For example, Find on an
// absent key returns (x V, false) and x should not be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here. Methods implemented recursively
// should be noted, otherwise they are implemented iteratively.
// None of the implementations are safe for concurrent use; a single writer
// must own the tree.
type Tree[K, V any] interface {
	//Insert the pair (k, v). Returns false without modifying the tree if k is
	//already present; keys are never overwritten.
	Insert(k K, v V) bool
	//InsertPair is Insert taking a glare.Pair.
	InsertPair(p glare.Pair[K, V]) bool
	//Remove k from the Tree. Returns whether k was present. Removing an
	//absent key is a no-op.
	Remove(k K) bool
	//Find the value stored under k. Find and Get always agree.
	Find(k K) (V, bool)
	//Get a pointer to the value stored under k, nil if absent. The pointer
	//is valid until the next modification of the tree.
	Get(k K) *V
	//Size of the tree.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//Clear the tree, releasing all nodes.
	Clear()
	//SetOrder for Traverse. Trees start with glare.PreOrder.
	SetOrder(o glare.Order)
	//Traverse calls f on every pair in the order set by SetOrder. The tree
	//must not be modified during the traversal.
	Traverse(f func(K, V))
	//Corrupt returns whether the tree has corrupt structures, that is, when
	//some node violates the properties of that specific implementation.
	Corrupt() bool
}

// Clone is implemented by every Tree in this package; the copy shares no
// nodes with the receiver.
type Cloner[T any] interface {
	Clone() T
}
