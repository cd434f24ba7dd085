package Trees

import (
	"errors"
	"slices"
	"testing"

	"github.com/codifire/glare"
	"github.com/google/btree"
)

func btreeOf(order int, keys ...int) *BTree[int, int] {
	tree := NewBTree[int, int](order)
	for _, k := range keys {
		tree.Insert(k, k)
	}
	return tree
}

func sameShape(t *testing.T, tree *BTree[int, int], root []int, kids [][]int) {
	t.Helper()
	if tree.Corrupt() {
		t.Fatalf("tree is corrupt:\n%v", tree)
	}
	if got := tree.RootKeys(); !slices.Equal(got, root) {
		t.Fatalf("root keys are %v, want %v", got, root)
	}
	got := tree.ChildKeys()
	if len(got) != len(kids) {
		t.Fatalf("root has %d children, want %d:\n%v", len(got), len(kids), tree)
	}
	for i := range kids {
		if !slices.Equal(got[i], kids[i]) {
			t.Fatalf("child %d keys are %v, want %v", i, got[i], kids[i])
		}
	}
}

// Order 6: a node holds 2 to 5 keys.
func scenarioTree() *BTree[int, int] {
	return btreeOf(6, 0, 10, 20, 30, 40, 35)
}

func TestBTree_Split(t *testing.T) {
	tree := btreeOf(6, 0, 10, 20, 30, 40)
	if tree.Height() != 1 || len(tree.RootKeys()) != 5 {
		t.Fatalf("root keys are %v, want 5 keys in a single level", tree.RootKeys())
	}
	tree.Insert(35, 35)
	sameShape(t, tree, []int{30}, [][]int{{0, 10, 20}, {35, 40}})
	if tree.Height() != 2 || tree.Size() != 6 {
		t.Fatalf("height is %d and size %d, want 2 and 6", tree.Height(), tree.Size())
	}
	if s := tree.String(); s != "[30]\n[0 10 20] [35 40]" {
		t.Fatalf("String is %q", s)
	}
}

func TestBTree_BorrowAndShrink(t *testing.T) {
	tree := scenarioTree()
	tree.Remove(35)
	sameShape(t, tree, []int{20}, [][]int{{0, 10}, {30, 40}})
	tree.Remove(0)
	sameShape(t, tree, []int{10, 20, 30, 40}, nil)
	if tree.Height() != 1 || len(tree.free) != 2 {
		t.Fatalf("height is %d with %d free nodes, want 1 and 2", tree.Height(), len(tree.free))
	}
	tree.Insert(50, 50)
	tree.Insert(60, 60)
	if tree.Height() != 2 || len(tree.free) != 0 {
		t.Fatalf("split left %d free nodes, want 0", len(tree.free))
	}
}

func TestBTree_BorrowFromRight(t *testing.T) {
	tree := scenarioTree()
	tree.Insert(45, 45)
	tree.Remove(0)
	tree.Remove(10)
	sameShape(t, tree, []int{35}, [][]int{{20, 30}, {40, 45}})
}

func TestBTree_RemoveInternal(t *testing.T) {
	tree := scenarioTree()
	tree.Remove(30)
	sameShape(t, tree, []int{20}, [][]int{{0, 10}, {35, 40}})
}

func TestBTree_InteriorRestore(t *testing.T) {
	tree := btreeOf(6, 0, 10, 20, 30, 40, 35, 50, 60, 70, 80)
	sameShape(t, tree, []int{30, 60}, [][]int{{0, 10, 20}, {35, 40, 50}, {70, 80}})

	// the right sibling has no spare key, the left one does
	tree.Remove(35)
	tree.Remove(40)
	sameShape(t, tree, []int{20, 60}, [][]int{{0, 10}, {30, 50}, {70, 80}})

	// only the right sibling has a spare key
	tree.Insert(90, 90)
	tree.Remove(50)
	sameShape(t, tree, []int{20, 70}, [][]int{{0, 10}, {30, 60}, {80, 90}})

	// neither has a spare key: either combination is sound
	tree.Remove(30)
	if tree.Corrupt() || len(tree.RootKeys()) != 1 || tree.Size() != 7 {
		t.Fatalf("combine broke the tree:\n%v", tree)
	}
	if len(tree.free) != 1 {
		t.Fatalf("%d free nodes, want 1", len(tree.free))
	}
}

func TestBTree_Traverse(t *testing.T) {
	tree := scenarioTree()
	want := map[glare.Order][]int{
		glare.PreOrder:  {30, 0, 10, 20, 35, 40},
		glare.InOrder:   {0, 10, 20, 30, 35, 40},
		glare.PostOrder: {0, 10, 20, 35, 40, 30},
	}
	for o, keys := range want {
		var got []int
		tree.SetOrder(o)
		tree.Traverse(func(k, _ int) { got = append(got, k) })
		if !slices.Equal(got, keys) {
			t.Fatalf("%v traversal is %v, want %v", o, got, keys)
		}
	}
}

func TestBTree_Empty(t *testing.T) {
	tree := NewBTree[int, int](3)
	if tree.String() != "[]" || tree.Height() != 0 || tree.RootKeys() != nil || tree.ChildKeys() != nil {
		t.Fatal("empty tree reports content")
	}
	if tree.Remove(1) || tree.Has(1) {
		t.Fatal("empty tree has 1")
	}
	if tree.Order() != 3 || tree.MaxKeys() != 2 || tree.MinKeys() != 1 {
		t.Fatalf("order 3 gives %d to %d keys", tree.MinKeys(), tree.MaxKeys())
	}
}

func TestBTree_SmallOrder(t *testing.T) {
	for _, order := range []int{-1, 0, 1, 2} {
		func() {
			defer func() {
				var ie glare.InvariantError
				if e, ok := recover().(error); !ok || !errors.As(e, &ie) {
					t.Fatalf("order %d didn't panic with InvariantError", order)
				}
			}()
			NewBTree[int, int](order)
		}()
	}
}

func TestBTree_FreeList(t *testing.T) {
	tree := NewBTree[int, int](3)
	fill(t, tree)
	tree.SetOrder(glare.InOrder)
	var keys []int
	tree.Traverse(func(k, _ int) { keys = append(keys, k) })
	for _, k := range keys {
		tree.Remove(k)
		if len(tree.free) > DefaultFreeListSize {
			t.Fatalf("free list holds %d nodes", len(tree.free))
		}
	}
	if !tree.Empty() || len(tree.free) != DefaultFreeListSize {
		t.Fatalf("free list holds %d nodes, want %d", len(tree.free), DefaultFreeListSize)
	}
	for _, n := range tree.free {
		if n.n != 0 || n.kids[0] != nil {
			t.Fatal("released node keeps entries")
		}
	}
}

func TestBTree_Oracle(t *testing.T) {
	for _, order := range []int{3, 4, 5, 16} {
		tree, oracle := NewBTree[int, int](order), btree.NewOrderedG[int](2)
		for i := 0; i < tAddN; i++ {
			b := rg.Intn(tAddValRange)
			if rg.Intn(3) == 0 {
				_, had := oracle.Delete(b)
				if tree.Remove(b) != had {
					t.Fatalf("order %d: remove of %d disagrees", order, b)
				}
			} else {
				_, had := oracle.ReplaceOrInsert(b)
				if tree.Insert(b, b) == had {
					t.Fatalf("order %d: insert of %d disagrees", order, b)
				}
			}
		}
		if tree.Corrupt() || tree.Size() != uint(oracle.Len()) {
			t.Fatalf("order %d: tree size is %d, want %d", order, tree.Size(), oracle.Len())
		}
		keys, i := inOrderKeys(tree), 0
		oracle.Ascend(func(k int) bool {
			if keys[i] != k {
				t.Fatalf("order %d: key %d is %d, want %d", order, i, keys[i], k)
			}
			i++
			return true
		})
	}
}
