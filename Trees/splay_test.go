package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
)

func TestSplayTree_Root(t *testing.T) {
	tree := NewSplayTree[int, int]()
	if _, ok := tree.Root(); ok {
		t.Fatal("Root of an empty tree")
	}
	m := fill(t, tree)
	for k := range m {
		if r, _ := tree.Root(); r == k {
			continue
		}
		tree.Find(k)
		if r, _ := tree.Root(); r != k {
			t.Fatalf("root is %d after finding %d", r, k)
		}
		break
	}
	for i := 0; i < 100; i++ {
		k := rg.Intn(tAddValRange)
		if tree.Insert(k, k) {
			if r, _ := tree.Root(); r != k {
				t.Fatalf("root is %d after inserting %d", r, k)
			}
		}
		if p := tree.Get(k); p != nil {
			if r, _ := tree.Root(); r != k {
				t.Fatalf("root is %d after getting %d", r, k)
			}
		}
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}

func TestSplayTree_Miss(t *testing.T) {
	tree := NewSplayTree[int, int]()
	for _, k := range []int{10, 20, 30, 40, 50} {
		tree.Insert(k, k)
	}
	tree.Find(35)
	if r, _ := tree.Root(); r != 30 && r != 40 {
		t.Fatalf("root is %d after missing 35, want a neighbour", r)
	}
	tree.Find(100)
	if r, _ := tree.Root(); r != 50 {
		t.Fatalf("root is %d after missing 100, want 50", r)
	}
	tree.Remove(50)
	if r, _ := tree.Root(); r != 40 || tree.Corrupt() {
		t.Fatalf("root is %d after removing 50, want 40", r)
	}
}

func TestSplayTree_Sequential(t *testing.T) {
	tree := NewSplayTree[int, int]()
	for i := 0; i < tAddN; i++ {
		tree.Insert(i, i)
	}
	// ascending inserts leave a left path
	if h := tree.Height(); h != tAddN {
		t.Fatalf("height is %d, want %d", h, tAddN)
	}
	tree.Find(0)
	if h := tree.Height(); h > 3*tAddN/4 {
		t.Fatalf("height is %d after splaying the deepest key", h)
	}
	for i := 0; i < tAddN; i++ {
		if _, ok := tree.Find(i); !ok {
			t.Fatalf("missing %d", i)
		}
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}

func TestSplayTree_Oracle(t *testing.T) {
	tree, oracle := NewSplayTree[int, int](), redblacktree.NewWithIntComparator()
	for i := 0; i < tAddN; i++ {
		b := rg.Intn(tAddValRange)
		switch rg.Intn(3) {
		case 0:
			tree.Remove(b)
			oracle.Remove(b)
		case 1:
			_, want := oracle.Get(b)
			if _, ok := tree.Find(b); ok != want {
				t.Fatalf("Find(%d) is %t, want %t", b, ok, want)
			}
		default:
			tree.Insert(b, b)
			oracle.Put(b, b)
		}
	}
	keys := inOrderKeys(tree)
	if tree.Corrupt() || len(keys) != oracle.Size() {
		t.Fatalf("tree size is %d, want %d", tree.Size(), oracle.Size())
	}
	for i, k := range oracle.Keys() {
		if keys[i] != k.(int) {
			t.Fatalf("key %d is %d, want %d", i, keys[i], k)
		}
	}
}
