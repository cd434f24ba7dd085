package Trees

import (
	"math"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/petar/GoLLRB/llrb"
)

func TestRBTree_Oracle(t *testing.T) {
	tree, oracle := NewRBTree[int, int](), llrb.New()
	for i := 0; i < tAddN; i++ {
		b := rg.Intn(tAddValRange)
		if rg.Intn(3) == 0 {
			if tree.Remove(b) != (oracle.Delete(llrb.Int(b)) != nil) {
				t.Fatalf("remove of %d disagrees", b)
			}
		} else if tree.Insert(b, b) != (oracle.ReplaceOrInsert(llrb.Int(b)) == nil) {
			t.Fatalf("insert of %d disagrees", b)
		}
	}
	if tree.Corrupt() || tree.Size() != uint(oracle.Len()) {
		t.Fatalf("tree size is %d, want %d", tree.Size(), oracle.Len())
	}
	it := tree.Begin()
	oracle.AscendGreaterOrEqual(llrb.Int(math.MinInt), func(i llrb.Item) bool {
		if !it.Valid() || it.Key() != int(i.(llrb.Int)) {
			t.Fatalf("iterator is off at %d", i)
		}
		it.Next()
		return true
	})
	if it.Valid() {
		t.Fatalf("iterator has %d past the end", it.Key())
	}
}

func TestRBTree_Height(t *testing.T) {
	tree := NewRBTree[int, int]()
	for i := 0; i < tAddN; i++ {
		tree.Insert(i, i)
	}
	bound := 2 * math.Log2(float64(tAddN)+1)
	if h := tree.Height(); float64(h) > bound || tree.Corrupt() {
		t.Fatalf("height is %d, bound %.1f", h, bound)
	}
}

func TestRBTree_Iterator(t *testing.T) {
	tree, oracle := NewRBTree[int, int](), redblacktree.NewWithIntComparator()
	for i := 0; i < tAddN/4; i++ {
		b := rg.Intn(tAddValRange)
		tree.Insert(b, -b)
		oracle.Put(b, -b)
	}
	keys := oracle.Keys()
	it := tree.Last()
	for i := len(keys) - 1; i >= 0; i-- {
		if !it.Valid() || it.Key() != keys[i].(int) || *it.Value() != -keys[i].(int) {
			t.Fatalf("reverse iteration is off at %d", keys[i])
		}
		it.Prev()
	}
	if it.Valid() || it.Prev() || it.Next() {
		t.Fatal("iterator moved back from before the start")
	}

	k := keys[len(keys)/2].(int)
	it = tree.Seek(k)
	*it.Value() = 1
	if v, _ := tree.Find(k); v != 1 {
		t.Fatalf("value of %d is %d after writing through the iterator", k, v)
	}
	if it = tree.Seek(tAddValRange); it.Valid() {
		t.Fatal("Seek found an absent key")
	}
	if k, v, _ := tree.Min(); k != oracle.Left().Key.(int) || v != oracle.Left().Value.(int) {
		t.Fatalf("Min is %d", k)
	}
	if k, _, _ := tree.Max(); k != oracle.Right().Key.(int) {
		t.Fatalf("Max is %d", k)
	}
}

func TestRBTree_Erase(t *testing.T) {
	tree := NewRBTree[int, int]()
	m := fill(t, tree)
	n := 0
	for it := tree.Begin(); it.Valid(); n++ {
		k := it.Key()
		if n%2 == 0 {
			next := it
			next.Next()
			it.Erase()
			delete(m, k)
			if it.Valid() != next.Valid() || (it.Valid() && it.Key() != next.Key()) {
				t.Fatalf("Erase of %d didn't move to the successor", k)
			}
		} else {
			it.Next()
		}
		if n%tCheckEvery == 0 && tree.Corrupt() {
			t.Fatalf("tree is corrupt after erasing %d", k)
		}
	}
	checkContent(t, tree, m)
	var end RBIterator[int, int]
	if end.Erase() {
		t.Fatal("Erase of an invalid iterator")
	}
}

func TestRBTree_Swap(t *testing.T) {
	a, b := NewRBTree[int, int](), NewRBTree[int, int]()
	m := fill(t, a)
	b.Insert(-1, 1)
	a.Swap(b)
	checkContent(t, b, m)
	if a.Size() != 1 || !a.Has(-1) || a.Corrupt() {
		t.Fatalf("tree size is %d, want 1", a.Size())
	}
}

func TestRBTree_Empty(t *testing.T) {
	tree := NewRBTree[int, int]()
	if it := tree.Begin(); it.Valid() {
		t.Fatal("Begin of an empty tree is valid")
	}
	if _, _, ok := tree.Max(); ok || tree.Corrupt() || tree.Height() != 0 {
		t.Fatal("empty tree reports content")
	}
}
