package Trees

import (
	"slices"
	"testing"

	"github.com/codifire/glare"
)

//	a
//	├── b
//	│   ├── e
//	│   └── f
//	├── c
//	└── d
//	    └── g
func sampleGTree(t *testing.T) *GTree[string] {
	t.Helper()
	tree := NewGTree[string]()
	tree.AddRoot("a")
	c := tree.Cursor()
	for _, v := range []string{"b", "c", "d"} {
		if !tree.AddChild(c, v) {
			t.Fatalf("AddChild(%s) failed", v)
		}
	}
	c.Down()
	tree.AddChild(c, "e")
	tree.AddChild(c, "f")
	c.Up()
	c.ChildForth()
	c.ChildForth()
	c.Down()
	tree.AddChild(c, "g")
	return tree
}

func gvalues(tree *GTree[string], o glare.Order) []string {
	var vs []string
	tree.SetOrder(o)
	tree.Traverse(func(v string) { vs = append(vs, v) })
	return vs
}

func TestGTree_Traverse(t *testing.T) {
	tree := sampleGTree(t)
	want := map[glare.Order][]string{
		glare.PreOrder:  {"a", "b", "e", "f", "c", "d", "g"},
		glare.InOrder:   {"e", "b", "f", "a", "c", "g", "d"},
		glare.PostOrder: {"e", "f", "b", "c", "g", "d", "a"},
	}
	for o, vs := range want {
		if got := gvalues(tree, o); !slices.Equal(got, vs) {
			t.Fatalf("%v traversal is %v, want %v", o, got, vs)
		}
	}
	var level []string
	tree.LevelOrder(func(v string) { level = append(level, v) })
	if want := []string{"a", "b", "c", "d", "e", "f", "g"}; !slices.Equal(level, want) {
		t.Fatalf("level order is %v, want %v", level, want)
	}
	if tree.Size() != 7 || tree.Count() != 7 {
		t.Fatalf("tree size is %d and count %d, want 7", tree.Size(), tree.Count())
	}
}

func TestGTree_Cursor(t *testing.T) {
	tree := sampleGTree(t)
	c := tree.Cursor()
	if !c.Valid() || *c.Value() != "a" || c.Children() != 3 {
		t.Fatalf("cursor at %s with %d children", *c.Value(), c.Children())
	}
	if c.Up() || !c.IsChildFirst() || c.ChildBack() {
		t.Fatal("cursor moved above the root or before the first child")
	}
	var kids []string
	for !c.IsChildEnd() {
		v, _ := c.Child()
		kids = append(kids, v)
		c.ChildForth()
	}
	if !slices.Equal(kids, []string{"b", "c", "d"}) {
		t.Fatalf("children are %v", kids)
	}
	if _, ok := c.Child(); ok || c.Down() || c.ChildForth() {
		t.Fatal("cursor past the last child still points at one")
	}
	if !c.ChildBack() || c.IsChildEnd() {
		t.Fatal("cursor didn't come back from past the end")
	}
	if v, _ := c.Child(); v != "d" {
		t.Fatalf("child is %s, want d", v)
	}
	c.Down()
	if *c.Value() != "d" || c.Children() != 1 {
		t.Fatalf("cursor at %s", *c.Value())
	}
	c.Down()
	if *c.Value() != "g" || c.Children() != 0 || !c.IsChildEnd() || !c.IsChildFirst() {
		t.Fatal("leaf cursor points at a child")
	}
	*c.Value() = "G"
	if !c.Up() || !c.Up() || *c.Value() != "a" {
		t.Fatalf("cursor at %s, want the root", *c.Value())
	}
	if got := gvalues(tree, glare.PostOrder); got[4] != "G" {
		t.Fatalf("post-order is %v", got)
	}
}

func TestGTree_AddRoot(t *testing.T) {
	tree := NewGTree[string]()
	if c := tree.Cursor(); c.Valid() || c.Up() || c.Down() || !c.IsChildEnd() {
		t.Fatal("cursor of an empty tree is valid")
	}
	if tree.AddChild(tree.Cursor(), "x") {
		t.Fatal("AddChild on an empty tree")
	}
	tree.AddRoot("c")
	tree.AddRoot("b")
	tree.AddRoot("a")
	if got := gvalues(tree, glare.PreOrder); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("pre-order is %v", got)
	}
	c := tree.Cursor()
	c.Down()
	c.Down()
	if *c.Value() != "c" || !c.Up() || *c.Value() != "b" {
		t.Fatal("parent links are off")
	}
	if tree.AddChild(NewGTree[string]().Cursor(), "y") {
		t.Fatal("AddChild with a cursor of another tree")
	}
}

func TestGTree_AddChildRewinds(t *testing.T) {
	tree := sampleGTree(t)
	c := tree.Cursor()
	c.ChildForth()
	c.ChildForth()
	tree.AddChild(c, "h")
	if v, _ := c.Child(); v != "b" || c.Children() != 4 {
		t.Fatalf("cursor points at %s after AddChild, want the first child", v)
	}
}

func TestGTree_Clone(t *testing.T) {
	tree := sampleGTree(t)
	cp := tree.Clone()
	c := cp.Cursor()
	*c.Value() = "z"
	c.Down()
	cp.AddChild(c, "y")
	if got := gvalues(tree, glare.PreOrder); !slices.Equal(got, []string{"a", "b", "e", "f", "c", "d", "g"}) {
		t.Fatalf("source tree changed to %v", got)
	}
	if got := gvalues(cp, glare.PreOrder); !slices.Equal(got, []string{"z", "b", "e", "f", "y", "c", "d", "g"}) {
		t.Fatalf("copy is %v", got)
	}
	c.Up()
	if *c.Value() != "z" || cp.Count() != cp.Size() || cp.Size() != 8 {
		t.Fatal("copy's parent links point into the source tree")
	}
	cp.Clear()
	if !cp.Empty() || cp.Count() != 0 || tree.Size() != 7 {
		t.Fatal("Clear of the copy")
	}
}
