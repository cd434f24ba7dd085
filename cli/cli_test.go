package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/codifire/glare"
)

func session(t *testing.T, kind string, input string) (*Cli, string) {
	t.Helper()
	var out bytes.Buffer
	c, err := New(strings.NewReader(input), &out, Config{Kind: kind, Order: 4, Walk: glare.InOrder, NoColor: true})
	if err != nil {
		t.Fatalf("New(%s): %v", kind, err)
	}
	c.Start()
	return c, out.String()
}

func TestCli_Commands(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind, func(t *testing.T) {
			c, out := session(t, kind, `
SET b 2
SET a 1
SET c 3
SET a 9
GET a
GET z
DEL b
DEL b
SIZE
WALK
CHECK
exit
SET d 4
`)
			for _, want := range []string{
				`Key "a" already present.`, "> 1\n", "Key not found.", "> 2\n", "a=1\nc=3\n", "Tree is sound.",
			} {
				if !strings.Contains(out, want) {
					t.Fatalf("output misses %q:\n%s", want, out)
				}
			}
			if c.Tree().Size() != 2 {
				t.Fatalf("tree size is %d, want 2", c.Tree().Size())
			}
			if _, ok := c.Tree().Find("d"); ok {
				t.Fatal("command after EXIT ran")
			}
		})
	}
}

func TestCli_Walk(t *testing.T) {
	_, out := session(t, "avl", "SET b 2\nSET a 1\nSET c 3\nWALK pre\nWALK post\nWALK sideways\n")
	if !strings.Contains(out, "b=2\na=1\nc=3\n") || !strings.Contains(out, "a=1\nc=3\nb=2\n") {
		t.Fatalf("walks are off:\n%s", out)
	}
	if !strings.Contains(out, `unknown traversal order "sideways"`) {
		t.Fatalf("bad order not reported:\n%s", out)
	}
}

func TestCli_Show(t *testing.T) {
	_, out := session(t, "btree", "SET 1 a\nSET 2 b\nSET 3 c\nSET 4 d\nSHOW\n")
	if !strings.Contains(out, "[3]\n[1 2] [4]") {
		t.Fatalf("drawing is off:\n%s", out)
	}
	_, out = session(t, "rb", "SHOW\n")
	if !strings.Contains(out, "A rb tree can't be drawn.") {
		t.Fatalf("drawing a red-black tree:\n%s", out)
	}
}

func TestCli_Seed(t *testing.T) {
	c, out := session(t, "rb", "SEED 40\nSEED x\nCHECK\nCLEAR\nSIZE\n")
	if !strings.Contains(out, "Inserted 40 pairs.") || !strings.Contains(out, `Invalid count "x".`) {
		t.Fatalf("seeding is off:\n%s", out)
	}
	if !c.Tree().Empty() || !strings.Contains(out, "Cleared.\n") {
		t.Fatal("CLEAR left pairs")
	}

	var buf bytes.Buffer
	c, err := New(strings.NewReader(""), &buf, Config{Kind: "splay", Seed: 25, NoColor: true})
	if err != nil {
		t.Fatal(err)
	}
	if c.Tree().Size() != 25 {
		t.Fatalf("seeded session has %d pairs, want 25", c.Tree().Size())
	}
}

func TestCli_Usage(t *testing.T) {
	_, out := session(t, "bst", "SET a\nGET\nDEL\nWALK a b\nSEED\nfrob\n\n")
	for _, want := range []string{"Usage: SET", "Usage: GET", "Usage: DEL", "Usage: WALK", "Usage: SEED", `Unknown command "frob"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("output misses %q:\n%s", want, out)
		}
	}
}

func TestNewTree(t *testing.T) {
	if _, err := NewTree("heap", 0); err == nil {
		t.Fatal("unknown kind accepted")
	}
	if _, err := NewTree("btree", 2); err == nil || !strings.Contains(err.Error(), "invariant violated") {
		t.Fatalf("order 2 gives %v", err)
	}
	if tree, err := NewTree("AVL", 0); err != nil || !tree.Empty() {
		t.Fatal("kinds are case sensitive")
	}
}
