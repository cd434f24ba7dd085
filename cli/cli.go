package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/codifire/glare"
	"github.com/codifire/glare/Trees"
	"github.com/codifire/glare/Trees/arrTree"
	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
)

// Kinds of tree the CLI can drive.
var Kinds = []string{"avl", "btree", "rb", "splay", "bst", "arr"}

// Config of a session.
type Config struct {
	Kind    string
	Order   int // of the B-tree
	Walk    glare.Order
	Seed    int // random pairs inserted at start
	NoColor bool
}

// NewTree returns an empty tree of the given kind.
func NewTree(kind string, order int) (t Trees.Tree[string, string], err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(glare.InvariantError); ok {
				t, err = nil, fmt.Errorf("new %s tree: %w", kind, ie)
				return
			}
			panic(r)
		}
	}()
	switch strings.ToLower(kind) {
	case "avl":
		return Trees.NewAVLTree[string, string](), nil
	case "btree":
		return Trees.NewBTree[string, string](order), nil
	case "rb":
		return Trees.NewRBTree[string, string](), nil
	case "splay":
		return Trees.NewSplayTree[string, string](), nil
	case "bst":
		return Trees.NewBSTree[string, string](), nil
	case "arr":
		return arrTree.New[string, string, uint32](0), nil
	}
	return nil, fmt.Errorf("unknown tree kind %q, want one of %s", kind, strings.Join(Kinds, ", "))
}

// Cli reads commands line by line and applies them to a single tree.
type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	tree    Trees.Tree[string, string]
	kind    string

	prompt, ok, fail, info *color.Color
}

func New(in io.Reader, out io.Writer, cfg Config) (*Cli, error) {
	tree, err := NewTree(cfg.Kind, cfg.Order)
	if err != nil {
		return nil, err
	}
	tree.SetOrder(cfg.Walk)
	c := &Cli{
		scanner: bufio.NewScanner(in),
		out:     out,
		tree:    tree,
		kind:    strings.ToLower(cfg.Kind),
		prompt:  color.New(color.FgCyan, color.Bold),
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		info:    color.New(color.FgYellow),
	}
	if cfg.NoColor {
		for _, col := range []*color.Color{c.prompt, c.ok, c.fail, c.info} {
			col.DisableColor()
		}
	}
	if cfg.Seed > 0 {
		c.seed(cfg.Seed)
	}
	return c, nil
}

// Tree the session works on.
func (c *Cli) Tree() Trees.Tree[string, string] {
	return c.tree
}

// Start runs the loop until EXIT or the end of the input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.Exec(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
	fmt.Fprintln(c.out)
}

func (c *Cli) printHelp() {
	c.info.Fprintf(c.out, `
%s tree CLI

Available Commands:
  SET <key> <val>      Insert a key-value pair, keys are never overwritten
  DEL <key>            Remove a key
  GET <key>            Retrieve the value of a key
  SIZE                 Number of pairs
  WALK [pre|in|post]   List the pairs, in the given or the current order
  SHOW                 Draw the tree, B-trees only
  CHECK                Verify the tree's structure
  SEED <n>             Insert n random pairs
  CLEAR                Remove everything
  HELP                 Show this message
  EXIT                 Terminate this session
`, c.kind)
}

func (c *Cli) printPrompt() {
	c.prompt.Fprint(c.out, "> ")
}

// Exec runs one command line. Returns false on EXIT.
func (c *Cli) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	args := fields[1:]
	switch command := strings.ToLower(fields[0]); command {
	default:
		c.fail.Fprintf(c.out, "Unknown command %q\n", command)
	case "set":
		c.processSet(args)
	case "del":
		c.processDelete(args)
	case "get":
		c.processGet(args)
	case "size":
		c.ok.Fprintln(c.out, c.tree.Size())
	case "walk":
		c.processWalk(args)
	case "show":
		c.processShow()
	case "check":
		if c.tree.Corrupt() {
			c.fail.Fprintln(c.out, "Tree is corrupt.")
		} else {
			c.ok.Fprintln(c.out, "Tree is sound.")
		}
	case "seed":
		c.processSeed(args)
	case "clear":
		c.tree.Clear()
		c.ok.Fprintln(c.out, "Cleared.")
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

func (c *Cli) processSet(args []string) {
	if len(args) != 2 {
		c.fail.Fprintln(c.out, "Usage: SET <key> <value>")
		return
	}
	if !c.insert(args[0], args[1]) {
		return
	}
	c.ok.Fprintln(c.out, "OK")
}

// tryInsert turns the panic of a full arr tree into an error.
func (c *Cli) tryInsert(k, v string) (inserted bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(glare.InvariantError)
			if !ok {
				panic(r)
			}
			err = ie
		}
	}()
	return c.tree.Insert(k, v), nil
}

func (c *Cli) insert(k, v string) bool {
	inserted, err := c.tryInsert(k, v)
	if err != nil {
		c.fail.Fprintln(c.out, err)
	} else if !inserted {
		c.fail.Fprintf(c.out, "Key %q already present.\n", k)
	}
	return inserted
}

func (c *Cli) processDelete(args []string) {
	if len(args) != 1 {
		c.fail.Fprintln(c.out, "Usage: DEL <key>")
		return
	}
	if !c.tree.Remove(args[0]) {
		c.fail.Fprintln(c.out, "Key not found.")
		return
	}
	c.ok.Fprintln(c.out, "OK")
}

func (c *Cli) processGet(args []string) {
	if len(args) != 1 {
		c.fail.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	v, found := c.tree.Find(args[0])
	if !found {
		c.fail.Fprintln(c.out, "Key not found.")
		return
	}
	c.ok.Fprintln(c.out, v)
}

func (c *Cli) processWalk(args []string) {
	if len(args) > 1 {
		c.fail.Fprintln(c.out, "Usage: WALK [pre|in|post]")
		return
	}
	if len(args) == 1 {
		o, err := glare.ParseOrder(args[0])
		if err != nil {
			c.fail.Fprintln(c.out, err)
			return
		}
		c.tree.SetOrder(o)
	}
	c.tree.Traverse(func(k, v string) {
		c.ok.Fprintf(c.out, "%s=%s\n", k, v)
	})
}

func (c *Cli) processShow() {
	s, ok := c.tree.(fmt.Stringer)
	if !ok {
		c.fail.Fprintf(c.out, "A %s tree can't be drawn.\n", c.kind)
		return
	}
	c.info.Fprintln(c.out, s.String())
}

func (c *Cli) processSeed(args []string) {
	if len(args) != 1 {
		c.fail.Fprintln(c.out, "Usage: SEED <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		c.fail.Fprintf(c.out, "Invalid count %q.\n", args[0])
		return
	}
	c.ok.Fprintf(c.out, "Inserted %d pairs.\n", c.seed(n))
}

// seed inserts up to n pairs of random words. Fewer are inserted when the
// generated keys keep colliding.
func (c *Cli) seed(n int) (added int) {
	for tries := 0; added < n && tries < 10*n+100; tries++ {
		inserted, err := c.tryInsert(faker.Word()+faker.Word(), faker.Word())
		if err != nil {
			break
		}
		if inserted {
			added++
		}
	}
	return
}
