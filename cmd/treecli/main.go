package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/codifire/glare"
	"github.com/codifire/glare/cli"
	"github.com/spf13/cobra"
)

var (
	kind    string
	order   int
	walk    string
	seed    int
	noColor bool
)

// RootCmd starts an interactive session on stdin and stdout.
var RootCmd = &cobra.Command{
	Use:   "treecli",
	Short: "Interactive shell for the glare trees",
	Long:  "A Command Line Interface (CLI) that inserts, removes, finds and lists string pairs in one of the glare search trees.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		o, err := glare.ParseOrder(walk)
		if err != nil {
			return fmt.Errorf("--walk: %w", err)
		}
		c, err := cli.New(cmd.InOrStdin(), cmd.OutOrStdout(), cli.Config{
			Kind: kind, Order: order, Walk: o, Seed: seed, NoColor: noColor,
		})
		if err != nil {
			return err
		}
		c.Start()
		return nil
	},
}

func init() {
	RootCmd.Flags().StringVarP(&kind, "kind", "k", "btree", "tree to drive: "+strings.Join(cli.Kinds, ", "))
	RootCmd.Flags().IntVarP(&order, "order", "o", 4, "order of the B-tree, at least 3")
	RootCmd.Flags().StringVarP(&walk, "walk", "w", "in", "traversal order of WALK: pre, in or post")
	RootCmd.Flags().IntVar(&seed, "seed", 0, "random pairs to insert at start")
	RootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %v\n", err)
		os.Exit(1)
	}
}
