package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/bstmap"
)

func runDemo(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	dot := fs.Bool("dot", false, "print the tree in Graphviz DOT format")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	m := bstmap.New[string, int]()
	m.Put("Word1", 1)
	m.Put("Word2", 2)
	value, _, err := m.Get("Word1")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, value)
	key := color.New(color.FgBlue)
	for k, v := range m.All() {
		key.Fprint(out, k)
		fmt.Fprintf(out, ", %d\n", v)
	}
	if *dot {
		return m.ToDot(out)
	}
	return nil
}
