// Command cpp2parse is a small demo driver for the parser core: it
// loads a YAML token fixture (see internal/fixture), runs it through
// parser.Parser, and renders the resulting tree with the bundled
// reference printing visitor. It is not the translator's real CLI —
// file loading, lexing, and section extraction for actual source
// files live upstream of this package entirely.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpp2alt/parsecore/internal/diag"
	"github.com/cpp2alt/parsecore/internal/fixture"
	"github.com/cpp2alt/parsecore/internal/parser"
	"github.com/cpp2alt/parsecore/internal/printer"
)

func main() {
	var noColor bool

	root := &cobra.Command{
		Use:   "cpp2parse <fixture.yaml>",
		Short: "Parse a YAML token fixture and print the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], noColor)
		},
	}

	root.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI styling in the printed tree")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, noColor bool) error {
	tokens, err := fixture.Load(path)
	if err != nil {
		return err
	}

	sink := diag.NewList()
	p := parser.New(sink)

	ok := p.Parse(tokens)

	pv := printer.New()
	pv.Color = !noColor
	p.Walk(pv)

	fmt.Print(pv.String())

	if !sink.Empty() {
		fmt.Fprint(os.Stderr, sink.String())
	}

	if !ok {
		return fmt.Errorf("parse failed")
	}

	return nil
}
