package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/emontbrun/proplogic/semantics"
	"github.com/emontbrun/proplogic/syntax"
)

var tablePretty bool

var tableCmd = &cobra.Command{
	Use:   "table <formula>",
	Short: "Print the truth table of a formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := syntax.Parse(args[0])
		if err != nil {
			return fmt.Errorf("could not parse formula: %v", err)
		}
		if tablePretty {
			renderPrettyTable(cmd.OutOrStdout(), f)
			return nil
		}
		return semantics.WriteTruthTable(cmd.OutOrStdout(), f)
	},
}

func init() {
	tableCmd.Flags().BoolVar(&tablePretty, "pretty", false, "render the table with box-drawing characters")
	rootCmd.AddCommand(tableCmd)
}

func renderPrettyTable(w io.Writer, f *syntax.Formula) {
	names := f.Variables()
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, 0, len(names)+1)
	for _, name := range names {
		header = append(header, name)
	}
	header = append(header, f.String())
	t.AppendHeader(header)

	for m := range semantics.AllModels(names) {
		row := make(table.Row, 0, len(names)+1)
		for _, name := range names {
			row = append(row, markCell(m[name]))
		}
		row = append(row, markCell(semantics.Evaluate(f, m)))
		t.AppendRow(row)
	}
	t.Render()
}

func markCell(value bool) string {
	if value {
		return "T"
	}
	return "F"
}
