package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emontbrun/proplogic/semantics"
	"github.com/emontbrun/proplogic/syntax"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <formula>",
	Short: "Classify a formula as a tautology, a contradiction or contingent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := syntax.Parse(args[0])
		if err != nil {
			return fmt.Errorf("could not parse formula: %v", err)
		}
		var kind string
		switch {
		case semantics.IsTautology(f):
			kind = "tautology"
		case semantics.IsContradiction(f):
			kind = "contradiction"
		default:
			kind = "contingent"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, satisfiable: %t\n", f, kind, semantics.IsSatisfiable(f))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
