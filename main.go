// Command proplogic analyzes propositional-logic formulas from the
// command line: truth tables, tautology/contradiction classification,
// DNF/CNF synthesis from truth-table columns, and soundness checks of
// inference rules.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the version of the proplogic tool.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "proplogic",
	Short:         "proplogic analyzes propositional-logic formulas",
	Long:          `proplogic evaluates, classifies and synthesizes propositional-logic formulas via truth tables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of proplogic",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("proplogic version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
