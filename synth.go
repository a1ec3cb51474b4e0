package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emontbrun/proplogic/semantics"
	"github.com/emontbrun/proplogic/syntax"
)

var (
	synthVars   []string
	synthValues string
	synthCNF    bool
)

var synthCmd = &cobra.Command{
	Use:   "synth --vars p,q --values TTTF",
	Short: "Synthesize a DNF or CNF formula from a truth-table column",
	Long: `Synth builds a formula over the given variables whose truth table is the
given column. Values are listed in model-enumeration order: the first
variable is the most significant, false before true.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range synthVars {
			if !syntax.IsVariable(name) {
				return fmt.Errorf("invalid variable name %q", name)
			}
		}
		values, err := parseValues(synthValues)
		if err != nil {
			return err
		}
		if len(values) != 1<<len(synthVars) {
			return fmt.Errorf("got %d truth values over %d variables, want %d",
				len(values), len(synthVars), 1<<len(synthVars))
		}
		var f *syntax.Formula
		if synthCNF {
			f = semantics.SynthesizeCNF(synthVars, values)
		} else {
			f = semantics.Synthesize(synthVars, values)
		}
		fmt.Fprintln(cmd.OutOrStdout(), f)
		return nil
	},
}

func init() {
	synthCmd.Flags().StringSliceVar(&synthVars, "vars", nil, "comma-separated variable names")
	synthCmd.Flags().StringVar(&synthValues, "values", "", "truth-table column, e.g. TTFT")
	synthCmd.Flags().BoolVar(&synthCNF, "cnf", false, "synthesize a CNF formula instead of DNF")
	_ = synthCmd.MarkFlagRequired("vars")
	_ = synthCmd.MarkFlagRequired("values")
	rootCmd.AddCommand(synthCmd)
}

func parseValues(s string) ([]bool, error) {
	values := make([]bool, 0, len(s))
	for _, r := range s {
		switch r {
		case 'T', 't', '1':
			values = append(values, true)
		case 'F', 'f', '0':
			values = append(values, false)
		default:
			return nil, fmt.Errorf("invalid truth value %q", r)
		}
	}
	return values, nil
}
