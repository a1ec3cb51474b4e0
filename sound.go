package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emontbrun/proplogic/proofs"
	"github.com/emontbrun/proplogic/semantics"
	"github.com/emontbrun/proplogic/syntax"
)

var (
	soundAssumptions []string
	soundConclusion  string
)

var soundCmd = &cobra.Command{
	Use:   "sound -a <assumption> ... -c <conclusion>",
	Short: "Check whether an inference rule is sound",
	Long: `Sound checks whether the conclusion follows semantically from the
assumptions: the rule is sound when no model makes every assumption true
while the conclusion is false. If the rule is not sound, the first
countermodel is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		assumptions := make([]*syntax.Formula, len(soundAssumptions))
		for i, s := range soundAssumptions {
			f, err := syntax.Parse(s)
			if err != nil {
				return fmt.Errorf("could not parse assumption %q: %v", s, err)
			}
			assumptions[i] = f
		}
		conclusion, err := syntax.Parse(soundConclusion)
		if err != nil {
			return fmt.Errorf("could not parse conclusion %q: %v", soundConclusion, err)
		}
		rule := proofs.InferenceRule{Assumptions: assumptions, Conclusion: conclusion}
		for m := range semantics.Countermodels(rule) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is not sound, countermodel: %s\n", rule, formatModel(m))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is sound\n", rule)
		return nil
	},
}

func init() {
	soundCmd.Flags().StringArrayVarP(&soundAssumptions, "assumption", "a", nil, "assumption formula (repeatable)")
	soundCmd.Flags().StringVarP(&soundConclusion, "conclusion", "c", "", "conclusion formula")
	_ = soundCmd.MarkFlagRequired("conclusion")
	rootCmd.AddCommand(soundCmd)
}

func formatModel(m semantics.Model) string {
	names := semantics.Variables(m)
	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = fmt.Sprintf("%s=%s", name, markCell(m[name]))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
