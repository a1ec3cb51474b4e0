package semantics

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/emontbrun/proplogic/syntax"
)

// WriteTruthTable writes the truth table of f to w. Variable columns
// come first, sorted alphabetically, followed by a column for f itself;
// truth values are written "T" and "F", and each column is as wide as
// its header. For instance, the table of ~(p&q76) is:
//
//	| p | q76 | ~(p&q76) |
//	|---|-----|----------|
//	| F | F   | T        |
//	| F | T   | T        |
//	| T | F   | T        |
//	| T | T   | F        |
func WriteTruthTable(w io.Writer, f *syntax.Formula) error {
	names := f.Variables()
	headers := append(slices.Clone(names), f.String())

	var b strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&b, "| %s ", h)
	}
	b.WriteString("|\n")
	for _, h := range headers {
		b.WriteString("|")
		b.WriteString(strings.Repeat("-", len(h)+2))
	}
	b.WriteString("|\n")
	for m := range AllModels(names) {
		for j, name := range names {
			fmt.Fprintf(&b, "| %-*s ", len(headers[j]), mark(m[name]))
		}
		fmt.Fprintf(&b, "| %-*s |\n", len(headers[len(names)]), mark(Evaluate(f, m)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// PrintTruthTable prints the truth table of f on standard output.
func PrintTruthTable(f *syntax.Formula) {
	_ = WriteTruthTable(os.Stdout, f)
}

func mark(value bool) string {
	if value {
		return "T"
	}
	return "F"
}
