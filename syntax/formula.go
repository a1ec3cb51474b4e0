package syntax

import (
	"fmt"
	"maps"
	"slices"
)

// A Formula is an immutable propositional-logic formula tree.
// Root holds the node's label; First and Second hold the subformulas,
// with First nil for variables and constants and Second nil for
// everything but binary connectives.
type Formula struct {
	Root   string
	First  *Formula
	Second *Formula
}

// IsVariable reports whether name is a valid variable name: a lowercase
// letter optionally followed by decimal digits.
func IsVariable(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// IsConstant reports whether label is one of the constants "T" and "F".
func IsConstant(label string) bool {
	return label == "T" || label == "F"
}

// IsUnary reports whether label is the negation operator.
func IsUnary(label string) bool {
	return label == "~"
}

// IsBinary reports whether label is one of the binary connectives.
func IsBinary(label string) bool {
	return label == "&" || label == "|" || label == "->" || label == "<->"
}

// Var builds a variable formula. It panics if name is not a valid
// variable name.
func Var(name string) *Formula {
	if !IsVariable(name) {
		panic(fmt.Errorf("syntax: invalid variable name %q", name))
	}
	return &Formula{Root: name}
}

// True builds the constant-true formula.
func True() *Formula { return &Formula{Root: "T"} }

// False builds the constant-false formula.
func False() *Formula { return &Formula{Root: "F"} }

// Not builds the negation of f.
func Not(f *Formula) *Formula {
	return &Formula{Root: "~", First: f}
}

// And builds the conjunction of f1 and f2.
func And(f1, f2 *Formula) *Formula {
	return &Formula{Root: "&", First: f1, Second: f2}
}

// Or builds the disjunction of f1 and f2.
func Or(f1, f2 *Formula) *Formula {
	return &Formula{Root: "|", First: f1, Second: f2}
}

// Implies builds the implication from f1 to f2.
func Implies(f1, f2 *Formula) *Formula {
	return &Formula{Root: "->", First: f1, Second: f2}
}

// Iff builds the equivalence of f1 and f2.
func Iff(f1, f2 *Formula) *Formula {
	return &Formula{Root: "<->", First: f1, Second: f2}
}

// String returns the canonical rendering of f: variables and constants
// verbatim, negations prefixed with "~", binary formulas fully
// parenthesized. Parse accepts everything String produces.
func (f *Formula) String() string {
	switch {
	case IsVariable(f.Root), IsConstant(f.Root):
		return f.Root
	case IsUnary(f.Root):
		return "~" + f.First.String()
	default:
		return "(" + f.First.String() + f.Root + f.Second.String() + ")"
	}
}

// Variables returns the sorted set of distinct variable names
// appearing in f.
func (f *Formula) Variables() []string {
	set := make(map[string]struct{})
	f.collectVariables(set)
	return slices.Sorted(maps.Keys(set))
}

func (f *Formula) collectVariables(set map[string]struct{}) {
	if IsVariable(f.Root) {
		set[f.Root] = struct{}{}
		return
	}
	if f.First != nil {
		f.First.collectVariables(set)
	}
	if f.Second != nil {
		f.Second.collectVariables(set)
	}
}
