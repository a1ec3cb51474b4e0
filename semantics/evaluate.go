package semantics

import (
	"fmt"
	"iter"

	"github.com/emontbrun/proplogic/syntax"
)

// Evaluate computes the truth value of f in model m. The model must be
// defined over a superset of f's variables; Evaluate panics otherwise.
func Evaluate(f *syntax.Formula, m Model) bool {
	if !IsModel(m) {
		panic(fmt.Errorf("semantics: %v is not a model", m))
	}
	for _, name := range f.Variables() {
		if _, ok := m[name]; !ok {
			panic(fmt.Errorf("semantics: model lacks binding for variable %s", name))
		}
	}
	return eval(f, m)
}

func eval(f *syntax.Formula, m Model) bool {
	root := f.Root
	switch {
	case syntax.IsVariable(root):
		return m[root]
	case syntax.IsConstant(root):
		return root == "T"
	case syntax.IsUnary(root):
		return !eval(f.First, m)
	}
	left := eval(f.First, m)
	right := eval(f.Second, m)
	switch root {
	case "&":
		return left && right
	case "|":
		return left || right
	case "->":
		return !left || right
	case "<->":
		return left == right
	default:
		panic(fmt.Errorf("semantics: invalid formula root %q", root))
	}
}

// TruthValues evaluates f in each of the given models, yielding the
// respective truth values in the order of the models.
func TruthValues(f *syntax.Formula, models iter.Seq[Model]) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for m := range models {
			if !yield(Evaluate(f, m)) {
				return
			}
		}
	}
}
