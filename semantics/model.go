package semantics

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/emontbrun/proplogic/syntax"
)

// A Model maps variable names to truth values.
type Model map[string]bool

// IsModel reports whether m is a model over some set of variable names,
// that is, whether every key is a syntactically valid variable name.
func IsModel(m Model) bool {
	for name := range m {
		if !syntax.IsVariable(name) {
			return false
		}
	}
	return true
}

// Variables returns the sorted variable names over which m is defined.
// It panics if m is not a model.
func Variables(m Model) []string {
	if !IsModel(m) {
		panic(fmt.Errorf("semantics: %v is not a model", m))
	}
	return slices.Sorted(maps.Keys(m))
}

// AllModels returns all possible models over the given variable names.
// The names must be valid variable names; AllModels panics otherwise.
//
// The sequence holds exactly 1<<len(names) models, in lexicographic
// order of their truth values with the first name most significant and
// false before true: model i assigns to the j-th name bit n-1-j of i.
// Zero names yield a single empty model. The sequence is lazy and
// replayable: ranging over it again produces the same models anew.
func AllModels(names []string) iter.Seq[Model] {
	for _, name := range names {
		if !syntax.IsVariable(name) {
			panic(fmt.Errorf("semantics: invalid variable name %q", name))
		}
	}
	n := len(names)
	return func(yield func(Model) bool) {
		for i := 0; i < 1<<n; i++ {
			m := make(Model, n)
			for j, name := range names {
				m[name] = i>>(n-1-j)&1 == 1
			}
			if !yield(m) {
				return
			}
		}
	}
}
