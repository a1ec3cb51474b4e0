package semantics

import "github.com/emontbrun/proplogic/syntax"

// IsTautology reports whether f is true in every model over its
// variables.
func IsTautology(f *syntax.Formula) bool {
	for m := range AllModels(f.Variables()) {
		if !Evaluate(f, m) {
			return false
		}
	}
	return true
}

// IsContradiction reports whether f is false in every model over its
// variables.
func IsContradiction(f *syntax.Formula) bool {
	for m := range AllModels(f.Variables()) {
		if Evaluate(f, m) {
			return false
		}
	}
	return true
}

// IsSatisfiable reports whether f is true in at least one model over
// its variables. It stops at the first satisfying model.
func IsSatisfiable(f *syntax.Formula) bool {
	for m := range AllModels(f.Variables()) {
		if Evaluate(f, m) {
			return true
		}
	}
	return false
}
