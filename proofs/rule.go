// Package proofs defines inference rules for propositional logic: an
// ordered sequence of assumption formulas together with one conclusion
// formula. Rules are value objects, built once and never mutated.
package proofs

import (
	"maps"
	"slices"
	"strings"

	"github.com/emontbrun/proplogic/syntax"
)

// An InferenceRule is an ordered list of assumptions and a conclusion.
type InferenceRule struct {
	Assumptions []*syntax.Formula
	Conclusion  *syntax.Formula
}

// String renders the rule as "[a1, a2] ==> c".
func (r InferenceRule) String() string {
	strs := make([]string, len(r.Assumptions))
	for i, a := range r.Assumptions {
		strs[i] = a.String()
	}
	return "[" + strings.Join(strs, ", ") + "] ==> " + r.Conclusion.String()
}

// Variables returns the sorted set of distinct variable names appearing
// in the rule's assumptions and conclusion.
func (r InferenceRule) Variables() []string {
	set := make(map[string]struct{})
	for _, a := range r.Assumptions {
		for _, name := range a.Variables() {
			set[name] = struct{}{}
		}
	}
	for _, name := range r.Conclusion.Variables() {
		set[name] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Equal reports whether r and other have the same assumptions, in the
// same order, and the same conclusion.
func (r InferenceRule) Equal(other InferenceRule) bool {
	if len(r.Assumptions) != len(other.Assumptions) {
		return false
	}
	for i, a := range r.Assumptions {
		if a.String() != other.Assumptions[i].String() {
			return false
		}
	}
	return r.Conclusion.String() == other.Conclusion.String()
}
