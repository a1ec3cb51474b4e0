package semantics

import (
	"iter"

	"github.com/emontbrun/proplogic/proofs"
)

// EvaluateInference reports whether rule holds in model m: it is false
// only if every assumption is true in m while the conclusion is false.
// The model must be defined over a superset of the variables of the
// rule's assumptions and conclusion.
func EvaluateInference(rule proofs.InferenceRule, m Model) bool {
	for _, a := range rule.Assumptions {
		if !Evaluate(a, m) {
			return true
		}
	}
	return Evaluate(rule.Conclusion, m)
}

// IsSoundInference reports whether rule holds in every model over the
// variables of its assumptions and conclusion, that is, whether its
// conclusion is a semantically correct implication of its assumptions.
func IsSoundInference(rule proofs.InferenceRule) bool {
	for m := range AllModels(rule.Variables()) {
		if !EvaluateInference(rule, m) {
			return false
		}
	}
	return true
}

// Countermodels yields every model over the rule's variables in which
// the rule does not hold. The sequence is empty exactly when the rule
// is sound.
func Countermodels(rule proofs.InferenceRule) iter.Seq[Model] {
	return func(yield func(Model) bool) {
		for m := range AllModels(rule.Variables()) {
			if !EvaluateInference(rule, m) {
				if !yield(m) {
					return
				}
			}
		}
	}
}
