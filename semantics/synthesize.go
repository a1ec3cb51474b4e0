package semantics

import (
	"fmt"

	"github.com/emontbrun/proplogic/syntax"
)

// Synthesize returns a formula in DNF over the given variable names
// whose truth table is values, where values lists the wanted truth
// value in every model over names, in AllModels order. The synthesized
// formula is correct, not minimal.
//
// Synthesize panics unless len(names) > 0 and
// len(values) == 1<<len(names).
//
// If every value is false, the result is the single unsatisfiable
// clause (v&~v) over the first name, since an empty disjunction is not
// a formula.
func Synthesize(names []string, values []bool) *syntax.Formula {
	checkSynthesis(names, values)
	var clauses []*syntax.Formula
	i := 0
	for m := range AllModels(names) {
		if values[i] {
			clauses = append(clauses, conjunctiveClause(names, m))
		}
		i++
	}
	if clauses == nil {
		v := syntax.Var(names[0])
		return syntax.And(v, syntax.Not(v))
	}
	f := clauses[0]
	for _, clause := range clauses[1:] {
		f = syntax.Or(f, clause)
	}
	return f
}

// SynthesizeCNF is the dual of Synthesize: it returns a formula in CNF
// over the given variable names whose truth table is values. Same
// preconditions as Synthesize.
//
// If every value is true, the result is the single tautological clause
// (v|~v) over the first name.
func SynthesizeCNF(names []string, values []bool) *syntax.Formula {
	checkSynthesis(names, values)
	var clauses []*syntax.Formula
	i := 0
	for m := range AllModels(names) {
		if !values[i] {
			clauses = append(clauses, disjunctiveClause(names, m))
		}
		i++
	}
	if clauses == nil {
		v := syntax.Var(names[0])
		return syntax.Or(v, syntax.Not(v))
	}
	f := clauses[0]
	for _, clause := range clauses[1:] {
		f = syntax.And(f, clause)
	}
	return f
}

func checkSynthesis(names []string, values []bool) {
	if len(names) == 0 {
		panic(fmt.Errorf("semantics: no variable names to synthesize over"))
	}
	if len(values) != 1<<len(names) {
		panic(fmt.Errorf("semantics: got %d truth values over %d variables, want %d",
			len(values), len(names), 1<<len(names)))
	}
}

// conjunctiveClause builds the conjunction of literals, in names order,
// that is true exactly in model m among the models over names.
func conjunctiveClause(names []string, m Model) *syntax.Formula {
	var clause *syntax.Formula
	for _, name := range names {
		lit := syntax.Var(name)
		if !m[name] {
			lit = syntax.Not(lit)
		}
		if clause == nil {
			clause = lit
		} else {
			clause = syntax.And(clause, lit)
		}
	}
	return clause
}

// disjunctiveClause builds the disjunction of literals, in names order,
// that is false exactly in model m among the models over names.
func disjunctiveClause(names []string, m Model) *syntax.Formula {
	var clause *syntax.Formula
	for _, name := range names {
		lit := syntax.Var(name)
		if m[name] {
			lit = syntax.Not(lit)
		}
		if clause == nil {
			clause = lit
		} else {
			clause = syntax.Or(clause, lit)
		}
	}
	return clause
}
