// Package semantics implements semantic analysis of propositional-logic
// formulas: evaluation under a model, enumeration of all models over a
// set of variables, tautology/contradiction/satisfiability checks,
// truth-table printing, synthesis of DNF and CNF formulas from
// arbitrary truth tables, and semantic checks of inference rules.
//
// All functions are pure and total on well-formed input. Violated
// preconditions (an invalid model, a model missing a binding, a
// truth-value sequence of the wrong length) are programmer errors and
// panic; the only returned errors are write failures when printing a
// truth table.
//
// Every truth-table method enumerates the 2^n models over n variables,
// so costs grow exponentially with the number of distinct variables.
package semantics
