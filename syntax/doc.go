// Package syntax defines propositional-logic formulas as immutable trees.
//
// A formula is either a variable (a lowercase letter optionally followed
// by digits), one of the two constants "T" and "F", a negation "~", or a
// binary connective among "&", "|", "->" and "<->". Formulas are built
// with the package's constructors or parsed from their canonical string
// form, and are never mutated once built.
package syntax
