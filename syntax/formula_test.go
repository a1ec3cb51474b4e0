package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVariable(t *testing.T) {
	valid := []string{"p", "q", "z", "a", "q76", "p0", "x123"}
	for _, name := range valid {
		assert.True(t, IsVariable(name), "expected %q to be a valid variable name", name)
	}
	invalid := []string{"", "P", "T", "F", "7p", "p7a", "pq", "p q", "~p"}
	for _, name := range invalid {
		assert.False(t, IsVariable(name), "expected %q to be rejected", name)
	}
}

func TestLabelKindsAreDisjoint(t *testing.T) {
	labels := []string{"p", "q76", "T", "F", "~", "&", "|", "->", "<->"}
	for _, label := range labels {
		n := 0
		for _, pred := range []func(string) bool{IsVariable, IsConstant, IsUnary, IsBinary} {
			if pred(label) {
				n++
			}
		}
		assert.Equal(t, 1, n, "label %q should match exactly one kind", label)
	}
}

func TestString(t *testing.T) {
	p, q := Var("p"), Var("q76")
	tests := []struct {
		f        *Formula
		expected string
	}{
		{p, "p"},
		{True(), "T"},
		{False(), "F"},
		{Not(p), "~p"},
		{And(p, q), "(p&q76)"},
		{Or(Not(p), q), "(~p|q76)"},
		{Implies(p, q), "(p->q76)"},
		{Iff(p, q), "(p<->q76)"},
		{Not(And(p, q)), "~(p&q76)"},
		{And(Or(p, q), Not(p)), "((p|q76)&~p)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.f.String())
	}
}

func TestVariables(t *testing.T) {
	f := And(Implies(Var("q"), Var("p")), Not(Var("r12")))
	assert.Equal(t, []string{"p", "q", "r12"}, f.Variables())

	// Duplicates collapse, constants do not count.
	g := Or(And(Var("p"), Var("p")), True())
	assert.Equal(t, []string{"p"}, g.Variables())

	assert.Empty(t, Implies(True(), False()).Variables())
}

func TestVarPanicsOnInvalidName(t *testing.T) {
	assert.Panics(t, func() { Var("P") })
	assert.Panics(t, func() { Var("") })
}
