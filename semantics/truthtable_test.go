package semantics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emontbrun/proplogic/syntax"
)

func TestWriteTruthTable(t *testing.T) {
	f := mustParse(t, "~(p&q76)")
	var b strings.Builder
	require.NoError(t, WriteTruthTable(&b, f))
	expected := "" +
		"| p | q76 | ~(p&q76) |\n" +
		"|---|-----|----------|\n" +
		"| F | F   | T        |\n" +
		"| F | T   | T        |\n" +
		"| T | F   | T        |\n" +
		"| T | T   | F        |\n"
	assert.Equal(t, expected, b.String())
}

// Variable columns are sorted alphabetically regardless of the order in
// which the variables appear in the formula.
func TestWriteTruthTableSortsVariables(t *testing.T) {
	f := mustParse(t, "q->p")
	var b strings.Builder
	require.NoError(t, WriteTruthTable(&b, f))
	expected := "" +
		"| p | q | (q->p) |\n" +
		"|---|---|--------|\n" +
		"| F | F | T      |\n" +
		"| F | T | F      |\n" +
		"| T | F | T      |\n" +
		"| T | T | T      |\n"
	assert.Equal(t, expected, b.String())
}

func TestWriteTruthTableNoVariables(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteTruthTable(&b, syntax.True()))
	expected := "" +
		"| T |\n" +
		"|---|\n" +
		"| T |\n"
	assert.Equal(t, expected, b.String())
}

func ExamplePrintTruthTable() {
	f, _ := syntax.Parse("~(p&q76)")
	PrintTruthTable(f)
	// Output:
	// | p | q76 | ~(p&q76) |
	// |---|-----|----------|
	// | F | F   | T        |
	// | F | T   | T        |
	// | T | F   | T        |
	// | T | T   | F        |
}
