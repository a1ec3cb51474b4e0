package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTableCommand(t *testing.T) {
	out, err := runCommand(t, "table", "q->p")
	require.NoError(t, err)
	expected := "" +
		"| p | q | (q->p) |\n" +
		"|---|---|--------|\n" +
		"| F | F | T      |\n" +
		"| F | T | F      |\n" +
		"| T | F | T      |\n" +
		"| T | T | T      |\n"
	assert.Equal(t, expected, out)
}

func TestClassifyCommand(t *testing.T) {
	out, err := runCommand(t, "classify", "p|~p")
	require.NoError(t, err)
	assert.Equal(t, "(p|~p): tautology, satisfiable: true\n", out)

	out, err = runCommand(t, "classify", "p&~p")
	require.NoError(t, err)
	assert.Equal(t, "(p&~p): contradiction, satisfiable: false\n", out)
}

func TestSynthCommand(t *testing.T) {
	out, err := runCommand(t, "synth", "--vars", "p,q", "--values", "TTTF")
	require.NoError(t, err)
	assert.Equal(t, "(((~p&~q)|(~p&q))|(p&~q))\n", out)
}

func TestSoundCommand(t *testing.T) {
	out, err := runCommand(t, "sound", "-a", "p", "-a", "p->q", "-c", "q")
	require.NoError(t, err)
	assert.Equal(t, "[p, (p->q)] ==> q is sound\n", out)

	soundAssumptions = nil // repeatable flags accumulate across executions
	out, err = runCommand(t, "sound", "-a", "p->q", "-a", "q", "-c", "p")
	require.NoError(t, err)
	assert.Equal(t, "[(p->q), q] ==> p is not sound, countermodel: {p=F, q=T}\n", out)
}

func TestParseErrorIsReported(t *testing.T) {
	_, err := runCommand(t, "table", "p&&q")
	assert.Error(t, err)
}
