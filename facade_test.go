package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGrammarRejectsInvalidSyntax(t *testing.T) {
	_, err := ParseGrammar(`S <- "a`)
	require.Error(t, err)

	var synErr *GrammarSyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseGrammarRejectsTrailingGarbage(t *testing.T) {
	_, err := ParseGrammar("S <- \"a\"\n} not a rule")
	require.Error(t, err)

	var synErr *GrammarSyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseGrammarAppliesOptions(t *testing.T) {
	reg := newTestRegistry(t)
	rec := NewRecorder(reg)

	g, err := ParseGrammar(`S <- "ok"`, WithRecorder(rec))
	require.NoError(t, err)
	require.NotNil(t, g)

	res := g.Parse("ok", "")
	require.False(t, IsMismatch(res))
}

func TestIsMismatch(t *testing.T) {
	require.True(t, IsMismatch(Mismatched(3)))
	require.False(t, IsMismatch(Matched(0, 3)))
}
