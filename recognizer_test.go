package peg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustParseGrammar(t *testing.T, src string) *Grammar {
	t.Helper()
	g, err := ParseGrammar(src)
	require.NoError(t, err)
	return g
}

// Literal match and mismatch furthest.
func TestRecognizerLiteral(t *testing.T) {
	g := mustParseGrammar(t, `S <- "ab"`)

	res := g.Parse("ab", "S")
	require.False(t, IsMismatch(res))
	require.Equal(t, 0, res.Start)
	require.Equal(t, 2, res.End)

	res = g.Parse("ac", "S")
	require.True(t, IsMismatch(res))
	require.Equal(t, 1, res.Furthest)
}

// Scenario 2: Star matches greedily and tolerates an empty input.
func TestRecognizerStar(t *testing.T) {
	g := mustParseGrammar(t, `S <- "a"*`)

	res := g.Parse("aaa", "S")
	require.False(t, IsMismatch(res))
	require.Equal(t, 3, res.End)

	res = g.Parse("", "S")
	require.False(t, IsMismatch(res))
	require.Equal(t, 0, res.End)
}

// Scenario 3: ordered choice and furthest reported at the choice point.
func TestRecognizerChoice(t *testing.T) {
	g := mustParseGrammar(t, `S <- "a" / "b"`)

	res := g.Parse("b", "S")
	require.False(t, IsMismatch(res))
	require.Equal(t, 1, res.End)

	res = g.Parse("c", "S")
	require.True(t, IsMismatch(res))
	require.Equal(t, 0, res.Furthest)
}

// Scenario 4: predicates never consume input.
func TestRecognizerNotPredicate(t *testing.T) {
	g := mustParseGrammar(t, `S <- !"a" .`)

	res := g.Parse("b", "S")
	require.False(t, IsMismatch(res))
	require.Equal(t, 1, res.End)

	res = g.Parse("a", "S")
	require.True(t, IsMismatch(res))
}

// Scenario 5: right recursion through a Reference resolves via the packrat
// cache without blowing the stack.
func TestRecognizerRuleRecursion(t *testing.T) {
	g := mustParseGrammar(t, "S <- A\nA <- \"x\" A / \"x\"\n")

	res := g.Parse("xxx", "S")
	require.False(t, IsMismatch(res))
	require.Equal(t, 0, res.Start)
	require.Equal(t, 3, res.End)
}

// Invariant 1: determinism.
func TestRecognizerDeterministic(t *testing.T) {
	g := mustParseGrammar(t, `S <- ("a" / "b")+`)

	first := g.Parse("abab", "S")
	second := g.Parse("abab", "S")
	require.Equal(t, first, second)
}

// Invariant 4: an AndPredicate never consumes, even on match.
func TestRecognizerPredicatesDoNotConsume(t *testing.T) {
	g := mustParseGrammar(t, `S <- &"ab" "a"`)

	res := g.Parse("ab", "S")
	require.False(t, IsMismatch(res))
	require.Equal(t, 1, res.End)
}

// Left recursion is detected, not infinitely recursed into.
func TestRecognizerLeftRecursionFails(t *testing.T) {
	g := mustParseGrammar(t, "S <- S \"a\" / \"a\"\n")

	res := g.Parse("aaa", "S")
	// The left-recursive alternative always mismatches at re-entry, so only
	// a single "a" is ever recognized through the second alternative.
	require.False(t, IsMismatch(res))
	require.Equal(t, 1, res.End)
}

// Termination: a Star body that can match empty still terminates.
func TestRecognizerStarOfEmptyMatchTerminates(t *testing.T) {
	g := NewGrammar()
	g.Define("S", g.starExpr(g.litExpr("")))

	done := make(chan MatchResult, 1)
	go func() { done <- g.Parse("abc", "S") }()

	select {
	case res := <-done:
		require.False(t, IsMismatch(res))
		require.Equal(t, 0, res.End)
	case <-time.After(time.Second):
		t.Fatal("Star(empty) did not terminate")
	}
}

func TestRecognizerUnknownStartingRulePanics(t *testing.T) {
	g := mustParseGrammar(t, `S <- "a"`)
	require.Panics(t, func() {
		g.Parse("a", "NoSuchRule")
	})
}

// A Reference inside a rule body that names no rule panics the same way an
// unknown starting rule does, once evaluation actually reaches it.
func TestRecognizerUnknownReferencePanics(t *testing.T) {
	g := NewGrammar()
	g.Define("S", g.refExpr("NoSuchRule"))

	require.Panics(t, func() {
		g.Parse("anything", "S")
	})
}
