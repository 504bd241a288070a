package peg

import (
	"time"
	"unicode/utf8"
)

// MatchResult is the outcome of recognizing one Expr (or a whole Parse)
// against an input: either a Match spanning [Start, End), or a Mismatch
// reporting the Furthest offset any alternative reached before failing.
// Furthest is the only diagnostic a Mismatch carries; it does not say which
// rule or alternative produced it.
type MatchResult struct {
	ok       bool
	Start    int
	End      int
	Furthest int
}

// Matched reports a successful recognition spanning [start, end).
func Matched(start, end int) MatchResult {
	return MatchResult{ok: true, Start: start, End: end}
}

// Mismatched reports a failed recognition that progressed no further than
// furthest before giving up.
func Mismatched(furthest int) MatchResult {
	return MatchResult{ok: false, Furthest: furthest}
}

// IsMismatch reports whether m is a Mismatch.
func IsMismatch(m MatchResult) bool {
	return !m.ok
}

// evalState is the per-Parse-call mutable state threaded through eval: the
// packrat cache and the running furthest-offset watermark. It is not safe
// for concurrent use; each Parse call gets its own.
type evalState struct {
	cache    *memoCache
	furthest int
}

func (st *evalState) touch(pos int) {
	if pos > st.furthest {
		st.furthest = pos
	}
}

// Parse recognizes input against the rule named startingRule (or the
// grammar's default starting rule, if startingRule is ""). It panics with an
// error wrapping an *UnknownRule if startingRule names no rule in g: that is a programming
// error in the caller, not a recognition failure: the three-function
// façade has no error return on the hot path.
func (g *Grammar) Parse(input, startingRule string) MatchResult {
	if startingRule == "" {
		startingRule = g.DefaultStart()
	}
	if !g.HasRule(startingRule) {
		panic(newUnknownRuleError(startingRule))
	}

	began := time.Now()
	st := &evalState{cache: newMemoCache(len(g.rules), len(input))}
	// Entering through evalReference seeds the starting rule's packrat cell,
	// so a left-recursive starting rule also fails at re-entry.
	res := g.evalReference(startingRule, input, 0, st)

	log := g.logger()
	if IsMismatch(res) {
		log.WithFields(map[string]any{
			"rule":     startingRule,
			"furthest": res.Furthest,
			"position": PositionAt(input, res.Furthest),
		}).Debug("peg: parse mismatched")
	} else {
		log.WithFields(map[string]any{
			"rule":  startingRule,
			"start": res.Start,
			"end":   res.End,
		}).Debug("peg: parse matched")
	}
	g.record.observeParse(startingRule, res, time.Since(began))
	return res
}

// eval recognizes the Expr id against text starting at pos.
func (g *Grammar) eval(id ExprID, text string, pos int, st *evalState) MatchResult {
	e := g.expr(id)
	switch e.Kind {
	case KindLiteral:
		return g.evalLiteral(e.Literal, text, pos, st)
	case KindClass:
		return g.evalClass(e.Class, text, pos, st)
	case KindDot:
		return g.evalDot(text, pos, st)
	case KindReference:
		return g.evalReference(e.Name, text, pos, st)
	case KindSequence:
		return g.evalSequence(e.Children, text, pos, st)
	case KindChoice:
		return g.evalChoice(e.Children, text, pos, st)
	case KindOptional:
		return g.evalOptional(e.Children[0], text, pos, st)
	case KindStar:
		return g.evalRepeat(e.Children[0], text, pos, st, 0)
	case KindPlus:
		return g.evalRepeat(e.Children[0], text, pos, st, 1)
	case KindAnd:
		return g.evalAnd(e.Children[0], text, pos, st)
	case KindNot:
		return g.evalNot(e.Children[0], text, pos, st)
	default:
		panic("peg: unreachable expr kind")
	}
}

// evalLiteral compares lit's code points one at a time against text, so that a
// mismatch's Furthest lands on the offset of the first differing code point
// rather than on the literal's start or end.
func (g *Grammar) evalLiteral(lit string, text string, pos int, st *evalState) MatchResult {
	p := pos
	for _, want := range lit {
		st.touch(p)
		got, size := utf8.DecodeRuneInString(text[p:])
		if size == 0 || got != want {
			return Mismatched(st.furthest)
		}
		p += size
	}
	return Matched(pos, p)
}

func (g *Grammar) evalClass(c CharClass, text string, pos int, st *evalState) MatchResult {
	st.touch(pos)
	r, size := utf8.DecodeRuneInString(text[pos:])
	if size == 0 || !c.Contains(r) {
		return Mismatched(st.furthest)
	}
	return Matched(pos, pos+size)
}

func (g *Grammar) evalDot(text string, pos int, st *evalState) MatchResult {
	st.touch(pos)
	if pos >= len(text) {
		return Mismatched(st.furthest)
	}
	_, size := utf8.DecodeRuneInString(text[pos:])
	return Matched(pos, pos+size)
}

// evalReference resolves a rule reference through the packrat cache. A cell
// found pending means name is currently being evaluated further up the call
// stack at the same pos: that is left recursion, and it fails immediately
// rather than recursing forever.
func (g *Grammar) evalReference(name string, text string, pos int, st *evalState) MatchResult {
	st.touch(pos)
	idx, ok := g.index[name]
	if !ok {
		panic(newUnknownRuleError(name))
	}

	key := memoKey{rule: idx, pos: pos}
	if entry, found := st.cache.get(key); found {
		if entry.pending {
			return Mismatched(st.furthest)
		}
		return entry.result
	}

	st.cache.seedPending(key)
	res := g.eval(g.rules[idx].Expr, text, pos, st)
	if IsMismatch(res) {
		g.record.observeRuleMismatch(name)
	}
	st.cache.resolve(key, res)
	return res
}

func (g *Grammar) evalSequence(children []ExprID, text string, pos int, st *evalState) MatchResult {
	cur := pos
	for _, child := range children {
		res := g.eval(child, text, cur, st)
		if IsMismatch(res) {
			return res
		}
		cur = res.End
	}
	return Matched(pos, cur)
}

func (g *Grammar) evalChoice(children []ExprID, text string, pos int, st *evalState) MatchResult {
	for _, child := range children {
		res := g.eval(child, text, pos, st)
		if !IsMismatch(res) {
			return res
		}
	}
	return Mismatched(st.furthest)
}

func (g *Grammar) evalOptional(child ExprID, text string, pos int, st *evalState) MatchResult {
	res := g.eval(child, text, pos, st)
	if IsMismatch(res) {
		return Matched(pos, pos)
	}
	return res
}

// evalRepeat implements both Star (minCount 0) and Plus (minCount 1):
// greedily match child until it mismatches, stopping early if an iteration
// matches without consuming any input so a body that can match empty never
// loops forever.
func (g *Grammar) evalRepeat(child ExprID, text string, pos int, st *evalState, minCount int) MatchResult {
	cur := pos
	count := 0
	for {
		res := g.eval(child, text, cur, st)
		if IsMismatch(res) {
			if count < minCount {
				return res
			}
			break
		}
		zeroWidth := res.End == cur
		cur = res.End
		count++
		if zeroWidth {
			break
		}
	}
	return Matched(pos, cur)
}

func (g *Grammar) evalAnd(child ExprID, text string, pos int, st *evalState) MatchResult {
	res := g.eval(child, text, pos, st)
	if IsMismatch(res) {
		return res
	}
	return Matched(pos, pos)
}

func (g *Grammar) evalNot(child ExprID, text string, pos int, st *evalState) MatchResult {
	res := g.eval(child, text, pos, st)
	if !IsMismatch(res) {
		return Mismatched(st.furthest)
	}
	return Matched(pos, pos)
}
