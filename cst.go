package peg

import "unicode/utf8"

// cstNode is one rule invocation in a traced parse of grammar source text
// against the meta-grammar: its name, the span it matched, and the nested
// rule invocations that occurred while matching it. Only Reference
// evaluations produce a node; Literal/Class/Dot/Sequence/Choice and the
// repetition/predicate combinators are transparent and simply pass their
// children's nodes upward.
type cstNode struct {
	Rule     string
	Start    int
	End      int
	Children []*cstNode
}

// text returns the code points this node actually matched, trimming a
// trailing Spacing child if one is present. Nearly every meta-grammar token
// rule (Identifier, Literal, Class, and the punctuation tokens) is defined
// as "core Spacing", so this is the one place that knows how to recover the
// core text without re-deriving it per rule.
func (n *cstNode) text(src string) string {
	end := n.End
	if k := len(n.Children); k > 0 && n.Children[k-1].Rule == "Spacing" {
		end = n.Children[k-1].Start
	}
	return src[n.Start:end]
}

// child returns the first direct child named rule, or nil.
func (n *cstNode) child(rule string) *cstNode {
	for _, c := range n.Children {
		if c.Rule == rule {
			return c
		}
	}
	return nil
}

// childrenNamed returns every direct child named rule, in order.
func (n *cstNode) childrenNamed(rule string) []*cstNode {
	var out []*cstNode
	for _, c := range n.Children {
		if c.Rule == rule {
			out = append(out, c)
		}
	}
	return out
}

// traceParse runs the meta-grammar over text starting at rule "Grammar",
// building a cstNode tree alongside the ordinary MatchResult. It is a
// tree-producing variant of eval,
// used only to bootstrap a user Grammar from its source text; it is not on
// Grammar.Parse's hot path and is not memoized, since it runs once per
// ParseGrammar call over grammar source rather than once per rule per
// position over arbitrary input.
func (meta *Grammar) traceParse(text string, start string) (MatchResult, *cstNode, int) {
	furthest := 0
	idx := meta.index[start]
	res, kids := meta.traceExpr(meta.rules[idx].Expr, text, 0, &furthest)
	if IsMismatch(res) {
		return Mismatched(furthest), nil, furthest
	}
	node := &cstNode{Rule: start, Start: res.Start, End: res.End, Children: kids}
	return res, node, furthest
}

func (meta *Grammar) traceExpr(id ExprID, text string, pos int, furthest *int) (MatchResult, []*cstNode) {
	e := meta.expr(id)
	switch e.Kind {
	case KindLiteral:
		return meta.traceLiteral(e.Literal, text, pos, furthest), nil
	case KindClass:
		return meta.traceClass(e.Class, text, pos, furthest), nil
	case KindDot:
		return meta.traceDot(text, pos, furthest), nil
	case KindReference:
		return meta.traceReference(e.Name, text, pos, furthest)
	case KindSequence:
		cur := pos
		var kids []*cstNode
		for _, child := range e.Children {
			res, ck := meta.traceExpr(child, text, cur, furthest)
			if IsMismatch(res) {
				return res, nil
			}
			kids = append(kids, ck...)
			cur = res.End
		}
		return Matched(pos, cur), kids
	case KindChoice:
		for _, child := range e.Children {
			res, ck := meta.traceExpr(child, text, pos, furthest)
			if !IsMismatch(res) {
				return res, ck
			}
		}
		return Mismatched(*furthest), nil
	case KindOptional:
		res, ck := meta.traceExpr(e.Children[0], text, pos, furthest)
		if IsMismatch(res) {
			return Matched(pos, pos), nil
		}
		return res, ck
	case KindStar, KindPlus:
		min := 0
		if e.Kind == KindPlus {
			min = 1
		}
		cur := pos
		count := 0
		var kids []*cstNode
		for {
			res, ck := meta.traceExpr(e.Children[0], text, cur, furthest)
			if IsMismatch(res) {
				if count < min {
					return res, nil
				}
				break
			}
			zeroWidth := res.End == cur
			kids = append(kids, ck...)
			cur = res.End
			count++
			if zeroWidth {
				break
			}
		}
		return Matched(pos, cur), kids
	case KindAnd:
		res, _ := meta.traceExpr(e.Children[0], text, pos, furthest)
		if IsMismatch(res) {
			return res, nil
		}
		return Matched(pos, pos), nil
	case KindNot:
		res, _ := meta.traceExpr(e.Children[0], text, pos, furthest)
		if !IsMismatch(res) {
			return Mismatched(*furthest), nil
		}
		return Matched(pos, pos), nil
	default:
		panic("peg: unreachable expr kind")
	}
}

func (meta *Grammar) traceReference(name string, text string, pos int, furthest *int) (MatchResult, []*cstNode) {
	if pos > *furthest {
		*furthest = pos
	}
	idx, ok := meta.index[name]
	if !ok {
		panic(newUnknownRuleError(name))
	}
	res, kids := meta.traceExpr(meta.rules[idx].Expr, text, pos, furthest)
	if IsMismatch(res) {
		return res, nil
	}
	node := &cstNode{Rule: name, Start: res.Start, End: res.End, Children: kids}
	return res, []*cstNode{node}
}

func (meta *Grammar) traceLiteral(lit string, text string, pos int, furthest *int) MatchResult {
	p := pos
	for _, want := range lit {
		if p > *furthest {
			*furthest = p
		}
		got, size := utf8.DecodeRuneInString(text[p:])
		if size == 0 || got != want {
			return Mismatched(*furthest)
		}
		p += size
	}
	return Matched(pos, p)
}

func (meta *Grammar) traceClass(c CharClass, text string, pos int, furthest *int) MatchResult {
	if pos > *furthest {
		*furthest = pos
	}
	r, size := utf8.DecodeRuneInString(text[pos:])
	if size == 0 || !c.Contains(r) {
		return Mismatched(*furthest)
	}
	return Matched(pos, pos+size)
}

func (meta *Grammar) traceDot(text string, pos int, furthest *int) MatchResult {
	if pos > *furthest {
		*furthest = pos
	}
	if pos >= len(text) {
		return Mismatched(*furthest)
	}
	_, size := utf8.DecodeRuneInString(text[pos:])
	return Matched(pos, pos+size)
}
