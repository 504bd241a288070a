package peg

// ExprKind tags the case of an Expr.
type ExprKind uint8

const (
	// KindLiteral matches a fixed string of code points exactly.
	KindLiteral ExprKind = iota
	// KindClass matches one code point in a CharClass.
	KindClass
	// KindDot matches any single code point.
	KindDot
	// KindReference matches the rule named by Name in the enclosing Grammar.
	KindReference
	// KindSequence matches each child in order; Children has len >= 1.
	KindSequence
	// KindChoice tries each child in order, committing to the first that
	// succeeds; Children has len >= 2.
	KindChoice
	// KindOptional always succeeds, consuming its one child's span if it
	// matches.
	KindOptional
	// KindStar matches its one child zero or more times, greedily.
	KindStar
	// KindPlus matches its one child one or more times, greedily.
	KindPlus
	// KindAnd succeeds iff its one child would succeed, consuming nothing.
	KindAnd
	// KindNot succeeds iff its one child would fail, consuming nothing.
	KindNot
)

// ExprID addresses an Expr inside a Grammar's arena.
type ExprID int32

// Expr is one node of a PEG expression tree. Expr values live in a
// Grammar's arena and reference each other by ExprID rather than by
// pointer, so a Grammar clones and shares trivially.
type Expr struct {
	Kind     ExprKind
	Literal  string    // KindLiteral
	Class    CharClass // KindClass
	Name     string    // KindReference
	Children []ExprID  // Sequence/Choice (n children); Optional/Star/Plus/And/Not (exactly 1)
}

func (g *Grammar) newExpr(e Expr) ExprID {
	id := ExprID(len(g.arena))
	g.arena = append(g.arena, e)
	return id
}

// litExpr adds a Literal(s) node.
func (g *Grammar) litExpr(s string) ExprID {
	return g.newExpr(Expr{Kind: KindLiteral, Literal: s})
}

// classExpr adds a Class(c) node.
func (g *Grammar) classExpr(c CharClass) ExprID {
	return g.newExpr(Expr{Kind: KindClass, Class: c})
}

// dotExpr adds a Dot node.
func (g *Grammar) dotExpr() ExprID {
	return g.newExpr(Expr{Kind: KindDot})
}

// refExpr adds a Reference(name) node.
func (g *Grammar) refExpr(name string) ExprID {
	return g.newExpr(Expr{Kind: KindReference, Name: name})
}

// seqExpr adds a Sequence node. Panics if children is empty: Sequence is
// non-empty by invariant.
func (g *Grammar) seqExpr(children ...ExprID) ExprID {
	if len(children) == 0 {
		panic(errEmptySequence)
	}
	if len(children) == 1 {
		return children[0]
	}
	return g.newExpr(Expr{Kind: KindSequence, Children: children})
}

// choiceExpr adds a Choice node. A single child is returned as is, since
// Choice has n >= 2 by invariant; panics if children is empty.
func (g *Grammar) choiceExpr(children ...ExprID) ExprID {
	if len(children) == 1 {
		return children[0]
	}
	if len(children) < 2 {
		panic(errEmptyChoice)
	}
	return g.newExpr(Expr{Kind: KindChoice, Children: children})
}

func (g *Grammar) optExpr(child ExprID) ExprID {
	return g.newExpr(Expr{Kind: KindOptional, Children: []ExprID{child}})
}

func (g *Grammar) starExpr(child ExprID) ExprID {
	return g.newExpr(Expr{Kind: KindStar, Children: []ExprID{child}})
}

func (g *Grammar) plusExpr(child ExprID) ExprID {
	return g.newExpr(Expr{Kind: KindPlus, Children: []ExprID{child}})
}

func (g *Grammar) andExpr(child ExprID) ExprID {
	return g.newExpr(Expr{Kind: KindAnd, Children: []ExprID{child}})
}

func (g *Grammar) notExpr(child ExprID) ExprID {
	return g.newExpr(Expr{Kind: KindNot, Children: []ExprID{child}})
}
