package peg

// builder walks a traced meta-grammar parse of grammar source text into
// Expr/Grammar values. It holds only the source text: every other piece of
// state lives on the cstNode tree or the destination Grammar being built.
type builder struct {
	src string
}

func (b *builder) buildGrammar(dst *Grammar, root *cstNode) {
	for _, def := range root.childrenNamed("Definition") {
		name := def.child("Identifier").text(b.src)
		id := b.buildExpression(dst, def.child("Expression"))
		dst.Define(name, id)
	}
}

// buildExpression handles Expression <- Sequence (SLASH Sequence)*: a choice
// of one sequence simplifies to that sequence (dst.choiceExpr already does
// this for a single child).
func (b *builder) buildExpression(dst *Grammar, node *cstNode) ExprID {
	alts := node.childrenNamed("Sequence")
	ids := make([]ExprID, len(alts))
	for i, alt := range alts {
		ids[i] = b.buildSequence(dst, alt)
	}
	return dst.choiceExpr(ids...)
}

// buildSequence handles Sequence <- Prefix*: a sequence of one prefix
// simplifies to that prefix (dst.seqExpr already does this for a single
// child). A Sequence matching zero Prefixes denotes the empty alternative
// (e.g. "A <- 'x' / "), represented as an empty Literal rather than as a
// zero-child Sequence, which the expression model forbids.
func (b *builder) buildSequence(dst *Grammar, node *cstNode) ExprID {
	prefixes := node.childrenNamed("Prefix")
	if len(prefixes) == 0 {
		return dst.litExpr("")
	}
	ids := make([]ExprID, len(prefixes))
	for i, p := range prefixes {
		ids[i] = b.buildPrefix(dst, p)
	}
	return dst.seqExpr(ids...)
}

// buildPrefix handles Prefix <- (AND / NOT)? Suffix.
func (b *builder) buildPrefix(dst *Grammar, node *cstNode) ExprID {
	suffix := b.buildSuffix(dst, node.child("Suffix"))
	switch {
	case node.child("AND") != nil:
		return dst.andExpr(suffix)
	case node.child("NOT") != nil:
		return dst.notExpr(suffix)
	default:
		return suffix
	}
}

// buildSuffix handles Suffix <- Primary (QUESTION / STAR / PLUS)?.
func (b *builder) buildSuffix(dst *Grammar, node *cstNode) ExprID {
	primary := b.buildPrimary(dst, node.child("Primary"))
	switch {
	case node.child("QUESTION") != nil:
		return dst.optExpr(primary)
	case node.child("STAR") != nil:
		return dst.starExpr(primary)
	case node.child("PLUS") != nil:
		return dst.plusExpr(primary)
	default:
		return primary
	}
}

// buildPrimary handles Primary <- Identifier !LEFTARROW / OPEN Expression
// CLOSE / Literal / Class / DOT. Exactly one alternative's child node is
// present, since Choice commits to the first alternative that matches.
func (b *builder) buildPrimary(dst *Grammar, node *cstNode) ExprID {
	switch {
	case node.child("Identifier") != nil:
		return dst.refExpr(node.child("Identifier").text(b.src))
	case node.child("Expression") != nil:
		return b.buildExpression(dst, node.child("Expression"))
	case node.child("Literal") != nil:
		return b.buildLiteral(dst, node.child("Literal"))
	case node.child("Class") != nil:
		return b.buildClass(dst, node.child("Class"))
	default:
		return dst.dotExpr()
	}
}

// buildLiteral decodes each matched Char into its code point and joins them
// into the literal string.
func (b *builder) buildLiteral(dst *Grammar, node *cstNode) ExprID {
	chars := node.childrenNamed("Char")
	runes := make([]rune, len(chars))
	for i, c := range chars {
		runes[i] = decodeChar(c.text(b.src))
	}
	return dst.litExpr(string(runes))
}

// buildClass decodes each Range into a [lo, hi] pair; a Range with a single
// Char becomes a single-point range.
func (b *builder) buildClass(dst *Grammar, node *cstNode) ExprID {
	ranges := node.childrenNamed("Range")
	pairs := make([][2]rune, len(ranges))
	for i, rn := range ranges {
		chars := rn.childrenNamed("Char")
		lo := decodeChar(chars[0].text(b.src))
		hi := lo
		if len(chars) == 2 {
			hi = decodeChar(chars[1].text(b.src))
		}
		pairs[i] = [2]rune{lo, hi}
	}
	return dst.classExpr(NewCharClass(pairs...))
}
