package peg

// newMetaGrammar builds the hard-coded grammar whose language is PEG source
// itself, as a *Grammar built from the same arena constructors a user
// grammar is built from. It is essentially Bryan Ford's original
// PEG-of-PEG grammar transcribed expression-by-expression.
//
// Rules are listed in the order the surface grammar lists them, so the first
// Define call (Grammar) is also the correct default start rule.
func newMetaGrammar() *Grammar {
	g := NewGrammar()

	alnum := func(lo, hi rune) CharClass { return NewCharClass([2]rune{lo, hi}) }

	// Grammar <- Spacing Definition+ EndOfFile
	g.Define("Grammar", g.seqExpr(
		g.refExpr("Spacing"),
		g.plusExpr(g.refExpr("Definition")),
		g.refExpr("EndOfFile"),
	))

	// Definition <- Identifier LEFTARROW Expression
	g.Define("Definition", g.seqExpr(
		g.refExpr("Identifier"),
		g.refExpr("LEFTARROW"),
		g.refExpr("Expression"),
	))

	// Expression <- Sequence (SLASH Sequence)*
	g.Define("Expression", g.seqExpr(
		g.refExpr("Sequence"),
		g.starExpr(g.seqExpr(g.refExpr("SLASH"), g.refExpr("Sequence"))),
	))

	// Sequence <- Prefix*
	g.Define("Sequence", g.starExpr(g.refExpr("Prefix")))

	// Prefix <- (AND / NOT)? Suffix
	g.Define("Prefix", g.seqExpr(
		g.optExpr(g.choiceExpr(g.refExpr("AND"), g.refExpr("NOT"))),
		g.refExpr("Suffix"),
	))

	// Suffix <- Primary (QUESTION / STAR / PLUS)?
	g.Define("Suffix", g.seqExpr(
		g.refExpr("Primary"),
		g.optExpr(g.choiceExpr(g.refExpr("QUESTION"), g.refExpr("STAR"), g.refExpr("PLUS"))),
	))

	// Primary <- Identifier !LEFTARROW / OPEN Expression CLOSE / Literal / Class / DOT
	g.Define("Primary", g.choiceExpr(
		g.seqExpr(g.refExpr("Identifier"), g.notExpr(g.refExpr("LEFTARROW"))),
		g.seqExpr(g.refExpr("OPEN"), g.refExpr("Expression"), g.refExpr("CLOSE")),
		g.refExpr("Literal"),
		g.refExpr("Class"),
		g.refExpr("DOT"),
	))

	// Identifier <- IdentStart IdentCont* Spacing
	g.Define("Identifier", g.seqExpr(
		g.refExpr("IdentStart"),
		g.starExpr(g.refExpr("IdentCont")),
		g.refExpr("Spacing"),
	))

	// IdentStart <- [a-zA-Z_]
	g.Define("IdentStart", g.classExpr(NewCharClass(
		[2]rune{'a', 'z'}, [2]rune{'A', 'Z'}, [2]rune{'_', '_'},
	)))

	// IdentCont <- IdentStart / [0-9]
	g.Define("IdentCont", g.choiceExpr(
		g.refExpr("IdentStart"),
		g.classExpr(alnum('0', '9')),
	))

	// Literal <- ['] (!['] Char)* ['] Spacing / ["] (!["] Char)* ["] Spacing
	g.Define("Literal", g.choiceExpr(
		g.seqExpr(
			g.litExpr("'"),
			g.starExpr(g.seqExpr(g.notExpr(g.litExpr("'")), g.refExpr("Char"))),
			g.litExpr("'"),
			g.refExpr("Spacing"),
		),
		g.seqExpr(
			g.litExpr(`"`),
			g.starExpr(g.seqExpr(g.notExpr(g.litExpr(`"`)), g.refExpr("Char"))),
			g.litExpr(`"`),
			g.refExpr("Spacing"),
		),
	))

	// Class <- '[' (!']' Range)* ']' Spacing
	g.Define("Class", g.seqExpr(
		g.litExpr("["),
		g.starExpr(g.seqExpr(g.notExpr(g.litExpr("]")), g.refExpr("Range"))),
		g.litExpr("]"),
		g.refExpr("Spacing"),
	))

	// Range <- Char '-' Char / Char
	g.Define("Range", g.choiceExpr(
		g.seqExpr(g.refExpr("Char"), g.litExpr("-"), g.refExpr("Char")),
		g.refExpr("Char"),
	))

	// Char <- '\\' [nrt'"\[\]\\] / '\\' [0-2][0-7][0-7] / '\\' [0-7][0-7]? / !'\\' .
	g.Define("Char", g.choiceExpr(
		g.seqExpr(g.litExpr(`\`), g.classExpr(NewCharClass(
			[2]rune{'n', 'n'}, [2]rune{'r', 'r'}, [2]rune{'t', 't'},
			[2]rune{'\'', '\''}, [2]rune{'"', '"'},
			[2]rune{'[', '['}, [2]rune{']', ']'}, [2]rune{'\\', '\\'},
		))),
		g.seqExpr(g.litExpr(`\`),
			g.classExpr(alnum('0', '2')),
			g.classExpr(alnum('0', '7')),
			g.classExpr(alnum('0', '7')),
		),
		g.seqExpr(g.litExpr(`\`),
			g.classExpr(alnum('0', '7')),
			g.optExpr(g.classExpr(alnum('0', '7'))),
		),
		g.seqExpr(g.notExpr(g.litExpr(`\`)), g.dotExpr()),
	))

	// LEFTARROW <- '<-' Spacing
	g.Define("LEFTARROW", g.seqExpr(g.litExpr("<-"), g.refExpr("Spacing")))
	// SLASH <- '/' Spacing
	g.Define("SLASH", g.seqExpr(g.litExpr("/"), g.refExpr("Spacing")))
	// AND <- '&' Spacing
	g.Define("AND", g.seqExpr(g.litExpr("&"), g.refExpr("Spacing")))
	// NOT <- '!' Spacing
	g.Define("NOT", g.seqExpr(g.litExpr("!"), g.refExpr("Spacing")))
	// QUESTION <- '?' Spacing
	g.Define("QUESTION", g.seqExpr(g.litExpr("?"), g.refExpr("Spacing")))
	// STAR <- '*' Spacing
	g.Define("STAR", g.seqExpr(g.litExpr("*"), g.refExpr("Spacing")))
	// PLUS <- '+' Spacing
	g.Define("PLUS", g.seqExpr(g.litExpr("+"), g.refExpr("Spacing")))
	// OPEN <- '(' Spacing
	g.Define("OPEN", g.seqExpr(g.litExpr("("), g.refExpr("Spacing")))
	// CLOSE <- ')' Spacing
	g.Define("CLOSE", g.seqExpr(g.litExpr(")"), g.refExpr("Spacing")))
	// DOT <- '.' Spacing
	g.Define("DOT", g.seqExpr(g.litExpr("."), g.refExpr("Spacing")))

	// Spacing <- (Space / Comment)*
	g.Define("Spacing", g.starExpr(g.choiceExpr(g.refExpr("Space"), g.refExpr("Comment"))))

	// Comment <- '#' (!EndOfLine .)* EndOfLine
	g.Define("Comment", g.seqExpr(
		g.litExpr("#"),
		g.starExpr(g.seqExpr(g.notExpr(g.refExpr("EndOfLine")), g.dotExpr())),
		g.refExpr("EndOfLine"),
	))

	// Space <- ' ' / '\t' / EndOfLine
	g.Define("Space", g.choiceExpr(g.litExpr(" "), g.litExpr("\t"), g.refExpr("EndOfLine")))

	// EndOfLine <- '\r\n' / '\n' / '\r'
	g.Define("EndOfLine", g.choiceExpr(g.litExpr("\r\n"), g.litExpr("\n"), g.litExpr("\r")))

	// EndOfFile <- !.
	g.Define("EndOfFile", g.notExpr(g.dotExpr()))

	return g
}
