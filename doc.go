// Package peg implements Parsing Expression Grammars (PEGs) in the style of
// Bryan Ford's original formulation.
//
// Given a textual grammar in PEG notation, ParseGrammar constructs an
// in-memory Grammar. Given that Grammar, an input string and a starting
// rule name, (*Grammar).Parse attempts to recognize a prefix of the input
// and reports either the consumed span or a mismatch.
//
// Overlook of the grammar notation
//
// A grammar is a sequence of rules:
//
//	Identifier <- Expression
//
// Expressions combine via ordered choice ('/'), sequencing (juxtaposition),
// the qualifiers '?' '*' '+', and the syntactic predicates '&' '!':
//
//	Primary    <- Identifier / '(' Expression ')' / Literal / Class / '.'
//	Suffix     <- Primary ('?' / '*' / '+')?
//	Prefix     <- ('&' / '!')? Suffix
//	Sequence   <- Prefix*
//	Expression <- Sequence ('/' Sequence)*
//
// Overlook of methods
//
// The three core operations are:
//
//	ParseGrammar(text) (*Grammar, error)
//	(*Grammar).Parse(input, startingRule) MatchResult
//	IsMismatch(MatchResult) bool
//
// The engine is a recognizer, not a semantic-action framework: a successful
// match reports only the consumed span [Start, End), and a failed match
// reports the furthest position reached, for diagnostics. There is no error
// recovery, no AST with user hooks, and no support for left-recursive
// rules — a rule that re-enters itself at the same position fails at that
// re-entry, so it can match only through its other alternatives.
package peg // import "github.com/hucsmn/pegrammar"
