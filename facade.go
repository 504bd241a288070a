package peg

import "sync"

var (
	metaGrammarOnce sync.Once
	metaGrammarVal  *Grammar
)

// metaGrammar returns the hard-coded PEG-of-PEG grammar (metagrammar.go),
// built once and reused: it is immutable after construction like any other
// Grammar, so sharing one instance across ParseGrammar calls is
// safe and avoids rebuilding ~30 rules on every call.
func metaGrammar() *Grammar {
	metaGrammarOnce.Do(func() {
		metaGrammarVal = newMetaGrammar()
	})
	return metaGrammarVal
}

// ParseGrammar parses PEG source text into a Grammar.
// It fails with a *GrammarSyntaxError if text is not a valid PEG grammar, or
// if a valid grammar definition does not account for all of text.
func ParseGrammar(text string, opts ...Option) (*Grammar, error) {
	meta := metaGrammar()
	res, root, furthest := meta.traceParse(text, "Grammar")
	if IsMismatch(res) {
		return nil, newGrammarSyntaxError(furthest)
	}
	if res.End != len(text) {
		return nil, newGrammarSyntaxError(furthest)
	}

	g := NewGrammar(opts...)
	(&builder{src: text}).buildGrammar(g, root)

	g.logger().WithFields(map[string]any{
		"rules": len(g.rules),
	}).Debug("peg: grammar parsed")
	return g, nil
}
