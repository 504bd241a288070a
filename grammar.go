package peg

import "github.com/sirupsen/logrus"

// Rule is a single named grammar rule: an identifier bound to the ExprID of
// its defining expression.
type Rule struct {
	Name string
	Expr ExprID
}

// Grammar is an ordered collection of rules, preserving source definition
// order, plus the default starting rule (the first rule defined). A
// Grammar is immutable once returned from ParseGrammar (or once a caller of
// NewGrammar has finished defining its rules), and is safe to share across
// concurrent Parse calls.
type Grammar struct {
	arena []Expr
	rules []Rule
	index map[string]int // rule name -> index into rules

	log    *logrus.Logger
	record *Recorder
}

// NewGrammar creates an empty Grammar under construction, applying any
// Options immediately. It is exported so that the meta-grammar
// (metagrammar.go) can be built the same way a parsed user grammar is: by
// calling the same arena constructors.
func NewGrammar(opts ...Option) *Grammar {
	g := &Grammar{index: make(map[string]int)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Define adds (or replaces) a rule. The first call to Define on a fresh
// Grammar establishes the default starting rule.
func (g *Grammar) Define(name string, expr ExprID) {
	if i, ok := g.index[name]; ok {
		g.rules[i].Expr = expr
		return
	}
	g.index[name] = len(g.rules)
	g.rules = append(g.rules, Rule{Name: name, Expr: expr})
}

// DefaultStart returns the name of the first rule defined, or "" if the
// grammar has no rules.
func (g *Grammar) DefaultStart() string {
	if len(g.rules) == 0 {
		return ""
	}
	return g.rules[0].Name
}

// Rules returns the grammar's rules in source definition order.
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	copy(out, g.rules)
	return out
}

// HasRule reports whether name is defined in the grammar.
func (g *Grammar) HasRule(name string) bool {
	_, ok := g.index[name]
	return ok
}

func (g *Grammar) rule(name string) (Rule, bool) {
	i, ok := g.index[name]
	if !ok {
		return Rule{}, false
	}
	return g.rules[i], true
}

func (g *Grammar) expr(id ExprID) Expr {
	return g.arena[int(id)]
}

// Option configures a Grammar at ParseGrammar time without enlarging the
// three-function public façade.
type Option func(*Grammar)

// WithLogger attaches a structured logger used to trace grammar
// construction and, when its level is Debug, the outcome of each Parse call.
// A nil logger (the default) disables logging entirely.
func WithLogger(log *logrus.Logger) Option {
	return func(g *Grammar) { g.log = log }
}

// WithRecorder attaches a telemetry Recorder observing Parse invocations.
// A nil Recorder (the default) disables telemetry entirely.
func WithRecorder(rec *Recorder) Option {
	return func(g *Grammar) { g.record = rec }
}

func (g *Grammar) logger() *logrus.Logger {
	if g.log == nil {
		return discardLogger
	}
	return g.log
}
