package peg

import (
	"fmt"

	"github.com/pkg/errors"
)

// GrammarSyntaxError reports that grammar source text is not a valid PEG.
// It is fatal to ParseGrammar.
type GrammarSyntaxError struct {
	Furthest int
	cause    error
}

func (err *GrammarSyntaxError) Error() string {
	return fmt.Sprintf("peg: grammar syntax error at offset %d", err.Furthest)
}

// Unwrap exposes the wrapped cause, if any, to errors.As/errors.Is.
func (err *GrammarSyntaxError) Unwrap() error {
	return err.cause
}

func newGrammarSyntaxError(furthest int) error {
	return errors.WithStack(&GrammarSyntaxError{Furthest: furthest})
}

// UnknownRule reports that a starting rule or a Reference resolves to no
// rule in the grammar. It is fatal to the Parse call in which it occurs.
type UnknownRule struct {
	Name string
}

func (err *UnknownRule) Error() string {
	return fmt.Sprintf("peg: unknown rule %q", err.Name)
}

func newUnknownRuleError(name string) error {
	return errors.WithStack(&UnknownRule{Name: name})
}

// corner-case errors: invariants this package maintains internally; seeing
// one means the recognizer or builder has a bug, not that the caller passed
// bad input.
var (
	errEmptySequence = errors.New("peg: sequence must have at least one child")
	errEmptyChoice   = errors.New("peg: choice must have at least two children")
)
