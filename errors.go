package formal

import (
	"errors"
	"fmt"
)

// Error kinds reported by the algorithms of this module. Functions wrap them with
// additional context, so clients should test with errors.Is.
//
// Precondition violations:
var (
	ErrNoInitialState   = errors.New("automaton has no initial state")
	ErrNotSingleLetter  = errors.New("automaton has transitions not labelled by a single letter")
	ErrNotDeterministic = errors.New("automaton is not deterministic")
	ErrNotComplete      = errors.New("automaton is not complete")
	ErrForeignState     = errors.New("state does not belong to automaton")
	ErrNoTransition     = errors.New("no such transition")
	ErrNotCNF           = errors.New("grammar is not in Chomsky normal form")
	ErrBadStartRule     = errors.New("start symbol must have exactly one rule with a single non-terminal")
)

// Syntax errors:
var (
	ErrGrammarFormat = errors.New("malformed grammar rule")
	ErrRegexpFormat  = errors.New("malformed regular expression")
)

// Resource exhaustion:
var (
	ErrSymbolsExhausted = errors.New("all non-terminal symbols A…Z are in use")
)

// FormatError is the error type for syntax errors in textual input, i.e. grammar
// rules and regular expressions. Kind is one of the syntax error kinds.
type FormatError struct {
	Kind error  // ErrGrammarFormat or ErrRegexpFormat
	Text string // the offending input
	Span Span   // position of the problem within Text
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %s at %s in %q", e.Kind, e.Msg, e.Span, e.Text)
}

func (e *FormatError) Unwrap() error {
	return e.Kind
}
