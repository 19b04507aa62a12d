/*
Package scanner defines an interface for scanners reading the textual input of
package formal, e.g. grammar rules.

A scanner implementation based on lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/formal"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formal.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("formal.scanner")
}

// EOF is the token type signalling the end of input.
const EOF formal.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() formal.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   formal.TokType
	lexeme string
	Val    interface{}
	span   formal.Span
}

func MakeDefaultToken(typ formal.TokType, lexeme string, span formal.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() formal.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() formal.Span {
	return t.span
}

// Collect reads tokens from a tokenizer until EOF.
func Collect(t Tokenizer) []formal.Token {
	var tokens []formal.Token
	for tok := t.NextToken(); tok.TokType() != EOF; tok = t.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}
