package grammar

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/formal"
	"github.com/npillmayer/formal/scanner"
	"github.com/npillmayer/formal/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token types of the textual grammar format.
const (
	tokLetter formal.TokType = iota + 1
	tokArrow
	tokEpsilon
	tokNewline
	tokIllegal
)

var literals = []string{"=>", "."}

var tokenIds = map[string]int{
	"LETTER":  int(tokLetter),
	"=>":      int(tokArrow),
	".":       int(tokEpsilon),
	"NL":      int(tokNewline),
	"ILLEGAL": int(tokIllegal),
}

var lexer *lexmach.LMAdapter
var lexerErr error
var initOnce sync.Once

func grammarLexer() (*lexmach.LMAdapter, error) {
	initOnce.Do(func() {
		init := func(lx *lexmachine.Lexer) {
			lx.Add([]byte(`( |\t|\r)+`), lexmach.Skip)
			lx.Add([]byte(`[a-zA-Z]`), lexmach.MakeToken("LETTER", tokenIds["LETTER"]))
			lx.Add([]byte(`\n`), lexmach.MakeToken("NL", tokenIds["NL"]))
			// lowest priority: anything else is reported by the rule reader
			lx.Add([]byte(`.`), lexmach.MakeToken("ILLEGAL", tokenIds["ILLEGAL"]))
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, tokenIds)
	})
	return lexer, lexerErr
}

// tokenize splits input into lines of tokens. Blank lines are dropped.
func tokenize(input string) ([][]formal.Token, error) {
	lm, err := grammarLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var lines [][]formal.Token
	var line []formal.Token
	for _, tok := range scanner.Collect(scan) {
		if tok.TokType() == tokNewline {
			if len(line) > 0 {
				lines = append(lines, line)
			}
			line = nil
			continue
		}
		line = append(line, tok)
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines, nil
}

// ParseRule reads a single rule in the form
//
//	X => rhs
//
// where X is a capital letter and rhs is either a non-empty sequence of letters or
// a single '.' for the empty right-hand side. Blanks between tokens are ignored.
func ParseRule(text string) (Rule, error) {
	lines, err := tokenize(text)
	if err != nil {
		return Rule{}, err
	}
	switch len(lines) {
	case 0:
		return Rule{}, formatError(text, formal.Span{}, "no rule found")
	case 1:
		return readRule(text, lines[0])
	}
	return Rule{}, formatError(text, lines[1][0].Span(), "more than one rule")
}

// Parse reads a grammar from its textual form, one rule per line. Blank lines are
// ignored. Options configure the resulting grammar, e.g. its start symbol.
func Parse(text string, opts ...Option) (*Grammar, error) {
	lines, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	g := New(opts...)
	for _, line := range lines {
		r, err := readRule(text, line)
		if err != nil {
			return nil, err
		}
		g.AddRule(r)
	}
	tracer().Debugf("read grammar with %d rules", g.Size())
	return g, nil
}

// readRule checks a line of tokens against the rule syntax.
func readRule(text string, line []formal.Token) (Rule, error) {
	for _, tok := range line {
		if tok.TokType() == tokIllegal {
			return Rule{}, formatError(text, tok.Span(), fmt.Sprintf("illegal character %q", tok.Lexeme()))
		}
	}
	first := line[0]
	if first.TokType() != tokLetter || !IsNonTerminal(rune(first.Lexeme()[0])) {
		return Rule{}, formatError(text, first.Span(), "left-hand side must be a single capital letter")
	}
	if len(line) < 2 || line[1].TokType() != tokArrow {
		at := first.Span()
		if len(line) >= 2 {
			at = line[1].Span()
		}
		return Rule{}, formatError(text, at, "expected '=>' after left-hand side")
	}
	rhs := line[2:]
	if len(rhs) == 0 {
		return Rule{}, formatError(text, line[1].Span(), "missing right-hand side")
	}
	lhs := rune(first.Lexeme()[0])
	if rhs[0].TokType() == tokEpsilon {
		if len(rhs) > 1 {
			return Rule{}, formatError(text, rhs[1].Span(), "'.' must be the only symbol of the right-hand side")
		}
		return Rule{LHS: lhs}, nil
	}
	var b strings.Builder
	for _, tok := range rhs {
		if tok.TokType() != tokLetter {
			return Rule{}, formatError(text, tok.Span(), fmt.Sprintf("unexpected %q in right-hand side", tok.Lexeme()))
		}
		b.WriteString(tok.Lexeme())
	}
	return Rule{LHS: lhs, RHS: b.String()}, nil
}

func formatError(text string, span formal.Span, msg string) error {
	tracer().Errorf("grammar format error: %s", msg)
	return &formal.FormatError{
		Kind: formal.ErrGrammarFormat,
		Text: text,
		Span: span,
		Msg:  msg,
	}
}
