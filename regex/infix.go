package regex

import (
	"fmt"

	"github.com/npillmayer/formal"
)

// ParseInfix reads an expression in infix notation: '+' for union, juxtaposition
// for concatenation, postfix '*' for the star, '1' for the empty word and '0' for
// the empty language. Parentheses group sub-expressions.
func ParseInfix(text string) (*Node, error) {
	p := &infixParser{text: []rune(text), src: text}
	n, err := p.union()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.text) {
		return nil, p.errorf("unexpected '%c'", p.text[p.pos])
	}
	return n, nil
}

// infixParser is a recursive descent parser for
//
//	union  = concat { '+' concat }
//	concat = factor { factor }
//	factor = atom { '*' }
//	atom   = letter | '1' | '0' | '(' union ')'
type infixParser struct {
	text []rune
	src  string
	pos  int
}

func (p *infixParser) peek() (rune, bool) {
	if p.pos < len(p.text) {
		return p.text[p.pos], true
	}
	return 0, false
}

func (p *infixParser) union() (*Node, error) {
	n, err := p.concat()
	if err != nil {
		return nil, err
	}
	for c, ok := p.peek(); ok && c == '+'; c, ok = p.peek() {
		p.pos++
		m, err := p.concat()
		if err != nil {
			return nil, err
		}
		n = Or(n, m)
	}
	return n, nil
}

func (p *infixParser) concat() (*Node, error) {
	var n *Node
	for c, ok := p.peek(); ok && c != '+' && c != ')'; c, ok = p.peek() {
		m, err := p.factor()
		if err != nil {
			return nil, err
		}
		if n == nil {
			n = m
		} else {
			n = Cat(n, m)
		}
	}
	if n == nil {
		return nil, p.errorf("missing operand")
	}
	return n, nil
}

func (p *infixParser) factor() (*Node, error) {
	n, err := p.atom()
	if err != nil {
		return nil, err
	}
	for c, ok := p.peek(); ok && c == '*'; c, ok = p.peek() {
		p.pos++
		n = Closure(n)
	}
	return n, nil
}

func (p *infixParser) atom() (*Node, error) {
	c, _ := p.peek()
	p.pos++
	switch {
	case c == '(':
		n, err := p.union()
		if err != nil {
			return nil, err
		}
		if c, ok := p.peek(); !ok || c != ')' {
			return nil, p.errorf("missing ')'")
		}
		p.pos++
		return n, nil
	case c == '1':
		return Eps(), nil
	case c == '0':
		return Empty(), nil
	case c >= 'a' && c <= 'z':
		return Lit(c), nil
	}
	p.pos--
	return nil, p.errorf("unexpected '%c'", c)
}

func (p *infixParser) errorf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("infix expression %q: %s", p.src, msg)
	return &formal.FormatError{
		Kind: formal.ErrRegexpFormat,
		Text: p.src,
		Span: formal.Span{uint64(p.pos), uint64(p.pos + 1)},
		Msg:  msg,
	}
}
