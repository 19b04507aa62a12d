package regex

import (
	"fmt"

	"github.com/npillmayer/formal"
)

// ParseRPN reads an expression in reverse Polish notation. Letters a…z push a
// letter, '1' pushes the empty word and '0' the empty language; '.' and '+' pop two
// operands for concatenation and union, '*' pops one operand for the star.
// Blanks are ignored.
func ParseRPN(text string) (*Node, error) {
	var stack []*Node
	pop := func() *Node {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}
	for pos, c := range text {
		need := 0
		switch c {
		case '.', '+':
			need = 2
		case '*':
			need = 1
		}
		if len(stack) < need {
			return nil, rpnError(text, pos, fmt.Sprintf("not enough operands for '%c'", c))
		}
		switch {
		case c == ' ' || c == '\t':
		case c == '.':
			b, a := pop(), pop()
			stack = append(stack, Cat(a, b))
		case c == '+':
			b, a := pop(), pop()
			stack = append(stack, Or(a, b))
		case c == '*':
			stack = append(stack, Closure(pop()))
		case c == '1':
			stack = append(stack, Eps())
		case c == '0':
			stack = append(stack, Empty())
		case c >= 'a' && c <= 'z':
			stack = append(stack, Lit(c))
		default:
			return nil, rpnError(text, pos, fmt.Sprintf("illegal character %q", c))
		}
	}
	switch len(stack) {
	case 0:
		return nil, rpnError(text, len(text), "empty expression")
	case 1:
		return stack[0], nil
	}
	return nil, rpnError(text, len(text), fmt.Sprintf("%d unused operands left", len(stack)-1))
}

func rpnError(text string, pos int, msg string) error {
	tracer().Errorf("RPN expression %q: %s", text, msg)
	return &formal.FormatError{
		Kind: formal.ErrRegexpFormat,
		Text: text,
		Span: formal.Span{uint64(pos), uint64(pos + 1)},
		Msg:  msg,
	}
}
