package regex

import "strings"

// Kind is the kind of an AST node.
type Kind int8

// Node kinds.
const (
	EmptySet Kind = iota // the empty language
	Letter               // a single letter
	Epsilon              // the empty word
	Union                // Left + Right
	Concat               // Left Right
	Star                 // Left*
)

func (k Kind) String() string {
	switch k {
	case EmptySet:
		return "EmptySet"
	case Letter:
		return "Letter"
	case Epsilon:
		return "Epsilon"
	case Union:
		return "Union"
	case Concat:
		return "Concat"
	case Star:
		return "Star"
	}
	return "?"
}

// Node is a node of a regular expression AST. Letter is set for nodes of kind
// Letter; Left is set for Union, Concat and Star, Right for Union and Concat.
type Node struct {
	Kind   Kind
	Letter rune
	Left   *Node
	Right  *Node
}

// Empty returns an expression for the empty language.
func Empty() *Node { return &Node{Kind: EmptySet} }

// Lit returns an expression for a single letter.
func Lit(r rune) *Node { return &Node{Kind: Letter, Letter: r} }

// Eps returns an expression for the empty word.
func Eps() *Node { return &Node{Kind: Epsilon} }

// Or returns the union of two expressions.
func Or(a, b *Node) *Node { return &Node{Kind: Union, Left: a, Right: b} }

// Cat returns the concatenation of two expressions.
func Cat(a, b *Node) *Node { return &Node{Kind: Concat, Left: a, Right: b} }

// Closure returns the Kleene star of an expression.
func Closure(a *Node) *Node { return &Node{Kind: Star, Left: a} }

// String returns an expression in infix notation, with '0' for the empty language
// and '1' for the empty word.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

// precedence levels: union < concatenation < star
func (n *Node) write(b *strings.Builder, outer int) {
	prec := 3
	switch n.Kind {
	case Union:
		prec = 1
	case Concat:
		prec = 2
	}
	if prec < outer {
		b.WriteByte('(')
		defer b.WriteByte(')')
	}
	switch n.Kind {
	case EmptySet:
		b.WriteByte('0')
	case Letter:
		b.WriteRune(n.Letter)
	case Epsilon:
		b.WriteByte('1')
	case Union:
		n.Left.write(b, 1)
		b.WriteByte('+')
		n.Right.write(b, 1)
	case Concat:
		n.Left.write(b, 2)
		n.Right.write(b, 2)
	case Star:
		n.Left.write(b, 3)
		b.WriteByte('*')
	}
}
