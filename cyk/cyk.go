/*
Package cyk implements the Cocke–Younger–Kasami recognizer for context-free
grammars in Chomsky normal form.

	g, _ := grammar.Parse("S => AB\nA => a\nB => b")
	p, err := cyk.NewParser(g)   // fails for grammars not in CNF
	p.Parse("ab")                // true

Grammars may be transformed to Chomsky normal form by grammar.TransformToCNF.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"fmt"

	"github.com/npillmayer/formal"
	"github.com/npillmayer/formal/grammar"
	"github.com/npillmayer/formal/sparse"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formal.parse'.
func tracer() tracing.Trace {
	return tracing.Select("formal.parse")
}

// binaryRule is a rule A => BC, with symbols as bit masks.
type binaryRule struct {
	lhs, left, right uint32
}

// Parser is a CYK recognizer for a grammar in Chomsky normal form.
type Parser struct {
	start     uint32
	nullable  bool            // S => ε is a rule
	terminals map[rune]uint32 // a -> { A | A => a }
	binary    []binaryRule
}

func bit(A rune) uint32 {
	return 1 << uint(A-'A')
}

// NewParser creates a recognizer for a grammar, which has to be in Chomsky
// normal form. Otherwise formal.ErrNotCNF is returned.
func NewParser(g *grammar.Grammar) (*Parser, error) {
	if !g.IsCNF() {
		tracer().Errorf("CYK parser needs grammar in CNF")
		return nil, fmt.Errorf("%w: cannot create CYK parser", formal.ErrNotCNF)
	}
	p := &Parser{
		start:     bit(g.Start()),
		terminals: make(map[rune]uint32),
	}
	for _, r := range g.AllRules() {
		switch len(r.RHS) {
		case 0:
			p.nullable = true
		case 1:
			p.terminals[rune(r.RHS[0])] |= bit(r.LHS)
		case 2:
			p.binary = append(p.binary, binaryRule{
				lhs:   bit(r.LHS),
				left:  bit(rune(r.RHS[0])),
				right: bit(rune(r.RHS[1])),
			})
		}
	}
	return p, nil
}

// Parse checks if word is in the language of the parser's grammar.
// The empty word is accepted iff the grammar has the rule S => ε.
func (p *Parser) Parse(word string) bool {
	input := []rune(word)
	n := len(input)
	if n == 0 {
		return p.nullable
	}
	// table(i,j) is the set of non-terminals deriving input[i…j]
	table := sparse.NewBitMatrix(n, n)
	for i, c := range input {
		if nts := p.terminals[c]; nts != 0 {
			table.Set(i, i, nts)
		}
	}
	for length := 2; length <= n; length++ {
		for i := 0; i+length <= n; i++ {
			j := i + length - 1
			var nts uint32
			for k := i; k < j; k++ {
				left, right := table.Value(i, k), table.Value(k+1, j)
				if left == 0 || right == 0 {
					continue
				}
				for _, r := range p.binary {
					if left&r.left != 0 && right&r.right != 0 {
						nts |= r.lhs
					}
				}
			}
			table.Set(i, j, nts)
		}
	}
	tracer().Debugf("CYK table for %q: %s", word, table)
	return table.Value(0, n-1)&p.start != 0
}
