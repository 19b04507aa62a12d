/*
Package earley implements an Earley recognizer for arbitrary context-free
grammars.

The grammar's start symbol S has to have exactly one rule, S => N, with N being a
non-terminal. Grammars not meeting this requirement may be adapted by
grammar.SingleStartRule.

	g, _ := grammar.Parse("S => X\nX => XaXb\nX => .")
	p, err := earley.NewParser(g)
	p.Parse("aabb")   // true

Items of the recognizer are stored in one chart per input position, indexed by the
symbol after the dot. Epsilon rules are handled during prediction: predicting a
non-terminal which has already been completed with an empty span at the current
position advances the predicting item right away.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earley

import (
	"fmt"

	"github.com/npillmayer/formal"
	"github.com/npillmayer/formal/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formal.parse'.
func tracer() tracing.Trace {
	return tracing.Select("formal.parse")
}

// Parser is an Earley recognizer. A parser is not safe for concurrent use, as it
// keeps the charts of the last parse for inspection.
type Parser struct {
	rules  []grammar.Rule
	byLHS  map[rune][]int // indices of rules per non-terminal
	start  int            // index of the start rule
	charts []*chart       // charts of the most recent parse
}

// NewParser creates a recognizer for a grammar. If the start symbol does not have
// exactly one rule S => N, with N a non-terminal, formal.ErrBadStartRule is
// returned.
func NewParser(g *grammar.Grammar) (*Parser, error) {
	startRules := g.Rules(g.Start())
	if len(startRules) != 1 || !startRules[0].IsChain() {
		tracer().Errorf("Earley parser: start symbol %c has %d rules, needs S => N",
			g.Start(), len(startRules))
		return nil, fmt.Errorf("%w: %c has rules %v", formal.ErrBadStartRule, g.Start(), startRules)
	}
	p := &Parser{
		rules: g.AllRules(),
		byLHS: make(map[rune][]int),
	}
	for i, r := range p.rules {
		p.byLHS[r.LHS] = append(p.byLHS[r.LHS], i)
		if r == startRules[0] {
			p.start = i
		}
	}
	return p, nil
}

// Parse checks if word is in the language of the parser's grammar.
func (p *Parser) Parse(word string) bool {
	input := []rune(word)
	n := len(input)
	p.charts = make([]*chart, n+1)
	for i := range p.charts {
		p.charts[i] = newChart()
	}
	p.add(0, item{rule: p.start})
	for j := 0; j <= n; j++ {
		if j > 0 {
			p.scan(j, input[j-1])
		}
		p.closure(j)
		if p.charts[j].size() == 0 {
			tracer().Debugf("no items at position %d, giving up", j)
			return false
		}
		if tracer().GetTraceLevel() == tracing.LevelDebug {
			p.dumpChart(j)
		}
	}
	accept := item{rule: p.start, dot: 1, origin: 0, pos: n}
	return p.charts[n].contains(accept)
}

// scan advances all items at position j-1 which expect terminal c.
func (p *Parser) scan(j int, c rune) {
	if !grammar.IsTerminal(c) {
		return
	}
	for _, it := range p.charts[j-1].waitingFor(c) {
		p.add(j, it.advance(j))
	}
}

// closure applies prediction and completion to the items at position j until no
// new items are produced. Items added during the loop are processed as well.
func (p *Parser) closure(j int) {
	ch := p.charts[j]
	for i := 0; i < len(ch.order); i++ {
		it := ch.order[i]
		r := p.rules[it.rule]
		if it.dot == len(r.RHS) { // complete
			if it.origin == j {
				ch.nullable[r.LHS] = true
			}
			for _, parent := range p.charts[it.origin].waitingFor(r.LHS) {
				p.add(j, parent.advance(j))
			}
			continue
		}
		X := rune(r.RHS[it.dot])
		if !grammar.IsNonTerminal(X) {
			continue
		}
		for _, k := range p.byLHS[X] { // predict
			p.add(j, item{rule: k, origin: j, pos: j})
		}
		if ch.nullable[X] {
			p.add(j, it.advance(j))
		}
	}
}

// add inserts an item into the chart at position j, indexed by the symbol after
// its dot.
func (p *Parser) add(j int, it item) {
	r := p.rules[it.rule]
	next := completed
	if it.dot < len(r.RHS) {
		next = rune(r.RHS[it.dot])
	}
	if p.charts[j].add(it, next) {
		tracer().Debugf("chart %d: added %s", j, p.itemString(it))
	}
}
