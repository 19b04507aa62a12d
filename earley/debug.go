package earley

import (
	"strconv"
	"strings"
)

func (p *Parser) dumpChart(j int) {
	tracer().Debugf("--- Chart %04d ------------------------------------", j)
	for n, it := range p.charts[j].order {
		tracer().Debugf("[%2d] %s", n+1, p.itemString(it))
	}
}

// itemString renders an item as "X => a•Yb (origin)".
func (p *Parser) itemString(it item) string {
	r := p.rules[it.rule]
	var b strings.Builder
	b.WriteRune(r.LHS)
	b.WriteString(" => ")
	b.WriteString(r.RHS[:it.dot])
	b.WriteString("•")
	b.WriteString(r.RHS[it.dot:])
	b.WriteString(" (")
	b.WriteString(strconv.Itoa(it.origin))
	b.WriteString(")")
	return b.String()
}

// ChartSizes returns the number of items per input position of the most recent
// parse.
func (p *Parser) ChartSizes() []int {
	sizes := make([]int, len(p.charts))
	for i, c := range p.charts {
		sizes[i] = c.size()
	}
	return sizes
}
