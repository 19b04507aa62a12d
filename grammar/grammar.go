package grammar

import (
	"fmt"
	"strings"

	"github.com/npillmayer/formal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultStart is the start symbol of grammars not configured otherwise.
const DefaultStart = 'S'

// IsNonTerminal is true for the capital letters A…Z.
func IsNonTerminal(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsTerminal is true for the lower case letters a…z.
func IsTerminal(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// --- Rules -----------------------------------------------------------------

// Rule is a production LHS => RHS. An empty RHS denotes an epsilon-rule.
type Rule struct {
	LHS rune
	RHS string
}

// NewRule creates a rule, checking that lhs is a non-terminal and rhs consists of
// letters only.
func NewRule(lhs rune, rhs string) (Rule, error) {
	if !IsNonTerminal(lhs) {
		return Rule{}, fmt.Errorf("%w: left-hand side %q is not a non-terminal", formal.ErrGrammarFormat, lhs)
	}
	for _, r := range rhs {
		if !IsNonTerminal(r) && !IsTerminal(r) {
			return Rule{}, fmt.Errorf("%w: right-hand side %q contains %q", formal.ErrGrammarFormat, rhs, r)
		}
	}
	return Rule{LHS: lhs, RHS: rhs}, nil
}

// MustRule is like NewRule, but panics on malformed input.
func MustRule(lhs rune, rhs string) Rule {
	r, err := NewRule(lhs, rhs)
	if err != nil {
		panic(err)
	}
	return r
}

// IsEpsilon is true for rules with an empty right-hand side.
func (r Rule) IsEpsilon() bool {
	return r.RHS == ""
}

// IsChain is true for rules of the form A => B.
func (r Rule) IsChain() bool {
	return len(r.RHS) == 1 && IsNonTerminal(rune(r.RHS[0]))
}

// String returns a rule in the notation of the textual grammar format.
func (r Rule) String() string {
	if r.IsEpsilon() {
		return fmt.Sprintf("%c => .", r.LHS)
	}
	return fmt.Sprintf("%c => %s", r.LHS, r.RHS)
}

// --- Grammars --------------------------------------------------------------

// Grammar is a context-free grammar. Rules are grouped by their left-hand side;
// within a group, rules keep their insertion order.
type Grammar struct {
	start    rune
	rules    map[rune][]Rule
	refcnt   [26]int  // occurrences of non-terminals in rules
	reserved [26]bool // handed out by FreshNonTerminal
}

// Option configures a grammar.
type Option func(g *Grammar)

// WithStart sets the start symbol of a grammar. Default is 'S'.
func WithStart(s rune) Option {
	return func(g *Grammar) {
		if IsNonTerminal(s) {
			g.start = s
		}
	}
}

// New creates an empty grammar.
func New(opts ...Option) *Grammar {
	g := &Grammar{
		start: DefaultStart,
		rules: make(map[rune][]Rule),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start returns the start symbol.
func (g *Grammar) Start() rune {
	return g.start
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	n := 0
	for _, rs := range g.rules {
		n += len(rs)
	}
	return n
}

// Contains checks if a rule is part of g.
func (g *Grammar) Contains(r Rule) bool {
	return slices.Index(g.rules[r.LHS], r) >= 0
}

// AddRule adds a rule to g. It returns false if the rule already has been present.
func (g *Grammar) AddRule(r Rule) bool {
	if g.Contains(r) {
		return false
	}
	g.rules[r.LHS] = append(g.rules[r.LHS], r)
	g.count(r, 1)
	return true
}

// RemoveRule removes a rule from g. It returns false if the rule has not been present.
func (g *Grammar) RemoveRule(r Rule) bool {
	rs := g.rules[r.LHS]
	i := slices.Index(rs, r)
	if i < 0 {
		return false
	}
	rs = slices.Delete(rs, i, i+1)
	if len(rs) == 0 {
		delete(g.rules, r.LHS)
	} else {
		g.rules[r.LHS] = rs
	}
	g.count(r, -1)
	return true
}

func (g *Grammar) count(r Rule, n int) {
	g.refcnt[r.LHS-'A'] += n
	for _, x := range r.RHS {
		if IsNonTerminal(x) {
			g.refcnt[x-'A'] += n
		}
	}
}

// Rules returns the rules for a non-terminal, in insertion order.
func (g *Grammar) Rules(lhs rune) []Rule {
	return slices.Clone(g.rules[lhs])
}

// NonTerminals returns all non-terminals having at least one rule, in alphabetical order.
func (g *Grammar) NonTerminals() []rune {
	nts := maps.Keys(g.rules)
	slices.Sort(nts)
	return nts
}

// AllRules returns all rules of g, ordered by left-hand side and then by insertion.
func (g *Grammar) AllRules() []Rule {
	var all []Rule
	for _, A := range g.NonTerminals() {
		all = append(all, g.rules[A]...)
	}
	return all
}

// IsUsed is true if a non-terminal occurs in any rule of g or if it has been
// handed out by FreshNonTerminal.
func (g *Grammar) IsUsed(A rune) bool {
	if !IsNonTerminal(A) {
		return false
	}
	return A == g.start || g.refcnt[A-'A'] > 0 || g.reserved[A-'A']
}

// FreshNonTerminal returns the lowest non-terminal not yet in use and marks it as used.
// If all 26 non-terminals are in use, formal.ErrSymbolsExhausted is returned.
func (g *Grammar) FreshNonTerminal() (rune, error) {
	for A := 'A'; A <= 'Z'; A++ {
		if !g.IsUsed(A) {
			g.reserved[A-'A'] = true
			tracer().Debugf("fresh non-terminal %c", A)
			return A, nil
		}
	}
	tracer().Errorf("cannot create fresh non-terminal for grammar with %d rules", g.Size())
	return 0, formal.ErrSymbolsExhausted
}

// IsCNF checks if g is in Chomsky normal form: every rule is either A => BC, A => a,
// or S => ε for the start symbol S.
func (g *Grammar) IsCNF() bool {
	for _, r := range g.AllRules() {
		switch len(r.RHS) {
		case 0:
			if r.LHS != g.start {
				return false
			}
		case 1:
			if !IsTerminal(rune(r.RHS[0])) {
				return false
			}
		case 2:
			if !IsNonTerminal(rune(r.RHS[0])) || !IsNonTerminal(rune(r.RHS[1])) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Clone returns a deep copy of g.
func (g *Grammar) Clone() *Grammar {
	c := &Grammar{
		start:    g.start,
		rules:    make(map[rune][]Rule, len(g.rules)),
		refcnt:   g.refcnt,
		reserved: g.reserved,
	}
	for A, rs := range g.rules {
		c.rules[A] = slices.Clone(rs)
	}
	return c
}

// String lists the rules of g, one per line, in the textual grammar format.
func (g *Grammar) String() string {
	var b strings.Builder
	for _, r := range g.AllRules() {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}
