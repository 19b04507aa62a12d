package grammar

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// === Chomsky Normal Form ===================================================

// TransformToCNF creates a grammar in Chomsky normal form which generates the
// same language as g. g itself is left unchanged.
//
// The transformation runs the following stages, each of which may as well be
// called on its own:
//
//	1. PruneUseless
//	2. IsolateTerminals
//	3. ShortenRules
//	4. EliminateEpsilon
//	5. EliminateChains
//	6. PruneUseless
//
// Stages 2 and 3 introduce fresh non-terminals and will fail with
// formal.ErrSymbolsExhausted if the 26 available symbols do not suffice.
func TransformToCNF(g *Grammar) (*Grammar, error) {
	cnf := g.Clone()
	tracer().Infof("transforming grammar with %d rules to CNF", cnf.Size())
	PruneUseless(cnf)
	if err := IsolateTerminals(cnf); err != nil {
		return nil, err
	}
	if err := ShortenRules(cnf); err != nil {
		return nil, err
	}
	EliminateEpsilon(cnf)
	EliminateChains(cnf)
	PruneUseless(cnf)
	tracer().Infof("CNF grammar has %d rules", cnf.Size())
	return cnf, nil
}

func ntIndex(A rune) uint {
	return uint(A - 'A')
}

// --- Useless symbols -------------------------------------------------------

// PruneUseless removes every rule which cannot take part in a derivation of a
// terminal word from the start symbol. A rule is kept if its left-hand side is
// reachable from the start symbol and each non-terminal of its right-hand side is
// generating, i.e. derives some terminal word.
// Reachability is computed over these productive rules only.
func PruneUseless(g *Grammar) {
	generating := generatingSymbols(g)
	productive := func(r Rule) bool {
		for _, x := range r.RHS {
			if IsNonTerminal(x) && !generating.Test(ntIndex(x)) {
				return false
			}
		}
		return true
	}
	reachable := bitset.New(26)
	reachable.Set(ntIndex(g.start))
	stack := []rune{g.start}
	for len(stack) > 0 {
		A := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, r := range g.rules[A] {
			if !productive(r) {
				continue
			}
			for _, x := range r.RHS {
				if IsNonTerminal(x) && !reachable.Test(ntIndex(x)) {
					reachable.Set(ntIndex(x))
					stack = append(stack, x)
				}
			}
		}
	}
	removed := 0
	for _, r := range g.AllRules() {
		if !reachable.Test(ntIndex(r.LHS)) || !productive(r) {
			tracer().Debugf("removing useless rule %v", r)
			g.RemoveRule(r)
			removed++
		}
	}
	tracer().Debugf("pruned %d useless rules", removed)
}

// generatingSymbols computes the set of non-terminals deriving a terminal word.
// Every rule counts its pending right-hand side non-terminals; a non-terminal is
// generating as soon as one of its rules has no pending symbols left.
func generatingSymbols(g *Grammar) *bitset.BitSet {
	generating := bitset.New(26)
	rules := g.AllRules()
	pending := make([]int, len(rules))
	occurrences := make(map[rune][]int)
	var queue []rune
	mark := func(A rune) {
		if !generating.Test(ntIndex(A)) {
			generating.Set(ntIndex(A))
			queue = append(queue, A)
		}
	}
	for i, r := range rules {
		for _, x := range r.RHS {
			if IsNonTerminal(x) {
				pending[i]++
				occurrences[x] = append(occurrences[x], i)
			}
		}
		if pending[i] == 0 {
			mark(r.LHS)
		}
	}
	for len(queue) > 0 {
		A := queue[0]
		queue = queue[1:]
		for _, i := range occurrences[A] {
			pending[i]--
			if pending[i] == 0 {
				mark(rules[i].LHS)
			}
		}
	}
	return generating
}

// --- Terminals -------------------------------------------------------------

// IsolateTerminals replaces terminals in right-hand sides of length 2 or more by
// non-terminal aliases. Each terminal gets a single fresh alias T with rule T => t.
func IsolateTerminals(g *Grammar) error {
	alias := make(map[rune]rune)
	var minted []rune
	for _, r := range g.AllRules() {
		if len(r.RHS) < 2 || strings.IndexFunc(r.RHS, IsTerminal) < 0 {
			continue
		}
		var b strings.Builder
		for _, x := range r.RHS {
			if !IsTerminal(x) {
				b.WriteRune(x)
				continue
			}
			T, ok := alias[x]
			if !ok {
				var err error
				if T, err = g.FreshNonTerminal(); err != nil {
					return err
				}
				alias[x] = T
				minted = append(minted, x)
			}
			b.WriteRune(T)
		}
		g.RemoveRule(r)
		g.AddRule(Rule{LHS: r.LHS, RHS: b.String()})
	}
	for _, t := range minted {
		g.AddRule(Rule{LHS: alias[t], RHS: string(t)})
	}
	tracer().Debugf("isolated %d terminals", len(minted))
	return nil
}

// --- Long rules ------------------------------------------------------------

// ShortenRules splits rules A => X1 X2 … Xn with n > 2 into a chain
// A => X1 N1, N1 => X2 N2, …, Nn-2 => Xn-1 Xn of fresh non-terminals.
func ShortenRules(g *Grammar) error {
	for _, r := range g.AllRules() {
		if len(r.RHS) <= 2 {
			continue
		}
		g.RemoveRule(r)
		lhs, rhs := r.LHS, r.RHS
		for len(rhs) > 2 {
			N, err := g.FreshNonTerminal()
			if err != nil {
				return err
			}
			g.AddRule(Rule{LHS: lhs, RHS: rhs[:1] + string(N)})
			lhs, rhs = N, rhs[1:]
		}
		g.AddRule(Rule{LHS: lhs, RHS: rhs})
	}
	return nil
}

// --- Epsilon rules ---------------------------------------------------------

// EliminateEpsilon removes all epsilon-rules from a grammar whose right-hand sides
// have length 2 at most. For every rule A => XY with a nullable symbol the
// shortened alternatives are added:
//
//	X nullable, Y not:  A => Y
//	Y nullable, X not:  A => X
//	both nullable:      A => X and A => Y, for X and Y having a non-empty rule
//
// If the start symbol is nullable, S => ε is re-added afterwards.
func EliminateEpsilon(g *Grammar) {
	nullable := nullableSymbols(g)
	isNullable := func(x rune) bool {
		return IsNonTerminal(x) && nullable.Test(ntIndex(x))
	}
	hasNonEmpty := func(x rune) bool {
		for _, r := range g.rules[x] {
			if !r.IsEpsilon() {
				return true
			}
		}
		return false
	}
	rules := g.AllRules()
	var added []Rule
	for _, r := range rules {
		if len(r.RHS) != 2 {
			continue
		}
		X, Y := rune(r.RHS[0]), rune(r.RHS[1])
		switch nx, ny := isNullable(X), isNullable(Y); {
		case nx && ny:
			if hasNonEmpty(X) {
				added = append(added, Rule{LHS: r.LHS, RHS: string(X)})
			}
			if hasNonEmpty(Y) {
				added = append(added, Rule{LHS: r.LHS, RHS: string(Y)})
			}
		case nx:
			added = append(added, Rule{LHS: r.LHS, RHS: string(Y)})
		case ny:
			added = append(added, Rule{LHS: r.LHS, RHS: string(X)})
		}
	}
	for _, r := range added {
		g.AddRule(r)
	}
	for _, r := range rules {
		if r.IsEpsilon() {
			g.RemoveRule(r)
		}
	}
	if nullable.Test(ntIndex(g.start)) {
		g.AddRule(Rule{LHS: g.start})
	}
	tracer().Debugf("nullable symbols: %s", symbolSet(nullable))
}

// nullableSymbols computes the set of non-terminals deriving the empty word.
func nullableSymbols(g *Grammar) *bitset.BitSet {
	nullable := bitset.New(26)
	for changed := true; changed; {
		changed = false
		for _, r := range g.AllRules() {
			if nullable.Test(ntIndex(r.LHS)) {
				continue
			}
			if strings.IndexFunc(r.RHS, func(x rune) bool {
				return !IsNonTerminal(x) || !nullable.Test(ntIndex(x))
			}) < 0 {
				nullable.Set(ntIndex(r.LHS))
				changed = true
			}
		}
	}
	return nullable
}

// --- Chain rules -----------------------------------------------------------

// EliminateChains replaces chain rules A => B. Every non-terminal A receives the
// non-chain rules of all non-terminals reachable from A via chain rules.
// Epsilon-rules are not propagated along chains.
func EliminateChains(g *Grammar) {
	replacement := make(map[rune][]Rule)
	for _, A := range g.NonTerminals() {
		visited := bitset.New(26)
		visited.Set(ntIndex(A))
		queue := []rune{A}
		for len(queue) > 0 {
			B := queue[0]
			queue = queue[1:]
			for _, r := range g.rules[B] {
				switch {
				case r.IsChain():
					C := rune(r.RHS[0])
					if !visited.Test(ntIndex(C)) {
						visited.Set(ntIndex(C))
						queue = append(queue, C)
					}
				case r.IsEpsilon() && B != A:
				default:
					replacement[A] = append(replacement[A], Rule{LHS: A, RHS: r.RHS})
				}
			}
		}
	}
	for _, r := range g.AllRules() {
		g.RemoveRule(r)
	}
	for A := 'A'; A <= 'Z'; A++ {
		for _, r := range replacement[A] {
			g.AddRule(r)
		}
	}
}

// --- Start rule ------------------------------------------------------------

// SingleStartRule rewrites g such that the start symbol S has exactly one rule
// S => N, with N a non-terminal. If this is already the case, g is left unchanged.
// Otherwise the rules of S are moved to a fresh non-terminal N.
func SingleStartRule(g *Grammar) error {
	S := g.start
	rs := g.Rules(S)
	if len(rs) == 1 && rs[0].IsChain() {
		return nil
	}
	N, err := g.FreshNonTerminal()
	if err != nil {
		return err
	}
	for _, r := range rs {
		g.RemoveRule(r)
		g.AddRule(Rule{LHS: N, RHS: r.RHS})
	}
	g.AddRule(Rule{LHS: S, RHS: string(N)})
	return nil
}

func symbolSet(set *bitset.BitSet) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		b.WriteRune('A' + rune(i))
	}
	b.WriteByte('}')
	return b.String()
}
