package automaton

import (
	"strings"
)

// === State elimination =====================================================

// EpsilonExpr denotes the empty word in synthesized regular expressions.
const EpsilonExpr = "1"

// NFAToRegexp synthesizes a regular expression for the language of a by state
// elimination. If a has no initial or no final state, or no final state can be
// reached, the language is empty and ok is false.
//
// The expression uses '+' for union, juxtaposition for concatenation, '*' for
// Kleene star and "1" for the empty word. Sub-expressions containing '+' or '*'
// are parenthesized when concatenated.
//
// a is consumed by the algorithm. When it returns, a consists of the initial and
// the final state, connected by a single transition labelled with the result.
func NFAToRegexp(a *Automaton) (re string, ok bool) {
	init, hasInit := a.Initial()
	finals := a.Finals()
	if !hasInit || len(finals) == 0 {
		tracer().Infof("automaton accepts the empty language")
		return "", false
	}
	final := finals[0]
	if len(finals) > 1 || final == init {
		final = a.InsertState()
		for _, f := range finals {
			a.AddTransition(f, Epsilon, final)
			a.UnmarkFinal(f)
		}
		a.MarkFinal(final)
	}
	for _, s := range a.States() {
		for _, t := range a.Transitions(s) {
			if t.Label == Epsilon {
				a.RemoveTransition(s, Epsilon, t.To)
				a.AddTransition(s, EpsilonExpr, t.To)
			}
		}
	}
	for _, s := range a.States() {
		a.joinParallel(s)
	}
	for {
		victim := NoState
		for _, s := range a.States() {
			if s != init && s != final {
				victim = s
				break
			}
		}
		if victim == NoState {
			break
		}
		a.eliminate(victim)
	}
	re, ok = compose(a, init, final)
	for _, t := range a.Transitions(init) {
		a.RemoveTransition(init, t.Label, t.To)
	}
	for _, t := range a.Transitions(final) {
		a.RemoveTransition(final, t.Label, t.To)
	}
	if ok {
		a.AddTransition(init, re, final)
	}
	tracer().Debugf("regular expression = %q", re)
	return re, ok
}

// eliminate removes state v, bridging every pair of incoming and outgoing
// transitions by a shortcut transition.
func (a *Automaton) eliminate(v StateID) {
	var in, out []Transition
	loopLabel := ""
	for _, t := range a.mustState(v).out {
		if t.To == v {
			loopLabel = t.Label
		} else {
			out = append(out, t)
		}
	}
	for _, t := range a.mustState(v).in {
		if t.To != v {
			in = append(in, t)
		}
	}
	for _, i := range in {
		for _, o := range out {
			a.AddTransition(i.To, shortcut(i.Label, loopLabel, o.Label), o.To)
		}
	}
	a.RemoveState(v)
	for _, i := range in {
		a.joinParallel(i.To)
	}
	tracer().Debugf("eliminated state %d, %d states left", v, a.Size())
}

// shortcut is the label of a path in --x--> v --y--> out, where v may have a
// loop. An empty loop label means there is no loop.
func shortcut(x, loop, y string) string {
	if loop == EpsilonExpr {
		loop = ""
	}
	switch {
	case loop == "" && y == EpsilonExpr:
		return x
	case loop == "" && x == EpsilonExpr:
		return y
	case loop == "":
		return bracket(x) + bracket(y)
	case x == EpsilonExpr && y == EpsilonExpr:
		return star(loop)
	case x == EpsilonExpr:
		return star(loop) + bracket(y)
	case y == EpsilonExpr:
		return bracket(x) + star(loop)
	}
	return bracket(x) + star(loop) + bracket(y)
}

// joinParallel merges transitions from s sharing a destination into a single
// transition, labelled by the union of their labels.
func (a *Automaton) joinParallel(s StateID) {
	var order []StateID
	labels := make(map[StateID][]string)
	for _, t := range a.mustState(s).out {
		if _, ok := labels[t.To]; !ok {
			order = append(order, t.To)
		}
		labels[t.To] = append(labels[t.To], t.Label)
	}
	for _, dst := range order {
		if len(labels[dst]) < 2 {
			continue
		}
		for _, l := range labels[dst] {
			a.RemoveTransition(s, l, dst)
		}
		a.AddTransition(s, strings.Join(labels[dst], "+"), dst)
	}
}

// compose builds the expression for a two-state automaton
//
//	     Rif
//	i ---------> f       i: initial, f: final
//	  <---------
//	     Rfi
//
// with optional loops Rii and Rff.
func compose(a *Automaton, i, f StateID) (string, bool) {
	label := func(src, dst StateID) string {
		for _, t := range a.mustState(src).out {
			if t.To == dst {
				return t.Label
			}
		}
		return ""
	}
	loop := func(s StateID) string {
		if l := label(s, s); l != EpsilonExpr && l != "" {
			return star(l)
		}
		return ""
	}
	Rif, Rfi := label(i, f), label(f, i)
	if Rif == "" {
		return "", false
	}
	re := concat(loop(i), bracket(Rif), loop(f))
	if Rfi != "" {
		re = concat(re, star(concat(bracket(Rfi), loop(i), bracket(Rif), loop(f))))
	}
	return re, true
}

// concat concatenates expressions, dropping factors denoting the empty word.
func concat(x ...string) string {
	var b strings.Builder
	for _, e := range x {
		if e != EpsilonExpr {
			b.WriteString(e)
		}
	}
	if b.Len() == 0 {
		return EpsilonExpr
	}
	return b.String()
}

func star(x string) string {
	return "(" + x + ")*"
}

func bracket(x string) string {
	if strings.ContainsAny(x, "+*") {
		return "(" + x + ")"
	}
	return x
}
