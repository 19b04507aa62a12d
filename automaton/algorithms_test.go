package automaton

import (
	"errors"
	"testing"

	"github.com/npillmayer/formal"
	"github.com/npillmayer/formal/regex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type edge struct {
	from  int
	label string
	to    int
}

// build creates an automaton over {a,b} with states 0…n-1.
func build(t *testing.T, n int, initial int, finals []int, edges ...edge) *Automaton {
	t.Helper()
	a := New("ab")
	for i := 0; i < n; i++ {
		a.InsertState()
	}
	a.MarkInitial(StateID(initial))
	for _, f := range finals {
		a.MarkFinal(StateID(f))
	}
	for _, e := range edges {
		if err := a.AddTransition(StateID(e.from), e.label, StateID(e.to)); err != nil {
			t.Fatal(err)
		}
	}
	return a
}

// words enumerates all words over {a,b} up to length n.
func words(n int) []string {
	all := []string{""}
	level := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range level {
			next = append(next, w+"a", w+"b")
		}
		all = append(all, next...)
		level = next
	}
	return all
}

func makeDFA(t *testing.T, a *Automaton) *Automaton {
	t.Helper()
	if err := RemoveEpsilonTransitions(a); err != nil {
		t.Fatal(err)
	}
	dfa, err := TransformToDFA(a)
	if err != nil {
		t.Fatal(err)
	}
	if !dfa.IsDeterministic() {
		t.Fatalf("expected result of subset construction to be deterministic")
	}
	return dfa
}

func expectWords(t *testing.T, a *Automaton, accept bool, ws ...string) {
	t.Helper()
	for _, w := range ws {
		ok, err := ReadWord(a, w)
		if err != nil {
			t.Fatal(err)
		}
		if ok != accept {
			t.Errorf("expected ReadWord(%q) = %v", w, accept)
		}
	}
}

// expectSameLanguage compares two DFAs on all words up to length n.
func expectSameLanguage(t *testing.T, a, b *Automaton, n int) {
	t.Helper()
	for _, w := range words(n) {
		x, _ := ReadWord(a, w)
		y, _ := ReadWord(b, w)
		if x != y {
			t.Errorf("automata differ on %q: %v vs %v", w, x, y)
			return
		}
	}
}

// expectRegexpLanguage compares a DFA and a synthesized expression on all words
// up to length n.
func expectRegexpLanguage(t *testing.T, dfa *Automaton, re string, n int) {
	t.Helper()
	expr, err := regex.ParseInfix(re)
	if err != nil {
		t.Fatalf("cannot read synthesized expression %q: %v", re, err)
	}
	m := regex.Compile(expr)
	for _, w := range words(n) {
		x, _ := ReadWord(dfa, w)
		if m.Match(w) != x {
			t.Errorf("expression %q and automaton differ on %q", re, w)
			return
		}
	}
}

// --- Scenarios -------------------------------------------------------------

func test1(t *testing.T) *Automaton {
	return build(t, 7, 0, []int{3, 6},
		edge{0, "a", 1}, edge{1, "b", 2}, edge{2, "a", 3},
		edge{0, "a", 4}, edge{4, "a", 5}, edge{5, "b", 6},
	)
}

func hw3task1(t *testing.T) *Automaton {
	return build(t, 8, 0, []int{4, 5, 7},
		edge{0, "a", 1}, edge{0, "b", 2},
		edge{1, "b", 3}, edge{2, "a", 3}, edge{3, "", 0},
		edge{0, "", 4}, edge{0, "a", 5},
		edge{0, "b", 6}, edge{6, "a", 7},
	)
}

func hw4task5(t *testing.T) *Automaton {
	return build(t, 6, 0, []int{1},
		edge{0, "a", 1}, edge{1, "a", 1}, edge{1, "", 2},
		edge{2, "b", 3}, edge{3, "a", 2}, edge{2, "a", 4},
		edge{4, "a", 5}, edge{5, "b", 4}, edge{4, "", 1},
	)
}

func hw4task6(t *testing.T) *Automaton {
	return build(t, 6, 0, []int{4},
		edge{0, "a", 1}, edge{1, "a", 2}, edge{1, "b", 3},
		edge{2, "b", 1}, edge{3, "a", 1}, edge{1, "b", 4},
		edge{4, "a", 4}, edge{4, "b", 5}, edge{5, "a", 4}, edge{4, "", 0},
	)
}

func TestTest1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	dfa := makeDFA(t, test1(t))
	expectWords(t, dfa, true, "aba", "aab")
	expectWords(t, dfa, false, "ab", "abb", "", "abababa", "bab")
	if err := CompleteDFA(dfa); err != nil {
		t.Fatal(err)
	}
	if !dfa.IsComplete() {
		t.Fatalf("expected automaton to be complete")
	}
	if err := ComplementCDFA(dfa); err != nil {
		t.Fatal(err)
	}
	expectWords(t, dfa, false, "aba", "aab")
	expectWords(t, dfa, true, "ab", "abb", "", "abababa", "bab")
}

func TestHw3Task1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	dfa := makeDFA(t, hw3task1(t))
	expectWords(t, dfa, true, "abbaa", "baab", "baa")
	expectWords(t, dfa, false, "bb", "ababb", "abababb")
	CompleteDFA(dfa)
	ComplementCDFA(dfa)
	expectWords(t, dfa, false, "abbaa", "baab", "baa")
	expectWords(t, dfa, true, "bb", "ababb", "abababb")
}

func TestHw4Task5(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	dfa := makeDFA(t, hw4task5(t))
	accepted := []string{"abaaabababababaa", "aaaaaaaabaaba"}
	rejected := []string{"abababababa", "aabab", ""}
	expectWords(t, dfa, true, accepted...)
	expectWords(t, dfa, false, rejected...)
	CompleteDFA(dfa)
	ComplementCDFA(dfa)
	expectWords(t, dfa, false, accepted...)
	expectWords(t, dfa, true, rejected...)
	complement := dfa.Clone()
	re, ok := NFAToRegexp(dfa)
	if !ok {
		t.Fatalf("expected a regular expression for a non-empty language")
	}
	expectRegexpLanguage(t, complement, re, 9)
	expectHusk(t, dfa, re)
}

func TestHw4Task6(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	dfa := makeDFA(t, hw4task6(t))
	accepted := []string{
		"aabbabaabbbabaaaaaabaaabbabaabbbabaaaaaabaaabbabaabbbabaaaaaaba",
		"abababaaa",
		"abababababababab",
	}
	rejected := []string{"aababababaabbabababababbababba", "aabbabbbbb", ""}
	expectWords(t, dfa, true, accepted...)
	expectWords(t, dfa, false, rejected...)
	CompleteDFA(dfa)
	ComplementCDFA(dfa)
	expectWords(t, dfa, false, accepted...)
	expectWords(t, dfa, true, rejected...)
	complement := dfa.Clone()
	re, ok := NFAToRegexp(dfa)
	if !ok {
		t.Fatalf("expected a regular expression for a non-empty language")
	}
	expectRegexpLanguage(t, complement, re, 9)
	expectHusk(t, dfa, re)
}

func expectHusk(t *testing.T, a *Automaton, re string) {
	t.Helper()
	init, _ := a.Initial()
	if a.Size() != 2 || len(a.Transitions(init)) != 1 {
		t.Fatalf("expected two states connected by a single transition, have %d states", a.Size())
	}
	tr := a.Transitions(init)[0]
	if tr.Label != re || !a.IsFinal(tr.To) || len(a.Transitions(tr.To)) != 0 {
		t.Errorf("expected transition labelled %q to a final sink, have %v", re, tr)
	}
}

func TestRemoveEpsilonKeepsLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	a := hw4task5(t)
	RemoveEpsilonTransitions(a)
	if !a.HasNoEpsilonTransitions() {
		t.Errorf("expected no epsilon transitions to be left")
	}
	if !a.IsFinal(1) || !a.IsFinal(4) {
		t.Errorf("expected states 1 and 4 to be final, finals are %v", a.Finals())
	}
}

func TestEpsilonCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	a := build(t, 3, 0, []int{2},
		edge{0, "", 1}, edge{1, "", 0}, edge{1, "b", 2}, edge{0, "a", 0},
	)
	dfa := makeDFA(t, a)
	expectWords(t, dfa, true, "b", "ab", "aaab")
	expectWords(t, dfa, false, "", "a", "ba")
}

func TestOptimizeDropsUnreachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	a := build(t, 4, 0, []int{1},
		edge{0, "a", 1}, edge{2, "a", 1}, edge{3, "b", 3}, edge{1, "", 1},
	)
	if err := Optimize(a); err != nil {
		t.Fatal(err)
	}
	if a.Size() != 2 || a.Has(2) || a.Has(3) {
		t.Errorf("expected unreachable states 2 and 3 to be removed, states are %v", a.States())
	}
	if a.HasTransition(1, Epsilon, 1) {
		t.Errorf("expected epsilon loop to be removed")
	}
}

func TestPreconditions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	a := New("ab")
	s := a.InsertState()
	if err := RemoveEpsilonTransitions(a); !errors.Is(err, formal.ErrNoInitialState) {
		t.Errorf("expected missing initial state to be reported, got %v", err)
	}
	a.MarkInitial(s)
	a.AddTransition(s, Epsilon, s)
	if _, err := TransformToDFA(a); !errors.Is(err, formal.ErrNotSingleLetter) {
		t.Errorf("expected epsilon transition to be reported, got %v", err)
	}
	if err := CompleteDFA(a); !errors.Is(err, formal.ErrNotDeterministic) {
		t.Errorf("expected non-determinism to be reported, got %v", err)
	}
	if _, err := ReadWord(a, "a"); !errors.Is(err, formal.ErrNotDeterministic) {
		t.Errorf("expected non-determinism to be reported, got %v", err)
	}
	a.RemoveTransition(s, Epsilon, s)
	if err := ComplementCDFA(a); !errors.Is(err, formal.ErrNotComplete) {
		t.Errorf("expected incompleteness to be reported, got %v", err)
	}
	if _, err := MinimizeCDFA(a); !errors.Is(err, formal.ErrNotComplete) {
		t.Errorf("expected incompleteness to be reported, got %v", err)
	}
}

func TestCompleteWithoutDrain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	a := build(t, 1, 0, []int{0}, edge{0, "a", 0}, edge{0, "b", 0})
	if err := CompleteDFA(a); err != nil {
		t.Fatal(err)
	}
	if a.Size() != 1 {
		t.Errorf("expected no drain state for a complete automaton, have %d states", a.Size())
	}
}

func TestSubsetLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	a := build(t, 2, 0, []int{1}, edge{0, "a", 0}, edge{0, "b", 0}, edge{0, "a", 1})
	dfa, err := TransformToDFA(a)
	if err != nil {
		t.Fatal(err)
	}
	if dfa.Size() != 2 {
		t.Fatalf("expected 2 subsets, have %d", dfa.Size())
	}
	if dfa.Label(0) != "{0}" || dfa.Label(1) != "{0,1}" {
		t.Errorf("unexpected subset labels %q, %q", dfa.Label(0), dfa.Label(1))
	}
	if dfa.IsFinal(0) || !dfa.IsFinal(1) {
		t.Errorf("expected only subset {0,1} to be final")
	}
}

// --- Minimization ----------------------------------------------------------

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	// all non-empty words, with a redundant final state and an unreachable state
	a := build(t, 4, 0, []int{1, 2},
		edge{0, "a", 1}, edge{0, "b", 2},
		edge{1, "a", 1}, edge{1, "b", 2},
		edge{2, "a", 2}, edge{2, "b", 1},
		edge{3, "a", 3}, edge{3, "b", 0},
	)
	min, err := MinimizeCDFA(a)
	if err != nil {
		t.Fatal(err)
	}
	if min.Size() != 2 {
		t.Errorf("expected minimal DFA to have 2 states, has %d", min.Size())
	}
	if !min.IsComplete() {
		t.Errorf("expected minimal DFA to be complete")
	}
	expectSameLanguage(t, a, min, 6)
	if min.Label(1) != "{1,2}" {
		t.Errorf("expected merged state to be labelled {1,2}, is %q", min.Label(1))
	}
}

func TestMinimizeScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	for i, scenario := range []func(*testing.T) *Automaton{test1, hw3task1, hw4task5, hw4task6} {
		dfa := makeDFA(t, scenario(t))
		CompleteDFA(dfa)
		min, err := MinimizeCDFA(dfa)
		if err != nil {
			t.Fatal(err)
		}
		if min.Size() > dfa.Size() {
			t.Errorf("scenario %d: minimal DFA larger than input", i)
		}
		expectSameLanguage(t, dfa, min, 8)
		again, _ := MinimizeCDFA(min)
		if again.Size() != min.Size() {
			t.Errorf("scenario %d: minimization not idempotent: %d vs %d states", i, min.Size(), again.Size())
		}
	}
}

func TestMinimizeEndsWithA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	a := build(t, 2, 0, []int{1}, edge{0, "a", 0}, edge{0, "b", 0}, edge{0, "a", 1})
	dfa := makeDFA(t, a)
	CompleteDFA(dfa)
	min, _ := MinimizeCDFA(dfa)
	if min.Size() != 2 {
		t.Errorf("expected 2 states for language (a+b)*a, have %d", min.Size())
	}
}

// --- Regular expressions ---------------------------------------------------

func TestRegexpTwoStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	a := build(t, 2, 0, []int{1},
		edge{0, "a", 1}, edge{1, "b", 0}, edge{0, "a", 0}, edge{1, "b", 1},
	)
	re, ok := NFAToRegexp(a)
	if !ok || re != "(a)*a(b)*(b(a)*a(b)*)*" {
		t.Errorf("unexpected expression %q", re)
	}
}

func TestRegexpEmptyLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	a := build(t, 2, 0, nil, edge{0, "a", 1})
	if _, ok := NFAToRegexp(a); ok {
		t.Errorf("expected no expression for automaton without final states")
	}
	b := build(t, 3, 0, []int{2}, edge{0, "a", 1}, edge{2, "b", 1})
	if _, ok := NFAToRegexp(b); ok {
		t.Errorf("expected no expression if final state is unreachable")
	}
}

func TestRegexpScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	for i, scenario := range []func(*testing.T) *Automaton{test1, hw3task1, hw4task5, hw4task6} {
		dfa := makeDFA(t, scenario(t))
		re, ok := NFAToRegexp(dfa.Clone())
		if !ok {
			t.Errorf("scenario %d: expected a regular expression", i)
			continue
		}
		expectRegexpLanguage(t, dfa, re, 8)
	}
}

func TestRegexpAcceptsEmptyWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	a := build(t, 1, 0, []int{0}, edge{0, "a", 0})
	re, ok := NFAToRegexp(a.Clone())
	if !ok {
		t.Fatalf("expected an expression for a*")
	}
	expectRegexpLanguage(t, a, re, 5)
}

func TestComplementIsInvolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.automaton")
	defer teardown()
	//
	for i, a := range []*Automaton{test1(t), hw3task1(t), hw4task5(t), hw4task6(t)} {
		dfa := makeDFA(t, a)
		if err := CompleteDFA(dfa); err != nil {
			t.Fatal(err)
		}
		twice := dfa.Clone()
		if err := ComplementCDFA(twice); err != nil {
			t.Fatal(err)
		}
		if err := ComplementCDFA(twice); err != nil {
			t.Fatal(err)
		}
		if len(twice.Finals()) != len(dfa.Finals()) {
			t.Errorf("scenario #%d: expected %d final states, have %d", i,
				len(dfa.Finals()), len(twice.Finals()))
		}
		expectSameLanguage(t, dfa, twice, 8)
	}
}
