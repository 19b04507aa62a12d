package automaton

import (
	"fmt"

	"github.com/npillmayer/formal"
)

// DrainLabel is the display label of the state added by CompleteDFA.
const DrainLabel = "drain"

// CompleteDFA adds transitions to a deterministic automaton until every state
// has a transition for every letter of the alphabet. Missing transitions lead to
// a new non-final drain state, which loops on every letter. If no transition is
// missing, no drain state is added.
func CompleteDFA(a *Automaton) error {
	if !a.IsDeterministic() {
		tracer().Errorf("cannot complete a non-deterministic automaton")
		return fmt.Errorf("%w: cannot complete automaton", formal.ErrNotDeterministic)
	}
	states := a.States()
	drain := a.InsertState()
	a.SetLabel(drain, DrainLabel)
	for _, s := range states {
		for _, letter := range a.alphabet {
			if _, ok := a.Target(s, letter); !ok {
				a.AddTransition(s, letter, drain)
			}
		}
	}
	if len(a.mustState(drain).in) == 0 {
		return a.RemoveState(drain)
	}
	for _, letter := range a.alphabet {
		a.AddTransition(drain, letter, drain)
	}
	tracer().Debugf("completed automaton with drain state %d", drain)
	return nil
}

// ComplementCDFA turns a complete deterministic automaton into one accepting the
// complement of its language, by swapping final and non-final states.
func ComplementCDFA(a *Automaton) error {
	if !a.IsComplete() {
		tracer().Errorf("cannot complement an automaton which is not complete")
		return fmt.Errorf("%w: cannot complement automaton", formal.ErrNotComplete)
	}
	for _, s := range a.States() {
		if a.IsFinal(s) {
			a.UnmarkFinal(s)
		} else {
			a.MarkFinal(s)
		}
	}
	return nil
}
