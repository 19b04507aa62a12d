package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/formal"
)

// === Epsilon transitions ===================================================

// RemoveEpsilonTransitions transforms a into an equivalent automaton without
// epsilon transitions. Every state receives the non-epsilon transitions of all
// states in its epsilon closure and becomes final if its closure contains a final
// state. Afterwards a is optimized (see Optimize).
func RemoveEpsilonTransitions(a *Automaton) error {
	if _, ok := a.Initial(); !ok {
		tracer().Errorf("cannot remove epsilon transitions: no initial state")
		return fmt.Errorf("%w: cannot remove epsilon transitions", formal.ErrNoInitialState)
	}
	states := a.States()
	closures := make(map[StateID]*bitset.BitSet, len(states))
	for _, s := range states {
		closures[s] = a.epsilonClosure(s, closures)
	}
	for _, s := range states {
		closure := closures[s]
		for c, ok := closure.NextSet(0); ok; c, ok = closure.NextSet(c + 1) {
			if StateID(c) == s {
				continue
			}
			if a.IsFinal(StateID(c)) {
				a.MarkFinal(s)
			}
			for _, t := range a.mustState(StateID(c)).out {
				if t.Label != Epsilon {
					a.AddTransition(s, t.Label, t.To)
				}
			}
		}
	}
	for _, s := range states {
		for _, t := range a.Transitions(s) {
			if t.Label == Epsilon {
				a.RemoveTransition(s, Epsilon, t.To)
			}
		}
	}
	tracer().Debugf("removed epsilon transitions, %d transitions left", a.TransitionCount())
	return Optimize(a)
}

// epsilonClosure collects all states reachable from s by epsilon transitions,
// including s. Closures which have already been computed are re-used.
func (a *Automaton) epsilonClosure(s StateID, known map[StateID]*bitset.BitSet) *bitset.BitSet {
	closure := bitset.New(uint(a.nextID))
	closure.Set(uint(s))
	stack := []StateID{s}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.mustState(q).out {
			if t.Label != Epsilon || closure.Test(uint(t.To)) {
				continue
			}
			if c, ok := known[t.To]; ok {
				closure.InPlaceUnion(c)
				continue
			}
			closure.Set(uint(t.To))
			stack = append(stack, t.To)
		}
	}
	return closure
}

// Optimize removes all states not reachable from the initial state, as well as
// epsilon self-loops.
func Optimize(a *Automaton) error {
	init, ok := a.Initial()
	if !ok {
		tracer().Errorf("cannot optimize automaton without initial state")
		return fmt.Errorf("%w: cannot optimize", formal.ErrNoInitialState)
	}
	reachable := a.reachable(init)
	for _, s := range a.States() {
		if !reachable.Test(uint(s)) {
			a.RemoveState(s)
			continue
		}
		if a.HasTransition(s, Epsilon, s) {
			a.RemoveTransition(s, Epsilon, s)
		}
	}
	tracer().Debugf("optimized automaton has %d states", a.Size())
	return nil
}

// reachable computes the set of states reachable from s, including s.
func (a *Automaton) reachable(s StateID) *bitset.BitSet {
	visited := bitset.New(uint(a.nextID))
	visited.Set(uint(s))
	stack := []StateID{s}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.mustState(q).out {
			if !visited.Test(uint(t.To)) {
				visited.Set(uint(t.To))
				stack = append(stack, t.To)
			}
		}
	}
	return visited
}
