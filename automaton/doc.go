/*
Package automaton implements finite automata as labelled state graphs.

An automaton owns its states, which are addressed by stable integer handles
(StateID). Transitions are labelled by strings: single letters for ordinary
transitions, the empty string for epsilon transitions, and arbitrary regular
expressions during state elimination (see NFAToRegexp). Every state keeps its
forward transitions together with an index of the transitions pointing back to it,
so predecessors can be found without searching the whole graph.

Automata cache a set of structural properties (deterministic, epsilon-free,
single-letter labels, labels within the alphabet). Adding a transition updates
these properties incrementally, removing states or transitions invalidates them;
they are re-computed on the next query.

The classic transformations are provided as functions:

	RemoveEpsilonTransitions(a)   // in place, followed by Optimize
	dfa, err := TransformToDFA(a) // subset construction
	CompleteDFA(dfa)              // add a drain state
	ComplementCDFA(dfa)           // swap final and non-final states
	min, err := MinimizeCDFA(dfa) // Hopcroft's algorithm
	re, ok := NFAToRegexp(a)      // state elimination, consumes a

Automata are not safe for concurrent modification.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formal.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("formal.automaton")
}
