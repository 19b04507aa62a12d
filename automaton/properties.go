package automaton

// properties caches structural properties of an automaton. Adding transitions
// may only clear properties, which is done incrementally. Removing states or
// transitions marks the cache dirty.
type properties struct {
	dirty            bool
	respectsAlphabet bool // every non-epsilon label is a letter of the alphabet
	epsilonFree      bool // no epsilon transitions
	singleLetter     bool // every label is a single letter
	deterministic    bool // single letters, at most one destination per letter
}

func allProperties() properties {
	return properties{
		respectsAlphabet: true,
		epsilonFree:      true,
		singleLetter:     true,
		deterministic:    true,
	}
}

// update adjusts the properties for a new transition t from state src.
func (p *properties) update(a *Automaton, src *state, t Transition) {
	if p.dirty {
		return
	}
	if t.Label == Epsilon {
		p.epsilonFree = false
	} else if !a.inAlphabet(t.Label) {
		p.respectsAlphabet = false
	}
	if !isSingleLetter(t.Label) {
		p.singleLetter = false
		p.deterministic = false
		return
	}
	if p.deterministic {
		for _, e := range src.out {
			if e.Label == t.Label && e.To != t.To {
				p.deterministic = false
				break
			}
		}
	}
}

func (a *Automaton) properties() properties {
	if a.props.dirty {
		tracer().Debugf("re-computing properties of automaton")
		p := allProperties()
		for _, v := range a.states.Values() {
			s := v.(*state)
			for i, t := range s.out {
				p.update(a, &state{out: s.out[:i]}, t)
			}
		}
		a.props = p
	}
	return a.props
}

// IsDeterministic is true if every transition is labelled by a single letter and
// no state has two transitions with the same letter.
func (a *Automaton) IsDeterministic() bool {
	return a.properties().deterministic
}

// HasNoEpsilonTransitions is true if a has no epsilon transitions.
func (a *Automaton) HasNoEpsilonTransitions() bool {
	return a.properties().epsilonFree
}

// IsSingleLetter is true if every transition is labelled by a single letter.
func (a *Automaton) IsSingleLetter() bool {
	return a.properties().singleLetter
}

// RespectsAlphabet is true if every non-epsilon label is a letter of the alphabet.
func (a *Automaton) RespectsAlphabet() bool {
	return a.properties().respectsAlphabet
}

// IsComplete is true for deterministic automata where every state has a transition
// for every letter of the alphabet, and no other transitions.
func (a *Automaton) IsComplete() bool {
	p := a.properties()
	if !p.deterministic || !p.respectsAlphabet {
		return false
	}
	for _, v := range a.states.Values() {
		if len(v.(*state).out) != len(a.alphabet) {
			return false
		}
	}
	return true
}
