package automaton

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/formal"
)

// === Subset construction ===================================================

// TransformToDFA creates a deterministic automaton accepting the same language as
// a, using the subset construction. a must have an initial state and all of its
// transitions must be labelled by single letters, i.e. epsilon transitions have to
// be removed beforehand.
//
// Only subsets reachable from the initial state are created. Each state of the
// result is labelled by the set of states of a it represents.
func TransformToDFA(a *Automaton) (*Automaton, error) {
	init, ok := a.Initial()
	if !ok {
		tracer().Errorf("cannot build DFA: no initial state")
		return nil, fmt.Errorf("%w: cannot build DFA", formal.ErrNoInitialState)
	}
	if !a.IsSingleLetter() {
		tracer().Errorf("cannot build DFA: labels are not single letters")
		return nil, fmt.Errorf("%w: cannot build DFA", formal.ErrNotSingleLetter)
	}
	dfa := New(strings.Join(a.alphabet, ""))
	sc := subsetConstruction{
		nfa:     a,
		dfa:     dfa,
		subsets: make(map[string]StateID),
		members: make(map[StateID]*treeset.Set),
		work:    arraylist.New(),
	}
	start, err := sc.stateFor(treeset.NewWithIntComparator(int(init)))
	if err != nil {
		return nil, err
	}
	dfa.MarkInitial(start)
	for !sc.work.Empty() {
		v, _ := sc.work.Get(0)
		sc.work.Remove(0)
		from := v.(StateID)
		targets := treemap.NewWithStringComparator() // label -> *treeset.Set
		for _, m := range sc.members[from].Values() {
			for _, t := range a.mustState(StateID(m.(int))).out {
				set, found := targets.Get(t.Label)
				if !found {
					set = treeset.NewWithIntComparator()
					targets.Put(t.Label, set)
				}
				set.(*treeset.Set).Add(int(t.To))
			}
		}
		it := targets.Iterator()
		for it.Next() {
			to, err := sc.stateFor(it.Value().(*treeset.Set))
			if err != nil {
				return nil, err
			}
			dfa.AddTransition(from, it.Key().(string), to)
		}
	}
	tracer().Infof("DFA has %d states for NFA with %d states", dfa.Size(), a.Size())
	return dfa, nil
}

type subsetConstruction struct {
	nfa     *Automaton
	dfa     *Automaton
	subsets map[string]StateID       // subset key -> DFA state
	members map[StateID]*treeset.Set // DFA state -> NFA states
	work    *arraylist.List          // DFA states with pending transitions
}

// subsetKey is the canonical hash key of a set of NFA states.
type subsetKey struct {
	States []int
}

// stateFor returns the DFA state for a set of NFA states, creating it if necessary.
func (sc *subsetConstruction) stateFor(set *treeset.Set) (StateID, error) {
	key := subsetKey{States: make([]int, 0, set.Size())}
	for _, v := range set.Values() {
		key.States = append(key.States, v.(int))
	}
	hash, err := structhash.Hash(key, 1)
	if err != nil {
		return NoState, err
	}
	if id, ok := sc.subsets[hash]; ok {
		return id, nil
	}
	id := sc.dfa.InsertState()
	labels := make([]string, len(key.States))
	for i, s := range key.States {
		labels[i] = sc.nfa.Label(StateID(s))
		if sc.nfa.IsFinal(StateID(s)) {
			sc.dfa.MarkFinal(id)
		}
	}
	sc.dfa.SetLabel(id, "{"+strings.Join(labels, ",")+"}")
	sc.subsets[hash] = id
	sc.members[id] = set
	sc.work.Add(id)
	tracer().Debugf("DFA state %d = %s", id, sc.dfa.Label(id))
	return id, nil
}
