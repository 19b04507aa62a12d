package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/formal"
)

// === Minimization ==========================================================

// MinimizeCDFA creates the minimal complete deterministic automaton accepting the
// same language as a, which has to be complete.
//
// Unreachable states are dropped, the remaining states are partitioned into
// classes of equivalent states by Hopcroft's algorithm. Every class becomes a
// state of the result, labelled by the labels of its members. States of the
// result are created in the order of their smallest member.
func MinimizeCDFA(a *Automaton) (*Automaton, error) {
	init, ok := a.Initial()
	if !ok {
		tracer().Errorf("cannot minimize automaton without initial state")
		return nil, fmt.Errorf("%w: cannot minimize", formal.ErrNoInitialState)
	}
	if !a.IsComplete() {
		tracer().Errorf("cannot minimize automaton which is not complete")
		return nil, fmt.Errorf("%w: cannot minimize", formal.ErrNotComplete)
	}
	reachable := a.reachable(init)
	blocks := a.equivalenceClasses(reachable)
	sort.Slice(blocks, func(i, j int) bool {
		mi, _ := blocks[i].NextSet(0)
		mj, _ := blocks[j].NextSet(0)
		return mi < mj
	})
	minimal := New(strings.Join(a.alphabet, ""))
	blockOf := make(map[StateID]StateID)
	for _, block := range blocks {
		id := minimal.InsertState()
		var labels []string
		for s, ok := block.NextSet(0); ok; s, ok = block.NextSet(s + 1) {
			blockOf[StateID(s)] = id
			labels = append(labels, a.Label(StateID(s)))
		}
		if len(labels) == 1 {
			minimal.SetLabel(id, labels[0])
		} else {
			minimal.SetLabel(id, "{"+strings.Join(labels, ",")+"}")
		}
	}
	for i, block := range blocks {
		rep, _ := block.NextSet(0)
		id := StateID(i)
		if a.IsFinal(StateID(rep)) {
			minimal.MarkFinal(id)
		}
		for _, t := range a.mustState(StateID(rep)).out {
			minimal.AddTransition(id, t.Label, blockOf[t.To])
		}
	}
	minimal.MarkInitial(blockOf[init])
	tracer().Infof("minimal DFA has %d states, input had %d", minimal.Size(), a.Size())
	return minimal, nil
}

// equivalenceClasses partitions a set of states of a complete DFA into classes of
// language-equivalent states (Hopcroft).
func (a *Automaton) equivalenceClasses(states *bitset.BitSet) []*bitset.BitSet {
	n := uint(a.nextID)
	finals, rest := bitset.New(n), bitset.New(n)
	for s, ok := states.NextSet(0); ok; s, ok = states.NextSet(s + 1) {
		if a.IsFinal(StateID(s)) {
			finals.Set(s)
		} else {
			rest.Set(s)
		}
	}
	var blocks []*bitset.BitSet
	for _, b := range []*bitset.BitSet{finals, rest} {
		if b.Any() {
			blocks = append(blocks, b)
		}
	}
	inWork := make([]bool, len(blocks))
	var work []int
	for i := range blocks {
		work = append(work, i)
		inWork[i] = true
	}
	for len(work) > 0 {
		splitter := blocks[work[0]].Clone()
		inWork[work[0]] = false
		work = work[1:]
		for _, letter := range a.alphabet {
			// X = all states leading into the splitter on letter
			X := bitset.New(n)
			for s, ok := splitter.NextSet(0); ok; s, ok = splitter.NextSet(s + 1) {
				for _, t := range a.mustState(StateID(s)).in {
					if t.Label == letter && states.Test(uint(t.To)) {
						X.Set(uint(t.To))
					}
				}
			}
			if X.None() {
				continue
			}
			for y := 0; y < len(blocks); y++ {
				inter := blocks[y].Intersection(X)
				if inter.None() {
					continue
				}
				diff := blocks[y].Difference(X)
				if diff.None() {
					continue
				}
				blocks[y] = inter
				blocks = append(blocks, diff)
				inWork = append(inWork, false)
				z := len(blocks) - 1
				if inWork[y] || diff.Count() <= inter.Count() {
					work = append(work, z)
					inWork[z] = true
				} else {
					work = append(work, y)
					inWork[y] = true
				}
			}
		}
	}
	tracer().Debugf("%d equivalence classes", len(blocks))
	return blocks
}
