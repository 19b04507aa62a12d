package automaton

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/formal"
)

// StateID is a handle for a state of an automaton. IDs are never re-used within
// an automaton, even after a state has been removed.
type StateID int

// NoState is the invalid state handle.
const NoState StateID = -1

// Epsilon is the label of epsilon transitions.
const Epsilon = ""

// Transition is a labelled edge of an automaton. For forward transitions To is the
// destination, for back transitions To is the source.
type Transition struct {
	Label string
	To    StateID
}

type state struct {
	id    StateID
	label string
	out   []Transition // forward transitions, in insertion order
	in    []Transition // back transitions, To being the source
}

// Automaton is a finite automaton with labelled transitions. Create one with New.
type Automaton struct {
	alphabet []string     // sorted letters
	states   *treemap.Map // int(StateID) -> *state
	finals   *treeset.Set // of int(StateID)
	initial  StateID
	nextID   StateID
	props    properties
}

// New creates an empty automaton over an alphabet, given as a string of letters.
func New(alphabet string) *Automaton {
	a := &Automaton{
		states:  treemap.NewWithIntComparator(),
		finals:  treeset.NewWithIntComparator(),
		initial: NoState,
		props:   allProperties(),
	}
	seen := make(map[rune]bool)
	for _, r := range alphabet {
		if !seen[r] {
			seen[r] = true
			a.alphabet = append(a.alphabet, string(r))
		}
	}
	sort.Strings(a.alphabet)
	return a
}

// Alphabet returns the letters of the alphabet of a, in sorted order.
func (a *Automaton) Alphabet() []string {
	return append([]string(nil), a.alphabet...)
}

func (a *Automaton) inAlphabet(label string) bool {
	i := sort.SearchStrings(a.alphabet, label)
	return i < len(a.alphabet) && a.alphabet[i] == label
}

func (a *Automaton) state(id StateID) (*state, error) {
	if s, found := a.states.Get(int(id)); found {
		return s.(*state), nil
	}
	return nil, fmt.Errorf("%w: %d", formal.ErrForeignState, id)
}

// mustState is used by algorithms iterating over states known to be present.
func (a *Automaton) mustState(id StateID) *state {
	s, err := a.state(id)
	if err != nil {
		panic(err)
	}
	return s
}

// --- States ----------------------------------------------------------------

// InsertState creates a new state and returns its handle.
func (a *Automaton) InsertState() StateID {
	id := a.nextID
	a.nextID++
	a.states.Put(int(id), &state{id: id})
	tracer().Debugf("inserted state %d", id)
	return id
}

// Size returns the number of states.
func (a *Automaton) Size() int {
	return a.states.Size()
}

// States returns the handles of all states, in ascending order.
func (a *Automaton) States() []StateID {
	ids := make([]StateID, 0, a.states.Size())
	for _, k := range a.states.Keys() {
		ids = append(ids, StateID(k.(int)))
	}
	return ids
}

// Has is true if id is a state of a.
func (a *Automaton) Has(id StateID) bool {
	_, found := a.states.Get(int(id))
	return found
}

// Label returns the display label of a state. States without an explicit label
// are labelled by their ID.
func (a *Automaton) Label(id StateID) string {
	s, err := a.state(id)
	if err != nil {
		return ""
	}
	if s.label == "" {
		return strconv.Itoa(int(id))
	}
	return s.label
}

// SetLabel sets the display label of a state.
func (a *Automaton) SetLabel(id StateID, label string) error {
	s, err := a.state(id)
	if err != nil {
		return err
	}
	s.label = label
	return nil
}

// Initial returns the initial state, if any.
func (a *Automaton) Initial() (StateID, bool) {
	return a.initial, a.initial != NoState
}

// MarkInitial makes a state the initial state of a. A previous initial state
// loses its role.
func (a *Automaton) MarkInitial(id StateID) error {
	if _, err := a.state(id); err != nil {
		return err
	}
	a.initial = id
	return nil
}

// IsInitial is true if id is the initial state.
func (a *Automaton) IsInitial(id StateID) bool {
	return a.initial != NoState && a.initial == id
}

// MarkFinal adds a state to the set of final states.
func (a *Automaton) MarkFinal(id StateID) error {
	if _, err := a.state(id); err != nil {
		return err
	}
	a.finals.Add(int(id))
	return nil
}

// UnmarkFinal removes a state from the set of final states.
func (a *Automaton) UnmarkFinal(id StateID) {
	a.finals.Remove(int(id))
}

// IsFinal is true if id is a final state.
func (a *Automaton) IsFinal(id StateID) bool {
	return a.finals.Contains(int(id))
}

// Finals returns the final states, in ascending order.
func (a *Automaton) Finals() []StateID {
	ids := make([]StateID, 0, a.finals.Size())
	for _, v := range a.finals.Values() {
		ids = append(ids, StateID(v.(int)))
	}
	return ids
}

// RemoveState removes a state together with all transitions from or to it.
func (a *Automaton) RemoveState(id StateID) error {
	s, err := a.state(id)
	if err != nil {
		return err
	}
	for _, t := range s.out {
		if t.To != id {
			dst := a.mustState(t.To)
			dst.in = removeEdge(dst.in, Transition{t.Label, id})
		}
	}
	for _, t := range s.in {
		if t.To != id {
			src := a.mustState(t.To)
			src.out = removeEdge(src.out, Transition{t.Label, id})
		}
	}
	a.states.Remove(int(id))
	a.finals.Remove(int(id))
	if a.initial == id {
		a.initial = NoState
	}
	a.props.dirty = true
	tracer().Debugf("removed state %d", id)
	return nil
}

// --- Transitions -----------------------------------------------------------

// AddTransition adds a transition src --label--> dst. Both states have to belong
// to a. Adding an existing transition is a no-op.
func (a *Automaton) AddTransition(src StateID, label string, dst StateID) error {
	from, err := a.state(src)
	if err != nil {
		return err
	}
	to, err := a.state(dst)
	if err != nil {
		return err
	}
	t := Transition{Label: label, To: dst}
	if indexOf(from.out, t) >= 0 {
		return nil
	}
	a.props.update(a, from, t)
	from.out = append(from.out, t)
	to.in = append(to.in, Transition{Label: label, To: src})
	return nil
}

// RemoveTransition removes the transition src --label--> dst. If no such
// transition exists, formal.ErrNoTransition is returned.
func (a *Automaton) RemoveTransition(src StateID, label string, dst StateID) error {
	from, err := a.state(src)
	if err != nil {
		return err
	}
	to, err := a.state(dst)
	if err != nil {
		return err
	}
	t := Transition{Label: label, To: dst}
	if indexOf(from.out, t) < 0 {
		return fmt.Errorf("%w: %d --%q--> %d", formal.ErrNoTransition, src, label, dst)
	}
	from.out = removeEdge(from.out, t)
	to.in = removeEdge(to.in, Transition{Label: label, To: src})
	a.props.dirty = true
	return nil
}

// HasTransition is true if the transition src --label--> dst exists.
func (a *Automaton) HasTransition(src StateID, label string, dst StateID) bool {
	from, err := a.state(src)
	if err != nil {
		return false
	}
	return indexOf(from.out, Transition{Label: label, To: dst}) >= 0
}

// Transitions returns the forward transitions of a state, in insertion order.
func (a *Automaton) Transitions(id StateID) []Transition {
	s, err := a.state(id)
	if err != nil {
		return nil
	}
	return append([]Transition(nil), s.out...)
}

// BackTransitions returns the transitions leading to a state. The To field of
// each transition denotes the source state.
func (a *Automaton) BackTransitions(id StateID) []Transition {
	s, err := a.state(id)
	if err != nil {
		return nil
	}
	return append([]Transition(nil), s.in...)
}

// Target returns the destination of the first transition from src with the
// given label.
func (a *Automaton) Target(src StateID, label string) (StateID, bool) {
	s, err := a.state(src)
	if err != nil {
		return NoState, false
	}
	for _, t := range s.out {
		if t.Label == label {
			return t.To, true
		}
	}
	return NoState, false
}

// TransitionCount returns the number of transitions of a.
func (a *Automaton) TransitionCount() int {
	n := 0
	for _, v := range a.states.Values() {
		n += len(v.(*state).out)
	}
	return n
}

func indexOf(edges []Transition, t Transition) int {
	for i, e := range edges {
		if e == t {
			return i
		}
	}
	return -1
}

func removeEdge(edges []Transition, t Transition) []Transition {
	if i := indexOf(edges, t); i >= 0 {
		return append(edges[:i], edges[i+1:]...)
	}
	return edges
}

func isSingleLetter(label string) bool {
	return utf8.RuneCountInString(label) == 1
}

// Clone returns a deep copy of a, with identical state IDs.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		alphabet: a.Alphabet(),
		states:   treemap.NewWithIntComparator(),
		finals:   treeset.NewWithIntComparator(a.finals.Values()...),
		initial:  a.initial,
		nextID:   a.nextID,
		props:    a.props,
	}
	it := a.states.Iterator()
	for it.Next() {
		s := it.Value().(*state)
		c.states.Put(it.Key(), &state{
			id:    s.id,
			label: s.label,
			out:   append([]Transition(nil), s.out...),
			in:    append([]Transition(nil), s.in...),
		})
	}
	return c
}
