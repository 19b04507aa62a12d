package automaton

// Snapshot is a read-only view of an automaton, as consumed by visualization
// (see package render).
type Snapshot struct {
	Alphabet []string
	States   []StateInfo // in ascending order of ID
	Edges    []Edge      // grouped by source state, in insertion order
}

// StateInfo describes a state of a snapshot.
type StateInfo struct {
	ID      StateID
	Label   string
	Initial bool
	Final   bool
}

// Edge describes a transition of a snapshot.
type Edge struct {
	From  StateID
	Label string
	To    StateID
}

// Snapshot creates a read-only view of the current structure of a.
func (a *Automaton) Snapshot() Snapshot {
	snap := Snapshot{Alphabet: a.Alphabet()}
	for _, id := range a.States() {
		snap.States = append(snap.States, StateInfo{
			ID:      id,
			Label:   a.Label(id),
			Initial: a.IsInitial(id),
			Final:   a.IsFinal(id),
		})
		for _, t := range a.mustState(id).out {
			snap.Edges = append(snap.Edges, Edge{From: id, Label: t.Label, To: t.To})
		}
	}
	return snap
}
