package automaton

import (
	"fmt"

	"github.com/npillmayer/formal"
)

// ReadWord runs a deterministic automaton on a word and reports whether it ends
// in a final state. A missing transition rejects the word.
func ReadWord(a *Automaton, word string) (bool, error) {
	s, ok := a.Initial()
	if !ok {
		return false, fmt.Errorf("%w: cannot read word", formal.ErrNoInitialState)
	}
	if !a.IsDeterministic() {
		return false, fmt.Errorf("%w: cannot read word", formal.ErrNotDeterministic)
	}
	for _, r := range word {
		if s, ok = a.Target(s, string(r)); !ok {
			return false, nil
		}
	}
	return a.IsFinal(s), nil
}
