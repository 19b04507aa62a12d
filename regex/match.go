package regex

import (
	"github.com/bits-and-blooms/bitset"
)

// Matcher decides membership of words in the language of an expression. It is
// backed by a Thompson automaton, which is simulated on sets of states.
type Matcher struct {
	edges      [][]nfaEdge
	start, end int
}

type nfaEdge struct {
	letter rune // 0 for epsilon
	to     int
}

type fragment struct {
	start, end int
}

// Compile creates a matcher for an expression.
func Compile(n *Node) *Matcher {
	m := &Matcher{}
	state := func() int {
		m.edges = append(m.edges, nil)
		return len(m.edges) - 1
	}
	link := func(from int, letter rune, to int) {
		m.edges[from] = append(m.edges[from], nfaEdge{letter: letter, to: to})
	}
	f := Fold(n, Algebra[fragment]{
		Empty: func() fragment {
			return fragment{state(), state()}
		},
		Letter: func(r rune) fragment {
			f := fragment{state(), state()}
			link(f.start, r, f.end)
			return f
		},
		Epsilon: func() fragment {
			f := fragment{state(), state()}
			link(f.start, 0, f.end)
			return f
		},
		Union: func(a, b fragment) fragment {
			f := fragment{state(), state()}
			link(f.start, 0, a.start)
			link(f.start, 0, b.start)
			link(a.end, 0, f.end)
			link(b.end, 0, f.end)
			return f
		},
		Concat: func(a, b fragment) fragment {
			link(a.end, 0, b.start)
			return fragment{a.start, b.end}
		},
		Star: func(a fragment) fragment {
			f := fragment{state(), state()}
			link(f.start, 0, a.start)
			link(f.start, 0, f.end)
			link(a.end, 0, a.start)
			link(a.end, 0, f.end)
			return f
		},
	})
	m.start, m.end = f.start, f.end
	return m
}

// Match is true if word is in the language of the matcher's expression.
func (m *Matcher) Match(word string) bool {
	current := bitset.New(uint(len(m.edges)))
	current.Set(uint(m.start))
	m.closure(current)
	for _, r := range word {
		next := bitset.New(uint(len(m.edges)))
		for s, ok := current.NextSet(0); ok; s, ok = current.NextSet(s + 1) {
			for _, e := range m.edges[s] {
				if e.letter == r {
					next.Set(uint(e.to))
				}
			}
		}
		if next.None() {
			return false
		}
		m.closure(next)
		current = next
	}
	return current.Test(uint(m.end))
}

func (m *Matcher) closure(set *bitset.BitSet) {
	var stack []uint
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range m.edges[s] {
			if e.letter == 0 && !set.Test(uint(e.to)) {
				set.Set(uint(e.to))
				stack = append(stack, uint(e.to))
			}
		}
	}
}
