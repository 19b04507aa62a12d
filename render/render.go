/*
Package render visualizes automata, given as automaton.Snapshot.

Dot writes an automaton in the Graphviz Dot format, suitable for

	dot -Tsvg automaton.dot > automaton.svg

Table renders the transition table of an automaton for display on a terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/npillmayer/formal/automaton"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// tracer traces with key 'formal.render'.
func tracer() tracing.Trace {
	return tracing.Select("formal.render")
}

// EpsilonLabel is the edge label used for epsilon transitions.
const EpsilonLabel = "eps"

// Dot exports an automaton to the Graphviz Dot format. Final states are drawn
// as double circles, the initial state is marked by an arrow from an invisible
// node.
func Dot(w io.Writer, snap automaton.Snapshot) error {
	b := bufio.NewWriter(w)
	b.WriteString(`digraph {
graph [rankdir=LR, splines=true, fontname=Helvetica, fontsize=10];
node [shape=circle, style=filled, fillcolor=white, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

nowhere [style=invis, shape=point];
`)
	for _, s := range snap.States {
		shape := "circle"
		if s.Final {
			shape = "doublecircle"
		}
		b.WriteString(fmt.Sprintf("s%03d [shape=%s label=\"%s\"]\n", s.ID, shape, escape(s.Label)))
		if s.Initial {
			b.WriteString(fmt.Sprintf("nowhere -> s%03d\n", s.ID))
		}
	}
	for _, e := range snap.Edges {
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, escape(edgeLabel(e.Label))))
	}
	b.WriteString("}\n")
	return b.Flush()
}

// DotFile exports an automaton to the Graphviz Dot format, given a filename.
func DotFile(filename string, snap automaton.Snapshot) error {
	f, err := os.Create(filename)
	if err != nil {
		tracer().Errorf("file open error: %v", err)
		return err
	}
	defer f.Close()
	return Dot(f, snap)
}

func edgeLabel(l string) string {
	if l == automaton.Epsilon {
		return EpsilonLabel
	}
	return l
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// --- Transition tables -----------------------------------------------------

// Table renders the transition table of an automaton. Rows are states, columns
// are the letters of the alphabet, followed by a column for all other labels
// (epsilon transitions and multi-letter labels). Cells list the destination
// states. Initial states are marked by '→', final states by '*'.
func Table(snap automaton.Snapshot) (string, error) {
	labels := make(map[automaton.StateID]string, len(snap.States))
	for _, s := range snap.States {
		labels[s.ID] = s.Label
	}
	col := make(map[string]int, len(snap.Alphabet))
	header := []string{"state"}
	for i, letter := range snap.Alphabet {
		col[letter] = i + 1
		header = append(header, letter)
	}
	other := len(header)
	header = append(header, "other")
	cells := make(map[automaton.StateID][][]string)
	for _, e := range snap.Edges {
		row, ok := cells[e.From]
		if !ok {
			row = make([][]string, len(header))
			cells[e.From] = row
		}
		if c, ok := col[e.Label]; ok {
			row[c] = append(row[c], labels[e.To])
		} else {
			row[other] = append(row[other], edgeLabel(e.Label)+":"+labels[e.To])
		}
	}
	data := pterm.TableData{header}
	for _, s := range snap.States {
		name := s.Label
		if s.Final {
			name = "*" + name
		}
		if s.Initial {
			name = "→" + name
		}
		line := []string{name}
		for c := 1; c < len(header); c++ {
			var dsts []string
			if row := cells[s.ID]; row != nil {
				dsts = row[c]
			}
			sort.Strings(dsts)
			line = append(line, strings.Join(dsts, ","))
		}
		data = append(data, line)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
