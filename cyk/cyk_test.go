package cyk

import (
	"errors"
	"testing"

	"github.com/npillmayer/formal"
	"github.com/npillmayer/formal/earley"
	"github.com/npillmayer/formal/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const balanced = "S => X\nX => XaXb\nX => ."

func cnfParser(t *testing.T, text string) *Parser {
	t.Helper()
	g, err := grammar.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	cnf, err := grammar.TransformToCNF(g)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewParser(cnf)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCYKBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.parse")
	defer teardown()
	//
	p := cnfParser(t, balanced)
	for _, w := range []string{"", "ab", "aabb", "abab", "aababaabbb",
		"aabbabababaaaaaababbaaaabbbabbbbbaabbbab"} {
		if !p.Parse(w) {
			t.Errorf("expected %q to be accepted", w)
		}
	}
	for _, w := range []string{"a", "ba", "bbaaabab", "amogus",
		"aabbabababaabbaaaaabbabaaaabbbabbbbbaabbbab"} {
		if p.Parse(w) {
			t.Errorf("expected %q to be rejected", w)
		}
	}
}

func TestCYKOnHandwrittenCNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.parse")
	defer teardown()
	//
	// a^n b^n, n ≥ 0
	g, err := grammar.Parse("S => AB\nS => AC\nS => .\nC => XB\nX => AB\nX => AC\nA => a\nB => b")
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsCNF() {
		t.Fatalf("expected grammar to be in CNF")
	}
	p, err := NewParser(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"", "ab", "aabb", "aaabbb"} {
		if !p.Parse(w) {
			t.Errorf("expected %q to be accepted", w)
		}
	}
	for _, w := range []string{"a", "abab", "aab", "abb", "ba", "aSb"} {
		if p.Parse(w) {
			t.Errorf("expected %q to be rejected", w)
		}
	}
}

func TestNotCNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.parse")
	defer teardown()
	//
	g, err := grammar.Parse(balanced)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = NewParser(g); !errors.Is(err, formal.ErrNotCNF) {
		t.Errorf("expected construction to fail with ErrNotCNF, got %v", err)
	}
}

// allWords enumerates all words over alphabet up to length n.
func allWords(alphabet string, n int) []string {
	words := []string{""}
	level := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range level {
			for _, c := range alphabet {
				next = append(next, w+string(c))
			}
		}
		words = append(words, next...)
		level = next
	}
	return words
}

func TestAgreesWithEarley(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.parse")
	defer teardown()
	//
	grammars := []string{
		balanced,
		"S => X\nX => aXa\nX => bXb\nX => a\nX => b\nX => .",
		"S => X\nX => XX\nX => aXb\nX => bXa\nX => .",
		"S => X\nX => abY\nY => Yb\nY => a",
	}
	words := allWords("ab", 8)
	for i, text := range grammars {
		g, err := grammar.Parse(text)
		if err != nil {
			t.Fatal(err)
		}
		ep, err := earley.NewParser(g)
		if err != nil {
			t.Fatal(err)
		}
		cnf, err := grammar.TransformToCNF(g)
		if err != nil {
			t.Fatal(err)
		}
		cp, err := NewParser(cnf)
		if err != nil {
			t.Fatal(err)
		}
		for _, w := range words {
			if e, c := ep.Parse(w), cp.Parse(w); e != c {
				t.Errorf("grammar #%d: parsers disagree on %q: Earley=%v, CYK=%v", i, w, e, c)
			}
		}
	}
}
