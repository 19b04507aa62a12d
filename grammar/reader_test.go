package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/formal"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.grammar")
	defer teardown()
	//
	for _, tc := range []struct {
		text string
		rule Rule
	}{
		{"S => AB", Rule{'S', "AB"}},
		{"A =>mOgUs", Rule{'A', "mOgUs"}},
		{"X => .", Rule{'X', ""}},
		{"  S   =>  a S b  ", Rule{'S', "aSb"}},
		{"S => aSb\n", Rule{'S', "aSb"}},
	} {
		r, err := ParseRule(tc.text)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", tc.text, err)
			continue
		}
		if r != tc.rule {
			t.Errorf("expected %q to read as %v, got %v", tc.text, tc.rule, r)
		}
	}
}

func TestParseRuleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.grammar")
	defer teardown()
	//
	for _, text := range []string{
		"Ss => AB",
		"S X",
		"S =>",
		"=>",
		"=> X",
		"S => KeK.LoL",
		"s => a",
		"S => a1",
		"",
	} {
		_, err := ParseRule(text)
		if !errors.Is(err, formal.ErrGrammarFormat) {
			t.Errorf("expected format error for %q, got %v", text, err)
		}
	}
}

func TestFormatErrorPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.grammar")
	defer teardown()
	//
	_, err := ParseRule("S => ab.c")
	var ferr *formal.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected a FormatError, got %v", err)
	}
	if ferr.Span.From() != 7 {
		t.Errorf("expected error at position 7, got %v", ferr.Span)
	}
}

func TestParseGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.grammar")
	defer teardown()
	//
	g, err := Parse("S => X\nX => XaXb\nX => .\n\n  \n")
	if err != nil {
		t.Fatal(err)
	}
	expectRules(t, g, "S => X", "X => XaXb", "X => .")
	if _, err = Parse("S => X\nX =>\n"); !errors.Is(err, formal.ErrGrammarFormat) {
		t.Errorf("expected format error for incomplete second rule, got %v", err)
	}
	if g.String() != "S => X\nX => XaXb\nX => .\n" {
		t.Errorf("unexpected textual form:\n%s", g)
	}
}
