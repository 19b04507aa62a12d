package sparse

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBitMatrix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formal.sparse")
	defer teardown()
	//
	M := NewBitMatrix(10, 10)
	M.Set(2, 3, 0b101)
	M.Set(0, 9, 0b1)
	M.Set(9, 0, 0b10)
	if v := M.Value(2, 3); v != 0b101 {
		t.Errorf("expected value 0b101 at (2,3), is %b", v)
	}
	M.Add(2, 3, 0b010)
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values, have %d", M.ValueCount())
	}
	if v := M.Value(2, 3); v != 0b111 {
		t.Errorf("expected value 0b111 at (2,3), is %b", v)
	}
	if v := M.Value(5, 5); v != 0 {
		t.Errorf("expected null value at (5,5), is %b", v)
	}
	M.Set(5, 5, 0)
	if M.ValueCount() != 3 {
		t.Errorf("expected null value not to be stored")
	}
	if M.Value(0, 9) != 1 || M.Value(9, 0) != 2 {
		t.Errorf("expected values at (0,9) and (9,0) to be retrievable")
	}
	if s := M.String(); s != "(0,9)={A} (2,3)={ABC} (9,0)={B} " {
		t.Errorf("unexpected string form %q", s)
	}
}
