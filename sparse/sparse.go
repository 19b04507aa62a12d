/*
Package sparse implements a simple type for sparse matrices of bit sets.
It is mainly used for recognizer tables, where every cell holds a set of
non-terminals, encoded as a 32-bit mask.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets sorted by (row, column). Lookups use binary search.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// BitMatrix is a type for a sparse matrix of bit sets. Construct with
//
//     M := NewBitMatrix(10, 10)
//
// Now
//
//     M.Set(2, 3, 0b101)             // set a value
//     v := M.Value(2, 3)             // returns 0b101
//     M.Add(2, 3, 0b010)             // unite with a second value
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(10, 10)            // returns 0, the null-value
//
// Values cannot be deleted, but may be overwritten with 0. Space for
// null-values is not re-claimed.
type BitMatrix struct {
	values []triplet
	rowcnt int
	colcnt int
}

// Triplet values to store
type triplet struct {
	row, col int
	value    uint32
}

// NewBitMatrix creates a new matrix of bit sets, size m x n.
func NewBitMatrix(m, n int) *BitMatrix {
	return &BitMatrix{
		values: []triplet{},
		rowcnt: m,
		colcnt: n,
	}
}

// M returns the row count.
func (m *BitMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *BitMatrix) N() int {
	return m.colcnt
}

// ValueCount returns the number of values in the matrix.
func (m *BitMatrix) ValueCount() int {
	return len(m.values)
}

// search returns the index of the first triplet not stored left of (i,j).
func (m *BitMatrix) search(i, j int) int {
	return sort.Search(len(m.values), func(k int) bool {
		return !m.values[k].storedLeftOf(i, j)
	})
}

// Value returns the bit set at position (i,j), or 0.
func (m *BitMatrix) Value(i, j int) uint32 {
	if k := m.search(i, j); k < len(m.values) && m.values[k].storedAt(i, j) {
		return m.values[k].value
	}
	return 0
}

// Set a value in the matrix at position (i,j).
func (m *BitMatrix) Set(i, j int, value uint32) *BitMatrix {
	return m.setOrAdd(i, j, value, false)
}

// Add unites the bit set at position (i,j) with a value.
func (m *BitMatrix) Add(i, j int, value uint32) *BitMatrix {
	return m.setOrAdd(i, j, value, true)
}

func (m *BitMatrix) setOrAdd(i, j int, value uint32, doAdd bool) *BitMatrix {
	// at will be position of new value
	at := m.search(i, j)
	if at < len(m.values) && m.values[at].storedAt(i, j) { // value already present
		if doAdd {
			m.values[at].value |= value
		} else {
			m.values[at].value = value
		}
		return m
	}
	if value == 0 {
		return m
	}
	tnew := triplet{row: i, col: j, value: value}
	// the following 3 lines have to work for k being the right edge of v or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return m
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}

// String lists the non-null cells of the matrix, with bit sets rendered as
// capital letters (bit 0 = 'A').
func (m *BitMatrix) String() string {
	var b strings.Builder
	for _, t := range m.values {
		b.WriteString(fmt.Sprintf("(%d,%d)={", t.row, t.col))
		for v := t.value; v != 0; v &= v - 1 {
			b.WriteByte(byte('A' + bits.TrailingZeros32(v)))
		}
		b.WriteString("} ")
	}
	return b.String()
}
