/*
Package sparse implements a simple type for sparse integer matrices.
It is used for LL(1) parse tables, where most of the cells denote an error
and therefore need not be stored at all.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept sorted in row-major order.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value, returns the null-value
//     v := M.Value(2, 3)             // returns 4711
//     old := M.Set(2, 3, 123)        // overwrite, returns 4711
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Setting a position to the null-value removes it from storage.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	value    int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of non-null values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or NullValue.
func (m *IntMatrix) Value(i, j int) int32 {
	if k, found := m.find(i, j); found {
		return m.values[k].value
	}
	return m.nullval
}

// Set a value in the matrix at position (i,j). It returns the value previously
// stored at (i,j), which is the null-value for fresh positions.
// Set panics for positions outside of the matrix.
func (m *IntMatrix) Set(i, j int, value int32) int32 {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix.Set() index out of range: (%d,%d)", i, j))
	}
	k, found := m.find(i, j)
	if found {
		old := m.values[k].value
		if value == m.nullval {
			m.values = append(m.values[:k], m.values[k+1:]...)
		} else {
			m.values[k].value = value
		}
		return old
	}
	if value == m.nullval {
		return m.nullval
	}
	tnew := triplet{row: i, col: j, value: value}
	m.values = append(m.values, tnew) // make room
	copy(m.values[k+1:], m.values[k:])
	m.values[k] = tnew
	return m.nullval
}

// Each calls f for every stored (non-null) value, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	for _, t := range m.values {
		f(t.row, t.col, t.value)
	}
}

// find performs a binary search for (i,j). If (i,j) is not stored, the
// returned index is the insert position.
func (m *IntMatrix) find(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(n int) bool {
		return !m.values[n].storedLeftOf(i, j)
	})
	return k, k < len(m.values) && m.values[k].storedAt(i, j)
}

func (t triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%d", t.row, t.col, t.value)
}
