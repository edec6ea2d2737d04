package linalg

// This file is a template generating gen-matrix_generic.go

import (
	"github.com/cheekybits/genny/generic"
)

//go:generate genny -in=$GOFILE -out=gen-$GOFILE gen "EntryType=Rat,Float64"

type EntryType generic.Type

// EntryTypeMatrix is a dense row-major matrix of EntryType
type EntryTypeMatrix struct {
	rows    int         // number of rows
	columns int         // number of columns
	entries []EntryType // row-major
}

func (m *EntryTypeMatrix) indexOf(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.columns {
		panic("indexes out of bound")
	}
	return i*m.columns + j
}

// Rows returns the number of rows of the matrix
func (m *EntryTypeMatrix) Rows() int {
	return m.rows
}

// Columns returns the number of columns of the matrix
func (m *EntryTypeMatrix) Columns() int {
	return m.columns
}

// At returns the (i,j) coefficient
// panic if incorrect indexes
func (m *EntryTypeMatrix) At(i, j int) *EntryType {
	return &m.entries[m.indexOf(i, j)]
}

// Set sets the (i,j) coefficient to a copy of x
// panic if incorrect indexes
func (m *EntryTypeMatrix) Set(i, j int, x *EntryType) {
	setEntryType(&m.entries[m.indexOf(i, j)], x)
}

// SwapRows exchanges rows i and j
// panic if incorrect indexes
func (m *EntryTypeMatrix) SwapRows(i, j int) {
	if i == j {
		_ = m.indexOf(i, 0)
		return
	}
	ri := m.indexOf(i, 0)
	rj := m.indexOf(j, 0)
	for c := 0; c < m.columns; c++ {
		m.entries[ri+c], m.entries[rj+c] = m.entries[rj+c], m.entries[ri+c]
	}
}

// Clone returns a deep copy of m
func (m *EntryTypeMatrix) Clone() *EntryTypeMatrix {
	res := NewEntryTypeMatrix(m.rows, m.columns)
	for i := range m.entries {
		setEntryType(&res.entries[i], &m.entries[i])
	}
	return res
}

// NewEntryTypeMatrix creates a new zero EntryType matrix
func NewEntryTypeMatrix(rows, columns int) *EntryTypeMatrix {
	return &EntryTypeMatrix{
		rows:    rows,
		columns: columns,
		entries: make([]EntryType, rows*columns),
	}
}

// EntryTypeMatrixFromEntries create a new EntryType matrix
// with the given entries in row-major order
// entries are *not* copied
// panic if length is inconsistent
func EntryTypeMatrixFromEntries(rows, columns int, entries []EntryType) *EntryTypeMatrix {
	if rows*columns != len(entries) {
		panic("incorrect size of entries")
	}
	return &EntryTypeMatrix{
		rows:    rows,
		columns: columns,
		entries: entries,
	}
}

// EntryTypeMatrixEqual returns true if both matrices have the same size and entries
func EntryTypeMatrixEqual(mat1, mat2 *EntryTypeMatrix) bool {
	if mat1.rows != mat2.rows || mat1.columns != mat2.columns {
		return false
	}
	for i := 0; i < mat1.rows*mat1.columns; i++ {
		if !entryTypeEqual(&mat1.entries[i], &mat2.entries[i]) {
			return false
		}
	}
	return true
}
