// This file was automatically generated by genny.
// Any changes will be lost if this file is regenerated.
// see https://github.com/cheekybits/genny

package linalg

// RatMatrix is a dense row-major matrix of Rat
type RatMatrix struct {
	rows    int   // number of rows
	columns int   // number of columns
	entries []Rat // row-major
}

func (m *RatMatrix) indexOf(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.columns {
		panic("indexes out of bound")
	}
	return i*m.columns + j
}

// Rows returns the number of rows of the matrix
func (m *RatMatrix) Rows() int {
	return m.rows
}

// Columns returns the number of columns of the matrix
func (m *RatMatrix) Columns() int {
	return m.columns
}

// At returns the (i,j) coefficient
// panic if incorrect indexes
func (m *RatMatrix) At(i, j int) *Rat {
	return &m.entries[m.indexOf(i, j)]
}

// Set sets the (i,j) coefficient to a copy of x
// panic if incorrect indexes
func (m *RatMatrix) Set(i, j int, x *Rat) {
	setRat(&m.entries[m.indexOf(i, j)], x)
}

// SwapRows exchanges rows i and j
// panic if incorrect indexes
func (m *RatMatrix) SwapRows(i, j int) {
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
func (m *RatMatrix) Clone() *RatMatrix {
	res := NewRatMatrix(m.rows, m.columns)
	for i := range m.entries {
		setRat(&res.entries[i], &m.entries[i])
	}
	return res
}

// NewRatMatrix creates a new zero Rat matrix
func NewRatMatrix(rows, columns int) *RatMatrix {
	return &RatMatrix{
		rows:    rows,
		columns: columns,
		entries: make([]Rat, rows*columns),
	}
}

// RatMatrixFromEntries create a new Rat matrix
// with the given entries in row-major order
// entries are *not* copied
// panic if length is inconsistent
func RatMatrixFromEntries(rows, columns int, entries []Rat) *RatMatrix {
	if rows*columns != len(entries) {
		panic("incorrect size of entries")
	}
	return &RatMatrix{
		rows:    rows,
		columns: columns,
		entries: entries,
	}
}

// RatMatrixEqual returns true if both matrices have the same size and entries
func RatMatrixEqual(mat1, mat2 *RatMatrix) bool {
	if mat1.rows != mat2.rows || mat1.columns != mat2.columns {
		return false
	}
	for i := 0; i < mat1.rows*mat1.columns; i++ {
		if !ratEqual(&mat1.entries[i], &mat2.entries[i]) {
			return false
		}
	}
	return true
}

// Float64Matrix is a dense row-major matrix of Float64
type Float64Matrix struct {
	rows    int       // number of rows
	columns int       // number of columns
	entries []Float64 // row-major
}

func (m *Float64Matrix) indexOf(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.columns {
		panic("indexes out of bound")
	}
	return i*m.columns + j
}

// Rows returns the number of rows of the matrix
func (m *Float64Matrix) Rows() int {
	return m.rows
}

// Columns returns the number of columns of the matrix
func (m *Float64Matrix) Columns() int {
	return m.columns
}

// At returns the (i,j) coefficient
// panic if incorrect indexes
func (m *Float64Matrix) At(i, j int) *Float64 {
	return &m.entries[m.indexOf(i, j)]
}

// Set sets the (i,j) coefficient to a copy of x
// panic if incorrect indexes
func (m *Float64Matrix) Set(i, j int, x *Float64) {
	setFloat64(&m.entries[m.indexOf(i, j)], x)
}

// SwapRows exchanges rows i and j
// panic if incorrect indexes
func (m *Float64Matrix) SwapRows(i, j int) {
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
func (m *Float64Matrix) Clone() *Float64Matrix {
	res := NewFloat64Matrix(m.rows, m.columns)
	for i := range m.entries {
		setFloat64(&res.entries[i], &m.entries[i])
	}
	return res
}

// NewFloat64Matrix creates a new zero Float64 matrix
func NewFloat64Matrix(rows, columns int) *Float64Matrix {
	return &Float64Matrix{
		rows:    rows,
		columns: columns,
		entries: make([]Float64, rows*columns),
	}
}

// Float64MatrixFromEntries create a new Float64 matrix
// with the given entries in row-major order
// entries are *not* copied
// panic if length is inconsistent
func Float64MatrixFromEntries(rows, columns int, entries []Float64) *Float64Matrix {
	if rows*columns != len(entries) {
		panic("incorrect size of entries")
	}
	return &Float64Matrix{
		rows:    rows,
		columns: columns,
		entries: entries,
	}
}

// Float64MatrixEqual returns true if both matrices have the same size and entries
func Float64MatrixEqual(mat1, mat2 *Float64Matrix) bool {
	if mat1.rows != mat2.rows || mat1.columns != mat2.columns {
		return false
	}
	for i := 0; i < mat1.rows*mat1.columns; i++ {
		if !float64Equal(&mat1.entries[i], &mat2.entries[i]) {
			return false
		}
	}
	return true
}
