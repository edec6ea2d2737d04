// Package linalg holds the small dense matrices and the Gaussian elimination
// used to interpolate a polynomial through a set of shares
package linalg

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrDimension is returned when a system is empty or its sizes are inconsistent
	ErrDimension = errors.New("linalg: dimension mismatch")
	// ErrSingular is returned when no usable pivot is found during elimination
	ErrSingular = errors.New("linalg: singular system")
)

// Rat is the entry type of exact matrices
type Rat = big.Rat

// Float64 is the entry type of floating point matrices
type Float64 = float64

// Matrix is implemented by all the matrix types of this package
type Matrix interface {
	Rows() int
	Columns() int
}

// checkSystem returns a non-nil error if mat is not a non-empty square matrix
// with rhsLen rows
func checkSystem(mat Matrix, rhsLen int) error {
	if mat.Rows() == 0 {
		return fmt.Errorf("%w: empty system", ErrDimension)
	}
	if mat.Rows() != mat.Columns() {
		return fmt.Errorf(
			"%w: matrix is not square: %d x %d",
			ErrDimension,
			mat.Rows(),
			mat.Columns(),
		)
	}
	if mat.Rows() != rhsLen {
		return fmt.Errorf(
			"%w: right-hand side has length %d, expected %d",
			ErrDimension,
			rhsLen,
			mat.Rows(),
		)
	}
	return nil
}

func ratEqual(x, y *Rat) bool {
	return x.Cmp(y) == 0
}

func setRat(dst, src *Rat) {
	dst.Set(src)
}

func float64Equal(x, y *Float64) bool {
	return *x == *y
}

func setFloat64(dst, src *Float64) {
	*dst = *src
}

// entryTypeEqual and setEntryType are here just to make the Go compiler happy
// for matrix_generic.go
func entryTypeEqual(_, _ *EntryType) bool {
	return false
}

func setEntryType(_, _ *EntryType) {}
