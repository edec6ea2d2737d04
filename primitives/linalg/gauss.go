package linalg

import (
	"fmt"
	"math"
	"math/big"
)

// PivotEpsilon is the smallest absolute value accepted as a pivot by SolveFloat64
const PivotEpsilon = 1e-9

// SolveRat solves a * x = b over the rationals using Gaussian elimination
// with partial pivoting: the pivot of column i is the entry of largest
// absolute value among rows i..n-1, the first one in case of ties.
//
// a and b are overwritten. Returns ErrSingular if a column has no
// non-zero pivot.
func SolveRat(a *RatMatrix, b []Rat) ([]Rat, error) {
	err := checkSystem(a, len(b))
	if err != nil {
		return nil, err
	}
	n := a.rows

	absMax := new(big.Rat)
	absJ := new(big.Rat)
	factor := new(big.Rat)
	tmp := new(big.Rat)

	// Forward elimination
	for i := 0; i < n; i++ {
		maxRow := i
		absMax.Abs(a.At(i, i))
		for j := i + 1; j < n; j++ {
			absJ.Abs(a.At(j, i))
			if absJ.Cmp(absMax) > 0 {
				maxRow = j
				absMax.Set(absJ)
			}
		}
		if absMax.Sign() == 0 {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingular, i)
		}
		if maxRow != i {
			a.SwapRows(i, maxRow)
			b[i], b[maxRow] = b[maxRow], b[i]
		}

		pivot := a.At(i, i)
		for j := i + 1; j < n; j++ {
			if a.At(j, i).Sign() == 0 {
				continue
			}
			factor.Quo(a.At(j, i), pivot)
			for c := i; c < n; c++ {
				tmp.Mul(factor, a.At(i, c))
				a.At(j, c).Sub(a.At(j, c), tmp)
			}
			tmp.Mul(factor, &b[i])
			b[j].Sub(&b[j], tmp)
		}
	}

	// Back substitution
	x := make([]Rat, n)
	for i := n - 1; i >= 0; i-- {
		x[i].Set(&b[i])
		for j := i + 1; j < n; j++ {
			tmp.Mul(a.At(i, j), &x[j])
			x[i].Sub(&x[i], tmp)
		}
		x[i].Quo(&x[i], a.At(i, i))
	}

	return x, nil
}

// SolveFloat64 is SolveRat in float64 arithmetic.
// A pivot of absolute value below PivotEpsilon is treated as zero.
//
// Values are exact only while all intermediate results stay below 2^53.
func SolveFloat64(a *Float64Matrix, b []Float64) ([]Float64, error) {
	err := checkSystem(a, len(b))
	if err != nil {
		return nil, err
	}
	n := a.rows

	for i := 0; i < n; i++ {
		maxRow := i
		for j := i + 1; j < n; j++ {
			if math.Abs(*a.At(j, i)) > math.Abs(*a.At(maxRow, i)) {
				maxRow = j
			}
		}
		if math.Abs(*a.At(maxRow, i)) < PivotEpsilon {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingular, i)
		}
		if maxRow != i {
			a.SwapRows(i, maxRow)
			b[i], b[maxRow] = b[maxRow], b[i]
		}

		for j := i + 1; j < n; j++ {
			factor := *a.At(j, i) / *a.At(i, i)
			for c := i; c < n; c++ {
				*a.At(j, c) -= factor * *a.At(i, c)
			}
			b[j] -= factor * b[i]
		}
	}

	x := make([]Float64, n)
	for i := n - 1; i >= 0; i-- {
		x[i] = b[i]
		for j := i + 1; j < n; j++ {
			x[i] -= *a.At(i, j) * x[j]
		}
		x[i] /= *a.At(i, i)
	}

	return x, nil
}
