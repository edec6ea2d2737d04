package linalg

import "math/big"

// VandermondeRat returns the k x k matrix whose row i is
// ((i+1)^(k-1), (i+1)^(k-2), ..., (i+1), 1)
func VandermondeRat(k int) *RatMatrix {
	m := NewRatMatrix(k, k)
	x := new(big.Int)
	p := new(big.Int)
	for i := 0; i < k; i++ {
		x.SetInt64(int64(i + 1))
		p.SetInt64(1)
		// fill from the last column, where the power is 0
		for j := k - 1; j >= 0; j-- {
			m.At(i, j).SetInt(p)
			p.Mul(p, x)
		}
	}
	return m
}

// VandermondeFloat64 is the floating point version of VandermondeRat
func VandermondeFloat64(k int) *Float64Matrix {
	m := NewFloat64Matrix(k, k)
	for i := 0; i < k; i++ {
		x := float64(i + 1)
		p := 1.0
		for j := k - 1; j >= 0; j-- {
			*m.At(i, j) = p
			p *= x
		}
	}
	return m
}
