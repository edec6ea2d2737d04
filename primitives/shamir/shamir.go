// Package shamir reconstructs the secret of a Shamir-style sharing from shares
// whose values are digit strings in bases 2 to 36, and detects corrupted shares
// when more shares than the threshold are supplied.
package shamir

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shaih/go-polyrecon/primitives/linalg"
	"github.com/shaih/go-polyrecon/primitives/radix"
)

const (
	// DefaultTolerance is the largest difference between a decoded share value
	// and the polynomial evaluation for which the share is still on the curve (strictly less)
	DefaultTolerance = 1e-6
	// DefaultMaxShares is the default bound on the number of shares of a test case
	DefaultMaxShares = 10
)

// ErrDimension is returned when the threshold or the number of shares
// is inconsistent or exceeds the supported maximum
var ErrDimension = fmt.Errorf("shamir: %w", linalg.ErrDimension)

// ErrRange is returned in float arithmetic when share values are too large
// to be represented as float64
var ErrRange = errors.New("shamir: value out of float64 range")

// Arithmetic selects the number domain used for the elimination
type Arithmetic string

const (
	// ArithmeticExact solves the system over the rationals
	ArithmeticExact Arithmetic = "exact"
	// ArithmeticFloat solves the system with float64.
	// Results are only exact while values stay below 2^53
	ArithmeticFloat Arithmetic = "float"
)

// ParseArithmetic returns the Arithmetic named s.
// The empty string is ArithmeticExact.
func ParseArithmetic(s string) (Arithmetic, error) {
	switch Arithmetic(s) {
	case "", ArithmeticExact:
		return ArithmeticExact, nil
	case ArithmeticFloat:
		return ArithmeticFloat, nil
	}
	return "", fmt.Errorf("unknown arithmetic %q", s)
}

// Options parameterizes reconstruction and validation
type Options struct {
	Arithmetic Arithmetic
	// Tolerance is the on-curve threshold: |y - p(x)| < Tolerance is valid
	Tolerance float64
	// MaxShares bounds N
	MaxShares int
}

// DefaultOptions returns exact arithmetic with the default tolerance and bound
func DefaultOptions() Options {
	return Options{
		Arithmetic: ArithmeticExact,
		Tolerance:  DefaultTolerance,
		MaxShares:  DefaultMaxShares,
	}
}

func (opts Options) check() error {
	if _, err := ParseArithmetic(string(opts.Arithmetic)); err != nil {
		return err
	}
	if !(opts.Tolerance > 0) {
		return fmt.Errorf("tolerance must be positive, got %v", opts.Tolerance)
	}
	if opts.MaxShares < 1 {
		return fmt.Errorf("%w: max shares must be at least 1, got %d", ErrDimension, opts.MaxShares)
	}
	return nil
}

// Share is one point of the hidden polynomial.
// Its x-coordinate is implicit: the i-th share of a TestCase (0-based) has x = i+1
type Share struct {
	Base   int
	Digits string
}

// Value decodes the y-coordinate of the share
func (s *Share) Value() (*big.Int, error) {
	return radix.Decode(s.Digits, s.Base)
}

// TestCase is a set of N shares of which the first K determine the polynomial
type TestCase struct {
	N      int
	K      int
	Shares []Share
}

// X returns the x-coordinate of share i (0-based)
func (tc *TestCase) X(i int) int {
	return i + 1
}

// Check returns ErrDimension unless 1 <= K <= N <= maxShares
// and there are exactly N shares
func (tc *TestCase) Check(maxShares int) error {
	if tc.K < 1 {
		return fmt.Errorf("%w: threshold k=%d must be at least 1", ErrDimension, tc.K)
	}
	if tc.K > tc.N {
		return fmt.Errorf("%w: threshold k=%d exceeds the number of shares n=%d", ErrDimension, tc.K, tc.N)
	}
	if tc.N > maxShares {
		return fmt.Errorf("%w: n=%d exceeds the maximum of %d shares", ErrDimension, tc.N, maxShares)
	}
	if len(tc.Shares) != tc.N {
		return fmt.Errorf("%w: n=%d but %d shares supplied", ErrDimension, tc.N, len(tc.Shares))
	}
	return nil
}

// values decodes the values of shares [0,m)
func (tc *TestCase) values(m int) ([]*big.Int, error) {
	ys := make([]*big.Int, m)
	for i := 0; i < m; i++ {
		y, err := tc.Shares[i].Value()
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i+1, err)
		}
		ys[i] = y
	}
	return ys, nil
}

// Clone returns a deep copy of tc
func (tc *TestCase) Clone() *TestCase {
	res := &TestCase{
		N:      tc.N,
		K:      tc.K,
		Shares: make([]Share, len(tc.Shares)),
	}
	copy(res.Shares, tc.Shares)
	return res
}

// Corrupt returns a copy of tc where the value of share index (1-based)
// is increased by delta, encoded in the same base
func Corrupt(tc *TestCase, index int, delta *big.Int) (*TestCase, error) {
	if index < 1 || index > len(tc.Shares) {
		return nil, fmt.Errorf("%w: no share with index %d", ErrDimension, index)
	}
	res := tc.Clone()
	share := &res.Shares[index-1]
	y, err := share.Value()
	if err != nil {
		return nil, fmt.Errorf("share %d: %w", index, err)
	}
	y.Add(y, delta)
	if y.Sign() < 0 {
		return nil, errors.New("corrupted value would be negative")
	}
	share.Digits, err = radix.Encode(y, share.Base)
	if err != nil {
		return nil, fmt.Errorf("share %d: %w", index, err)
	}
	return res, nil
}
