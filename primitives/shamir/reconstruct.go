package shamir

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/shaih/go-polyrecon/primitives/linalg"
	"github.com/shaih/go-polyrecon/primitives/polynomial"
	log "github.com/sirupsen/logrus"
)

// Reconstruction is the result of interpolating the first K shares of a test case
type Reconstruction struct {
	// Secret is the constant term, rounded to the nearest integer
	Secret *big.Int
	// Polynomial is the interpolated polynomial.
	// In float arithmetic this is Float with rounded coefficients.
	Polynomial *polynomial.Polynomial
	// Float is the interpolated polynomial in float arithmetic, nil otherwise
	Float      *polynomial.Float64Polynomial
	Arithmetic Arithmetic
}

// Validation lists the shares that do not lie on the reconstructed polynomial
type Validation struct {
	// Checked is true if there were redundant shares (N > K) and they were checked
	Checked bool
	// Invalid holds the sorted 1-based indices of the shares that are off the curve
	Invalid []int
}

// None returns true if validation took place and found no invalid share
func (v *Validation) None() bool {
	return v.Checked && len(v.Invalid) == 0
}

func (v *Validation) String() string {
	if !v.Checked {
		return "unchecked"
	}
	if len(v.Invalid) == 0 {
		return "none"
	}
	s := make([]string, len(v.Invalid))
	for i, idx := range v.Invalid {
		s[i] = strconv.Itoa(idx)
	}
	return strings.Join(s, ", ")
}

// Reconstruct interpolates the polynomial through the first K shares of tc
// and returns it together with its constant term.
// tc is not modified.
func Reconstruct(tc *TestCase, opts Options) (*Reconstruction, error) {
	if err := opts.check(); err != nil {
		return nil, err
	}
	if err := tc.Check(opts.MaxShares); err != nil {
		return nil, err
	}

	myLog := log.WithFields(log.Fields{
		"n":          tc.N,
		"k":          tc.K,
		"arithmetic": opts.Arithmetic,
	})

	ys, err := tc.values(tc.K)
	if err != nil {
		return nil, err
	}

	var rec *Reconstruction
	if opts.Arithmetic == ArithmeticFloat {
		rec, err = reconstructFloat64(tc.K, ys)
	} else {
		rec, err = reconstructRat(tc.K, ys)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot interpolate the first %d shares: %w", tc.K, err)
	}

	myLog.Debugf("reconstructed polynomial %v", rec.Polynomial)
	return rec, nil
}

func reconstructRat(k int, ys []*big.Int) (*Reconstruction, error) {
	a := linalg.VandermondeRat(k)
	b := make([]linalg.Rat, k)
	for i := range ys {
		b[i].SetInt(ys[i])
	}
	x, err := linalg.SolveRat(a, b)
	if err != nil {
		return nil, err
	}

	p := &polynomial.Polynomial{Coefficients: x}
	if !p.IsIntegral() {
		log.Debugf("polynomial %v has non-integer coefficients", p)
	}
	constant := p.Constant()
	if !constant.IsInt() {
		log.Infof("constant term %s is not an integer, rounding", constant.RatString())
	}
	return &Reconstruction{
		Secret:     polynomial.RoundRat(constant),
		Polynomial: p,
		Arithmetic: ArithmeticExact,
	}, nil
}

func reconstructFloat64(k int, ys []*big.Int) (*Reconstruction, error) {
	a := linalg.VandermondeFloat64(k)
	b := make([]linalg.Float64, k)
	for i := range ys {
		b[i] = intToFloat64(ys[i])
	}
	x, err := linalg.SolveFloat64(a, b)
	if err != nil {
		return nil, err
	}

	f := &polynomial.Float64Polynomial{Coefficients: x}
	c := f.Constant()
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return nil, fmt.Errorf("%w: constant term is %v", ErrRange, c)
	}
	secret, _ := big.NewFloat(math.Round(c)).Int(nil)
	return &Reconstruction{
		Secret:     secret,
		Polynomial: f.Rounded(),
		Float:      f,
		Arithmetic: ArithmeticFloat,
	}, nil
}

func intToFloat64(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

// Validate checks every share of tc, not only the first K, against the
// reconstructed polynomial. Share i (1-based) is invalid when
// |y_i - p(i)| >= opts.Tolerance.
// A share that cannot be decoded aborts the validation.
func Validate(tc *TestCase, rec *Reconstruction, opts Options) (*Validation, error) {
	if err := opts.check(); err != nil {
		return nil, err
	}
	if err := tc.Check(opts.MaxShares); err != nil {
		return nil, err
	}

	ys, err := tc.values(tc.N)
	if err != nil {
		return nil, fmt.Errorf("validation aborted: %w", err)
	}

	var onCurve func(i int) bool
	if rec.Float != nil {
		fys := make([]float64, tc.N)
		for i := range ys {
			fys[i] = intToFloat64(ys[i])
			if math.IsInf(fys[i], 0) {
				return nil, fmt.Errorf("%w: share %d", ErrRange, i+1)
			}
		}
		onCurve = func(i int) bool {
			y := rec.Float.Evaluate(float64(tc.X(i)))
			return math.Abs(fys[i]-y) < opts.Tolerance
		}
	} else {
		tol := new(big.Rat).SetFloat64(opts.Tolerance)
		diff := new(big.Rat)
		onCurve = func(i int) bool {
			diff.SetInt(ys[i])
			diff.Sub(diff, rec.Polynomial.EvaluateInt(int64(tc.X(i))))
			diff.Abs(diff)
			return diff.Cmp(tol) < 0
		}
	}

	v := &Validation{Checked: true, Invalid: []int{}}
	for i := 0; i < tc.N; i++ {
		if !onCurve(i) {
			log.WithFields(log.Fields{
				"share": i + 1,
				"base":  tc.Shares[i].Base,
			}).Info("share is not on the reconstructed polynomial")
			v.Invalid = append(v.Invalid, i+1)
		}
	}
	sort.Ints(v.Invalid)
	return v, nil
}

// Process reconstructs the secret of tc and, when N > K, validates all its shares.
// Without redundant shares the returned Validation is unchecked.
// On error, neither a reconstruction nor a validation is returned.
func Process(tc *TestCase, opts Options) (*Reconstruction, *Validation, error) {
	rec, err := Reconstruct(tc, opts)
	if err != nil {
		return nil, nil, err
	}
	if tc.N <= tc.K {
		return rec, &Validation{}, nil
	}
	v, err := Validate(tc, rec, opts)
	if err != nil {
		return nil, nil, err
	}
	return rec, v, nil
}
