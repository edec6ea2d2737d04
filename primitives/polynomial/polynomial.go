// Package polynomial holds polynomials with rational or float64 coefficients.
//
// Coefficients are stored highest degree first:
// p(x) = Coefficients[0] * x^(k-1) + ... + Coefficients[k-1]
// so that the last coefficient is the constant term p(0).
package polynomial

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Polynomial is a representation of a polynomial over the rationals
type Polynomial struct {
	Coefficients []big.Rat
}

// FromInts returns the polynomial with the given integer coefficients,
// highest degree first
func FromInts(coefs ...int64) *Polynomial {
	p := &Polynomial{Coefficients: make([]big.Rat, len(coefs))}
	for i, c := range coefs {
		p.Coefficients[i].SetInt64(c)
	}
	return p
}

// FromBigInts is FromInts for big integers
func FromBigInts(coefs []*big.Int) *Polynomial {
	p := &Polynomial{Coefficients: make([]big.Rat, len(coefs))}
	for i, c := range coefs {
		p.Coefficients[i].SetInt(c)
	}
	return p
}

// Degree gets the degree of the polynomial
// The degree of the zero polynomial is -1
func (p *Polynomial) Degree() int {
	for i := range p.Coefficients {
		if p.Coefficients[i].Sign() != 0 {
			return len(p.Coefficients) - 1 - i
		}
	}
	return -1
}

// Constant returns a copy of the constant term p(0)
func (p *Polynomial) Constant() *big.Rat {
	if len(p.Coefficients) == 0 {
		return new(big.Rat)
	}
	return new(big.Rat).Set(&p.Coefficients[len(p.Coefficients)-1])
}

// Evaluate evaluates the polynomial p at a point x using Horner's rule
func (p *Polynomial) Evaluate(x *big.Rat) *big.Rat {
	res := new(big.Rat)
	for i := range p.Coefficients {
		res.Mul(res, x)
		res.Add(res, &p.Coefficients[i])
	}
	return res
}

// EvaluateInt evaluates p at the integer x
func (p *Polynomial) EvaluateInt(x int64) *big.Rat {
	return p.Evaluate(new(big.Rat).SetInt64(x))
}

// IsIntegral returns true if all the coefficients are integers
func (p *Polynomial) IsIntegral() bool {
	for i := range p.Coefficients {
		if !p.Coefficients[i].IsInt() {
			return false
		}
	}
	return true
}

// Equal returns true if p and q have the same coefficients.
// Leading zeros are ignored.
func (p *Polynomial) Equal(q *Polynomial) bool {
	dp, dq := p.Degree(), q.Degree()
	if dp != dq {
		return false
	}
	for i := 0; i <= dp; i++ {
		cp := &p.Coefficients[len(p.Coefficients)-1-i]
		cq := &q.Coefficients[len(q.Coefficients)-1-i]
		if cp.Cmp(cq) != 0 {
			return false
		}
	}
	return true
}

func (p *Polynomial) String() string {
	terms := make([]string, len(p.Coefficients))
	for i := range p.Coefficients {
		terms[i] = p.Coefficients[i].RatString()
	}
	return fmt.Sprintf("[%s]", strings.Join(terms, " "))
}

// Float64Polynomial is a polynomial with float64 coefficients,
// stored highest degree first like Polynomial
type Float64Polynomial struct {
	Coefficients []float64
}

// Constant returns the constant term p(0)
func (p *Float64Polynomial) Constant() float64 {
	if len(p.Coefficients) == 0 {
		return 0
	}
	return p.Coefficients[len(p.Coefficients)-1]
}

// Evaluate evaluates the polynomial p at a point x using Horner's rule
func (p *Float64Polynomial) Evaluate(x float64) float64 {
	res := 0.0
	for _, c := range p.Coefficients {
		res = res*x + c
	}
	return res
}

// Rounded returns the polynomial with every coefficient rounded to
// the nearest integer
func (p *Float64Polynomial) Rounded() *Polynomial {
	r := &Polynomial{Coefficients: make([]big.Rat, len(p.Coefficients))}
	for i, c := range p.Coefficients {
		r.Coefficients[i].SetFloat64(math.Round(c))
	}
	return r
}

// RoundRat rounds r to the nearest integer, halves away from zero
func RoundRat(r *big.Rat) *big.Int {
	if r.IsInt() {
		return new(big.Int).Set(r.Num())
	}
	// |num|*2 + denom, divided by 2*denom, rounds |r| half up
	num := new(big.Int).Abs(r.Num())
	num.Lsh(num, 1)
	num.Add(num, r.Denom())
	den := new(big.Int).Lsh(r.Denom(), 1)
	res := num.Quo(num, den)
	if r.Sign() < 0 {
		res.Neg(res)
	}
	return res
}
