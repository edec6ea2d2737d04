// Package radix converts digit strings in bases 2 to 36 to and from big integers
package radix

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// MinBase is the smallest supported base
	MinBase = 2
	// MaxBase is the largest supported base (0-9 then a-z)
	MaxBase = 36
)

var (
	// ErrBase is returned when the base is outside [MinBase, MaxBase]
	ErrBase = errors.New("radix: unsupported base")
	// ErrMalformedDigit is returned when a digit string contains a character
	// that is not a valid digit for the declared base
	ErrMalformedDigit = errors.New("radix: malformed digit")
)

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrBase, base, MinBase, MaxBase)
	}
	return nil
}

// digitValue returns the value of c as a digit, or -1 if c is not alphanumeric.
// Letters are case-insensitive: a=A=10, ..., z=Z=35
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// Decode returns the integer represented by digits in the given base.
// Digits are big-endian: the first character is the most significant.
func Decode(digits string, base int) (*big.Int, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: empty digit string", ErrMalformedDigit)
	}

	bigBase := big.NewInt(int64(base))
	result := new(big.Int)
	d := new(big.Int)
	for i := 0; i < len(digits); i++ {
		v := digitValue(digits[i])
		if v < 0 || v >= base {
			return nil, fmt.Errorf("%w: %q at position %d is not a base-%d digit",
				ErrMalformedDigit, digits[i], i, base)
		}
		// result = result*base + v
		result.Mul(result, bigBase)
		result.Add(result, d.SetInt64(int64(v)))
	}
	return result, nil
}

// Encode returns the lowercase digit string of v in the given base.
// v must be non-negative
func Encode(v *big.Int, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("radix: cannot encode negative value %s", v)
	}
	return strings.ToLower(v.Text(base)), nil
}
