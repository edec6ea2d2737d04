package shamir

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/shaih/go-polyrecon/primitives/polynomial"
	"github.com/shaih/go-polyrecon/primitives/radix"
)

// DefaultCoefficientBits is the default size of the random coefficients of the dealer
const DefaultCoefficientBits = 64

// DealParams parameterizes GenerateShares
type DealParams struct {
	// CoefficientBits is the size in bits of the random non-constant coefficients
	CoefficientBits int
	// Bases are the bases in which share values are encoded, cycling over shares.
	// If empty, bases are drawn at random in [2,36].
	Bases []int
	// Key seeds the coefficients and bases. If nil, a fresh random key is used.
	Key *polynomial.Key
	// MaxShares bounds n. If 0, DefaultMaxShares is used.
	MaxShares int
}

// basesNonce is the nonce of the key stream used to draw bases.
// Coefficients use nonces 0 to k-2.
const basesNonce = 1 << 32

// GenerateShares creates a test case with n shares of a k-out-of-n sharing of secret.
// The polynomial has secret as constant term and random non-negative integer coefficients.
// Share i (1-based) holds f(i) encoded in its base.
func GenerateShares(secret *big.Int, k int, n int, params DealParams) (*TestCase, *polynomial.Polynomial, error) {
	if secret.Sign() < 0 {
		return nil, nil, errors.New("secret must be non-negative")
	}
	if params.MaxShares == 0 {
		params.MaxShares = DefaultMaxShares
	}
	if k < 1 || k > n {
		return nil, nil, fmt.Errorf("%w: invalid threshold k=%d for n=%d", ErrDimension, k, n)
	}
	if n > params.MaxShares {
		return nil, nil, fmt.Errorf("%w: n=%d exceeds the maximum of %d shares", ErrDimension, n, params.MaxShares)
	}
	for _, b := range params.Bases {
		if b < radix.MinBase || b > radix.MaxBase {
			return nil, nil, fmt.Errorf("%w: %d", radix.ErrBase, b)
		}
	}
	if params.CoefficientBits == 0 {
		params.CoefficientBits = DefaultCoefficientBits
	}

	key := params.Key
	if key == nil {
		fresh, err := polynomial.NewKey()
		if err != nil {
			return nil, nil, err
		}
		key = &fresh
	}

	f, err := polynomial.Random(secret, k, params.CoefficientBits, key)
	if err != nil {
		return nil, nil, err
	}

	bases := params.Bases
	if len(bases) == 0 {
		bases, err = randomBases(polynomial.Stream(key, basesNonce), n)
		if err != nil {
			return nil, nil, err
		}
	}

	tc := &TestCase{
		N:      n,
		K:      k,
		Shares: make([]Share, n),
	}
	for i := 0; i < n; i++ {
		// coefficients are integers so f(x) is too
		y := f.EvaluateInt(int64(tc.X(i))).Num()
		base := bases[i%len(bases)]
		digits, err := radix.Encode(y, base)
		if err != nil {
			return nil, nil, fmt.Errorf("share %d: %w", i+1, err)
		}
		tc.Shares[i] = Share{Base: base, Digits: digits}
	}
	return tc, f, nil
}

func randomBases(r io.Reader, n int) ([]int, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(r, buf)
	if err != nil {
		return nil, err
	}
	bases := make([]int, n)
	for i := range buf {
		bases[i] = radix.MinBase + int(buf[i])%(radix.MaxBase-radix.MinBase+1)
	}
	return bases, nil
}
