package radix

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		digits   string
		base     int
		expected int64
	}{
		{"1A", 16, 26},
		{"1a", 16, 26},
		{"111", 2, 7},
		{"0", 2, 0},
		{"4", 10, 4},
		{"213", 4, 39},
		{"zz", 36, 35*36 + 35},
		{"ZZ", 36, 35*36 + 35},
		{"777", 8, 511},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_base%d", tc.digits, tc.base), func(t *testing.T) {
			v, err := Decode(tc.digits, tc.base)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v.Int64())
		})
	}
}

func TestDecodeLarge(t *testing.T) {
	// more than 64 bits
	v, err := Decode("FFFFFFFFFFFFFFFFFFFF", 16)
	require.NoError(t, err)
	assert.Equal(t, "1208925819614629174706175", v.String())

	v, err = Decode("3gjrnomdb1ahrb25", 36)
	require.NoError(t, err)
	expected, _ := new(big.Int).SetString("3gjrnomdb1ahrb25", 36)
	assert.Equal(t, 0, expected.Cmp(v))

	huge := "1" + fmt.Sprintf("%0100d", 0)
	v, err = Decode(huge, 10)
	require.NoError(t, err)
	assert.Equal(t, huge, v.String())
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		digits string
		base   int
		err    error
	}{
		{"2", 2, ErrMalformedDigit},
		{"1g", 16, ErrMalformedDigit},
		{"", 10, ErrMalformedDigit},
		{"12-3", 10, ErrMalformedDigit},
		{" 1", 10, ErrMalformedDigit},
		{"1", 1, ErrBase},
		{"1", 37, ErrBase},
		{"1", 0, ErrBase},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q_base%d", tc.digits, tc.base), func(t *testing.T) {
			v, err := Decode(tc.digits, tc.base)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecodeMonotonic(t *testing.T) {
	for base := MinBase; base <= MaxBase; base++ {
		prev := big.NewInt(-1)
		for i := int64(0); i < 200; i++ {
			s := big.NewInt(i).Text(base)
			v, err := Decode(s, base)
			require.NoError(t, err)
			assert.Equal(t, 1, v.Cmp(prev), "base %d not monotonic at %s", base, s)
			prev = v
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	v, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	for base := MinBase; base <= MaxBase; base++ {
		s, err := Encode(v, base)
		require.NoError(t, err)
		w, err := Decode(s, base)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(w), "base %d", base)
	}

	_, err := Encode(big.NewInt(10), 40)
	assert.ErrorIs(t, err, ErrBase)
	_, err = Encode(big.NewInt(-1), 10)
	assert.Error(t, err)
}
