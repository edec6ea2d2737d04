package polynomial

import (
	"fmt"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegree(t *testing.T) {
	var p Polynomial
	assert.Equal(t, -1, p.Degree())
	assert.Equal(t, -1, FromInts(0).Degree())
	assert.Equal(t, 0, FromInts(5).Degree())
	assert.Equal(t, 1, FromInts(0, 1, 1).Degree())
	assert.Equal(t, 3, FromInts(1, 1, 1, 1).Degree())
}

func TestEvaluate(t *testing.T) {
	assert := assert.New(t)

	// x^2 + 2
	p := FromInts(1, 0, 2)
	expected := []int64{2, 3, 6, 11, 18}
	for x, y := range expected {
		assert.Equal(0, p.EvaluateInt(int64(x)).Cmp(big.NewRat(y, 1)), "p(%d)", x)
	}
	assert.Equal("2", p.Constant().RatString())

	f := &Float64Polynomial{Coefficients: []float64{1, 0, 2}}
	for x, y := range expected {
		assert.Equal(float64(y), f.Evaluate(float64(x)))
	}
	assert.Equal(2.0, f.Constant())

	var zero Polynomial
	assert.Equal(0, zero.EvaluateInt(3).Sign())
	assert.Equal(0, zero.Constant().Sign())
}

func TestEqual(t *testing.T) {
	assert := assert.New(t)

	assert.True(FromInts(1, 2, 3).Equal(FromInts(1, 2, 3)))
	assert.True(FromInts(0, 0, 2, 3).Equal(FromInts(2, 3)))
	assert.False(FromInts(1, 2, 3).Equal(FromInts(1, 2, 4)))
	assert.False(FromInts(1, 2, 3).Equal(FromInts(2, 3)))

	p := FromInts(1, 2)
	assert.True(p.IsIntegral())
	p.Coefficients[0].SetFrac64(1, 2)
	assert.False(p.IsIntegral())
	assert.Equal("[1/2 2]", p.String())
}

func TestFloat64Rounded(t *testing.T) {
	f := &Float64Polynomial{Coefficients: []float64{0.9999999, 2.0000001, -3.4}}
	assert.True(t, f.Rounded().Equal(FromInts(1, 2, -3)))
}

func TestRoundRat(t *testing.T) {
	testCases := []struct {
		num, den int64
		expected int64
	}{
		{4, 1, 4},
		{7, 2, 4},
		{-7, 2, -4},
		{5, 3, 2},
		{4, 3, 1},
		{-4, 3, -1},
		{1, 3, 0},
		{-1, 2, -1},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d/%d", tc.num, tc.den), func(t *testing.T) {
			assert.Equal(t, tc.expected, RoundRat(big.NewRat(tc.num, tc.den)).Int64())
		})
	}
}

func TestKeyFromSeed(t *testing.T) {
	k1, err := KeyFromSeed([]byte("seed"))
	require.NoError(t, err)
	k2, err := KeyFromSeed([]byte("seed"))
	require.NoError(t, err)
	k3, err := KeyFromSeed([]byte("other seed"))
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)

	k4, err := NewKey()
	require.NoError(t, err)
	assert.NotEqual(t, Key{}, k4)
}

func TestStream(t *testing.T) {
	key, err := KeyFromSeed([]byte("stream"))
	require.NoError(t, err)

	a := make([]byte, 64)
	b := make([]byte, 64)
	_, err = io.ReadFull(Stream(&key, 1), a)
	require.NoError(t, err)
	_, err = io.ReadFull(Stream(&key, 1), b)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = io.ReadFull(Stream(&key, 2), b)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRandomInt(t *testing.T) {
	key, err := KeyFromSeed([]byte("bits"))
	require.NoError(t, err)

	for _, bits := range []int{0, 1, 7, 8, 9, 63, 64, 65, 200} {
		v, err := RandomInt(Stream(&key, uint64(bits)), bits)
		require.NoError(t, err)
		assert.True(t, v.BitLen() <= bits, "bits=%d got %d", bits, v.BitLen())
		assert.True(t, v.Sign() >= 0)
	}
}

func TestRandom(t *testing.T) {
	key, err := KeyFromSeed([]byte("random"))
	require.NoError(t, err)

	secret := big.NewInt(1234)
	for k := 1; k <= 10; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			p, err := Random(secret, k, 32, &key)
			require.NoError(t, err)
			require.Len(t, p.Coefficients, k)
			assert.Equal(t, k-1, p.Degree())
			assert.True(t, p.IsIntegral())
			assert.Equal(t, "1234", p.Constant().RatString())

			q, err := Random(secret, k, 32, &key)
			require.NoError(t, err)
			assert.True(t, p.Equal(q))
		})
	}

	_, err = Random(secret, 0, 32, &key)
	assert.Error(t, err)
}
