package linalg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratEntries(v ...int64) []Rat {
	res := make([]Rat, len(v))
	for i := range v {
		res[i].SetInt64(v[i])
	}
	return res
}

func TestRatMatrix(t *testing.T) {
	assert := assert.New(t)

	m := RatMatrixFromEntries(2, 3, ratEntries(1, 2, 3, 4, 5, 6))
	assert.Equal(2, m.Rows())
	assert.Equal(3, m.Columns())
	assert.Equal(int64(6), m.At(1, 2).Num().Int64())

	m.SwapRows(0, 1)
	assert.True(RatMatrixEqual(m, RatMatrixFromEntries(2, 3, ratEntries(4, 5, 6, 1, 2, 3))))

	// Set copies its argument
	x := big.NewRat(7, 2)
	m.Set(0, 0, x)
	x.SetInt64(0)
	assert.Equal(0, m.At(0, 0).Cmp(big.NewRat(7, 2)))

	// Clone is deep
	c := m.Clone()
	c.At(0, 0).SetInt64(100)
	assert.Equal(0, m.At(0, 0).Cmp(big.NewRat(7, 2)))
	assert.False(RatMatrixEqual(m, c))
	assert.False(RatMatrixEqual(m, NewRatMatrix(3, 2)))

	assert.Panics(func() { m.At(2, 0) })
	assert.Panics(func() { m.At(0, -1) })
	assert.Panics(func() { m.SwapRows(0, 5) })
	assert.Panics(func() { RatMatrixFromEntries(2, 2, ratEntries(1, 2, 3)) })
}

func TestFloat64Matrix(t *testing.T) {
	assert := assert.New(t)

	m := Float64MatrixFromEntries(2, 2, []Float64{1, 2, 3, 4})
	c := m.Clone()
	m.SwapRows(1, 0)
	assert.Equal(3.0, *m.At(0, 0))
	assert.Equal(1.0, *c.At(0, 0))
	m.SwapRows(1, 0)
	assert.True(Float64MatrixEqual(m, c))
}

func TestVandermonde(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := VandermondeRat(3)
	require.Equal(3, m.Rows())
	expected := RatMatrixFromEntries(3, 3, ratEntries(
		1, 1, 1,
		4, 2, 1,
		9, 3, 1,
	))
	assert.True(RatMatrixEqual(expected, m))

	f := VandermondeFloat64(3)
	assert.True(Float64MatrixEqual(Float64MatrixFromEntries(3, 3, []Float64{
		1, 1, 1,
		4, 2, 1,
		9, 3, 1,
	}), f))

	one := VandermondeRat(1)
	assert.Equal(0, one.At(0, 0).Cmp(big.NewRat(1, 1)))
}
