package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	assert.True(t, Equal(Num(3), Add(Num(1), Num(2))))
	assert.True(t, Equal(Str("ab"), Add(Str("a"), Str("b"))))
	assert.True(t, Equal(Str("a1"), Add(Str("a"), Num(1))))
	assert.True(t, Equal(Empty(), Add(Empty(), Num(1))))
}

func TestArithmeticAbsorption(t *testing.T) {
	assert.True(t, Equal(Empty(), Sub(Str("x"), Num(1))))
	assert.True(t, Equal(Empty(), Mul(Empty(), Empty())))
	assert.True(t, Equal(Empty(), Div(Num(1), Num(0))))
	assert.True(t, Equal(Num(8), Pow(Num(2), Num(3))))
}

func TestNeg(t *testing.T) {
	assert.True(t, Equal(Num(-5), Neg(Num(5))))
	assert.True(t, Equal(Empty(), Neg(Str("x"))))
}

func TestComparisons(t *testing.T) {
	assert.True(t, Equal(Num(1), Eq(Num(1), Num(1))))
	assert.True(t, Equal(Num(0), Eq(Num(1), Num(2))))
	assert.True(t, Equal(Num(1), Lt(Num(1), Num(2))))
	assert.True(t, Equal(Num(1), Ge(Str("b"), Str("a"))))
	assert.True(t, Equal(Empty(), Eq(Num(1), Str("1"))))
	assert.True(t, Equal(Empty(), Lt(Empty(), Num(1))))
}

func TestEqualTolerance(t *testing.T) {
	assert.True(t, Equal(Num(math.NaN()), Num(math.NaN())))
	assert.True(t, Equal(Num(math.Inf(1)), Num(math.Inf(1))))
	assert.False(t, Equal(Num(math.Inf(1)), Num(math.Inf(-1))))
	assert.True(t, Equal(Num(1.0), Num(1.0+1e-10)))
	assert.False(t, Equal(Num(1.0), Num(1.1)))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "3", FormatNumber(3))
	assert.Equal(t, "3.5", FormatNumber(3.5))
	assert.Equal(t, "-110.25", FormatNumber(-110.25))
}
