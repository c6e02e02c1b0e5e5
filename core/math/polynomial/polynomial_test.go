package polynomial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldshare/sss-lib/core/math/gf"
	"github.com/fieldshare/sss-lib/pkg/hash"
)

func newField(t *testing.T, order uint64) gf.Field {
	field, err := gf.New(order)
	require.NoError(t, err)
	return field
}

func elems(t *testing.T, field gf.Field, xs ...uint64) []gf.Element {
	out := make([]gf.Element, len(xs))
	for i, x := range xs {
		e, err := field.FromUint64(x)
		require.NoError(t, err)
		out[i] = e
	}
	return out
}

func TestNewFromTrimsTrailingZeros(t *testing.T) {
	field := newField(t, 257)

	p := NewFrom(field, elems(t, field, 3, 2, 0, 0))
	assert.Equal(t, 1, p.Degree())

	zero := NewFrom(field, elems(t, field, 0, 0, 0))
	assert.True(t, zero.IsZero())
	assert.Equal(t, -1, zero.Degree())
	assert.True(t, zero.Constant().IsZero())
}

func TestEvaluate(t *testing.T) {
	field := newField(t, 257)

	// f(X) = 3 + 2X + X², f(5) = 38
	p := NewFrom(field, elems(t, field, 3, 2, 1))
	x := elems(t, field, 5)[0]
	assert.Equal(t, uint64(38), p.Evaluate(x).Uint64())
	assert.Equal(t, uint64(3), p.Evaluate(field.Zero()).Uint64())
}

func TestRandom(t *testing.T) {
	field := newField(t, 257)
	constant := elems(t, field, 42)[0]

	rand := hash.New().Fork([]byte("random polynomial test")).Digest()
	p, err := Random(field, 4, constant, rand)
	require.NoError(t, err)

	assert.True(t, p.Constant().Equal(constant))
	assert.LessOrEqual(t, p.Degree(), 4)
	assert.True(t, p.Evaluate(field.Zero()).Equal(constant))
}

func TestRandomNilConstant(t *testing.T) {
	field := newField(t, 257)
	p, err := Random(field, 2, nil, nil)
	require.NoError(t, err)
	assert.True(t, p.Constant().IsZero())
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	field := newField(t, 257)
	constant := elems(t, field, 7)[0]

	p1, err := Random(field, 5, constant, hash.New().Fork([]byte("seed")).Digest())
	require.NoError(t, err)
	p2, err := Random(field, 5, constant, hash.New().Fork([]byte("seed")).Digest())
	require.NoError(t, err)
	assert.True(t, p1.Equal(p2))
}

func TestArithmetic(t *testing.T) {
	field := newField(t, 257)

	// p = 1 + 2X, q = 3 + X²
	p := NewFrom(field, elems(t, field, 1, 2))
	q := NewFrom(field, elems(t, field, 3, 0, 1))

	sum := p.Add(q)
	assert.Equal(t, []uint64{4, 2, 1}, coefficientValues(sum))

	// (1+2X)(3+X²) = 3 + 6X + X² + 2X³
	product := p.Mul(q)
	assert.Equal(t, []uint64{3, 6, 1, 2}, coefficientValues(product))

	scaled := p.MulScalar(elems(t, field, 10)[0])
	assert.Equal(t, []uint64{10, 20}, coefficientValues(scaled))
}

func TestAddCancellation(t *testing.T) {
	field := newField(t, 257)
	p := NewFrom(field, elems(t, field, 1, 2, 5))
	sum := p.Add(p.MulScalar(field.One().Neg()))
	assert.True(t, sum.IsZero())
}

func TestQuoRem(t *testing.T) {
	field := newField(t, 257)

	// numerator = (X+3)(X²+1) + 7
	divisor := NewFrom(field, elems(t, field, 3, 1))
	quotient := NewFrom(field, elems(t, field, 1, 0, 1))
	remainder := NewFrom(field, elems(t, field, 7))

	numerator := divisor.Mul(quotient).Add(remainder)
	q, r, err := QuoRem(numerator, divisor)
	require.NoError(t, err)
	assert.True(t, q.Equal(quotient))
	assert.True(t, r.Equal(remainder))
}

func TestQuoRemExact(t *testing.T) {
	field := newField(t, 256)

	divisor := NewFrom(field, elems(t, field, 5, 1))
	quotient := NewFrom(field, elems(t, field, 9, 3, 1))

	q, r, err := QuoRem(divisor.Mul(quotient), divisor)
	require.NoError(t, err)
	assert.True(t, q.Equal(quotient))
	assert.True(t, r.IsZero())
}

func TestQuoRemShortNumerator(t *testing.T) {
	field := newField(t, 257)

	numerator := NewFrom(field, elems(t, field, 5))
	divisor := NewFrom(field, elems(t, field, 0, 0, 1))

	q, r, err := QuoRem(numerator, divisor)
	require.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.True(t, r.Equal(numerator))
}

func TestQuoRemByZero(t *testing.T) {
	field := newField(t, 257)
	p := NewFrom(field, elems(t, field, 1, 2))
	_, _, err := QuoRem(p, Zero(field))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func coefficientValues(p *Polynomial) []uint64 {
	out := make([]uint64, 0, p.Degree()+1)
	for _, c := range p.Coefficients() {
		out = append(out, c.Uint64())
	}
	return out
}
