package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldshare/sss-lib/core/math/gf"
)

func matrix(t *testing.T, field gf.Field, rows [][]uint64) [][]gf.Element {
	out := make([][]gf.Element, len(rows))
	for i, row := range rows {
		out[i] = vector(t, field, row)
	}
	return out
}

func vector(t *testing.T, field gf.Field, xs []uint64) []gf.Element {
	out := make([]gf.Element, len(xs))
	for i, x := range xs {
		e, err := field.FromUint64(x)
		require.NoError(t, err)
		out[i] = e
	}
	return out
}

func checkSolution(t *testing.T, a [][]gf.Element, x, b []gf.Element) {
	for i, row := range a {
		acc := x[0].Field().Zero()
		for j := range row {
			acc = acc.Add(row[j].Mul(x[j]))
		}
		assert.True(t, acc.Equal(b[i]), "row %d", i)
	}
}

func TestSolveUnique(t *testing.T) {
	field, err := gf.New(257)
	require.NoError(t, err)

	a := matrix(t, field, [][]uint64{
		{2, 1, 1},
		{1, 3, 2},
		{1, 0, 0},
	})
	b := vector(t, field, []uint64{7, 13, 1})

	x, err := Solve(a, b)
	require.NoError(t, err)
	checkSolution(t, a, x, b)
	assert.Equal(t, uint64(1), x[0].Uint64())
}

func TestSolveBinaryField(t *testing.T) {
	field, err := gf.New(256)
	require.NoError(t, err)

	a := matrix(t, field, [][]uint64{
		{1, 2},
		{3, 5},
	})
	b := vector(t, field, []uint64{9, 30})

	x, err := Solve(a, b)
	require.NoError(t, err)
	checkSolution(t, a, x, b)
}

func TestSolveUnderdetermined(t *testing.T) {
	field, err := gf.New(257)
	require.NoError(t, err)

	// rank 1: the second row is twice the first, consistently
	a := matrix(t, field, [][]uint64{
		{1, 1},
		{2, 2},
	})
	b := vector(t, field, []uint64{2, 4})

	x, err := Solve(a, b)
	require.NoError(t, err)
	checkSolution(t, a, x, b)
	// the free variable stays zero
	assert.True(t, x[1].IsZero())
}

func TestSolveInconsistent(t *testing.T) {
	field, err := gf.New(257)
	require.NoError(t, err)

	a := matrix(t, field, [][]uint64{
		{1, 1},
		{2, 2},
	})
	b := vector(t, field, []uint64{1, 3})

	_, err = Solve(a, b)
	assert.ErrorIs(t, err, ErrSingular)
}

func TestSolveOverdetermined(t *testing.T) {
	field, err := gf.New(257)
	require.NoError(t, err)

	// three rows, two unknowns, consistent
	a := matrix(t, field, [][]uint64{
		{1, 0},
		{0, 1},
		{1, 1},
	})
	b := vector(t, field, []uint64{5, 6, 11})

	x, err := Solve(a, b)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), x[0].Uint64())
	assert.Equal(t, uint64(6), x[1].Uint64())

	// flipping one right-hand side makes it contradictory
	b = vector(t, field, []uint64{5, 6, 12})
	_, err = Solve(a, b)
	assert.ErrorIs(t, err, ErrSingular)
}

func TestSolveBadShape(t *testing.T) {
	field, err := gf.New(257)
	require.NoError(t, err)

	_, err = Solve(nil, nil)
	assert.ErrorIs(t, err, ErrBadShape)

	a := matrix(t, field, [][]uint64{{1, 2}, {3}})
	b := vector(t, field, []uint64{1, 2})
	_, err = Solve(a, b)
	assert.ErrorIs(t, err, ErrBadShape)

	a = matrix(t, field, [][]uint64{{1, 2}})
	_, err = Solve(a, b)
	assert.ErrorIs(t, err, ErrBadShape)
}
