package rabinids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldshare/sss-lib/core/math/gf"
	"github.com/fieldshare/sss-lib/protocols/shamir"
)

func TestDisperseShape(t *testing.T) {
	scheme, err := NewScheme(7, 3, 257)
	require.NoError(t, err)

	data := []uint64{10, 20, 30, 40, 50, 60, 70, 80, 90}
	blocks, err := scheme.Disperse(data)
	require.NoError(t, err)
	require.Len(t, blocks, 7)
	for i, block := range blocks {
		assert.Equal(t, uint64(i+1), block.X)
		assert.Len(t, block.Y, 3)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, order := range []uint64{257, 256} {
		scheme, err := NewScheme(7, 3, order)
		require.NoError(t, err)

		data := []uint64{10, 20, 30, 40, 50, 60, 70, 80, 90}
		blocks, err := scheme.Disperse(data)
		require.NoError(t, err)

		// any k blocks suffice, in any order
		subset := []Block{blocks[6], blocks[2], blocks[4]}
		got, err := scheme.Reconstruct(subset, shamir.Lagrange)
		require.NoError(t, err)
		assert.Equal(t, data, got, "order %d", order)

		got, err = scheme.Reconstruct(blocks, shamir.Lagrange)
		require.NoError(t, err)
		assert.Equal(t, data, got, "order %d", order)
	}
}

func TestRoundTripSingleSegment(t *testing.T) {
	scheme, err := NewScheme(5, 2, 257)
	require.NoError(t, err)

	data := []uint64{123, 231}
	blocks, err := scheme.Disperse(data)
	require.NoError(t, err)

	got, err := scheme.Reconstruct(blocks[1:3], shamir.Lagrange)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestBerlekampWelchReconstruction(t *testing.T) {
	scheme, err := NewScheme(7, 3, 257)
	require.NoError(t, err)

	data := []uint64{10, 20, 30, 40, 50, 60}
	blocks, err := scheme.Disperse(data)
	require.NoError(t, err)

	// corrupt every evaluation of two blocks, within tolerance
	// ⌊(7−3)/2⌋ = 2 of the decoder
	for _, i := range []int{1, 4} {
		for j := range blocks[i].Y {
			blocks[i].Y[j] = (blocks[i].Y[j] + 7) % 257
		}
	}

	got, err := scheme.Reconstruct(blocks, shamir.BerlekampWelch)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLengthNotMultipleOfK(t *testing.T) {
	scheme, err := NewScheme(7, 3, 257)
	require.NoError(t, err)

	_, err = scheme.Disperse([]uint64{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrLengthNotMultipleOfK)
}

func TestSymbolOutOfRange(t *testing.T) {
	scheme, err := NewScheme(7, 3, 257)
	require.NoError(t, err)

	_, err = scheme.Disperse([]uint64{1, 2, 300})
	assert.ErrorIs(t, err, gf.ErrOutOfRange)
}

func TestReconstructValidation(t *testing.T) {
	scheme, err := NewScheme(7, 3, 257)
	require.NoError(t, err)

	data := []uint64{10, 20, 30}
	blocks, err := scheme.Disperse(data)
	require.NoError(t, err)

	_, err = scheme.Reconstruct(nil, shamir.Lagrange)
	assert.ErrorIs(t, err, ErrNoBlocks)

	_, err = scheme.Reconstruct(blocks[:2], shamir.Lagrange)
	assert.ErrorIs(t, err, ErrTooFewBlocks)

	_, err = scheme.Reconstruct([]Block{blocks[0], blocks[0], blocks[1]}, shamir.Lagrange)
	assert.ErrorIs(t, err, ErrDuplicateBlock)

	ragged := []Block{blocks[0], blocks[1], {X: 3, Y: nil}}
	_, err = scheme.Reconstruct(ragged, shamir.Lagrange)
	assert.ErrorIs(t, err, ErrRaggedBlocks)

	_, err = scheme.Reconstruct(blocks, shamir.Decoder(42))
	assert.ErrorIs(t, err, shamir.ErrUnknownDecoder)
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := NewScheme(3, 5, 257)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewScheme(7, 3, 10)
	assert.ErrorIs(t, err, gf.ErrInvalidOrder)
}
