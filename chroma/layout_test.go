package chroma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceFormulas(t *testing.T) {
	const total = 13
	for i := 0; i < total; i++ {
		p, err := Place(i, total, false)
		require.NoError(t, err)

		angle := 2 * math.Pi * float64(i) / float64(total-1)
		height := 5 * float64(i) / float64(total-1)
		assert.Equal(t, angle, p.Angle, "index %d", i)
		assert.Equal(t, height, p.Height, "index %d", i)
		assert.Equal(t, 5*math.Cos(angle), p.Position.X, "index %d", i)
		assert.Equal(t, height, p.Position.Y, "index %d", i)
		assert.Equal(t, 5*math.Sin(angle), p.Position.Z, "index %d", i)
		assert.Zero(t, p.Rotation)
	}
}

func TestPlaceEndpoints(t *testing.T) {
	for _, total := range []int{2, 5, 13, 85} {
		first, err := Place(0, total, false)
		require.NoError(t, err)
		assert.Zero(t, first.Angle)
		assert.Zero(t, first.Height)

		last, err := Place(total-1, total, false)
		require.NoError(t, err)
		assert.InDelta(t, 2*math.Pi, last.Angle, 1e-12)
		assert.InDelta(t, 5, last.Height, 1e-12)

		// The loop closes: first and last share x and z.
		assert.InDelta(t, first.Position.X, last.Position.X, 1e-9)
		assert.InDelta(t, first.Position.Z, last.Position.Z, 1e-9)
	}
}

func TestPlaceHeightIsMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i < 13; i++ {
		p, err := Place(i, 13, false)
		require.NoError(t, err)
		assert.Greater(t, p.Height, prev)
		prev = p.Height
	}
}

func TestPlaceSplitRotation(t *testing.T) {
	p, err := Place(3, 13, true)
	require.NoError(t, err)
	assert.Equal(t, math.Pi/2, p.Rotation)
}

func TestPlaceRejectsDegenerateInput(t *testing.T) {
	cases := []struct{ index, total int }{
		{0, 1},
		{0, 0},
		{-1, 13},
		{13, 13},
	}
	for _, tc := range cases {
		_, err := Place(tc.index, tc.total, false)
		assert.ErrorIs(t, err, ErrInvalidLayout, "index %d total %d", tc.index, tc.total)
	}
}
