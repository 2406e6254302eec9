package quarkgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereGeometryCounts(t *testing.T) {
	g := SphereGeometry(1, 32, 32, 1)
	assert.Len(t, g.Positions, 33*33)
	assert.Len(t, g.Normals, 33*33)
	// Pole rows contribute one triangle per segment instead of two.
	assert.Equal(t, 32*(2*32-2), g.TriangleCount())
	require.Len(t, g.Groups, 1)
	assert.Equal(t, len(g.Indices), g.Groups[0].Count)

	for _, p := range g.Positions {
		assert.InDelta(t, 1, Len(p), 1e-12)
	}
}

func TestSphereGeometrySlicesSplitIndices(t *testing.T) {
	g := SphereGeometry(2, 32, 32, 2)
	require.Len(t, g.Groups, 2)
	assert.Equal(t, 0, g.Groups[0].Start)
	assert.Equal(t, g.Groups[0].Count, g.Groups[1].Start)
	assert.Equal(t, g.Groups[0].Count, g.Groups[1].Count)
	assert.Equal(t, len(g.Indices), g.Groups[0].Count+g.Groups[1].Count)
	assert.Equal(t, 0, g.Groups[0].MaterialIndex)
	assert.Equal(t, 1, g.Groups[1].MaterialIndex)
}

func TestSphereGeometryRoundsWidthToSlices(t *testing.T) {
	g := SphereGeometry(1, 31, 8, 2)
	assert.Len(t, g.Positions, 33*9)
}
