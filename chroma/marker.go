package chroma

import (
	"chromaspiral/quarkgl"

	"github.com/pkg/errors"
)

const (
	// MarkerRadius is the sphere radius of one note.
	MarkerRadius = 1.0
	// MarkerSegments is the sphere tessellation in both directions.
	MarkerSegments = 32
)

// Marker is the rendered form of one note.
type Marker struct {
	Note      Note
	Placement Placement
	Mesh      *quarkgl.Mesh
}

// NewMarker builds the sphere for n as entry n.Index of total notes.
func NewMarker(n Note, total int, colors *ColorTable) (*Marker, error) {
	return newMarker(n, total, colors, sphere)
}

func sphere(slices int) *quarkgl.Geometry {
	return quarkgl.SphereGeometry(MarkerRadius, MarkerSegments, MarkerSegments, slices)
}

func newMarker(n Note, total int, colors *ColorTable, geo func(slices int) *quarkgl.Geometry) (*Marker, error) {
	if colors == nil {
		return nil, errors.New("chroma: nil color table")
	}
	names := n.Names()
	mats := make([]quarkgl.Material, 0, len(names))
	for _, name := range names {
		c, err := colors.Lookup(name)
		if err != nil {
			return nil, errors.Wrapf(err, "note %d", n.Index)
		}
		mats = append(mats, quarkgl.BasicMaterial(c))
	}

	p, err := Place(n.Index, total, len(names) > 1)
	if err != nil {
		return nil, err
	}

	m := quarkgl.NewMesh(n.Name, geo(len(names)), mats...)
	m.Position = p.Position
	m.Rotation = quarkgl.V3(0, p.Rotation, 0)
	return &Marker{Note: n, Placement: p, Mesh: m}, nil
}
