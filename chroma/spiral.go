package chroma

import (
	"chromaspiral/quarkgl"
)

// Spiral is one closed octave of markers under a single group.
type Spiral struct {
	Group   *quarkgl.Group
	Markers []*Marker
}

// NewSpiral builds the octave returned by Octave. All markers share the same
// total, so the spiral spans exactly one turn and rises from 0 to SpiralHeight.
func NewSpiral(colors *ColorTable) (*Spiral, error) {
	notes := Octave()
	total := len(notes)

	// Markers with the same material count share one geometry.
	geos := make(map[int]*quarkgl.Geometry, 2)
	shared := func(slices int) *quarkgl.Geometry {
		g, ok := geos[slices]
		if !ok {
			g = sphere(slices)
			geos[slices] = g
		}
		return g
	}

	s := &Spiral{Group: quarkgl.NewGroup("chromatic-spiral")}
	for _, n := range notes {
		m, err := newMarker(n, total, colors, shared)
		if err != nil {
			return nil, err
		}
		s.Markers = append(s.Markers, m)
		s.Group.AddMesh(m.Mesh)
	}
	return s, nil
}

// UnknownNames returns sub-names used by the spiral that colors has no entry for.
func UnknownNames(colors *ColorTable) []string {
	var out []string
	seen := make(map[string]bool)
	for _, n := range Octave() {
		for _, name := range n.Names() {
			if seen[name] || colors.Has(name) {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
