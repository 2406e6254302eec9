package quarkgl

import "math"

// GeometryGroup is a contiguous index range drawn with one material.
type GeometryGroup struct {
	Start         int // first index
	Count         int // number of indices
	MaterialIndex int
}

// Geometry is an indexed triangle list.
type Geometry struct {
	Positions []Vec3
	Normals   []Vec3
	Indices   []uint16

	// Groups splits Indices between materials. An empty slice draws every
	// triangle with material 0.
	Groups []GeometryGroup
}

// TriangleCount returns the number of whole triangles in g.
func (g *Geometry) TriangleCount() int {
	if g == nil {
		return 0
	}
	return len(g.Indices) / 3
}

// SphereGeometry builds a UV sphere with widthSegments around the Y axis and
// heightSegments from pole to pole.
//
// The longitude range is cut into `slices` equal index groups, group i using
// material i. slices <= 1 yields a single group. widthSegments is rounded up to
// a multiple of slices.
func SphereGeometry(radius Scalar, widthSegments, heightSegments, slices int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	if slices < 1 {
		slices = 1
	}
	if rem := widthSegments % slices; rem != 0 {
		widthSegments += slices - rem
	}

	cols := widthSegments + 1
	g := &Geometry{
		Positions: make([]Vec3, 0, cols*(heightSegments+1)),
		Normals:   make([]Vec3, 0, cols*(heightSegments+1)),
		Indices:   make([]uint16, 0, widthSegments*heightSegments*6),
	}

	for iy := 0; iy <= heightSegments; iy++ {
		v := Scalar(iy) / Scalar(heightSegments)
		theta := v * math.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			u := Scalar(ix) / Scalar(widthSegments)
			phi := u * 2 * math.Pi
			n := V3(
				-math.Cos(phi)*math.Sin(theta),
				math.Cos(theta),
				math.Sin(phi)*math.Sin(theta),
			)
			g.Positions = append(g.Positions, n.Mul(radius))
			g.Normals = append(g.Normals, n)
		}
	}

	at := func(ix, iy int) uint16 { return uint16(iy*cols + ix) }
	perSlice := widthSegments / slices
	for s := 0; s < slices; s++ {
		start := len(g.Indices)
		for ix := s * perSlice; ix < (s+1)*perSlice; ix++ {
			for iy := 0; iy < heightSegments; iy++ {
				a := at(ix+1, iy)
				b := at(ix, iy)
				c := at(ix, iy+1)
				d := at(ix+1, iy+1)
				if iy != 0 {
					g.Indices = append(g.Indices, a, b, d)
				}
				if iy != heightSegments-1 {
					g.Indices = append(g.Indices, b, c, d)
				}
			}
		}
		g.Groups = append(g.Groups, GeometryGroup{
			Start:         start,
			Count:         len(g.Indices) - start,
			MaterialIndex: s,
		})
	}
	return g
}
