package quarkgl

import (
	"context"
	"math"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Renderer is a depth-buffered software rasterizer.
//
// Create it once and reuse it: the depth buffer and triangle scratch space are
// kept between frames and only grow.
type Renderer struct {
	ClearColor Color

	width   int
	height  int
	workers int

	depth []float64
	tris  []screenTri

	lastTris int
}

// NewRenderer returns a renderer with an output size of w×h.
func NewRenderer(w, h int) *Renderer {
	r := &Renderer{ClearColor: RGB(0, 0, 0), workers: runtime.NumCPU()}
	r.SetSize(w, h)
	return r
}

// SetSize sets the output size. Non-positive sizes disable rendering.
func (r *Renderer) SetSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.width, r.height = w, h
	if cap(r.depth) < w*h {
		r.depth = make([]float64, w*h)
	} else {
		r.depth = r.depth[:w*h]
	}
}

func (r *Renderer) Size() (w, h int) { return r.width, r.height }

// SetWorkers sets the number of raster bands rendered in parallel.
func (r *Renderer) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

func (r *Renderer) Workers() int { return r.workers }

// LastTriangles reports how many triangles survived clipping in the last frame.
func (r *Renderer) LastTriangles() int { return r.lastTris }

// Render renders s into t. Pixels outside both the renderer size and the target
// are skipped. A panic raised by t while rasterizing is returned as an error.
func (r *Renderer) Render(t Target, s *Scene) error {
	return r.RenderContext(context.Background(), t, s)
}

// RenderContext is Render with cancellation checked between raster rows.
func (r *Renderer) RenderContext(ctx context.Context, t Target, s *Scene) error {
	if r == nil || t == nil || s == nil || s.Camera == nil {
		return nil
	}
	tw, th := t.Size()
	w, h := min(r.width, tw), min(r.height, th)
	if w <= 0 || h <= 0 {
		return nil
	}
	t.Clear(r.ClearColor)
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}

	r.project(s, w, h)
	r.lastTris = len(r.tris)
	if len(r.tris) == 0 {
		return nil
	}

	bands := r.workers
	if bands > h {
		bands = h
	}
	rows := (h + bands - 1) / bands

	g, ctx := errgroup.WithContext(ctx)
	for b := 0; b < bands; b++ {
		y0 := b * rows
		y1 := min(y0+rows, h)
		if y0 >= y1 {
			break
		}
		g.Go(func() (err error) {
			// A panicking target must not take down the process from a
			// worker goroutine; hand it back through Wait instead.
			defer func() {
				if p := recover(); p != nil {
					err = errors.Errorf("raster band %d-%d: panic: %v", y0, y1, p)
				}
			}()
			return r.rasterBand(ctx, t, w, y0, y1)
		})
	}
	return g.Wait()
}

type screenTri struct {
	x0, y0, z0 float64
	x1, y1, z1 float64
	x2, y2, z2 float64
	area       float64
	minY, maxY int
	c          Color
}

// project transforms every visible triangle of s into screen space.
func (r *Renderer) project(s *Scene, w, h int) {
	r.tris = r.tris[:0]
	vp := Mat4Mul(s.Camera.Projection(), s.Camera.View())

	s.Root.Walk(Mat4Identity(), func(m *Mesh, world Mat4) {
		geo := m.Geometry
		if geo == nil || len(geo.Indices) < 3 {
			return
		}
		mvp := Mat4Mul(vp, world)
		groups := geo.Groups
		if len(groups) == 0 {
			groups = []GeometryGroup{{Start: 0, Count: len(geo.Indices)}}
		}
		for _, grp := range groups {
			mat, ok := m.material(grp.MaterialIndex)
			if !ok {
				continue
			}
			end := min(grp.Start+grp.Count, len(geo.Indices))
			for i := grp.Start; i+2 < end; i += 3 {
				r.projectTriangle(geo, mvp, world, mat, &s.Lights, i, w, h)
			}
		}
	})
}

func (r *Renderer) projectTriangle(geo *Geometry, mvp, world Mat4, mat Material, lights *Lights, i, w, h int) {
	var (
		pos [3]Vec3
		sx  [3]float64
		sy  [3]float64
		sz  [3]float64
	)
	for k := 0; k < 3; k++ {
		idx := int(geo.Indices[i+k])
		if idx >= len(geo.Positions) {
			return
		}
		pos[k] = geo.Positions[idx]
		p := Mat4MulV4(mvp, Vec4{X: pos[k].X, Y: pos[k].Y, Z: pos[k].Z, W: 1})
		// Triangles crossing the near plane are dropped rather than clipped.
		if p.W <= 1e-9 {
			return
		}
		inv := 1 / p.W
		nx, ny, nz := p.X*inv, p.Y*inv, p.Z*inv
		if nz < -1 || nz > 1 {
			return
		}
		sx[k] = (nx*0.5 + 0.5) * float64(w)
		sy[k] = (1 - (ny*0.5 + 0.5)) * float64(h)
		sz[k] = nz
	}

	area := edge(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2])
	if area == 0 {
		return
	}

	c := mat.Color
	if mat.Shading == ShadingLambert {
		a := TransformPoint(world, pos[0])
		b := TransformPoint(world, pos[1])
		d := TransformPoint(world, pos[2])
		n := faceNormal(geo, world, i, a, b, d)
		center := a.Add(b).Add(d).Mul(1.0 / 3)
		c = lights.shade(c, n, center)
	}

	minY := int(math.Floor(math.Min(sy[0], math.Min(sy[1], sy[2]))))
	maxY := int(math.Ceil(math.Max(sy[0], math.Max(sy[1], sy[2]))))
	if maxY < 0 || minY >= h {
		return
	}
	r.tris = append(r.tris, screenTri{
		x0: sx[0], y0: sy[0], z0: sz[0],
		x1: sx[1], y1: sy[1], z1: sz[1],
		x2: sx[2], y2: sy[2], z2: sz[2],
		area: area,
		minY: minY,
		maxY: maxY,
		c:    c,
	})
}

// faceNormal averages the geometry's vertex normals in world space, falling back
// to the winding normal for geometry without normals.
func faceNormal(geo *Geometry, world Mat4, i int, a, b, d Vec3) Vec3 {
	if len(geo.Normals) != len(geo.Positions) {
		return Normalize(Cross(b.Sub(a), d.Sub(a)))
	}
	var sum Vec3
	for k := 0; k < 3; k++ {
		sum = sum.Add(geo.Normals[geo.Indices[i+k]])
	}
	v := Mat4MulV4(world, Vec4{X: sum.X, Y: sum.Y, Z: sum.Z})
	return Normalize(V3(v.X, v.Y, v.Z))
}

// rasterBand fills rows [y0,y1). Bands never share rows, so the depth buffer
// and target writes need no locking.
func (r *Renderer) rasterBand(ctx context.Context, t Target, w, y0, y1 int) error {
	for i := range r.tris {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		tri := &r.tris[i]
		if tri.maxY < y0 || tri.minY >= y1 {
			continue
		}
		r.fillTriangle(t, w, max(y0, tri.minY), min(y1-1, tri.maxY), tri)
	}
	return nil
}

func (r *Renderer) fillTriangle(t Target, w, yMin, yMax int, tri *screenTri) {
	minX := int(math.Floor(math.Min(tri.x0, math.Min(tri.x1, tri.x2))))
	maxX := int(math.Ceil(math.Max(tri.x0, math.Max(tri.x1, tri.x2))))
	minX = max(minX, 0)
	maxX = min(maxX, w-1)
	if minX > maxX || yMin > yMax {
		return
	}

	inv := 1 / tri.area
	for y := yMin; y <= yMax; y++ {
		py := float64(y) + 0.5
		row := y * r.width
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			a0 := edge(tri.x1, tri.y1, tri.x2, tri.y2, px, py) * inv
			a1 := edge(tri.x2, tri.y2, tri.x0, tri.y0, px, py) * inv
			a2 := edge(tri.x0, tri.y0, tri.x1, tri.y1, px, py) * inv
			if a0 < 0 || a1 < 0 || a2 < 0 {
				continue
			}
			z := a0*tri.z0 + a1*tri.z1 + a2*tri.z2
			idx := row + x
			if z >= r.depth[idx] {
				continue
			}
			r.depth[idx] = z
			t.SetPixel(x, y, tri.c)
		}
	}
}

// edge is twice the signed area of (a, b, p). Dividing by the triangle's own
// edge value normalizes both windings to non-negative barycentrics inside.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}
