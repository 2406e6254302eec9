package quarkgl

// AmbientLight lights every face uniformly.
type AmbientLight struct {
	Color     Color
	Intensity Scalar
}

// PointLight lights faces by the cosine between the face normal and the
// direction to Position. There is no distance falloff.
type PointLight struct {
	Position  Vec3
	Color     Color
	Intensity Scalar
}

// Lights is the light rig of a scene.
type Lights struct {
	Ambient []AmbientLight
	Points  []PointLight
}

// shade returns the lit color of a face with world-space normal n and center p.
func (l *Lights) shade(base Color, n, p Vec3) Color {
	var r, g, b Scalar
	add := func(c Color, k Scalar) {
		r += Scalar(c.R) / 255 * k
		g += Scalar(c.G) / 255 * k
		b += Scalar(c.B) / 255 * k
	}
	for _, a := range l.Ambient {
		add(a.Color, a.Intensity)
	}
	for _, pl := range l.Points {
		d := Dot(n, Normalize(pl.Position.Sub(p)))
		if d <= 0 {
			continue
		}
		add(pl.Color, pl.Intensity*d)
	}
	ch := func(base uint8, k Scalar) uint8 {
		return uint8(Scalar(base)*Clamp01(k) + 0.5)
	}
	return Color{R: ch(base.R, r), G: ch(base.G, g), B: ch(base.B, b), A: base.A}
}
