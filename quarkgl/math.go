package quarkgl

import "math"

// Scalar is the numeric type used by all QuarkGL math.
type Scalar = float64

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a homogeneous 4D vector.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Mat4 is a column-major 4x4 matrix: element (row, col) lives at m[col*4+row].
type Mat4 [16]Scalar

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return V3(v.X+o.X, v.Y+o.Y, v.Z+o.Z) }
func (v Vec3) Sub(o Vec3) Vec3   { return V3(v.X-o.X, v.Y-o.Y, v.Z-o.Z) }
func (v Vec3) Mul(k Scalar) Vec3 { return V3(v.X*k, v.Y*k, v.Z*k) }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross is the right-handed cross product a×b.
func Cross(a, b Vec3) Vec3 {
	return V3(a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X)
}

func Len(v Vec3) Scalar { return math.Sqrt(Dot(v, v)) }

// Normalize returns v scaled to unit length, or the zero vector for a zero input.
func Normalize(v Vec3) Vec3 {
	if l := Len(v); l > 0 {
		return v.Mul(1 / l)
	}
	return Vec3{}
}

func Clamp01(v Scalar) Scalar { return math.Max(0, math.Min(1, v)) }

// DegToRad converts degrees to radians.
func DegToRad(deg Scalar) Scalar { return deg * math.Pi / 180 }

func Mat4Identity() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i*5] = 1
	}
	return m
}

// Mat4Mul returns a·b, so b is applied first.
func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum Scalar
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	in := [4]Scalar{v.X, v.Y, v.Z, v.W}
	var out [4]Scalar
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row] += m[col*4+row] * in[col]
		}
	}
	return Vec4{X: out[0], Y: out[1], Z: out[2], W: out[3]}
}

// TransformPoint applies m to p with w=1 and drops the homogeneous coordinate.
func TransformPoint(m Mat4, p Vec3) Vec3 {
	v := Mat4MulV4(m, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	return V3(v.X, v.Y, v.Z)
}

// Mat4Translate moves points by v.
func Mat4Translate(v Vec3) Mat4 {
	return Mat4Compose(v, Vec3{}, V3(1, 1, 1))
}

// Mat4RotateY turns points counter-clockwise about +Y, seen from above.
func Mat4RotateY(rad Scalar) Mat4 {
	return Mat4Euler(V3(0, rad, 0))
}

// Mat4Euler returns the XYZ-order rotation Rx·Ry·Rz for Euler angles r.
// Each axis rotation is right-handed.
func Mat4Euler(r Vec3) Mat4 {
	return Mat4Compose(Vec3{}, r, V3(1, 1, 1))
}

// Mat4Compose builds translate·rotate(XYZ Euler)·scale in one step.
func Mat4Compose(pos, rot, scale Vec3) Mat4 {
	cx, sx := math.Cos(rot.X), math.Sin(rot.X)
	cy, sy := math.Cos(rot.Y), math.Sin(rot.Y)
	cz, sz := math.Cos(rot.Z), math.Sin(rot.Z)

	// Columns of Rx·Ry·Rz, each scaled by its axis.
	x := V3(cy*cz, cx*sz+sx*sy*cz, sx*sz-cx*sy*cz).Mul(scale.X)
	y := V3(-cy*sz, cx*cz-sx*sy*sz, sx*cz+cx*sy*sz).Mul(scale.Y)
	z := V3(sy, -sx*cy, cx*cy).Mul(scale.Z)

	return Mat4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		pos.X, pos.Y, pos.Z, 1,
	}
}

// Mat4LookAt is a right-handed view matrix: the camera sits at eye and looks
// down its own -Z towards target.
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	fwd := Normalize(target.Sub(eye))
	side := Normalize(Cross(fwd, up))
	top := Cross(side, fwd)

	return Mat4{
		side.X, top.X, -fwd.X, 0,
		side.Y, top.Y, -fwd.Y, 0,
		side.Z, top.Z, -fwd.Z, 0,
		-Dot(side, eye), -Dot(top, eye), Dot(fwd, eye), 1,
	}
}

// Mat4Perspective maps the view frustum to clip space with depth in [-1, 1].
func Mat4Perspective(fovYRad, aspect, near, far Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := 1 / math.Tan(fovYRad/2)
	depth := near - far
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / depth
	m[11] = -1
	m[14] = 2 * far * near / depth
	return m
}
