package quarkgl

// PerspectiveCamera describes the viewing transform.
//
// Aspect is read only by UpdateProjectionMatrix; the renderer uses the cached
// projection, so callers must update it after changing FOV, Aspect or planes.
type PerspectiveCamera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOV    Scalar // vertical field of view in degrees
	Aspect Scalar
	Near   Scalar
	Far    Scalar

	projection Mat4
	updates    int
}

// NewPerspectiveCamera returns a camera at position looking at the origin.
func NewPerspectiveCamera(fovDeg, aspect, near, far Scalar, position Vec3) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Position: position,
		Up:       V3(0, 1, 0),
		FOV:      fovDeg,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// View returns the camera view matrix.
func (c *PerspectiveCamera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// UpdateProjectionMatrix recomputes the projection from FOV, Aspect and planes.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	fov := c.FOV
	if fov <= 0 {
		fov = 50
	}
	c.projection = Mat4Perspective(DegToRad(fov), c.Aspect, c.Near, c.Far)
	c.updates++
}

// Projection returns the projection computed by the last UpdateProjectionMatrix.
func (c *PerspectiveCamera) Projection() Mat4 { return c.projection }

// ProjectionUpdates counts UpdateProjectionMatrix calls.
func (c *PerspectiveCamera) ProjectionUpdates() int { return c.updates }
