package quarkgl

// Object3D carries the local transform shared by groups and meshes.
type Object3D struct {
	Position Vec3
	Rotation Vec3 // Euler angles in radians, XYZ order.
	Scale    Vec3 // Zero means unit scale.
	Visible  bool
}

// NewObject3D returns a visible object at the origin with unit scale.
func NewObject3D() Object3D {
	return Object3D{Scale: V3(1, 1, 1), Visible: true}
}

// Matrix returns the local transform T·R·S.
func (o *Object3D) Matrix() Mat4 {
	s := o.Scale
	if s == (Vec3{}) {
		s = V3(1, 1, 1)
	}
	return Mat4Compose(o.Position, o.Rotation, s)
}

// Group is a scene graph node holding meshes and nested groups.
type Group struct {
	Object3D

	Name     string
	Meshes   []*Mesh
	Children []*Group
}

// NewGroup returns an empty visible group.
func NewGroup(name string) *Group {
	return &Group{Object3D: NewObject3D(), Name: name}
}

// AddMesh appends meshes to g.
func (g *Group) AddMesh(m ...*Mesh) {
	if g == nil {
		return
	}
	g.Meshes = append(g.Meshes, m...)
}

// AddGroup appends child groups to g.
func (g *Group) AddGroup(c ...*Group) {
	if g == nil {
		return
	}
	g.Children = append(g.Children, c...)
}

// Walk visits every visible mesh under g with its world matrix.
func (g *Group) Walk(parent Mat4, fn func(m *Mesh, world Mat4)) {
	if g == nil || !g.Visible {
		return
	}
	w := Mat4Mul(parent, g.Matrix())
	for _, m := range g.Meshes {
		if m == nil || !m.Visible {
			continue
		}
		fn(m, Mat4Mul(w, m.Matrix()))
	}
	for _, c := range g.Children {
		c.Walk(w, fn)
	}
}

// CountMeshes returns the number of meshes reachable from g, visible or not.
func (g *Group) CountMeshes() int {
	if g == nil {
		return 0
	}
	n := len(g.Meshes)
	for _, c := range g.Children {
		n += c.CountMeshes()
	}
	return n
}
