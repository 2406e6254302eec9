package quarkgl

// Shading selects how a material reacts to lights.
type Shading uint8

const (
	// ShadingBasic ignores lights and draws the flat base color.
	ShadingBasic Shading = iota
	// ShadingLambert applies ambient plus diffuse point lighting per face.
	ShadingLambert
)

// Material is a minimal surface description.
type Material struct {
	Color   Color
	Shading Shading
}

// BasicMaterial returns an unlit material.
func BasicMaterial(c Color) Material { return Material{Color: c, Shading: ShadingBasic} }

// LambertMaterial returns a diffuse lit material.
func LambertMaterial(c Color) Material { return Material{Color: c, Shading: ShadingLambert} }

// Mesh is geometry plus one or more materials placed in the scene graph.
type Mesh struct {
	Object3D

	Name      string
	Geometry  *Geometry
	Materials []Material
}

// NewMesh returns a visible mesh at the origin.
func NewMesh(name string, geo *Geometry, mats ...Material) *Mesh {
	return &Mesh{
		Object3D:  NewObject3D(),
		Name:      name,
		Geometry:  geo,
		Materials: mats,
	}
}

// material returns the material for a geometry group, or false when the mesh
// has no material for it.
func (m *Mesh) material(idx int) (Material, bool) {
	if idx < 0 || idx >= len(m.Materials) {
		return Material{}, false
	}
	return m.Materials[idx], true
}
