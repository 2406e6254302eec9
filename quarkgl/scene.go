package quarkgl

// Scene is a camera, a light rig and a root group.
type Scene struct {
	Camera *PerspectiveCamera
	Lights Lights
	Root   *Group
}

// NewScene returns a scene with an empty root group.
func NewScene(cam *PerspectiveCamera) *Scene {
	return &Scene{Camera: cam, Root: NewGroup("root")}
}

// Add appends groups under the scene root.
func (s *Scene) Add(g ...*Group) {
	if s == nil {
		return
	}
	s.Root.AddGroup(g...)
}

// AddAmbientLight appends an ambient light.
func (s *Scene) AddAmbientLight(l AmbientLight) {
	if l.Color == (Color{}) {
		l.Color = RGB(0xFF, 0xFF, 0xFF)
	}
	s.Lights.Ambient = append(s.Lights.Ambient, l)
}

// AddPointLight appends a point light.
func (s *Scene) AddPointLight(l PointLight) {
	if l.Color == (Color{}) {
		l.Color = RGB(0xFF, 0xFF, 0xFF)
	}
	s.Lights.Points = append(s.Lights.Points, l)
}
