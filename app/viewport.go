package app

import "chromaspiral/quarkgl"

// Sizer is the part of a renderer the viewport sizer drives.
type Sizer interface {
	SetSize(w, h int)
}

// viewportDeps are the values a sync depends on. Comparison is by value.
type viewportDeps struct {
	explicitW, explicitH int
	surfaceW, surfaceH   int
	target               Sizer
	cam                  *quarkgl.PerspectiveCamera
}

// ViewportSizer keeps the render target size and the camera aspect ratio in
// step with the explicit viewport size, or with the host surface when no
// explicit size is set.
type ViewportSizer struct {
	deps   viewportDeps
	last   viewportDeps
	synced bool

	width, height int
	syncs         int
}

// NewViewportSizer returns a sizer for target and cam. explicitW and explicitH
// take effect only when both are positive.
func NewViewportSizer(target Sizer, cam *quarkgl.PerspectiveCamera, explicitW, explicitH int) *ViewportSizer {
	return &ViewportSizer{deps: viewportDeps{
		explicitW: explicitW,
		explicitH: explicitH,
		target:    target,
		cam:       cam,
	}}
}

// SetExplicit changes the explicit size and syncs if it differs.
func (v *ViewportSizer) SetExplicit(w, h int) bool {
	v.deps.explicitW, v.deps.explicitH = w, h
	return v.Sync()
}

// SetSurface records the host surface size and syncs if it differs.
func (v *ViewportSizer) SetSurface(w, h int) bool {
	v.deps.surfaceW, v.deps.surfaceH = w, h
	return v.Sync()
}

// SetTarget swaps the renderer and camera and syncs if either changed.
func (v *ViewportSizer) SetTarget(target Sizer, cam *quarkgl.PerspectiveCamera) bool {
	v.deps.target, v.deps.cam = target, cam
	return v.Sync()
}

// Sync applies the current dependencies when they differ from the last
// applied set, or when nothing was applied yet. It reports whether it applied.
func (v *ViewportSizer) Sync() bool {
	if v.synced && v.deps == v.last {
		return false
	}
	w, h := v.resolve()
	if w <= 0 || h <= 0 {
		// Nothing usable yet; retry on the next change.
		return false
	}
	if v.deps.target != nil {
		v.deps.target.SetSize(w, h)
	}
	if v.deps.cam != nil {
		v.deps.cam.Aspect = float64(w) / float64(h)
		v.deps.cam.UpdateProjectionMatrix()
	}
	v.width, v.height = w, h
	v.last = v.deps
	v.synced = true
	v.syncs++
	return true
}

// Reset forgets the last applied state so the next Sync applies
// unconditionally.
func (v *ViewportSizer) Reset() { v.synced = false }

// Size returns the last applied viewport size.
func (v *ViewportSizer) Size() (w, h int) { return v.width, v.height }

// Syncs counts applied syncs.
func (v *ViewportSizer) Syncs() int { return v.syncs }

func (v *ViewportSizer) resolve() (int, int) {
	if v.deps.explicitW > 0 && v.deps.explicitH > 0 {
		return v.deps.explicitW, v.deps.explicitH
	}
	return v.deps.surfaceW, v.deps.surfaceH
}
