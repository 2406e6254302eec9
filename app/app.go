package app

import (
	"fmt"

	"chromaspiral/chroma"
	"chromaspiral/hal"
	"chromaspiral/internal/buildinfo"
	"chromaspiral/quarkgl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Camera frustum: vertical field of view in degrees and clip distances.
const (
	CameraFOV  = 75.0
	CameraNear = 0.1
	CameraFar  = 1000.0
)

// Light strengths. The markers use unlit materials, so the lights only
// affect Lambert meshes added to the scene.
const (
	AmbientIntensity    = 0.5
	PointLightIntensity = 1.0
)

// DefaultWidth and DefaultHeight are the explicit viewport size used unless
// the host surface is followed.
const (
	DefaultWidth  = 1000
	DefaultHeight = 900
)

var (
	// CameraPosition is where the camera sits; it always looks at the origin.
	CameraPosition = quarkgl.V3(0, 20, 50)
	// PointLightPosition is the world position of the single point light.
	PointLightPosition = quarkgl.V3(10, 10, 10)
)

// Config selects the viewport and look of an App.
type Config struct {
	// Width and Height fix the viewport; when either is zero the viewport
	// follows the host surface.
	Width  int
	Height int

	Colors     *chroma.ColorTable
	Workers    int
	ClearColor quarkgl.Color
	HUD        bool
}

// DefaultConfig returns the 1000×900 viewport with the default palette.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Colors:     chroma.DefaultColorTable(),
		ClearColor: quarkgl.RGB(0, 0, 0),
		HUD:        true,
	}
}

// App is the composed visualization: camera, lights, the rotating spiral and
// the viewport sizer. It implements hal.Program.
//
// The note markers are unlit so every note shows its exact palette color. The
// ambient and point lights are still part of the scene and light any Lambert
// mesh added to it.
type App struct {
	log hal.Logger
	id  uuid.UUID

	scene    *quarkgl.Scene
	renderer *quarkgl.Renderer
	spinner  *quarkgl.Group
	spiral   *chroma.Spiral

	rotation *RotationDriver
	viewport *ViewportSizer
	hud      hud

	mounted bool
	frames  uint64
}

var _ hal.Program = (*App)(nil)

// New builds the scene. It fails when the color table is strict and misses a
// note name.
func New(log hal.Logger, cfg Config) (*App, error) {
	if cfg.Colors == nil {
		cfg.Colors = chroma.DefaultColorTable()
	}
	a := &App{log: log, id: uuid.New()}

	if !cfg.Colors.Strict() {
		for _, name := range chroma.UnknownNames(cfg.Colors) {
			a.logf("no color for note %q, using %s", name, chroma.NeutralColor)
		}
	}
	spiral, err := chroma.NewSpiral(cfg.Colors)
	if err != nil {
		return nil, errors.Wrap(err, "build spiral")
	}
	a.spiral = spiral

	aspect := 1.0
	if cfg.Width > 0 && cfg.Height > 0 {
		aspect = float64(cfg.Width) / float64(cfg.Height)
	}
	cam := quarkgl.NewPerspectiveCamera(CameraFOV, aspect, CameraNear, CameraFar, CameraPosition)

	a.scene = quarkgl.NewScene(cam)
	a.scene.AddAmbientLight(quarkgl.AmbientLight{Intensity: AmbientIntensity})
	a.scene.AddPointLight(quarkgl.PointLight{Position: PointLightPosition, Intensity: PointLightIntensity})

	a.spinner = quarkgl.NewGroup("rotating-scene")
	a.spinner.AddGroup(spiral.Group)
	a.scene.Add(a.spinner)

	a.renderer = quarkgl.NewRenderer(0, 0)
	a.renderer.ClearColor = cfg.ClearColor
	if cfg.Workers > 0 {
		a.renderer.SetWorkers(cfg.Workers)
	}

	a.rotation = NewRotationDriver(a.spinner)
	a.viewport = NewViewportSizer(a.renderer, cam, cfg.Width, cfg.Height)

	if cfg.HUD {
		a.hud = hud{
			title:  "chromatic spiral",
			detail: fmt.Sprintf("%d notes  %s", len(spiral.Markers), buildinfo.Short()),
		}
	}
	return a, nil
}

// Factory returns a hal.ProgramFactory that builds and mounts an App.
func Factory(cfg Config) hal.ProgramFactory {
	return func(h hal.HAL) (hal.Program, error) {
		a, err := New(h.Logger(), cfg)
		if err != nil {
			return nil, err
		}
		a.Mount()
		return a, nil
	}
}

// Mount starts the rotation and applies the viewport.
func (a *App) Mount() {
	if a.mounted {
		return
	}
	a.mounted = true
	a.rotation.Start()
	a.viewport.Reset()
	a.viewport.Sync()
	a.logf("scene mounted: %d markers, %d raster workers", len(a.spiral.Markers), a.renderer.Workers())
}

// Unmount stops the rotation and discards the accumulated angle.
func (a *App) Unmount() {
	if !a.mounted {
		return
	}
	a.mounted = false
	a.rotation.Stop()
	a.spinner.Rotation.Y = 0
	a.logf("scene unmounted after %d frames", a.frames)
}

// Close tears the scene down at the end of a run. It is the host-facing form
// of Unmount.
func (a *App) Close() error {
	a.Unmount()
	return nil
}

// Layout records the host surface size and returns the viewport size.
func (a *App) Layout(surfaceW, surfaceH int) (int, int) {
	if a.viewport.SetSurface(surfaceW, surfaceH) {
		w, h := a.viewport.Size()
		a.logf("viewport %dx%d (surface %dx%d)", w, h, surfaceW, surfaceH)
	}
	w, h := a.viewport.Size()
	if w <= 0 || h <= 0 {
		return surfaceW, surfaceH
	}
	return w, h
}

// SetExplicitSize changes the fixed viewport size; zero follows the surface.
func (a *App) SetExplicitSize(w, h int) {
	a.viewport.SetExplicit(w, h)
}

// Update advances one frame tick.
func (a *App) Update() error {
	a.rotation.Tick()
	a.frames++
	return nil
}

// Draw renders the frame into an RGB565 framebuffer and presents it. A
// frame that panicked is still presented so the notice is visible.
func (a *App) Draw(fb hal.Framebuffer) error {
	if fb == nil {
		return nil
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return errors.Errorf("unsupported pixel format %d", fb.Format())
	}
	err := a.renderFrame(&quarkgl.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	})
	if perr := fb.Present(); err == nil {
		err = perr
	}
	return err
}

// Render draws the scene and the HUD into t.
func (a *App) Render(t quarkgl.Target) error {
	if err := a.renderer.Render(t, a.scene); err != nil {
		return err
	}
	a.hud.draw(t)
	return nil
}

// ID identifies this scene instance in log lines.
func (a *App) ID() uuid.UUID { return a.id }

// Mounted reports whether the scene is between Mount and Unmount.
func (a *App) Mounted() bool { return a.mounted }

// Scene returns the scene graph with camera and lights.
func (a *App) Scene() *quarkgl.Scene { return a.scene }

// Camera returns the perspective camera kept in sync with the viewport.
func (a *App) Camera() *quarkgl.PerspectiveCamera { return a.scene.Camera }

// Renderer returns the software renderer sized by the viewport.
func (a *App) Renderer() *quarkgl.Renderer { return a.renderer }

// Spiral returns the note markers.
func (a *App) Spiral() *chroma.Spiral { return a.spiral }

// RotationDriver returns the driver spinning the scene.
func (a *App) RotationDriver() *RotationDriver { return a.rotation }

// Viewport returns the current render size.
func (a *App) Viewport() (w, h int) { return a.viewport.Size() }

// Rotation returns the spinning group's current Y rotation.
func (a *App) Rotation() float64 { return a.spinner.Rotation.Y }

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString("scene " + a.id.String()[:8] + ": " + fmt.Sprintf(format, args...))
}
