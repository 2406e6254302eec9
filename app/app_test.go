package app

import (
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"chromaspiral/chroma"
	"chromaspiral/hal"
	"chromaspiral/quarkgl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineLogger struct {
	lines []string
}

func (l *lineLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *lineLogger) contains(sub string) bool {
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type memFramebuffer struct {
	w, h      int
	buf       []byte
	presented int
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }
func (f *memFramebuffer) ClearRGB(r, g, b uint8)  {}
func (f *memFramebuffer) Present() error          { f.presented++; return nil }
func (f *memFramebuffer) Resize(w, h int) {
	f.w, f.h = w, h
	f.buf = make([]byte, w*h*2)
}

type memHAL struct {
	log *lineLogger
	fb  *memFramebuffer
}

func (h *memHAL) Logger() hal.Logger { return h.log }
func (h *memHAL) Display() hal.Display {
	return h
}
func (h *memHAL) Framebuffer() hal.Framebuffer { return h.fb }

func countColor(img *quarkgl.ImageTarget, c quarkgl.Color, minY int) int {
	w, h := img.Size()
	n := 0
	for y := minY; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestAppSceneComposition(t *testing.T) {
	a, err := New(&lineLogger{}, DefaultConfig())
	require.NoError(t, err)

	cam := a.Camera()
	assert.Equal(t, quarkgl.V3(0, 20, 50), cam.Position)
	assert.Equal(t, 75.0, cam.FOV)

	s := a.Scene()
	require.Len(t, s.Lights.Ambient, 1)
	assert.Equal(t, 0.5, s.Lights.Ambient[0].Intensity)
	require.Len(t, s.Lights.Points, 1)
	assert.Equal(t, quarkgl.V3(10, 10, 10), s.Lights.Points[0].Position)

	assert.Equal(t, 13, s.Root.CountMeshes())
	assert.Len(t, a.Spiral().Markers, 13)
}

func TestAppMountAppliesExplicitViewport(t *testing.T) {
	log := &lineLogger{}
	a, err := New(log, DefaultConfig())
	require.NoError(t, err)
	a.Mount()

	w, h := a.Viewport()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 900, h)
	assert.Equal(t, 1000.0/900.0, a.Camera().Aspect)
	rw, rh := a.Renderer().Size()
	assert.Equal(t, 1000, rw)
	assert.Equal(t, 900, rh)

	// A surface resize keeps the explicit viewport.
	w, h = a.Layout(1920, 1080)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 900, h)
	assert.True(t, log.contains("scene mounted: 13 markers"))
	assert.True(t, log.contains(a.ID().String()[:8]))
}

func TestAppFollowsSurfaceWithoutExplicitSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 0, 0
	a, err := New(&lineLogger{}, cfg)
	require.NoError(t, err)
	a.Mount()

	w, h := a.Layout(800, 400)
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)
	assert.Equal(t, 2.0, a.Camera().Aspect)

	a.SetExplicitSize(300, 300)
	assert.Equal(t, 1.0, a.Camera().Aspect)
}

func TestAppTicksRotateUntilUnmount(t *testing.T) {
	a, err := New(&lineLogger{}, DefaultConfig())
	require.NoError(t, err)

	// Ticks before mount are dropped.
	require.NoError(t, a.Update())
	assert.Zero(t, a.Rotation())

	a.Mount()
	for i := 0; i < 200; i++ {
		require.NoError(t, a.Update())
	}
	assert.InDelta(t, -2.0, a.Rotation(), 1e-9)
	assert.True(t, a.Mounted())
	assert.Equal(t, uint64(200), a.RotationDriver().Ticks())

	a.Unmount()
	assert.False(t, a.Mounted())
	assert.Zero(t, a.Rotation())
	require.NoError(t, a.Update())
	assert.Zero(t, a.Rotation())
}

func TestAppRenderDrawsMarkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 400, 360
	cfg.HUD = false
	cfg.Workers = 2
	a, err := New(&lineLogger{}, cfg)
	require.NoError(t, err)
	a.Mount()

	img := quarkgl.NewImageTarget(400, 360)
	require.NoError(t, a.Render(img))

	red, err := cfg.Colors.Lookup("C")
	require.NoError(t, err)
	assert.Positive(t, countColor(img, red, 0))
	assert.Positive(t, a.Renderer().LastTriangles())
	assert.Equal(t, cfg.ClearColor, img.At(0, 0))
}

func TestAppDrawPresentsFramebuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 160, 120
	h := &memHAL{log: &lineLogger{}, fb: &memFramebuffer{}}

	p, err := Factory(cfg)(h)
	require.NoError(t, err)
	w, hh := p.Layout(640, 480)
	h.fb.Resize(w, hh)
	require.NoError(t, p.Update())
	require.NoError(t, p.Draw(h.fb))
	assert.Equal(t, 1, h.fb.presented)

	nonZero := 0
	for _, b := range h.fb.buf {
		if b != 0 {
			nonZero++
		}
	}
	assert.Positive(t, nonZero)
}

func TestAppStrictColorsFail(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors = chroma.NewColorTable(nil)
	_, err := New(&lineLogger{}, cfg)
	assert.ErrorIs(t, err, chroma.ErrUnknownNote)

	_, err = Factory(cfg)(&memHAL{log: &lineLogger{}, fb: &memFramebuffer{}})
	assert.ErrorIs(t, err, chroma.ErrUnknownNote)
}

func TestAppLenientColorsWarn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors = chroma.NewColorTable(map[string]quarkgl.Color{"C": quarkgl.RGB(1, 2, 3)}).Lenient()

	log := &lineLogger{}
	a, err := New(log, cfg)
	require.NoError(t, err)
	assert.True(t, log.contains(`no color for note "Db"`))
	assert.Equal(t, chroma.NeutralColor, a.Spiral().Markers[1].Mesh.Materials[1].Color)
}

func TestHUDDrawsCaption(t *testing.T) {
	img := quarkgl.NewImageTarget(200, 40)
	h := hud{title: "chromatic spiral", detail: "13 notes"}
	h.draw(img)
	assert.Positive(t, countColor(img, hudFG, 0))
	assert.Positive(t, countColor(img, hudDim, 0))

	empty := quarkgl.NewImageTarget(20, 20)
	(&hud{}).draw(empty)
	assert.Zero(t, countColor(empty, hudFG, 0))
}

// clearOnceTarget panics on its first Clear.
type clearOnceTarget struct {
	*quarkgl.ImageTarget
	cleared bool
}

func (t *clearOnceTarget) Clear(c quarkgl.Color) {
	if !t.cleared {
		t.cleared = true
		panic("target lost")
	}
	t.ImageTarget.Clear(c)
}

func TestAppRenderFrameRecoversPanic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 100
	log := &lineLogger{}
	a, err := New(log, cfg)
	require.NoError(t, err)
	a.Mount()

	target := &clearOnceTarget{ImageTarget: quarkgl.NewImageTarget(200, 100)}
	err = a.renderFrame(target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target lost")
	assert.True(t, log.contains("panic in frame 0: target lost"))

	assert.Equal(t, panicBG, target.At(0, 0))
	assert.Positive(t, countColor(target.ImageTarget, panicFG, 0))
}

func TestAppRenderFrameWithoutPanic(t *testing.T) {
	a, err := New(&lineLogger{}, DefaultConfig())
	require.NoError(t, err)
	a.Mount()
	assert.NoError(t, a.renderFrame(quarkgl.NewImageTarget(50, 50)))
}

// brokenPixelTarget panics on the first SetPixel, which the renderer issues
// from its raster workers.
type brokenPixelTarget struct {
	*quarkgl.ImageTarget
	tripped atomic.Bool
}

func (t *brokenPixelTarget) SetPixel(x, y int, c quarkgl.Color) {
	if t.tripped.CompareAndSwap(false, true) {
		panic("bus error")
	}
	t.ImageTarget.SetPixel(x, y, c)
}

func TestAppRenderFrameRecoversWorkerPanic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 180
	cfg.Workers = 2
	log := &lineLogger{}
	a, err := New(log, cfg)
	require.NoError(t, err)
	a.Mount()

	target := &brokenPixelTarget{ImageTarget: quarkgl.NewImageTarget(200, 180)}
	err = a.renderFrame(target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "raster band")
	assert.Contains(t, err.Error(), "bus error")
	assert.True(t, log.contains("frame 0 failed"))
	assert.Equal(t, panicBG, target.At(0, 0))
	assert.Positive(t, countColor(target.ImageTarget, panicFG, 0))

	// The next frame renders normally.
	assert.NoError(t, a.renderFrame(quarkgl.NewImageTarget(200, 180)))
}

func TestWrapRunesKeepsRunesWhole(t *testing.T) {
	lines := wrapRunes("ééé♪♪", 2)
	assert.Equal(t, []string{"éé", "é♪", "♪"}, lines)
	for _, l := range lines {
		assert.True(t, utf8.ValidString(l))
	}
	assert.Empty(t, wrapRunes("", 4))
	assert.Equal(t, []string{"abc"}, wrapRunes("abc", 0))
}

func TestAppCloseUnmounts(t *testing.T) {
	log := &lineLogger{}
	a, err := New(log, DefaultConfig())
	require.NoError(t, err)
	a.Mount()
	assert.True(t, log.contains("raster workers"))
	for i := 0; i < 5; i++ {
		require.NoError(t, a.Update())
	}
	require.NotZero(t, a.Rotation())

	require.NoError(t, a.Close())
	assert.False(t, a.Mounted())
	assert.False(t, a.RotationDriver().Active())
	assert.Zero(t, a.Rotation())
	assert.True(t, log.contains("scene unmounted after 5 frames"))

	// Closing twice is harmless.
	require.NoError(t, a.Close())
}
