//go:build cgo

package hal

import (
	"chromaspiral/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// RunWindow opens a desktop window and drives p once per frame until the
// window closes.
func RunWindow(newProgram ProgramFactory, cfg WindowConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "chromaspiral"
	}

	h := New(cfg.Width, cfg.Height).(*hostHAL)
	p, err := newProgram(h)
	if err != nil {
		return errors.Wrap(err, "init program")
	}

	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.TPS)
	err = ebiten.RunGame(&hostGame{h: h, p: p})
	if cerr := p.Close(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "close program")
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	p       Program
	fbImg   *ebiten.Image
	scratch []byte

	drawErr error
}

func (g *hostGame) Update() error {
	// Draw cannot fail from ebiten's point of view; surface its error here.
	if g.drawErr != nil {
		return g.drawErr
	}
	return g.p.Update()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if err := g.p.Draw(fb); err != nil {
		g.drawErr = err
		return
	}

	var w, h int
	g.scratch, w, h = fb.snapshotRGBA(g.scratch)
	if w <= 0 || h <= 0 {
		return
	}
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.p.Layout(outsideWidth, outsideHeight)
	if w <= 0 || h <= 0 {
		w, h = outsideWidth, outsideHeight
	}
	g.h.fb.Resize(w, h)
	return w, h
}
