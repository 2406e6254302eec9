package hal

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64 // stop after N ticks (0 = run until ctx is done)

	// SurfaceWidth and SurfaceHeight stand in for the window size.
	SurfaceWidth  int
	SurfaceHeight int

	// DrawEvery draws one frame out of every N ticks (0 disables drawing).
	DrawEvery int
}

// RunHeadless drives a program from a ticker without opening a window.
// It returns nil after cfg.Ticks ticks, or ctx.Err() when ctx ends first.
func RunHeadless(ctx context.Context, newProgram ProgramFactory, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.SurfaceWidth <= 0 || cfg.SurfaceHeight <= 0 {
		return errors.Errorf("invalid headless surface %dx%d", cfg.SurfaceWidth, cfg.SurfaceHeight)
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return errors.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := New(cfg.SurfaceWidth, cfg.SurfaceHeight).(*hostHAL)
	return runHeadless(ctx, h, newProgram, cfg, d)
}

func runHeadless(ctx context.Context, h *hostHAL, newProgram ProgramFactory, cfg HeadlessConfig, d time.Duration) (err error) {
	p, err := newProgram(h)
	if err != nil {
		return errors.Wrap(err, "init program")
	}
	defer func() {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close program")
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			w, hh := p.Layout(cfg.SurfaceWidth, cfg.SurfaceHeight)
			h.fb.Resize(w, hh)
			if err := p.Update(); err != nil {
				return errors.Wrapf(err, "tick %d", tick)
			}
			if cfg.DrawEvery > 0 && tick%uint64(cfg.DrawEvery) == 0 {
				if err := p.Draw(h.fb); err != nil {
					return errors.Wrapf(err, "draw tick %d", tick)
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
