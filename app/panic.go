package app

import (
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"chromaspiral/quarkgl"

	"github.com/pkg/errors"
	"tinygo.org/x/tinyfont"
)

var (
	panicBG = quarkgl.RGB(255, 255, 255)
	panicFG = quarkgl.RGB(0xB0, 0, 0)
)

// renderFrame renders into t. A panic on this goroutine, or one the renderer
// recovered from a raster worker, is logged, replaced on screen by a short
// notice and returned as an error.
func (a *App) renderFrame(t quarkgl.Target) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.logf("panic in frame %d: %v", a.frames, r)
			a.logLines(string(debug.Stack()))
			err = errors.Errorf("render frame %d: panic: %v", a.frames, r)
		}
		if err != nil {
			drawPanic(t, err.Error())
		}
	}()
	if err := a.Render(t); err != nil {
		a.logf("frame %d failed: %v", a.frames, err)
		return errors.Wrapf(err, "render frame %d", a.frames)
	}
	return nil
}

func (a *App) logLines(s string) {
	if a.log == nil {
		return
	}
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			a.log.WriteLineString(line)
		}
	}
}

func drawPanic(t quarkgl.Target, msg string) {
	// The target may be what panicked; the notice is best effort.
	defer func() { _ = recover() }()

	t.Clear(panicBG)
	d := &targetDisplay{t: t}
	w, _ := t.Size()
	_, cw := tinyfont.LineWidth(hudFont, "0")
	perLine := 40
	if cw > 0 {
		perLine = max(8, (w-12)/int(cw))
	}
	fg := panicFG.ToRGBA()
	y := int16(14)
	tinyfont.WriteLine(d, hudFont, 6, y, "chromaspiral panic", fg)
	for _, line := range wrapRunes(msg, perLine) {
		y += 12
		tinyfont.WriteLine(d, hudFont, 6, y, line, fg)
	}
}

// wrapRunes splits s into lines of at most n runes.
func wrapRunes(s string, n int) []string {
	if n <= 0 {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		cut, count := 0, 0
		for cut < len(s) && count < n {
			_, size := utf8.DecodeRuneInString(s[cut:])
			cut += size
			count++
		}
		lines = append(lines, s[:cut])
		s = s[cut:]
	}
	return lines
}
