package app

import (
	"image/color"

	"chromaspiral/quarkgl"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	hudFG   = quarkgl.RGB(0xE0, 0xE8, 0xFF)
	hudDim  = quarkgl.RGB(0x90, 0xA0, 0xB8)
	hudFont = &proggy.TinySZ8pt7b
)

// hud draws the caption in the top-left corner of a frame.
type hud struct {
	title  string
	detail string
}

func (h *hud) draw(t quarkgl.Target) {
	if t == nil || (h.title == "" && h.detail == "") {
		return
	}
	d := &targetDisplay{t: t}
	const x, lineH = 6, 12
	y := int16(lineH)
	if h.title != "" {
		tinyfont.WriteLine(d, hudFont, x, y, h.title, hudFG.ToRGBA())
		y += lineH
	}
	if h.detail != "" {
		tinyfont.WriteLine(d, hudFont, x, y, h.detail, hudDim.ToRGBA())
	}
}

// targetDisplay adapts a quarkgl.Target to the display interface tinyfont
// draws on.
type targetDisplay struct {
	t quarkgl.Target
}

var _ drivers.Displayer = (*targetDisplay)(nil)

func (d *targetDisplay) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *targetDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), quarkgl.RGBA(c.R, c.G, c.B, c.A))
}

func (d *targetDisplay) Display() error { return nil }
