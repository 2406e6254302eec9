package chroma

import (
	"sort"

	"chromaspiral/quarkgl"

	"github.com/pkg/errors"
)

// ErrUnknownNote is returned by strict tables for names without a color.
var ErrUnknownNote = errors.New("chroma: no color for note")

// NeutralColor is returned by lenient tables for unknown names.
var NeutralColor = quarkgl.Hex(0x808080)

var defaultColors = map[string]uint32{
	"C":  0xFF0000,
	"C#": 0xFF6A00,
	"Db": 0xCC5500,
	"D":  0xFFD500,
	"D#": 0xB6FF00,
	"Eb": 0x8FCC00,
	"E":  0x2BFF00,
	"F":  0x00FF6A,
	"F#": 0x00FFD5,
	"Gb": 0x00CCAA,
	"G":  0x00AAFF,
	"G#": 0x0040FF,
	"Ab": 0x0033CC,
	"A":  0x2B00FF,
	"A#": 0x9500FF,
	"Bb": 0x7700CC,
	"B":  0xFF00D5,
}

// ColorTable maps note sub-names ("C#", "Db") to display colors.
type ColorTable struct {
	colors map[string]quarkgl.Color
	strict bool
}

// DefaultColorTable returns a strict table covering every sub-name of the
// chromatic scale.
func DefaultColorTable() *ColorTable {
	t := &ColorTable{colors: make(map[string]quarkgl.Color, len(defaultColors)), strict: true}
	for name, v := range defaultColors {
		t.colors[name] = quarkgl.Hex(v)
	}
	return t
}

// NewColorTable returns a strict table holding a copy of colors.
func NewColorTable(colors map[string]quarkgl.Color) *ColorTable {
	t := &ColorTable{colors: make(map[string]quarkgl.Color, len(colors)), strict: true}
	for name, c := range colors {
		t.colors[name] = c
	}
	return t
}

// Lenient returns a copy of t that answers unknown names with NeutralColor.
func (t *ColorTable) Lenient() *ColorTable {
	cp := t.clone()
	cp.strict = false
	return cp
}

// Strict reports whether unknown names are errors.
func (t *ColorTable) Strict() bool { return t.strict }

// WithOverrides returns a copy of t with the given hex colors replacing or
// adding entries.
func (t *ColorTable) WithOverrides(hex map[string]string) (*ColorTable, error) {
	cp := t.clone()
	for name, h := range hex {
		c, err := quarkgl.ParseHex(h)
		if err != nil {
			return nil, errors.Wrapf(err, "palette entry %q", name)
		}
		cp.colors[name] = c
	}
	return cp, nil
}

// Lookup returns the color for a single sub-name.
func (t *ColorTable) Lookup(name string) (quarkgl.Color, error) {
	c, ok := t.colors[name]
	if ok {
		return c, nil
	}
	if t.strict {
		return quarkgl.Color{}, errors.Wrapf(ErrUnknownNote, "%q", name)
	}
	return NeutralColor, nil
}

// Has reports whether name has an explicit entry.
func (t *ColorTable) Has(name string) bool {
	_, ok := t.colors[name]
	return ok
}

// Names returns the table's sub-names in sorted order.
func (t *ColorTable) Names() []string {
	out := make([]string, 0, len(t.colors))
	for name := range t.colors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (t *ColorTable) clone() *ColorTable {
	cp := NewColorTable(t.colors)
	cp.strict = t.strict
	return cp
}
