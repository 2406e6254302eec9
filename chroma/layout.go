package chroma

import (
	"math"

	"chromaspiral/quarkgl"

	"github.com/pkg/errors"
)

const (
	// SpiralRadius is the radius of the circle the notes sit on.
	SpiralRadius = 5.0
	// SpiralHeight is the rise from the first to the last note.
	SpiralHeight = 5.0
	// SplitRotation turns a two-color sphere so its seam faces the viewer.
	SplitRotation = math.Pi / 2
)

// ErrInvalidLayout is returned for a total below 2 or an index outside it.
var ErrInvalidLayout = errors.New("chroma: invalid layout")

// Placement is where one note sits on the spiral.
type Placement struct {
	Angle    float64
	Height   float64
	Position quarkgl.Vec3
	// Rotation is the sphere's Y rotation: SplitRotation for enharmonic
	// notes, 0 otherwise.
	Rotation float64
}

// Place computes the placement of index within a sequence of total notes.
// Index 0 and index total-1 share the same angle, one full turn apart.
func Place(index, total int, enharmonic bool) (Placement, error) {
	if total < 2 {
		return Placement{}, errors.Wrapf(ErrInvalidLayout, "total %d", total)
	}
	if index < 0 || index >= total {
		return Placement{}, errors.Wrapf(ErrInvalidLayout, "index %d of %d", index, total)
	}
	span := float64(total - 1)
	angle := 2 * math.Pi * float64(index) / span
	height := SpiralHeight * float64(index) / span

	p := Placement{
		Angle:  angle,
		Height: height,
		Position: quarkgl.V3(
			SpiralRadius*math.Cos(angle),
			height,
			SpiralRadius*math.Sin(angle),
		),
	}
	if enharmonic {
		p.Rotation = SplitRotation
	}
	return p, nil
}
