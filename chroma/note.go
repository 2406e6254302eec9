package chroma

import "strings"

// Separator joins the two names of an enharmonic pair.
const Separator = `\`

// ChromaticScale is one octave in semitone order starting at C.
var ChromaticScale = [12]string{
	"C", `C#\Db`, "D", `D#\Eb`, "E", "F",
	`F#\Gb`, "G", `G#\Ab`, "A", `A#\Bb`, "B",
}

// Note is one entry of the displayed sequence.
type Note struct {
	Name  string
	Index int
}

// Names splits the note into its one or two sub-names.
func (n Note) Names() []string { return strings.Split(n.Name, Separator) }

// Enharmonic reports whether the note carries two names.
func (n Note) Enharmonic() bool { return strings.Contains(n.Name, Separator) }

// Octave returns the twelve scale notes followed by a repeat of the first,
// closing the loop. Indices run 0..12.
func Octave() []Note {
	notes := make([]Note, 0, len(ChromaticScale)+1)
	for i, name := range ChromaticScale {
		notes = append(notes, Note{Name: name, Index: i})
	}
	return append(notes, Note{Name: ChromaticScale[0], Index: len(ChromaticScale)})
}
