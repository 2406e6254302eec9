// Package chroma lays out the chromatic scale as a spiral of colored spheres.
//
// A Note is one entry of the displayed sequence. Enharmonic pairs share an
// entry and are written with a backslash separator ("C#\Db"); such notes render
// as a sphere split into two colors. Place maps an index in the sequence onto a
// rising circle, NewMarker turns a note into a quarkgl mesh, and NewSpiral
// composes one closed octave into a single group.
package chroma
