package chroma

import (
	"testing"

	"chromaspiral/quarkgl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableCoversScale(t *testing.T) {
	colors := DefaultColorTable()
	assert.True(t, colors.Strict())
	assert.Empty(t, UnknownNames(colors))
	for _, name := range ChromaticScale {
		for _, sub := range (Note{Name: name}).Names() {
			_, err := colors.Lookup(sub)
			assert.NoError(t, err, sub)
		}
	}
	assert.Len(t, colors.Names(), 17)
}

func TestEnharmonicNamesHaveDistinctColors(t *testing.T) {
	colors := DefaultColorTable()
	for _, name := range ChromaticScale {
		n := Note{Name: name}
		if !n.Enharmonic() {
			continue
		}
		subs := n.Names()
		a, err := colors.Lookup(subs[0])
		require.NoError(t, err)
		b, err := colors.Lookup(subs[1])
		require.NoError(t, err)
		assert.NotEqual(t, a, b, name)
	}
}

func TestStrictLookupFails(t *testing.T) {
	_, err := DefaultColorTable().Lookup("H")
	assert.ErrorIs(t, err, ErrUnknownNote)
}

func TestLenientLookupFallsBack(t *testing.T) {
	colors := DefaultColorTable().Lenient()
	assert.False(t, colors.Strict())
	c, err := colors.Lookup("H")
	require.NoError(t, err)
	assert.Equal(t, NeutralColor, c)
	assert.False(t, colors.Has("H"))
}

func TestWithOverrides(t *testing.T) {
	base := DefaultColorTable()
	colors, err := base.WithOverrides(map[string]string{"C": "#000000", "H": "#ffffff"})
	require.NoError(t, err)

	c, err := colors.Lookup("C")
	require.NoError(t, err)
	assert.Equal(t, quarkgl.RGB(0, 0, 0), c)
	assert.True(t, colors.Has("H"))

	// The base table is untouched.
	c, err = base.Lookup("C")
	require.NoError(t, err)
	assert.Equal(t, quarkgl.Hex(0xFF0000), c)

	_, err = base.WithOverrides(map[string]string{"C": "nope"})
	assert.ErrorIs(t, err, quarkgl.ErrBadHex)
}
