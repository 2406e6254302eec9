package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	oldOut, oldErr, oldNo := Out, Err, color.NoColor
	out, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	Out, Err, color.NoColor = out, errBuf, true
	t.Cleanup(func() { Out, Err, color.NoColor = oldOut, oldErr, oldNo })
	return out, errBuf
}

func TestSuccessAddsCheckmarkOnce(t *testing.T) {
	out, _ := capture(t)
	Success("rendered %d frames\n", 3)
	Success("✓ done\n")
	assert.Equal(t, "✓ rendered 3 frames\n✓ done\n", out.String())
}

func TestWarningGoesToErr(t *testing.T) {
	out, errBuf := capture(t)
	Warning("lenient palette\n")
	assert.Empty(t, out.String())
	assert.Contains(t, errBuf.String(), "lenient palette")
}

func TestErrorFormatsSuggestions(t *testing.T) {
	_, errBuf := capture(t)
	err := Error("Config invalid", "headless hz must be positive", []string{"set headless.hz"})
	assert.EqualError(t, err, "Config invalid")
	assert.Contains(t, errBuf.String(), "Config invalid\n\nheadless hz must be positive\n")
	assert.Contains(t, errBuf.String(), "  - set headless.hz\n")
}

func TestSwatchPlainWithoutColor(t *testing.T) {
	capture(t)
	assert.Equal(t, " C ", Swatch(0xFF, 0, 0, " C "))
}

func TestInfoIsPlain(t *testing.T) {
	out, errBuf := capture(t)
	Info("running headless at %d Hz\n", 60)
	assert.Equal(t, "running headless at 60 Hz\n", out.String())
	assert.Empty(t, errBuf.String())
}
