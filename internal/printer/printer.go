// Package printer writes colored, human-facing CLI messages.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	bold   = color.New(color.Bold)
)

// Out and Err are the destinations; tests replace them.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// Success prints a green message with a checkmark prefix.
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(Out, msg)
}

// Info prints an uncolored message.
func Info(format string, a ...any) {
	fmt.Fprintf(Out, format, a...)
}

// Warning prints a yellow message with a warning prefix.
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	yellow.Fprint(Err, msg)
}

// Error prints a titled error with an explanation and optional suggestions to
// Err, and returns an error carrying the title for the command runner.
func Error(title, explanation string, suggestions []string) error {
	red.Fprintf(Err, "%s\n\n", title)
	if explanation != "" {
		fmt.Fprintf(Err, "%s\n", explanation)
	}
	if len(suggestions) > 0 {
		bold.Fprintf(Err, "\nTry:\n")
		for _, s := range suggestions {
			fmt.Fprintf(Err, "  - %s\n", s)
		}
	}
	return fmt.Errorf("%s", title)
}

// Swatch returns text rendered on a background of the given 24-bit color.
func Swatch(r, g, b uint8, text string) string {
	return color.RGB(0, 0, 0).AddBgRGB(int(r), int(g), int(b)).Sprint(text)
}
