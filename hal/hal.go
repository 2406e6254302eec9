package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a resizable pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
	// Resize reallocates the buffer when the size changes. Contents are
	// undefined afterwards.
	Resize(w, h int)
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// HAL is the only contact point between the visualization and the host.
type HAL interface {
	Logger() Logger
	Display() Display
}

// Program is driven by a host runner once per frame, in order:
// Layout with the current surface size, Update, then Draw. Close ends it.
type Program interface {
	// Layout receives the host surface size and returns the size the
	// framebuffer should have.
	Layout(surfaceW, surfaceH int) (w, h int)
	// Update advances the program by one frame tick.
	Update() error
	// Draw renders the current frame into fb.
	Draw(fb Framebuffer) error
	// Close is called once when the runner stops, however it stops.
	Close() error
}

// ProgramFactory builds a program once the host HAL exists.
type ProgramFactory func(HAL) (Program, error)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
	// Resizable lets the user resize the window; the program sees the new
	// surface size through Layout.
	Resizable bool
}
