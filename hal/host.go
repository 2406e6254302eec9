package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
}

// New returns a host HAL logging to stdout with a w×h framebuffer.
func New(w, h int) HAL {
	return newHostHAL(os.Stdout, w, h)
}

func newHostHAL(out io.Writer, w, h int) *hostHAL {
	return &hostHAL{
		logger: newHostLogger(out),
		fb:     newHostFramebuffer(w, h),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu     sync.Mutex
	w      io.Writer
	prefix *color.Color
	now    func() time.Time
}

func newHostLogger(w io.Writer) *hostLogger {
	return &hostLogger{
		w:      w,
		prefix: color.New(color.FgCyan),
		now:    time.Now,
	}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s\n", l.prefix.Sprint(l.now().Format("15:04:05.000")), s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
