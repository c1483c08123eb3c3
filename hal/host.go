package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DefaultWidth and DefaultHeight match a 6.4x4.8 inch figure at 100 dpi.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
}

// New returns a host HAL implementation that logs to stderr.
func New() HAL {
	return newHostHAL(os.Stderr, DefaultWidth, DefaultHeight)
}

func newHostHAL(w io.Writer, width, height int) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(width, height),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
