package app

import (
	"errors"
	"strings"
	"testing"

	"sineplot/hal"
)

type memFramebuffer struct {
	w, h     int
	buf      []byte
	presents int
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }
func (f *memFramebuffer) ClearRGB(r, g, b uint8)  {}

func (f *memFramebuffer) Present() error {
	f.presents++
	return nil
}

// count returns how many pixels hold the RGB565 value p.
func (f *memFramebuffer) count(p uint16) int {
	n := 0
	for i := 0; i+1 < len(f.buf); i += 2 {
		if uint16(f.buf[i])|uint16(f.buf[i+1])<<8 == p {
			n++
		}
	}
	return n
}

type memLogger struct {
	lines []string
}

func (l *memLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *memLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type memDisplay struct {
	fb hal.Framebuffer
}

func (d memDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type memHAL struct {
	log  *memLogger
	disp hal.Display
}

func (h *memHAL) Logger() hal.Logger   { return h.log }
func (h *memHAL) Display() hal.Display { return h.disp }

func TestNew_RendersPlot(t *testing.T) {
	fb := newMemFramebuffer(hal.DefaultWidth, hal.DefaultHeight)
	h := &memHAL{log: &memLogger{}, disp: memDisplay{fb: fb}}

	step, err := New(h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if step == nil {
		t.Fatal("expected step")
	}
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	if fb.presents != 1 {
		t.Fatalf("presents = %d; want 1", fb.presents)
	}

	const red565 = 0xF800
	const white565 = 0xFFFF
	if fb.count(red565) == 0 {
		t.Fatal("no red sample pixels in framebuffer")
	}
	if fb.count(white565) < len(fb.buf)/4 {
		t.Fatal("expected a mostly white figure")
	}

	if len(h.log.lines) != 1 {
		t.Fatalf("log lines = %q; want 1", h.log.lines)
	}
	if !strings.Contains(h.log.lines[0], "10 samples, 9 ticks") {
		t.Fatalf("log line = %q", h.log.lines[0])
	}
}

func TestNew_NoDisplay(t *testing.T) {
	h := &memHAL{log: &memLogger{}, disp: memDisplay{}}
	if _, err := New(h); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("New without framebuffer err = %v; want ErrNoDisplay", err)
	}
}
