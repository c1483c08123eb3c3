package mathfont

import (
	"image"
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type rgbaDisplay struct {
	img *image.RGBA
}

func newRGBADisplay(w, h int) *rgbaDisplay {
	return &rgbaDisplay{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (d *rgbaDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *rgbaDisplay) SetPixel(x, y int16, c color.RGBA) { d.img.SetRGBA(int(x), int(y), c) }
func (d *rgbaDisplay) Display() error                    { return nil }

func (d *rgbaDisplay) count(c color.RGBA) int {
	n := 0
	b := d.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if d.img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestNew_Scale(t *testing.T) {
	tcs := []struct {
		size  int
		scale int
	}{
		{size: 0, scale: 1},
		{size: 8, scale: 1},
		{size: 12, scale: 2},
		{size: 20, scale: 3},
		{size: 24, scale: 3},
		{size: 1000, scale: 18},
	}
	for _, tc := range tcs {
		if got := New(tc.size).Scale(); got != tc.scale {
			t.Fatalf("New(%d).Scale() = %d; want %d", tc.size, got, tc.scale)
		}
	}
}

func TestGlyphInfo_Scaled(t *testing.T) {
	f := New(16)
	info := f.GetGlyph('π').Info()
	if info.Width != 10 || info.Height != 16 || info.XAdvance != 12 || info.YOffset != -14 {
		t.Fatalf("info = %+v", info)
	}
	if f.GetYAdvance() != 16 {
		t.Fatalf("GetYAdvance() = %d; want 16", f.GetYAdvance())
	}
}

func TestLineWidth(t *testing.T) {
	f := New(20)
	_, outbox := tinyfont.LineWidth(f, "3π")
	if outbox != 2*6*3 {
		t.Fatalf("LineWidth(3π) = %d; want %d", outbox, 2*6*3)
	}
}

func TestDraw_PixelCounts(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}

	d := newRGBADisplay(32, 32)
	New(8).GetGlyph('-').Draw(d, 2, 20, red)
	if got := d.count(red); got != 5 {
		t.Fatalf("minus at scale 1: %d pixels; want 5", got)
	}
	if d.img.RGBAAt(2, 20-4) != red {
		t.Fatal("minus should sit 4 rows above the baseline")
	}

	d = newRGBADisplay(32, 32)
	New(16).GetGlyph('-').Draw(d, 2, 28, red)
	if got := d.count(red); got != 5*4 {
		t.Fatalf("minus at scale 2: %d pixels; want 20", got)
	}
}

func TestDraw_UnknownRuneIsBlank(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	d := newRGBADisplay(16, 16)
	New(8).GetGlyph('x').Draw(d, 0, 10, red)
	if got := d.count(red); got != 0 {
		t.Fatalf("unknown rune drew %d pixels", got)
	}
	if Covers('x') {
		t.Fatal("Covers('x') = true")
	}
	for _, r := range "0123456789.-/π " {
		if !Covers(r) {
			t.Fatalf("Covers(%q) = false", r)
		}
	}
}
