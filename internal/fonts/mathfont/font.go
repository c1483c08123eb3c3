// Package mathfont is a small scalable bitmap font for plot labels.
//
// It covers digits, '.', '-', '+', '/', space and the Greek letter π, which
// is all that radian tick labels and numeric axis labels need. Glyphs are
// 5x7 bitmaps in a 6x8 cell, enlarged by an integer scale.
package mathfont

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	cellWidth  = 6
	cellHeight = 8
	glyphWidth = 5
	baseline   = 7
)

// Font implements tinyfont.Fonter.
//
// Concurrent access is not safe due to internal glyph reuse.
type Font struct {
	scale int16
	g     glyph
}

var _ tinyfont.Fonter = (*Font)(nil)

// New returns a font whose cell height is as close to sizePx pixels as an
// integer scale allows. The scale is never below 1.
func New(sizePx int) *Font {
	scale := (sizePx + cellHeight/2) / cellHeight
	if scale < 1 {
		scale = 1
	}
	if scale > 18 {
		scale = 18
	}
	return &Font{scale: int16(scale)}
}

// Scale reports the integer enlargement applied to the 6x8 cell.
func (f *Font) Scale() int { return int(f.scale) }

// Height is the cell height in pixels.
func (f *Font) Height() int16 { return cellHeight * f.scale }

func (f *Font) GetYAdvance() uint8 { return uint8(cellHeight * f.scale) }

func (f *Font) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	f.g.scale = f.scale
	return &f.g
}

type glyph struct {
	r     rune
	scale int16
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows, ok := glyphRows(g.r)
	if !ok {
		return
	}
	s := g.scale
	for row := 0; row < len(rows); row++ {
		b := rows[row]
		// Bits are stored as 0b000xxxxx (bit4 = leftmost pixel).
		for col := 0; col < glyphWidth; col++ {
			if b&(0x10>>col) == 0 {
				continue
			}
			px := x + int16(col)*s
			py := y - int16(baseline-row)*s
			for dy := int16(0); dy < s; dy++ {
				for dx := int16(0); dx < s; dx++ {
					display.SetPixel(px+dx, py+dy, c)
				}
			}
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	s := uint8(g.scale)
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    glyphWidth * s,
		Height:   cellHeight * s,
		XAdvance: cellWidth * s,
		XOffset:  0,
		YOffset:  -int8(baseline * g.scale),
	}
}

// Covers reports whether r has a visible glyph.
func Covers(r rune) bool {
	if r == ' ' {
		return true
	}
	_, ok := glyphRows(r)
	return ok
}
