package hal

import "image/color"

// rgb565 packs 8-bit channels as rrrrrggggggbbbbb.
func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb565FromRGBA(c color.RGBA) uint16 { return rgb565(c.R, c.G, c.B) }

// rgb888From565 expands each channel back to the full 0..255 range.
func rgb888From565(p uint16) (r, g, b uint8) {
	rr := uint32(p>>11) & 0x1F
	gg := uint32(p>>5) & 0x3F
	bb := uint32(p) & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// putPixel565 stores p little-endian at buf[off:off+2].
func putPixel565(buf []byte, off int, p uint16) {
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}
