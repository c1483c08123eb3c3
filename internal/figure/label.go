package figure

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"sineplot/internal/fonts/mathfont"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// glyphRows is the inked height of a mathfont glyph at scale 1.
const glyphRows = 7

// splitFraction splits "a/b" into numerator and denominator.
func splitFraction(label string) (num, den string, ok bool) {
	i := strings.IndexRune(label, '/')
	if i <= 0 || i == len(label)-1 {
		return "", "", false
	}
	return label[:i], label[i+1:], true
}

// fractionFont is the reduced font used for numerators and denominators.
func fractionFont(size int) *mathfont.Font {
	return mathfont.New(size * 2 / 3)
}

// fractionHeight is the height of a stacked fraction: numerator, gap, bar, gap, denominator.
func fractionHeight(f *mathfont.Font) int16 {
	s := int16(f.Scale())
	return 2*glyphRows*s + 2*s + barHeight(f)
}

func barHeight(f *mathfont.Font) int16 {
	return int16(max(f.Scale()/2, 1))
}

// drawTickLabel draws label horizontally centred on cx with its box starting at top.
// Labels of the form "a/b" are stacked; every label on an axis shares one centre line.
func drawTickLabel(d drivers.Displayer, cx, top int16, label string, size int, c color.RGBA) {
	if label == "" {
		return
	}
	ff := fractionFont(size)
	boxH := fractionHeight(ff)

	num, den, ok := splitFraction(label)
	if !ok {
		f := mathfont.New(size)
		s := int16(f.Scale())
		inkTop := top + (boxH-glyphRows*s)/2
		writeText(d, f, cx-textWidth(f, label)/2, inkTop+glyphRows*s, label, c)
		return
	}

	s := int16(ff.Scale())
	numW := textWidth(ff, num)
	denW := textWidth(ff, den)
	barW := max(numW, denW) + 2*s

	numBase := top + glyphRows*s
	barY := numBase + s
	denBase := barY + barHeight(ff) + s + glyphRows*s

	writeText(d, ff, cx-numW/2, numBase, num, c)
	fillRect(d, cx-barW/2, barY, barW, barHeight(ff), c)
	writeText(d, ff, cx-denW/2, denBase, den, c)
}

func writeText(d drivers.Displayer, f *mathfont.Font, x, baseline int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, f, x, baseline, s, c)
}

// textWidth is the inked width of s: the advance minus the trailing cell gap.
func textWidth(f *mathfont.Font, s string) int16 {
	if s == "" {
		return 0
	}
	_, outbox := tinyfont.LineWidth(f, s)
	return int16(outbox) - int16(f.Scale())
}

func fmtTick(v, step float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(-math.Floor(math.Log10(step)))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
