// Package figure holds a retained description of a 2D plot (figure, axes and
// the artists drawn on them) and rasterizes it onto a drivers.Displayer.
package figure

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var (
	ErrLengthMismatch = errors.New("figure: x and y lengths differ")
	ErrTickMismatch   = errors.New("figure: tick positions and labels differ in length")
	ErrInvalidRange   = errors.New("figure: invalid axis range")
	ErrNoAxes         = errors.New("figure: no axes")
	ErrEmptyRange     = errors.New("figure: no finite data to scale")
)

var (
	ColorWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorBlack = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorRed   = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	ColorGrid  = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}

	// ColorSeries0 is the colour of the first plotted series.
	ColorSeries0 = color.RGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF}
)

const (
	DefaultWidth         = 640
	DefaultHeight        = 480
	DefaultTickFontSize  = 14
	DefaultTickLineWidth = 1
	DefaultLineWidth     = 2
	DefaultMarkerRadius  = 4
)

// LineStyle selects how grid lines are stroked.
type LineStyle uint8

const (
	Dashed LineStyle = iota
	Solid
)

func (s LineStyle) String() string {
	switch s {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	default:
		return "unknown"
	}
}

// Tick is a marked axis position with its label.
type Tick struct {
	Pos   float64
	Label string
}

// PairTicks zips positions with labels. Both slices must have the same length.
func PairTicks(pos []float64, labels []string) ([]Tick, error) {
	if len(pos) != len(labels) {
		return nil, fmt.Errorf("%w: %d positions, %d labels", ErrTickMismatch, len(pos), len(labels))
	}
	out := make([]Tick, len(pos))
	for i := range pos {
		out[i] = Tick{Pos: pos[i], Label: labels[i]}
	}
	return out, nil
}

// Range is a closed interval on one axis.
type Range struct {
	Min float64
	Max float64
}

func (r Range) span() float64 { return r.Max - r.Min }

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Line is a connected polyline through (X[i], Y[i]).
type Line struct {
	X     []float64
	Y     []float64
	Color color.RGBA
	Width int
}

// VLine spans the full height of the axes at data coordinate X.
type VLine struct {
	X     float64
	Color color.RGBA
}

// Marker is a single filled point.
type Marker struct {
	X      float64
	Y      float64
	Color  color.RGBA
	Radius int
}

// Figure is the top-level canvas.
type Figure struct {
	Width  int
	Height int
	Axes   []*Axes
}

// New returns an empty figure of the default size.
func New() *Figure {
	return &Figure{Width: DefaultWidth, Height: DefaultHeight}
}

// AddAxes appends an axes covering the figure's plot area.
func (f *Figure) AddAxes() *Axes {
	a := &Axes{
		GridStyle:     Dashed,
		TickLineWidth: DefaultTickLineWidth,
		TickFontSize:  DefaultTickFontSize,
	}
	f.Axes = append(f.Axes, a)
	return a
}

// Axes is one plotting area with its decorations and artists.
type Axes struct {
	Grid          bool
	GridStyle     LineStyle
	TickLineWidth int
	TickFontSize  int
	XTicks        []Tick
	XLim          *Range

	Lines   []*Line
	VLines  []*VLine
	Markers []*Marker
}

func (a *Axes) SetGrid(on bool)              { a.Grid = on }
func (a *Axes) SetGridLineStyle(s LineStyle) { a.GridStyle = s }
func (a *Axes) SetTickFontSize(size int)     { a.TickFontSize = size }
func (a *Axes) SetTickLineWidth(width int)   { a.TickLineWidth = max(width, 1) }
func (a *Axes) SetXTicks(ticks []Tick)       { a.XTicks = append([]Tick(nil), ticks...) }

// Plot adds a connected curve. The slices are copied.
func (a *Axes) Plot(x, y []float64, c color.RGBA) (*Line, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	l := &Line{
		X:     append([]float64(nil), x...),
		Y:     append([]float64(nil), y...),
		Color: c,
		Width: DefaultLineWidth,
	}
	a.Lines = append(a.Lines, l)
	return l, nil
}

// AxVLine adds a vertical line spanning the whole axes height.
func (a *Axes) AxVLine(x float64, c color.RGBA) *VLine {
	v := &VLine{X: x, Color: c}
	a.VLines = append(a.VLines, v)
	return v
}

// PlotMarker adds one filled point.
func (a *Axes) PlotMarker(x, y float64, c color.RGBA) *Marker {
	m := &Marker{X: x, Y: y, Color: c, Radius: DefaultMarkerRadius}
	a.Markers = append(a.Markers, m)
	return m
}

// SetXLim fixes the visible x range.
func (a *Axes) SetXLim(lo, hi float64) error {
	if !finite(lo) || !finite(hi) || lo >= hi {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}
	a.XLim = &Range{Min: lo, Max: hi}
	return nil
}

// XRange is the visible x range: XLim when set, otherwise the extent of the data.
func (a *Axes) XRange() (Range, error) {
	if a.XLim != nil {
		return *a.XLim, nil
	}
	ext := newExtent()
	for _, l := range a.Lines {
		ext.add(l.X...)
	}
	for _, v := range a.VLines {
		ext.add(v.X)
	}
	for _, m := range a.Markers {
		ext.add(m.X)
	}
	return ext.rangeWithMargin(0)
}

// YRange autoscales over every line and marker with a 5% margin on each side.
func (a *Axes) YRange() (Range, error) {
	ext := newExtent()
	for _, l := range a.Lines {
		ext.add(l.Y...)
	}
	for _, m := range a.Markers {
		ext.add(m.Y)
	}
	return ext.rangeWithMargin(0.05)
}

type extent struct {
	min, max float64
	ok       bool
}

func newExtent() *extent { return &extent{min: math.Inf(1), max: math.Inf(-1)} }

func (e *extent) add(vs ...float64) {
	for _, v := range vs {
		if !finite(v) {
			continue
		}
		e.min = math.Min(e.min, v)
		e.max = math.Max(e.max, v)
		e.ok = true
	}
}

func (e *extent) rangeWithMargin(frac float64) (Range, error) {
	if !e.ok {
		return Range{}, ErrEmptyRange
	}
	span := e.max - e.min
	if span == 0 {
		return Range{Min: e.min - 0.5, Max: e.max + 0.5}, nil
	}
	pad := span * frac
	return Range{Min: e.min - pad, Max: e.max + pad}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
