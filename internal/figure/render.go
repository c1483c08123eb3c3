package figure

// This file rasterizes a Figure onto a drivers.Displayer.

import (
	"fmt"
	"image/color"
	"math"

	"sineplot/internal/fonts/mathfont"

	"tinygo.org/x/drivers"
)

const (
	marginLeft   = 72
	marginRight  = 40
	marginTop    = 32
	marginBottom = 64

	tickLength     = 6
	labelGap       = 4
	gridDashOn     = 4
	gridDashOff    = 3
	yLabelFontSize = 14
	yGridSpacingPx = 60
)

// Render draws every axes of f onto d and presents the result.
//
// All axes share the same plot area; f.Width and f.Height define the layout,
// pixels outside the display are dropped by the display itself.
func Render(d drivers.Displayer, f *Figure) error {
	if f == nil || len(f.Axes) == 0 {
		return ErrNoAxes
	}

	fillRect(d, 0, 0, int16(f.Width), int16(f.Height), ColorWhite)
	for i, a := range f.Axes {
		vp, err := layout(f, a)
		if err != nil {
			return fmt.Errorf("axes %d: %w", i, err)
		}
		r := &rasterizer{d: d, vp: vp}
		r.drawAxes(a)
	}
	return d.Display()
}

type viewport struct {
	x, y, w, h int16
	xr, yr     Range
}

func layout(f *Figure, a *Axes) (viewport, error) {
	w := f.Width - marginLeft - marginRight
	h := f.Height - marginTop - marginBottom
	if w <= 2 || h <= 2 {
		return viewport{}, fmt.Errorf("%w: figure %dx%d leaves no plot area", ErrInvalidRange, f.Width, f.Height)
	}
	xr, err := a.XRange()
	if err != nil {
		return viewport{}, err
	}
	yr, err := a.YRange()
	if err != nil {
		return viewport{}, err
	}
	return viewport{
		x:  marginLeft,
		y:  marginTop,
		w:  int16(w),
		h:  int16(h),
		xr: xr,
		yr: yr,
	}, nil
}

// toPx maps data coordinates to pixel offsets inside the plot area.
func (v viewport) toPx(x, y float64) (float64, float64) {
	px := (x - v.xr.Min) / v.xr.span() * float64(v.w-1)
	py := (v.yr.Max - y) / v.yr.span() * float64(v.h-1)
	return px, py
}

func (v viewport) inside(x, y int16) bool {
	return x >= v.x && x < v.x+v.w && y >= v.y && y < v.y+v.h
}

type rasterizer struct {
	d  drivers.Displayer
	vp viewport
}

// plot sets one pixel, clipped to the plot area.
func (r *rasterizer) plot(x, y int16, c color.RGBA) {
	if !r.vp.inside(x, y) {
		return
	}
	r.d.SetPixel(x, y, c)
}

func (r *rasterizer) drawAxes(a *Axes) {
	vp := r.vp
	fillRect(r.d, vp.x, vp.y, vp.w, vp.h, ColorWhite)

	yStep := niceStep(yGridSpacingPx / (float64(vp.h-1) / vp.yr.span()))
	yTicks := niceTicks(vp.yr, yStep)

	if a.Grid {
		r.drawGrid(a, yTicks)
	}
	for _, l := range a.Lines {
		r.drawSeries(l)
	}
	for _, v := range a.VLines {
		r.drawVLine(v)
	}
	for _, m := range a.Markers {
		r.drawMarker(m)
	}
	r.drawSpines()
	r.drawXTicks(a)
	r.drawYTicks(a, yTicks, yStep)
}

func (r *rasterizer) drawGrid(a *Axes, yTicks []float64) {
	vp := r.vp
	for _, t := range a.XTicks {
		if !vp.xr.Contains(t.Pos) {
			continue
		}
		px, _ := vp.toPx(t.Pos, 0)
		x := vp.x + roundInt16(px)
		for i := int16(0); i < vp.h; i++ {
			if a.GridStyle == Dashed && i%(gridDashOn+gridDashOff) >= gridDashOn {
				continue
			}
			r.plot(x, vp.y+i, ColorGrid)
		}
	}
	for _, v := range yTicks {
		_, py := vp.toPx(0, v)
		y := vp.y + roundInt16(py)
		for i := int16(0); i < vp.w; i++ {
			if a.GridStyle == Dashed && i%(gridDashOn+gridDashOff) >= gridDashOn {
				continue
			}
			r.plot(vp.x+i, y, ColorGrid)
		}
	}
}

func (r *rasterizer) drawSeries(l *Line) {
	if len(l.X) == 0 || len(l.X) != len(l.Y) {
		return
	}
	vp := r.vp

	prevOK := false
	var prevX, prevY float64
	xMin := 0.0
	yMin := 0.0
	xMax := float64(vp.w - 1)
	yMax := float64(vp.h - 1)
	for i := range l.X {
		x := l.X[i]
		y := l.Y[i]
		if !finite(x) || !finite(y) {
			prevOK = false
			continue
		}

		curX, curY := vp.toPx(x, y)
		if prevOK {
			cx0, cy0, cx1, cy1, ok := clipLineToRect(prevX, prevY, curX, curY, xMin, yMin, xMax, yMax)
			if ok {
				r.drawLine(
					vp.x+roundInt16(cx0),
					vp.y+roundInt16(cy0),
					vp.x+roundInt16(cx1),
					vp.y+roundInt16(cy1),
					l.Width,
					l.Color,
				)
			}
		} else if curX >= xMin && curX <= xMax && curY >= yMin && curY <= yMax {
			r.stamp(vp.x+roundInt16(curX), vp.y+roundInt16(curY), l.Width, l.Color)
		}
		prevOK = true
		prevX = curX
		prevY = curY
	}
}

func (r *rasterizer) drawVLine(v *VLine) {
	vp := r.vp
	if !vp.xr.Contains(v.X) {
		return
	}
	px, _ := vp.toPx(v.X, 0)
	x := vp.x + roundInt16(px)
	for i := int16(0); i < vp.h; i++ {
		r.plot(x, vp.y+i, v.Color)
	}
}

func (r *rasterizer) drawMarker(m *Marker) {
	vp := r.vp
	if !vp.xr.Contains(m.X) || !finite(m.Y) {
		return
	}
	px, py := vp.toPx(m.X, m.Y)
	cx := vp.x + roundInt16(px)
	cy := vp.y + roundInt16(py)
	rad := int16(max(m.Radius, 1))
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy > rad*rad+rad {
				continue
			}
			r.plot(cx+dx, cy+dy, m.Color)
		}
	}
}

func (r *rasterizer) drawSpines() {
	vp := r.vp
	fillRect(r.d, vp.x, vp.y, vp.w, 1, ColorBlack)
	fillRect(r.d, vp.x, vp.y+vp.h-1, vp.w, 1, ColorBlack)
	fillRect(r.d, vp.x, vp.y, 1, vp.h, ColorBlack)
	fillRect(r.d, vp.x+vp.w-1, vp.y, 1, vp.h, ColorBlack)
}

func (r *rasterizer) drawXTicks(a *Axes) {
	vp := r.vp
	width := int16(max(a.TickLineWidth, 1))
	labelTop := vp.y + vp.h + tickLength + labelGap
	for _, t := range a.XTicks {
		if !vp.xr.Contains(t.Pos) {
			continue
		}
		px, _ := vp.toPx(t.Pos, 0)
		x := vp.x + roundInt16(px)
		fillRect(r.d, x-(width-1)/2, vp.y+vp.h, width, tickLength, ColorBlack)
		drawTickLabel(r.d, x, labelTop, t.Label, a.TickFontSize, ColorBlack)
	}
}

func (r *rasterizer) drawYTicks(a *Axes, yTicks []float64, step float64) {
	vp := r.vp
	width := int16(max(a.TickLineWidth, 1))
	font := mathfont.New(yLabelFontSize)
	s := int16(font.Scale())
	right := vp.x - tickLength - labelGap
	for _, v := range yTicks {
		_, py := vp.toPx(0, v)
		y := vp.y + roundInt16(py)
		fillRect(r.d, vp.x-tickLength, y-(width-1)/2, tickLength, width, ColorBlack)

		label := fmtTick(v, step)
		writeText(r.d, font, right-textWidth(font, label), y+glyphRows*s/2, label, ColorBlack)
	}
}

// drawLine is Bresenham with a square pen of the given width.
func (r *rasterizer) drawLine(x0, y0, x1, y1 int16, width int, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.stamp(x0, y0, width, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

func (r *rasterizer) stamp(x, y int16, width int, c color.RGBA) {
	w := int16(max(width, 1))
	off := (w - 1) / 2
	for dy := int16(0); dy < w; dy++ {
		for dx := int16(0); dx < w; dx++ {
			r.plot(x-off+dx, y-off+dy, c)
		}
	}
}

type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

func fillRect(d drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if f, ok := d.(rectFiller); ok {
		_ = f.FillRectangle(x, y, w, h, c)
		return
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			d.SetPixel(px, py, c)
		}
	}
}

func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	frac := raw / pow
	switch {
	case frac <= 1:
		return 1 * pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

// niceTicks lists the multiples of step inside rng.
func niceTicks(rng Range, step float64) []float64 {
	if step <= 0 || rng.span() <= 0 {
		return nil
	}
	k0 := math.Ceil(rng.Min / step)
	k1 := math.Floor(rng.Max / step)
	var out []float64
	for k := k0; k <= k1; k++ {
		v := k * step
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = clampFloat(x0+u1*dx, xmin, xmax)
	cy0 = clampFloat(y0+u1*dy, ymin, ymax)
	cx1 = clampFloat(x0+u2*dx, xmin, xmax)
	cy1 = clampFloat(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}
