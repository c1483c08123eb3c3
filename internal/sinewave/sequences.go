// Package sinewave builds the annotated one-period sine plot: a dense curve,
// radian ticks on the x axis and red markers at a fixed sampling interval.
package sinewave

import (
	"fmt"
	"math"

	"sineplot/internal/figure"
)

const (
	// DenseStep spaces the points of the smooth curve.
	DenseStep  = math.Pi / 32
	// TickStep spaces the radian ticks.
	TickStep   = math.Pi / 4
	// SampleStep is the sampling interval of the markers.
	SampleStep = 0.75

	// Period is the visible x range, [0, Period].
	Period     = 2 * math.Pi
	// SampleStop bounds the sample sequence; samples past Period are kept
	// but fall outside the visible range.
	SampleStop = Period + TickStep

	inclusiveEps = 1e-9
)

// TickLabels are the x tick labels in tick order.
var TickLabels = [...]string{"0", "π/4", "π/2", "3π/4", "π", "5π/4", "3π/2", "7π/4", "2π"}

// Inclusive returns start, start+step, ... up to and including stop (within
// 1e-9 steps of rounding). Values are computed by index, not accumulated.
// It panics if step is not positive or stop < start.
func Inclusive(start, stop, step float64) []float64 {
	if !(step > 0) || stop < start {
		panic(fmt.Sprintf("sinewave: bad range [%g, %g] step %g", start, stop, step))
	}
	n := int(math.Floor((stop-start)/step+inclusiveEps)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Dense is the domain of the smooth curve: [0, 2π] in steps of π/32.
func Dense() []float64 { return Inclusive(0, Period, DenseStep) }

// TickPositions are the radian tick positions: [0, 2π] in steps of π/4.
func TickPositions() []float64 { return Inclusive(0, Period, TickStep) }

// Samples are the marker positions: [0, 2π+π/4] in steps of 0.75.
func Samples() []float64 { return Inclusive(0, SampleStop, SampleStep) }

// Sin maps math.Sin over xs.
func Sin(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Sin(x)
	}
	return out
}

// RadianTicks pairs every tick position with its label.
func RadianTicks() ([]figure.Tick, error) {
	return figure.PairTicks(TickPositions(), TickLabels[:])
}
