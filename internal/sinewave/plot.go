package sinewave

import (
	"fmt"
	"math"

	"sineplot/internal/figure"
)

const (
	TickLineWidth = 3
	TickFontSize  = 20
)

// Build describes the whole plot. Rendering and display are left to the caller.
func Build() (*figure.Figure, error) {
	f := figure.New()
	ax := f.AddAxes()
	ax.SetGrid(true)

	ax.SetTickLineWidth(TickLineWidth)
	ax.SetGridLineStyle(figure.Solid)

	xs := Dense()
	if _, err := ax.Plot(xs, Sin(xs), figure.ColorSeries0); err != nil {
		return nil, fmt.Errorf("sinewave: curve: %w", err)
	}

	ticks, err := RadianTicks()
	if err != nil {
		return nil, fmt.Errorf("sinewave: ticks: %w", err)
	}
	ax.SetXTicks(ticks)
	ax.SetTickFontSize(TickFontSize)

	for _, s := range Samples() {
		ax.AxVLine(s, figure.ColorRed)
		ax.PlotMarker(s, math.Sin(s), figure.ColorRed)
	}

	if err := ax.SetXLim(0, Period); err != nil {
		return nil, fmt.Errorf("sinewave: xlim: %w", err)
	}
	return f, nil
}
