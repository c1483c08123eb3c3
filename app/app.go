package app

import (
	"errors"
	"fmt"

	"sineplot/hal"
	"sineplot/internal/buildinfo"
	"sineplot/internal/figure"
	"sineplot/internal/sinewave"
)

var ErrNoDisplay = errors.New("app: no framebuffer available")

// New builds the sine plot, rasterizes it into the HAL framebuffer and
// returns the per-frame step. The plot is static, so the step does nothing.
func New(h hal.HAL) (func() error, error) {
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, ErrNoDisplay
	}

	fig, err := sinewave.Build()
	if err != nil {
		return nil, err
	}
	fig.Width = fb.Width()
	fig.Height = fb.Height()

	if err := figure.Render(hal.NewFramebufferDisplay(fb), fig); err != nil {
		return nil, fmt.Errorf("app: render: %w", err)
	}

	if l := h.Logger(); l != nil {
		ax := fig.Axes[0]
		l.WriteLineString(fmt.Sprintf("sineplot %s: %dx%d, %d samples, %d ticks, x=[%g, %g]",
			buildinfo.Short(), fig.Width, fig.Height, len(ax.Markers), len(ax.XTicks), ax.XLim.Min, ax.XLim.Max))
	}
	return func() error { return nil }, nil
}
