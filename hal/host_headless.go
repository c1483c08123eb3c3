package hal

import (
	"context"
	"fmt"
	"image/png"
	"os"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Out     string
}

// RunHeadless renders one frame without opening a window and writes it to cfg.Out as PNG.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Out == "" {
		return fmt.Errorf("headless: output path required")
	}
	return runHeadless(ctx, New().(*hostHAL), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	step, err := newApp(h)
	if err != nil {
		return err
	}
	if step != nil {
		if err := step(); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(cfg.Out)
	if err != nil {
		return fmt.Errorf("headless: %w", err)
	}
	if err := png.Encode(f, h.fb.image()); err != nil {
		f.Close()
		return fmt.Errorf("headless: encode %s: %w", cfg.Out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("headless: %w", err)
	}
	h.logger.WriteLineString(fmt.Sprintf("headless: wrote %s (%dx%d)", cfg.Out, h.fb.width, h.fb.height))
	return nil
}
