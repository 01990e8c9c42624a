package widgets

import (
	"image/color"
	"math"

	"github.com/acarl005/widget/display/pixel"
)

// BarConfig controls a horizontal usage bar.
type BarConfig struct {
	// X, Y is the top-left corner; Width, Height the bar dimensions.
	X, Y, Width, Height int
	// Percent is the filled portion, 0 to 100.
	Percent float64
	// ThresholdWarning is the % at which the fill switches to Warn (default: 70).
	ThresholdWarning float64
	// ThresholdDanger is the % at which the fill switches to Danger (default: 90).
	ThresholdDanger float64
	// Fill, Warn, Danger are the fill colors per threshold band.
	Fill, Warn, Danger color.RGBA
	// Empty is the color of the unfilled remainder.
	Empty color.RGBA
}

// barColor returns the fill color for the given percentage based on thresholds.
func barColor(cfg BarConfig, percent float64) color.RGBA {
	warning := cfg.ThresholdWarning
	if warning == 0 {
		warning = 70
	}
	danger := cfg.ThresholdDanger
	if danger == 0 {
		danger = 90
	}
	switch {
	case percent >= danger:
		return cfg.Danger
	case percent >= warning:
		return cfg.Warn
	default:
		return cfg.Fill
	}
}

// DrawBar paints a horizontal bar filled proportionally to Percent, clamped
// to 0-100.
func DrawBar(c *pixel.Canvas, cfg BarConfig) {
	percent := math.Max(0, math.Min(100, cfg.Percent))

	filled := int(math.Round(percent / 100.0 * float64(cfg.Width)))

	if cfg.Empty.A > 0 {
		c.FillRect(cfg.X, cfg.Y, cfg.Width, cfg.Height, cfg.Empty)
	}
	if filled > 0 {
		c.FillRect(cfg.X, cfg.Y, filled, cfg.Height, barColor(cfg, percent))
	}
}
