package widgets

import (
	"image/color"
	"math"

	"github.com/acarl005/widget/display/pixel"
)

// VBarConfig controls a vertical usage bar, used for per-core cells.
// Thresholds and colors carry the same meaning as in BarConfig.
type VBarConfig struct {
	X, Y, Width, Height int
	Percent             float64
	ThresholdWarning    float64
	ThresholdDanger     float64
	Fill, Warn, Danger  color.RGBA
	Empty               color.RGBA
}

// DrawVBar paints a bar that fills bottom-up proportionally to Percent,
// clamped to 0-100.
func DrawVBar(c *pixel.Canvas, cfg VBarConfig) {
	percent := math.Max(0, math.Min(100, cfg.Percent))

	filled := int(math.Round(percent / 100.0 * float64(cfg.Height)))

	if cfg.Empty.A > 0 {
		c.FillRect(cfg.X, cfg.Y, cfg.Width, cfg.Height, cfg.Empty)
	}
	if filled > 0 {
		fill := barColor(BarConfig{
			ThresholdWarning: cfg.ThresholdWarning,
			ThresholdDanger:  cfg.ThresholdDanger,
			Fill:             cfg.Fill, Warn: cfg.Warn, Danger: cfg.Danger,
		}, percent)
		c.FillRect(cfg.X, cfg.Y+cfg.Height-filled, cfg.Width, filled, fill)
	}
}
