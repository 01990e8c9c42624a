package widgets

import (
	"image/color"
	"math"

	"github.com/acarl005/widget/display/pixel"
)

// SparklineConfig controls a column-based trend chart.
type SparklineConfig struct {
	// X, Y is the top-left corner of the chart area.
	X, Y, Width, Height int
	// Data holds the samples most-recent-first, the order histories iterate
	// in. The chart renders oldest on the left, newest on the right.
	Data []float64
	// Min, Max fix the value range. If Min == Max the chart auto-scales.
	Min, Max float64
	// Color paints the columns.
	Color color.RGBA
	// Baseline, if its alpha is nonzero, paints a one-pixel floor line.
	Baseline color.RGBA
}

// DrawSparkline paints one column per sample, right-aligned so the newest
// sample hugs the right edge. Columns are at least one pixel tall for any
// sample above the minimum, so activity is never invisible.
func DrawSparkline(c *pixel.Canvas, cfg SparklineConfig) {
	if cfg.Baseline.A > 0 {
		c.FillRect(cfg.X, cfg.Y+cfg.Height-1, cfg.Width, 1, cfg.Baseline)
	}
	if len(cfg.Data) == 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		return
	}

	data := cfg.Data
	if len(data) > cfg.Width {
		data = data[:cfg.Width]
	}

	minVal, maxVal := cfg.Min, cfg.Max
	if minVal == maxVal {
		minVal, maxVal = data[0], data[0]
		for _, v := range data {
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}

	for i, v := range data {
		// i counts back from the newest sample at the right edge.
		x := cfg.X + cfg.Width - 1 - i
		var h int
		if maxVal > minVal {
			normalized := (v - minVal) / (maxVal - minVal)
			normalized = math.Max(0, math.Min(1, normalized))
			h = int(math.Round(normalized * float64(cfg.Height)))
		} else if v > 0 {
			h = cfg.Height / 2
		}
		if h == 0 && v > minVal {
			h = 1
		}
		if h > 0 {
			c.FillRect(x, cfg.Y+cfg.Height-h, 1, h, cfg.Color)
		}
	}
}
