// Package widgets provides the individual visual elements the dashboard is
// composed from: an arc gauge, horizontal bars, sparklines, text labels and
// the byte-count formatter. Every widget is a pure function of its config
// and the target canvas, so identical inputs paint identical pixels.
package widgets

import (
	"image/color"
	"math"

	"github.com/acarl005/widget/display/pixel"
)

// ArcGaugeConfig controls the circular load gauge.
type ArcGaugeConfig struct {
	// CenterX, CenterY position the gauge center.
	CenterX, CenterY float64
	// Radius is the arc radius in pixels.
	Radius float64
	// Thickness is the stroke width in pixels.
	Thickness float64
	// Fraction is the filled portion of a full turn, clamped to 0..1.
	Fraction float64
	// Track is the color of the unfilled ring. A zero alpha skips the track.
	Track color.RGBA
	// Fill is the color of the filled sweep.
	Fill color.RGBA
}

// DrawArcGauge strokes a ring whose filled sweep starts at the positive x
// axis and proceeds clockwise, the way the load arc has always been drawn.
func DrawArcGauge(c *pixel.Canvas, cfg ArcGaugeConfig) {
	fraction := math.Max(0, math.Min(1, cfg.Fraction))

	if cfg.Track.A > 0 {
		c.StrokeArc(cfg.CenterX, cfg.CenterY, cfg.Radius, cfg.Thickness, 0, 2*math.Pi, cfg.Track)
	}
	if fraction > 0 {
		c.StrokeArc(cfg.CenterX, cfg.CenterY, cfg.Radius, cfg.Thickness, 0, fraction*2*math.Pi, cfg.Fill)
	}
}
