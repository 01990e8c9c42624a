package render

import (
	"fmt"
	"image/color"
)

// Theme holds the dashboard palette.
type Theme struct {
	// Background fills the whole surface.
	Background color.RGBA
	// Surface is the unfilled portion of bars and charts.
	Surface color.RGBA
	// Accent paints the load arc, CPU elements and read throughput.
	Accent color.RGBA
	// Warn and Danger replace Accent past the usage thresholds; Danger
	// also paints write throughput.
	Warn, Danger color.RGBA
	// Text paints labels and numbers; Muted paints secondary labels.
	Text, Muted color.RGBA
}

// DefaultTheme is the original palette: deep blue background, green arc,
// white text.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 0x33, G: 0x4C, B: 0xCC, A: 0xFF},
		Surface:    color.RGBA{R: 0x26, G: 0x39, B: 0x99, A: 0xFF},
		Accent:     color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
		Warn:       color.RGBA{R: 0xEA, G: 0xB3, B: 0x08, A: 0xFF},
		Danger:     color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF},
		Text:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Muted:      color.RGBA{R: 0xC2, G: 0xCB, B: 0xF0, A: 0xFF},
	}
}

// ParseColor parses a "#RRGGBB" hex string into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("render: parse color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// overlay replaces a theme slot when the hex string is non-empty.
func overlay(dst *color.RGBA, hex string) error {
	if hex == "" {
		return nil
	}
	c, err := ParseColor(hex)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

// ThemeFromHex builds a theme from optional hex overrides on the default
// palette. Empty strings keep the default slot.
func ThemeFromHex(background, accent, warn, danger, text string) (Theme, error) {
	t := DefaultTheme()
	for _, o := range []struct {
		dst *color.RGBA
		hex string
	}{
		{&t.Background, background},
		{&t.Accent, accent},
		{&t.Warn, warn},
		{&t.Danger, danger},
		{&t.Text, text},
	} {
		if err := overlay(o.dst, o.hex); err != nil {
			return Theme{}, err
		}
	}
	return t, nil
}
