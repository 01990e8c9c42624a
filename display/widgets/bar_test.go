package widgets

import (
	"image/color"
	"testing"

	"github.com/acarl005/widget/display/pixel"
)

var (
	barFill   = color.RGBA{G: 200, A: 255}
	barWarn   = color.RGBA{R: 230, G: 180, A: 255}
	barDanger = color.RGBA{R: 230, A: 255}
	barEmpty  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

func barConfig(percent float64) BarConfig {
	return BarConfig{
		X: 0, Y: 0, Width: 20, Height: 2,
		Percent: percent,
		Fill:    barFill, Warn: barWarn, Danger: barDanger, Empty: barEmpty,
	}
}

func TestDrawBar_FillProportionalToPercent(t *testing.T) {
	c := pixel.NewCanvas(20, 2)
	DrawBar(c, barConfig(50))

	if got := countColor(c, barFill); got != 10*2 {
		t.Errorf("expected 20 filled pixels at 50%%, got %d", got)
	}
	if got := countColor(c, barEmpty); got != 10*2 {
		t.Errorf("expected 20 empty pixels at 50%%, got %d", got)
	}
}

func TestDrawBar_ClampsOutOfRange(t *testing.T) {
	over := pixel.NewCanvas(20, 2)
	DrawBar(over, barConfig(150))
	if got := countColor(over, barDanger); got != 20*2 {
		t.Errorf("expected fully filled bar above 100%%, got %d danger pixels", got)
	}

	under := pixel.NewCanvas(20, 2)
	DrawBar(under, barConfig(-5))
	if got := countColor(under, barEmpty); got != 20*2 {
		t.Errorf("expected fully empty bar below 0%%, got %d empty pixels", got)
	}
}

func TestDrawBar_ThresholdColors(t *testing.T) {
	tests := []struct {
		percent float64
		want    color.RGBA
	}{
		{50, barFill},
		{69.9, barFill},
		{70, barWarn},
		{89.9, barWarn},
		{90, barDanger},
		{100, barDanger},
	}
	for _, tt := range tests {
		c := pixel.NewCanvas(20, 2)
		DrawBar(c, barConfig(tt.percent))
		if c.At(0, 0) != tt.want {
			t.Errorf("percent %.1f: expected fill color %v, got %v", tt.percent, tt.want, c.At(0, 0))
		}
	}
}

func TestDrawText_PaintsAndMeasures(t *testing.T) {
	c := pixel.NewCanvas(100, 20)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DrawText(c, 2, 14, "load 0.42", white)

	if countColor(c, white) == 0 {
		t.Error("expected text pixels to be painted")
	}
	if w := MeasureText("load 0.42"); w != 9*7 {
		t.Errorf("expected 7px advance per glyph, got total %d", w)
	}
	if TextHeight() <= 0 {
		t.Error("expected positive text height")
	}
}

func TestDrawTextCentered_CentersOnAxis(t *testing.T) {
	c := pixel.NewCanvas(100, 20)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DrawTextCentered(c, 50, 14, "ab", white)

	// All painted pixels must sit within the measured span around center.
	half := MeasureText("ab")/2 + 1
	for y := 0; y < 20; y++ {
		for x := 0; x < 100; x++ {
			if c.At(x, y) == white && (x < 50-half || x > 50+half) {
				t.Fatalf("text pixel at x=%d outside centered span", x)
			}
		}
	}
}
