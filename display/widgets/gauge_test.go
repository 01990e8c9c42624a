package widgets

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/acarl005/widget/display/pixel"
)

var (
	testFill  = color.RGBA{G: 255, A: 255}
	testTrack = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

func countColor(c *pixel.Canvas, col color.RGBA) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestDrawArcGauge_ZeroFractionLeavesOnlyTrack(t *testing.T) {
	c := pixel.NewCanvas(60, 60)
	DrawArcGauge(c, ArcGaugeConfig{
		CenterX: 30, CenterY: 30, Radius: 20, Thickness: 4,
		Fraction: 0, Track: testTrack, Fill: testFill,
	})

	if countColor(c, testFill) != 0 {
		t.Error("zero fraction painted fill pixels")
	}
	if countColor(c, testTrack) == 0 {
		t.Error("expected the track ring to be painted")
	}
}

func TestDrawArcGauge_FillGrowsWithFraction(t *testing.T) {
	counts := make([]int, 0, 3)
	for _, f := range []float64{0.25, 0.5, 1.0} {
		c := pixel.NewCanvas(60, 60)
		DrawArcGauge(c, ArcGaugeConfig{
			CenterX: 30, CenterY: 30, Radius: 20, Thickness: 4,
			Fraction: f, Fill: testFill,
		})
		counts = append(counts, countColor(c, testFill))
	}

	if !(counts[0] < counts[1] && counts[1] < counts[2]) {
		t.Errorf("fill pixel count not monotonic in fraction: %v", counts)
	}
}

func TestDrawArcGauge_FractionClamped(t *testing.T) {
	full := pixel.NewCanvas(60, 60)
	over := pixel.NewCanvas(60, 60)
	cfg := ArcGaugeConfig{CenterX: 30, CenterY: 30, Radius: 20, Thickness: 4, Fill: testFill}

	cfg.Fraction = 1.0
	DrawArcGauge(full, cfg)
	cfg.Fraction = 3.7
	DrawArcGauge(over, cfg)

	if !bytes.Equal(full.Bytes(), over.Bytes()) {
		t.Error("fraction above 1 must render identically to a full ring")
	}
}

func TestDrawArcGauge_Deterministic(t *testing.T) {
	a := pixel.NewCanvas(60, 60)
	b := pixel.NewCanvas(60, 60)
	cfg := ArcGaugeConfig{
		CenterX: 30, CenterY: 30, Radius: 18, Thickness: 5,
		Fraction: 0.42, Track: testTrack, Fill: testFill,
	}
	DrawArcGauge(a, cfg)
	DrawArcGauge(b, cfg)

	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical configs painted different pixels")
	}
}
