package widgets

import (
	"image/color"
	"testing"

	"github.com/acarl005/widget/display/pixel"
)

var sparkColor = color.RGBA{B: 255, A: 255}

// columnHeight counts painted pixels in column x of the chart area.
func columnHeight(c *pixel.Canvas, x, y, height int, col color.RGBA) int {
	n := 0
	for row := y; row < y+height; row++ {
		if c.At(x, row) == col {
			n++
		}
	}
	return n
}

func TestDrawSparkline_NewestSampleAtRightEdge(t *testing.T) {
	c := pixel.NewCanvas(20, 10)
	// Most-recent-first: newest sample is the maximum.
	DrawSparkline(c, SparklineConfig{
		X: 0, Y: 0, Width: 20, Height: 10,
		Data: []float64{100, 50, 0},
		Min:  0, Max: 100,
		Color: sparkColor,
	})

	if h := columnHeight(c, 19, 0, 10, sparkColor); h != 10 {
		t.Errorf("newest (max) sample: expected full column at right edge, got height %d", h)
	}
	if h := columnHeight(c, 18, 0, 10, sparkColor); h != 5 {
		t.Errorf("middle sample: expected height 5, got %d", h)
	}
	if h := columnHeight(c, 17, 0, 10, sparkColor); h != 0 {
		t.Errorf("oldest (min) sample: expected empty column, got height %d", h)
	}
	if h := columnHeight(c, 0, 0, 10, sparkColor); h != 0 {
		t.Errorf("column beyond the data painted, height %d", h)
	}
}

func TestDrawSparkline_TruncatesToWidth(t *testing.T) {
	c := pixel.NewCanvas(4, 8)
	data := make([]float64, 50)
	for i := range data {
		data[i] = 100
	}
	DrawSparkline(c, SparklineConfig{
		X: 0, Y: 0, Width: 4, Height: 8,
		Data: data, Min: 0, Max: 100, Color: sparkColor,
	})

	for x := 0; x < 4; x++ {
		if h := columnHeight(c, x, 0, 8, sparkColor); h != 8 {
			t.Errorf("column %d: expected height 8, got %d", x, h)
		}
	}
}

func TestDrawSparkline_AutoScale(t *testing.T) {
	c := pixel.NewCanvas(10, 10)
	DrawSparkline(c, SparklineConfig{
		X: 0, Y: 0, Width: 10, Height: 10,
		Data:  []float64{400, 200},
		Color: sparkColor,
	})

	if h := columnHeight(c, 9, 0, 10, sparkColor); h != 10 {
		t.Errorf("auto-scaled max: expected full column, got %d", h)
	}
	if h := columnHeight(c, 8, 0, 10, sparkColor); h != 0 {
		t.Errorf("auto-scaled min: expected empty column, got %d", h)
	}
}

func TestDrawSparkline_AllEqualNonZeroShowsMidColumns(t *testing.T) {
	c := pixel.NewCanvas(6, 10)
	DrawSparkline(c, SparklineConfig{
		X: 0, Y: 0, Width: 6, Height: 10,
		Data:  []float64{7, 7, 7},
		Color: sparkColor,
	})

	for x := 3; x < 6; x++ {
		if h := columnHeight(c, x, 0, 10, sparkColor); h != 5 {
			t.Errorf("column %d: expected mid-height 5 for flat data, got %d", x, h)
		}
	}
}

func TestDrawSparkline_EmptyDataOnlyBaseline(t *testing.T) {
	c := pixel.NewCanvas(8, 6)
	base := color.RGBA{R: 90, G: 90, B: 90, A: 255}
	DrawSparkline(c, SparklineConfig{
		X: 0, Y: 0, Width: 8, Height: 6,
		Color: sparkColor, Baseline: base,
	})

	if countColor(c, sparkColor) != 0 {
		t.Error("empty data painted sample columns")
	}
	if countColor(c, base) != 8 {
		t.Errorf("expected an 8-pixel baseline, got %d", countColor(c, base))
	}
}
