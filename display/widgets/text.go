package widgets

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/acarl005/widget/display/pixel"
)

// face is the fixed 7x13 bitmap face used for all dashboard text. A bitmap
// face keeps glyph placement integral, which keeps frames byte-identical
// across runs.
var face = basicfont.Face7x13

// DrawText renders s with its baseline at (x, y).
func DrawText(c *pixel.Canvas, x, y int, s string, col color.RGBA) {
	d := font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// DrawTextCentered renders s horizontally centered on centerX.
func DrawTextCentered(c *pixel.Canvas, centerX, y int, s string, col color.RGBA) {
	DrawText(c, centerX-MeasureText(s)/2, y, s, col)
}

// MeasureText returns the advance width of s in pixels.
func MeasureText(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// TextHeight returns the face height in pixels.
func TextHeight() int {
	return face.Metrics().Height.Ceil()
}
