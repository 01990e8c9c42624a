// Package pixel provides the in-memory ARGB8888 canvas the dashboard is
// composed onto before the bytes are copied into shared memory. Byte order
// within the canvas matches the wire format the presentation side expects:
// little-endian ARGB, i.e. B, G, R, A per pixel.
//
// Canvas implements draw.Image, so the standard image machinery (font
// rendering, PNG encoding) works against it directly.
package pixel

import (
	"image"
	"image/color"
	"math"
)

const bytesPerPixel = 4

// Canvas is a w×h pixel surface over a contiguous byte slice.
type Canvas struct {
	w, h   int
	stride int
	buf    []byte
}

// NewCanvas allocates a canvas of the given physical dimensions, initially
// transparent black.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 || h <= 0 {
		panic("pixel: canvas dimensions must be positive")
	}
	return &Canvas{w: w, h: h, stride: w * bytesPerPixel, buf: make([]byte, w*h*bytesPerPixel)}
}

// Bytes returns the underlying pixel storage in presentation byte order.
func (c *Canvas) Bytes() []byte { return c.buf }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.h }

// Stride returns the bytes per row.
func (c *Canvas) Stride() int { return c.stride }

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.w, c.h) }

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	i := y*c.stride + x*bytesPerPixel
	return color.RGBA{R: c.buf[i+2], G: c.buf[i+1], B: c.buf[i], A: c.buf[i+3]}
}

// Set implements draw.Image. Out-of-bounds writes are discarded.
func (c *Canvas) Set(x, y int, col color.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	r, g, b, a := col.RGBA()
	i := y*c.stride + x*bytesPerPixel
	c.buf[i] = byte(b >> 8)
	c.buf[i+1] = byte(g >> 8)
	c.buf[i+2] = byte(r >> 8)
	c.buf[i+3] = byte(a >> 8)
}

// SetRGBA writes one pixel without the color.Color conversion round trip.
func (c *Canvas) SetRGBA(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := y*c.stride + x*bytesPerPixel
	c.buf[i] = col.B
	c.buf[i+1] = col.G
	c.buf[i+2] = col.R
	c.buf[i+3] = col.A
}

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.RGBA) {
	c.FillRect(0, 0, c.w, c.h, col)
}

// FillRect paints the axis-aligned rectangle at (x, y) with the given
// dimensions, clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.w), min(y+h, c.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for row := y0; row < y1; row++ {
		i := row*c.stride + x0*bytesPerPixel
		for colIdx := x0; colIdx < x1; colIdx++ {
			c.buf[i] = col.B
			c.buf[i+1] = col.G
			c.buf[i+2] = col.R
			c.buf[i+3] = col.A
			i += bytesPerPixel
		}
	}
}

// StrokeArc strokes a circular arc centered at (cx, cy), sweeping clockwise
// in screen coordinates from startAngle to endAngle (radians, 0 at the
// positive x axis). The stroke is thickness pixels wide, centered on the
// radius. Sweeps of a full turn or more close the ring.
//
// The stroke is produced by scanning the bounding annulus and testing each
// pixel center, so output depends only on the arguments.
func (c *Canvas) StrokeArc(cx, cy, radius, thickness, startAngle, endAngle float64, col color.RGBA) {
	if radius <= 0 || thickness <= 0 || endAngle <= startAngle {
		return
	}
	full := endAngle-startAngle >= 2*math.Pi
	sweep := endAngle - startAngle
	start := normalizeAngle(startAngle)

	rOut := radius + thickness/2
	rIn := radius - thickness/2
	if rIn < 0 {
		rIn = 0
	}

	x0 := int(math.Floor(cx - rOut))
	x1 := int(math.Ceil(cx + rOut))
	y0 := int(math.Floor(cy - rOut))
	y1 := int(math.Ceil(cy + rOut))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Hypot(dx, dy)
			if d < rIn || d > rOut {
				continue
			}
			if !full {
				// Atan2 with y-down screen coordinates increases clockwise.
				a := normalizeAngle(math.Atan2(dy, dx) - start)
				if a > sweep {
					continue
				}
			}
			c.SetRGBA(x, y, col)
		}
	}
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
