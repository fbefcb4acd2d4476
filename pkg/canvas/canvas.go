// Package canvas provides an in-memory RGBA pixel buffer with direct and
// alpha-blended write operations, plus a self-contained PNG writer.
//
// All write operations silently clip to the buffer bounds, so drawing code
// can use unclamped loop ranges without guarding every coordinate.
package canvas

import "image"

// Canvas is a width x height grid of 4-byte RGBA samples, row-major,
// top-to-bottom. The buffer is owned exclusively by its Canvas.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel
}

// New creates a canvas with the given dimensions, initially fully
// transparent black. Dimensions must be positive.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel buffer (RGBA order).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// Image returns an *image.RGBA view that shares the canvas pixel buffer,
// so standard-library and x/image drawing routines write straight into the
// canvas with no copy.
func (c *Canvas) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    c.data,
		Stride: c.width * 4,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}

// Set overwrites the pixel at (x, y). Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = r
	c.data[i+1] = g
	c.data[i+2] = b
	c.data[i+3] = a
}

// FillRow overwrites the half-open column range [x0, x1) on scanline y with
// a single solid color. The range is clamped to the buffer; an empty clamped
// range or an out-of-bounds y is a no-op.
func (c *Canvas) FillRow(y, x0, x1 int, r, g, b, a uint8) {
	if y < 0 || y >= c.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, c.width)
	if x1 <= x0 {
		return
	}
	i := (y*c.width + x0) * 4
	for x := x0; x < x1; x++ {
		c.data[i+0] = r
		c.data[i+1] = g
		c.data[i+2] = b
		c.data[i+3] = a
		i += 4
	}
}

// FillRect applies FillRow to every scanline in [y0, y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 int, r, g, b, a uint8) {
	for y := max(y0, 0); y < min(y1, c.height); y++ {
		c.FillRow(y, x0, x1, r, g, b, a)
	}
}

// Blend composites the source color over the existing pixel using the
// standard "over" operator. A zero or negative alpha, like out-of-bounds
// coordinates, is a no-op. This is the only operation that reads existing
// pixel state before writing.
func (c *Canvas) Blend(x, y int, r, g, b uint8, a int) {
	if a <= 0 || x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	if a > 255 {
		a = 255
	}
	i := (y*c.width + x) * 4
	sa := float64(a) / 255
	da := float64(c.data[i+3]) / 255
	oa := sa + da*(1-sa)
	if oa <= 0 {
		return
	}
	inv := 1 / oa
	c.data[i+0] = blendChannel(r, c.data[i+0], sa, da, inv)
	c.data[i+1] = blendChannel(g, c.data[i+1], sa, da, inv)
	c.data[i+2] = blendChannel(b, c.data[i+2], sa, da, inv)
	c.data[i+3] = uint8(oa * 255)
}

func blendChannel(src, dst uint8, sa, da, inv float64) uint8 {
	v := (float64(src)*sa + float64(dst)*da*(1-sa)) * inv
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}

// BlendRow applies Blend across the clamped column range [x0, x1) on
// scanline y. Used for soft glows and borders.
func (c *Canvas) BlendRow(y, x0, x1 int, r, g, b uint8, a int) {
	for x := max(x0, 0); x < min(x1, c.width); x++ {
		c.Blend(x, y, r, g, b, a)
	}
}
