// Package paint provides stateless drawing routines over a canvas: shape
// primitives, gradients and the procedural terrain, starfield and skyline
// generators used by the scene composers.
//
// None of the routines validate coordinates; the canvas clips writes, so
// callers are free to run shapes off the edges.
package paint

import (
	"image/color"
	"math"

	"github.com/techflow/runner-assets/pkg/canvas"
)

// FillCircle draws a solid disk centered at (cx, cy). Every point in the
// bounding square is tested against dx²+dy² ≤ r².
func FillCircle(c *canvas.Canvas, cx, cy, radius int, col color.RGBA) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= radius*radius {
				c.Set(x, y, col.R, col.G, col.B, col.A)
			}
		}
	}
}

// ThickLine walks from (x0, y0) to (x1, y1) in sub-pixel steps, stamping a
// disk of the given radius at each sample to emulate stroke width. The step
// count keeps consecutive samples at most half a pixel apart.
func ThickLine(c *canvas.Canvas, x0, y0, x1, y1 float64, thickness int, col color.RGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))*2) + 1
	t := float64(thickness)
	for i := 0; i <= steps; i++ {
		p := float64(i) / float64(steps)
		x := x0 + (x1-x0)*p
		y := y0 + (y1-y0)*p
		for yy := int(y - t); yy <= int(y+t); yy++ {
			for xx := int(x - t); xx <= int(x+t); xx++ {
				ddx := float64(xx) - x
				ddy := float64(yy) - y
				if ddx*ddx+ddy*ddy <= t*t {
					c.Set(xx, yy, col.R, col.G, col.B, col.A)
				}
			}
		}
	}
}
