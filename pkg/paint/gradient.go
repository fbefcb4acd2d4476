// gradient.go — background gradient fills.
package paint

import (
	"image/color"
	"math"

	"github.com/techflow/runner-assets/pkg/canvas"
)

// Vignette fills the canvas with a radial gradient: inner at the center,
// shading to outer toward the edges. Distance is normalized by the canvas
// dimensions and scaled by 2.2 so the outer color is reached just past the
// mid-edge.
func Vignette(c *canvas.Canvas, inner, outer color.RGBA) {
	w, h := c.Width(), c.Height()
	cx := float64(w) / 2
	cy := float64(h) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) - cx) / float64(w)
			dy := (float64(y) - cy) / float64(h)
			t := math.Min(1, math.Max(0, math.Sqrt(dx*dx+dy*dy)*2.2))
			c.Set(x, y, lerp8(inner.R, outer.R, t), lerp8(inner.G, outer.G, t), lerp8(inner.B, outer.B, t), 255)
		}
	}
}

// VerticalGradient fills every scanline with a mix of top and bottom,
// shifting toward bottom by strength (0..1) at the lowest row.
func VerticalGradient(c *canvas.Canvas, top, bottom color.RGBA, strength float64) {
	h := c.Height()
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h) * strength
		c.FillRow(y, 0, c.Width(), lerp8(top.R, bottom.R, t), lerp8(top.G, bottom.G, t), lerp8(top.B, bottom.B, t), 255)
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}
