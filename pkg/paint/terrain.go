// terrain.go — parametric rolling-terrain generator.
package paint

import (
	"image/color"
	"math"

	"github.com/techflow/runner-assets/pkg/canvas"
)

// TerrainY returns the ground surface height at a world x-coordinate: a
// baseline fraction of the canvas height plus three sine octaves of
// different frequency and phase. Cheap multi-octave noise, organic enough
// for a skyline backdrop without a heightmap asset.
func TerrainY(xWorld, canvasH int, baseRatio float64) int {
	h := float64(canvasH)
	x := float64(xWorld)
	base := h * baseRatio
	w1 := math.Sin(x*0.008) * h * 0.04
	w2 := math.Sin(x*0.020+1.3) * h * 0.025
	w3 := math.Sin(x*0.005-0.8) * h * 0.05
	return int(base + w1 + w2 + w3)
}

// TerrainSection fills the ground for columns [x0, x1), darkening with depth
// and stamping a glow along the surface, and returns the height profile, one
// entry per column. Decorations use the profile to sit on the ground.
// xOffset shifts the sampled world coordinate to simulate scroll position.
func TerrainSection(c *canvas.Canvas, x0, x1, canvasH int, baseRatio float64, xOffset int, ground, glow color.RGBA) []int {
	heights := make([]int, 0, x1-x0)
	for x := x0; x < x1; x++ {
		ty := TerrainY(x+xOffset, canvasH, baseRatio)
		heights = append(heights, ty)

		for y := ty; y < canvasH; y++ {
			t := math.Min(1, float64(y-ty)/math.Max(1, float64(canvasH-ty)))
			f := 1 - t*0.35
			c.Set(x, y, uint8(float64(ground.R)*f), uint8(float64(ground.G)*f), uint8(float64(ground.B)*f), 255)
		}

		for gy := ty - 3; gy < ty+2; gy++ {
			alpha := int(255 * math.Max(0, 1-math.Abs(float64(gy-ty))/4))
			c.Blend(x, gy, glow.R, glow.G, glow.B, alpha)
		}
	}
	return heights
}

// GroundMarkers stamps a small post on the terrain surface every spacing
// columns, compensating for the scroll offset so posts stay glued to the
// world rather than the screen.
func GroundMarkers(c *canvas.Canvas, heights []int, x0, spacing, xOffset int, col color.RGBA) {
	for mx := 0; mx < x0+len(heights)+spacing; mx += spacing {
		sx := mx - xOffset%spacing
		hx := sx - x0
		if hx < 0 || hx >= len(heights) {
			continue
		}
		ty := heights[hx]
		c.FillRect(sx-2, ty+2, sx+3, ty+9, col.R, col.G, col.B, col.A)
	}
}
