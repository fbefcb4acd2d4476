// skyline.go — procedural city silhouette.
package paint

import "github.com/techflow/runner-assets/pkg/canvas"

// Skyline draws a building silhouette in two depth layers between skyTop and
// groundY. Each layer runs its own generator (seed, seed+1000) so the layers
// do not correlate, and every building reseeds a third generator for its
// window lattice.
func Skyline(c *canvas.Canvas, skyTop, groundY int, seed uint32) {
	w := c.Width()
	span := float64(groundY - skyTop)

	for layer := 0; layer < 2; layer++ {
		rng := NewLCG(seed + uint32(layer)*1000)
		var br, bg, bb uint8 = 18, 12, 52
		if layer == 1 {
			br, bg, bb = 24, 17, 68
		}

		x := 0
		for x < w {
			bw := rng.IntRange(int(float64(w)*0.04), int(float64(w)*0.12))
			bh := rng.IntRange(int(span*0.12), int(span*0.60))
			by := groundY - bh
			c.FillRect(x, by, x+bw, groundY, br, bg, bb, 255)

			wrng := NewLCG(uint32(rng.IntRange(0, 99999)))
			for wy := by + 5; wy < groundY-5; wy += 9 {
				for wx := x + 4; wx < x+bw-4; wx += 9 {
					if wrng.Next() > 0.52 {
						if wrng.Next() > 0.5 {
							c.Set(wx, wy, 180, 220, 90, 130)
						} else {
							c.Set(wx, wy, 46, 248, 255, 110)
						}
					}
				}
			}
			x += bw + rng.IntRange(0, 8)
		}
	}
}
