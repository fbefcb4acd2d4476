// stars.go — deterministic starfield.
package paint

import "github.com/techflow/runner-assets/pkg/canvas"

// Starfield scatters stars over the top skyHeight rows of the canvas, about
// one per 600 pixels of sky. Roughly a third render cyan-tinted, the rest
// white; brightness doubles as alpha so faint stars stay translucent.
func Starfield(c *canvas.Canvas, skyHeight int, seed uint32) {
	rng := NewLCG(seed)
	count := c.Width() * skyHeight / 600
	for i := 0; i < count; i++ {
		x := int(rng.Next() * float64(c.Width()))
		y := int(rng.Next() * float64(skyHeight))
		bright := uint8(rng.IntRange(80, 220))
		if rng.Next() > 0.65 {
			c.Set(x, y, 46, bright, 255, bright)
		} else {
			c.Set(x, y, bright, bright, bright, bright)
		}
	}
}
