// obstacles.go — the four obstacle sprites.
package scene

import (
	"math"

	"github.com/techflow/runner-assets/pkg/canvas"
)

// Server draws a 36x52 rack obstacle with drive-slot stripes and a green
// status LED.
func Server(c *canvas.Canvas, ox, oy int) {
	const ow, oh = 36, 52
	c.FillRect(ox, oy, ox+ow, oy+oh, RedObs.R, RedObs.G, RedObs.B, 255)
	for sy := oy + 6; sy < oy+oh-4; sy += 10 {
		c.FillRect(ox+3, sy, ox+ow-3, sy+4, 30, 10, 20, 255)
		c.Set(ox+ow-6, sy+2, 46, 255, 100, 200) // LED
	}
}

// Laser draws a 62x24 horizontal beam: a pink-to-magenta ramp with soft
// vertical falloff and a faint outer glow above and below.
func Laser(c *canvas.Canvas, ox, oy int) {
	const ow, oh = 62, 24
	for dx := 0; dx < ow; dx++ {
		t := float64(dx) / ow
		r := uint8(255 * (1 - t*0.2))
		g := uint8(40 + t*15)
		b := uint8(240 - t*20)
		for dy := 0; dy < oh; dy++ {
			edge := math.Abs(float64(dy)-oh/2.0) / (oh / 2.0)
			alpha := int(230 * (1 - edge*0.55))
			c.Blend(ox+dx, oy+dy, r, g, b, alpha)
		}
	}
	for dx := 0; dx < ow; dx++ {
		for glow := 1; glow < 5; glow++ {
			a := 55 / glow
			c.Blend(ox+dx, oy-glow, 255, 46, 200, a)
			c.Blend(ox+dx, oy+oh+glow-1, 255, 46, 200, a)
		}
	}
}

// Bug draws the crawling bug obstacle: a green ellipse body with a red
// head, yellow eyes and two antenna dots.
func Bug(c *canvas.Canvas, ox, oy int) {
	for dy := 0; dy < 28; dy++ {
		for dx := 0; dx < 28; dx++ {
			ex := (float64(dx) - 14) / 14
			ey := (float64(dy) - 14) / 10
			if ex*ex+ey*ey <= 1 {
				c.Blend(ox+dx, oy+dy, Green.R, Green.G, Green.B, 230)
			}
		}
	}
	for dy := 0; dy < 7; dy++ {
		for dx := 0; dx < 7; dx++ {
			if (dx-3)*(dx-3)+(dy-3)*(dy-3) <= 10 {
				c.Set(ox+11+dx, oy+1+dy, 230, 30, 30, 255)
			}
		}
	}
	c.Set(ox+11, oy+3, 255, 255, 0, 255)
	c.Set(ox+16, oy+3, 255, 255, 0, 255)
	for _, ax := range []int{10, 18} {
		c.Set(ox+ax, oy-4, Green.R, Green.G, Green.B, 255)
		c.Set(ox+ax, oy-3, Green.R, Green.G, Green.B, 255)
	}
}

// Drone draws the 72x22 hovering obstacle the player must duck under:
// amber body, top slot, landing feet and thin propeller lines.
func Drone(c *canvas.Canvas, ox, oy int) {
	const ow, oh = 72, 22
	for dy := 0; dy < oh; dy++ {
		t := float64(dy) / oh
		c.FillRow(oy+dy, ox, ox+ow, uint8(200+t*30), uint8(170+t*10), 20, 255)
	}
	c.FillRect(ox+10, oy+3, ox+ow-10, oy+7, 30, 25, 5, 255)
	c.FillRect(ox+8, oy+oh, ox+14, oy+oh+5, Yellow.R, Yellow.G, Yellow.B, 255)
	c.FillRect(ox+ow-14, oy+oh, ox+ow-8, oy+oh+5, Yellow.R, Yellow.G, Yellow.B, 255)
	c.FillRow(oy-3, ox-8, ox+10, 180, 180, 180, 180)
	c.FillRow(oy-3, ox+ow-10, ox+ow+8, 180, 180, 180, 180)
}
