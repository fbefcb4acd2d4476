// hud.go — HUD chrome shared by both screenshots.
package scene

import (
	"image/color"
	"math"

	"github.com/techflow/runner-assets/pkg/canvas"
	"github.com/techflow/runner-assets/pkg/paint"
)

// HUDChip draws a frosted-glass stat chip with a caption above a bright
// value bar. If the caption cannot be rendered the original dim label bar
// stands in; chip text is decorative.
func HUDChip(c *canvas.Canvas, x, y, w, h int, label string) {
	c.FillRect(x, y, x+w, y+h, 8, 16, 45, 170)

	// Border, brighter along the top edge
	c.FillRow(y, x, x+w, Cyan.R, Cyan.G, Cyan.B, 210)
	c.FillRow(y+h-1, x, x+w, Cyan.R, Cyan.G, Cyan.B, 140)
	for ry := y; ry < y+h; ry++ {
		c.Blend(x, ry, Cyan.R, Cyan.G, Cyan.B, 200)
		c.Blend(x+w-1, ry, Cyan.R, Cyan.G, Cyan.B, 150)
	}
	c.BlendRow(y-1, x, x+w, Cyan.R, Cyan.G, Cyan.B, 70)
	c.BlendRow(y-2, x, x+w, Cyan.R, Cyan.G, Cyan.B, 25)

	if err := paint.Label(c, label, x+7, y+12, 9, color.RGBA{Cyan.R, Cyan.G, Cyan.B, 200}); err != nil {
		c.FillRect(x+7, y+5, x+w-7, y+11, Cyan.R, Cyan.G, Cyan.B, 90)
	}

	// Value bar
	c.FillRect(x+7, y+15, x+w-7, y+23, Cyan.R, Cyan.G, Cyan.B, 190)
}

// NeonBorder frames the canvas with a fading cyan glow along all four
// edges.
func NeonBorder(c *canvas.Canvas, thickness int) {
	for t := 1; t < thickness+6; t++ {
		alpha := int(220 * math.Max(0, 1-float64(t-1)/float64(thickness+5)))
		c.FillRow(t-1, 0, c.Width(), Cyan.R, Cyan.G, Cyan.B, uint8(alpha))
		c.FillRow(c.Height()-t, 0, c.Width(), Cyan.R, Cyan.G, Cyan.B, uint8(alpha))
		for ry := 0; ry < c.Height(); ry++ {
			c.Blend(t-1, ry, Cyan.R, Cyan.G, Cyan.B, alpha)
			c.Blend(c.Width()-t, ry, Cyan.R, Cyan.G, Cyan.B, alpha)
		}
	}
}

// ScoreRow draws one leaderboard entry as placeholder bars; accent
// highlights the local player's row.
func ScoreRow(c *canvas.Canvas, x0, y0, w int, accent bool) {
	const h = 34

	bgAlpha := uint8(130)
	if accent {
		bgAlpha = 160
	}
	c.FillRect(x0, y0, x0+w, y0+h, 10, 18, 48, bgAlpha)

	ac := color.RGBA{30, 60, 100, 255}
	if accent {
		ac = Cyan
	}
	c.FillRect(x0, y0, x0+6, y0+h, ac.R, ac.G, ac.B, 180)

	nameW := w / 3
	c.FillRect(x0+12, y0+9, x0+12+nameW, y0+22, Text.R, Text.G, Text.B, 100)

	scoreW := w / 4
	scoreAlpha := uint8(100)
	if accent {
		scoreAlpha = 160
	}
	c.FillRect(x0+w-scoreW-10, y0+9, x0+w-10, y0+22, Cyan.R, Cyan.G, Cyan.B, scoreAlpha)
}
