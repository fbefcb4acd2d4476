// wide.go — 1280x720 landscape store screenshot.
package scene

import (
	"image/color"

	"github.com/techflow/runner-assets/pkg/canvas"
	"github.com/techflow/runner-assets/pkg/paint"
)

// Wide renders the landscape screenshot: night city backdrop, the runner
// mid-level with all four obstacle types ahead, and the HUD chips on top.
func Wide() *canvas.Canvas {
	const w, h = 1280, 720
	c := canvas.New(w, h)

	hF := float64(h)
	paint.VerticalGradient(c, BG, BGDark, 0.25)
	paint.Starfield(c, int(hF*0.72), 12345)

	groundY := int(float64(h) * 0.75)
	paint.Skyline(c, int(float64(h)*0.05), groundY, 99)

	heights := paint.TerrainSection(c, 0, w, h, 0.75, 0, Ground, Cyan)
	paint.GroundMarkers(c, heights, 0, 90, 0, color.RGBA{Cyan.R, Cyan.G, Cyan.B, 200})

	const playerX = 120
	Player(c, playerX, heights[playerX]-58)

	Laser(c, 370, heights[370]-24)
	Server(c, 620, heights[620]-52)
	Bug(c, 920, heights[920]-28)
	Drone(c, 1100, heights[1100]-70) // floats high, duck under it

	const chipW, chipH, gap = 118, 42, 18
	hudX := (w - (3*chipW + 2*gap)) / 2
	for i, label := range []string{"SCORE", "BEST", "SPEED"} {
		HUDChip(c, hudX+i*(chipW+gap), 14, chipW, chipH, label)
	}

	NeonBorder(c, 3)
	return c
}
