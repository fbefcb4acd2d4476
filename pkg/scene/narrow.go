// narrow.go — 720x1280 portrait store screenshot.
package scene

import (
	"image/color"

	"github.com/techflow/runner-assets/pkg/canvas"
	"github.com/techflow/runner-assets/pkg/paint"
)

// Narrow renders the portrait screenshot: the game viewport in the top 560
// rows, a leaderboard panel with input field and buttons below.
func Narrow() *canvas.Canvas {
	const w, h = 720, 1280
	const gameH = 560
	c := canvas.New(w, h)

	gameHF := float64(gameH)
	paint.VerticalGradient(c, BG, BGDark, 0.25)
	paint.Starfield(c, int(gameHF*0.72), 54321)

	const groundRatio = 0.74
	groundY := int(gameHF * groundRatio)
	paint.Skyline(c, int(float64(gameH)*0.05), groundY, 77)

	heights := paint.TerrainSection(c, 0, w, gameH, groundRatio, 200, Ground, Cyan)
	paint.GroundMarkers(c, heights, 0, 85, 200, color.RGBA{Cyan.R, Cyan.G, Cyan.B, 200})

	const playerX = 110
	Player(c, playerX, heights[playerX]-58)

	Server(c, 380, heights[380]-52)
	Bug(c, 580, heights[580]-28)

	const chipW, chipH, gap = 110, 40, 14
	hudX := (w - (3*chipW + 2*gap)) / 2
	for i, label := range []string{"SCORE", "BEST", "SPEED"} {
		HUDChip(c, hudX+i*(chipW+gap), 12, chipW, chipH, label)
	}

	// Divider between game viewport and UI panel
	c.FillRow(gameH, 0, w, Cyan.R, Cyan.G, Cyan.B, 160)
	c.FillRow(gameH+1, 0, w, Cyan.R, Cyan.G, Cyan.B, 60)

	panelY := gameH + 2
	c.FillRect(0, panelY, w, h, 5, 9, 25, 240)

	// Leaderboard header
	headerY := panelY + 16
	c.FillRect(18, headerY, w-18, headerY+28, 10, 20, 55, 180)
	c.FillRow(headerY, 18, w-18, Cyan.R, Cyan.G, Cyan.B, 160)
	c.FillRow(headerY+28, 18, w-18, Cyan.R, Cyan.G, Cyan.B, 90)
	if err := paint.Label(c, "HIGH SCORES", 70, headerY+21, 14, color.RGBA{Cyan.R, Cyan.G, Cyan.B, 220}); err != nil {
		c.FillRect(70, headerY+8, w-70, headerY+20, Cyan.R, Cyan.G, Cyan.B, 170)
	}

	// Score rows with separators
	const rowX0 = 18
	rowW := w - 36
	for row := 0; row < 5; row++ {
		ry := headerY + 36 + row*44
		ScoreRow(c, rowX0, ry, rowW, row == 0)
		c.FillRow(ry+34, rowX0, rowX0+rowW, Cyan.R, Cyan.G, Cyan.B, 30)
	}

	// Name input field with cursor
	inputY := headerY + 265
	c.FillRect(18, inputY, w-18, inputY+42, 8, 15, 42, 210)
	c.FillRow(inputY, 18, w-18, Cyan.R, Cyan.G, Cyan.B, 180)
	c.FillRow(inputY+41, 18, w-18, Cyan.R, Cyan.G, Cyan.B, 110)
	for ry := inputY; ry < inputY+42; ry++ {
		c.Blend(18, ry, Cyan.R, Cyan.G, Cyan.B, 150)
		c.Blend(w-19, ry, Cyan.R, Cyan.G, Cyan.B, 150)
	}
	c.FillRect(30, inputY+12, 34, inputY+30, Cyan.R, Cyan.G, Cyan.B, 200)

	// Save Score button
	btnY := inputY + 54
	c.FillRect(18, btnY, w-18, btnY+50,
		uint8(float64(Cyan.R)*0.35), uint8(float64(Cyan.G)*0.65), uint8(float64(Cyan.B)*0.85), 230)
	c.FillRow(btnY, 18, w-18, 255, 255, 255, 50)
	c.FillRect(w/4, btnY+16, w*3/4, btnY+30, 255, 255, 255, 100)

	// Two secondary buttons
	btn2Y := btnY + 62
	half := (w - 36 - 10) / 2
	for _, bx := range []int{18, 18 + half + 10} {
		c.FillRect(bx, btn2Y, bx+half, btn2Y+44, 10, 20, 55, 200)
		c.FillRow(btn2Y, bx, bx+half, Cyan.R, Cyan.G, Cyan.B, 160)
		c.FillRow(btn2Y+43, bx, bx+half, Cyan.R, Cyan.G, Cyan.B, 80)
		for ry := btn2Y; ry < btn2Y+44; ry++ {
			c.Blend(bx, ry, Cyan.R, Cyan.G, Cyan.B, 120)
			c.Blend(bx+half-1, ry, Cyan.R, Cyan.G, Cyan.B, 120)
		}
		c.FillRect(bx+half/4, btn2Y+14, bx+half*3/4, btn2Y+28, Cyan.R, Cyan.G, Cyan.B, 160)
	}

	NeonBorder(c, 3)
	return c
}
