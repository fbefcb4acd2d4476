// player.go — the runner sprite.
package scene

import "github.com/techflow/runner-assets/pkg/canvas"

// Player draws the 48x58 runner sprite at (px, py): a cyan-to-purple
// gradient body with rounded corners, a soft cyan glow halo and the </>
// glyph.
func Player(c *canvas.Canvas, px, py int) {
	const pw, ph, corner = 48, 58, 6

	for dy := 0; dy < ph; dy++ {
		t := float64(dy) / ph
		r := uint8(float64(Cyan.R)*(1-t) + float64(Purple.R)*t)
		g := uint8(float64(Cyan.G)*(1-t) + float64(Purple.G)*t)
		b := uint8(float64(Cyan.B)*(1-t) + float64(Purple.B)*t)
		for dx := 0; dx < pw; dx++ {
			if inRoundedCorner(dx, dy, pw, ph, corner) {
				continue
			}
			c.Set(px+dx, py+dy, r, g, b, 240)
		}
	}

	// Glow halo fading out over 4px around the body
	for gy := py - 4; gy < py+ph+5; gy++ {
		for gx := px - 4; gx < px+pw+5; gx++ {
			dist := borderDistance(gx-px, gy-py, pw, ph)
			if dist > 0 && dist <= 4 {
				alpha := int(70 * (1 - float64(dist)/5))
				c.Blend(gx, gy, Cyan.R, Cyan.G, Cyan.B, alpha)
			}
		}
	}

	// </> glyph, three pixel-art strokes
	cx := px + pw/2
	cy := py + ph/2
	for i := 0; i < 5; i++ { // "<"
		c.Set(cx-12+i, cy-4+i, 255, 255, 255, 200)
		c.Set(cx-12+i, cy+4-i, 255, 255, 255, 200)
	}
	for i := 0; i < 9; i++ { // "/"
		c.Set(cx-3+i, cy+4-i, 255, 255, 255, 200)
	}
	for i := 0; i < 5; i++ { // ">"
		c.Set(cx+7+i, cy-4+i, 255, 255, 255, 200)
		c.Set(cx+7+i, cy+4-i, 255, 255, 255, 200)
	}
}

// inRoundedCorner reports whether (dx, dy) lies in a corner zone of a
// pw x ph box and outside the corner radius.
func inRoundedCorner(dx, dy, pw, ph, corner int) bool {
	var ox int
	switch {
	case dx < corner:
		ox = corner - dx
	case dx >= pw-corner:
		ox = dx - (pw - corner - 1)
	default:
		return false
	}

	var oy int
	switch {
	case dy < corner:
		oy = corner - dy
	case dy >= ph-corner:
		oy = dy - (ph - corner - 1)
	default:
		return false
	}

	return ox*ox+oy*oy > corner*corner
}

// borderDistance returns the per-axis distance from (dx, dy) to the box
// edge, or a large value on axes where the point is inside the box.
func borderDistance(dx, dy, pw, ph int) int {
	h := pw
	if dx < 0 {
		h = -dx
	} else if dx >= pw {
		h = dx - pw + 1
	}

	v := ph
	if dy < 0 {
		v = -dy
	} else if dy >= ph {
		v = dy - ph + 1
	}

	return min(h, v)
}
