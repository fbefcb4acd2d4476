// Package scene composes the fixed icon and screenshot layouts for the
// Tech Flow Runner install-banner assets. Layouts are hardcoded: these are
// one-shot branding images, not a configurable renderer.
package scene

import "image/color"

// Game palette, matching the in-game CSS colors. Read-only.
var (
	BG     = color.RGBA{10, 19, 48, 255}   // #0a1330
	BGDark = color.RGBA{5, 9, 16, 255}     // #050910
	Ground = color.RGBA{22, 35, 63, 255}   // #16233f
	Cyan   = color.RGBA{46, 248, 255, 255} // #2ef8ff
	Purple = color.RGBA{142, 92, 255, 255} // #8e5cff
	RedObs = color.RGBA{255, 90, 124, 255} // #ff5a7c
	Pink   = color.RGBA{255, 46, 220, 255}
	Text   = color.RGBA{233, 246, 255, 255} // #e9f6ff
	Yellow = color.RGBA{255, 200, 50, 255}
	White  = color.RGBA{255, 255, 255, 255}
	Green  = color.RGBA{30, 180, 30, 255}
)
