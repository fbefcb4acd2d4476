// icon.go — launcher icon artwork.
package scene

import (
	"image/color"

	"github.com/techflow/runner-assets/pkg/canvas"
	"github.com/techflow/runner-assets/pkg/paint"
)

// Icon renders the square launcher icon at the given size: a night-sky
// vignette, a cyan ground band and the runner stick figure. All geometry
// scales from the 180px apple-touch master.
func Icon(size int) *canvas.Canvas {
	c := canvas.New(size, size)

	paint.Vignette(c, color.RGBA{25, 45, 95, 255}, color.RGBA{5, 9, 28, 255})

	// Ground band
	for y := int(float64(size) * 0.78); y < int(float64(size)*0.86); y++ {
		c.FillRow(y, int(float64(size)*0.12), int(float64(size)*0.88), Cyan.R, Cyan.G, Cyan.B, 235)
	}

	s := float64(size) / 180
	limb := color.RGBA{235, 246, 255, 255}
	thickness := max(1, int(5*s))

	paint.FillCircle(c, int(92*s), int(54*s), int(13*s), limb)
	paint.ThickLine(c, 92*s, 70*s, 84*s, 98*s, thickness, limb)   // torso
	paint.ThickLine(c, 84*s, 98*s, 62*s, 118*s, thickness, limb)  // back leg
	paint.ThickLine(c, 84*s, 98*s, 109*s, 124*s, thickness, limb) // front leg
	paint.ThickLine(c, 87*s, 82*s, 112*s, 86*s, thickness, limb)  // front arm
	paint.ThickLine(c, 87*s, 84*s, 68*s, 72*s, thickness, limb)   // back arm

	return c
}
