package paint

import (
	"image/color"
	"testing"

	"github.com/techflow/runner-assets/pkg/canvas"
)

var ink = color.RGBA{200, 210, 220, 255}

func pixel(c *canvas.Canvas, x, y int) [4]uint8 {
	i := (y*c.Width() + x) * 4
	d := c.Data()
	return [4]uint8{d[i], d[i+1], d[i+2], d[i+3]}
}

func TestFillCircleCoverage(t *testing.T) {
	c := canvas.New(21, 21)
	FillCircle(c, 10, 10, 5, ink)

	tests := []struct {
		name   string
		x, y   int
		inside bool
	}{
		{"center", 10, 10, true},
		{"on radius", 15, 10, true},
		{"just outside radius", 16, 10, false},
		{"bounding box corner", 5, 5, false},
		{"top of disk", 10, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pixel(c, tt.x, tt.y)
			painted := p == [4]uint8{200, 210, 220, 255}
			if painted != tt.inside {
				t.Errorf("pixel (%d,%d) painted=%v, want %v", tt.x, tt.y, painted, tt.inside)
			}
		})
	}
}

func TestFillCircleOffCanvasClips(t *testing.T) {
	c := canvas.New(10, 10)
	FillCircle(c, -20, -20, 5, ink)
	for i, v := range c.Data() {
		if v != 0 {
			t.Fatalf("byte %d changed by off-canvas circle", i)
		}
	}
	// Partially off-canvas still paints the visible part.
	FillCircle(c, 0, 5, 3, ink)
	if pixel(c, 0, 5) != [4]uint8{200, 210, 220, 255} {
		t.Error("visible part of clipped circle not painted")
	}
}

func TestThickLineCoversEndpoints(t *testing.T) {
	c := canvas.New(40, 40)
	ThickLine(c, 5, 5, 30, 25, 2, ink)

	for _, p := range [][2]int{{5, 5}, {30, 25}, {17, 15}} {
		if pixel(c, p[0], p[1]) != [4]uint8{200, 210, 220, 255} {
			t.Errorf("point (%d,%d) on stroke not painted", p[0], p[1])
		}
	}
	if pixel(c, 38, 5) != [4]uint8{0, 0, 0, 0} {
		t.Error("pixel far from stroke was painted")
	}
}

func TestThickLineDegenerateSegment(t *testing.T) {
	c := canvas.New(10, 10)
	// Zero-length segment still stamps one disk and must not divide by zero.
	ThickLine(c, 4, 4, 4, 4, 1, ink)
	if pixel(c, 4, 4) != [4]uint8{200, 210, 220, 255} {
		t.Error("degenerate segment did not stamp its disk")
	}
}
