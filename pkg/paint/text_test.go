package paint

import (
	"image/color"
	"testing"

	"github.com/techflow/runner-assets/pkg/canvas"
)

func TestLabelPaintsPixels(t *testing.T) {
	c := canvas.New(120, 30)
	if err := Label(c, "SCORE", 4, 20, 14, color.RGBA{255, 255, 255, 255}); err != nil {
		t.Fatalf("Label: %v", err)
	}

	painted := 0
	for _, v := range c.Data() {
		if v != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("label rendered no pixels")
	}
}

func TestLabelWidthGrowsWithText(t *testing.T) {
	short, err := LabelWidth("HI", 14)
	if err != nil {
		t.Fatalf("LabelWidth: %v", err)
	}
	long, err := LabelWidth("HIGH SCORES", 14)
	if err != nil {
		t.Fatalf("LabelWidth: %v", err)
	}
	if short <= 0 || long <= short {
		t.Errorf("widths short=%d long=%d, want 0 < short < long", short, long)
	}
}

func TestLabelOffCanvasDoesNotPanic(t *testing.T) {
	c := canvas.New(20, 20)
	if err := Label(c, "CLIPPED", -50, 200, 12, color.RGBA{255, 255, 255, 255}); err != nil {
		t.Fatalf("Label: %v", err)
	}
}
