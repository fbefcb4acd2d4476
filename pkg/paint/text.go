// text.go — label rasterization with the embedded Go Regular font.
// Uses golang.org/x/image/font for OpenType rendering; the scenes only need
// short ASCII captions, so a single embedded face is enough.
package paint

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/techflow/runner-assets/pkg/canvas"
)

var (
	fontOnce   sync.Once
	fontErr    error
	fontParsed *opentype.Font
)

func labelFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		fontParsed, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("parse embedded font: %w", fontErr)
	}
	return fontParsed, nil
}

func newFace(size float64) (font.Face, error) {
	f, err := labelFont()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// Label draws text with its baseline starting at (x, y), rendered through
// the canvas image view.
func Label(c *canvas.Canvas, text string, x, y int, size float64, col color.RGBA) error {
	face, err := newFace(size)
	if err != nil {
		return err
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  c.Image(),
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// LabelWidth returns the advance width of text in pixels at the given size,
// for centering captions.
func LabelWidth(text string, size float64) (int, error) {
	face, err := newFace(size)
	if err != nil {
		return 0, err
	}
	defer face.Close()

	return font.MeasureString(face, text).Ceil(), nil
}
