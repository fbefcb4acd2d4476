// runner-screenshots — generates the PWA store screenshots for Tech Flow
// Runner.
//
// Writes screenshots/screenshot-wide.png (1280x720, landscape/desktop) and
// screenshots/screenshot-narrow.png (720x1280, portrait/mobile) into the
// working directory. Takes no arguments.
package main

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"os"
	"path/filepath"

	"github.com/techflow/runner-assets/pkg/canvas"
	"github.com/techflow/runner-assets/pkg/scene"
)

var outputs = []struct {
	path   string
	render func() *canvas.Canvas
}{
	{"screenshots/screenshot-wide.png", scene.Wide},
	{"screenshots/screenshot-narrow.png", scene.Narrow},
}

func main() {
	fmt.Println("Generating screenshots …")
	for _, out := range outputs {
		if err := save(out.render(), out.path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Println("Done.")
}

// save encodes to memory first so the summary line can report the final
// file size. Screenshots use the default zlib level: at 1280x720 the best
// level costs noticeably more time for a file nobody ships over the wire.
func save(c *canvas.Canvas, path string) error {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf, zlib.DefaultCompression); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	fmt.Printf("  Saved %s  (%dx%d, %d KB)\n", path, c.Width(), c.Height(), buf.Len()/1024)
	return nil
}
