// runner-icons — generates the PWA launcher icons for Tech Flow Runner.
//
// Writes apple-touch-icon.png, icons/icon-192.png and icons/icon-512.png
// into the working directory. Takes no arguments.
package main

import (
	"compress/zlib"
	"fmt"
	"os"

	"github.com/techflow/runner-assets/pkg/scene"
)

var outputs = []struct {
	path string
	size int
}{
	{"apple-touch-icon.png", 180},
	{"icons/icon-192.png", 192},
	{"icons/icon-512.png", 512},
}

func main() {
	for _, out := range outputs {
		c := scene.Icon(out.size)
		if err := c.SavePNG(out.path, zlib.BestCompression); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Println("Generated apple-touch-icon.png, icons/icon-192.png, icons/icon-512.png")
}
