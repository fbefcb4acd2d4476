// png.go — hand-rolled PNG writer (8-bit RGBA, color type 6, no interlace).
// Manually frames scanlines, compresses them with zlib and emits the three
// required chunks, keeping the output byte-stable across toolchain versions.
package canvas

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// EncodePNG writes the canvas as a PNG stream: the 8-byte signature, an IHDR
// chunk (bit depth 8, color type 6, no interlace), a single IDAT chunk and
// an empty IEND chunk. level is a compress/zlib compression level; small
// icons use zlib.BestCompression, large screenshots a lower level to bound
// encoding time (a size/speed tradeoff, never a correctness one).
func (c *Canvas) EncodePNG(w io.Writer, level int) error {
	// Scanline framing: one filter-type byte (0 = None) before each row,
	// mandatory per the PNG format even with no filtering applied.
	raw := make([]byte, 0, c.height*(1+c.width*4))
	for y := 0; y < c.height; y++ {
		raw = append(raw, 0)
		raw = append(raw, c.data[y*c.width*4:(y+1)*c.width*4]...)
	}

	var comp bytes.Buffer
	zw, err := zlib.NewWriterLevel(&comp, level)
	if err != nil {
		return fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return fmt.Errorf("compress scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush compressor: %w", err)
	}

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(c.width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(c.height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: truecolor with alpha
	// compression, filter and interlace methods stay 0
	if err := writeChunk(w, "IHDR", ihdr); err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", comp.Bytes()); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

// writeChunk emits big-endian length, the 4-byte type tag, the payload and a
// big-endian CRC32 computed over tag + payload.
func writeChunk(w io.Writer, tag string, payload []byte) error {
	var head [8]byte
	binary.BigEndian.PutUint32(head[0:4], uint32(len(payload)))
	copy(head[4:8], tag)

	crc := crc32.NewIEEE()
	crc.Write(head[4:8])
	crc.Write(payload)
	var foot [4]byte
	binary.BigEndian.PutUint32(foot[:], crc.Sum32())

	if _, err := w.Write(head[:]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	_, err := w.Write(foot[:])
	return err
}

// SavePNG encodes the canvas and writes it to path, creating parent
// directories as needed.
func (c *Canvas) SavePNG(path string, level int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := c.EncodePNG(f, level); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Sync()
}
