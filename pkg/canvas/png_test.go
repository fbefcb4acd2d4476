package canvas

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// testPattern fills the canvas with a deterministic pattern that exercises
// every channel, including partial alpha.
func testPattern(c *Canvas) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			c.Set(x, y, uint8(x*37), uint8(y*53), uint8((x+y)*11), uint8(255-(x*y)%97))
		}
	}
}

func TestEncodePNGSignatureAndIHDR(t *testing.T) {
	c := New(7, 5)
	testPattern(c)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf, zlib.DefaultCompression); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	b := buf.Bytes()

	sig := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	if !bytes.Equal(b[:8], sig) {
		t.Fatalf("signature = % X, want % X", b[:8], sig)
	}

	if got := binary.BigEndian.Uint32(b[8:12]); got != 13 {
		t.Fatalf("IHDR length = %d, want 13", got)
	}
	if string(b[12:16]) != "IHDR" {
		t.Fatalf("first chunk tag = %q, want IHDR", b[12:16])
	}
	if w := binary.BigEndian.Uint32(b[16:20]); w != 7 {
		t.Errorf("IHDR width = %d, want 7", w)
	}
	if h := binary.BigEndian.Uint32(b[20:24]); h != 5 {
		t.Errorf("IHDR height = %d, want 5", h)
	}
	if b[24] != 8 {
		t.Errorf("bit depth = %d, want 8", b[24])
	}
	if b[25] != 6 {
		t.Errorf("color type = %d, want 6", b[25])
	}
	if b[26] != 0 || b[27] != 0 || b[28] != 0 {
		t.Errorf("compression/filter/interlace = %d/%d/%d, want 0/0/0", b[26], b[27], b[28])
	}

	// IEND with its well-known CRC closes the stream.
	iend := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}
	if !bytes.Equal(b[len(b)-12:], iend) {
		t.Errorf("trailing bytes = % X, want IEND chunk", b[len(b)-12:])
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	c := New(23, 17)
	testPattern(c)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf, zlib.BestCompression); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 23 || img.Bounds().Dy() != 17 {
		t.Fatalf("decoded bounds = %v", img.Bounds())
	}

	for y := 0; y < 17; y++ {
		for x := 0; x < 23; x++ {
			got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			i := (y*23 + x) * 4
			want := c.Data()[i : i+4]
			if got.R != want[0] || got.G != want[1] || got.B != want[2] || got.A != want[3] {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEncodePNGUsesNoneFilter(t *testing.T) {
	c := New(3, 2)
	testPattern(c)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf, zlib.NoCompression); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	b := buf.Bytes()

	// IDAT payload starts after signature (8) + IHDR chunk (12 + 13) + IDAT
	// length/tag (8).
	idatOff := 8 + 25 + 8
	if string(b[idatOff-4:idatOff]) != "IDAT" {
		t.Fatalf("expected IDAT tag before payload, got %q", b[idatOff-4:idatOff])
	}
	idatLen := binary.BigEndian.Uint32(b[idatOff-8 : idatOff-4])

	zr, err := zlib.NewReader(bytes.NewReader(b[idatOff : idatOff+int(idatLen)]))
	if err != nil {
		t.Fatalf("zlib reader: %v", err)
	}
	defer zr.Close()

	var raw bytes.Buffer
	if _, err := raw.ReadFrom(zr); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	rowLen := 1 + 3*4
	if raw.Len() != 2*rowLen {
		t.Fatalf("raw stream length = %d, want %d", raw.Len(), 2*rowLen)
	}
	for y := 0; y < 2; y++ {
		if ft := raw.Bytes()[y*rowLen]; ft != 0 {
			t.Errorf("scanline %d filter type = %d, want 0", y, ft)
		}
	}
}

func TestSavePNGCreatesParentDirs(t *testing.T) {
	c := New(4, 4)
	c.FillRect(0, 0, 4, 4, 1, 2, 3, 255)

	path := filepath.Join(t.TempDir(), "icons", "nested", "out.png")
	if err := c.SavePNG(path, zlib.BestSpeed); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(b) < 8 || !bytes.Equal(b[:4], []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("file does not start with PNG signature: % X", b[:8])
	}
}

func TestSavePNGPropagatesCreateError(t *testing.T) {
	c := New(2, 2)
	// Parent path exists as a file, so MkdirAll must fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "taken")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := c.SavePNG(filepath.Join(blocker, "out.png"), zlib.BestSpeed); err == nil {
		t.Error("expected error when parent path is a file")
	}
}
