package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestCompressScalesDownLargeImages(t *testing.T) {
	c := NewCompressor()
	out, err := c.Compress(encodePNG(t, 2400, 1200))
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got := img.Bounds().Dx(); got != 1200 {
		t.Fatalf("expected width 1200, got %d", got)
	}
	if got := img.Bounds().Dy(); got != 600 {
		t.Fatalf("expected height 600, got %d", got)
	}
}

func TestCompressKeepsSmallImages(t *testing.T) {
	c := NewCompressor()
	out, err := c.Compress(encodePNG(t, 300, 200))
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 200 {
		t.Fatalf("unexpected dimensions: %v", img.Bounds())
	}
}

func TestCompressRejectsGarbage(t *testing.T) {
	c := NewCompressor()
	_, err := c.Compress([]byte("not an image"))
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
