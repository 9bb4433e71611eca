// Package imaging re-encodes uploaded audit photos to a bounded size so the
// datastore and the vision model both receive manageable payloads.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

const (
	DefaultMaxDimension = 1200
	DefaultJPEGQuality  = 80
)

type Compressor struct {
	maxDimension int
	quality      int
}

func NewCompressor() *Compressor {
	return &Compressor{
		maxDimension: DefaultMaxDimension,
		quality:      DefaultJPEGQuality,
	}
}

// Compress decodes the image, scales it down so the longest side fits
// maxDimension and re-encodes it as JPEG. Images already within bounds are
// still re-encoded so every stored photo shares one format.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "decode image", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > c.maxDimension || height > c.maxDimension {
		img = scaleDown(img, c.maxDimension)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: c.quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleDown(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var newWidth, newHeight int
	if width >= height {
		newWidth = maxDim
		newHeight = height * maxDim / width
	} else {
		newHeight = maxDim
		newWidth = width * maxDim / height
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
