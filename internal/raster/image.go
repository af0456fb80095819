// Package raster renders text blocks and composites images onto canvases.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/naka-gawa/readme-card/internal/domain"
)

// Dimensions returns the pixel width and height of img.
func Dimensions(img image.Image) (width, height int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Decode reads an encoded image (PNG, JPEG, GIF, ...) from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %w", domain.ErrRender, err)
	}
	return img, nil
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: failed to encode png: %w", domain.ErrRender, err)
	}
	return buf.Bytes(), nil
}
