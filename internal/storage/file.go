// Package storage reads image assets and writes the rendered output.
package storage

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/google/renameio/v2"
	"github.com/naka-gawa/readme-card/internal/assets"
	"github.com/naka-gawa/readme-card/internal/domain"
	"github.com/naka-gawa/readme-card/internal/raster"
)

// LoadImage reads and decodes the image at path.
func LoadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", domain.ErrIO, path, err)
	}
	return raster.Decode(bytes.NewReader(data))
}

// LoadBackground decodes the image at path, or the built-in background when
// path is empty.
func LoadBackground(path string) (image.Image, error) {
	if path == "" {
		return raster.Decode(bytes.NewReader(assets.Background))
	}
	return LoadImage(path)
}

// WriteFileAtomic replaces path with data, so path either keeps its old
// content or holds all of data.
func WriteFileAtomic(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", domain.ErrIO, path, err)
	}
	return nil
}
