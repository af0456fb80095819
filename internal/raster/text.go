package raster

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/naka-gawa/readme-card/internal/domain"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextStyle controls how RenderText draws a block of text.
type TextStyle struct {
	// Size is the font size in pixels.
	Size       float64
	Color      color.Color
	Background color.Color
	// Padding is added on every side of the text.
	Padding int
}

var monospace = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomono.TTF)
})

// RenderText draws text in a monospace font onto a block sized to fit it.
// Lines are separated by "\n"; the block is as wide as the widest line.
func RenderText(text string, style TextStyle) (*image.NRGBA, error) {
	if style.Size <= 0 {
		return nil, fmt.Errorf("%w: font size must be positive, got %v", domain.ErrRender, style.Size)
	}
	otf, err := monospace()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse font: %w", domain.ErrRender, err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    style.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create font face: %w", domain.ErrRender, err)
	}
	defer face.Close()

	lines := strings.Split(text, "\n")
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	maxWidth := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > maxWidth {
			maxWidth = w
		}
	}
	width := max(maxWidth+2*style.Padding, 1)
	height := max(lineHeight*len(lines)+2*style.Padding, 1)

	background := style.Background
	if background == nil {
		background = color.Transparent
	}
	foreground := style.Color
	if foreground == nil {
		foreground = color.Black
	}
	img := imaging.New(width, height, background)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(foreground),
		Face: face,
	}
	y := style.Padding + metrics.Ascent.Ceil()
	for _, line := range lines {
		d.Dot = fixed.P(style.Padding, y)
		d.DrawString(line)
		y += lineHeight
	}
	return img, nil
}
