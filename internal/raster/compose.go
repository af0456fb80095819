package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/naka-gawa/readme-card/internal/domain"
)

// Placement is an image and the offset of its top-left corner on a canvas.
type Placement struct {
	Image image.Image
	X, Y  int
}

// Canvas describes the size of a composite. Each axis is either fixed or
// inferred from the bounding box of the placements.
type Canvas struct {
	width, height           int
	fixedWidth, fixedHeight bool
}

// BoundingBox infers both axes so that no placement is cropped.
func BoundingBox() Canvas {
	return Canvas{}
}

// Fixed uses the given size as-is. Placements beyond it are cropped.
func Fixed(width, height int) Canvas {
	return Canvas{width: width, height: height, fixedWidth: true, fixedHeight: true}
}

// FixedWidth pins the canvas width and keeps the height as configured.
func (c Canvas) FixedWidth(width int) Canvas {
	c.width, c.fixedWidth = width, true
	return c
}

// FixedHeight pins the canvas height and keeps the width as configured.
func (c Canvas) FixedHeight(height int) Canvas {
	c.height, c.fixedHeight = height, true
	return c
}

// Size resolves the canvas size for placements.
func (c Canvas) Size(placements []Placement) (width, height int) {
	width, height = c.width, c.height
	if c.fixedWidth && c.fixedHeight {
		return width, height
	}
	var boxWidth, boxHeight int
	for _, p := range placements {
		w, h := Dimensions(p.Image)
		boxWidth = max(boxWidth, p.X+w)
		boxHeight = max(boxHeight, p.Y+h)
	}
	if !c.fixedWidth {
		width = boxWidth
	}
	if !c.fixedHeight {
		height = boxHeight
	}
	return width, height
}

// Composite draws placements in order onto a transparent canvas.
// Later placements are alpha-blended over earlier ones.
func Composite(placements []Placement, canvas Canvas) (*image.NRGBA, error) {
	if len(placements) == 0 {
		return nil, fmt.Errorf("%w: nothing to composite", domain.ErrRender)
	}
	for i, p := range placements {
		if p.Image == nil {
			return nil, fmt.Errorf("%w: placement %d has no image", domain.ErrRender, i)
		}
		if p.X < 0 || p.Y < 0 {
			return nil, fmt.Errorf("%w: placement %d has negative offset (%d, %d)", domain.ErrRender, i, p.X, p.Y)
		}
	}
	width, height := canvas.Size(placements)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid canvas size %dx%d", domain.ErrRender, width, height)
	}

	dst := imaging.New(width, height, color.Transparent)
	for _, p := range placements {
		dst = imaging.Overlay(dst, p.Image, image.Pt(p.X, p.Y), 1.0)
	}
	return dst, nil
}
