package layout

import (
	"fmt"
	"image"

	"github.com/naka-gawa/readme-card/internal/domain"
	"github.com/naka-gawa/readme-card/internal/raster"
)

const (
	// anchorXPercent and anchorYPercent place the first card relative to the
	// background size.
	anchorXPercent = 30
	anchorYPercent = 80
	// galleryGap separates stacked cards in a gallery.
	galleryGap = 10
)

// Anchor returns the top-left corner of the first card on a background of
// the given size: floor(30% of width), floor(80% of height).
func Anchor(width, height int) image.Point {
	return image.Pt(width*anchorXPercent/100, height*anchorYPercent/100)
}

// BuildPage places card on background at the anchor point. The page keeps
// the background's size, so a card that does not fit is cropped.
func BuildPage(background, card image.Image) (image.Image, error) {
	return BuildGallery(background, []image.Image{card})
}

// BuildGallery stacks cards downward from the anchor point, separated by a
// fixed gap. Cards past the bottom edge are cropped.
func BuildGallery(background image.Image, cards []image.Image) (image.Image, error) {
	if background == nil {
		return nil, fmt.Errorf("%w: failed to build page: no background", domain.ErrRender)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: failed to build page: no cards", domain.ErrRender)
	}
	width, height := raster.Dimensions(background)
	at := Anchor(width, height)

	placements := make([]raster.Placement, 0, len(cards)+1)
	placements = append(placements, raster.Placement{Image: background})
	y := at.Y
	for _, card := range cards {
		placements = append(placements, raster.Placement{Image: card, X: at.X, Y: y})
		if card != nil {
			_, cardHeight := raster.Dimensions(card)
			y += cardHeight + galleryGap
		}
	}
	page, err := raster.Composite(placements, raster.Fixed(width, height))
	if err != nil {
		return nil, err
	}
	return page, nil
}
