package layout

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/naka-gawa/readme-card/internal/domain"
	"github.com/naka-gawa/readme-card/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	backgroundColor = color.NRGBA{R: 0xff, A: 0xff}
	cardColor       = color.NRGBA{B: 0xff, A: 0xff}
)

func pixel(t *testing.T, img image.Image, x, y int) color.NRGBA {
	t.Helper()
	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok)
	return nrgba.NRGBAAt(x, y)
}

func TestAnchor(t *testing.T) {
	testCases := []struct {
		width, height int
		expected      image.Point
	}{
		{1000, 1000, image.Pt(300, 800)},
		{400, 250, image.Pt(120, 200)},
		{333, 17, image.Pt(99, 13)},
		{1, 1, image.Pt(0, 0)},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Anchor(tc.width, tc.height), "%dx%d", tc.width, tc.height)
	}
}

func TestBuildPage(t *testing.T) {
	testCases := []struct {
		name          string
		width, height int
		cardW, cardH  int
		expectedAt    image.Point
	}{
		{name: "1000x1000 background", width: 1000, height: 1000, cardW: 200, cardH: 60, expectedAt: image.Pt(300, 800)},
		{name: "640x320 background", width: 640, height: 320, cardW: 100, cardH: 30, expectedAt: image.Pt(192, 256)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			background := imaging.New(tc.width, tc.height, backgroundColor)
			card := imaging.New(tc.cardW, tc.cardH, cardColor)

			page, err := BuildPage(background, card)
			require.NoError(t, err)

			w, h := raster.Dimensions(page)
			assert.Equal(t, tc.width, w)
			assert.Equal(t, tc.height, h)

			at := tc.expectedAt
			assert.Equal(t, cardColor, pixel(t, page, at.X, at.Y))
			assert.Equal(t, cardColor, pixel(t, page, at.X+tc.cardW-1, at.Y+tc.cardH-1))
			assert.Equal(t, backgroundColor, pixel(t, page, at.X-1, at.Y))
			assert.Equal(t, backgroundColor, pixel(t, page, at.X, at.Y-1))
			assert.Equal(t, backgroundColor, pixel(t, page, at.X+tc.cardW, at.Y))
		})
	}
}

// The page keeps the background size; an overflowing card is cut off.
func TestBuildPage_OverflowIsCropped(t *testing.T) {
	background := imaging.New(500, 300, backgroundColor)
	card := imaging.New(400, 100, cardColor)

	page, err := BuildPage(background, card)
	require.NoError(t, err)

	w, h := raster.Dimensions(page)
	assert.Equal(t, 500, w)
	assert.Equal(t, 300, h)
	assert.Equal(t, cardColor, pixel(t, page, 150, 240))
	assert.Equal(t, cardColor, pixel(t, page, 499, 299))
}

func TestBuildGallery_StacksCards(t *testing.T) {
	background := imaging.New(1000, 1000, backgroundColor)
	first := imaging.New(100, 40, cardColor)
	secondColor := color.NRGBA{G: 0xff, A: 0xff}
	second := imaging.New(100, 40, secondColor)

	page, err := BuildGallery(background, []image.Image{first, second})
	require.NoError(t, err)

	assert.Equal(t, cardColor, pixel(t, page, 300, 800))
	assert.Equal(t, backgroundColor, pixel(t, page, 300, 800+40+galleryGap/2))
	assert.Equal(t, secondColor, pixel(t, page, 300, 800+40+galleryGap))
}

func TestBuildGallery_Errors(t *testing.T) {
	background := imaging.New(10, 10, backgroundColor)

	_, err := BuildGallery(nil, []image.Image{background})
	assert.ErrorIs(t, err, domain.ErrRender)

	_, err = BuildGallery(background, nil)
	assert.ErrorIs(t, err, domain.ErrRender)

	page, err := BuildPage(background, nil)
	assert.ErrorIs(t, err, domain.ErrRender)
	assert.True(t, page == nil, "a failed page must be a nil interface")
}
