package layout

import (
	"image"
	"testing"

	"github.com/naka-gawa/readme-card/internal/domain"
	"github.com/naka-gawa/readme-card/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyText(t *testing.T) {
	testCases := []struct {
		name     string
		repo     domain.Repository
		expected string
	}{
		{
			name:     "description and license",
			repo:     domain.Repository{Description: "a card", OpenIssues: 4, License: "mit"},
			expected: "a card\nOpen issues: 4 - MIT",
		},
		{
			name:     "empty description and license",
			repo:     domain.Repository{OpenIssues: 0},
			expected: "\nOpen issues: 0",
		},
		{
			name:     "license key is upper-cased",
			repo:     domain.Repository{Description: "x", OpenIssues: 12, License: "apache-2.0"},
			expected: "x\nOpen issues: 12 - APACHE-2.0",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BodyText(tc.repo))
		})
	}
}

func TestBuildCard_HeightIsHeaderPlusBody(t *testing.T) {
	repos := []domain.Repository{
		{Name: "readme-card", Language: "Go", Description: "renders cards", License: "mit", OpenIssues: 2},
		{Name: "bare", OpenIssues: 0},
		{Name: "x", Language: "Haskell", Description: "first line\nsecond line"},
	}
	for _, repo := range repos {
		t.Run(repo.Name, func(t *testing.T) {
			card, err := BuildCard(repo)
			require.NoError(t, err)

			header, err := buildHeader(repo.Name, repo.Language)
			require.NoError(t, err)
			body, err := raster.RenderText(BodyText(repo), DetailStyle)
			require.NoError(t, err)

			_, cardHeight := raster.Dimensions(card)
			_, headerHeight := raster.Dimensions(header)
			_, bodyHeight := raster.Dimensions(body)
			assert.Equal(t, headerHeight+bodyHeight, cardHeight)

			cardWidth, _ := raster.Dimensions(card)
			headerWidth, _ := raster.Dimensions(header)
			bodyWidth, _ := raster.Dimensions(body)
			assert.Equal(t, max(headerWidth, bodyWidth), cardWidth)
		})
	}
}

func TestBuildCard_Deterministic(t *testing.T) {
	repo := domain.Repository{Name: "same", Language: "Go", Description: "same", OpenIssues: 1, License: "bsd-3-clause"}
	a, err := BuildCard(repo)
	require.NoError(t, err)
	b, err := BuildCard(repo)
	require.NoError(t, err)

	aPNG, err := raster.EncodePNG(a)
	require.NoError(t, err)
	bPNG, err := raster.EncodePNG(b)
	require.NoError(t, err)
	assert.Equal(t, aPNG, bPNG)
}

func TestBuildHeader_WithoutLanguageIsNameBlock(t *testing.T) {
	header, err := buildHeader("readme-card", "")
	require.NoError(t, err)
	nameImg, err := raster.RenderText("readme-card", NameStyle)
	require.NoError(t, err)

	headerPNG, err := raster.EncodePNG(header)
	require.NoError(t, err)
	namePNG, err := raster.EncodePNG(nameImg)
	require.NoError(t, err)
	assert.Equal(t, namePNG, headerPNG)
}

func TestBuildHeader_WithLanguageIsSideBySide(t *testing.T) {
	header, err := buildHeader("readme-card", "Go")
	require.NoError(t, err)
	nameImg, err := raster.RenderText("readme-card", NameStyle)
	require.NoError(t, err)
	langImg, err := raster.RenderText("Go", DetailStyle)
	require.NoError(t, err)

	headerWidth, headerHeight := raster.Dimensions(header)
	nameWidth, nameHeight := raster.Dimensions(nameImg)
	langWidth, langHeight := raster.Dimensions(langImg)
	assert.Equal(t, nameWidth+langWidth, headerWidth)
	assert.Equal(t, max(nameHeight, languageNudge+langHeight), headerHeight)

	// The language block starts right after the name, below the nudge.
	nrgba, ok := header.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, uint8(0), nrgba.NRGBAAt(nameWidth, 0).A)
	assert.Equal(t, uint8(0xff), nrgba.NRGBAAt(nameWidth, languageNudge).A)
}
