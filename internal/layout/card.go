// Package layout arranges rendered text blocks into repository cards and
// places cards onto a background page.
package layout

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/naka-gawa/readme-card/internal/domain"
	"github.com/naka-gawa/readme-card/internal/raster"
)

// languageNudge lowers the language label so the small font sits on the
// baseline of the repository name.
const languageNudge = 6

var (
	// NameStyle is used for the repository name.
	NameStyle = raster.TextStyle{Size: 20, Color: color.Black, Background: color.White, Padding: 5}
	// DetailStyle is used for the language label and the card body.
	DetailStyle = raster.TextStyle{Size: 10, Color: color.Black, Background: color.White, Padding: 5}
)

// BuildCard renders a card for repo: a header with the name and language,
// and the description, issue count and license stacked below it.
func BuildCard(repo domain.Repository) (image.Image, error) {
	header, err := buildHeader(repo.Name, repo.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to build header for %s: %w", repo.Name, err)
	}
	body, err := raster.RenderText(BodyText(repo), DetailStyle)
	if err != nil {
		return nil, fmt.Errorf("failed to build body for %s: %w", repo.Name, err)
	}

	_, headerHeight := raster.Dimensions(header)
	_, bodyHeight := raster.Dimensions(body)
	card, err := raster.Composite([]raster.Placement{
		{Image: header, X: 0, Y: 0},
		{Image: body, X: 0, Y: headerHeight},
	}, raster.BoundingBox().FixedHeight(headerHeight+bodyHeight))
	if err != nil {
		return nil, err
	}
	return card, nil
}

func buildHeader(name, language string) (image.Image, error) {
	nameImg, err := raster.RenderText(name, NameStyle)
	if err != nil {
		return nil, err
	}
	if language == "" {
		return nameImg, nil
	}

	langImg, err := raster.RenderText(language, DetailStyle)
	if err != nil {
		return nil, err
	}
	nameWidth, _ := raster.Dimensions(nameImg)
	langWidth, _ := raster.Dimensions(langImg)
	header, err := raster.Composite([]raster.Placement{
		{Image: nameImg, X: 0, Y: 0},
		{Image: langImg, X: nameWidth, Y: languageNudge},
	}, raster.BoundingBox().FixedWidth(nameWidth+langWidth))
	if err != nil {
		return nil, err
	}
	return header, nil
}

// BodyText is the text shown under a card header.
func BodyText(repo domain.Repository) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nOpen issues: %d", repo.Description, repo.OpenIssues)
	if repo.License != "" {
		fmt.Fprintf(&b, " - %s", strings.ToUpper(repo.License))
	}
	return b.String()
}
