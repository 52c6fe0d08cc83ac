package imaging

import (
	"fmt"
	"image"

	"github.com/EdlinOrg/prominentcolor"

	"github.com/thenoetrevino/gallery/internal/models"
)

// KMeansExtractor clusters pixels with k-means and reports the most prominent centers
type KMeansExtractor struct {
	K int
}

// NewKMeansExtractor returns an extractor producing up to MaxPaletteColors colors
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{K: models.MaxPaletteColors}
}

// Extract runs k-means with background masks first and retries without them
// when the masks remove every pixel
func (e *KMeansExtractor) Extract(img image.Image) ([]models.Color, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyPalette
	}

	k := e.K
	if k <= 0 {
		k = models.MaxPaletteColors
	}

	items, err := prominentcolor.KmeansWithAll(k, img, prominentcolor.ArgumentDefault, prominentcolor.DefaultSize, prominentcolor.GetDefaultMasks())
	if err != nil || len(items) == 0 {
		items, err = prominentcolor.KmeansWithAll(k, img, prominentcolor.ArgumentDefault, prominentcolor.DefaultSize, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEmptyPalette, err)
		}
	}

	colors := make([]models.Color, 0, len(items))
	for _, item := range items {
		colors = append(colors, models.RGB(uint8(item.Color.R), uint8(item.Color.G), uint8(item.Color.B)))
	}
	colors = dedupe(colors)
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	return colors, nil
}

// NewExtractor returns the palette extractor for the named algorithm
func NewExtractor(algorithm string) PaletteExtractor {
	switch algorithm {
	case "kmeans":
		return NewKMeansExtractor()
	default:
		return NewTargetExtractor()
	}
}
