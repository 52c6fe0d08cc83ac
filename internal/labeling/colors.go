package labeling

import (
	"context"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/models"
)

type namedColor struct {
	name  string
	color colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var referenceColors = []namedColor{
	{"Black", mustHex("#000000")},
	{"White", mustHex("#FFFFFF")},
	{"Gray", mustHex("#808080")},
	{"Silver", mustHex("#C0C0C0")},
	{"Red", mustHex("#E53935")},
	{"Maroon", mustHex("#800000")},
	{"Crimson", mustHex("#DC143C")},
	{"Pink", mustHex("#F48FB1")},
	{"Magenta", mustHex("#FF00FF")},
	{"Purple", mustHex("#7B1FA2")},
	{"Lavender", mustHex("#B39DDB")},
	{"Indigo", mustHex("#3F51B5")},
	{"Navy", mustHex("#000080")},
	{"Blue", mustHex("#1E88E5")},
	{"Sky", mustHex("#87CEEB")},
	{"Teal", mustHex("#008080")},
	{"Cyan", mustHex("#00BCD4")},
	{"Green", mustHex("#43A047")},
	{"Forest", mustHex("#228B22")},
	{"Olive", mustHex("#808000")},
	{"Lime", mustHex("#CDDC39")},
	{"Yellow", mustHex("#FDD835")},
	{"Gold", mustHex("#FFC107")},
	{"Orange", mustHex("#FB8C00")},
	{"Coral", mustHex("#FF7F50")},
	{"Brown", mustHex("#795548")},
	{"Tan", mustHex("#D2B48C")},
	{"Beige", mustHex("#F5F5DC")},
}

// ColorNamer labels an image offline with the names of its dominant colors
type ColorNamer struct {
	extractor imaging.PaletteExtractor
	limit     int
}

// NewColorNamer returns a labeler naming the colors found by extractor
func NewColorNamer(extractor imaging.PaletteExtractor, limit int) *ColorNamer {
	return &ColorNamer{extractor: extractor, limit: limit}
}

// Label names each palette color by its nearest reference color (CIEDE2000).
// Repeated names are reported once. An image with no usable colors has no labels.
func (n *ColorNamer) Label(ctx context.Context, img *imaging.Image) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	colors, err := n.extractor.Extract(img.Decoded)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	labels := make([]string, 0, len(colors))
	for _, c := range colors {
		name := NearestName(c)
		if seen[name] {
			continue
		}
		seen[name] = true
		labels = append(labels, name)
	}
	return truncate(labels, n.limit), nil
}

// NearestName returns the reference color name closest to c
func NearestName(c models.Color) string {
	r, g, b := c.Channels()
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := ""
	bestDist := math.Inf(1)
	for _, ref := range referenceColors {
		if d := target.DistanceCIEDE2000(ref.color); d < bestDist {
			best, bestDist = ref.name, d
		}
	}
	return best
}
