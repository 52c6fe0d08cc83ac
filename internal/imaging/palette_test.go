package imaging

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/gallery/internal/models"
)

func hueOf(c models.Color) float64 {
	r, g, b := c.Channels()
	h, _, _ := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsl()
	return h
}

func TestTargetExtractor_SingleHue(t *testing.T) {
	img := solidImage(200, 150, color.NRGBA{R: 255, A: 255})

	colors, err := NewTargetExtractor().Extract(img)
	require.NoError(t, err)
	require.NotEmpty(t, colors)

	assert.Contains(t, colors, models.RGB(255, 0, 0))
	assert.NotContains(t, colors, models.NoColor)
}

func TestTargetExtractor_DominantHueWithShades(t *testing.T) {
	// blue in three lightness bands plus a sprinkle of black
	img := image.NewNRGBA(image.Rect(0, 0, 90, 90))
	for y := 0; y < 90; y++ {
		for x := 0; x < 90; x++ {
			switch {
			case x%17 == 0:
				img.Set(x, y, color.Black)
			case y < 30:
				img.Set(x, y, color.NRGBA{B: 255, A: 255})
			case y < 60:
				img.Set(x, y, color.NRGBA{R: 132, G: 132, B: 255, A: 255})
			default:
				img.Set(x, y, color.NRGBA{B: 132, A: 255})
			}
		}
	}

	colors, err := NewTargetExtractor().Extract(img)
	require.NoError(t, err)
	require.NotEmpty(t, colors)
	assert.LessOrEqual(t, len(colors), models.MaxPaletteColors)
	assert.NotContains(t, colors, models.NoColor)

	for _, c := range colors {
		assert.InDelta(t, 240, hueOf(c), 1, "color %s should keep the blue hue", c)
	}
}

func TestTargetExtractor_NoDuplicates(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	palette := []color.NRGBA{
		{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255},
		{R: 255, G: 255, A: 255}, {R: 132, G: 66, B: 200, A: 255},
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, palette[(x/8+y/8)%len(palette)])
		}
	}

	colors, err := NewTargetExtractor().Extract(img)
	require.NoError(t, err)

	seen := map[models.Color]bool{}
	for _, c := range colors {
		assert.False(t, seen[c], "duplicate color %s", c)
		seen[c] = true
	}
}

func TestTargetExtractor_ManyColorsUsesMedianCut(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 2), G: uint8(y * 2), B: 128, A: 255})
		}
	}

	ex := NewTargetExtractor()
	swatches, err := ex.Swatches(img)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(swatches), ex.MaxColors)

	colors, err := ex.Extract(img)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(colors), models.MaxPaletteColors)
}

func TestTargetExtractor_EmptyImage(t *testing.T) {
	_, err := NewTargetExtractor().Extract(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.True(t, errors.Is(err, ErrEmptyPalette))

	transparent := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	_, err = NewTargetExtractor().Extract(transparent)
	assert.True(t, errors.Is(err, ErrEmptyPalette))
}

func TestTargetExtractor_BlackAndWhiteOnly(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}

	colors, err := NewTargetExtractor().Extract(img)
	require.NoError(t, err)
	assert.Empty(t, colors)
}

func TestWiden(t *testing.T) {
	assert.Equal(t, uint8(0), widen(0))
	assert.Equal(t, uint8(255), widen(31))
	assert.Equal(t, uint8(132), widen(16))
}

func TestScoreTarget_PrefersClosestLightness(t *testing.T) {
	swatches := []Swatch{
		newSwatch(models.RGB(0, 0, 255), 10),     // l=0.5
		newSwatch(models.RGB(0, 0, 160), 10),     // l~0.31
		newSwatch(models.RGB(120, 120, 255), 10), // l~0.74
	}
	best, ok := scoreTarget(TargetVibrant, swatches, map[models.Color]bool{}, 10)
	require.True(t, ok)
	assert.Equal(t, models.RGB(0, 0, 255), best.Color)

	best, ok = scoreTarget(TargetLightVibrant, swatches, map[models.Color]bool{}, 10)
	require.True(t, ok)
	assert.Equal(t, models.RGB(120, 120, 255), best.Color)
	assert.False(t, math.IsNaN(best.lightness))
}

func TestNewExtractor(t *testing.T) {
	_, ok := NewExtractor("kmeans").(*KMeansExtractor)
	assert.True(t, ok)
	_, ok = NewExtractor("").(*TargetExtractor)
	assert.True(t, ok)
}
