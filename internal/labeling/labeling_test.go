package labeling

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/models"
)

func solid(c color.Color) *imaging.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, c)
		}
	}
	return &imaging.Image{Decoded: img, MIME: "image/png", Format: "png"}
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{name: "plain array", in: `["Dog","Grass","Ball"]`, want: []string{"Dog", "Grass", "Ball"}},
		{name: "fenced", in: "```json\n[\"Sky\"]\n```", want: []string{"Sky"}},
		{name: "blank entries dropped", in: `["  ", "Tree", ""]`, want: []string{"Tree"}},
		{name: "duplicates kept", in: `["Cat","Cat"]`, want: []string{"Cat", "Cat"}},
		{name: "not json", in: "a dog", wantErr: true},
		{name: "empty array", in: "[]", want: []string{}},
		{name: "only blanks", in: `[" "]`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLabels(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNearestName(t *testing.T) {
	assert.Equal(t, "Black", NearestName(models.RGB(5, 5, 5)))
	assert.Equal(t, "White", NearestName(models.RGB(250, 250, 250)))
	assert.Equal(t, "Navy", NearestName(models.RGB(0, 0, 128)))
	assert.Equal(t, "Magenta", NearestName(models.RGB(255, 0, 255)))
}

func TestColorNamer(t *testing.T) {
	namer := NewColorNamer(imaging.NewTargetExtractor(), 5)

	labels, err := namer.Label(context.Background(), solid(color.NRGBA{R: 255, G: 0, B: 255, A: 255}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Magenta"}, labels)
}

func TestColorNamer_Limit(t *testing.T) {
	extractor := imaging.PaletteExtractor(fakeExtractor{
		models.RGB(0, 0, 128), models.RGB(255, 0, 255), models.RGB(250, 250, 250),
	})
	labels, err := NewColorNamer(extractor, 2).Label(context.Background(), solid(color.Black))
	require.NoError(t, err)
	assert.Equal(t, []string{"Navy", "Magenta"}, labels)
}

func TestColorNamer_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewColorNamer(imaging.NewTargetExtractor(), 5).Label(ctx, solid(color.White))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestColorNamer_NoColors(t *testing.T) {
	labels, err := NewColorNamer(fakeExtractor{}, 5).Label(context.Background(), solid(color.Black))
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	l, err := New(ctx, config.LabelingConfig{Backend: "colors", MaxLabels: 3})
	require.NoError(t, err)
	assert.IsType(t, &ColorNamer{}, l)

	_, err = New(ctx, config.LabelingConfig{Backend: "tesseract"})
	assert.True(t, errors.Is(err, ErrUnknownBackend))

	t.Setenv("GEMINI_API_KEY", "")
	_, err = New(ctx, config.LabelingConfig{Backend: "gemini"})
	assert.True(t, errors.Is(err, ErrMissingAPIKey))

	_, err = New(ctx, config.LabelingConfig{Backend: "dnn"})
	assert.True(t, errors.Is(err, ErrModelUnavailable))
}

func TestFunc(t *testing.T) {
	var l Labeler = Func(func(ctx context.Context, img *imaging.Image) ([]string, error) {
		return []string{"Stub"}, nil
	})
	got, err := l.Label(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stub"}, got)
}

type fakeExtractor []models.Color

func (f fakeExtractor) Extract(image.Image) ([]models.Color, error) {
	return f, nil
}
