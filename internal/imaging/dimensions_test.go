package imaging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/gallery/internal/models"
)

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		name      string
		width     string
		height    string
		want      Dimensions
		wantField string
	}{
		{name: "both values", width: "300", height: "200", want: Dimensions{300, 200}},
		{name: "width only is square", width: "250", want: Dimensions{250, 250}},
		{name: "height only is square", height: "120", want: Dimensions{120, 120}},
		{name: "whitespace is trimmed", width: " 64 ", height: "\t", want: Dimensions{64, 64}},
		{name: "both empty", wantField: "width"},
		{name: "whitespace only", width: "  ", height: " ", wantField: "width"},
		{name: "non numeric height", width: "10", height: "abc", wantField: "height"},
		{name: "zero width", width: "0", wantField: "width"},
		{name: "negative height", height: "-5", wantField: "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDimensions(tt.width, tt.height)
			if tt.wantField != "" {
				var fe *models.FieldError
				require.True(t, errors.As(err, &fe), "expected FieldError, got %v", err)
				assert.Equal(t, tt.wantField, fe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDimensions_EmptyMessage(t *testing.T) {
	_, err := ParseDimensions("", "")
	var fe *models.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Enter at least one parameter", fe.Message)
}

func TestPlaceholderURL(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/300/200", PlaceholderURL("", Dimensions{300, 200}))
	assert.Equal(t, "https://picsum.photos/250", PlaceholderURL("https://picsum.photos/", Dimensions{250, 250}))
	assert.Equal(t, "http://localhost:9/10/20", PlaceholderURL("http://localhost:9", Dimensions{10, 20}))
}
