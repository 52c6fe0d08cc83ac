package imaging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/gallery/internal/models"
)

// Dimensions is the requested size of a placeholder image
type Dimensions struct {
	Width  int
	Height int
}

// IsSquare reports whether both sides are equal
func (d Dimensions) IsSquare() bool {
	return d.Width == d.Height
}

// ParseDimensions validates the raw width/height form fields.
// At least one field must be filled in; a single value is used for both sides.
func ParseDimensions(width, height string) (Dimensions, error) {
	width = strings.TrimSpace(width)
	height = strings.TrimSpace(height)

	if width == "" && height == "" {
		return Dimensions{}, &models.FieldError{Field: "width", Message: "Enter at least one parameter"}
	}

	var d Dimensions
	var err error
	if width != "" {
		if d.Width, err = parseSide("width", width); err != nil {
			return Dimensions{}, err
		}
	}
	if height != "" {
		if d.Height, err = parseSide("height", height); err != nil {
			return Dimensions{}, err
		}
	}

	switch {
	case d.Width == 0:
		d.Width = d.Height
	case d.Height == 0:
		d.Height = d.Width
	}

	return d, nil
}

func parseSide(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &models.FieldError{Field: field, Message: "Must be a whole number"}
	}
	if n <= 0 {
		return 0, &models.FieldError{Field: field, Message: "Must be greater than zero"}
	}
	return n, nil
}

// PlaceholderURL builds the placeholder service URL for the given dimensions.
// Square images use the single-segment form.
func PlaceholderURL(base string, d Dimensions) string {
	base = strings.TrimRight(base, "/")
	if base == "" {
		base = models.DefaultPlaceholderBase
	}
	if d.IsSquare() {
		return fmt.Sprintf("%s/%d", base, d.Width)
	}
	return fmt.Sprintf("%s/%d/%d", base, d.Width, d.Height)
}
