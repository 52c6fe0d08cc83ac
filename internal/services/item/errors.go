package item

import (
	"errors"

	"github.com/thenoetrevino/gallery/internal/models"
)

// Item-related errors
var (
	// Validation errors
	ErrEmptyLabel      = models.ErrEmptyLabel
	ErrLabelTooLong    = errors.New("label cannot exceed 50 characters")
	ErrInvalidImageURL = errors.New("image URL must be http(s):// or file://")
	ErrInvalidItemID   = errors.New("invalid item ID")

	// Business logic errors
	ErrItemNotFound = models.ErrItemNotFound
)
