package models

import "errors"

// Domain-specific errors for item operations
var (
	// ErrItemNotFound indicates that no item carries the requested ID
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidPosition indicates a list position outside the visible list
	ErrInvalidPosition = errors.New("position out of range")

	// ErrInvalidColor indicates a color string that is not #RRGGBB
	ErrInvalidColor = errors.New("color must be in hex format #RRGGBB")

	// ErrEmptyLabel indicates an item without a label
	ErrEmptyLabel = errors.New("label cannot be empty")
)

// FieldError is an input validation failure tied to a single form field.
// Forms render it inline next to the field instead of propagating it further.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}
