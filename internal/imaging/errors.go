package imaging

import "errors"

// Image acquisition errors
var (
	ErrMalformedURL     = errors.New("malformed URL")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrDecode           = errors.New("image could not be decoded")
	ErrEmptyImage       = errors.New("image has no pixels")
	ErrEmptyPalette     = errors.New("color palette is null")
)
