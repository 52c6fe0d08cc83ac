package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/pipeline"
	itemservice "github.com/thenoetrevino/gallery/internal/services/item"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// ParseColorFlag parses a #RRGGBB flag value
func ParseColorFlag(value string) (models.Color, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return models.NoColor, fmt.Errorf("%w (e.g., #FF0000), got: %s", models.ErrInvalidColor, value)
	}
	c, err := models.ParseColor(value)
	if err != nil {
		return models.NoColor, fmt.Errorf("%w (e.g., #FF0000), got: %s", models.ErrInvalidColor, value)
	}
	return c, nil
}

// ErrorCode maps an error to the machine-readable code printed in JSON mode
func ErrorCode(err error) string {
	var fieldErr *models.FieldError
	var fetchErr *pipeline.FetchError
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		return "ITEM_NOT_FOUND"
	case errors.Is(err, models.ErrInvalidPosition):
		return "INVALID_POSITION"
	case errors.As(err, &fieldErr),
		errors.Is(err, models.ErrEmptyLabel),
		errors.Is(err, models.ErrInvalidColor),
		errors.Is(err, itemservice.ErrLabelTooLong),
		errors.Is(err, itemservice.ErrInvalidImageURL),
		errors.Is(err, itemservice.ErrInvalidItemID),
		errors.Is(err, wizard.ErrIncompleteSelection),
		errors.Is(err, wizard.ErrInvalidChip):
		return "VALIDATION_ERROR"
	case errors.As(err, &fetchErr):
		if errors.Is(err, imaging.ErrMalformedURL) {
			return "MALFORMED_URL"
		}
		return "FETCH_ERROR"
	case errors.Is(err, imaging.ErrDecode), errors.Is(err, imaging.ErrEmptyImage):
		return "DATA_ERROR"
	default:
		return "ERROR"
	}
}

// ExitCodeFor maps an error to the process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch ErrorCode(err) {
	case "ITEM_NOT_FOUND":
		return ExitNotFound
	case "VALIDATION_ERROR", "INVALID_POSITION", "MALFORMED_URL":
		return ExitValidation
	case "DATA_ERROR":
		return ExitDataErr
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitError
}

// UsageError reports a wrong flag combination
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Usagef builds a UsageError
func Usagef(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// reportedError marks an error the formatter already printed
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// Reported wraps err so the entry point does not print it a second time
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err}
}

// IsReported reports whether err was already printed
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
