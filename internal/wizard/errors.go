package wizard

import "errors"

// Dialog errors
var (
	ErrDismissed           = errors.New("dialog dismissed")
	ErrInvalidState        = errors.New("operation not allowed in current dialog state")
	ErrIncompleteSelection = errors.New("Please choose color or label")
	ErrInvalidChip         = errors.New("chip index out of range")
)
