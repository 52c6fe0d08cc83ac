package state

// ConfirmState tracks the item awaiting delete confirmation and the alert on screen.
type ConfirmState struct {
	// PendingDeleteID is the item the delete prompt refers to
	PendingDeleteID string
	PendingLabel    string

	// Alert is the message shown in AlertMode
	Alert string
}

// NewConfirmState creates an empty ConfirmState.
func NewConfirmState() *ConfirmState {
	return &ConfirmState{}
}

// Reset clears the pending delete and alert.
func (s *ConfirmState) Reset() {
	*s = ConfirmState{}
}
