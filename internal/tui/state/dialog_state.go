package state

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/gallery/internal/wizard"
)

// ChipRow identifies which chip group has focus in chip selection
type ChipRow int

const (
	ColorRow ChipRow = iota
	LabelRow
)

// DimensionFields are the values bound to the dimension form
type DimensionFields struct {
	Width  string
	Height string
}

// DialogState holds the add/edit dialog currently on screen.
// At most one dialog is open; opening another replaces it.
type DialogState struct {
	// Dialog is the workflow being driven, nil when no dialog is open
	Dialog *wizard.Dialog

	// Form is the huh form of the current step, if the step has one
	Form *huh.Form

	// Dimensions and Source back the dimension and source forms
	Dimensions DimensionFields
	Source     string
	SourceKind string

	// CustomLabel backs the custom label form
	CustomLabel string

	// Row and Cursor locate the focused chip
	Row    ChipRow
	Cursor int

	// Message is the inline error shown under the chips
	Message string
}

// NewDialogState creates an empty DialogState.
func NewDialogState() *DialogState {
	return &DialogState{}
}

// Open replaces any current dialog with d and resets the step state.
// The replaced dialog is dismissed so its fetch result is dropped.
func (s *DialogState) Open(d *wizard.Dialog) {
	s.Close()
	s.Dialog = d
}

// Close dismisses the current dialog, cancelling any fetch in flight.
func (s *DialogState) Close() {
	if s.Dialog != nil {
		s.Dialog.Dismiss()
	}
	*s = DialogState{}
}

// IsCurrent reports whether d is the dialog on screen.
func (s *DialogState) IsCurrent(d *wizard.Dialog) bool {
	return d != nil && s.Dialog == d
}

// FocusChips resets the chip cursor to the first color chip.
func (s *DialogState) FocusChips() {
	s.Row = ColorRow
	s.Cursor = 0
	s.Message = ""
}

// RowLen returns the number of chips in the focused row.
func (s *DialogState) RowLen() int {
	if s.Dialog == nil {
		return 0
	}
	if s.Row == ColorRow {
		return len(s.Dialog.Colors().Chips)
	}
	return len(s.Dialog.Labels().Chips)
}

// MoveCursor moves the chip cursor by delta within the focused row.
func (s *DialogState) MoveCursor(delta int) {
	n := s.RowLen()
	if n == 0 {
		s.Cursor = 0
		return
	}
	s.Cursor = min(max(s.Cursor+delta, 0), n-1)
}

// SwitchRow toggles focus between the color and label rows.
func (s *DialogState) SwitchRow() {
	if s.Row == ColorRow {
		s.Row = LabelRow
	} else {
		s.Row = ColorRow
	}
	s.Cursor = min(s.Cursor, max(s.RowLen()-1, 0))
}
