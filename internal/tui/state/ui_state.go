package state

import "github.com/thenoetrevino/gallery/internal/gallery"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	SearchMode                    // Vim-style search mode (/)
	HelpMode                      // Displaying help screen
	DimensionFormMode             // Asking for placeholder width and height
	SourceFormMode                // Asking for an image URL or file path
	FetchingMode                  // Waiting on the image pipeline
	ChipSelectionMode             // Choosing a color and a label
	CustomLabelMode               // Typing the custom label
	DeleteConfirmMode             // Confirming item deletion
	AlertMode                     // Showing a fetch error
)

// UIState manages the user interface state: selection, reorder toggle,
// terminal dimensions and the current interaction mode.
type UIState struct {
	// selectedItem is the index of the cursor in the visible list
	selectedItem int

	// scrollOffset is the index of the first rendered row
	scrollOffset int

	// reorder is true while J/K move the selected item
	reorder bool

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedItem returns the index of the currently selected item.
func (s *UIState) SelectedItem() int {
	return s.selectedItem
}

// SetSelectedItem updates the selected item index.
func (s *UIState) SetSelectedItem(index int) {
	s.selectedItem = index
}

// ClampSelection keeps the cursor inside a list of n items
func (s *UIState) ClampSelection(n int) {
	switch {
	case n == 0:
		s.selectedItem = 0
	case s.selectedItem >= n:
		s.selectedItem = n - 1
	case s.selectedItem < 0:
		s.selectedItem = 0
	}
}

// ScrollOffset returns the index of the first rendered row.
func (s *UIState) ScrollOffset() int {
	return s.scrollOffset
}

// EnsureVisible scrolls so the selected row is within rows visible lines
func (s *UIState) EnsureVisible(rows int) {
	if rows <= 0 {
		return
	}
	if s.selectedItem < s.scrollOffset {
		s.scrollOffset = s.selectedItem
	}
	if s.selectedItem >= s.scrollOffset+rows {
		s.scrollOffset = s.selectedItem - rows + 1
	}
	s.scrollOffset = max(s.scrollOffset, 0)
}

// Reorder reports whether reorder mode is on.
func (s *UIState) Reorder() bool {
	return s.reorder
}

// ToggleReorder flips reorder mode and returns the new value.
func (s *UIState) ToggleReorder() bool {
	s.reorder = !s.reorder
	return s.reorder
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ContentHeight returns the rows available to the item list.
// This is terminal height minus header and status bar, ensuring a minimum of 3.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // title + gap line
	const statusBarHeight = 2 // gap line + status bar
	return max(s.height-headerHeight-statusBarHeight, 3)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Follow moves the cursor with a change of the visible list so the
// affected item stays selected
func (s *UIState) Follow(c gallery.Change) {
	switch c.Kind {
	case gallery.Inserted, gallery.Changed:
		s.selectedItem = c.Index
	case gallery.Moved:
		if s.selectedItem == c.Index {
			s.selectedItem = c.To
		}
	case gallery.Removed:
		if s.selectedItem > c.Index {
			s.selectedItem--
		}
	case gallery.Reset:
		s.scrollOffset = 0
	}
}
