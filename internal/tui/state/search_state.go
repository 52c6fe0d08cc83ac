package state

const maxQueryLength = 100

// SearchState manages the vim-style search functionality state.
// Query filters the list as it is typed; IsActive keeps it applied after enter.
type SearchState struct {
	// Query is the current search text entered by the user
	Query string

	// IsActive indicates whether the search filter is applied
	IsActive bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// AppendText appends typed text to the search query.
// Returns true if the text was added, false if query would exceed its max length.
func (s *SearchState) AppendText(text string) bool {
	if text == "" || len([]rune(s.Query))+len([]rune(text)) > maxQueryLength {
		return false
	}
	s.Query += text
	return true
}

// Backspace removes the last character from the search query.
// Returns true if a character was removed, false if query was already empty.
func (s *SearchState) Backspace() bool {
	r := []rune(s.Query)
	if len(r) == 0 {
		return false
	}
	s.Query = string(r[:len(r)-1])
	return true
}

// Clear resets the search query and deactivates the filter.
func (s *SearchState) Clear() {
	s.Query = ""
	s.IsActive = false
}

// Activate keeps the filter applied after leaving search mode.
func (s *SearchState) Activate() {
	s.IsActive = true
}
