// Package tui implements the interactive terminal gallery
package tui

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/gallery/internal/app"
	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/gallery"
	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/tui/components"
	"github.com/thenoetrevino/gallery/internal/tui/state"
	"github.com/thenoetrevino/gallery/internal/tui/theme"
)

// Model represents the application state for the TUI.
// State lives behind pointers so copies made by Update share it.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UIState           *state.UIState
	SearchState       *state.SearchState
	NotificationState *state.NotificationState
	DialogState       *state.DialogState
	ConfirmState      *state.ConfirmState

	Spinner spinner.Model

	// SaveErr is set when saving on quit failed
	SaveErr error
}

// InitialModel creates the TUI model over the items already loaded in a
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = a.Config
	}
	theme.Init(cfg.ColorScheme)
	components.InitStyles(cfg.ColorScheme)

	uiState := state.NewUIState()
	a.ItemService.Gallery().SetListener(gallery.ListenerFunc(uiState.Follow))

	return Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		UIState:           uiState,
		SearchState:       state.NewSearchState(),
		NotificationState: state.NewNotificationState(),
		DialogState:       state.NewDialogState(),
		ConfirmState:      state.NewConfirmState(),
		Spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight))),
		),
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// list returns the gallery list the TUI renders
func (m Model) list() *gallery.List {
	return m.App.ItemService.Gallery()
}

// visibleItems returns the filtered and sorted items on screen
func (m Model) visibleItems() []*models.Item {
	return m.list().Visible()
}

// selectedItem returns the item under the cursor, or nil when the list is empty
func (m Model) selectedItem() *models.Item {
	it, err := m.list().At(m.UIState.SelectedItem())
	if err != nil {
		return nil
	}
	return it
}

// clampSelection keeps the cursor on a visible row
func (m Model) clampSelection() {
	m.UIState.ClampSelection(m.list().Len())
	m.UIState.EnsureVisible(m.UIState.ContentHeight())
}
