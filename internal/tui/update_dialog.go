package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"charm.land/huh/v2"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/gallery/internal/models"
	itemservice "github.com/thenoetrevino/gallery/internal/services/item"
	"github.com/thenoetrevino/gallery/internal/tui/huhforms"
	"github.com/thenoetrevino/gallery/internal/tui/layers"
	"github.com/thenoetrevino/gallery/internal/tui/state"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// showForm puts form on screen in mode
func (m Model) showForm(form *huh.Form, mode state.Mode) (tea.Model, tea.Cmd) {
	form = form.
		WithTheme(huhforms.CreateGalleryTheme(m.Config.ColorScheme)).
		WithWidth(m.dialogWidth() - 6)
	m.DialogState.Form = form
	m.UIState.SetMode(mode)
	return m, form.Init()
}

func (m Model) dialogWidth() int {
	return layers.DialogWidth(m.UIState.Width(), 40, 72)
}

// updateForm forwards msg to the active form and acts on its completion
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.DialogState.Form
	if form == nil {
		return m, nil
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		form = f
		m.DialogState.Form = f
	}

	switch form.State {
	case huh.StateCompleted:
		m.DialogState.Form = nil
		return m.handleFormComplete()
	case huh.StateAborted:
		return m.handleFormCancel()
	}
	return m, cmd
}

// handleFormComplete moves on from the step whose form was just submitted
func (m Model) handleFormComplete() (tea.Model, tea.Cmd) {
	switch m.UIState.Mode() {
	case state.DimensionFormMode:
		dims := m.DialogState.Dimensions
		if err := m.DialogState.Dialog.SubmitDimensions(dims.Width, dims.Height); err != nil {
			// The form validates the same rules, so this only happens on a stale dialog
			m.DialogState.Close()
			m.UIState.SetMode(state.NormalMode)
			return m, m.notify(state.LevelError, err.Error())
		}
		return m.startFetch()

	case state.SourceFormMode:
		kind, source := m.DialogState.SourceKind, strings.TrimSpace(m.DialogState.Source)
		if kind == huhforms.SourceFile {
			m.DialogState.Open(wizard.NewImport(m.App.Pipeline, expandHome(source)))
		} else {
			m.DialogState.Open(wizard.NewFromURL(m.App.Pipeline, source))
		}
		return m.startFetch()

	case state.CustomLabelMode:
		m.DialogState.Dialog.SetCustomLabel(m.DialogState.CustomLabel)
		m.DialogState.Message = ""
		m.UIState.SetMode(state.ChipSelectionMode)
		return m, nil
	}
	return m, nil
}

// handleFormCancel closes the dialog, or returns to the chips from the custom label form
func (m Model) handleFormCancel() (tea.Model, tea.Cmd) {
	m.DialogState.Form = nil
	if m.UIState.Mode() == state.CustomLabelMode {
		m.UIState.SetMode(state.ChipSelectionMode)
		return m, nil
	}
	m.DialogState.Close()
	m.UIState.SetMode(state.NormalMode)
	return m, nil
}

// startFetch runs the current dialog's fetch with the spinner going
func (m Model) startFetch() (tea.Model, tea.Cmd) {
	m.UIState.SetMode(state.FetchingMode)
	return m, tea.Batch(m.Spinner.Tick, runDialog(m.Ctx, m.DialogState.Dialog))
}

// handleFetchingMode only allows dismissing the dialog, which cancels the fetch
func (m Model) handleFetchingMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "esc" {
		return m, nil
	}
	m.DialogState.Close()
	m.UIState.SetMode(state.NormalMode)
	return m, m.notify(state.LevelInfo, "Cancelled")
}

// handleChipSelectionMode moves between chips, checks them and submits
func (m Model) handleChipSelectionMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	ds := m.DialogState

	switch msg.String() {
	case "esc":
		ds.Close()
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	case "left", "h":
		ds.MoveCursor(-1)
	case "right", "l":
		ds.MoveCursor(1)
	case "tab", "shift+tab", "up", "down", "j", "k":
		ds.SwitchRow()
	case "space", " ", "x":
		return m.toggleChip()
	case "enter":
		return m.submitDialog()
	}
	return m, nil
}

// toggleChip checks the focused chip; checking Custom asks for its text
func (m Model) toggleChip() (tea.Model, tea.Cmd) {
	ds := m.DialogState
	d := ds.Dialog
	ds.Message = ""

	if ds.Row == state.ColorRow {
		if err := d.CheckColor(ds.Cursor); err != nil {
			ds.Message = err.Error()
		}
		return m, nil
	}

	if err := d.CheckLabel(ds.Cursor); err != nil {
		ds.Message = err.Error()
		return m, nil
	}
	if d.CustomSelected() {
		form := huhforms.CreateCustomLabelForm(&ds.CustomLabel)
		return m.showForm(form, state.CustomLabelMode)
	}
	return m, nil
}

// submitDialog turns the checked chips into an added or edited item
func (m Model) submitDialog() (tea.Model, tea.Cmd) {
	ds := m.DialogState
	d := ds.Dialog

	item, err := d.Submit()
	if err != nil {
		var fieldErr *models.FieldError
		switch {
		case errors.As(err, &fieldErr):
			ds.Message = fieldErr.Message
		default:
			ds.Message = err.Error()
		}
		return m, nil
	}

	var message string
	if d.Original() != nil {
		_, err = m.App.ItemService.Update(m.Ctx, itemservice.UpdateItemRequest{
			ID:       item.ID,
			ImageURL: &item.ImageURL,
			Color:    &item.Color,
			Label:    &item.Label,
		})
		message = "Item updated"
	} else {
		_, err = m.App.ItemService.Add(m.Ctx, itemservice.CreateItemRequest{
			ImageURL: item.ImageURL,
			Color:    item.Color,
			Label:    item.Label,
		})
		message = "Item added"
	}

	ds.Close()
	m.UIState.SetMode(state.NormalMode)
	if err != nil {
		return m, m.notify(state.LevelError, err.Error())
	}
	m.clampSelection()
	return m, m.notify(state.LevelInfo, message)
}

// expandHome resolves a leading ~ in a typed path
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
