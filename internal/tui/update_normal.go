package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/gallery/internal/tui/huhforms"
	"github.com/thenoetrevino/gallery/internal/tui/state"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// handleNormalMode handles keys while browsing the list
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return m.quit()
	case km.ShowHelp:
		m.UIState.SetMode(state.HelpMode)
		return m, nil
	case km.PrevItem, "up":
		m.UIState.SetSelectedItem(m.UIState.SelectedItem() - 1)
		m.clampSelection()
		return m, nil
	case km.NextItem, "down":
		m.UIState.SetSelectedItem(m.UIState.SelectedItem() + 1)
		m.clampSelection()
		return m, nil
	case "g", "home":
		m.UIState.SetSelectedItem(0)
		m.clampSelection()
		return m, nil
	case "G", "end":
		m.UIState.SetSelectedItem(m.list().Len() - 1)
		m.clampSelection()
		return m, nil
	case km.AddItem:
		return m.openAddDialog()
	case km.ImportFile:
		return m.openSourceForm(huhforms.SourceFile)
	case km.AddFromURL:
		return m.openSourceForm(huhforms.SourceURL)
	case km.EditItem:
		return m.openEditDialog()
	case km.DeleteItem:
		return m.handleDeleteItem()
	case km.ShareItem:
		return m.handleShareItem()
	case km.Search:
		m.SearchState.Clear()
		m.list().Filter("")
		m.UIState.SetMode(state.SearchMode)
		return m, nil
	case km.Sort:
		m.list().SortAlphabetically()
		m.clampSelection()
		return m, m.notify(state.LevelInfo, "Sorted by label")
	case km.ToggleReorder:
		if m.UIState.ToggleReorder() {
			return m, m.notify(state.LevelInfo, "Reorder on: use "+km.MoveItemDown+"/"+km.MoveItemUp)
		}
		return m, m.notify(state.LevelInfo, "Reorder off")
	case km.MoveItemUp:
		return m.handleMoveItem(-1)
	case km.MoveItemDown:
		return m.handleMoveItem(1)
	case "esc":
		if m.SearchState.Query != "" {
			m.SearchState.Clear()
			m.list().Filter("")
			m.clampSelection()
		}
		return m, nil
	}
	return m, nil
}

// openAddDialog opens a dialog that starts with the dimension form
func (m Model) openAddDialog() (tea.Model, tea.Cmd) {
	m.DialogState.Open(wizard.NewAdd(m.App.Pipeline))
	form := huhforms.CreateDimensionForm(&m.DialogState.Dimensions.Width, &m.DialogState.Dimensions.Height)
	return m.showForm(form, state.DimensionFormMode)
}

// openSourceForm asks for an image URL or file; the dialog opens once it is entered
func (m Model) openSourceForm(kind string) (tea.Model, tea.Cmd) {
	m.DialogState.Close()
	m.DialogState.SourceKind = kind
	form := huhforms.CreateSourceForm(kind, &m.DialogState.Source)
	return m.showForm(form, state.SourceFormMode)
}

// openEditDialog refetches the selected item's image and preselects its chips
func (m Model) openEditDialog() (tea.Model, tea.Cmd) {
	item := m.selectedItem()
	if item == nil {
		return m, m.notify(state.LevelWarning, "No item selected")
	}
	m.DialogState.Open(wizard.NewEdit(m.App.Pipeline, item))
	return m.startFetch()
}

// handleDeleteItem asks for confirmation before deleting the selected item
func (m Model) handleDeleteItem() (tea.Model, tea.Cmd) {
	item := m.selectedItem()
	if item == nil {
		return m, m.notify(state.LevelWarning, "No item selected")
	}
	m.ConfirmState.PendingDeleteID = item.ID
	m.ConfirmState.PendingLabel = item.Label
	m.UIState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// handleDeleteConfirmMode deletes on y and cancels on anything else
func (m Model) handleDeleteConfirmMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	id, label := m.ConfirmState.PendingDeleteID, m.ConfirmState.PendingLabel
	m.ConfirmState.Reset()
	m.UIState.SetMode(state.NormalMode)

	switch msg.String() {
	case "y", "Y", "enter":
		if err := m.App.ItemService.Delete(m.Ctx, id); err != nil {
			return m, m.notify(state.LevelError, err.Error())
		}
		m.clampSelection()
		return m, m.notify(state.LevelInfo, fmt.Sprintf("Item '%s' deleted", label))
	default:
		return m, nil
	}
}

// handleShareItem writes the selected item's card in the background
func (m Model) handleShareItem() (tea.Model, tea.Cmd) {
	item := m.selectedItem()
	if item == nil {
		return m, m.notify(state.LevelWarning, "No item selected")
	}
	return m, tea.Batch(
		m.notify(state.LevelInfo, "Rendering card…"),
		m.shareCard(item.Clone()),
	)
}

// handleMoveItem swaps the selected item with its neighbor in reorder mode
func (m Model) handleMoveItem(delta int) (tea.Model, tea.Cmd) {
	if !m.UIState.Reorder() {
		return m, m.notify(state.LevelInfo, "Press "+m.Config.KeyMappings.ToggleReorder+" to reorder")
	}

	from := m.UIState.SelectedItem()
	to := from + delta
	if to < 0 || to >= m.list().Len() {
		return m, nil
	}
	if err := m.list().Move(from, to); err != nil {
		return m, m.notify(state.LevelError, err.Error())
	}
	m.clampSelection()
	return m, nil
}
