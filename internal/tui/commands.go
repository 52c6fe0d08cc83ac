package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/share"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// runDialog fetches in the background. The message carries the dialog so a
// result for a dialog that is no longer on screen can be dropped.
func runDialog(ctx context.Context, d *wizard.Dialog) tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{dialog: d, err: d.Run(ctx)}
	}
}

// shareCard renders item's card into the share directory and copies its path
// to the clipboard. item must be a copy owned by the command.
func (m Model) shareCard(item *models.Item) tea.Cmd {
	ctx := m.Ctx
	dir := m.Config.Share.Dir
	images := m.App.Pipeline
	renderer := m.App.Renderer

	return func() tea.Msg {
		img, err := images.LoadImage(ctx, item.ImageURL)
		if err != nil {
			return shareDoneMsg{err: err}
		}
		path, err := renderer.WriteFile(dir, img.Decoded, item)
		if err != nil {
			return shareDoneMsg{err: err}
		}
		return shareDoneMsg{path: path, clipboardErr: share.CopyToClipboard(path)}
	}
}
