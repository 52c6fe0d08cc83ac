package tui

import (
	"context"
	"net/http/httptest"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/gallery/internal/app"
	clitest "github.com/thenoetrevino/gallery/internal/testutil/cli"
	"github.com/thenoetrevino/gallery/internal/tui/state"
)

// setupTestModel creates a sized model over an empty in-memory gallery whose
// pipeline talks to a local image server
func setupTestModel(t *testing.T) (Model, *app.App, *httptest.Server) {
	t.Helper()

	a, srv := clitest.SetupCLITest(t)
	m := InitialModel(context.Background(), a, a.Config)
	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, a, srv
}

// update sends msg and returns the updated model, dropping the command
func update(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// key builds a key press for a printable key or a named special key
func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

// press sends each key in turn
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m = update(m, key(k))
	}
	return m
}

// typeText types s one character at a time
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = update(m, key(string(r)))
	}
	return m
}

// finishFetch runs the open dialog's fetch to completion and delivers the result
func finishFetch(t *testing.T, m Model) Model {
	t.Helper()
	require.Equal(t, state.FetchingMode, m.UIState.Mode())
	require.NotNil(t, m.DialogState.Dialog)
	msg := runDialog(context.Background(), m.DialogState.Dialog)()
	return update(m, msg)
}

func labels(m Model) []string {
	var out []string
	for _, it := range m.visibleItems() {
		out = append(out, it.Label)
	}
	return out
}
