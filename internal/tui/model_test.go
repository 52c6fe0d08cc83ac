package tui

import (
	"context"
	"os"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/gallery/internal/models"
	clitest "github.com/thenoetrevino/gallery/internal/testutil/cli"
	"github.com/thenoetrevino/gallery/internal/tui/state"
)

func TestView_LoadingBeforeSize(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)
	m := InitialModel(context.Background(), a, nil)

	v := m.View()
	assert.Equal(t, "Loading...", v.Content)
	assert.True(t, v.AltScreen)
}

func TestView_EmptyAndPopulated(t *testing.T) {
	m, a, srv := setupTestModel(t)
	assert.Contains(t, m.View().Content, "No items yet")

	clitest.CreateTestItem(t, a, srv, "Dog")
	content := m.View().Content
	assert.Contains(t, content, "Dog")
	assert.Contains(t, content, "1 item")
}

func TestNavigation(t *testing.T) {
	m, a, srv := setupTestModel(t)
	for _, l := range []string{"A", "B", "C"} {
		clitest.CreateTestItem(t, a, srv, l)
	}
	m.UIState.SetSelectedItem(0)

	m = press(m, "j", "j", "j")
	assert.Equal(t, 2, m.UIState.SelectedItem(), "clamped at the last item")

	m = press(m, "k")
	assert.Equal(t, 1, m.UIState.SelectedItem())

	m = press(m, "g")
	assert.Equal(t, 0, m.UIState.SelectedItem())

	m = press(m, "G")
	assert.Equal(t, 2, m.UIState.SelectedItem())
}

func TestSearch(t *testing.T) {
	m, a, srv := setupTestModel(t)
	for _, l := range []string{"Cat", "dog", "Catfish"} {
		clitest.CreateTestItem(t, a, srv, l)
	}

	m = press(m, "/")
	require.Equal(t, state.SearchMode, m.UIState.Mode())

	m = typeText(m, "cat")
	assert.Equal(t, []string{"Cat", "Catfish"}, labels(m))
	assert.Contains(t, m.View().Content, "/cat")

	m = press(m, "backspace", "backspace", "backspace")
	assert.Len(t, labels(m), 3, "empty query restores the full list")

	m = typeText(m, "DOG")
	m = press(m, "enter")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.True(t, m.SearchState.IsActive)
	assert.Equal(t, []string{"dog"}, labels(m))

	// esc in normal mode clears an applied filter
	m = press(m, "esc")
	assert.Len(t, labels(m), 3)
	assert.Empty(t, m.SearchState.Query)
}

func TestSearch_EscRestores(t *testing.T) {
	m, a, srv := setupTestModel(t)
	clitest.CreateTestItem(t, a, srv, "Cat")
	clitest.CreateTestItem(t, a, srv, "dog")

	m = press(m, "/")
	m = typeText(m, "zzz")
	assert.Empty(t, labels(m))
	assert.Contains(t, m.View().Content, "No items match")

	m = press(m, "esc")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Len(t, labels(m), 2)
}

func TestSort(t *testing.T) {
	m, a, srv := setupTestModel(t)
	for _, l := range []string{"b", "C", "a"} {
		clitest.CreateTestItem(t, a, srv, l)
	}

	m = press(m, "S")
	assert.Equal(t, []string{"C", "a", "b"}, labels(m))

	// The backing order is untouched
	var backing []string
	for _, it := range a.ItemService.Gallery().Items() {
		backing = append(backing, it.Label)
	}
	assert.Equal(t, []string{"b", "C", "a"}, backing)
}

func TestReorder(t *testing.T) {
	m, a, srv := setupTestModel(t)
	for _, l := range []string{"A", "B", "C"} {
		clitest.CreateTestItem(t, a, srv, l)
	}
	m.UIState.SetSelectedItem(0)

	m = press(m, "J")
	assert.Equal(t, []string{"A", "B", "C"}, labels(m), "J needs reorder mode")

	m = press(m, "r", "J")
	assert.True(t, m.UIState.Reorder())
	assert.Equal(t, []string{"B", "A", "C"}, labels(m))
	assert.Equal(t, 1, m.UIState.SelectedItem(), "selection follows the moved item")

	m = press(m, "K")
	assert.Equal(t, []string{"A", "B", "C"}, labels(m), "moving back restores the order")
	assert.Equal(t, 0, m.UIState.SelectedItem())

	m = press(m, "K")
	assert.Equal(t, []string{"A", "B", "C"}, labels(m), "no move past the top")

	m = press(m, "r")
	assert.False(t, m.UIState.Reorder())
}

func TestDelete(t *testing.T) {
	m, a, srv := setupTestModel(t)
	clitest.CreateTestItem(t, a, srv, "Keep")
	clitest.CreateTestItem(t, a, srv, "Drop")
	m.UIState.SetSelectedItem(1)

	m = press(m, "d")
	require.Equal(t, state.DeleteConfirmMode, m.UIState.Mode())
	assert.Contains(t, m.View().Content, "Delete item 'Drop'?")

	m = press(m, "n")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Len(t, labels(m), 2)

	m = press(m, "d", "y")
	assert.Equal(t, []string{"Keep"}, labels(m))
	assert.Equal(t, 0, m.UIState.SelectedItem())
}

func TestDelete_EmptyList(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(m, "d")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, "No item selected", n.Message)
}

func TestHelp(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(m, "?")
	require.Equal(t, state.HelpMode, m.UIState.Mode())
	assert.Contains(t, m.View().Content, "Gallery keys")

	m = press(m, "esc")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestQuit_Saves(t *testing.T) {
	m, a, srv := setupTestModel(t)
	clitest.CreateTestItem(t, a, srv, "Dog")

	updated, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.NoError(t, updated.(Model).SaveErr)
}

func TestNotificationExpiry(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(m, "S")
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)

	m = update(m, notificationExpiredMsg{id: n.ID})
	assert.False(t, m.NotificationState.HasAny())
}

func TestShareCard(t *testing.T) {
	m, a, srv := setupTestModel(t)
	it := clitest.CreateTestItem(t, a, srv, "Dog")

	msg := m.shareCard(it.Clone())()
	done, ok := msg.(shareDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	_, err := os.Stat(done.path)
	assert.NoError(t, err)

	m = update(m, done)
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Contains(t, n.Message, done.path)
}

func TestShareCard_MissingImage(t *testing.T) {
	m, _, srv := setupTestModel(t)
	item := models.NewItem(srv.URL+"/broken.png", 0xFF0000, "Broken")

	done := m.shareCard(item)().(shareDoneMsg)
	assert.Error(t, done.err)

	m = update(m, done)
	n, _ := m.NotificationState.Latest()
	assert.Equal(t, state.LevelError, n.Level)
}
