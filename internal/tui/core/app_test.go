package core

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	clitest "github.com/thenoetrevino/gallery/internal/testutil/cli"
	"github.com/thenoetrevino/gallery/internal/tui/state"
)

func TestApp_DelegatesToModel(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)
	tuiApp := New(context.Background(), a, a.Config)

	assert.Nil(t, tuiApp.Init())
	assert.Equal(t, "Loading...", tuiApp.View().Content)

	model, _ := tuiApp.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Same(t, tuiApp, model)
	assert.Equal(t, 80, tuiApp.GetModel().UIState.Width())

	tuiApp.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	assert.Equal(t, state.HelpMode, tuiApp.GetModel().UIState.Mode())
}
