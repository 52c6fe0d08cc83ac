package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/labeling"
	"github.com/thenoetrevino/gallery/internal/models"
	itemservice "github.com/thenoetrevino/gallery/internal/services/item"
	"github.com/thenoetrevino/gallery/internal/storage"
)

func staticLabeler(labels ...string) labeling.Labeler {
	return labeling.Func(func(context.Context, *imaging.Image) ([]string, error) {
		return labels, nil
	})
}

type closingLabeler struct {
	labeling.Labeler
	closed bool
}

func (c *closingLabeler) Close() error {
	c.closed = true
	return nil
}

func TestNew(t *testing.T) {
	app, err := New(context.Background(), config.Default(),
		WithStore(&storage.Memory{}),
		WithLabeler(staticLabeler("sky")))
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.NotNil(t, app.ItemService)
	assert.NotNil(t, app.Pipeline)
	assert.NotNil(t, app.Renderer)
	assert.NotNil(t, app.Logger())
	assert.Equal(t, 0, app.ItemService.Gallery().Len())
}

func TestNew_NilConfigUsesDefaults(t *testing.T) {
	app, err := New(context.Background(), nil,
		WithStore(&storage.Memory{}),
		WithLabeler(staticLabeler()))
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.Equal(t, config.BackendSQLite, app.Config.Storage.Backend)
}

func TestNew_LoadsStoredItems(t *testing.T) {
	ctx := context.Background()
	store := &storage.Memory{}
	require.NoError(t, store.Save(ctx, []*models.Item{
		models.NewItem("https://example.com/a.jpg", models.RGB(1, 2, 3), "a"),
		models.NewItem("https://example.com/b.jpg", models.RGB(4, 5, 6), "b"),
	}))

	app, err := New(ctx, config.Default(), WithStore(store), WithLabeler(staticLabeler()))
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	items, err := app.ItemService.List(ctx, itemservice.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestNew_OpensConfiguredBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Storage = config.StorageConfig{Backend: config.BackendPrefs, Path: filepath.Join(t.TempDir(), "prefs")}

	app, err := New(context.Background(), cfg, WithLabeler(staticLabeler()), WithAutoSave())
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	_, err = app.ItemService.Add(context.Background(), itemservice.CreateItemRequest{
		ImageURL: "https://example.com/x.jpg",
		Color:    models.RGB(9, 9, 9),
		Label:    "saved",
	})
	require.NoError(t, err)

	stored, err := app.Store().Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "saved", stored[0].Label)
}

func TestNew_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = "cassette"

	_, err := New(context.Background(), cfg, WithLabeler(staticLabeler()))
	assert.Error(t, err)
}

func TestNew_UnknownLabeler(t *testing.T) {
	cfg := config.Default()
	cfg.Labeling.Backend = "oracle"

	_, err := New(context.Background(), cfg, WithStore(&storage.Memory{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, labeling.ErrUnknownBackend))
}

func TestClose_ClosesLabeler(t *testing.T) {
	labeler := &closingLabeler{Labeler: staticLabeler()}
	app, err := New(context.Background(), config.Default(),
		WithStore(&storage.Memory{}),
		WithLabeler(labeler))
	require.NoError(t, err)

	require.NoError(t, app.Close())
	assert.True(t, labeler.closed)
}
