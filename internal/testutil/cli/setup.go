package cli

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/thenoetrevino/gallery/internal/app"
	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/models"
	itemservice "github.com/thenoetrevino/gallery/internal/services/item"
	"github.com/thenoetrevino/gallery/internal/testutil"
)

// FixtureLabels are the labels every fixture image receives
var FixtureLabels = []string{"Dog", "Grass"}

// SetupCLITest creates an App over an in-memory sqlite store whose pipeline
// talks to a local image server. Items are saved after every mutation.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*app.App, *httptest.Server) {
	t.Helper()

	srv := testutil.ImageServer(t)

	cfg := config.Default()
	cfg.Fetch.PlaceholderBase = srv.URL
	cfg.Share.Dir = t.TempDir()

	appInstance, err := app.New(context.Background(), cfg,
		app.WithStore(testutil.SetupTestStore(t)),
		app.WithLabeler(testutil.StaticLabeler(FixtureLabels...)),
		app.WithHTTPClient(srv.Client()),
		app.WithAutoSave(),
	)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = appInstance.Close() })

	return appInstance, srv
}

// CreateTestItem adds an item with the given label whose image lives on srv
func CreateTestItem(t *testing.T, a *app.App, srv *httptest.Server, label string) *models.Item {
	t.Helper()

	it, err := a.ItemService.Add(context.Background(), itemservice.CreateItemRequest{
		ImageURL: testutil.ImageURL(srv, 32, 24),
		Color:    models.RGB(testutil.FixtureLeft.R, testutil.FixtureLeft.G, testutil.FixtureLeft.B),
		Label:    label,
	})
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return it
}
