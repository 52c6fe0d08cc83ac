package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/gallery/internal/database"
)

// SetupTestStore opens an in-memory sqlite repository closed at test cleanup
func SetupTestStore(t *testing.T) *database.Repository {
	t.Helper()

	repo, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}
