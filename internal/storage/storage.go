// Package storage selects the persistence backend for the item list
package storage

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/database"
	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/prefs"
)

// Store loads and saves the whole item list at once
type Store interface {
	Load(ctx context.Context) ([]*models.Item, error)
	Save(ctx context.Context, items []*models.Item) error
	Close() error
}

// Open returns the backend named by cfg.Backend
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		repo, err := database.Open(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return repo, nil
	case config.BackendPrefs:
		return prefs.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Memory is an in-process Store used when nothing should touch disk
type Memory struct {
	items []*models.Item
}

// Load returns copies of the saved items
func (m *Memory) Load(context.Context) ([]*models.Item, error) {
	out := make([]*models.Item, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it.Clone())
	}
	return out, nil
}

// Save keeps copies of items
func (m *Memory) Save(_ context.Context, items []*models.Item) error {
	m.items = m.items[:0]
	for _, it := range items {
		m.items = append(m.items, it.Clone())
	}
	return nil
}

// Close does nothing
func (m *Memory) Close() error {
	return nil
}
