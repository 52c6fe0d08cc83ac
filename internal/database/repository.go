package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/gallery/internal/models"
)

// Repository persists the whole item list in the Items table
type Repository struct {
	db *sql.DB
}

// NewRepository wraps an initialized database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Open initializes the database at path and returns a repository over it
func Open(ctx context.Context, path string) (*Repository, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewRepository(db), nil
}

// Load returns every item in insertion (rowid) order
func (r *Repository) Load(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT ID, Label, Color, ImageUrl FROM Items ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		var item models.Item
		var color int64
		if err := rows.Scan(&item.ID, &item.Label, &color, &item.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		item.Color = models.Color(uint32(color) & 0xFFFFFF)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// Save replaces the stored list with items in one transaction
func (r *Repository) Save(ctx context.Context, items []*models.Item) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM Items"); err != nil {
			return fmt.Errorf("failed to clear items: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, "INSERT INTO Items (ID, Label, Color, ImageUrl) VALUES (?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, item := range items {
			if _, err := stmt.ExecContext(ctx, item.ID, item.Label, int64(item.Color), item.ImageURL); err != nil {
				return fmt.Errorf("failed to insert item %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

// Close closes the underlying database
func (r *Repository) Close() error {
	return r.db.Close()
}
