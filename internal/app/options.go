package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/gallery/internal/labeling"
	"github.com/thenoetrevino/gallery/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store      storage.Store
	labeler    labeling.Labeler
	httpClient *http.Client
	logger     *slog.Logger
	autoSave   bool
}

// WithStore uses store instead of opening the configured backend
func WithStore(store storage.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithLabeler uses labeler instead of the configured labeling backend
func WithLabeler(labeler labeling.Labeler) Option {
	return func(cfg *appConfig) {
		cfg.labeler = labeler
	}
}

// WithHTTPClient sets the client used by the fetch pipeline
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = client
	}
}

// WithAutoSave persists the list after every mutation
func WithAutoSave() Option {
	return func(cfg *appConfig) {
		cfg.autoSave = true
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
