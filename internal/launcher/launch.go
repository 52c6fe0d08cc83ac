// Package launcher runs the interactive TUI
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/gallery/internal/app"
	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/tui/core"
)

// shutdownGrace bounds how long a cancelled program may take to exit
const shutdownGrace = 5 * time.Second

// Launch starts the TUI application over cfg. Items are saved when the user
// quits; the caller's ctx ending (e.g. on SIGTERM) also saves before returning.
func Launch(ctx context.Context, cfg *config.Config, opts ...app.Option) error {
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize gallery: %w", err)
	}

	// app cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing gallery", "error", err)
		}
	}()

	tuiApp := core.New(ctx, application, cfg)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return tuiApp.GetModel().SaveErr
	case <-ctx.Done():
		slog.Info("shutdown signal received, saving items")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not exit in time")
		}
		return application.ItemService.Save(context.Background())
	}
}
