package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/gallery/internal/app"
	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery over a JSON HTTP API",
		Long: `Serve the gallery over a JSON HTTP API until interrupted.

Routes:
  GET    /health
  GET    /items?q=&sort=label
  POST   /items
  POST   /items/move
  GET    /items/:id
  PUT    /items/:id
  DELETE /items/:id
  GET    /items/:id/card.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			addr := cfg.Server.Addr
			if cmd.Flags().Changed("addr") {
				addr, _ = cmd.Flags().GetString("addr")
			}
			return Serve(cmd, cfg, addr)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default from config server.addr)")
	return cmd
}

// Serve runs the API on addr until the command's context is done
func Serve(cmd *cobra.Command, cfg *config.Config, addr string) error {
	ctx := cmd.Context()

	application, err := app.New(ctx, cfg, app.WithAutoSave())
	if err != nil {
		return fmt.Errorf("failed to initialize gallery: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing gallery", "error", err)
		}
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving gallery API on http://%s\n", addr)
	return server.NewServer(application, addr).Start(ctx)
}
