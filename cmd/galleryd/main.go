// Command galleryd serves the gallery HTTP API as a standalone daemon
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/thenoetrevino/gallery/internal/app"
	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/logging"
	"github.com/thenoetrevino/gallery/internal/server"
)

func main() {
	addr, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	_ = godotenv.Load()
	// Under systemd, logs go to the journal
	logging.Setup(os.Stderr, logging.ParseLevel(os.Getenv("GALLERY_LOG_LEVEL")))

	if err := run(ctx, addr); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}
	slog.Info("gallery daemon shut down gracefully")
}

// parseFlags returns the --addr value; empty means the configured address
func parseFlags(args []string) (string, error) {
	flags := pflag.NewFlagSet("galleryd", pflag.ContinueOnError)
	addr := flags.StringP("addr", "a", "", "Listen address (default from config server.addr)")
	if err := flags.Parse(args); err != nil {
		return "", err
	}
	return *addr, nil
}

func run(ctx context.Context, addr string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	application, err := app.New(ctx, cfg, app.WithAutoSave())
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing gallery", "error", err)
		}
	}()

	slog.Info("gallery daemon starting", "addr", addr, "pid", os.Getpid())

	// Blocks until shutdown
	return server.NewServer(application, addr).Start(ctx)
}
