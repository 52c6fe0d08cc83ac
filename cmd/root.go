package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/gallery/internal/cli"
	"github.com/thenoetrevino/gallery/internal/cli/item"
	"github.com/thenoetrevino/gallery/internal/cli/styles"
	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/launcher"
	"github.com/thenoetrevino/gallery/internal/logging"
)

// Version is set at build time with -ldflags "-X github.com/thenoetrevino/gallery/cmd.Version=…"
var Version = "dev"

// logCloser closes the log file opened by the persistent pre-run
var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Gallery - a terminal image gallery",
	Long: `Gallery keeps a list of images, each with a color and a label picked from
the colors and content labels extracted from the image.

Run without a subcommand to open the interactive gallery.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return launcher.Launch(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Message: err.Error()}
	})
}

// setup loads .env, starts file logging and applies the configured theme
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	closer, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	slog.Debug("command starting", "command", cmd.CommandPath())
	return nil
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// Root returns the root command, for tests and documentation generation
func Root() *cobra.Command {
	return rootCmd
}
