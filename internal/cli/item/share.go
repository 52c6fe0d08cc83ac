package item

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gallery/internal/cli"
	"github.com/thenoetrevino/gallery/internal/cli/handler"
	"github.com/thenoetrevino/gallery/internal/share"
)

// ShareCmd returns the item share subcommand
func ShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Render an item card as PNG",
		Long: `Render the item's image with its label and color as a PNG card.

Examples:
  # Write to the configured share directory
  gallery item share --id=<id>

  # Write to a given file and copy its path to the clipboard
  gallery item share --id=<id> --out=card.png --clipboard
`,
		RunE: handler.Command(&shareHandler{}, parseShareFlags),
	}

	cmd.Flags().String("id", "", "Item ID (required)")
	markRequired(cmd, "id")

	cmd.Flags().String("out", "", "Output file (default: <share dir>/<id>.png)")
	cmd.Flags().Bool("clipboard", false, "Copy the written path to the clipboard")

	// Agent-friendly flags
	addOutputFlags(cmd)

	return cmd
}

// shareHandler implements handler.Handler for sharing items
type shareHandler struct{}

// shareResult reports where a card was written
type shareResult struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// GetID implements the GetID interface for quiet mode output
func (r *shareResult) GetID() string {
	return r.Path
}

// String implements human-readable output
func (r *shareResult) String() string {
	return fmt.Sprintf("✓ Card for %s written to %s", r.ID, r.Path)
}

// Execute implements the Handler interface
func (h *shareHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to closing CLI", "error", err)
		}
	}()

	id := args.GetString("id", "")
	out := args.GetString("out", "")
	if out == "" {
		out = filepath.Join(cliInstance.App.Config.Share.Dir, id+".png")
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create share directory: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := cliInstance.App.ItemService.Share(ctx, id, f); err != nil {
		_ = f.Close()
		_ = os.Remove(out)
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", out, err)
	}

	if args.GetBool("clipboard") {
		if err := share.CopyToClipboard(out); err != nil {
			slog.Error("failed to copy card path", "error", err)
		}
	}
	return &shareResult{ID: id, Path: out}, nil
}

func parseShareFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseItemID("id")
	return err
}
