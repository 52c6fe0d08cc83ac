package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gallery/internal/cli"
	"github.com/thenoetrevino/gallery/internal/cli/handler"
	itemservice "github.com/thenoetrevino/gallery/internal/services/item"
)

// ListCmd returns the item list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items",
		Long: `List items in gallery order, optionally filtered and sorted.

Examples:
  # Human-readable list
  gallery item list

  # Items whose label contains "dog", sorted by label
  gallery item list --query=dog --sort

  # Quiet mode (one ID per line)
  gallery item list --quiet
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cmd.Flags().String("query", "", "Case-insensitive label filter")
	cmd.Flags().Bool("sort", false, "Sort the listed items by label")

	// Agent-friendly flags
	addOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for listing items
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to closing CLI", "error", err)
		}
	}()

	return cliInstance.App.ItemService.List(ctx, itemservice.ListRequest{
		Query: args.GetString("query", ""),
		Sort:  args.GetBool("sort"),
	})
}
