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

// MoveCmd returns the item move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Swap two items",
		Long: `Swap the items at two positions of the listed view.
Positions are the indices printed by "gallery item list" with the same
--query and --sort flags.

Examples:
  # Swap the first two items
  gallery item move --from=0 --to=1

  # Swap within the filtered view
  gallery item move --query=dog --from=2 --to=0
`,
		RunE: handler.Command(&moveHandler{}, parseMoveFlags),
	}

	cmd.Flags().Int("from", -1, "Position of the first item (required)")
	cmd.Flags().Int("to", -1, "Position of the second item (required)")
	markRequired(cmd, "from")
	markRequired(cmd, "to")

	cmd.Flags().String("query", "", "Case-insensitive label filter")
	cmd.Flags().Bool("sort", false, "Sort the view by label before moving")

	// Agent-friendly flags
	addOutputFlags(cmd)

	return cmd
}

// moveHandler implements handler.Handler for reordering items
type moveHandler struct{}

// Execute implements the Handler interface
func (h *moveHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to closing CLI", "error", err)
		}
	}()

	view := itemservice.ListRequest{
		Query: args.GetString("query", ""),
		Sort:  args.GetBool("sort"),
	}
	svc := cliInstance.App.ItemService
	if err := svc.Move(ctx, itemservice.MoveRequest{
		ListRequest: view,
		From:        args.GetInt("from", -1),
		To:          args.GetInt("to", -1),
	}); err != nil {
		return nil, err
	}

	if args.GetBool("quiet") {
		return nil, nil
	}
	return svc.Gallery().Visible(), nil
}

func parseMoveFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	for _, name := range []string{"from", "to"} {
		v, err := parser.ParseIndex(name)
		if err != nil {
			return err
		}
		if v < 0 {
			return cli.Usagef("--%s is required", name)
		}
	}
	return nil
}
