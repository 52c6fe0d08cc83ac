package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gallery/internal/cli"
	"github.com/thenoetrevino/gallery/internal/cli/handler"
	itemservice "github.com/thenoetrevino/gallery/internal/services/item"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// EditCmd returns the item edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an item",
		Long: `Edit an item's label, color or image, keeping its ID and position.

With --refetch the item's image is analyzed again and chips are picked the
same way as for add; the current color and label stay selected unless an
index or a custom label is given.

Examples:
  # Change only the label
  gallery item edit --id=<id> --set-label="Beach"

  # Change only the color
  gallery item edit --id=<id> --color="#FF8800"

  # Re-analyze the image and pick the third color chip
  gallery item edit --id=<id> --refetch --color-index=2
`,
		RunE: handler.Command(&editHandler{}, parseEditFlags),
	}

	cmd.Flags().String("id", "", "Item ID (required)")
	markRequired(cmd, "id")

	cmd.Flags().String("set-label", "", "New label")
	cmd.Flags().String("color", "", "New color in hex format #RRGGBB")
	cmd.Flags().String("url", "", "New image URL")
	cmd.Flags().Bool("refetch", false, "Analyze the image again and pick chips")
	addChipFlags(cmd)

	// Agent-friendly flags
	addOutputFlags(cmd)

	return cmd
}

// editHandler implements handler.Handler for item edits
type editHandler struct{}

// Execute implements the Handler interface
func (h *editHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to closing CLI", "error", err)
		}
	}()

	svc := cliInstance.App.ItemService
	id := args.GetString("id", "")
	current, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req := itemservice.UpdateItemRequest{ID: current.ID}
	if args.GetBool("refetch") {
		d := wizard.NewEdit(cliInstance.App.Pipeline, current)
		picked, err := runDialog(ctx, d,
			args.GetInt("color-index", -1),
			args.GetInt("label-index", -1),
			args.GetString("label", ""))
		if err != nil {
			return nil, err
		}
		req.ImageURL = &picked.ImageURL
		req.Color = &picked.Color
		req.Label = &picked.Label
	} else {
		if v, ok := args.Flags["set-label"].(string); ok {
			req.Label = &v
		}
		if v, ok := args.Flags["url"].(string); ok {
			req.ImageURL = &v
		}
		if v, ok := args.Flags["color"].(string); ok {
			c, err := cli.ParseColorFlag(v)
			if err != nil {
				return nil, err
			}
			req.Color = &c
		}
	}

	updated, err := svc.Update(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("item update error: %w", err)
	}
	return &itemResult{Item: updated, action: "updated"}, nil
}

func parseEditFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	direct := flags.Changed("set-label") || flags.Changed("color") || flags.Changed("url")
	chips := flags.Changed("color-index") || flags.Changed("label-index") || flags.Changed("label")
	refetch, _ := flags.GetBool("refetch")

	switch {
	case refetch && direct:
		return cli.Usagef("--refetch cannot be combined with --set-label, --color or --url")
	case !refetch && chips:
		return cli.Usagef("--color-index, --label-index and --label require --refetch")
	case !refetch && !direct:
		return cli.Usagef("at least one of --set-label, --color, --url or --refetch must be provided")
	}

	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseItemID("id"); err != nil {
		return err
	}
	if flags.Changed("color") {
		if _, err := parser.ParseColor("color"); err != nil {
			return err
		}
	}
	return nil
}
