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

// AddCmd returns the item add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new item",
		Long: `Add an item from a random placeholder image, an image URL or a local file.
The image's palette and labels are computed and one of each is picked.

Examples:
  # Random 300x200 image, first color and first label
  gallery item add --width=300 --height=200

  # Square image (height defaults to width)
  gallery item add --width=400

  # Square image from the height alone
  gallery item add --height=250

  # Existing image, second color, custom label
  gallery item add --url=https://example.com/cat.jpg --color-index=1 --label="My cat"

  # Local file, JSON output for agents
  gallery item add --file=./photo.png --json

  # Quiet mode for bash capture
  ITEM_ID=$(gallery item add --width=300 --quiet)
`,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	cmd.Flags().String("width", "", "Placeholder image width (defaults to height)")
	cmd.Flags().String("height", "", "Placeholder image height (defaults to width)")
	cmd.Flags().String("url", "", "Image URL (http, https or file)")
	cmd.Flags().String("file", "", "Local image file to import")
	addChipFlags(cmd)

	// Agent-friendly flags
	addOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for item creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to closing CLI", "error", err)
		}
	}()

	pipe := cliInstance.App.Pipeline
	var d *wizard.Dialog
	switch {
	case args.GetString("url", "") != "":
		d = wizard.NewFromURL(pipe, args.GetString("url", ""))
	case args.GetString("file", "") != "":
		d = wizard.NewImport(pipe, args.GetString("file", ""))
	default:
		d = wizard.NewAdd(pipe)
		if err := d.SubmitDimensions(args.GetString("width", ""), args.GetString("height", "")); err != nil {
			return nil, err
		}
	}

	picked, err := runDialog(ctx, d,
		args.GetInt("color-index", -1),
		args.GetInt("label-index", -1),
		args.GetString("label", ""))
	if err != nil {
		return nil, err
	}

	created, err := cliInstance.App.ItemService.Add(ctx, itemservice.CreateItemRequest{
		ImageURL: picked.ImageURL,
		Color:    picked.Color,
		Label:    picked.Label,
	})
	if err != nil {
		return nil, fmt.Errorf("item creation error: %w", err)
	}

	return &itemResult{Item: created, action: "added"}, nil
}

func parseAddFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)

	// --width and --height together name one placeholder source
	sources := 0
	if parser.Changed("width") || parser.Changed("height") {
		sources++
	}
	for _, name := range []string{"url", "file"} {
		if parser.Changed(name) {
			sources++
		}
	}
	if sources != 1 {
		return cli.Usagef("exactly one of --width/--height, --url or --file is required")
	}

	for _, name := range []string{"color-index", "label-index"} {
		if _, err := parser.ParseIndex(name); err != nil {
			return err
		}
	}
	return nil
}
