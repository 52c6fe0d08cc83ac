// Package item holds all cli commands related to gallery items
// e.g., gallery item ...
package item

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gallery/internal/cli/styles"
	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// ItemCmd returns the item parent command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage gallery items",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ShareCmd())

	return cmd
}

// addOutputFlags registers the agent-friendly output flags
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// addChipFlags registers the non-interactive chip selection flags
func addChipFlags(cmd *cobra.Command) {
	cmd.Flags().Int("color-index", -1, "Color chip to pick (default: first, or the current color when editing)")
	cmd.Flags().Int("label-index", -1, "Label chip to pick (default: first, or the current label when editing)")
	cmd.Flags().String("label", "", "Custom label; selects the Custom chip")
}

func markRequired(cmd *cobra.Command, name string) {
	if err := cmd.MarkFlagRequired(name); err != nil {
		slog.Error("failed to marking flag as required", "error", err)
	}
}

// runDialog fetches through d and picks chips without prompting
func runDialog(ctx context.Context, d *wizard.Dialog, colorIndex, labelIndex int, custom string) (*models.Item, error) {
	if err := d.Run(ctx); err != nil {
		return nil, err
	}
	return d.Choose(colorIndex, labelIndex, custom)
}

// itemResult decorates an item with the action that produced it
type itemResult struct {
	*models.Item
	action string
}

// String implements human-readable output
func (r *itemResult) String() string {
	return styles.SuccessStyle.Render("✓ Item "+r.action+" successfully") + "\n" + styles.RenderItemCard(r.Item)
}
