package item

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gallery/internal/cli"
	"github.com/thenoetrevino/gallery/internal/cli/handler"
	"github.com/thenoetrevino/gallery/internal/cli/styles"
)

// DeleteCmd returns the item delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an item",
		Long: `Delete an item by ID (requires confirmation unless --force or --quiet).

Examples:
  # Delete with confirmation
  gallery item delete --id=<id>

  # Skip confirmation
  gallery item delete --id=<id> --force

  # Quiet mode (no confirmation)
  gallery item delete --id=<id> --quiet
`,
		RunE: handler.Command(&deleteHandler{in: os.Stdin}, parseDeleteFlags),
	}

	cmd.Flags().String("id", "", "Item ID (required)")
	markRequired(cmd, "id")

	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	addOutputFlags(cmd)

	return cmd
}

// deleteHandler implements handler.Handler for item deletion
type deleteHandler struct {
	in io.Reader
}

// deleteResult reports a deleted item
type deleteResult struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// String implements human-readable output
func (r *deleteResult) String() string {
	return styles.SuccessStyle.Render(fmt.Sprintf("✓ Item %s ('%s') deleted successfully", r.ID, r.Label))
}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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
	it, err := svc.Get(ctx, args.GetString("id", ""))
	if err != nil {
		return nil, err
	}

	quiet := args.GetBool("quiet")
	if !args.GetBool("force") && !quiet && !args.GetBool("json") {
		fmt.Print(styles.WarningStyle.Render(fmt.Sprintf("Delete item '%s' (%s)?", it.Label, it.ID)) + " (y/N): ")
		response, err := bufio.NewReader(h.in).ReadString('\n')
		if err != nil && err != io.EOF {
			slog.Error("failed to reading user input", "error", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil, nil
		}
	}

	if err := svc.Delete(ctx, it.ID); err != nil {
		return nil, fmt.Errorf("item delete error: %w", err)
	}

	if quiet {
		return nil, nil
	}
	return &deleteResult{ID: it.ID, Label: it.Label}, nil
}

func parseDeleteFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseItemID("id")
	return err
}
