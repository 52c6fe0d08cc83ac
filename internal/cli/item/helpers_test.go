package item

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gallery/internal/cli/handler"
)

// deleteWithInput builds a delete RunE that reads the confirmation from input
func deleteWithInput(input string) func(*cobra.Command, []string) error {
	return handler.Command(&deleteHandler{in: strings.NewReader(input)}, parseDeleteFlags)
}
