package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/thenoetrevino/gallery/internal/cli/styles"
	"github.com/thenoetrevino/gallery/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case interface{ GetID() string }:
			fmt.Println(v.GetID())
			return nil
		case []*models.Item:
			for _, it := range v {
				fmt.Println(it.ID)
			}
			return nil
		case nil:
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case fmt.Stringer:
		fmt.Println(v.String())
	case *models.Item:
		fmt.Println(FormatItem(v))
	case []*models.Item:
		if len(v) == 0 {
			fmt.Println("No items")
			return nil
		}
		for i, it := range v {
			fmt.Printf("%3d  %s\n", i, FormatItem(it))
		}
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}

// FormatItem renders one item as "■ #RRGGBB  label  (id)" with the swatch in the item color
func FormatItem(it *models.Item) string {
	var b strings.Builder
	b.WriteString(styles.ColoredText("■", it.Color.Hex()))
	b.WriteString(" ")
	b.WriteString(it.Color.Hex())
	b.WriteString("  ")
	b.WriteString(styles.ValueStyle.Render(it.Label))
	b.WriteString("  ")
	b.WriteString(styles.SubtitleStyle.Render("(" + it.ID + ")"))
	return b.String()
}
