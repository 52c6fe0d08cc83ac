// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gallery/internal/cli"
	"github.com/thenoetrevino/gallery/internal/models"
)

// FlagParser validates an item command's flags before its handler runs
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseItemID extracts an item ID from a flag
func (p *FlagParser) ParseItemID(flagName string) (string, error) {
	id, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	if strings.ContainsAny(id, " \t\n") {
		return "", fmt.Errorf("%s must not contain whitespace", flagName)
	}
	return id, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", flagName)
	}
	return value, nil
}

// ParseIndex extracts a list or chip index. -1 means unset.
func (p *FlagParser) ParseIndex(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value < -1 {
		return 0, fmt.Errorf("%s must be 0 or greater", flagName)
	}
	return value, nil
}

// ParseColor extracts and validates a color flag
func (p *FlagParser) ParseColor(flagName string) (models.Color, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return models.NoColor, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return cli.ParseColorFlag(value)
}

// Changed reports whether the user set flagName
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// OutputFormats extracts the --json and --quiet flags. A command without
// them prints human-readable output.
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	flags := p.cmd.Flags()
	if flags.Lookup("json") != nil {
		if jsonOutput, err = flags.GetBool("json"); err != nil {
			return false, false, fmt.Errorf("failed to parse json flag: %w", err)
		}
	}
	if flags.Lookup("quiet") != nil {
		if quietMode, err = flags.GetBool("quiet"); err != nil {
			return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
		}
	}
	if jsonOutput && quietMode {
		return false, false, cli.Usagef("--json and --quiet cannot be combined")
	}
	return jsonOutput, quietMode, nil
}
