// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/gallery/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// Arguments holds the flags the user set, by name, and the positional args
type Arguments struct {
	Flags map[string]any
	Args  []string
}

// Command wraps common command execution logic.
// parseFlags validates the flags before the handler runs; its errors are
// reported through the same formatter as the handler's.
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		jsonOutput, quietMode, err := NewFlagParser(cmd).OutputFormats()
		formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
		if err != nil {
			return report(formatter, err)
		}

		if err := parseFlags(cmd); err != nil {
			return report(formatter, err)
		}

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
		}

		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			slog.Error("command failed", "command", cmd.CommandPath(), "error", err)
			return report(formatter, err)
		}

		return formatter.Success(result)
	}
}

// report prints err through the formatter and marks it as printed
func report(formatter *cli.OutputFormatter, err error) error {
	if fmtErr := formatter.Error(cli.ErrorCode(err), err.Error()); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return cli.Reported(err)
}

// SimpleCommand wraps a handler whose flags need no validation
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, func(cmd *cobra.Command) error {
		return nil
	})
}

// parseFlagsToMap collects the flags the user set. Unset flags are absent so
// the getters fall back to their defaults.
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		var (
			v   any
			err error
		)
		switch f.Value.Type() {
		case "string":
			v, err = cmd.Flags().GetString(f.Name)
		case "int":
			v, err = cmd.Flags().GetInt(f.Name)
		case "bool":
			v, err = cmd.Flags().GetBool(f.Name)
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
			return
		}
		if err == nil {
			flags[f.Name] = v
		}
	})

	return flags
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	if val, ok := a.Flags[name].(string); ok {
		return val
	}
	return defaultVal
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	if val, ok := a.Flags[name].(int); ok {
		return val
	}
	return defaultVal
}

// GetBool retrieves a bool flag, false when unset
func (a *Arguments) GetBool(name string) bool {
	val, _ := a.Flags[name].(bool)
	return val
}
