package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Storage errors, image download failures, labeler failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Item not found, or any case where an item ID doesn't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Bytes that do not decode as an image, or images with no pixels.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid dimensions, invalid colors, empty labels, chip indices
	// or list positions out of range, and malformed URLs.
	ExitValidation = 5
)
