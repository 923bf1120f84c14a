package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Deck not found, column not found, card not found,
	// or any case where a resource ID doesn't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Negative positions, empty names, operating on deleted
	// entities, or any case where input fails validation rules.
	ExitValidation = 5
)
