// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for terminal output. Deliberately plain glyphs so they
// render in any terminal the CLI runs in.
const (
	// Success represents an applied change.
	// Used for: pushed, pulled, and removed variables.
	Success = "✓"

	// Error represents a failed operation.
	// Used for: CLI invocation failures, file write failures.
	Error = "✗"

	// Warning represents a skipped or degraded step.
	// Used for: keys missing from the remote, protected names.
	Warning = "!"
)
