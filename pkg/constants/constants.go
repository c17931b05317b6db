// Package constants provides shared constants used throughout the vercel-env codebase.
// This includes timeouts, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the timeout for a single vercel CLI invocation
	CommandTimeout = 2 * time.Minute

	// PullTimeout is the timeout for pulling a full environment, which can be
	// slow on large projects
	PullTimeout = 5 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// EnvFilePermissions is for env files, which hold secrets (rw-------)
	EnvFilePermissions = 0600
)

// Limit constants define various limits and capacities
const (
	// OutputBufferSize is the maximum size of captured process output in bytes
	OutputBufferSize = 30000

	// ValuePreviewLength is how many characters of a value to show in prompts
	ValuePreviewLength = 60
)

// Path constants
const (
	// DefaultConfigFile is the project-level configuration file name
	DefaultConfigFile = ".vercel-env.yaml"

	// DefaultEnvDir is the default directory holding local env files,
	// relative to the project root
	DefaultEnvDir = "."
)
