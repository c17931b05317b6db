package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Marian1309/vercel-env/internal/cmd/globals"
	"github.com/Marian1309/vercel-env/pkg/logging"
)

// Execute runs the vercel-env CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	// Create root command with app context
	rootCmd := a.createRootCommand()

	// Set arguments
	rootCmd.SetArgs(args)

	// Execute with context
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "vercel-env",
		Short:   "Sync environment variables between .env files and Vercel",
		Version: a.version,
		Long: `vercel-env keeps local .env files and the Vercel environment
variable store in step. It diffs each local file against its remote
environment, walks you through resolving every divergence, and applies
the outcome in both directions.

Local files map to Vercel environments: .env to development,
.env.preview to preview, and .env.production to production.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Add global flags
	a.flags = globals.AddFlags(rootCmd)

	// Customize version output to match the version subcommand
	rootCmd.SetVersionTemplate("vercel-env {{.Version}}\n")

	// Register all commands
	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(_ *cobra.Command, _ []string) error {
	// Merge parsed flag values into the configuration
	a.config.UpdateFromFlags(a.flags)

	// Reinitialize logger with updated config and make it the default so
	// library packages log at the requested level too
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
