// Package application provides the application interface for vercel-env commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Design Principles:
//   - Accept interfaces, return structs (Go proverb)
//   - Define interfaces where they're used, not where they're implemented
//   - Keep interfaces small and focused
//
// Usage in Commands:
//
//	import (
//	    "github.com/spf13/cobra"
//
//	    "github.com/Marian1309/vercel-env/cmd/application"
//	)
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            rec, err := app.Reconciler()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use rec with cmd.Context()
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    ReconcilerFunc: func(...reconciler.Option) (reconciler.Reconciler, error) {
//	        return fakeReconciler, nil
//	    },
//	}
//	cmd := NewCommand(mock)
//	// ... test command behavior
package application

import (
	"github.com/rs/zerolog"

	"github.com/Marian1309/vercel-env/internal/cmd/globals"
	"github.com/Marian1309/vercel-env/internal/reconciler"
	"github.com/Marian1309/vercel-env/internal/store"
	"github.com/Marian1309/vercel-env/internal/vercel"
	"github.com/Marian1309/vercel-env/pkg/envs"
)

// Application provides the application interface that commands need.
// The App struct from cmd/vercel-env/app implements this interface,
// providing dependency injection for commands while keeping them
// testable against the Mock below.
type Application interface {
	// Client returns the remote store client built from project
	// configuration and global flags. The vercel binary is verified to
	// exist before the client is returned.
	Client() (vercel.Client, error)

	// Store returns the local env file store rooted at the configured
	// env directory.
	Store() (*store.Local, error)

	// Exclusions returns the exclusion policy from the project
	// configuration, built-in protected keys included.
	Exclusions() (*envs.Exclusions, error)

	// Reconciler builds a reconciler wired with the configured client,
	// store, and exclusion policy. Extra options are applied after the
	// defaults, so callers can override any of them.
	Reconciler(opts ...reconciler.Option) (reconciler.Reconciler, error)

	// Flags returns the parsed global flags. Commands pass these to the
	// output helpers so --format and friends take effect everywhere.
	Flags() *globals.Flags

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
