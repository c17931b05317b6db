// Package rm implements the rm command, the deletion workflow for remote
// variables with an optional cascade into the local env files.
package rm

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Marian1309/vercel-env/cmd/application"
	"github.com/Marian1309/vercel-env/internal/cmd/cmdutil"
	"github.com/Marian1309/vercel-env/internal/reconciler"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
)

// NewCommand creates the rm command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		envSelectors []string
		force        bool
		local        bool
	)

	cmd := &cobra.Command{
		Use:     "rm [key...]",
		Aliases: []string{"remove"},
		Short:   "Delete variables from the remote store",
		Long: `Rm deletes variables from the remote store, independent of any diff.

With no arguments it lists the deletable variables across the selected
environments and offers a multi-select; a key present in several
environments appears once and is deleted from all of them. Every
deletion is gated by a confirmation, and declining returns to the
selection. With explicit key arguments the selection step is skipped
and only the confirmation remains; --force skips that too.

Platform-managed variables (VERCEL, VERCEL_ENV, the VERCEL_GIT_* family,
and anything excluded in the project config) are never offered and never
deleted.`,
		Example: `  vercel-env rm                       # pick variables interactively
  vercel-env rm OLD_KEY               # delete one key from all environments
  vercel-env rm OLD_KEY -e production # restrict to one environment
  vercel-env rm OLD_KEY -f --local    # no prompts, cascade into .env files`,
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			st, err := app.Store()
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return cmdutil.LocalKeyCompletions(st, args, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if force && len(args) == 0 {
				return errors.NewValidationError("force", true,
					"requires explicit key arguments")
			}

			environments, err := cmdutil.ResolveEnvironments(envSelectors, envs.All())
			if err != nil {
				return err
			}

			rec, err := app.Reconciler(reconciler.WithOutput(cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			result, err := rec.Delete(cmd.Context(), reconciler.DeleteRequest{
				Environments: environments,
				Keys:         args,
				Force:        force,
				Local:        local,
			})
			if err != nil {
				if errors.IsCanceled(err) {
					fmt.Fprintln(cmd.OutOrStdout(), "Canceled, nothing further was applied.")
				}
				return err
			}

			if result.HasChanges() {
				fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			}
			if result.HasFailures() {
				app.Logger().Error().
					Str("run_id", result.RunID).
					Int("failures", result.FailureCount()).
					Msg("Deletion finished with failures")
				return fmt.Errorf("%d operations failed", result.FailureCount())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&envSelectors, "env", "e", nil,
		"Restrict to an environment (repeatable; default all)")
	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"Skip the confirmation (explicit keys only)")
	cmd.Flags().BoolVar(&local, "local", false,
		"Also remove the keys from the local env files")

	_ = cmd.RegisterFlagCompletionFunc("env", cmdutil.CompleteEnvironments)

	return cmd
}
