// Package sync implements the sync command, the reconciliation path
// between local env files and the remote store.
package sync

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Marian1309/vercel-env/cmd/application"
	"github.com/Marian1309/vercel-env/internal/cmd/cmdutil"
	"github.com/Marian1309/vercel-env/internal/cmd/output"
	"github.com/Marian1309/vercel-env/internal/reconciler"
	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
)

// NewCommand creates the sync command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		auto   bool
		all    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "sync [environment...]",
		Short: "Reconcile local env files with the remote store",
		Long: `Sync diffs each selected environment's local file against the remote
store and resolves every divergence.

In interactive mode each divergence is resolved on its own: pick one of
the offered actions, confirm it, and the engine applies it. Declining a
confirmation returns to the selection. In auto mode (--auto) the forward
actions (add, update, pull) are applied after a single confirmation per
environment; nothing is ever removed automatically.

Environments may be given by name or alias (dev, prev, prod). With no
arguments only development is synced.`,
		Example: `  vercel-env sync                   # sync .env against development
  vercel-env sync preview prod      # sync two environments
  vercel-env sync --all --auto      # forward-sync everything, one confirm per env
  vercel-env sync --dry-run         # show the plan, change nothing`,
		ValidArgsFunction: cmdutil.CompleteEnvironments,
		RunE: func(cmd *cobra.Command, args []string) error {
			selectors := args
			fallback := []envs.Environment{envs.Development}
			if all {
				selectors = nil
				fallback = envs.All()
			}
			environments, err := cmdutil.ResolveEnvironments(selectors, fallback)
			if err != nil {
				return err
			}

			rec, err := app.Reconciler(
				reconciler.WithAuto(auto),
				reconciler.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}

			if dryRun {
				return executePlan(cmd.Context(), cmd, app, rec, environments)
			}
			return executeSync(cmd.Context(), cmd, app, rec, environments)
		},
	}

	cmd.Flags().BoolVarP(&auto, "auto", "y", false,
		"Apply forward actions after one confirmation per environment")
	cmd.Flags().BoolVarP(&all, "all", "a", false,
		"Sync every environment")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Print the divergence plan without applying anything")

	return cmd
}

// executeSync runs the full reconciliation and reports the outcome. A
// failed action does not abort the run, but it does fail the command.
func executeSync(ctx context.Context, cmd *cobra.Command, app application.Application, rec reconciler.Reconciler, environments []envs.Environment) error {
	result, err := rec.Sync(ctx, environments)
	if err != nil {
		if errors.IsCanceled(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled, nothing further was applied.")
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
	if result.HasFailures() {
		app.Logger().Error().
			Str("run_id", result.RunID).
			Int("failures", result.FailureCount()).
			Msg("Sync finished with failures")
		return fmt.Errorf("%d operations failed", result.FailureCount())
	}
	return nil
}

// executePlan prints each environment's divergence plan without touching
// either store.
func executePlan(ctx context.Context, cmd *cobra.Command, app application.Application, rec reconciler.Reconciler, environments []envs.Environment) error {
	for _, environment := range environments {
		records, err := rec.Plan(ctx, environment)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: already in sync\n", environment)
			continue
		}

		differ.SortRecords(records)
		if err := output.FormatPlan(records, app.Flags()); err != nil {
			return err
		}
	}
	return nil
}
