// Package list implements the list command, a read-only inventory of
// every variable across the local files and the remote store.
package list

import (
	"github.com/spf13/cobra"

	"github.com/Marian1309/vercel-env/cmd/application"
	"github.com/Marian1309/vercel-env/internal/cmd/cmdutil"
	"github.com/Marian1309/vercel-env/internal/cmd/output"
	"github.com/Marian1309/vercel-env/internal/cmd/table"
	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [environment...]",
		Aliases: []string{"ls"},
		Short:   "List variables across local files and the remote store",
		Long: `List shows every variable for the selected environments with its local
and remote presence and the action a sync would offer for it. Values are
never printed. With no arguments all environments are listed.`,
		Example: `  vercel-env list                  # all environments
  vercel-env list production       # one environment
  vercel-env list -o json          # machine-readable output`,
		ValidArgsFunction: cmdutil.CompleteEnvironments,
		RunE: func(cmd *cobra.Command, args []string) error {
			environments, err := cmdutil.ResolveEnvironments(args, envs.All())
			if err != nil {
				return err
			}
			return executeList(cmd, app, environments)
		},
	}

	return cmd
}

// executeList assembles the inventory for each environment and hands it to
// the output formatter.
func executeList(cmd *cobra.Command, app application.Application, environments []envs.Environment) error {
	st, err := app.Store()
	if err != nil {
		return err
	}
	client, err := app.Client()
	if err != nil {
		return err
	}
	exclusions, err := app.Exclusions()
	if err != nil {
		return err
	}
	rec, err := app.Reconciler()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	variables := make([]table.Variable, 0)
	for _, environment := range environments {
		local, err := st.Read(environment)
		if err != nil {
			return err
		}
		records, err := rec.Plan(ctx, environment)
		if err != nil {
			return err
		}
		names, err := client.List(ctx, environment)
		if err != nil {
			if ctx.Err() != nil {
				return errors.ErrCanceled
			}
			app.Logger().Warn().
				Err(err).
				Str("environment", environment.String()).
				Msg("Remote listing failed, presence shown from the diff only")
			names = nil
		}

		variables = append(variables, buildVariables(environment, local, names, records, exclusions)...)
	}

	return output.FormatVariables(variables, app.Flags())
}

// buildVariables merges one environment's local mapping, remote name
// listing, and divergence records into presentation rows. Local keys come
// first in file order, then remote-only names in listing order.
func buildVariables(environment envs.Environment, local *envs.Mapping, remoteNames []string, records []differ.Record, exclusions *envs.Exclusions) []table.Variable {
	actions := make(map[string]string, len(records))
	for i := range records {
		action := "skip"
		if forward, ok := records[i].ForwardAction(); ok {
			action = string(forward)
		}
		actions[records[i].Key] = action
	}

	remote := make(map[string]bool, len(remoteNames))
	for _, name := range remoteNames {
		remote[name] = true
	}

	variables := make([]table.Variable, 0, local.Len()+len(remoteNames))
	seen := make(map[string]bool, local.Len())
	for _, key := range local.Keys() {
		seen[key] = true
		variables = append(variables, table.Variable{
			Key:         key,
			Environment: environment.String(),
			Local:       local.Get(key).Present(),
			Remote:      remote[key],
			Action:      actionFor(actions, exclusions, environment, key),
		})
	}
	for _, key := range remoteNames {
		if seen[key] {
			continue
		}
		variables = append(variables, table.Variable{
			Key:         key,
			Environment: environment.String(),
			Local:       false,
			Remote:      true,
			Action:      actionFor(actions, exclusions, environment, key),
		})
	}
	return variables
}

// actionFor labels one row. Keys with a divergence record carry its
// forward action, protected remote-only keys are called out, everything
// else is in sync.
func actionFor(actions map[string]string, exclusions *envs.Exclusions, environment envs.Environment, key string) string {
	if action, ok := actions[key]; ok {
		return action
	}
	if exclusions.Excluded(environment, key) {
		return "protected"
	}
	return "in sync"
}
