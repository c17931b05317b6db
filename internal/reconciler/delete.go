package reconciler

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Marian1309/vercel-env/internal/cmd/emoji"
	"github.com/Marian1309/vercel-env/internal/cmd/output"
	"github.com/Marian1309/vercel-env/internal/cmd/table"
	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
	"github.com/Marian1309/vercel-env/pkg/logging"
)

// DeleteRequest describes one deletion run.
type DeleteRequest struct {
	// Environments to list and delete from.
	Environments []envs.Environment
	// Keys skips interactive selection and deletes these names directly.
	Keys []string
	// Force skips the confirmation step. Only honored with explicit Keys.
	Force bool
	// Local cascades each remote deletion into the local env file.
	Local bool
}

// abortOption is the multi-select sentinel that leaves the workflow without
// deleting anything.
const abortOption = "Abort, delete nothing"

// deletionList is the merged remote listing: every deletable key with the
// environments it exists in, exclusions already filtered out.
type deletionList struct {
	keys []string
	envs map[string][]envs.Environment
}

// Delete lists remote variables across the requested environments, lets the
// operator pick a set, confirms, and removes them. Keys named in the
// request bypass selection; Force additionally bypasses confirmation.
func (r *reconciler) Delete(ctx context.Context, req DeleteRequest) (*Result, error) {
	result := NewResult()
	ctx = logging.WithRunID(ctx, result.RunID)

	list := r.remoteListing(ctx, req.Environments)
	if len(list.keys) == 0 {
		r.printf("No deletable variables found.\n")
		return result, nil
	}

	var selection []string
	var err error
	if len(req.Keys) > 0 {
		selection, err = r.selectRequested(ctx, req, list)
	} else {
		selection, err = r.selectInteractive(ctx, list)
	}
	if err != nil {
		return result, err
	}
	if len(selection) == 0 {
		r.printf("Nothing deleted.\n")
		return result, nil
	}

	cascade := req.Local
	if len(req.Keys) == 0 && !cascade {
		cascade, err = r.prompter.Confirm(ctx, "Also remove the selected keys from the local env files")
		if err != nil {
			return result, err
		}
	}

	err = r.deleteSelection(ctx, selection, list, cascade, result)
	return result, err
}

// remoteListing merges the names-only listings of the requested
// environments. Identically-named keys collapse into one entry carrying
// every environment they exist in; excluded keys never appear. Listing
// failures degrade to skipping that environment with a warning.
func (r *reconciler) remoteListing(ctx context.Context, environments []envs.Environment) *deletionList {
	list := &deletionList{envs: make(map[string][]envs.Environment)}

	for _, environment := range environments {
		names, err := r.client.List(ctx, environment)
		if err != nil {
			logging.Ctx(ctx).Warn().
				Err(err).
				Str("environment", environment.String()).
				Msg("Listing failed, environment skipped")
			continue
		}

		for _, name := range names {
			if r.exclusions.Excluded(environment, name) {
				continue
			}
			if _, seen := list.envs[name]; !seen {
				list.keys = append(list.keys, name)
			}
			list.envs[name] = append(list.envs[name], environment)
		}
	}

	// Alphabetized so the menu is stable no matter which environment
	// listed a key first.
	sort.Strings(list.keys)

	return list
}

// selectRequested resolves explicitly named keys against the listing. Names
// not present remotely (or excluded everywhere) are reported and dropped.
// Without Force, one confirmation covers the whole set.
func (r *reconciler) selectRequested(ctx context.Context, req DeleteRequest, list *deletionList) ([]string, error) {
	selection := make([]string, 0, len(req.Keys))
	for _, key := range req.Keys {
		if _, ok := list.envs[key]; !ok {
			r.printf("%s %s not found on remote (or protected), skipped\n", emoji.Warning, key)
			continue
		}
		selection = append(selection, key)
	}
	if len(selection) == 0 || req.Force {
		return selection, nil
	}

	if err := r.printSelection(selection, list); err != nil {
		return nil, err
	}
	confirmed, err := r.prompter.Confirm(ctx,
		fmt.Sprintf("Permanently delete %d variables from remote", len(selection)))
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}
	return selection, nil
}

// selectInteractive loops a multi-select and a confirmation until the
// operator confirms a set or picks the abort sentinel. Declining the
// confirmation returns to the multi-select, not out of the workflow.
func (r *reconciler) selectInteractive(ctx context.Context, list *deletionList) ([]string, error) {
	options := make([]string, 0, len(list.keys)+1)
	for _, key := range list.keys {
		options = append(options, fmt.Sprintf("%s (%s)", key, joinEnvironments(list.envs[key])))
	}
	options = append(options, abortOption)
	abortIndex := len(options) - 1

	for {
		indexes, err := r.prompter.MultiSelect(ctx, "Select variables to delete:", options)
		if err != nil {
			return nil, err
		}

		selection := make([]string, 0, len(indexes))
		aborted := len(indexes) == 0
		for _, index := range indexes {
			if index == abortIndex {
				aborted = true
				break
			}
			selection = append(selection, list.keys[index])
		}
		if aborted {
			return nil, nil
		}

		if err := r.printSelection(selection, list); err != nil {
			return nil, err
		}
		confirmed, err := r.prompter.Confirm(ctx,
			fmt.Sprintf("Permanently delete %d variables from remote", len(selection)))
		if err != nil {
			return nil, err
		}
		if confirmed {
			return selection, nil
		}
	}
}

// deleteSelection removes every selected key from each environment it
// exists in, cascading into the local file when asked. Failures are counted
// and never stop the remaining deletions.
func (r *reconciler) deleteSelection(ctx context.Context, selection []string, list *deletionList, cascade bool, result *Result) error {
	for _, key := range selection {
		for _, environment := range list.envs[key] {
			if ctx.Err() != nil {
				return errors.ErrCanceled
			}

			if err := r.client.Remove(ctx, key, environment); err != nil {
				result.recordFailure(environment, differ.ActionRemoveRemote, key, err)
				logging.Ctx(ctx).Error().
					Err(err).
					Str("key", key).
					Str("environment", environment.String()).
					Msg("Remote removal failed")
				r.printf("%s remove %s from remote %s: %v\n", emoji.Error, key, environment, err)
				continue
			}

			result.recordApplied(environment, differ.ActionRemoveRemote)
			r.printf("%s removed %s from remote %s\n", emoji.Success, key, environment)

			if !cascade {
				continue
			}
			if err := r.store.Remove(environment, key); err != nil {
				result.recordFailure(environment, differ.ActionRemoveLocal, key, err)
				r.printf("%s remove %s from %s: %v\n", emoji.Error, key, environment.LocalFile(), err)
				continue
			}
			result.recordApplied(environment, differ.ActionRemoveLocal)
			r.printf("%s removed %s from %s\n", emoji.Success, key, environment.LocalFile())
		}
	}

	return nil
}

// printSelection shows what is about to be deleted and where.
func (r *reconciler) printSelection(selection []string, list *deletionList) error {
	r.printf("Selected for deletion:\n")
	data := table.DeletionsToTableData(list.envs, selection)
	return output.NewFormatter(output.FormatTable).Format(r.out, output.Data{
		Headers: data.Headers,
		Rows:    data.Rows,
	})
}

func joinEnvironments(environments []envs.Environment) string {
	names := make([]string, 0, len(environments))
	for _, environment := range environments {
		names = append(names, environment.String())
	}
	return strings.Join(names, ", ")
}
