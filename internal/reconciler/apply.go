package reconciler

import (
	"context"
	"fmt"

	"github.com/Marian1309/vercel-env/internal/cmd/emoji"
	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
	"github.com/Marian1309/vercel-env/pkg/logging"
)

// applyAll executes the selected records sequentially in resolution order.
// Each record passes or fails on its own; a failure never halts the
// remaining records. Cancellation stops before the next remote call.
func (r *reconciler) applyAll(ctx context.Context, environment envs.Environment, records []differ.Record, result *Result) error {
	for i := range records {
		record := &records[i]

		if ctx.Err() != nil {
			return errors.ErrCanceled
		}

		if err := r.applyOne(ctx, record); err != nil {
			result.recordFailure(environment, record.Selected, record.Key, err)
			logging.Ctx(ctx).Error().
				Err(err).
				Str("key", record.Key).
				Str("action", string(record.Selected)).
				Msg("Action failed")
			r.printf("%s %s: %v\n", emoji.Error, record.Describe(record.Selected), err)
			continue
		}

		result.recordApplied(environment, record.Selected)
		logging.Ctx(ctx).Debug().
			Str("key", record.Key).
			Str("action", string(record.Selected)).
			Msg("Action applied")
		r.printf("%s %s\n", emoji.Success, record.Describe(record.Selected))
	}

	return nil
}

// applyOne executes a single selected action against the right store.
func (r *reconciler) applyOne(ctx context.Context, record *differ.Record) error {
	ctx = logging.WithKey(ctx, record.Key)

	switch record.Selected {
	case differ.ActionAdd:
		return r.applyAdd(ctx, record)
	case differ.ActionUpdate:
		return r.applyUpdate(ctx, record)
	case differ.ActionPull:
		return r.applyPull(ctx, record)
	case differ.ActionRemoveRemote:
		return r.client.Remove(ctx, record.Key, record.Environment)
	case differ.ActionRemoveLocal:
		return r.store.Remove(record.Environment, record.Key)
	default:
		return nil
	}
}

// applyAdd writes a local-only key to the remote store. A collision with an
// existing remote entry is expected when the stores drifted between diff
// and apply: the entry is removed and the add retried exactly once.
func (r *reconciler) applyAdd(ctx context.Context, record *differ.Record) error {
	content, ok := record.Local.Content()
	if !ok {
		return errors.NewValidationError("value", record.Key, "local value is not readable")
	}

	err := r.client.Add(ctx, record.Key, record.Environment, content)
	if err == nil {
		return nil
	}
	if !errors.IsAlreadyExists(err) {
		return err
	}

	logging.Ctx(ctx).Debug().Msg("Add collided with an existing remote entry, removing and retrying")
	if err := r.client.Remove(ctx, record.Key, record.Environment); err != nil {
		return fmt.Errorf("removing colliding remote entry: %w", err)
	}
	return r.client.Add(ctx, record.Key, record.Environment, content)
}

// applyUpdate replaces the remote value with the local one. The remote
// store has no in-place update, so this is remove followed by add. When the
// removal succeeds but the re-add fails, the key is absent remotely and the
// error says so explicitly.
func (r *reconciler) applyUpdate(ctx context.Context, record *differ.Record) error {
	content, ok := record.Local.Content()
	if !ok {
		return errors.NewValidationError("value", record.Key, "local value is not readable")
	}

	if err := r.client.Remove(ctx, record.Key, record.Environment); err != nil {
		if !errors.IsNotFound(err) {
			return fmt.Errorf("removing old remote value: %w", err)
		}
		// The entry vanished since the diff. The add below restores it.
	}

	if err := r.client.Add(ctx, record.Key, record.Environment, content); err != nil {
		return fmt.Errorf("re-add after removal failed, %s is now absent on remote %s: %w",
			record.Key, record.Environment, err)
	}
	return nil
}

// applyPull persists a remote value into the local file. Opaque values get
// one additional full fetch before the pull is reported failed.
func (r *reconciler) applyPull(ctx context.Context, record *differ.Record) error {
	value := record.Remote
	if !value.IsKnown() {
		logging.Ctx(ctx).Debug().Msg("Remote value opaque at diff time, fetching again")
		remote, err := r.client.FetchAll(ctx, record.Environment)
		if err != nil {
			return fmt.Errorf("fetching value for %s: %w", record.Key, err)
		}
		value = remote.Get(record.Key)
	}

	content, ok := value.Content()
	if !ok {
		return errors.NewSyncError(record.Environment.String(), []string{record.Key},
			errors.New("remote value unavailable"))
	}

	return r.store.Set(record.Environment, record.Key, content)
}
