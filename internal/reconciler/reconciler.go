// Package reconciler drives reconciliation between local .env files and the
// remote Vercel store. A run reads both sides of each selected environment,
// computes the divergence, resolves each divergence with the operator
// (per-record interactively or as one confirmed batch), and applies the
// selected actions sequentially. The deletion workflow is an independent
// read, select, confirm, apply sequence over the remote listing.
package reconciler

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Marian1309/vercel-env/internal/cmd/prompt"
	"github.com/Marian1309/vercel-env/internal/store"
	"github.com/Marian1309/vercel-env/internal/vercel"
	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
	"github.com/Marian1309/vercel-env/pkg/logging"
)

// Reconciler is the main interface for reconciling local and remote stores.
type Reconciler interface {
	// Plan computes the divergence records for one environment without
	// modifying either store. Records are in encounter order; callers sort
	// before display.
	Plan(ctx context.Context, environment envs.Environment) ([]differ.Record, error)

	// Sync reconciles each environment in turn. The returned result is
	// valid even when an error is returned alongside it.
	Sync(ctx context.Context, environments []envs.Environment) (*Result, error)

	// Delete runs the deletion workflow over the remote listings.
	Delete(ctx context.Context, req DeleteRequest) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	client     vercel.Client
	store      *store.Local
	differ     differ.Differ
	prompter   prompt.Prompter
	exclusions *envs.Exclusions
	out        io.Writer
	auto       bool
}

// Option configures a Reconciler.
type Option func(*reconciler) error

// New creates a new Reconciler with options. A vercel client is required.
func New(opts ...Option) (Reconciler, error) {
	r := &reconciler{
		store:      store.NewLocal(""),
		prompter:   prompt.NewTerminal(),
		exclusions: envs.NewExclusions(nil, nil),
		out:        os.Stdout,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.client == nil {
		return nil, errors.NewValidationError("client", nil, "a vercel client is required")
	}
	if r.differ == nil {
		r.differ = differ.New(differ.WithExclusions(r.exclusions))
	}

	return r, nil
}

// Plan reads both stores for one environment and computes the divergence.
func (r *reconciler) Plan(ctx context.Context, environment envs.Environment) ([]differ.Record, error) {
	local, err := r.store.Read(environment)
	if err != nil {
		return nil, err
	}

	remote, err := r.readRemote(ctx, environment)
	if err != nil {
		return nil, err
	}

	return r.differ.Compute(local, remote, environment), nil
}

// Sync reconciles each environment in turn. Environment-level failures are
// collected on the result and do not stop later environments; cancellation
// stops the run immediately.
func (r *reconciler) Sync(ctx context.Context, environments []envs.Environment) (*Result, error) {
	result := NewResult()
	ctx = logging.WithRunID(ctx, result.RunID)

	for _, environment := range environments {
		if ctx.Err() != nil {
			return result, errors.ErrCanceled
		}

		if err := r.syncEnvironment(ctx, environment, result); err != nil {
			if errors.IsCanceled(err) {
				return result, err
			}
			logging.Ctx(ctx).Error().
				Err(err).
				Str("environment", environment.String()).
				Msg("Environment could not be reconciled")
			result.AddError(err)
		}
	}

	return result, nil
}

// syncEnvironment runs the full read, diff, resolve, apply sequence for one
// environment.
func (r *reconciler) syncEnvironment(ctx context.Context, environment envs.Environment, result *Result) error {
	ctx = logging.WithEnvironment(ctx, environment.String())
	log := logging.Ctx(ctx)

	records, err := r.Plan(ctx, environment)
	if err != nil {
		return err
	}

	er := result.Environment(environment)
	er.Planned = len(records)

	if len(records) == 0 {
		log.Info().Msg("Environment already in sync")
		r.printf("%s: already in sync\n", environment)
		return nil
	}

	differ.SortRecords(records)
	log.Info().Int("divergences", len(records)).Msg("Divergences found")

	selected, err := r.resolve(ctx, environment, records)
	if err != nil {
		return err
	}
	er.Selected = len(selected)

	if len(selected) == 0 {
		log.Info().Msg("No actions selected")
		return nil
	}

	return r.applyAll(ctx, environment, selected, result)
}

// printf writes operator-facing progress to the configured output stream.
func (r *reconciler) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Option Functions
// ================

// WithClient sets the remote store client.
func WithClient(client vercel.Client) Option {
	return func(r *reconciler) error {
		if client == nil {
			return errors.NewValidationError("client", nil, "client cannot be nil")
		}
		r.client = client
		return nil
	}
}

// WithStore sets the local store.
func WithStore(s *store.Local) Option {
	return func(r *reconciler) error {
		if s == nil {
			return errors.NewValidationError("store", nil, "store cannot be nil")
		}
		r.store = s
		return nil
	}
}

// WithPrompter sets the prompter driving interactive selection.
func WithPrompter(p prompt.Prompter) Option {
	return func(r *reconciler) error {
		if p == nil {
			return errors.NewValidationError("prompter", nil, "prompter cannot be nil")
		}
		r.prompter = p
		return nil
	}
}

// WithDiffer overrides the diff engine. When unset, a differ honoring the
// configured exclusions is constructed.
func WithDiffer(d differ.Differ) Option {
	return func(r *reconciler) error {
		if d == nil {
			return errors.NewValidationError("differ", nil, "differ cannot be nil")
		}
		r.differ = d
		return nil
	}
}

// WithExclusions sets the exclusion policy used by the diff engine and the
// deletion workflow.
func WithExclusions(exclusions *envs.Exclusions) Option {
	return func(r *reconciler) error {
		if exclusions != nil {
			r.exclusions = exclusions
		}
		return nil
	}
}

// WithOutput redirects operator-facing progress output.
func WithOutput(w io.Writer) Option {
	return func(r *reconciler) error {
		if w == nil {
			return errors.NewValidationError("output", nil, "output cannot be nil")
		}
		r.out = w
		return nil
	}
}

// WithAuto switches resolution from per-record interaction to the batch
// forward-sync mode.
func WithAuto(auto bool) Option {
	return func(r *reconciler) error {
		r.auto = auto
		return nil
	}
}
