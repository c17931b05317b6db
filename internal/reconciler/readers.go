package reconciler

import (
	"context"

	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
	"github.com/Marian1309/vercel-env/pkg/logging"
)

// readRemote returns the remote view of an environment, degrading instead
// of failing: full values when the pull succeeds, opaque placeholders when
// only the names listing is available, and an empty mapping when the remote
// cannot be reached at all. Only cancellation is returned as an error.
func (r *reconciler) readRemote(ctx context.Context, environment envs.Environment) (*envs.Mapping, error) {
	log := logging.Ctx(ctx)

	remote, err := r.client.FetchAll(ctx, environment)
	if err == nil {
		return remote, nil
	}
	if ctx.Err() != nil {
		return nil, errors.ErrCanceled
	}

	log.Warn().
		Err(err).
		Str("environment", environment.String()).
		Msg("Full fetch failed, falling back to names-only listing")

	names, err := r.client.List(ctx, environment)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.ErrCanceled
		}
		log.Warn().
			Err(err).
			Str("environment", environment.String()).
			Msg("Listing failed too, treating remote as empty")
		return envs.NewMapping(), nil
	}

	mapping := envs.NewMapping()
	for _, name := range names {
		mapping.Set(name, envs.Opaque())
	}
	log.Debug().Int("keys", mapping.Len()).Msg("Remote values are opaque for this run")
	return mapping, nil
}
