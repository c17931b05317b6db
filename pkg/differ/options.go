package differ

import "github.com/Marian1309/vercel-env/pkg/envs"

// Option is a functional option for configuring Differ
type Option func(*differ)

// WithExclusions sets the exclusion policy consulted for remote-only keys.
// Without this option only the built-in Vercel system variables are excluded.
func WithExclusions(exclusions *envs.Exclusions) Option {
	return func(d *differ) {
		if exclusions != nil {
			d.exclusions = exclusions
		}
	}
}
