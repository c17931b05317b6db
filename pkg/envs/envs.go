// Package envs defines the core domain types for environment variable
// reconciliation: deployment environments, tri-state values, ordered
// key/value mappings, and exclusion sets.
//
// An Environment selects both a local env file and a remote Vercel target.
// A Mapping is one store's view of an environment, rebuilt on every run and
// never shared across environments. Values are a tagged union so that
// redacted remote content can never be confused with real content.
package envs

import (
	"fmt"
	"strings"
)

// Environment identifies one deployment environment. The set is closed and
// fixed at process start; it mirrors Vercel's deployment targets.
type Environment string

const (
	// Development is the local development environment, backed by .env.
	Development Environment = "development"
	// Preview is the preview deployment environment, backed by .env.preview.
	Preview Environment = "preview"
	// Production is the production environment, backed by .env.production.
	Production Environment = "production"
)

// All returns every known environment in canonical order.
func All() []Environment {
	return []Environment{Development, Preview, Production}
}

// Parse converts a user-supplied name into an Environment. Common shorthands
// (dev, prev, pre, prod) are accepted.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return Development, nil
	case "preview", "prev", "pre":
		return Preview, nil
	case "production", "prod":
		return Production, nil
	default:
		return "", fmt.Errorf("unknown environment %q: must be one of: development, preview, production", s)
	}
}

// String implements fmt.Stringer.
func (e Environment) String() string {
	return string(e)
}

// Valid reports whether e is one of the known environments.
func (e Environment) Valid() bool {
	switch e {
	case Development, Preview, Production:
		return true
	default:
		return false
	}
}

// LocalFile returns the env file name this environment maps to, relative to
// the project's env directory. Development owns the bare .env file.
func (e Environment) LocalFile() string {
	if e == Development {
		return ".env"
	}
	return ".env." + string(e)
}
