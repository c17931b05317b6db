// Package cmdutil provides shared helpers for vercel-env commands.
package cmdutil

import (
	"github.com/Marian1309/vercel-env/pkg/envs"
)

// ResolveEnvironments turns environment selectors (positional arguments or
// repeated flag values) into the environment list a command operates on.
// Aliases are accepted, duplicates collapse to the first occurrence, and
// order is preserved. With no selectors the fallback set is returned.
func ResolveEnvironments(selectors []string, fallback []envs.Environment) ([]envs.Environment, error) {
	if len(selectors) == 0 {
		return fallback, nil
	}

	seen := make(map[envs.Environment]bool, len(selectors))
	environments := make([]envs.Environment, 0, len(selectors))
	for _, selector := range selectors {
		environment, err := envs.Parse(selector)
		if err != nil {
			return nil, err
		}
		if seen[environment] {
			continue
		}
		seen[environment] = true
		environments = append(environments, environment)
	}
	return environments, nil
}
