package cmdutil

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Marian1309/vercel-env/internal/store"
	"github.com/Marian1309/vercel-env/pkg/envfile"
	"github.com/Marian1309/vercel-env/pkg/envs"
)

// CompleteEnvironments offers the canonical environment names, minus the
// ones already on the command line. Suitable as a ValidArgsFunction and as
// a completion function for repeated environment flags.
func CompleteEnvironments(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	seen := make(map[envs.Environment]bool, len(args))
	for _, arg := range args {
		if environment, err := envs.Parse(arg); err == nil {
			seen[environment] = true
		}
	}

	names := make([]string, 0, len(envs.All()))
	for _, environment := range envs.All() {
		if seen[environment] {
			continue
		}
		if name := environment.String(); strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// LocalKeyCompletions collects the key names matching prefix across the
// local env files, minus exclude, sorted. Files are read directly rather
// than through the store so that tab completion never creates a missing
// env file.
func LocalKeyCompletions(st *store.Local, exclude []string, prefix string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, key := range exclude {
		skip[key] = true
	}

	seen := make(map[string]bool)
	var keys []string
	for _, environment := range envs.All() {
		mapping, err := envfile.Read(st.Path(environment))
		if err != nil {
			continue
		}
		for _, key := range mapping.Keys() {
			if skip[key] || seen[key] || !strings.HasPrefix(key, prefix) {
				continue
			}
			seen[key] = true
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)
	return keys
}
