package envs

import "strings"

// systemVariables are the names Vercel injects and manages itself. They show
// up in pulled env files and remote listings but must never be pushed,
// pulled, or deleted by a sync, so they are excluded everywhere by default.
var systemVariables = []string{
	"VERCEL",
	"VERCEL_ENV",
	"VERCEL_URL",
	"VERCEL_BRANCH_URL",
	"VERCEL_REGION",
	"VERCEL_DEPLOYMENT_ID",
	"VERCEL_PROJECT_PRODUCTION_URL",
	"VERCEL_OIDC_TOKEN",
	"NX_DAEMON",
	"TURBO_REMOTE_ONLY",
	"TURBO_RUN_SUMMARY",
	"TURBO_DOWNLOAD_LOCAL_ENABLED",
}

// systemPrefixes match whole families of platform-managed names.
var systemPrefixes = []string{
	"VERCEL_GIT_",
}

// Exclusions is the set of variable names a sync must leave alone, globally
// or for specific environments. The zero value excludes only the built-in
// Vercel system variables.
//
// Exclusion is one-directional: an excluded remote-only key is neither
// pulled nor offered for remote deletion, but a local key that happens to be
// excluded still syncs outward. That keeps a stray exclusion from silently
// hiding local work.
type Exclusions struct {
	global map[string]struct{}
	perEnv map[Environment]map[string]struct{}
}

// NewExclusions builds an exclusion set from a global list and optional
// per-environment lists. The built-in system variables are always included.
func NewExclusions(global []string, perEnv map[Environment][]string) *Exclusions {
	x := &Exclusions{
		global: make(map[string]struct{}, len(global)+len(systemVariables)),
		perEnv: make(map[Environment]map[string]struct{}, len(perEnv)),
	}
	for _, k := range systemVariables {
		x.global[k] = struct{}{}
	}
	for _, k := range global {
		if k = strings.TrimSpace(k); k != "" {
			x.global[k] = struct{}{}
		}
	}
	for env, keys := range perEnv {
		set := make(map[string]struct{}, len(keys))
		for _, k := range keys {
			if k = strings.TrimSpace(k); k != "" {
				set[k] = struct{}{}
			}
		}
		x.perEnv[env] = set
	}
	return x
}

// Excluded reports whether key is excluded for env, either globally, for
// that environment specifically, or as a platform-managed name.
func (x *Exclusions) Excluded(env Environment, key string) bool {
	if x == nil {
		return excludedByDefault(key)
	}
	if x.global != nil {
		if _, ok := x.global[key]; ok {
			return true
		}
	} else if excludedByDefault(key) {
		return true
	}
	if set, ok := x.perEnv[env]; ok {
		if _, ok := set[key]; ok {
			return true
		}
	}
	for _, p := range systemPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

func excludedByDefault(key string) bool {
	for _, k := range systemVariables {
		if key == k {
			return true
		}
	}
	for _, p := range systemPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}
