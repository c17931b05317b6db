// Package differ compares a local env mapping against its remote
// counterpart and emits one divergence record per key that is out of sync.
// The engine is pure: no I/O, no clock, deterministic output for the same
// inputs. Callers own presentation concerns such as sorting.
package differ

import (
	"fmt"
	"sort"

	"github.com/Marian1309/vercel-env/pkg/constants"
	"github.com/Marian1309/vercel-env/pkg/envs"
)

// Action is one way a divergence can be resolved.
type Action string

const (
	// ActionAdd writes a local-only key to the remote store.
	ActionAdd Action = "add"
	// ActionUpdate overwrites the remote value with the local one.
	ActionUpdate Action = "update"
	// ActionPull writes a remote-only key into the local store.
	ActionPull Action = "pull"
	// ActionRemoveRemote deletes the key from the remote store.
	ActionRemoveRemote Action = "remove_from_remote"
	// ActionRemoveLocal deletes the key from the local store.
	ActionRemoveLocal Action = "remove_from_local"
	// ActionDoNothing abandons the record without touching either store.
	ActionDoNothing Action = "do_nothing"
)

// forward reports whether the action moves data in the default sync
// direction. Removal actions are never forward.
func (a Action) forward() bool {
	switch a {
	case ActionAdd, ActionUpdate, ActionPull:
		return true
	default:
		return false
	}
}

// Record captures one key that differs between the local and remote view
// of a single environment. Candidates holds exactly the actions that are
// meaningful for the observed state combination, in preference order. The
// resolution workflow fills Selected; records never cross environments.
type Record struct {
	Key         string
	Environment envs.Environment
	Local       envs.Value
	Remote      envs.Value
	Candidates  []Action
	Selected    Action
}

// ForwardAction returns the record's default sync-forward candidate, if it
// has one. Records whose only candidates are removals return false.
func (r *Record) ForwardAction() (Action, bool) {
	for _, a := range r.Candidates {
		if a.forward() {
			return a, true
		}
	}
	return "", false
}

// Offers reports whether action is one of the record's candidates.
// ActionDoNothing is implicitly offered on every record.
func (r *Record) Offers(action Action) bool {
	if action == ActionDoNothing {
		return true
	}
	for _, a := range r.Candidates {
		if a == action {
			return true
		}
	}
	return false
}

// Describe renders the concrete effect of applying action to this record,
// suitable for a confirmation prompt. Values are previewed, never shown in
// full, since env values are secrets more often than not.
func (r *Record) Describe(action Action) string {
	env := r.Environment
	switch action {
	case ActionAdd:
		return fmt.Sprintf("add %s to remote %s with local value %s", r.Key, env, preview(r.Local))
	case ActionUpdate:
		if r.Remote.IsOpaque() {
			return fmt.Sprintf("update %s on remote %s to local value %s (current remote value is not readable)", r.Key, env, preview(r.Local))
		}
		return fmt.Sprintf("update %s on remote %s from %s to local value %s", r.Key, env, preview(r.Remote), preview(r.Local))
	case ActionPull:
		if r.Remote.IsOpaque() {
			return fmt.Sprintf("pull %s from remote %s into %s (value will be fetched)", r.Key, env, env.LocalFile())
		}
		return fmt.Sprintf("pull %s from remote %s into %s with value %s", r.Key, env, env.LocalFile(), preview(r.Remote))
	case ActionRemoveRemote:
		return fmt.Sprintf("remove %s from remote %s", r.Key, env)
	case ActionRemoveLocal:
		return fmt.Sprintf("remove %s from %s", r.Key, env.LocalFile())
	case ActionDoNothing:
		return fmt.Sprintf("leave %s unchanged", r.Key)
	default:
		return fmt.Sprintf("%s %s", action, r.Key)
	}
}

// SortRecords orders records alphabetically by key, in place. Compute
// itself returns encounter order; call this before presenting a list.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Key < records[j].Key
	})
}

// preview renders a value for prompt display, quoted and truncated.
func preview(v envs.Value) string {
	content, ok := v.Content()
	if !ok {
		return v.String()
	}
	return fmt.Sprintf("%q", truncateString(content, constants.ValuePreviewLength))
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
