package differ

import (
	"github.com/Marian1309/vercel-env/pkg/envs"
)

// Differ handles divergence detection between a local and a remote view
// of one environment.
type Differ interface {
	// Compute returns one Record per out-of-sync key. Output order is
	// encounter order: local keys first as they appear in the local
	// mapping, then remote-only keys in remote mapping order.
	Compute(local, remote *envs.Mapping, environment envs.Environment) []Record
}

// differ is the default implementation of Differ.
type differ struct {
	exclusions *envs.Exclusions
}

// New creates a Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		exclusions: envs.NewExclusions(nil, nil),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Compute classifies every key in the union of both mappings.
//
// Presence is value presence, not map membership: a known empty string
// counts as absent, so an empty line in an env file never produces a
// phantom divergence. Equality is only decidable when both values are
// known; an opaque value on either side is conservatively treated as
// possibly different.
func (d *differ) Compute(local, remote *envs.Mapping, environment envs.Environment) []Record {
	records := make([]Record, 0)
	seen := make(map[string]bool, local.Len())

	for _, key := range local.Keys() {
		seen[key] = true
		if record, ok := d.classify(key, environment, local.Get(key), remote.Get(key)); ok {
			records = append(records, record)
		}
	}

	for _, key := range remote.Keys() {
		if seen[key] {
			continue
		}
		if record, ok := d.classify(key, environment, local.Get(key), remote.Get(key)); ok {
			records = append(records, record)
		}
	}

	return records
}

// classify maps one key's state pair to its candidate actions. The bool
// result is false for keys that need no record: in-sync pairs, absent
// pairs, and excluded remote-only keys.
func (d *differ) classify(key string, environment envs.Environment, local, remote envs.Value) (Record, bool) {
	record := Record{
		Key:         key,
		Environment: environment,
		Local:       local,
		Remote:      remote,
	}

	localPresent := local.Present()
	remotePresent := remote.Present()

	switch {
	case localPresent && !remotePresent:
		record.Candidates = []Action{ActionAdd, ActionRemoveLocal}

	case !localPresent && remotePresent:
		// Exclusions gate exactly the two actions a remote-only key can
		// offer, so an excluded key yields no record at all.
		if d.exclusions.Excluded(environment, key) {
			return Record{}, false
		}
		record.Candidates = []Action{ActionPull, ActionRemoveRemote}

	case localPresent && remotePresent:
		if local.IsOpaque() || remote.IsOpaque() {
			record.Candidates = []Action{ActionUpdate}
			break
		}
		localContent, _ := local.Content()
		remoteContent, _ := remote.Content()
		if localContent == remoteContent {
			return Record{}, false
		}
		record.Candidates = []Action{ActionUpdate}

	default:
		return Record{}, false
	}

	return record, true
}
