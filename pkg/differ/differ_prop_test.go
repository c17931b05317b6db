package differ_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
)

func buildMapping(pairs map[string]string) *envs.Mapping {
	m := envs.NewMapping()
	for k, v := range pairs {
		m.Set(k, envs.Known(v))
	}
	return m
}

func TestComputeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	envKey := gen.Identifier().Map(strings.ToUpper)
	pairsGen := gen.MapOf(envKey, gen.AlphaString())

	properties.Property("a mapping diffed against itself is in sync", prop.ForAll(
		func(pairs map[string]string) bool {
			d := differ.New()
			records := d.Compute(buildMapping(pairs), buildMapping(pairs), envs.Development)
			return len(records) == 0
		},
		pairsGen,
	))

	properties.Property("every record names a key that actually diverges", prop.ForAll(
		func(localPairs, remotePairs map[string]string) bool {
			local := buildMapping(localPairs)
			remote := buildMapping(remotePairs)
			records := differ.New().Compute(local, remote, envs.Preview)

			seen := make(map[string]bool, len(records))
			for _, r := range records {
				if seen[r.Key] {
					return false
				}
				seen[r.Key] = true

				lv, rv := local.Get(r.Key), remote.Get(r.Key)
				if lv.Present() && rv.Present() {
					lc, _ := lv.Content()
					rc, _ := rv.Content()
					if lc == rc {
						return false
					}
				}
				if !lv.Present() && !rv.Present() {
					return false
				}
				if len(r.Candidates) == 0 {
					return false
				}
			}
			return true
		},
		pairsGen,
		pairsGen,
	))

	properties.Property("compute is deterministic", prop.ForAll(
		func(localPairs, remotePairs map[string]string) bool {
			local := buildMapping(localPairs)
			remote := buildMapping(remotePairs)
			d := differ.New()

			first := d.Compute(local, remote, envs.Production)
			second := d.Compute(local, remote, envs.Production)
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i].Key != second[i].Key {
					return false
				}
			}
			return true
		},
		pairsGen,
		pairsGen,
	))

	properties.TestingRun(t)
}
