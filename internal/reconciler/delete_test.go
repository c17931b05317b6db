package reconciler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marian1309/vercel-env/internal/reconciler"
	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
)

func TestDeleteInteractiveMergesEnvironments(t *testing.T) {
	client := newFakeClient()
	client.seed(envs.Development, "SHARED", "1")
	client.seed(envs.Development, "ONLY_DEV", "2")
	client.seed(envs.Production, "SHARED", "3")

	// The merged list is alphabetized, so the options are ONLY_DEV,
	// SHARED, abort. Index 1 selects SHARED in both environments.
	prompter := &fakePrompter{
		multis:   [][]int{{1}},
		confirms: []bool{true, false},
	}
	r, _ := newTestReconciler(t, client, prompter)

	result, err := r.Delete(context.Background(), reconciler.DeleteRequest{
		Environments: []envs.Environment{envs.Development, envs.Production},
	})
	require.NoError(t, err)

	_, devOK := client.value(envs.Development, "SHARED")
	_, prodOK := client.value(envs.Production, "SHARED")
	assert.False(t, devOK)
	assert.False(t, prodOK)

	_, onlyOK := client.value(envs.Development, "ONLY_DEV")
	assert.True(t, onlyOK)

	assert.Equal(t, 2, result.AppliedCount())
	assert.Equal(t, 1, result.Environments[envs.Development].Applied[differ.ActionRemoveRemote])
	assert.Equal(t, 1, result.Environments[envs.Production].Applied[differ.ActionRemoveRemote])
}

func TestDeleteDeclineReturnsToMultiSelect(t *testing.T) {
	client := newFakeClient()
	client.seed(envs.Development, "SHARED", "1")
	client.seed(envs.Development, "ONLY_DEV", "2")

	// Decline the first confirmation, reselect, confirm the second set.
	prompter := &fakePrompter{
		multis:   [][]int{{1}, {0}},
		confirms: []bool{false, true, false},
	}
	r, _ := newTestReconciler(t, client, prompter)

	_, err := r.Delete(context.Background(), reconciler.DeleteRequest{
		Environments: []envs.Environment{envs.Development},
	})
	require.NoError(t, err)

	assert.Len(t, prompter.multiPrompts, 2)

	_, sharedOK := client.value(envs.Development, "SHARED")
	_, onlyOK := client.value(envs.Development, "ONLY_DEV")
	assert.True(t, sharedOK)
	assert.False(t, onlyOK)
}

func TestDeleteAbortSentinelDeletesNothing(t *testing.T) {
	client := newFakeClient()
	client.seed(envs.Development, "SHARED", "1")
	client.seed(envs.Development, "ONLY_DEV", "2")

	prompter := &fakePrompter{
		multis: [][]int{{2}},
	}
	r, _ := newTestReconciler(t, client, prompter)

	result, err := r.Delete(context.Background(), reconciler.DeleteRequest{
		Environments: []envs.Environment{envs.Development},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.AppliedCount())
	assert.Equal(t, 0, client.countCalls("remove:"))
	assert.Empty(t, prompter.confirmPrompts)
}

func TestDeleteDeclineThenAbort(t *testing.T) {
	client := newFakeClient()
	client.seed(envs.Development, "API_KEY", "1")

	prompter := &fakePrompter{
		multis:   [][]int{{0}, {1}},
		confirms: []bool{false},
	}
	r, _ := newTestReconciler(t, client, prompter)

	result, err := r.Delete(context.Background(), reconciler.DeleteRequest{
		Environments: []envs.Environment{envs.Development},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.AppliedCount())
	_, ok := client.value(envs.Development, "API_KEY")
	assert.True(t, ok)
}

func TestDeleteExcludedKeysNeverOffered(t *testing.T) {
	client := newFakeClient()
	client.seed(envs.Development, "MY_KEY", "1")
	client.seed(envs.Development, "VERCEL_URL", "https://x")

	// VERCEL_URL is filtered out, so index 0 is MY_KEY.
	prompter := &fakePrompter{
		multis:   [][]int{{0}},
		confirms: []bool{true, false},
	}
	r, _ := newTestReconciler(t, client, prompter)

	_, err := r.Delete(context.Background(), reconciler.DeleteRequest{
		Environments: []envs.Environment{envs.Development},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, client.countCalls("remove:"))
	_, protectedOK := client.value(envs.Development, "VERCEL_URL")
	assert.True(t, protectedOK)
	_, myOK := client.value(envs.Development, "MY_KEY")
	assert.False(t, myOK)
}

func TestDeleteExplicitKeysWithForceAndCascade(t *testing.T) {
	client := newFakeClient()
	client.seed(envs.Development, "SHARED", "1")

	prompter := &fakePrompter{}
	r, local := newTestReconciler(t, client, prompter)
	require.NoError(t, local.Set(envs.Development, "SHARED", "1"))

	result, err := r.Delete(context.Background(), reconciler.DeleteRequest{
		Environments: []envs.Environment{envs.Development},
		Keys:         []string{"SHARED"},
		Force:        true,
		Local:        true,
	})
	require.NoError(t, err)

	// Force plus explicit keys never prompts.
	assert.Empty(t, prompter.confirmPrompts)
	assert.Empty(t, prompter.multiPrompts)

	_, remoteOK := client.value(envs.Development, "SHARED")
	assert.False(t, remoteOK)

	mapping, rerr := local.Read(envs.Development)
	require.NoError(t, rerr)
	assert.False(t, mapping.Has("SHARED"))

	er := result.Environments[envs.Development]
	assert.Equal(t, 1, er.Applied[differ.ActionRemoveRemote])
	assert.Equal(t, 1, er.Applied[differ.ActionRemoveLocal])
}

func TestDeleteExplicitKeyNotFound(t *testing.T) {
	client := newFakeClient()
	client.seed(envs.Development, "API_KEY", "1")

	prompter := &fakePrompter{}
	r, _ := newTestReconciler(t, client, prompter)

	result, err := r.Delete(context.Background(), reconciler.DeleteRequest{
		Environments: []envs.Environment{envs.Development},
		Keys:         []string{"MISSING"},
		Force:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.AppliedCount())
	assert.Equal(t, 0, client.countCalls("remove:"))
}

func TestDeleteLocalFlagSkipsCascadePrompt(t *testing.T) {
	client := newFakeClient()
	client.seed(envs.Development, "API_KEY", "1")

	prompter := &fakePrompter{
		multis:   [][]int{{0}},
		confirms: []bool{true},
	}
	r, local := newTestReconciler(t, client, prompter)
	require.NoError(t, local.Set(envs.Development, "API_KEY", "1"))

	result, err := r.Delete(context.Background(), reconciler.DeleteRequest{
		Environments: []envs.Environment{envs.Development},
		Local:        true,
	})
	require.NoError(t, err)

	// Only the deletion confirmation, no cascade offer.
	assert.Len(t, prompter.confirmPrompts, 1)

	mapping, rerr := local.Read(envs.Development)
	require.NoError(t, rerr)
	assert.False(t, mapping.Has("API_KEY"))
	assert.Equal(t, 1, result.Environments[envs.Development].Applied[differ.ActionRemoveLocal])
}

func TestDeleteEmptyRemote(t *testing.T) {
	client := newFakeClient()
	prompter := &fakePrompter{}
	r, _ := newTestReconciler(t, client, prompter)

	result, err := r.Delete(context.Background(), reconciler.DeleteRequest{
		Environments: []envs.Environment{envs.Development},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.AppliedCount())
	assert.Empty(t, prompter.multiPrompts)
}
