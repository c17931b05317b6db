package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
)

func TestVariablesToTableData(t *testing.T) {
	variables := []Variable{
		{Key: "API_KEY", Environment: "preview", Local: true, Remote: true, Action: "in sync"},
		{Key: "DATABASE_URL", Environment: "preview", Local: true, Remote: false, Action: "add"},
		{Key: "STRIPE_KEY", Environment: "production", Local: false, Remote: true, Action: "pull"},
	}

	data := VariablesToTableData(variables)

	assert.Equal(t, []string{"Key", "Environment", "Local", "Remote", "Action"}, data.Headers)
	require.Len(t, data.Rows, 3)
	assert.Equal(t, []string{"API_KEY", "preview", "yes", "yes", "in sync"}, data.Rows[0])
	assert.Equal(t, []string{"DATABASE_URL", "preview", "yes", "-", "add"}, data.Rows[1])
	assert.Equal(t, []string{"STRIPE_KEY", "production", "-", "yes", "pull"}, data.Rows[2])
	assert.Len(t, data.ColumnAlignment, 5)
}

func TestPlanEntries(t *testing.T) {
	records := []differ.Record{
		{
			Key:         "API_KEY",
			Environment: envs.Preview,
			Local:       envs.Known("sk_live_abc"),
			Remote:      envs.Absent(),
			Candidates:  []differ.Action{differ.ActionAdd, differ.ActionRemoveLocal},
		},
		{
			Key:         "DATABASE_URL",
			Environment: envs.Preview,
			Local:       envs.Known("postgres://db"),
			Remote:      envs.Opaque(),
			Candidates:  []differ.Action{differ.ActionUpdate},
		},
	}

	entries := PlanEntries(records)

	require.Len(t, entries, 2)
	assert.Equal(t, PlanEntry{
		Key:         "API_KEY",
		Environment: "preview",
		Local:       `"sk_live_abc"`,
		Remote:      "-",
		Action:      "add",
	}, entries[0])
	assert.Equal(t, PlanEntry{
		Key:         "DATABASE_URL",
		Environment: "preview",
		Local:       `"postgres://db"`,
		Remote:      "<opaque>",
		Action:      "update",
	}, entries[1])
}

func TestPlanEntriesSkipsRemovalOnlyRecords(t *testing.T) {
	records := []differ.Record{
		{
			Key:         "LEFTOVER",
			Environment: envs.Development,
			Local:       envs.Known("x"),
			Remote:      envs.Absent(),
			Candidates:  []differ.Action{differ.ActionRemoveLocal},
		},
	}

	entries := PlanEntries(records)

	require.Len(t, entries, 1)
	assert.Equal(t, "skip", entries[0].Action)
}

func TestPlanToTableData(t *testing.T) {
	records := []differ.Record{
		{
			Key:         "API_KEY",
			Environment: envs.Production,
			Local:       envs.Known("abc"),
			Remote:      envs.Absent(),
			Candidates:  []differ.Action{differ.ActionAdd, differ.ActionRemoveLocal},
		},
	}

	data := PlanToTableData(records)

	assert.Equal(t, []string{"Key", "Environment", "Local", "Remote", "Action"}, data.Headers)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, []string{"API_KEY", "production", `"abc"`, "-", "add"}, data.Rows[0])
}

func TestDeletionsToTableData(t *testing.T) {
	deletions := map[string][]envs.Environment{
		"API_KEY":      {envs.Development, envs.Production},
		"DATABASE_URL": {envs.Preview},
	}

	data := DeletionsToTableData(deletions, []string{"API_KEY", "DATABASE_URL"})

	assert.Equal(t, []string{"Key", "Environments"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"API_KEY", "development, production"}, data.Rows[0])
	assert.Equal(t, []string{"DATABASE_URL", "preview"}, data.Rows[1])
}

func TestValueCell(t *testing.T) {
	tests := []struct {
		name  string
		value envs.Value
		want  string
	}{
		{name: "absent", value: envs.Absent(), want: "-"},
		{name: "opaque", value: envs.Opaque(), want: "<opaque>"},
		{name: "known", value: envs.Known("hello"), want: `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueCell(tt.value))
		})
	}
}

func TestValueCellTruncatesLongValues(t *testing.T) {
	cell := ValueCell(envs.Known(strings.Repeat("a", 300)))

	assert.Contains(t, cell, "...")
	assert.Less(t, len(cell), 100)
}
