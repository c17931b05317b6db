// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strings"

	"github.com/Marian1309/vercel-env/pkg/constants"
	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Variable is one key's presence across the local and remote view of an
// environment, as reported by the list command, together with the action a
// sync would offer for it. Values are never included, env vars are secrets
// more often than not.
type Variable struct {
	Key         string `json:"key"`
	Environment string `json:"environment"`
	Local       bool   `json:"local"`
	Remote      bool   `json:"remote"`
	Action      string `json:"action"`
}

// VariablesToTableData converts list output to table format.
func VariablesToTableData(variables []Variable) Data {
	rows := make([][]string, 0, len(variables))
	for _, v := range variables {
		rows = append(rows, []string{
			v.Key,
			v.Environment,
			presence(v.Local),
			presence(v.Remote),
			v.Action,
		})
	}

	return Data{
		Headers: []string{"Key", "Environment", "Local", "Remote", "Action"},
		ColumnAlignment: []Align{
			AlignLeft,
			AlignLeft,
			AlignCenter,
			AlignCenter,
			AlignLeft,
		},
		Rows: rows,
	}
}

// PlanEntry is the serializable view of one divergence record for json and
// yaml output. Value previews follow the same truncation as prompts.
type PlanEntry struct {
	Key         string `json:"key"`
	Environment string `json:"environment"`
	Local       string `json:"local"`
	Remote      string `json:"remote"`
	Action      string `json:"action"`
}

// PlanEntries converts divergence records to their serializable view, one
// entry per key with the action auto mode would take. Records with no
// forward action show "skip".
func PlanEntries(records []differ.Record) []PlanEntry {
	entries := make([]PlanEntry, 0, len(records))
	for i := range records {
		r := &records[i]

		action := "skip"
		if forward, ok := r.ForwardAction(); ok {
			action = string(forward)
		}

		entries = append(entries, PlanEntry{
			Key:         r.Key,
			Environment: string(r.Environment),
			Local:       ValueCell(r.Local),
			Remote:      ValueCell(r.Remote),
			Action:      action,
		})
	}
	return entries
}

// PlanToTableData converts divergence records to table format.
func PlanToTableData(records []differ.Record) Data {
	entries := PlanEntries(records)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Key, e.Environment, e.Local, e.Remote, e.Action})
	}

	return Data{
		Headers: []string{"Key", "Environment", "Local", "Remote", "Action"},
		Rows:    rows,
	}
}

// DeletionsToTableData converts the deletion preview to table format, one
// row per selected variable with the environments it will be removed from.
func DeletionsToTableData(deletions map[string][]envs.Environment, keys []string) Data {
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		names := make([]string, 0, len(deletions[key]))
		for _, env := range deletions[key] {
			names = append(names, env.String())
		}
		rows = append(rows, []string{key, strings.Join(names, ", ")})
	}

	return Data{
		Headers: []string{"Key", "Environments"},
		Rows:    rows,
	}
}

// ValueCell renders a value for a table cell. Known values are quoted and
// truncated, opaque values keep their marker, absent values collapse to "-".
func ValueCell(v envs.Value) string {
	if v.IsAbsent() {
		return "-"
	}
	content, ok := v.Content()
	if !ok {
		return v.String()
	}
	return fmt.Sprintf("%q", truncate(content, constants.ValuePreviewLength))
}

func presence(set bool) string {
	if set {
		return "yes"
	}
	return "-"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
