// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"os"

	"github.com/Marian1309/vercel-env/internal/cmd/globals"
	"github.com/Marian1309/vercel-env/internal/cmd/table"
	"github.com/Marian1309/vercel-env/pkg/differ"
)

// FormatVariables handles the common pattern of formatting list output.
// This encapsulates the switch logic for different output formats.
func FormatVariables(variables []table.Variable, globalFlags *globals.Flags) error {
	format := DetectFormat(globalFlags.Output)
	formatter := NewFormatter(format)

	// Transform to output format
	var outputData any
	switch format {
	case FormatTable:
		tableData := table.VariablesToTableData(variables)
		outputData = Data{
			Headers:         tableData.Headers,
			Rows:            tableData.Rows,
			ColumnAlignment: tableData.ColumnAlignment,
		}
	default:
		outputData = variables
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatPlan handles the common pattern of formatting a sync plan.
func FormatPlan(records []differ.Record, globalFlags *globals.Flags) error {
	format := DetectFormat(globalFlags.Output)
	formatter := NewFormatter(format)

	// Transform to output format
	var outputData any
	switch format {
	case FormatTable:
		tableData := table.PlanToTableData(records)
		outputData = Data{
			Headers: tableData.Headers,
			Rows:    tableData.Rows,
		}
	default:
		outputData = table.PlanEntries(records)
	}

	return formatter.Format(os.Stdout, outputData)
}
