// Package main provides the entry point for the vercel-env CLI tool.
package main

import (
	"context"
	"os"

	"github.com/Marian1309/vercel-env/cmd/vercel-env/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// Create app instance
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context cancelled on Ctrl-C so a sync in flight stops
	// between actions instead of mid-command
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	// Execute with context
	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
