// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Config   string
	Output   string
	LogLevel string
	Dir      string
	Bin      string
	Scope    string
	Cwd      string
	Quiet    bool
	Verbose  bool
	NoColor  bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.PersistentFlags().StringVar(&flags.Config, "config", "",
		"Config file (default .vercel-env.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.Output, "format", "o", "",
		"Output format: table, json, yaml")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.Dir, "dir", "",
		"Directory holding the local .env files")
	cmd.PersistentFlags().StringVar(&flags.Bin, "bin", "",
		"Vercel CLI binary to invoke")
	cmd.PersistentFlags().StringVar(&flags.Scope, "scope", "",
		"Vercel team or user scope")
	cmd.PersistentFlags().StringVar(&flags.Cwd, "cwd", "",
		"Directory to run the vercel CLI from (where the project is linked)")

	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"Minimal output")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"Verbose output")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"Disable colored output")

	return flags
}
