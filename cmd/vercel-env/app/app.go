// Package app provides the application context and dependency management
// for the vercel-env CLI. It follows idiomatic Go patterns for CLI
// applications by centralizing configuration, dependency injection, and
// lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/Marian1309/vercel-env/internal/cmd/globals"
	"github.com/Marian1309/vercel-env/internal/config"
	"github.com/Marian1309/vercel-env/internal/reconciler"
	"github.com/Marian1309/vercel-env/internal/store"
	"github.com/Marian1309/vercel-env/internal/vercel"
	"github.com/Marian1309/vercel-env/pkg/constants"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
)

// App represents the vercel-env application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// reconciler wiring, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Global flags bound to the root command
	flags *globals.Flags

	// Logger
	logger *zerolog.Logger

	// Project configuration (lazy-loaded from .vercel-env.yaml)
	mu      sync.Mutex
	project *config.Config
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		flags:   &globals.Flags{},
	}

	// Load configuration
	cfg, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "loading configuration", err)
	}
	app.config = cfg

	// Initialize logger
	logger := NewLogger(cfg)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Flags returns the global flags parsed from the command line.
func (a *App) Flags() *globals.Flags {
	return a.flags
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Project returns the project configuration, loading it lazily from the
// configured config file. A missing file yields the defaults, so every
// command works in an unconfigured project.
func (a *App) Project() (*config.Config, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.project != nil {
		return a.project, nil
	}

	path := a.config.ConfigFile
	if a.flags.Config != "" {
		path = a.flags.Config
	}
	if path == "" {
		path = constants.DefaultConfigFile
	}

	project, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	a.project = project
	return project, nil
}

// Client returns the remote store client. Flags win over VERCEL_ENV_*
// environment settings, which win over the project configuration, and the
// vercel binary is verified to exist so a missing install fails before any
// workflow starts.
func (a *App) Client() (vercel.Client, error) {
	project, err := a.Project()
	if err != nil {
		return nil, err
	}

	binary := project.Vercel.Binary
	scope := project.Vercel.Scope
	if a.config.Bin != "" {
		binary = a.config.Bin
	}
	if a.config.Scope != "" {
		scope = a.config.Scope
	}
	if a.flags.Bin != "" {
		binary = a.flags.Bin
	}
	if a.flags.Scope != "" {
		scope = a.flags.Scope
	}

	client := vercel.New(
		vercel.WithBinary(binary),
		vercel.WithToken(project.Token()),
		vercel.WithScope(scope),
		vercel.WithDir(a.flags.Cwd),
	)
	if err := client.Available(); err != nil {
		return nil, err
	}

	a.Logger().Debug().
		Str("binary", binary).
		Str("scope", scope).
		Bool("token", project.HasToken()).
		Msg("Vercel CLI ready")
	return client, nil
}

// Store returns the local env file store rooted at the configured env
// directory, with VERCEL_ENV_DIR and then the --dir flag taking precedence.
func (a *App) Store() (*store.Local, error) {
	project, err := a.Project()
	if err != nil {
		return nil, err
	}

	dir := project.EnvDir
	if a.config.Dir != "" {
		dir = a.config.Dir
	}
	if a.flags.Dir != "" {
		dir = a.flags.Dir
	}
	return store.NewLocal(dir), nil
}

// Exclusions returns the exclusion policy from the project configuration.
func (a *App) Exclusions() (*envs.Exclusions, error) {
	project, err := a.Project()
	if err != nil {
		return nil, err
	}
	return project.Exclusions(), nil
}

// Reconciler builds a reconciler wired with the configured client, store,
// and exclusion policy. Options passed by the caller are applied after
// the defaults and may override any of them.
func (a *App) Reconciler(opts ...reconciler.Option) (reconciler.Reconciler, error) {
	client, err := a.Client()
	if err != nil {
		return nil, err
	}
	st, err := a.Store()
	if err != nil {
		return nil, err
	}
	exclusions, err := a.Exclusions()
	if err != nil {
		return nil, err
	}

	base := []reconciler.Option{
		reconciler.WithClient(client),
		reconciler.WithStore(st),
		reconciler.WithExclusions(exclusions),
	}
	return reconciler.New(append(base, opts...)...)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) error {
		if cfg == nil {
			return errors.NewValidationError("config", nil, "cannot be nil")
		}
		a.config = cfg
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "cannot be nil")
		}
		a.logger = logger
		return nil
	}
}

// WithProject sets a pre-loaded project configuration, bypassing the
// config file lookup. Used by tests.
func WithProject(project *config.Config) Option {
	return func(a *App) error {
		if project == nil {
			return errors.NewValidationError("project", nil, "cannot be nil")
		}
		a.project = project
		return nil
	}
}
