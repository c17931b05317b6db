// Package vercel wraps the Vercel CLI as the remote variable store.
//
// Every operation shells out to the locally installed vercel binary and is
// scoped to one deployment environment. Failures carry the full command
// line and captured output so the operator can re-run the exact command by
// hand. Well-known failure modes (variable already exists, variable not
// found) are mapped onto the shared error sentinels so callers can branch
// on them without string matching.
package vercel

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Marian1309/vercel-env/pkg/constants"
	"github.com/Marian1309/vercel-env/pkg/envfile"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
	"github.com/Marian1309/vercel-env/pkg/logging"
)

// DefaultBinary is the vercel CLI executable name resolved via PATH.
const DefaultBinary = "vercel"

// Client is the remote store surface the sync workflows depend on.
type Client interface {
	// List returns just the variable names defined for environment.
	List(ctx context.Context, environment envs.Environment) ([]string, error)

	// FetchAll returns every variable for environment with known values.
	FetchAll(ctx context.Context, environment envs.Environment) (*envs.Mapping, error)

	// Add creates key in environment with the given value. If the key
	// already exists remotely the returned error matches
	// errors.ErrAlreadyExists.
	Add(ctx context.Context, key string, environment envs.Environment, value string) error

	// Remove deletes key from environment. If the key does not exist the
	// returned error matches errors.ErrNotFound.
	Remove(ctx context.Context, key string, environment envs.Environment) error
}

// runFunc executes one CLI invocation and returns its combined output.
type runFunc func(ctx context.Context, dir string, stdin io.Reader, name string, args ...string) ([]byte, error)

// CLI is the vercel-binary-backed implementation of Client.
type CLI struct {
	binary string
	dir    string
	token  string
	scope  string
	run    runFunc
}

// Option configures a CLI client.
type Option func(*CLI)

// WithBinary overrides the vercel executable name or path.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithDir sets the working directory for CLI invocations. The vercel CLI
// resolves the linked project from this directory.
func WithDir(dir string) Option {
	return func(c *CLI) {
		c.dir = dir
	}
}

// WithToken sets an explicit authentication token, bypassing the CLI's
// stored login.
func WithToken(token string) Option {
	return func(c *CLI) {
		c.token = token
	}
}

// WithScope sets the team or user scope for every invocation.
func WithScope(scope string) Option {
	return func(c *CLI) {
		c.scope = scope
	}
}

// New creates a vercel CLI client.
func New(opts ...Option) *CLI {
	c := &CLI{
		binary: DefaultBinary,
		run:    defaultRun,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available verifies the vercel binary can be found. It should be called
// once before any workflow; the returned DependencyError includes the
// install command.
func (c *CLI) Available() error {
	if _, err := exec.LookPath(c.binary); err != nil {
		return &errors.DependencyError{
			Dependency: c.binary,
			Message:    "CLI not found in PATH, install with: npm i -g vercel",
		}
	}
	return nil
}

// List returns variable names for environment using a names-only listing.
// Values are never part of the listing output, so this call succeeds even
// when decryption or pull is unavailable.
func (c *CLI) List(ctx context.Context, environment envs.Environment) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()

	args := c.withGlobalFlags("env", "ls", environment.String())
	output, err := c.run(ctx, c.dir, nil, c.binary, args...)
	if err != nil {
		return nil, errors.NewProcessError("list variables", c.commandLine(args), capOutput(output), err)
	}

	names, err := parseListing(string(output))
	if err != nil {
		return nil, errors.NewProcessError("parse listing", c.commandLine(args), capOutput(output), err)
	}
	return names, nil
}

// FetchAll pulls the full environment into a temp file and parses it.
// The temp file is removed before returning, whatever happens.
func (c *CLI) FetchAll(ctx context.Context, environment envs.Environment) (*envs.Mapping, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.PullTimeout)
	defer cancel()

	tmp, err := os.CreateTemp("", "vercel_env_*.env")
	if err != nil {
		return nil, errors.WrapIO("create", "temp env file", err)
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	args := c.withGlobalFlags("env", "pull", tmpName, "--environment", environment.String(), "--yes")
	if output, err := c.run(ctx, c.dir, nil, c.binary, args...); err != nil {
		return nil, errors.NewProcessError("pull environment", c.commandLine(args), capOutput(output), err)
	}

	mapping, err := envfile.Read(tmpName)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().
		Str("environment", environment.String()).
		Int("keys", mapping.Len()).
		Msg("pulled remote environment")
	return mapping, nil
}

// Add creates key in environment. The value is piped on stdin so it never
// appears in the process table or shell history.
func (c *CLI) Add(ctx context.Context, key string, environment envs.Environment, value string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()

	args := c.withGlobalFlags("env", "add", key, environment.String())
	output, err := c.run(ctx, c.dir, strings.NewReader(value), c.binary, args...)
	if err != nil {
		if matchesAlreadyExists(string(output)) {
			err = errors.ErrAlreadyExists
		}
		return errors.NewProcessError("add variable", c.commandLine(args), capOutput(output), err)
	}
	return nil
}

// Remove deletes key from environment without an interactive confirmation.
func (c *CLI) Remove(ctx context.Context, key string, environment envs.Environment) error {
	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()

	args := c.withGlobalFlags("env", "rm", key, environment.String(), "--yes")
	output, err := c.run(ctx, c.dir, nil, c.binary, args...)
	if err != nil {
		if matchesNotFound(string(output)) {
			err = errors.ErrNotFound
		}
		return errors.NewProcessError("remove variable", c.commandLine(args), capOutput(output), err)
	}
	return nil
}

// withGlobalFlags appends token and scope flags when configured.
func (c *CLI) withGlobalFlags(args ...string) []string {
	if c.token != "" {
		args = append(args, "--token", c.token)
	}
	if c.scope != "" {
		args = append(args, "--scope", c.scope)
	}
	return args
}

// capOutput bounds captured process output before it is embedded in an
// error. Failure matching always runs on the full output.
func capOutput(output []byte) string {
	if len(output) <= constants.OutputBufferSize {
		return string(output)
	}
	return string(output[:constants.OutputBufferSize]) + "\n[output truncated]"
}

// commandLine renders the invocation for error messages, with the token
// value masked.
func (c *CLI) commandLine(args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, c.binary)
	mask := false
	for _, arg := range args {
		if mask {
			parts = append(parts, "********")
			mask = false
			continue
		}
		if arg == "--token" {
			mask = true
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// defaultRun executes the command and captures combined output.
func defaultRun(ctx context.Context, dir string, stdin io.Reader, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = stdin
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("running %s: %w", name, err)
	}
	return output, nil
}
