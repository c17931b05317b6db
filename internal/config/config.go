// Package config loads the project-level settings file for vercel-env.
//
// Settings live in .vercel-env.yaml at the project root:
//
//	env_dir: .
//	vercel:
//	  binary: vercel
//	  scope: acme
//	  token_env: VERCEL_TOKEN
//	exclude:
//	  all:
//	    - INTERNAL_FLAG
//	  production:
//	    - DEBUG_MODE
//
// A missing file means defaults; a malformed file is an error. Parsing is
// strict so a typo in a section name fails loudly instead of silently
// dropping an exclusion.
package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/Marian1309/vercel-env/pkg/constants"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
)

// Config is the parsed project configuration.
type Config struct {
	// EnvDir is the directory holding the local env files, relative to
	// the project root.
	EnvDir string `yaml:"env_dir"`

	// Vercel configures how the remote CLI is invoked.
	Vercel VercelConfig `yaml:"vercel"`

	// Exclude lists keys the sync must leave alone.
	Exclude ExcludeConfig `yaml:"exclude"`
}

// VercelConfig selects the CLI binary and its scope.
type VercelConfig struct {
	Binary   string `yaml:"binary"`
	Scope    string `yaml:"scope"`
	TokenEnv string `yaml:"token_env"`
}

// ExcludeConfig holds exclusion lists: one applied everywhere plus one per
// environment. The section names are the canonical environment names, so a
// typo fails the strict parse.
type ExcludeConfig struct {
	All         []string `yaml:"all"`
	Development []string `yaml:"development"`
	Preview     []string `yaml:"preview"`
	Production  []string `yaml:"production"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		EnvDir: constants.DefaultEnvDir,
		Vercel: VercelConfig{
			Binary:   "vercel",
			TokenEnv: "VERCEL_TOKEN",
		},
	}
}

// Load reads the configuration at path. A missing file returns defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, errors.NewParseError("yaml", path, err.Error(), err)
	}
	if cfg.EnvDir == "" {
		cfg.EnvDir = constants.DefaultEnvDir
	}
	if cfg.Vercel.Binary == "" {
		cfg.Vercel.Binary = "vercel"
	}
	return cfg, nil
}

// Exclusions materializes the exclusion policy, built-ins included.
func (c *Config) Exclusions() *envs.Exclusions {
	return envs.NewExclusions(c.Exclude.All, map[envs.Environment][]string{
		envs.Development: c.Exclude.Development,
		envs.Preview:     c.Exclude.Preview,
		envs.Production:  c.Exclude.Production,
	})
}
