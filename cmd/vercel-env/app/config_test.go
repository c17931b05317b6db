package app

import (
	"testing"

	"github.com/Marian1309/vercel-env/internal/cmd/globals"
	"github.com/Marian1309/vercel-env/pkg/constants"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	t.Setenv("VERCEL_ENV_CONFIG", "")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	// Note: LogLevel stays empty (triggers precedence logic in logger.go)
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.LogOutput == "" {
		t.Error("LogOutput not set to default")
	}
	if config.ConfigFile != constants.DefaultConfigFile {
		t.Errorf("ConfigFile = %q, want %q", config.ConfigFile, constants.DefaultConfigFile)
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("VERCEL_ENV_FORMAT", "json")
	t.Setenv("VERCEL_ENV_DIR", "env")
	t.Setenv("VERCEL_ENV_SCOPE", "my-team")
	t.Setenv("LOG_OUTPUT", "stdout")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Format != "json" {
		t.Errorf("Format = %q, want %q", config.Format, "json")
	}
	if config.Dir != "env" {
		t.Errorf("Dir = %q, want %q", config.Dir, "env")
	}
	if config.Scope != "my-team" {
		t.Errorf("Scope = %q, want %q", config.Scope, "my-team")
	}
	if config.LogOutput != "stdout" {
		t.Errorf("LogOutput = %q, want %q", config.LogOutput, "stdout")
	}
}

// TestConfig_NoColorEnv verifies the NO_COLOR convention is honored.
func TestConfig_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !config.NoColor {
		t.Error("NO_COLOR environment variable not honored")
	}
}

// TestConfig_UpdateFromFlags verifies flags take precedence over the
// environment-derived values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:     "json",
		ConfigFile: constants.DefaultConfigFile,
		Dir:        "env",
		Scope:      "env-scope",
	}

	config.UpdateFromFlags(&globals.Flags{
		Output:   "yaml",
		Config:   "custom.yaml",
		LogLevel: "debug",
		Bin:      "vercel-canary",
		Verbose:  true,
	})

	if config.Format != "yaml" {
		t.Errorf("Format = %q, want %q", config.Format, "yaml")
	}
	if config.ConfigFile != "custom.yaml" {
		t.Errorf("ConfigFile = %q, want %q", config.ConfigFile, "custom.yaml")
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", config.LogLevel, "debug")
	}
	if config.Bin != "vercel-canary" {
		t.Errorf("Bin = %q, want %q", config.Bin, "vercel-canary")
	}
	if !config.Verbose {
		t.Error("Verbose flag not applied")
	}

	// Empty flag values keep the existing settings
	if config.Dir != "env" {
		t.Errorf("Dir = %q, want %q (empty flag must not clear it)", config.Dir, "env")
	}
	if config.Scope != "env-scope" {
		t.Errorf("Scope = %q, want %q (empty flag must not clear it)", config.Scope, "env-scope")
	}
}

// TestConfig_UpdateFromFlagsNil verifies a nil flag set is a no-op.
func TestConfig_UpdateFromFlagsNil(t *testing.T) {
	config := &Config{Format: "table"}
	config.UpdateFromFlags(nil)

	if config.Format != "table" {
		t.Errorf("Format = %q, want %q", config.Format, "table")
	}
}
