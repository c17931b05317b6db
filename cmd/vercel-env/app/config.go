package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Marian1309/vercel-env/internal/cmd/globals"
	"github.com/Marian1309/vercel-env/pkg/constants"
)

// Config holds the application configuration loaded from environment
// variables and .env files. Flag values are merged in after cobra parses
// the command line, so flags always win.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Project config file (.vercel-env.yaml)
	ConfigFile string

	// Overrides for the project configuration
	Dir   string
	Bin   string
	Scope string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (merged later via UpdateFromFlags)
// 2. Environment variables (VERCEL_ENV_* prefix)
// 3. .env files
// 4. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding) so VERCEL_TOKEN
	// and friends are visible as regular environment variables
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.SetEnvPrefix("VERCEL_ENV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind the credentials the vercel CLI consumes
	bindTokens()

	config := &Config{
		// Ambient settings (VERCEL_ENV_FORMAT, VERCEL_ENV_DIR, ...)
		Format:     viper.GetString("format"),
		ConfigFile: viper.GetString("config"),
		Dir:        viper.GetString("dir"),
		Bin:        viper.GetString("bin"),
		Scope:      viper.GetString("scope"),

		// Logging configuration. LOG_LEVEL is read at level
		// determination time so the -v/-q precedence holds.
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),

		NoColor: os.Getenv("NO_COLOR") != "",
	}

	if config.ConfigFile == "" {
		config.ConfigFile = constants.DefaultConfigFile
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over environment variables.
func (c *Config) UpdateFromFlags(flags *globals.Flags) {
	if flags == nil {
		return
	}

	c.Verbose = flags.Verbose
	c.Quiet = flags.Quiet
	if flags.NoColor {
		c.NoColor = true
	}
	if flags.Output != "" {
		c.Format = flags.Output
	}
	if flags.Config != "" {
		c.ConfigFile = flags.Config
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Dir != "" {
		c.Dir = flags.Dir
	}
	if flags.Bin != "" {
		c.Bin = flags.Bin
	}
	if flags.Scope != "" {
		c.Scope = flags.Scope
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so it wins over the shared .env, matching
// the usual dotenv convention.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindTokens explicitly binds the vercel credential environment variables
// to Viper so they are visible regardless of the VERCEL_ENV prefix.
func bindTokens() {
	tokens := []string{
		"VERCEL_TOKEN",
		"VERCEL_ORG_ID",
		"VERCEL_PROJECT_ID",
	}

	for _, key := range tokens {
		// Two-argument form: the exact variable name, not VERCEL_ENV_<key>
		if err := viper.BindEnv(key, key); err != nil {
			// Not critical, token lookup falls back to os.Getenv
			continue
		}
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
