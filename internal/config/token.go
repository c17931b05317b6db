package config

import (
	"os"

	"github.com/spf13/viper"
)

// envString reads key from viper with a process-environment fallback. The
// application layer binds the well-known token variables into viper at
// startup; anything else, like values exported by the shell or loaded from
// .env files, is only visible through os.Getenv.
func envString(key string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return os.Getenv(key)
}

// Token resolves the CLI token from the configured environment variable.
// An empty result means the CLI's own stored login is used.
func (c *Config) Token() string {
	if c.Vercel.TokenEnv == "" {
		return ""
	}
	return envString(c.Vercel.TokenEnv)
}

// HasToken reports whether a token is configured without exposing it.
func (c *Config) HasToken() bool {
	return c.Token() != ""
}
