package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marian1309/vercel-env/internal/config"
	"github.com/Marian1309/vercel-env/pkg/envs"
	pkgerrors "github.com/Marian1309/vercel-env/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".vercel-env.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), ".vercel-env.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.EnvDir)
	assert.Equal(t, "vercel", cfg.Vercel.Binary)
	assert.Equal(t, "VERCEL_TOKEN", cfg.Vercel.TokenEnv)
	assert.Empty(t, cfg.Exclude.All)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
env_dir: envs
vercel:
  binary: vercel-beta
  scope: acme
  token_env: ACME_VERCEL_TOKEN
exclude:
  all:
    - INTERNAL_FLAG
  production:
    - DEBUG_MODE
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "envs", cfg.EnvDir)
	assert.Equal(t, "vercel-beta", cfg.Vercel.Binary)
	assert.Equal(t, "acme", cfg.Vercel.Scope)
	assert.Equal(t, []string{"INTERNAL_FLAG"}, cfg.Exclude.All)
	assert.Equal(t, []string{"DEBUG_MODE"}, cfg.Exclude.Production)
}

func TestLoadRejectsUnknownSections(t *testing.T) {
	path := writeConfig(t, `
exclude:
  staging:
    - NOPE
`)

	_, err := config.Load(path)
	require.Error(t, err)

	var parseErr *pkgerrors.ParseError
	assert.True(t, errors.As(err, &parseErr), "unknown environment name must fail the strict parse")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "exclude: [unclosed\n")

	_, err := config.Load(path)
	require.Error(t, err)

	var parseErr *pkgerrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestLoadFillsEmptyFields(t *testing.T) {
	path := writeConfig(t, `
vercel:
  scope: acme
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.EnvDir, "empty env_dir falls back to default")
	assert.Equal(t, "vercel", cfg.Vercel.Binary, "empty binary falls back to default")
}

func TestExclusions(t *testing.T) {
	path := writeConfig(t, `
exclude:
  all:
    - EVERYWHERE
  preview:
    - PREVIEW_ONLY
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	x := cfg.Exclusions()

	for _, env := range envs.All() {
		assert.True(t, x.Excluded(env, "EVERYWHERE"))
		assert.True(t, x.Excluded(env, "VERCEL_OIDC_TOKEN"), "built-ins survive config merge")
	}
	assert.True(t, x.Excluded(envs.Preview, "PREVIEW_ONLY"))
	assert.False(t, x.Excluded(envs.Production, "PREVIEW_ONLY"))
}

func TestToken(t *testing.T) {
	t.Run("reads configured env var", func(t *testing.T) {
		t.Setenv("CUSTOM_TOKEN_VAR", "tok_123")
		cfg := config.Default()
		cfg.Vercel.TokenEnv = "CUSTOM_TOKEN_VAR"
		assert.Equal(t, "tok_123", cfg.Token())
	})

	t.Run("prefers values bound into viper", func(t *testing.T) {
		viper.Set("BOUND_TOKEN_VAR", "tok_viper")
		t.Cleanup(viper.Reset)

		t.Setenv("BOUND_TOKEN_VAR", "tok_env")
		cfg := config.Default()
		cfg.Vercel.TokenEnv = "BOUND_TOKEN_VAR"
		assert.Equal(t, "tok_viper", cfg.Token())
	})

	t.Run("empty token env means CLI login", func(t *testing.T) {
		cfg := config.Default()
		cfg.Vercel.TokenEnv = ""
		assert.Equal(t, "", cfg.Token())
	})
}

func TestHasToken(t *testing.T) {
	cfg := config.Default()
	cfg.Vercel.TokenEnv = "VERCEL_ENV_TEST_TOKEN_VAR"
	assert.False(t, cfg.HasToken())

	t.Setenv("VERCEL_ENV_TEST_TOKEN_VAR", "tok")
	assert.True(t, cfg.HasToken())
}
