package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Marian1309/vercel-env/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("WithEnvironment adds environment to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithEnvironment(ctx, "production")

		// Extract logger and verify it has the environment field
		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithStore adds store to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithStore(ctx, "remote")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithOperation adds operation to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithOperation(ctx, "fetch_remote")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithKey adds variable name to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithKey(ctx, "DATABASE_URL")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithFields adds custom fields to context", func(t *testing.T) {
		ctx := context.Background()
		fields := map[string]interface{}{
			"key":    "API_SECRET",
			"run_id": "abc-def",
		}
		ctx = logging.WithFields(ctx, fields)

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("FromContext returns logger from context", func(t *testing.T) {
		ctx := context.Background()

		// First call should create a new logger
		logger1 := logging.FromContext(ctx)
		assert.NotNil(t, logger1)

		// Add environment and get logger again
		ctx = logging.WithEnvironment(ctx, "preview")
		logger2 := logging.FromContext(ctx)
		assert.NotNil(t, logger2)
	})

	t.Run("Ctx extracts logger from context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithEnvironment(ctx, "development")

		logger := logging.Ctx(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithRunID tags logger and context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithRunID(ctx, "run-123")

		assert.Equal(t, "run-123", logging.RunID(ctx))
		assert.NotNil(t, logging.FromContext(ctx))
	})

	t.Run("RunID on bare context is empty", func(t *testing.T) {
		assert.Equal(t, "", logging.RunID(context.Background()))
	})

	t.Run("chaining context functions", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithEnvironment(ctx, "production")
		ctx = logging.WithStore(ctx, "local")
		ctx = logging.WithOperation(ctx, "apply")
		ctx = logging.WithKey(ctx, "REDIS_URL")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})
}
