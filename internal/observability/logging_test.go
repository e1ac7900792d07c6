package observability_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickline/tickline/internal/observability"
)

func TestInitLogger(t *testing.T) {
	t.Run("sets default logger", func(t *testing.T) {
		logger := observability.InitLogger(observability.LogConfig{
			Level:       "info",
			Format:      "json",
			ServiceName: "test-service",
			Environment: "test",
		})

		require.NotNil(t, logger)
		assert.Same(t, logger, slog.Default())
	})

	t.Run("debug level enables debug records", func(t *testing.T) {
		logger := observability.InitLogger(observability.LogConfig{
			Level:  "debug",
			Format: "text",
		})

		assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger := observability.InitLogger(observability.LogConfig{
			Level:  "chatty",
			Format: "json",
		})

		assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	})
}

func TestLoggerFromContext(t *testing.T) {
	t.Run("no trace returns default logger", func(t *testing.T) {
		logger := observability.LoggerFromContext(context.Background())

		assert.Same(t, slog.Default(), logger)
	})
}
