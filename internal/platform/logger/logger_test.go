package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shifang52221/metrickit-content/internal/config"
)

func TestSetupParsesLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
		log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		require.NoError(t, err, "Setup should accept level %q", level)
		require.NotNil(t, log)
	}
}

func TestSetupFallsBackOnUnknownLevel(t *testing.T) {
	log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "verbose"})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextRoundTrip(t *testing.T) {
	base := slog.Default().With("component", "test")

	ctx := WithContext(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))
}

func TestFromContextOrDefaultFallbacks(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, FromContext(ctx))

	def := slog.Default().With("component", "fallback")
	assert.Same(t, def, FromContextOrDefault(ctx, def))
	assert.NotNil(t, FromContextOrDefault(ctx, nil))
}
