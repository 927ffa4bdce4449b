package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskwell/tasks-api/internal/config"
)

func TestSetupConfiguresLevel(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{LogLevel: tc.level})
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.True(t, log.Enabled(context.Background(), tc.enabled))
		})
	}
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := Setup(config.ServerConfig{LogLevel: "verbose"})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestLoggerContextRoundTrip(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))
}

func TestFromContextOrDefaultFallbacks(t *testing.T) {
	ctx := context.Background()

	def := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, def, FromContextOrDefault(ctx, def))

	assert.NotNil(t, FromContextOrDefault(ctx, nil), "falls back to slog.Default")
	assert.Nil(t, FromContext(ctx))
}
