package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger("production", "info"))
	assert.True(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, InitLogger("development", "debug"))
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))
}

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	require.NoError(t, InitLogger("production", "warn"))
	before := zap.L()

	assert.Error(t, InitLogger("development", "chatty"))
	assert.Same(t, before, zap.L())
}
