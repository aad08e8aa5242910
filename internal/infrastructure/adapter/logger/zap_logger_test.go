package logger

import (
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Levels(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := newZapLoggerWithCore(obsCore, core.LogLevelWarn)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("Ambiguous time input", map[string]any{"heuristic": "day_month_order"})
	l.Error("failed", map[string]any{"error": "boom"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Ambiguous time input", entries[0].Message)
	assert.Equal(t, "day_month_order", entries[0].ContextMap()["heuristic"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Debug("shown", nil)
	assert.Equal(t, 1, logs.FilterMessage("shown").Len())
}

func TestNewZapLogger(t *testing.T) {
	t.Run("Stdout", func(t *testing.T) {
		l := NewZapLogger(Options{Production: true, Level: core.LogLevelError})
		assert.Equal(t, core.LogLevelError, l.GetLevel())
	})

	t.Run("Rotated file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timenorm.log")
		l := NewZapLogger(Options{
			Level:    core.LogLevelInfo,
			Output:   path,
			Rotation: RotationOptions{MaxSizeMB: 1, MaxBackups: 1},
		})
		l.Info("written", map[string]any{"k": 1})
		_ = l.Flush()
		assert.FileExists(t, path)
	})
}

func TestIsFileOutput(t *testing.T) {
	assert.False(t, isFileOutput(""))
	assert.False(t, isFileOutput("STDOUT"))
	assert.False(t, isFileOutput("stderr"))
	assert.True(t, isFileOutput("/var/log/timenorm.log"))
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Info("ignored", nil)
	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	assert.NoError(t, l.Flush())
}
