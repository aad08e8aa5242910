package logger

import (
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
)

// NoopLogger discards everything. The CLI uses it unless --verbose is set.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel records the level so GetLevel reflects it
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

func (l *NoopLogger) Debug(string, map[string]any) {}

func (l *NoopLogger) Info(string, map[string]any) {}

func (l *NoopLogger) Warn(string, map[string]any) {}

func (l *NoopLogger) Error(string, map[string]any) {}

// Flush has nothing to write
func (l *NoopLogger) Flush() error {
	return nil
}
