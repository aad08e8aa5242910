package logger

import (
	"os"
	"strings"

	"github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the encoder, the destination and the starting level
type Options struct {
	Production bool
	Level      core.LogLevel

	// Output is "stdout", "stderr" or a file path; files are rotated
	Output   string
	Rotation RotationOptions
}

// RotationOptions configures the rolling file writer
type RotationOptions struct {
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool
}

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	atom   zap.AtomicLevel
	level  core.LogLevel
}

// NewZapLogger creates a new zap-based logger instance
func NewZapLogger(opts Options) core.Logger {
	var encCfg zapcore.EncoderConfig
	if opts.Production {
		// In production, use a JSON encoder for structured logging
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"

	var encoder zapcore.Encoder
	if opts.Production {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	// Rotated files never get colour codes
	if isFileOutput(opts.Output) && !opts.Production {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	atom := zap.NewAtomicLevelAt(toZapLevel(opts.Level))
	zapCore := zapcore.NewCore(encoder, writerFor(opts), atom)

	return &ZapLogger{
		logger: zap.New(zapCore, zap.AddCaller(), zap.AddCallerSkip(1)),
		atom:   atom,
		level:  opts.Level,
	}
}

// NewDefaultLogger creates a standard logger for the application
func NewDefaultLogger() core.Logger {
	return NewZapLogger(Options{Level: core.LogLevelInfo, Output: "stdout"})
}

// newZapLoggerWithCore wraps an existing core, used to observe output in tests
func newZapLoggerWithCore(zapCore zapcore.Core, level core.LogLevel) *ZapLogger {
	atom := zap.NewAtomicLevelAt(toZapLevel(level))
	return &ZapLogger{
		logger: zap.New(zapCore),
		atom:   atom,
		level:  level,
	}
}

func isFileOutput(output string) bool {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stdout", "stderr":
		return false
	default:
		return true
	}
}

func writerFor(opts Options) zapcore.WriteSyncer {
	switch strings.ToLower(strings.TrimSpace(opts.Output)) {
	case "", "stdout":
		return zapcore.Lock(os.Stdout)
	case "stderr":
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Output,
		MaxSize:    opts.Rotation.MaxSizeMB,  // megabytes
		MaxAge:     opts.Rotation.MaxAgeDays, // days
		MaxBackups: opts.Rotation.MaxBackups,
		LocalTime:  false,
		Compress:   opts.Rotation.Compress,
	})
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zap.DebugLevel
	case core.LogLevelWarn:
		return zap.WarnLevel
	case core.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level = level
	l.atom.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	return l.level
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	if l.level > core.LogLevelDebug {
		return
	}
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	if l.level > core.LogLevelInfo {
		return
	}
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages, including every assumption the parser makes
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	if l.level > core.LogLevelWarn {
		return
	}
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
