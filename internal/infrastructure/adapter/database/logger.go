package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a GORM logger that writes through the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a GORM logger at the given level name
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      gormLogLevel(level),
		slowThreshold: time.Duration(200 * coreport.Millisecond),
		timeProvider:  timeProvider,
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// WithSlowThreshold returns a new logger with updated slow threshold
func (l *DatabaseLogger) WithSlowThreshold(threshold time.Duration) logger.Interface {
	newLogger := *l
	newLogger.slowThreshold = threshold
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(_ context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(_ context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Trace logs SQL operations: errors at error level, slow queries as warnings, the rest at debug
func (l *DatabaseLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	var elapsed time.Duration
	if l.timeProvider != nil {
		elapsed = l.timeProvider.Since(begin).Std()
	} else {
		elapsed = time.Since(begin)
	}

	sql, rows := fc()
	fields := map[string]any{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
		"source":  "database",
	}
	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if tableName := extractTableName(sql); tableName != "" {
		fields["table"] = tableName
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	switch {
	case err != nil && !IsRecordNotFound(err) && l.logLevel >= logger.Error:
		l.coreLogger.Error("SQL Error", fields)
	case elapsed > l.slowThreshold && l.slowThreshold > 0 && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}

// extractQueryType returns the leading SQL verb, or "" if it is not a plain CRUD verb
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))
	for _, verb := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sqlUpper, verb) {
			return verb
		}
	}
	return ""
}

// extractTableName is a best-effort read of the first table after FROM, INTO or UPDATE
func extractTableName(sql string) string {
	sql = strings.TrimSpace(sql)
	sqlUpper := strings.ToUpper(sql)

	var fromIndex int
	switch {
	case strings.Contains(sqlUpper, " FROM "):
		fromIndex = strings.Index(sqlUpper, " FROM ") + 6
	case strings.Contains(sqlUpper, " INTO "):
		fromIndex = strings.Index(sqlUpper, " INTO ") + 6
	case strings.HasPrefix(sqlUpper, "UPDATE "):
		fromIndex = 7
	default:
		return ""
	}

	remainder := strings.Trim(sql[fromIndex:], " ")
	if spaceIndex := strings.IndexAny(remainder, " ("); spaceIndex != -1 {
		remainder = remainder[:spaceIndex]
	}
	return strings.Trim(remainder, "`\"")
}
