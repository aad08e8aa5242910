package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/timenorm/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)
	query := func() (string, int64) { return `SELECT * FROM "events" WHERE id = 'a'`, 1 }

	t.Run("regular query logs at debug", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.On("Since", begin).Return(coreport.Millisecond)
		logger.On("Debug", "SQL Query", mock.MatchedBy(func(f map[string]any) bool {
			return f["type"] == "SELECT" && f["table"] == "events" && f["rows"] == int64(1)
		})).Once()

		NewDatabaseLogger(logger, tp, "info").Trace(context.Background(), begin, query, nil)
	})

	t.Run("slow query warns", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.On("Since", begin).Return(coreport.Second)
		logger.On("Warn", "Slow SQL Query", mock.Anything).Once()

		NewDatabaseLogger(logger, tp, "warn").Trace(context.Background(), begin, query, nil)
	})

	t.Run("errors log at error except not found", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.On("Since", begin).Return(coreport.Millisecond)
		logger.On("Error", "SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["error"] == "boom"
		})).Once()
		logger.On("Debug", "SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(logger, tp, "info")
		l.Trace(context.Background(), begin, query, errors.New("boom"))
		l.Trace(context.Background(), begin, query, gorm.ErrRecordNotFound)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)

		NewDatabaseLogger(logger, tp, "silent").Trace(context.Background(), begin, query, errors.New("boom"))
	})
}

func TestDatabaseLogger_LogMode(t *testing.T) {
	logger := coremocks.NewMockLogger(t)
	logger.On("Warn", "pool at 3", map[string]any{"source": "database"}).Once()

	l := NewDatabaseLogger(logger, nil, "silent").LogMode(gormlogger.Warn)
	l.Info(context.Background(), "ignored %d", 1)
	l.Warn(context.Background(), "pool at %d", 3)
}

func TestExtractQueryParts(t *testing.T) {
	tests := []struct {
		sql, verb, table string
	}{
		{`SELECT * FROM "events" WHERE dataspace = ?`, "SELECT", "events"},
		{"INSERT INTO `events` (`id`) VALUES (?)", "INSERT", "events"},
		{`UPDATE events SET time_ms = 1`, "UPDATE", "events"},
		{`delete from migration_versions`, "DELETE", "migration_versions"},
		{`PRAGMA table_info(events)`, "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.verb, extractQueryType(tt.sql), tt.sql)
		assert.Equal(t, tt.table, extractTableName(tt.sql), tt.sql)
	}
}
