package database

import (
	"context"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/time"
)

// TestDBManager runs a migrated in-memory sqlite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager over a private in-memory database
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:        DriverSQLite,
		Path:          ":memory:",
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect opens the database and runs every migration, failing the test on error
func (m *TestDBManager) Connect(t *testing.T) {
	t.Helper()

	if _, err := m.Manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := m.Manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { m.Close(t) })
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// TruncateAllTables empties the events table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Where("1 = 1").Delete(&model.Event{}).Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// InsertRawEvent stores a row as-is, bypassing the repository
func (m *TestDBManager) InsertRawEvent(t *testing.T, row *model.Event) {
	t.Helper()

	if err := m.Manager.DB().Create(row).Error; err != nil {
		t.Fatalf("Failed to insert test event: %v", err)
	}
}
