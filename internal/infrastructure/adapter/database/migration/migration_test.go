package migration

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/time"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newManager(db *gorm.DB) *MigrationManager {
	tp := timeprovider.NewFixedTimeProvider(time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC))
	return NewMigrationManager(db, logger.NewNoopLogger(), tp, "sqlite")
}

func TestMigrateAll_FreshDatabase(t *testing.T) {
	db := openMemoryDB(t)
	m := newManager(db)

	version, err := m.GetCurrentVersion(context.Background())
	require.Error(t, err, "version table does not exist yet")
	assert.Empty(t, version)

	require.NoError(t, m.MigrateAll(context.Background()))

	version, err = m.GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)
	assert.True(t, db.Migrator().HasIndex(&model.Event{}, "idx_events_dataspace_type"))
}

func TestMigrateAll_UpgradeBackfillsTimeMs(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, db.AutoMigrate(&model.MigrationVersion{}, &model.Event{}))
	require.NoError(t, db.Create(&model.MigrationVersion{
		Version:   "1.0.0",
		AppliedAt: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	created := time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&[]model.Event{
		{ID: "a", Dataspace: "web", EventType: "view", Count: 1, Time: "2009-11-18T10:30:00Z", CreatedAt: created},
		{ID: "b", Dataspace: "web", EventType: "view", Count: 1, Time: "garbage", CreatedAt: created},
		{ID: "c", Dataspace: "web", EventType: "view", Count: 1, Time: "2020-01-01T00:00:00Z", TimeMs: 42, CreatedAt: created},
	}).Error)

	require.NoError(t, newManager(db).MigrateAll(context.Background()))

	timeMs := func(id string) int64 {
		var row model.Event
		require.NoError(t, db.Where("id = ?", id).First(&row).Error)
		return row.TimeMs
	}
	assert.Equal(t, time.Date(2009, 11, 18, 10, 30, 0, 0, time.UTC).UnixMilli(), timeMs("a"))
	assert.Equal(t, int64(0), timeMs("b"))
	assert.Equal(t, int64(42), timeMs("c"))
}

func TestAdvancedIndexManager_SkipsNonPostgres(t *testing.T) {
	db := openMemoryDB(t)
	m := NewAdvancedIndexManager(db, logger.NewNoopLogger(), "sqlite")

	assert.NoError(t, m.CreateAdvancedIndexes(context.Background()))
	m.CreatePerformanceTweaks(context.Background())
}
