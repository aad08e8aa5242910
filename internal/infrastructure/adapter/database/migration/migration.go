package migration

import (
	"context"
	"errors"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	driver           string
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager for the named driver
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, driver string) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		driver:           driver,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger, driver),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion; a database already there is left alone
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"driver":         m.driver,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Current database version", map[string]any{
		"version": currentVersion,
	})

	if err := m.autoMigrateModels(ctx); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.runVersionedMigrations(ctx, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.createIndexes(ctx); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
		m.logger.Error("Failed to create advanced indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.advancedIndexMgr.CreatePerformanceTweaks(ctx)

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the most recently applied version, or "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now().UTC(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(&model.Event{})
}

// runVersionedMigrations applies the steps between currentVersion and CurrentSchemaVersion
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		// fresh database: AutoMigrate already built the current shape
		return nil
	case "1.0.0":
		return NewBackfillEventTimeMs(m.db, m.logger).Run(ctx)
	}

	m.logger.Warn("Unknown schema version, relying on auto-migration", map[string]any{
		"version": currentVersion,
	})
	return nil
}

func (m *MigrationManager) createIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	db := m.db.WithContext(ctx)
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_dataspace_type ON events (dataspace, event_type)").Error; err != nil {
		return err
	}

	return db.Exec("CREATE INDEX IF NOT EXISTS idx_migration_versions_applied_at ON migration_versions (applied_at)").Error
}
