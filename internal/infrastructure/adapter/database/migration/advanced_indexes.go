package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings.
// On other drivers its methods do nothing.
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
	driver string
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger, driver string) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
		driver: driver,
	}
}

func (m *AdvancedIndexManager) enabled() bool {
	return m.driver == "postgres"
}

// CreateAdvancedIndexes creates the PostgreSQL-only indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	if !m.enabled() {
		m.logger.Debug("Skipping advanced indexes", map[string]any{"driver": m.driver})
		return nil
	}
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	db := m.db.WithContext(ctx)

	// BRIN suits the mostly append-in-time-order shape of event logs
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_events_time_ms_brin
		ON events USING BRIN (time_ms)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on time_ms", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_events_created_at
		ON events (created_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL table settings; failures are logged, not returned
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	if !m.enabled() {
		return
	}
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)
	if err := db.Exec(`ALTER TABLE events SET (fillfactor = 100)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for events table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE events ALTER COLUMN dataspace SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for dataspace", map[string]any{
			"error": err.Error(),
		})
	}
}
