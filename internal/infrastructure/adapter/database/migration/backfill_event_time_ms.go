package migration

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const backfillBatchSize = 500

// BackfillEventTimeMs fills time_ms for rows written before the column existed,
// deriving it from the stored ISO time
type BackfillEventTimeMs struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillEventTimeMs creates a new migration instance
func NewBackfillEventTimeMs(db *gorm.DB, logger coreport.Logger) *BackfillEventTimeMs {
	return &BackfillEventTimeMs{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *BackfillEventTimeMs) Run(ctx context.Context) error {
	m.logger.Info("Backfilling time_ms on events", nil)

	db := m.db.WithContext(ctx)
	if !db.Migrator().HasColumn(&model.Event{}, "time_ms") {
		if err := db.Migrator().AddColumn(&model.Event{}, "TimeMs"); err != nil {
			m.logger.Error("Failed to add time_ms column", map[string]any{"error": err.Error()})
			return err
		}
	}

	var updated, skipped int
	var rows []model.Event
	err := db.Where(`time_ms = 0 AND "time" <> ?`, entity.FromEpochMillis(0).ISOString()).
		FindInBatches(&rows, backfillBatchSize, func(tx *gorm.DB, _ int) error {
			for _, row := range rows {
				t, err := time.Parse(time.RFC3339Nano, row.Time)
				if err != nil {
					skipped++
					m.logger.Warn("Unreadable event time left unfilled", map[string]any{
						"id":   row.ID,
						"time": row.Time,
					})
					continue
				}
				if err := tx.Model(&model.Event{}).Where("id = ?", row.ID).
					Update("time_ms", t.UnixMilli()).Error; err != nil {
					return err
				}
				updated++
			}
			return nil
		}).Error
	if err != nil {
		m.logger.Error("Failed to backfill time_ms", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Backfilled time_ms on events", map[string]any{
		"updated": updated,
		"skipped": skipped,
	})
	return nil
}
