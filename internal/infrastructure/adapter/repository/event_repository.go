package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var _ persistence.EventRepository = (*EventRepository)(nil)

// EventRepository stores events through GORM. Times are written as canonical ISO
// strings and read back through the time parser.
type EventRepository struct {
	db              *gorm.DB
	parser          usecase.TimeParser
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	errorMapper     *database.ErrorMapper
	metrics         *database.MetricsCollector
	retry           database.RetryConfig
}

// NewEventRepository creates a new EventRepository instance
func NewEventRepository(db *gorm.DB, parser usecase.TimeParser, timeProvider coreport.TimeProvider, logger coreport.Logger) *EventRepository {
	return &EventRepository{
		db:              db,
		parser:          parser,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		errorMapper:     database.NewErrorMapper(),
		metrics:         database.NewMetricsCollector(logger, timeProvider),
		retry:           database.DefaultRetryConfig(),
	}
}

// Create inserts the event; an existing ID yields ErrDuplicateEvent
func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	row, err := model.EventFromEntity(event)
	if err != nil {
		r.logger.Error("Failed to encode event props", map[string]any{
			"event_id": event.ID,
			"error":    err.Error(),
		})
		return fmt.Errorf("%w: props are not serializable: %s", errs.ErrInvalidRequest, err.Error())
	}

	_, err = r.metrics.MeasureQuery(ctx, "create_event", func() (int64, error) {
		var rows int64
		err := database.RetryOnTransientError(ctx, r.retry, func() error {
			result := r.db.WithContext(ctx).Create(row)
			rows = result.RowsAffected
			return result.Error
		}, r.logger)
		return rows, err
	})
	if err != nil {
		return r.handleDatabaseError("creating event", err, event.ID)
	}

	r.logger.Debug("Event stored", map[string]any{
		"event_id":  event.ID,
		"dataspace": event.Dataspace,
		"time":      row.Time,
	})
	return nil
}

// GetByID loads one event
func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	var row model.Event
	_, err := r.metrics.MeasureQuery(ctx, "get_event", func() (int64, error) {
		result := r.db.WithContext(ctx).Where("id = ?", id).First(&row)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("getting event", err, id)
	}

	return r.modelToEntity(&row)
}

// FindInInterval returns the dataspace's events whose time lies in [start, end) of
// period, oldest first. A point period matches its exact instant.
func (r *EventRepository) FindInInterval(ctx context.Context, dataspace string, period entity.Interval) ([]*entity.Event, error) {
	var rows []model.Event
	_, err := r.metrics.MeasureQuery(ctx, "find_events_in_interval", func() (int64, error) {
		query := r.db.WithContext(ctx).Where("dataspace = ?", dataspace)
		if period.IsPoint() {
			query = query.Where("time_ms = ?", period.Start().UnixMilli())
		} else {
			query = query.Where("time_ms >= ? AND time_ms < ?", period.Start().UnixMilli(), period.End().UnixMilli())
		}
		result := query.
			Order("time_ms ASC").
			Order("id ASC").
			Find(&rows)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("querying events", err, dataspace)
	}

	events := make([]*entity.Event, 0, len(rows))
	for i := range rows {
		event, err := r.modelToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// modelToEntity rebuilds the entity, re-parsing the stored time
func (r *EventRepository) modelToEntity(row *model.Event) (*entity.Event, error) {
	at, err := r.parser.Parse(row.Time)
	if err != nil {
		r.logger.Error("Stored event time is unreadable", map[string]any{
			"event_id": row.ID,
			"time":     row.Time,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: stored time %q of event %s: %s", errs.ErrInternalServer, row.Time, row.ID, err.Error())
	}
	if at.UnixMilli() != row.TimeMs {
		r.logger.Warn("Stored event time disagrees with its index column", map[string]any{
			"event_id": row.ID,
			"time":     row.Time,
			"time_ms":  row.TimeMs,
		})
	}

	props, err := row.DecodeProps()
	if err != nil {
		return nil, fmt.Errorf("%w: props of event %s: %s", errs.ErrInternalServer, row.ID, err.Error())
	}

	event, err := entity.NewEvent(row.ID, row.Dataspace, row.EventType, row.Count, at, row.RawTime, props, entity.FromTime(row.CreatedAt))
	if err != nil {
		r.logger.Error("Failed to create event entity", map[string]any{
			"event_id": row.ID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create event entity: %s", errs.ErrInternalServer, err.Error())
	}
	return event, nil
}

// handleDatabaseError standardizes database error handling
func (r *EventRepository) handleDatabaseError(operation string, err error, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Event not found", map[string]any{"key": key})
		return errs.ErrEventNotFound
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"key":   key,
		"error": err.Error(),
		"kind":  string(r.errorClassifier.Classify(err)),
	})

	switch r.errorClassifier.Classify(err) {
	case DuplicateKeyError:
		return fmt.Errorf("%w: %s", errs.ErrDuplicateEvent, key)
	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case LockError, TransientError, ConnectionError:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return r.errorMapper.MapError(err, operation)
}
