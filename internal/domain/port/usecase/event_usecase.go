package usecase

import (
	"context"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
)

// RecordEventRequest describes an incoming event. Time is free text and is normalized
// before storage; an empty Time means now.
type RecordEventRequest struct {
	Dataspace string
	EventType string
	Count     float64
	Time      string
	Props     map[string]any
}

// DayCount is one bucket of a daily histogram
type DayCount struct {
	Day   entity.Instant
	Count float64
}

// EventUseCase defines the event logging operations built on the time parser
type EventUseCase interface {
	// Record normalizes the request's time and stores the event
	Record(ctx context.Context, req RecordEventRequest) (*entity.Event, error)

	// Get returns a stored event
	Get(ctx context.Context, id string) (*entity.Event, error)

	// FindInPeriod returns events whose time falls inside the period named by periodText
	FindInPeriod(ctx context.Context, dataspace, periodText string) ([]*entity.Event, error)

	// DailyHistogram sums event counts per calendar day across the period
	DailyHistogram(ctx context.Context, dataspace, periodText string) ([]DayCount, error)
}
