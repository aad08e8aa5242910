package persistence

import (
	"context"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
)

// EventRepository stores time-stamped events. Event times are persisted in their
// canonical ISO form and re-parsed on the way back.
type EventRepository interface {
	// Create saves a new event
	//
	// Possible errors:
	// - ErrDuplicateEvent: If an event with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, event *entity.Event) error

	// GetByID retrieves an event by its ID
	//
	// Possible errors:
	// - ErrEventNotFound: If no event has the given ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Event, error)

	// FindInInterval returns the events of a dataspace whose time lies inside the
	// interval. The end is excluded unless the interval is a single point. Results are
	// ordered by time
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	FindInInterval(ctx context.Context, dataspace string, interval entity.Interval) ([]*entity.Event, error)
}
