package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
)

// Event is a counted, time-stamped occurrence within a dataspace, e.g. a page view
// logged by an analytics collector
type Event struct {
	ID        string         // Unique identifier
	Dataspace string         // Namespace the event belongs to
	EventType string         // Event kind, e.g. "pageview"
	Count     float64        // How many occurrences this record stands for
	Time      Instant        // When it happened, normalized
	RawTime   string         // The time text as received, kept for audit
	Props     map[string]any // Free-form properties
	CreatedAt Instant        // When it was recorded
}

// NewEvent validates and assembles an event
func NewEvent(id, dataspace, eventType string, count float64, at Instant, rawTime string, props map[string]any, createdAt Instant) (*Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: event ID cannot be empty", errs.ErrInvalidRequest)
	}
	if strings.TrimSpace(dataspace) == "" {
		return nil, fmt.Errorf("%w: dataspace cannot be empty", errs.ErrInvalidRequest)
	}
	if strings.TrimSpace(eventType) == "" {
		return nil, fmt.Errorf("%w: event type cannot be empty", errs.ErrInvalidRequest)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: count cannot be negative", errs.ErrInvalidRequest)
	}
	if props == nil {
		props = map[string]any{}
	}
	return &Event{
		ID:        id,
		Dataspace: strings.ToLower(strings.TrimSpace(dataspace)),
		EventType: strings.TrimSpace(eventType),
		Count:     count,
		Time:      at,
		RawTime:   rawTime,
		Props:     props,
		CreatedAt: createdAt,
	}, nil
}
