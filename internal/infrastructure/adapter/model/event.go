package model

import (
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// storedTimeLayout is ISO 8601 in UTC with milliseconds kept when non-zero
const storedTimeLayout = "2006-01-02T15:04:05.999Z"

// Event represents the database model for logged events. Time holds the ISO string;
// TimeMs mirrors it for range scans.
type Event struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Dataspace string    `gorm:"not null;size:100;index:idx_events_dataspace_time,priority:1"`
	EventType string    `gorm:"not null;size:100"`
	Count     float64   `gorm:"not null;default:1"`
	Time      string    `gorm:"not null;size:32"`
	TimeMs    int64     `gorm:"not null;default:0;index:idx_events_dataspace_time,priority:2"`
	RawTime   string    `gorm:"type:text"`
	Props     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// EventFromEntity builds the row for e, encoding props as JSON
func EventFromEntity(e *entity.Event) (*Event, error) {
	props, err := json.MarshalToString(e.Props)
	if err != nil {
		return nil, err
	}
	return &Event{
		ID:        e.ID,
		Dataspace: e.Dataspace,
		EventType: e.EventType,
		Count:     e.Count,
		Time:      e.Time.Format(storedTimeLayout),
		TimeMs:    e.Time.UnixMilli(),
		RawTime:   e.RawTime,
		Props:     props,
		CreatedAt: e.CreatedAt.Std(),
	}, nil
}

// DecodeProps returns the stored props, or an empty map for an empty column
func (m *Event) DecodeProps() (map[string]any, error) {
	props := map[string]any{}
	if m.Props == "" {
		return props, nil
	}
	if err := json.UnmarshalFromString(m.Props, &props); err != nil {
		return nil, err
	}
	return props, nil
}
