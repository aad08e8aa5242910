package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/usecase"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

var _ usecase.EventUseCase = (*EventUseCase)(nil)

// EventUseCase records events and answers period queries, normalizing every time
// through the parser
type EventUseCase struct {
	eventRepo    persistence.EventRepository
	parser       usecase.TimeParser
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEventUseCase creates a new event use case instance
func NewEventUseCase(
	eventRepo persistence.EventRepository,
	parser usecase.TimeParser,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *EventUseCase {
	return &EventUseCase{
		eventRepo:    eventRepo,
		parser:       parser,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Record normalizes the request time and stores the event. A zero count records one
// occurrence.
func (u *EventUseCase) Record(ctx context.Context, req usecase.RecordEventRequest) (*entity.Event, error) {
	at := u.parser.Now()
	rawTime := strings.TrimSpace(req.Time)
	if rawTime != "" {
		t, err := u.parser.Parse(rawTime)
		if err != nil {
			u.logger.Warn("Event time rejected", map[string]any{
				"dataspace": req.Dataspace,
				"time":      rawTime,
				"error":     err.Error(),
			})
			return nil, err
		}
		at = t
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	event, err := entity.NewEvent(
		uuid.NewString(),
		req.Dataspace,
		req.EventType,
		count,
		at,
		rawTime,
		normalizeProps(req.Props),
		entity.Now(u.timeProvider),
	)
	if err != nil {
		return nil, err
	}

	if err := u.eventRepo.Create(ctx, event); err != nil {
		u.logger.Error("Failed to record event", map[string]any{
			"eventId":   event.ID,
			"dataspace": event.Dataspace,
			"error":     err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Event recorded", map[string]any{
		"eventId":   event.ID,
		"dataspace": event.Dataspace,
		"eventType": event.EventType,
		"time":      event.Time.ISOString(),
	})

	return event, nil
}

// Get returns a stored event
func (u *EventUseCase) Get(ctx context.Context, id string) (*entity.Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidRequest
	}

	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, errs.ErrEventNotFound) {
			u.logger.Error("Failed to get event", map[string]any{
				"eventId": id,
				"error":   err.Error(),
			})
		}
		return nil, err
	}
	return event, nil
}

// normalizeProps stores times as canonical ISO strings and numbers as float64, the
// shapes a JSON round trip gives back
func normalizeProps(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		switch x := v.(type) {
		case entity.Instant:
			out[k] = x.ISOString()
		case time.Time:
			out[k] = entity.FromTime(x).ISOString()
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32:
			out[k] = cast.ToFloat64(x)
		case []byte:
			out[k] = string(x)
		default:
			out[k] = v
		}
	}
	return out
}

func normalizeDataspace(dataspace string) string {
	return strings.ToLower(strings.TrimSpace(dataspace))
}
