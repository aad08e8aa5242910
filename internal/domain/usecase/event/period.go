package event

import (
	"context"

	"github.com/amirhossein-jamali/timenorm/internal/domain/calendar"
	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/usecase"
)

// FindInPeriod returns the events of a dataspace whose time falls inside the period
// named by periodText, e.g. "last week" or "18 Nov 2009 to 23 Nov 2009"
func (u *EventUseCase) FindInPeriod(ctx context.Context, dataspace, periodText string) ([]*entity.Event, error) {
	_, events, err := u.eventsInPeriod(ctx, dataspace, periodText)
	return events, err
}

// DailyHistogram sums event counts per calendar day of the period. Every day gets a
// bucket, empty ones included. The period is half-open, so one ending exactly at
// midnight opens no bucket for that last day.
func (u *EventUseCase) DailyHistogram(ctx context.Context, dataspace, periodText string) ([]usecase.DayCount, error) {
	period, events, err := u.eventsInPeriod(ctx, dataspace, periodText)
	if err != nil {
		return nil, err
	}

	sums := make(map[int64]float64, len(events))
	for _, e := range events {
		sums[calendar.StartOfDay(e.Time).UnixMilli()] += e.Count
	}

	var buckets []usecase.DayCount
	for day := range calendar.DaysIn(period) {
		if !period.IsPoint() && !day.IsBefore(period.End()) {
			break
		}
		buckets = append(buckets, usecase.DayCount{Day: day, Count: sums[day.UnixMilli()]})
	}
	return buckets, nil
}

func (u *EventUseCase) eventsInPeriod(ctx context.Context, dataspace, periodText string) (entity.Interval, []*entity.Event, error) {
	period, err := u.parser.ParseInterval(periodText)
	if err != nil {
		return entity.Interval{}, nil, err
	}

	events, err := u.eventRepo.FindInInterval(ctx, normalizeDataspace(dataspace), period)
	if err != nil {
		u.logger.Error("Failed to query events", map[string]any{
			"dataspace": dataspace,
			"period":    period.ISOString(),
			"error":     err.Error(),
		})
		return entity.Interval{}, nil, err
	}

	u.logger.Debug("Events queried", map[string]any{
		"dataspace": dataspace,
		"period":    period.ISOString(),
		"count":     len(events),
	})
	return period, events, nil
}
