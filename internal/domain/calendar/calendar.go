// Package calendar holds pure helpers over entity.Instant: unit boundaries, day
// iteration, ordering shortcuts and human-readable durations.
//
// Boundaries are computed in the neutral (UTC) calendar. End-of-unit helpers return
// the start of the next unit, so a day is the half-open span [StartOfDay, EndOfDay).
package calendar

import (
	"iter"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	"github.com/jinzhu/now"
)

// Weeks start on Monday
var utcCalendar = &now.Config{
	WeekStartDay: time.Monday,
	TimeLocation: time.UTC,
}

func with(t entity.Instant) *now.Now {
	return utcCalendar.With(t.Std())
}

// StartOfHour truncates to the hour
func StartOfHour(t entity.Instant) entity.Instant {
	return entity.FromTime(with(t).BeginningOfHour())
}

// StartOfDay returns midnight at the start of t's day
func StartOfDay(t entity.Instant) entity.Instant {
	return entity.FromTime(with(t).BeginningOfDay())
}

// EndOfDay returns the next midnight
func EndOfDay(t entity.Instant) entity.Instant {
	return StartOfDay(t).PlusUnits(1, entity.Day)
}

// StartOfWeek returns Monday midnight of t's week
func StartOfWeek(t entity.Instant) entity.Instant {
	return entity.FromTime(with(t).BeginningOfWeek())
}

// EndOfWeek returns the following Monday midnight
func EndOfWeek(t entity.Instant) entity.Instant {
	return StartOfWeek(t).PlusUnits(1, entity.Week)
}

// StartOfMonth returns midnight on day 1 of t's month
func StartOfMonth(t entity.Instant) entity.Instant {
	return entity.FromTime(with(t).BeginningOfMonth())
}

// EndOfMonth returns midnight on day 1 of the next month
func EndOfMonth(t entity.Instant) entity.Instant {
	return StartOfMonth(t).PlusUnits(1, entity.Month)
}

// StartOfYear returns midnight on January 1st of t's year
func StartOfYear(t entity.Instant) entity.Instant {
	return entity.FromTime(with(t).BeginningOfYear())
}

// EndOfYear returns midnight on January 1st of the next year
func EndOfYear(t entity.Instant) entity.Instant {
	return StartOfYear(t).PlusUnits(1, entity.Year)
}

// StartOf truncates t to the start of unit
func StartOf(unit entity.TimeUnit, t entity.Instant) entity.Instant {
	switch unit {
	case entity.Millisecond:
		return t
	case entity.Second:
		return entity.FromTime(t.Std().Truncate(time.Second))
	case entity.Minute:
		return entity.FromTime(with(t).BeginningOfMinute())
	case entity.Hour:
		return StartOfHour(t)
	case entity.Day:
		return StartOfDay(t)
	case entity.Week:
		return StartOfWeek(t)
	case entity.Month:
		return StartOfMonth(t)
	default:
		return StartOfYear(t)
	}
}

// EndOf returns the start of the unit after the one containing t
func EndOf(unit entity.TimeUnit, t entity.Instant) entity.Instant {
	if unit == entity.Millisecond {
		return t.PlusMillis(1)
	}
	return StartOf(unit, t).PlusUnits(1, unit)
}

// SpanOf returns the whole unit containing t, e.g. the month around the 15th
func SpanOf(unit entity.TimeUnit, t entity.Instant) entity.Interval {
	iv, _ := entity.NewInterval(StartOf(unit, t), EndOf(unit, t))
	return iv
}

// DayOfWeek returns t's weekday in the neutral calendar
func DayOfWeek(t entity.Instant) time.Weekday {
	return t.Weekday()
}

// WeekdayAbbrev returns the three-letter English abbreviation, e.g. "Sun"
func WeekdayAbbrev(d time.Weekday) string {
	return d.String()[:3]
}

// DaysBetween yields the midnight of every day from start's day to end's day, both
// included. The sequence is restartable and empty when end is before start.
func DaysBetween(start, end entity.Instant) iter.Seq[entity.Instant] {
	first, last := StartOfDay(start), StartOfDay(end)
	return func(yield func(entity.Instant) bool) {
		for day := first; day.IsBeforeOrEqual(last); day = day.PlusUnits(1, entity.Day) {
			if !yield(day) {
				return
			}
		}
	}
}

// DaysIn is DaysBetween over an interval
func DaysIn(iv entity.Interval) iter.Seq[entity.Instant] {
	return DaysBetween(iv.Start(), iv.End())
}

// Between reports whether t lies in [start, end], endpoints included
func Between(t, start, end entity.Instant) bool {
	return t.IsAfterOrEqual(start) && t.IsBeforeOrEqual(end)
}

// Equalish reports whether a and b are strictly less than one tolerance unit apart,
// measured in milliseconds
func Equalish(a, b entity.Instant, tolerance entity.TimeUnit) bool {
	d := a.DiffMillis(b)
	if d < 0 {
		d = -d
	}
	return d < tolerance.Millis()
}

// CombineDateAndTime takes the date from day and the clock from clock, dropping milliseconds
func CombineDateAndTime(day, clock entity.Instant) entity.Instant {
	return entity.NewInstant(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), clock.Second())
}

// First returns the earlier of a and b
func First(a, b entity.Instant) entity.Instant {
	if b.IsBefore(a) {
		return b
	}
	return a
}

// Last returns the later of a and b
func Last(a, b entity.Instant) entity.Instant {
	if b.IsAfter(a) {
		return b
	}
	return a
}

// Earliest returns the earliest instant, or false when ts is empty
func Earliest(ts []entity.Instant) (entity.Instant, bool) {
	if len(ts) == 0 {
		return entity.Instant{}, false
	}
	f := ts[0]
	for _, t := range ts[1:] {
		f = First(f, t)
	}
	return f, true
}

// Latest returns the latest instant, or false when ts is empty
func Latest(ts []entity.Instant) (entity.Instant, bool) {
	if len(ts) == 0 {
		return entity.Instant{}, false
	}
	l := ts[0]
	for _, t := range ts[1:] {
		l = Last(l, t)
	}
	return l, true
}

// LocalHour returns the neutral hour shifted by loc's offset at t. The result is
// fractional for half-hour zones and is not wrapped into [0, 24).
func LocalHour(t entity.Instant, loc *time.Location) float64 {
	_, offset := t.In(loc).Zone()
	return float64(t.Hour()) + float64(offset)/3600
}
