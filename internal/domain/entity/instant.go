package entity

import (
	"fmt"
	"math"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
)

// Canonical layouts. ISOLayout is the serialization every collaborator persists and re-parses.
const (
	ISOLayout         = "2006-01-02T15:04:05Z"
	ISODateLayout     = "2006-01-02"
	StringLayout      = "Mon Jan 02 15:04:05 MST 2006"
	HumanLayout       = "2 Jan 2006 15:04"
	HumanDateLayout   = "2 Jan 2006"
	HumanSecondLayout = "2 Jan 2006 15:04:05"
)

// Instant is an immutable point in time: signed milliseconds since the Unix epoch.
// Calendar fields are read in UTC unless a location is passed to a single call.
// The zero value is the epoch.
type Instant struct {
	ut int64
}

// Range backstops and well-known instants
var (
	AD            = NewInstant(1, 1, 1, 0, 0, 0)
	WellOld       = NewInstant(1900, 1, 1, 0, 0, 0)
	WellFuture    = NewInstant(3000, 1, 1, 0, 0, 0)
	Ancient       = NewInstant(-1000000, 1, 1, 0, 0, 0)
	DistantFuture = NewInstant(1000000, 1, 1, 0, 0, 0)
)

// CalendarFields are the inputs of a calendar construction. Out-of-range values roll
// over the way time.Date normalizes them: day 32 of January is February 1st.
type CalendarFields struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Now captures the provider's current time
func Now(tp coreport.TimeProvider) Instant {
	return FromTime(tp.Now())
}

// FromEpochMillis wraps a millisecond count
func FromEpochMillis(ms int64) Instant {
	return Instant{ut: ms}
}

// FromTime converts a time.Time, dropping sub-millisecond precision
func FromTime(t time.Time) Instant {
	return Instant{ut: t.UnixMilli()}
}

// NewInstant builds an instant from UTC calendar fields, rolling over silently
func NewInstant(year, month, day, hour, minute, second int) Instant {
	return FromTime(time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC))
}

// NewInstantFromFields builds an instant from UTC calendar fields. Overflowing fields are
// accepted and normalized; when that happens a warning is logged if a logger is given.
func NewInstantFromFields(f CalendarFields, logger coreport.Logger) Instant {
	t := time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, 0, time.UTC)
	if logger != nil && f.rolledOver(t) {
		logger.Warn("Calendar fields rolled over", map[string]any{
			"year":       f.Year,
			"month":      f.Month,
			"day":        f.Day,
			"hour":       f.Hour,
			"minute":     f.Minute,
			"second":     f.Second,
			"normalized": t.Format(ISOLayout),
		})
	}
	return FromTime(t)
}

func (f CalendarFields) rolledOver(t time.Time) bool {
	return t.Year() != f.Year || int(t.Month()) != f.Month || t.Day() != f.Day ||
		t.Hour() != f.Hour || t.Minute() != f.Minute || t.Second() != f.Second
}

// UnixMilli returns the millisecond count
func (t Instant) UnixMilli() int64 {
	return t.ut
}

// Std returns the instant as a UTC time.Time
func (t Instant) Std() time.Time {
	return time.UnixMilli(t.ut).UTC()
}

// In returns the instant as a time.Time in loc, for one-off local conversions
func (t Instant) In(loc *time.Location) time.Time {
	return time.UnixMilli(t.ut).In(loc)
}

// Plus adds d. Calendar units (day and up) step the UTC calendar, so one month after
// January 31st is wherever time.AddDate lands; smaller units add exact milliseconds.
func (t Instant) Plus(d Duration) Instant {
	return t.PlusIn(d, time.UTC)
}

// PlusIn is Plus with calendar stepping done in loc, which matters across DST changes
func (t Instant) PlusIn(d Duration, loc *time.Location) Instant {
	if !d.Unit.IsCalendar() {
		return Instant{ut: t.ut + d.Millis()}
	}
	whole, frac := math.Modf(d.Value)
	n := int(whole)
	local := t.In(loc)
	switch d.Unit {
	case Day:
		local = local.AddDate(0, 0, n)
	case Week:
		local = local.AddDate(0, 0, 7*n)
	case Month:
		local = local.AddDate(0, n, 0)
	case Year:
		local = local.AddDate(n, 0, 0)
	}
	stepped := FromTime(local)
	if frac == 0 {
		return stepped
	}
	return stepped.PlusMillis(int64(math.Round(frac * float64(d.Unit.Millis()))))
}

// PlusUnits adds n of unit
func (t Instant) PlusUnits(n float64, unit TimeUnit) Instant {
	return t.Plus(NewDuration(n, unit))
}

// Minus subtracts d
func (t Instant) Minus(d Duration) Instant {
	return t.Plus(d.Negate())
}

// PlusMillis adds an exact number of milliseconds
func (t Instant) PlusMillis(ms int64) Instant {
	return Instant{ut: t.ut + ms}
}

// DiffMillis returns other - t in milliseconds
func (t Instant) DiffMillis(other Instant) int64 {
	return other.ut - t.ut
}

// Diff returns the signed duration from t to other in unit; positive when other is later.
// Month and Year count whole calendar steps from the earlier instant and add the
// remainder as a fraction of the next step.
func (t Instant) Diff(other Instant, unit TimeUnit) Duration {
	if unit != Month && unit != Year {
		return NewDuration(float64(t.DiffMillis(other))/float64(unit.Millis()), unit)
	}

	start, end, sign := t.Std(), other.Std(), 1.0
	if other.IsBefore(t) {
		start, end, sign = end, start, -1.0
	}

	step := func(k int) time.Time {
		if unit == Month {
			return start.AddDate(0, k, 0)
		}
		return start.AddDate(k, 0, 0)
	}

	n := end.Year() - start.Year()
	if unit == Month {
		n = n*12 + int(end.Month()) - int(start.Month())
	}
	for n > 0 && step(n).After(end) {
		n--
	}
	for !step(n + 1).After(end) {
		n++
	}

	value := float64(n)
	if reached := step(n); reached.Before(end) {
		span := step(n + 1).Sub(reached)
		value += float64(end.Sub(reached)) / float64(span)
	}
	return NewDuration(sign*value, unit)
}

// Compare returns -1, 0 or +1
func (t Instant) Compare(other Instant) int {
	switch {
	case t.ut < other.ut:
		return -1
	case t.ut > other.ut:
		return 1
	default:
		return 0
	}
}

// Equal reports millisecond equality
func (t Instant) Equal(other Instant) bool {
	return t.ut == other.ut
}

// IsBefore reports whether t is strictly earlier than other
func (t Instant) IsBefore(other Instant) bool {
	return t.ut < other.ut
}

// IsAfter reports whether t is strictly later than other
func (t Instant) IsAfter(other Instant) bool {
	return t.ut > other.ut
}

// IsBeforeOrEqual reports t <= other
func (t Instant) IsBeforeOrEqual(other Instant) bool {
	return t.ut <= other.ut
}

// IsAfterOrEqual reports t >= other
func (t Instant) IsAfterOrEqual(other Instant) bool {
	return t.ut >= other.ut
}

// Year returns the UTC year; years before 1 AD are zero or negative
func (t Instant) Year() int { return t.Std().Year() }

// Month returns the UTC month, 1 to 12
func (t Instant) Month() int { return int(t.Std().Month()) }

// Day returns the UTC day of month
func (t Instant) Day() int { return t.Std().Day() }

// Hour returns the UTC hour
func (t Instant) Hour() int { return t.Std().Hour() }

// Minute returns the UTC minute
func (t Instant) Minute() int { return t.Std().Minute() }

// Second returns the UTC second
func (t Instant) Second() int { return t.Std().Second() }

// Weekday returns the UTC day of the week
func (t Instant) Weekday() time.Weekday { return t.Std().Weekday() }

// LocalHour returns the hour of day in loc
func (t Instant) LocalHour(loc *time.Location) int {
	return t.In(loc).Hour()
}

// IsZero reports whether t is the epoch
func (t Instant) IsZero() bool {
	return t.ut == 0
}

// Format renders t with a Go layout in UTC
func (t Instant) Format(layout string) string {
	return t.Std().Format(layout)
}

// ISOString renders the canonical yyyy-MM-ddTHH:mm:ssZ form
func (t Instant) ISOString() string {
	return t.Format(ISOLayout)
}

// ISODateString renders yyyy-MM-dd
func (t Instant) ISODateString() string {
	return t.Format(ISODateLayout)
}

// String renders "Thu Jan 01 00:00:00 UTC 1970"
func (t Instant) String() string {
	return t.Format(StringLayout)
}

// MarshalJSON encodes the canonical ISO string
func (t Instant) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.ISOString())), nil
}

// UnmarshalJSON accepts an RFC 3339 string or an epoch millisecond number
func (t *Instant) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		parsed, err := time.Parse(time.RFC3339Nano, unquoted)
		if err != nil {
			return fmt.Errorf("instant: %w", err)
		}
		*t = FromTime(parsed)
		return nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("instant: %w", err)
	}
	*t = FromEpochMillis(ms)
	return nil
}

// IsOldBackstop reports whether t is at or before the WellOld sentinel
func (t Instant) IsOldBackstop() bool {
	return t.IsBeforeOrEqual(WellOld)
}
