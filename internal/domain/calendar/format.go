package calendar

import (
	"fmt"
	"math"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
)

// PickBestUnit selects the largest unit that fits millis, allowing 10% leniency
func PickBestUnit(millis int64) entity.TimeUnit {
	return entity.BestUnit(millis)
}

// FixUnits re-expresses d in its best unit
func FixUnits(d entity.Duration) entity.Duration {
	return d.FixUnits()
}

// FormatDuration renders d rounded to a whole number of its best unit, never using a
// unit smaller than minUnit: 28 hours is "1 day", 90 minutes is "2 hours".
// Lengths under one minUnit render as "now". Negative durations get a leading "-".
func FormatDuration(d entity.Duration, minUnit entity.TimeUnit) string {
	ms := d.Millis()
	abs := ms
	if abs < 0 {
		abs = -abs
	}
	if abs < minUnit.Millis() {
		return "now"
	}

	unit := PickBestUnit(abs)
	if unit < minUnit {
		unit = minUnit
	}
	n := int64(math.Round(float64(abs) / float64(unit.Millis())))

	sign := ""
	if ms < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d %s", sign, n, unit.Plural(n))
}

// FormatRelative describes t as seen from now, e.g. "3 hours ago" or "2 days from now".
// Anything within one minUnit of now is "now".
func FormatRelative(t, now entity.Instant, minUnit entity.TimeUnit) string {
	dt := now.Diff(t, entity.Millisecond)
	s := FormatDuration(dt.Abs(), minUnit)
	if s == "now" {
		return s
	}
	if t.IsBefore(now) {
		return s + " ago"
	}
	return s + " from now"
}

// FormatInterval describes iv relative to now. Intervals of an hour or more that start or
// end within a minute of now are rendered "... to now" and "now to ...".
func FormatInterval(iv entity.Interval, now entity.Instant) string {
	start := FormatRelative(iv.Start(), now, entity.Second)
	end := FormatRelative(iv.End(), now, entity.Second)
	if iv.Millis() >= entity.Hour.Millis() {
		if Equalish(iv.End(), now, entity.Minute) {
			return start + " to now"
		}
		if Equalish(iv.Start(), now, entity.Minute) {
			return "now to " + end
		}
	}
	return start + " to " + end
}
