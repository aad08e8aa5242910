package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
)

// TimeUnit is an ordered unit of time, from Millisecond up to Year
type TimeUnit int

// Time units, smallest first. Order matters: comparisons between units use it.
const (
	Millisecond TimeUnit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

// Units lists every unit in ascending order
var Units = []TimeUnit{Millisecond, Second, Minute, Hour, Day, Week, Month, Year}

var unitMillis = map[TimeUnit]int64{
	Millisecond: 1,
	Second:      1000,
	Minute:      60 * 1000,
	Hour:        60 * 60 * 1000,
	Day:         24 * 60 * 60 * 1000,
	Week:        7 * 24 * 60 * 60 * 1000,
	Month:       30 * 24 * 60 * 60 * 1000,
	Year:        365 * 24 * 60 * 60 * 1000,
}

var unitNames = map[TimeUnit]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Year:        "year",
}

// unitAliases maps the accepted spellings, long and short, to units
var unitAliases = map[string]TimeUnit{
	"ms":     Millisecond,
	"millis": Millisecond,
	"s":      Second,
	"sec":    Second,
	"m":      Minute,
	"min":    Minute,
	"h":      Hour,
	"hr":     Hour,
	"d":      Day,
	"w":      Week,
	"mo":     Month,
	"y":      Year,
	"yr":     Year,
}

// Millis is the unit's magnitude. Exact up to Week; Month is 30 days and Year 365.
func (u TimeUnit) Millis() int64 {
	return unitMillis[u]
}

// IsCalendar reports whether plus/minus on this unit steps the calendar
// rather than adding a fixed number of milliseconds
func (u TimeUnit) IsCalendar() bool {
	return u >= Day
}

// String returns the singular unit name
func (u TimeUnit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// Plural returns the unit name for n of them, e.g. "1 day" but "2 days"
func (u TimeUnit) Plural(n int64) string {
	if n == 1 || n == -1 {
		return u.String()
	}
	return u.String() + "s"
}

// ParseTimeUnit accepts unit names ("day", "days"), and short forms ("ms", "s", "m", "h")
func ParseTimeUnit(name string) (TimeUnit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if u, ok := unitAliases[key]; ok {
		return u, nil
	}
	key = strings.TrimSuffix(key, "s")
	for u, n := range unitNames {
		if n == key {
			return u, nil
		}
	}
	if u, ok := unitAliases[key]; ok {
		return u, nil
	}
	return Millisecond, fmt.Errorf("%w: %q", errs.ErrInvalidUnit, name)
}

// MarshalText encodes the unit by name
func (u TimeUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText decodes a unit name
func (u *TimeUnit) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeUnit(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
