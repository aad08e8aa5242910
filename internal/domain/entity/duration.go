package entity

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Duration is a signed length of time expressed in a unit, e.g. 3 days or -1.5 hours.
// Negative values mean "ago". Durations are values; every operation returns a new one.
type Duration struct {
	Value float64  `json:"value"`
	Unit  TimeUnit `json:"unit"`
}

// NewDuration creates a duration of value units
func NewDuration(value float64, unit TimeUnit) Duration {
	return Duration{Value: value, Unit: unit}
}

// Millis returns the duration in milliseconds, rounded to the nearest one.
// Month and Year use their approximate magnitudes.
func (d Duration) Millis() int64 {
	return int64(math.Round(d.Value * float64(d.Unit.Millis())))
}

// StdDuration converts to a time.Duration
func (d Duration) StdDuration() time.Duration {
	return time.Duration(d.Millis()) * time.Millisecond
}

// ConvertTo expresses the duration in another unit
func (d Duration) ConvertTo(unit TimeUnit) Duration {
	if unit == d.Unit {
		return d
	}
	v := d.Value * float64(d.Unit.Millis()) / float64(unit.Millis())
	return Duration{Value: v, Unit: unit}
}

// Plus adds other, keeping the receiver's unit
func (d Duration) Plus(other Duration) Duration {
	o := other.ConvertTo(d.Unit)
	return Duration{Value: d.Value + o.Value, Unit: d.Unit}
}

// Minus subtracts other, keeping the receiver's unit
func (d Duration) Minus(other Duration) Duration {
	return d.Plus(other.Negate())
}

// Multiply scales the duration
func (d Duration) Multiply(factor float64) Duration {
	return Duration{Value: d.Value * factor, Unit: d.Unit}
}

// Negate flips the direction
func (d Duration) Negate() Duration {
	return Duration{Value: -d.Value, Unit: d.Unit}
}

// Abs returns the duration without its sign
func (d Duration) Abs() Duration {
	return Duration{Value: math.Abs(d.Value), Unit: d.Unit}
}

// Compare returns -1, 0 or +1 comparing the millisecond lengths of d and other
func (d Duration) Compare(other Duration) int {
	a, b := d.Millis(), other.Millis()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsShorterThan reports whether d is strictly shorter than other
func (d Duration) IsShorterThan(other Duration) bool {
	return d.Compare(other) < 0
}

// IsZero reports whether the duration has no length
func (d Duration) IsZero() bool {
	return d.Value == 0
}

// String renders "5 days", "1.5 hours", "-1 week"
func (d Duration) String() string {
	v := strconv.FormatFloat(d.Value, 'f', -1, 64)
	if d.Value == math.Trunc(d.Value) {
		return fmt.Sprintf("%s %s", v, d.Unit.Plural(int64(d.Value)))
	}
	return fmt.Sprintf("%s %ss", v, d.Unit)
}

// FixUnits re-expresses the duration in the largest unit that fits it
func (d Duration) FixUnits() Duration {
	return d.ConvertTo(BestUnit(d.Millis()))
}

// BestUnit returns the largest unit whose magnitude does not exceed the length,
// scaled up by a 10% leniency factor, so 22 hours counts as a day.
// Lengths below a millisecond fall back to Millisecond.
func BestUnit(millis int64) TimeUnit {
	scaled := int64(math.Round(1.1 * math.Abs(float64(millis))))
	best := Millisecond
	for _, u := range Units {
		if u.Millis() <= scaled {
			best = u
		}
	}
	return best
}
