package entity

import (
	"encoding/json"

	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
)

// Interval is a closed span of time with start <= end. A zero-length interval stands
// for a single instant.
type Interval struct {
	start Instant
	end   Instant
}

// NewInterval creates an interval, failing with ErrInvalidInterval if end is before start
func NewInterval(start, end Instant) (Interval, error) {
	if end.IsBefore(start) {
		return Interval{}, errs.NewInvalidIntervalError(start.ISOString(), end.ISOString())
	}
	return Interval{start: start, end: end}, nil
}

// NewOpenInterval creates an interval where a nil start means WellOld and a nil end
// means WellFuture
func NewOpenInterval(start, end *Instant) (Interval, error) {
	s, e := WellOld, WellFuture
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	return NewInterval(s, e)
}

// PointInterval is the zero-length interval at t
func PointInterval(t Instant) Interval {
	return Interval{start: t, end: t}
}

// Future is the interval from now to now+dt
func Future(now Instant, dt Duration) (Interval, error) {
	return NewInterval(now, now.Plus(dt))
}

// Past is the interval from now-dt to now
func Past(now Instant, dt Duration) (Interval, error) {
	return NewInterval(now.Minus(dt), now)
}

// Start returns the first instant
func (p Interval) Start() Instant {
	return p.start
}

// End returns the last instant
func (p Interval) End() Instant {
	return p.end
}

// Millis returns end - start in milliseconds
func (p Interval) Millis() int64 {
	return p.start.DiffMillis(p.end)
}

// Length returns the length in the largest unit that fits it
func (p Interval) Length() Duration {
	return NewDuration(float64(p.Millis()), Millisecond).FixUnits()
}

// LengthIn returns the length in unit; Month and Year use calendar stepping
func (p Interval) LengthIn(unit TimeUnit) float64 {
	return p.start.Diff(p.end, unit).Value
}

// Contains reports whether t lies in the interval, endpoints included
func (p Interval) Contains(t Instant) bool {
	return t.IsAfterOrEqual(p.start) && t.IsBeforeOrEqual(p.end)
}

// Intersect returns the shared span. Intervals that only touch share a zero-length
// interval, which still counts; ok is false when they are disjoint.
func (p Interval) Intersect(other Interval) (Interval, bool) {
	s := p.start
	if other.start.IsAfter(s) {
		s = other.start
	}
	e := p.end
	if other.end.IsBefore(e) {
		e = other.end
	}
	if s.IsAfter(e) {
		return Interval{}, false
	}
	return Interval{start: s, end: e}, true
}

// Overlaps reports whether the intervals share a span of positive length.
// Touching at a single instant is not an overlap.
func (p Interval) Overlaps(other Interval) bool {
	shared, ok := p.Intersect(other)
	return ok && shared.Millis() > 0
}

// Middle returns the midpoint
func (p Interval) Middle() Instant {
	return FromEpochMillis(p.start.ut + p.Millis()/2)
}

// IsPoint reports whether the interval has zero length
func (p Interval) IsPoint() bool {
	return p.start.Equal(p.end)
}

// IsWholeDay reports whether the interval lasts at least a day
func (p Interval) IsWholeDay() bool {
	return p.Millis() >= Day.Millis()
}

// Equal compares both endpoints
func (p Interval) Equal(other Interval) bool {
	return p.start.Equal(other.start) && p.end.Equal(other.end)
}

// ISOString renders "start/end" with canonical ISO endpoints
func (p Interval) ISOString() string {
	return p.start.ISOString() + "/" + p.end.ISOString()
}

// String renders "18 Nov 2009 to 19 Nov 2009", keeping the clock only where it is not midnight
// and showing seconds for spans under a minute
func (p Interval) String() string {
	startLayout, endLayout := HumanLayout, HumanLayout
	if p.start.Hour() == 0 && p.start.Minute() == 0 {
		startLayout = HumanDateLayout
	}
	if p.end.Hour() == 0 && p.end.Minute() == 0 {
		endLayout = HumanDateLayout
	}
	if p.Millis() < Minute.Millis() {
		startLayout, endLayout = HumanSecondLayout, "15:04:05"
	}
	return p.start.Format(startLayout) + " to " + p.end.Format(endLayout)
}

type intervalJSON struct {
	Start Instant `json:"start"`
	End   Instant `json:"end"`
}

// MarshalJSON encodes {"start": ISO, "end": ISO}
func (p Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{Start: p.start, End: p.end})
}

// UnmarshalJSON decodes {"start", "end"} and enforces start <= end
func (p *Interval) UnmarshalJSON(b []byte) error {
	var raw intervalJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	iv, err := NewInterval(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*p = iv
	return nil
}
