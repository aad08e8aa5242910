package parser

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/calendar"
	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
)

// Strategy names, in chain order
const (
	StrategyEpoch      = "epoch"
	StrategyScientific = "scientific"
	StrategyISO        = "iso8601"
	StrategyLayout     = "layout"
	StrategyAmbiguous  = "ambiguous_dmy"
	StrategyBareOffset = "bare_offset"
	StrategyKeyword    = "keyword"
	StrategyRelative   = "relative"
	StrategyFields     = "fields"
)

// Heuristics reported on ambiguity warnings
const (
	HeuristicTwoDigitYear = "two_digit_year"
	HeuristicDayMonth     = "day_month_order"
)

// errNoMatch tells the chain to try the next strategy. Any other error ends the parse.
var errNoMatch = errors.New("no match")

type match struct {
	interval    entity.Interval
	granularity entity.TimeUnit
	relative    bool
	warnings    []*errs.AmbiguousInputWarning
}

func pointMatch(t entity.Instant, granularity entity.TimeUnit) *match {
	return &match{interval: entity.PointInterval(t), granularity: granularity}
}

// unitMatch covers the whole unit starting at t, e.g. [midnight, next midnight)
func unitMatch(t entity.Instant, unit entity.TimeUnit) *match {
	iv, _ := entity.NewInterval(t, t.PlusUnits(1, unit))
	return &match{interval: iv, granularity: unit}
}

// granularMatch is a point for fine units and a whole-unit span for anything coarser than an hour
func granularMatch(t entity.Instant, unit entity.TimeUnit) *match {
	if unit > entity.Hour {
		return unitMatch(t, unit)
	}
	return pointMatch(t, unit)
}

func spanMatch(t entity.Instant, unit entity.TimeUnit) *match {
	return &match{interval: calendar.SpanOf(unit, t), granularity: unit}
}

type strategy struct {
	name string
	fn   func(p *Parser, s string, now entity.Instant) (*match, error)
}

// chain is built once and only read afterwards
var chain = []strategy{
	{StrategyEpoch, parseEpoch},
	{StrategyScientific, parseScientific},
	{StrategyISO, parseISO},
	{StrategyLayout, parseLayouts},
	{StrategyAmbiguous, parseAmbiguous},
	{StrategyBareOffset, rejectBareOffset},
	{StrategyKeyword, natural(parseKeyword)},
	{StrategyRelative, natural(parseRelative)},
	{StrategyFields, natural(parseFields)},
}

var (
	integerPattern    = regexp.MustCompile(`^[+-]?\d+$`)
	scientificPattern = regexp.MustCompile(`(?i)^\d\.\d+e\d+$`)
	isoDateOnly       = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	isoNoZone         = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})T(\d{1,2}):(\d{1,2}):(\d{1,2})(\.\d+)?$`)
	isoExpandedYear   = regexp.MustCompile(`^([+-]?\d{4,})-(\d\d)-(\d\d)T(\d\d):(\d\d):(\d\d)(\.\d+)?Z$`)
	ambiguousDate     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)
	bareOffset        = regexp.MustCompile(`^[+-]\d{4}\W*$`)
)

// Epoch milliseconds are recognized by length, sign included: long enough not to be
// a year, short enough to fit a sane range
const (
	minEpochLen = 8
	maxEpochLen = 24
)

var (
	scientificLow  = entity.NewInstant(-5000, 1, 1, 0, 0, 0)
	scientificHigh = entity.NewInstant(5000, 1, 1, 0, 0, 0)
)

func parseEpoch(_ *Parser, s string, _ entity.Instant) (*match, error) {
	if s == "0" {
		return pointMatch(entity.FromEpochMillis(0), entity.Millisecond), nil
	}
	if !integerPattern.MatchString(s) {
		return nil, errNoMatch
	}
	if len(s) <= minEpochLen || len(s) >= maxEpochLen {
		return nil, errNoMatch
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, errNoMatch
	}
	return pointMatch(entity.FromEpochMillis(ms), entity.Millisecond), nil
}

// parseScientific accepts stringified doubles such as "1.5e12" only when they are
// effectively integral and land in a sane window. Anything else is a hard failure.
func parseScientific(_ *Parser, s string, _ entity.Instant) (*match, error) {
	if !scientificPattern.MatchString(s) {
		return nil, errNoMatch
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errs.NewParseError(s, "malformed number", err)
	}
	l := math.Trunc(d)
	if math.Abs(l-d) < math.Abs(d)*0.0001 &&
		l > float64(scientificLow.UnixMilli()) && l < float64(scientificHigh.UnixMilli()) {
		return pointMatch(entity.FromEpochMillis(int64(l)), entity.Millisecond), nil
	}
	return nil, errs.NewParseError(s, "cannot treat double as an epoch time", nil)
}

type layout struct {
	layout string
	unit   entity.TimeUnit
}

var isoLayouts = []layout{
	{time.RFC3339Nano, entity.Second},
	{"2006-01-02T15:04:05-0700", entity.Second},
	{"2006-01-02T15:04Z07:00", entity.Minute},
	{"2006-01-02T15:04-0700", entity.Minute},
}

func parseISO(_ *Parser, s string, _ entity.Instant) (*match, error) {
	if m := isoDateOnly.FindStringSubmatch(s); m != nil {
		padded := m[1] + "-" + zeroPad(m[2]) + "-" + zeroPad(m[3])
		t, err := time.Parse(time.DateOnly, padded)
		if err != nil {
			return nil, errNoMatch
		}
		return unitMatch(entity.FromTime(t), entity.Day), nil
	}
	if m := isoNoZone.FindStringSubmatch(s); m != nil {
		s = m[1] + "-" + zeroPad(m[2]) + "-" + zeroPad(m[3]) + "T" +
			zeroPad(m[4]) + ":" + zeroPad(m[5]) + ":" + zeroPad(m[6]) + m[7] + "Z"
	}
	for _, l := range isoLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		unit := l.unit
		if t.Nanosecond() != 0 {
			unit = entity.Millisecond
		}
		return pointMatch(entity.FromTime(t), unit), nil
	}
	return parseExpandedYear(s)
}

// parseExpandedYear reads the UTC form ISOString produces for years outside 0000..9999,
// e.g. "-0044-03-15T00:00:00Z" or "10000-01-01T00:00:00Z"
func parseExpandedYear(s string) (*match, error) {
	m := isoExpandedYear.FindStringSubmatch(s)
	if m == nil {
		return nil, errNoMatch
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, errNoMatch
	}
	f := make([]int, 5)
	for i := range f {
		f[i], _ = strconv.Atoi(m[i+2])
	}
	month, day, hour, minute, second := f[0], f[1], f[2], f[3], f[4]
	if hour > 23 || minute > 59 || second > 59 {
		return nil, errNoMatch
	}

	nanos, unit := 0, entity.Second
	if frac := m[7]; frac != "" {
		digits := (frac[1:] + "000000000")[:9]
		nanos, _ = strconv.Atoi(digits)
		if nanos != 0 {
			unit = entity.Millisecond
		}
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, nanos, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return nil, errNoMatch
	}
	return pointMatch(entity.FromTime(t), unit), nil
}

// legacyLayouts are tried strictly in order. Bare d/m/y dates are absent on purpose:
// they go through parseAmbiguous so the assumption is always reported.
var legacyLayouts = []layout{
	{entity.StringLayout, entity.Second},
	{"02 Jan 2006 15:04:05 MST", entity.Second},
	{time.RFC1123Z, entity.Second},
	{time.RFC1123, entity.Second},
	{"Mon, 2 Jan 2006 15:04:05 -0700", entity.Second},
	{"02/01/2006 15:04:05 -0700", entity.Second},
	{"02/01/2006 15:04 -0700", entity.Minute},
	{"2006/01/02", entity.Day},
	{"Jan 2006", entity.Month},
	{"January 2006", entity.Month},
	{time.DateTime, entity.Second},
	{"2006-01-02 15:04", entity.Minute},
	{"Jan 2, 2006 3:04:05 PM", entity.Second},
}

func parseLayouts(_ *Parser, s string, _ entity.Instant) (*match, error) {
	for _, l := range legacyLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		t, ok := resolveZone(t)
		if !ok {
			name, _ := t.Zone()
			return nil, errs.NewParseError(s, "unknown zone abbreviation "+name, nil)
		}
		return granularMatch(entity.FromTime(t), l.unit), nil
	}
	return nil, errNoMatch
}

// zoneAbbreviations maps common abbreviations to their UTC offset in seconds. IST is
// left out as ambiguous; CST is read as US Central.
var zoneAbbreviations = map[string]int{
	"WET": 0, "WEST": 3600, "BST": 3600,
	"CET": 3600, "CEST": 2 * 3600, "MET": 3600, "MEST": 2 * 3600,
	"EET": 2 * 3600, "EEST": 3 * 3600, "MSK": 3 * 3600,
	"EST": -5 * 3600, "EDT": -4 * 3600,
	"CST": -6 * 3600, "CDT": -5 * 3600,
	"MST": -7 * 3600, "MDT": -6 * 3600,
	"PST": -8 * 3600, "PDT": -7 * 3600,
	"AKST": -9 * 3600, "AKDT": -8 * 3600, "HST": -10 * 3600,
	"JST": 9 * 3600, "KST": 9 * 3600,
	"AEST": 10 * 3600, "AEDT": 11 * 3600, "NZST": 12 * 3600, "NZDT": 13 * 3600,
}

// resolveZone fixes up times whose zone abbreviation time.Parse did not know. Those come
// back with a zero offset, which would silently read them as UTC.
func resolveZone(t time.Time) (time.Time, bool) {
	name, offset := t.Zone()
	if offset != 0 {
		return t, true
	}
	switch name {
	case "", "UTC", "GMT", "UT", "Z":
		return t, true
	}
	offset, ok := zoneAbbreviations[name]
	if !ok {
		return t, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, offset)), true
}

// parseAmbiguous reads n/n/n dates, preferring day/month order and falling back to
// month/day when the second group cannot be a month
func parseAmbiguous(p *Parser, s string, _ entity.Instant) (*match, error) {
	m := ambiguousDate.FindStringSubmatch(s)
	if m == nil {
		return nil, errNoMatch
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if first == 0 || second == 0 || year == 0 {
		return nil, errs.NewParseError(s, "zero date field", nil)
	}
	if len(m[3]) == 3 {
		return nil, errs.NewParseError(s, "bad year", nil)
	}

	var warnings []*errs.AmbiguousInputWarning
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
		warnings = append(warnings, errs.NewAmbiguousInputWarning(s, HeuristicTwoDigitYear, fmt.Sprintf("year %d", year)))
	}
	if year <= 1000 || year > 4000 {
		return nil, errs.NewParseError(s, "year out of range, use an explicit format", nil)
	}

	day, month := first, second
	if second <= 12 {
		if first > 31 {
			return nil, errs.NewParseError(s, "day out of range", nil)
		}
		warnings = append(warnings, errs.NewAmbiguousInputWarning(s, HeuristicDayMonth, "day/month (non-US)"))
	} else {
		if second > 31 || first > 12 {
			return nil, errs.NewParseError(s, "neither day/month nor month/day", nil)
		}
		day, month = second, first
		warnings = append(warnings, errs.NewAmbiguousInputWarning(s, HeuristicDayMonth, "month/day (US)"))
	}

	t := entity.NewInstantFromFields(entity.CalendarFields{Year: year, Month: month, Day: day}, p.logger)
	res := unitMatch(t, entity.Day)
	res.warnings = warnings
	return res, nil
}

// rejectBareOffset ends the parse with ErrNoTime for inputs like "+0100" that carry a
// zone but no date or time
func rejectBareOffset(_ *Parser, s string, _ entity.Instant) (*match, error) {
	if bareOffset.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", errs.ErrNoTime, s)
	}
	return nil, errNoMatch
}

func zeroPad(digits string) string {
	if len(digits) == 1 {
		return "0" + digits
	}
	return digits
}
