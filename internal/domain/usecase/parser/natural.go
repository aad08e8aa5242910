package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/calendar"
	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const unitWords = `(millisecond|second|sec|minute|min|hour|hr|day|week|month|year|yr)`

var (
	boundaryPrefix  = regexp.MustCompile(`^(start|end)(?:[\s-]+of)?[\s-]+`)
	weekdayRelative = regexp.MustCompile(`^(last|next|this)[\s-]+(sun|mon|tues|tue|wednes|wed|thurs|thur|thu|fri|satur|sat)(?:day)?$`)
	unitRelative    = regexp.MustCompile(`^(last|next|this)[\s-]+` + unitWords + `s?$`)
	bareUnit        = regexp.MustCompile(`^` + unitWords + `$`)
	quantityPattern = regexp.MustCompile(`^(?:in\s+)?(a|an|\d+(?:\.\d+)?)\s*` + unitWords + `s?(?:\s+(ago|from now|hence|later))?$`)
)

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

type naturalFunc func(p *Parser, text string, now entity.Instant) (*match, error)

// natural wraps a natural-language strategy: the input is folded to lower case with
// collapsed spaces, and a leading "start of" / "end of" snaps the result to the
// matching edge of its span
func natural(fn naturalFunc) func(p *Parser, s string, now entity.Instant) (*match, error) {
	return func(p *Parser, s string, now entity.Instant) (*match, error) {
		text, edge := splitBoundary(fold(s))
		m, err := fn(p, text, now)
		if err != nil {
			return nil, err
		}
		if edge != "" {
			m = m.snap(edge)
		}
		return m, nil
	}
}

// fold lower-cases with English rules. A Caser carries state, so one is made per call.
func fold(s string) string {
	return strings.Join(strings.Fields(cases.Lower(language.English).String(s)), " ")
}

func splitBoundary(text string) (string, string) {
	loc := boundaryPrefix.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, ""
	}
	return text[loc[1]:], text[loc[2]:loc[3]]
}

// snap turns a match into the point at the start or end of its span. A point match is
// first widened to the unit it was expressed in, so "start of 3 days ago" is a midnight.
func (m *match) snap(edge string) *match {
	iv := m.interval
	if iv.IsPoint() && m.granularity > entity.Millisecond {
		iv = calendar.SpanOf(m.granularity, iv.Start())
	}
	t := iv.Start()
	if edge == "end" {
		t = iv.End()
	}
	return &match{
		interval:    entity.PointInterval(t),
		granularity: m.granularity,
		relative:    m.relative,
		warnings:    m.warnings,
	}
}

func parseKeyword(_ *Parser, text string, now entity.Instant) (*match, error) {
	var m *match
	switch text {
	case "now":
		m = pointMatch(now, entity.Millisecond)
	case "today":
		m = spanMatch(now, entity.Day)
	case "yesterday":
		m = spanMatch(now.PlusUnits(-1, entity.Day), entity.Day)
	case "tomorrow":
		m = spanMatch(now.PlusUnits(1, entity.Day), entity.Day)
	default:
		return nil, errNoMatch
	}
	m.relative = true
	return m, nil
}

// parseRelative handles expressions anchored on now: "last tuesday", "next month",
// "this week", "3 days ago", "2 hours from now" and bare quantities such as "3 days",
// which point to the future
func parseRelative(_ *Parser, text string, now entity.Instant) (*match, error) {
	m, err := relative(text, now)
	if err != nil {
		return nil, err
	}
	m.relative = true
	return m, nil
}

func relative(text string, now entity.Instant) (*match, error) {
	if g := weekdayRelative.FindStringSubmatch(text); g != nil {
		return weekdayMatch(g[1], weekdays[g[2][:3]], now), nil
	}

	if g := unitRelative.FindStringSubmatch(text); g != nil {
		unit, err := entity.ParseTimeUnit(g[2])
		if err != nil {
			return nil, errNoMatch
		}
		anchor := now
		switch g[1] {
		case "last":
			anchor = now.PlusUnits(-1, unit)
		case "next":
			anchor = now.PlusUnits(1, unit)
		}
		return spanMatch(anchor, unit), nil
	}

	if g := bareUnit.FindStringSubmatch(text); g != nil {
		unit, err := entity.ParseTimeUnit(g[1])
		if err != nil {
			return nil, errNoMatch
		}
		return spanMatch(now, unit), nil
	}

	if g := quantityPattern.FindStringSubmatch(text); g != nil {
		n := 1.0
		if g[1] != "a" && g[1] != "an" {
			v, err := strconv.ParseFloat(g[1], 64)
			if err != nil {
				return nil, errNoMatch
			}
			n = v
		}
		unit, err := entity.ParseTimeUnit(g[2])
		if err != nil {
			return nil, errNoMatch
		}
		if g[3] == "ago" {
			n = -n
		}
		return pointMatch(now.PlusUnits(n, unit), unit), nil
	}

	return nil, errNoMatch
}

// weekdayMatch finds the named day within a week of today: strictly before it for
// "last", strictly after for "next", and on or after for "this"
func weekdayMatch(direction string, want time.Weekday, now entity.Instant) *match {
	today := calendar.StartOfDay(now)
	step, from := 1, 1
	switch direction {
	case "last":
		step = -1
	case "this":
		from = 0
	}
	day := today
	for i := from; i < from+7; i++ {
		day = today.PlusUnits(float64(step*i), entity.Day)
		if day.Weekday() == want {
			break
		}
	}
	return spanMatch(day, entity.Day)
}

func parseFields(p *Parser, text string, now entity.Instant) (*match, error) {
	st := newParseState(text, now)
	return st.resolve(p, now)
}
