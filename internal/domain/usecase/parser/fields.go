package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/calendar"
	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
)

var (
	isoDatePrefix  = regexp.MustCompile(`^(\d{4})-(\d\d)-(\d\d)`)
	yearPattern    = regexp.MustCompile(`\b([123]\d{3})\b|\b(\d+) ?(a\.?d\.?|b\.?c\.?e?\.?|c\.?e\.?)(?:[^a-z]|$)`)
	shortYear      = regexp.MustCompile(`(\d\d)$`)
	monthPattern   = regexp.MustCompile(`jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`)
	weekdayPattern = regexp.MustCompile(`sun|mon|tue|wed|thu|fri|sat`)
	clockPattern   = regexp.MustCompile(`\b(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\s*([ap]m)\b)?|\b(\d{1,2})\s*([ap]m)\b`)
	digitsPattern  = regexp.MustCompile(`\d+`)
)

// Two-digit years further than this many years ahead of now belong to the last century
const shortYearHorizon = 15

// parseState accumulates the calendar fields found by independent scans of one input.
// It lives for a single parse.
type parseState struct {
	text string

	date *entity.Instant

	year    int
	hasYear bool

	month int

	weekday    time.Weekday
	hasWeekday bool

	hour, minute, second int
	hasClock             bool
	hasSeconds           bool

	day int

	// digit runs already read as a year or a clock, skipped by the day scan
	claimed [][2]int
}

func newParseState(text string, now entity.Instant) *parseState {
	st := &parseState{text: text}
	st.scanISODate()
	st.scanClock()
	st.scanYear(now)
	st.scanMonth()
	st.scanWeekday()
	st.scanDay()
	return st
}

func (st *parseState) claim(start, end int) {
	st.claimed = append(st.claimed, [2]int{start, end})
}

func (st *parseState) isClaimed(start, end int) bool {
	for _, c := range st.claimed {
		if start < c[1] && c[0] < end {
			return true
		}
	}
	return false
}

// scanISODate picks up a yyyy-MM-dd prefix followed by a non-ISO time, e.g. "2020-05-14 at 1pm"
func (st *parseState) scanISODate() {
	loc := isoDatePrefix.FindStringSubmatchIndex(st.text)
	if loc == nil {
		return
	}
	y, _ := strconv.Atoi(st.text[loc[2]:loc[3]])
	m, _ := strconv.Atoi(st.text[loc[4]:loc[5]])
	d, _ := strconv.Atoi(st.text[loc[6]:loc[7]])
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return
	}
	date := entity.NewInstant(y, m, d, 0, 0, 0)
	st.date = &date
	st.claim(loc[0], loc[1])
}

// scanClock reads "14:30", "14:30:05", "2:30pm", "7am". 12am is midnight and 12pm is noon.
func (st *parseState) scanClock() {
	for _, loc := range clockPattern.FindAllStringSubmatchIndex(st.text, -1) {
		if st.isClaimed(loc[0], loc[1]) {
			continue
		}
		var hour, minute, second int
		var meridiem string
		if loc[2] >= 0 {
			hour, _ = strconv.Atoi(st.text[loc[2]:loc[3]])
			minute, _ = strconv.Atoi(st.text[loc[4]:loc[5]])
			if loc[6] >= 0 {
				second, _ = strconv.Atoi(st.text[loc[6]:loc[7]])
				st.hasSeconds = true
			}
			if loc[8] >= 0 {
				meridiem = st.text[loc[8]:loc[9]]
			}
		} else {
			hour, _ = strconv.Atoi(st.text[loc[10]:loc[11]])
			meridiem = st.text[loc[12]:loc[13]]
		}

		if meridiem != "" {
			if hour < 1 || hour > 12 {
				continue
			}
			switch {
			case meridiem == "pm" && hour < 12:
				hour += 12
			case meridiem == "am" && hour == 12:
				hour = 0
			}
		}
		if hour > 23 || minute > 59 || second > 59 {
			continue
		}

		st.hour, st.minute, st.second = hour, minute, second
		st.hasClock = true
		st.claim(loc[0], loc[1])
		return
	}
}

// scanYear reads a four-digit year, an era-marked year ("44 bc", "800 ad"), or failing
// those a trailing two-digit year
func (st *parseState) scanYear(now entity.Instant) {
	for _, loc := range yearPattern.FindAllStringSubmatchIndex(st.text, -1) {
		if loc[2] >= 0 {
			if st.isClaimed(loc[2], loc[3]) {
				continue
			}
			st.year, _ = strconv.Atoi(st.text[loc[2]:loc[3]])
			st.hasYear = true
			st.claim(loc[2], loc[3])
			return
		}
		if st.isClaimed(loc[4], loc[5]) {
			continue
		}
		n, _ := strconv.Atoi(st.text[loc[4]:loc[5]])
		if strings.HasPrefix(st.text[loc[6]:loc[7]], "b") {
			// astronomical numbering: 1 BC is year 0
			n = 1 - n
		}
		st.year = n
		st.hasYear = true
		st.claim(loc[4], loc[5])
		return
	}

	loc := shortYear.FindStringSubmatchIndex(st.text)
	if loc == nil || st.isClaimed(loc[2], loc[3]) {
		return
	}
	if loc[2] > 0 && isDigit(st.text[loc[2]-1]) {
		return
	}
	n, _ := strconv.Atoi(st.text[loc[2]:loc[3]])
	year := 2000 + n
	if year > now.Year()+shortYearHorizon {
		year -= 100
	}
	st.year = year
	st.hasYear = true
	st.claim(loc[2], loc[3])
}

// scanMonth matches the first three-letter month abbreviation
func (st *parseState) scanMonth() {
	m := monthPattern.FindString(st.text)
	if m == "" {
		return
	}
	st.month = strings.Index(monthPattern.String(), m)/4 + 1
}

// scanWeekday matches the first weekday abbreviation, ignoring the "mon" of "month"
func (st *parseState) scanWeekday() {
	for _, loc := range weekdayPattern.FindAllStringIndex(st.text, -1) {
		abbrev := st.text[loc[0]:loc[1]]
		if abbrev == "mon" && strings.HasPrefix(st.text[loc[0]:], "month") {
			continue
		}
		st.weekday = weekdays[abbrev]
		st.hasWeekday = true
		return
	}
}

// scanDay takes the first unclaimed number that can be a day of month
func (st *parseState) scanDay() {
	for _, loc := range digitsPattern.FindAllStringIndex(st.text, -1) {
		if st.isClaimed(loc[0], loc[1]) {
			continue
		}
		d, err := strconv.Atoi(st.text[loc[0]:loc[1]])
		if err != nil || d == 0 || d > 31 {
			continue
		}
		st.day = d
		return
	}
}

func (st *parseState) clockUnit() entity.TimeUnit {
	if st.hasSeconds {
		return entity.Second
	}
	return entity.Minute
}

func (st *parseState) atClock(day entity.Instant) entity.Instant {
	return entity.NewInstant(day.Year(), day.Month(), day.Day(), st.hour, st.minute, st.second)
}

// resolve combines the accumulated fields. A month without a day is the whole month, a
// date without a clock is the whole day, and a date with a clock is a point.
func (st *parseState) resolve(p *Parser, now entity.Instant) (*match, error) {
	if st.date != nil {
		if st.hasClock {
			return pointMatch(st.atClock(*st.date), st.clockUnit()), nil
		}
		return unitMatch(*st.date, entity.Day), nil
	}

	if st.month != 0 {
		year, relative := st.year, false
		if !st.hasYear {
			year, relative = now.Year(), true
		}

		if st.day != 0 {
			t := entity.NewInstantFromFields(entity.CalendarFields{
				Year:   year,
				Month:  st.month,
				Day:    st.day,
				Hour:   st.hour,
				Minute: st.minute,
				Second: st.second,
			}, p.logger)
			m := unitMatch(t, entity.Day)
			if st.hasClock {
				m = pointMatch(t, st.clockUnit())
			}
			m.relative = relative
			return m, nil
		}

		if !st.hasWeekday {
			m := unitMatch(entity.NewInstant(year, st.month, 1, 0, 0, 0), entity.Month)
			m.relative = relative
			return m, nil
		}
	}

	// "friday 5pm": the next such weekday, today included
	if st.hasWeekday && st.hasClock && st.month == 0 {
		today := calendar.StartOfDay(now)
		for i := 0; i < 7; i++ {
			day := today.PlusUnits(float64(i), entity.Day)
			if day.Weekday() == st.weekday {
				m := pointMatch(st.atClock(day), st.clockUnit())
				m.relative = true
				return m, nil
			}
		}
	}

	return nil, errNoMatch
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
