package parser

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/usecase"
	"github.com/spf13/cast"
)

// StrategyRange names results built from an "A to B" input
const StrategyRange = "range"

var rangeSeparator = regexp.MustCompile(`(?i)\s+to\s+`)

// Parser normalizes free-form time strings. It holds no mutable state after
// construction and is safe for concurrent use.
type Parser struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	recorder     coreport.ParseRecorder
	preferEnd    bool
}

// Option configures a Parser
type Option func(*Parser)

// WithPreferEnd makes Parse return the end of whole-unit matches, so "2020-01-05"
// means midnight on the 6th. Use it for "as of" semantics.
func WithPreferEnd(preferEnd bool) Option {
	return func(p *Parser) {
		p.preferEnd = preferEnd
	}
}

// WithRecorder reports every parse to r
func WithRecorder(r coreport.ParseRecorder) Option {
	return func(p *Parser) {
		p.recorder = r
	}
}

// NewParser creates a parser that resolves relative expressions against timeProvider
func NewParser(timeProvider coreport.TimeProvider, logger coreport.Logger, opts ...Option) *Parser {
	p := &Parser{
		timeProvider: timeProvider,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PreferEnd reports whether the parser runs in prefer-end mode
func (p *Parser) PreferEnd() bool {
	return p.preferEnd
}

// Now returns the reference instant for relative expressions
func (p *Parser) Now() entity.Instant {
	return entity.Now(p.timeProvider)
}

// Parse returns the instant named by input: the start of the matched span, or its
// end in prefer-end mode
func (p *Parser) Parse(input string) (entity.Instant, error) {
	res, err := p.ParseDetailed(input)
	if err != nil {
		return entity.Instant{}, err
	}
	if p.preferEnd {
		return res.Interval.End(), nil
	}
	return res.Interval.Start(), nil
}

// ParseLenient is Parse for callers that treat any failure, including ErrNoTime, as "no value"
func (p *Parser) ParseLenient(input string) (entity.Instant, bool) {
	t, err := p.Parse(input)
	if err != nil {
		return entity.Instant{}, false
	}
	return t, true
}

// ParseInterval returns the span named by input: whole days for dates, whole months
// for "Nov 2009", a point for a full timestamp, and the two starts for "A to B"
func (p *Parser) ParseInterval(input string) (entity.Interval, error) {
	res, err := p.ParseDetailed(input)
	if err != nil {
		return entity.Interval{}, err
	}
	return res.Interval, nil
}

// ParseDetailed runs the strategy chain and reports which strategy matched
func (p *Parser) ParseDetailed(input string) (*usecase.ParseResult, error) {
	var started time.Time
	if p.recorder != nil {
		started = p.timeProvider.Now()
	}

	res, err := p.parseDetailed(input)

	if p.recorder != nil {
		elapsed := p.timeProvider.Since(started)
		switch {
		case err == nil:
			p.recorder.RecordParse(res.Strategy, coreport.ParseOutcomeMatched, elapsed)
		case errs.IsNoTimeError(err):
			p.recorder.RecordParse("", coreport.ParseOutcomeNoTime, elapsed)
		default:
			p.recorder.RecordParse("", coreport.ParseOutcomeFailed, elapsed)
		}
	}

	if err != nil {
		p.logger.Debug("Time parse failed", map[string]any{
			"input": input,
			"error": err.Error(),
		})
		return nil, err
	}

	for _, w := range res.Warnings {
		p.logger.Warn("Ambiguous time input", w.LogFields())
		if p.recorder != nil {
			p.recorder.RecordAmbiguity(w.Heuristic)
		}
	}
	return res, nil
}

func (p *Parser) parseDetailed(input string) (*usecase.ParseResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, errs.NewParseError(input, "empty input", nil)
	}

	if parts := rangeSeparator.Split(trimmed, 2); len(parts) == 2 {
		return p.parseRange(input, parts[0], parts[1])
	}

	now := p.Now()
	for _, s := range chain {
		m, err := s.fn(p, trimmed, now)
		if errors.Is(err, errNoMatch) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &usecase.ParseResult{
			Input:       input,
			Interval:    m.interval,
			Granularity: m.granularity,
			Strategy:    s.name,
			Relative:    m.relative,
			Warnings:    m.warnings,
		}, nil
	}
	return nil, errs.NewParseError(input, "no strategy matched", nil)
}

// parseRange resolves each side independently; each contributes the start of its span
func (p *Parser) parseRange(input, left, right string) (*usecase.ParseResult, error) {
	from, err := p.parseDetailed(left)
	if err != nil {
		return nil, err
	}
	to, err := p.parseDetailed(right)
	if err != nil {
		return nil, err
	}
	iv, err := entity.NewInterval(from.Interval.Start(), to.Interval.Start())
	if err != nil {
		return nil, err
	}
	granularity := from.Granularity
	if to.Granularity < granularity {
		granularity = to.Granularity
	}
	return &usecase.ParseResult{
		Input:       input,
		Interval:    iv,
		Granularity: granularity,
		Strategy:    StrategyRange,
		Relative:    from.Relative || to.Relative,
		Warnings:    append(from.Warnings, to.Warnings...),
	}, nil
}

// ParseLayout parses input strictly with a Go layout in the neutral calendar. When the
// layout carries no year, the current year is used.
func (p *Parser) ParseLayout(input, layout string) (entity.Instant, error) {
	t, err := time.ParseInLocation(layout, strings.TrimSpace(input), time.UTC)
	if err != nil {
		return entity.Instant{}, errs.NewParseError(input, "does not match layout "+layout, err)
	}
	t, ok := resolveZone(t)
	if !ok {
		name, _ := t.Zone()
		return entity.Instant{}, errs.NewParseError(input, "unknown zone abbreviation "+name, nil)
	}
	if !strings.Contains(layout, "2006") && !strings.Contains(layout, "06") {
		t = time.Date(p.Now().Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return entity.FromTime(t), nil
}

// Make converts loosely typed values into an Instant: instants and times pass through,
// strings are parsed and numbers are read as epoch milliseconds
func (p *Parser) Make(v any) (entity.Instant, error) {
	switch x := v.(type) {
	case nil:
		return entity.Instant{}, errs.NewParseError("<nil>", "no value", nil)
	case entity.Instant:
		return x, nil
	case *entity.Instant:
		if x == nil {
			return entity.Instant{}, errs.NewParseError("<nil>", "no value", nil)
		}
		return *x, nil
	case time.Time:
		return entity.FromTime(x), nil
	case *time.Time:
		if x == nil {
			return entity.Instant{}, errs.NewParseError("<nil>", "no value", nil)
		}
		return entity.FromTime(*x), nil
	case string:
		return p.Parse(x)
	case []byte:
		return p.Parse(string(x))
	}

	ms, err := cast.ToInt64E(v)
	if err != nil {
		return entity.Instant{}, errs.NewParseError(cast.ToString(v), "unsupported value type", err)
	}
	return entity.FromEpochMillis(ms), nil
}
