package usecase

import (
	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
)

// ParseResult is the detailed outcome of normalizing one input string
type ParseResult struct {
	Input    string
	Interval entity.Interval

	// Granularity is the unit of the matched form, e.g. Day for "2020-01-05"
	Granularity entity.TimeUnit
	Strategy    string

	// Relative is set when the result depends on the current time
	Relative bool
	Warnings []*errs.AmbiguousInputWarning
}

// TimeParser turns free-form strings into instants, intervals and durations
type TimeParser interface {
	// Parse returns the instant named by the input: the interval start, or its end in prefer-end mode
	Parse(input string) (entity.Instant, error)

	// ParseInterval returns the span named by the input
	ParseInterval(input string) (entity.Interval, error)

	// ParseDetailed returns the interval with the strategy, granularity and any ambiguity warnings
	ParseDetailed(input string) (*ParseResult, error)

	// ParseDuration reads "3 days", "a week", "90 min"
	ParseDuration(input string) (entity.Duration, error)

	// Now returns the parser's reference instant
	Now() entity.Instant
}
