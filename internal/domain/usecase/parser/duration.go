package parser

import (
	"regexp"
	"strconv"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
)

var durationPattern = regexp.MustCompile(`(?:^|\s)(a|an|\d+(?:\.\d+)?|\.\d+)?\s*\b(milliseconds?|millis|ms|years?|yrs?|months?|weeks?|days?|hours?|hrs?|minutes?|mins?|seconds?|secs?)\b`)

// ParseDuration reads a length such as "10 minutes", "a week" or "1.5 hrs". Direction
// words such as "ago" are ignored, so the result is never negative.
func (p *Parser) ParseDuration(input string) (entity.Duration, error) {
	text := fold(input)
	g := durationPattern.FindStringSubmatch(text)
	if g == nil {
		return entity.Duration{}, errs.NewParseError(input, "not a duration", nil)
	}

	value := 1.0
	if g[1] != "" && g[1] != "a" && g[1] != "an" {
		v, err := strconv.ParseFloat(g[1], 64)
		if err != nil {
			return entity.Duration{}, errs.NewParseError(input, "bad quantity", err)
		}
		value = v
	}

	unit, err := entity.ParseTimeUnit(g[2])
	if err != nil {
		return entity.Duration{}, errs.NewParseError(input, "unknown unit", err)
	}
	return entity.NewDuration(value, unit), nil
}
