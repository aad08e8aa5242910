package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeParseError          = 4001
	CodeInvalidInterval     = 4002
	CodeNoTime              = 4003
	CodeInvalidUnit         = 4004
	CodeConstraintViolation = 4005
	CodeEventNotFound       = 4040
	CodeDuplicateEvent      = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeDatabase       = 5030
)

// Base error types
var (
	// ErrParse is returned when no parsing strategy could make sense of the input
	ErrParse = errors.New("unable to parse time")

	// ErrInvalidInterval is returned when an interval would end before it starts
	ErrInvalidInterval = errors.New("interval end is before start")

	// ErrNoTime is the "no result" outcome for inputs that carry only a zone offset.
	// It is deliberately not an ErrParse.
	ErrNoTime = errors.New("input holds no time")

	// ErrInvalidUnit is returned when a time unit name is not recognised
	ErrInvalidUnit = errors.New("invalid time unit")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEventNotFound is returned when the requested event doesn't exist
	ErrEventNotFound = errors.New("event not found")

	// ErrDuplicateEvent is returned when an event with the same ID already exists
	ErrDuplicateEvent = errors.New("event with this ID already exists")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrParse):
		return CodeParseError
	case errors.Is(err, ErrInvalidInterval):
		return CodeInvalidInterval
	case errors.Is(err, ErrNoTime):
		return CodeNoTime
	case errors.Is(err, ErrInvalidUnit):
		return CodeInvalidUnit
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrEventNotFound):
		return CodeEventNotFound
	case errors.Is(err, ErrDuplicateEvent):
		return CodeDuplicateEvent
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabase
	default:
		return CodeInternalServer
	}
}

// ParseError describes why an input string could not be turned into a time
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

// Error implements the error interface for ParseError
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to parse time %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("unable to parse time %q: %s", e.Input, e.Reason)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrParse
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// LogFields returns a map of fields for structured logging
func (e *ParseError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "parse_error",
		"input":      e.Input,
		"reason":     e.Reason,
		"error_code": CodeParseError,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewParseError creates a new parse error
func NewParseError(input, reason string, err error) error {
	return &ParseError{
		Input:  input,
		Reason: reason,
		Err:    err,
	}
}

// InvalidIntervalError carries the offending endpoints as ISO strings
type InvalidIntervalError struct {
	Start string
	End   string
}

// Error implements the error interface
func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval: end %s is before start %s", e.End, e.Start)
}

// Is checks if the target error is an ErrInvalidInterval
func (e *InvalidIntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}

// LogFields returns a map of fields for structured logging
func (e *InvalidIntervalError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_interval",
		"start":      e.Start,
		"end":        e.End,
		"error_code": CodeInvalidInterval,
	}
}

// NewInvalidIntervalError creates a new invalid interval error
func NewInvalidIntervalError(start, end string) error {
	return &InvalidIntervalError{
		Start: start,
		End:   end,
	}
}

// AmbiguousInputWarning records an assumption made while resolving an ambiguous input.
// It accompanies a successful parse and is never returned as a failure.
type AmbiguousInputWarning struct {
	Input      string
	Heuristic  string
	Assumption string
}

// Error implements the error interface so warnings can travel through error-typed plumbing
func (w *AmbiguousInputWarning) Error() string {
	return fmt.Sprintf("ambiguous input %q (%s): assumed %s", w.Input, w.Heuristic, w.Assumption)
}

// LogFields returns a map of fields for structured logging
func (w *AmbiguousInputWarning) LogFields() map[string]any {
	return map[string]any{
		"warning_type": "ambiguous_input",
		"input":        w.Input,
		"heuristic":    w.Heuristic,
		"assumption":   w.Assumption,
	}
}

// NewAmbiguousInputWarning creates a new ambiguity warning
func NewAmbiguousInputWarning(input, heuristic, assumption string) *AmbiguousInputWarning {
	return &AmbiguousInputWarning{
		Input:      input,
		Heuristic:  heuristic,
		Assumption: assumption,
	}
}

// IsParseError checks if the error is a parse failure
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsInvalidIntervalError checks if the error is an interval ordering failure
func IsInvalidIntervalError(err error) bool {
	return errors.Is(err, ErrInvalidInterval)
}

// IsNoTimeError checks if the error is the lenient "no result" outcome
func IsNoTimeError(err error) bool {
	return errors.Is(err, ErrNoTime)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrEventNotFound)
}
