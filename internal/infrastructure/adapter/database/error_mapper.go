package database

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error. Messages from both postgres
// and sqlite are recognized.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrEventNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.ErrDuplicateEvent
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return errs.ErrDuplicateEvent

	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "not null constraint"):
		return errs.ErrConstraintViolation

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "database is closed") ||
		strings.Contains(errMsg, "unable to open database"):
		return errs.ErrDatabaseConnection

	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded") ||
		strings.Contains(errMsg, "database is locked"):
		return fmt.Errorf("%w: %s operation timed out", errs.ErrDatabaseConnection, operation)

	default:
		return errs.ErrInternalServer
	}
}

// IsRecordNotFound reports whether err is gorm's not-found error
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
