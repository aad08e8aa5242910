package database

import (
	"errors"
	"testing"

	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	m := NewErrorMapper()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"not found", gorm.ErrRecordNotFound, errs.ErrEventNotFound},
		{"gorm duplicate", gorm.ErrDuplicatedKey, errs.ErrDuplicateEvent},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: events.id (1555)"), errs.ErrDuplicateEvent},
		{"postgres unique", errors.New(`duplicate key value violates unique constraint "events_pkey"`), errs.ErrDuplicateEvent},
		{"not null", errors.New("NOT NULL constraint failed: events.time"), errs.ErrConstraintViolation},
		{"refused", errors.New("dial tcp: connection refused"), errs.ErrDatabaseConnection},
		{"locked", errors.New("database is locked"), errs.ErrDatabaseConnection},
		{"deadline", errors.New("context deadline exceeded"), errs.ErrDatabaseConnection},
		{"other", errors.New("syntax error"), errs.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MapError(tt.err, "query")
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestIsRecordNotFound(t *testing.T) {
	assert.True(t, IsRecordNotFound(gorm.ErrRecordNotFound))
	assert.False(t, IsRecordNotFound(errors.New("x")))
}
