package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/timenorm/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.On("Warn", "Transient database error, retrying operation", mock.Anything).Times(2)

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked")
			}
			return nil
		}, logger)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return errors.New("UNIQUE constraint failed: events.id")
		}, logger)

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.On("Warn", mock.Anything, mock.Anything).Times(2)
		logger.On("Error", "All retry attempts failed", mock.Anything).Once()

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return errors.New("connection reset by peer")
		}, logger)

		assert.EqualError(t, err, "connection reset by peer")
		assert.Equal(t, 3, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.On("Warn", mock.Anything, mock.Anything).Maybe()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := fastRetry()
		cfg.RetryInterval = time.Hour
		cfg.MaxInterval = time.Hour
		err := RetryOnTransientError(ctx, cfg, func() error {
			return errors.New("deadlock detected")
		}, logger)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second, JitterFactor: 0.2}

	for attempt, base := range []time.Duration{100, 200, 400, 800, 1000, 1000} {
		got := calculateBackoffWithJitter(attempt, cfg)
		lo := base * time.Millisecond
		assert.GreaterOrEqual(t, got, lo)
		assert.LessOrEqual(t, got, lo+lo/5)
	}
}
