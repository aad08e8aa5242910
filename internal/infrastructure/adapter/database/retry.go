package database

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError runs operation, retrying with exponential backoff while it
// fails with a transient error. Other errors are returned immediately.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	logger coreport.Logger,
) error {
	var err error
	attempts := max(config.MaxRetries, 1)

	for attempt := 0; attempt < attempts; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}
		if !isTransientError(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts":    attempt + 1,
				"max_retries": attempts,
				"error":       ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})

	return err
}

// calculateBackoffWithJitter computes RetryInterval * 2^attempt, capped at MaxInterval,
// plus up to JitterFactor of random extra
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}

	return backoff
}

// isTransientError checks if an error is transient and can be retried
func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "lock timeout") ||
		strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "sqlite_busy") ||
		strings.Contains(errMsg, "eof")
}
