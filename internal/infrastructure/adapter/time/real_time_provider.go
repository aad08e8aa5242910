package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time in UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Sleep pauses the current goroutine for the specified duration
func (p *RealTimeProvider) Sleep(d core.Duration) {
	time.Sleep(d.Std())
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// FixedTimeProvider pins Now to a single instant. The CLI uses it for --now, and it
// keeps relative expressions reproducible.
type FixedTimeProvider struct {
	RealTimeProvider
	now time.Time
}

// NewFixedTimeProvider creates a provider whose Now always returns now
func NewFixedTimeProvider(now time.Time) core.TimeProvider {
	return &FixedTimeProvider{now: now.UTC()}
}

// Now returns the pinned time
func (p *FixedTimeProvider) Now() time.Time {
	return p.now
}

// Since measures from the pinned time
func (p *FixedTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.now.Sub(t))
}
