package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	t.Run("Millis and std conversion", func(t *testing.T) {
		d := NewDuration(1.5, Hour)
		assert.Equal(t, int64(5400000), d.Millis())
		assert.Equal(t, 90*time.Minute, d.StdDuration())
	})

	t.Run("ConvertTo", func(t *testing.T) {
		d := NewDuration(2, Day).ConvertTo(Hour)
		assert.Equal(t, Hour, d.Unit)
		assert.InDelta(t, 48.0, d.Value, 1e-9)
	})

	t.Run("Plus keeps the receiver unit", func(t *testing.T) {
		d := NewDuration(1, Day).Plus(NewDuration(12, Hour))
		assert.Equal(t, Day, d.Unit)
		assert.InDelta(t, 1.5, d.Value, 1e-9)

		d = NewDuration(1, Day).Minus(NewDuration(6, Hour))
		assert.InDelta(t, 0.75, d.Value, 1e-9)
	})

	t.Run("Sign helpers", func(t *testing.T) {
		d := NewDuration(3, Week).Negate()
		assert.Equal(t, -3.0, d.Value)
		assert.Equal(t, 3.0, d.Abs().Value)
		assert.Equal(t, NewDuration(6, Week), NewDuration(3, Week).Multiply(2))
		assert.True(t, NewDuration(0, Year).IsZero())
	})

	t.Run("Compare across units", func(t *testing.T) {
		assert.Equal(t, 0, NewDuration(1, Day).Compare(NewDuration(24, Hour)))
		assert.True(t, NewDuration(23, Hour).IsShorterThan(NewDuration(1, Day)))
		assert.Equal(t, 1, NewDuration(1, Week).Compare(NewDuration(6, Day)))
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "5 days", NewDuration(5, Day).String())
		assert.Equal(t, "1 day", NewDuration(1, Day).String())
		assert.Equal(t, "1.5 hours", NewDuration(1.5, Hour).String())
		assert.Equal(t, "-1 week", NewDuration(-1, Week).String())
	})

	t.Run("JSON uses unit names", func(t *testing.T) {
		b, err := json.Marshal(NewDuration(2, Month))
		require.NoError(t, err)
		assert.JSONEq(t, `{"value":2,"unit":"month"}`, string(b))
	})
}

func TestBestUnit(t *testing.T) {
	tests := []struct {
		name   string
		millis int64
		want   TimeUnit
	}{
		{"zero", 0, Millisecond},
		{"just under a second", 900, Millisecond},
		{"within leniency of a second", 950, Second},
		{"28 hours", 28 * Hour.Millis(), Day},
		{"22 hours rounds up to a day", 22 * Hour.Millis(), Day},
		{"20 hours stays in hours", 20 * Hour.Millis(), Hour},
		{"negative lengths use the magnitude", -3 * Week.Millis(), Week},
		{"400 days", 400 * Day.Millis(), Year},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BestUnit(tt.millis))
		})
	}

	t.Run("FixUnits", func(t *testing.T) {
		d := NewDuration(28, Hour).FixUnits()
		assert.Equal(t, Day, d.Unit)
		assert.InDelta(t, 28.0/24.0, d.Value, 1e-9)
	})
}
