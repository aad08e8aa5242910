package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	at := NewInstant(2023, 1, 1, 12, 0, 0)
	created := NewInstant(2023, 1, 2, 0, 0, 0)

	t.Run("Valid event", func(t *testing.T) {
		ev, err := NewEvent("ev1", " Blog ", "pageview", 1, at, "yesterday noon", nil, created)

		require.NoError(t, err)
		assert.Equal(t, "ev1", ev.ID)
		assert.Equal(t, "blog", ev.Dataspace)
		assert.Equal(t, "pageview", ev.EventType)
		assert.Equal(t, 1.0, ev.Count)
		assert.True(t, ev.Time.Equal(at))
		assert.Equal(t, "yesterday noon", ev.RawTime)
		assert.NotNil(t, ev.Props)
		assert.True(t, ev.CreatedAt.Equal(created))
	})

	t.Run("Props are kept", func(t *testing.T) {
		ev, err := NewEvent("ev1", "blog", "click", 2.5, at, "", map[string]any{"url": "/"}, created)
		require.NoError(t, err)
		assert.Equal(t, "/", ev.Props["url"])
	})

	invalid := []struct {
		name      string
		id        string
		dataspace string
		eventType string
		count     float64
	}{
		{"Empty ID", "", "blog", "pageview", 1},
		{"Empty dataspace", "ev1", "  ", "pageview", 1},
		{"Empty event type", "ev1", "blog", "", 1},
		{"Negative count", "ev1", "blog", "pageview", -1},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := NewEvent(tt.id, tt.dataspace, tt.eventType, tt.count, at, "", nil, created)
			assert.Nil(t, ev)
			assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		})
	}
}
