package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeUnit(t *testing.T) {
	t.Run("Magnitudes", func(t *testing.T) {
		assert.Equal(t, int64(1000), Second.Millis())
		assert.Equal(t, int64(86400000), Day.Millis())
		assert.Equal(t, 30*Day.Millis(), Month.Millis())
		assert.Equal(t, 365*Day.Millis(), Year.Millis())
	})

	t.Run("Ordering", func(t *testing.T) {
		for i := 1; i < len(Units); i++ {
			assert.Less(t, Units[i-1].Millis(), Units[i].Millis())
			assert.Less(t, Units[i-1], Units[i])
		}
	})

	t.Run("Calendar units", func(t *testing.T) {
		assert.False(t, Hour.IsCalendar())
		assert.True(t, Day.IsCalendar())
		assert.True(t, Year.IsCalendar())
	})

	t.Run("Plural", func(t *testing.T) {
		assert.Equal(t, "day", Day.Plural(1))
		assert.Equal(t, "days", Day.Plural(2))
		assert.Equal(t, "hours", Hour.Plural(0))
	})
}

func TestParseTimeUnit(t *testing.T) {
	cases := map[string]TimeUnit{
		"day":     Day,
		"days":    Day,
		"Hours":   Hour,
		"hrs":     Hour,
		"ms":      Millisecond,
		"mins":    Minute,
		"s":       Second,
		" week ":  Week,
		"months":  Month,
		"yr":      Year,
		"seconds": Second,
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			got, err := ParseTimeUnit(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("Unknown unit", func(t *testing.T) {
		_, err := ParseTimeUnit("fortnight")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidUnit)
	})
}

func TestTimeUnitText(t *testing.T) {
	b, err := Week.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "week", string(b))

	var u TimeUnit
	require.NoError(t, u.UnmarshalText([]byte("weeks")))
	assert.Equal(t, Week, u)
	assert.Error(t, u.UnmarshalText([]byte("eon")))
}
