package parser

import (
	"testing"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Keywords(t *testing.T) {
	p := newTestParser(t)

	runIntervalCases(t, p, []intervalCase{
		{"now", StrategyKeyword, "2023-06-15T10:30:00Z", ""},
		{"today", StrategyKeyword, "2023-06-15T00:00:00Z", "2023-06-16T00:00:00Z"},
		{"  Today ", StrategyKeyword, "2023-06-15T00:00:00Z", "2023-06-16T00:00:00Z"},
		{"yesterday", StrategyKeyword, "2023-06-14T00:00:00Z", "2023-06-15T00:00:00Z"},
		{"TOMORROW", StrategyKeyword, "2023-06-16T00:00:00Z", "2023-06-17T00:00:00Z"},
	})
}

func TestParse_Relative(t *testing.T) {
	p := newTestParser(t)

	runIntervalCases(t, p, []intervalCase{
		// weekdays
		{"last sunday", StrategyRelative, "2023-06-11T00:00:00Z", "2023-06-12T00:00:00Z"},
		{"last tuesday", StrategyRelative, "2023-06-13T00:00:00Z", "2023-06-14T00:00:00Z"},
		{"last thursday", StrategyRelative, "2023-06-08T00:00:00Z", "2023-06-09T00:00:00Z"},
		{"last sat", StrategyRelative, "2023-06-10T00:00:00Z", "2023-06-11T00:00:00Z"},
		{"next monday", StrategyRelative, "2023-06-19T00:00:00Z", "2023-06-20T00:00:00Z"},
		{"next thursday", StrategyRelative, "2023-06-22T00:00:00Z", "2023-06-23T00:00:00Z"},
		{"this thursday", StrategyRelative, "2023-06-15T00:00:00Z", "2023-06-16T00:00:00Z"},
		{"this Saturday", StrategyRelative, "2023-06-17T00:00:00Z", "2023-06-18T00:00:00Z"},

		// whole units
		{"last week", StrategyRelative, "2023-06-05T00:00:00Z", "2023-06-12T00:00:00Z"},
		{"this week", StrategyRelative, "2023-06-12T00:00:00Z", "2023-06-19T00:00:00Z"},
		{"last month", StrategyRelative, "2023-05-01T00:00:00Z", "2023-06-01T00:00:00Z"},
		{"this month", StrategyRelative, "2023-06-01T00:00:00Z", "2023-07-01T00:00:00Z"},
		{"next year", StrategyRelative, "2024-01-01T00:00:00Z", "2025-01-01T00:00:00Z"},
		{"last hour", StrategyRelative, "2023-06-15T09:00:00Z", "2023-06-15T10:00:00Z"},
		{"day", StrategyRelative, "2023-06-15T00:00:00Z", "2023-06-16T00:00:00Z"},

		// quantities
		{"3 days ago", StrategyRelative, "2023-06-12T10:30:00Z", ""},
		{"2 hours from now", StrategyRelative, "2023-06-15T12:30:00Z", ""},
		{"3 days", StrategyRelative, "2023-06-18T10:30:00Z", ""},
		{"a week ago", StrategyRelative, "2023-06-08T10:30:00Z", ""},
		{"in 2 weeks", StrategyRelative, "2023-06-29T10:30:00Z", ""},
		{"1.5 hours ago", StrategyRelative, "2023-06-15T09:00:00Z", ""},
		{"10 min later", StrategyRelative, "2023-06-15T10:40:00Z", ""},
		{"1 month ago", StrategyRelative, "2023-05-15T10:30:00Z", ""},
	})

	t.Run("Relative results are flagged", func(t *testing.T) {
		for _, input := range []string{"now", "last week", "3 days ago", "23 dec", "friday 5pm"} {
			res, err := p.ParseDetailed(input)
			require.NoError(t, err, input)
			assert.True(t, res.Relative, input)
		}
	})

	t.Run("Quantity granularity is the unit", func(t *testing.T) {
		res, err := p.ParseDetailed("3 days ago")
		require.NoError(t, err)
		assert.Equal(t, entity.Day, res.Granularity)
	})
}

func TestParse_Boundaries(t *testing.T) {
	p := newTestParser(t)

	runIntervalCases(t, p, []intervalCase{
		{"start of this month", StrategyRelative, "2023-06-01T00:00:00Z", ""},
		{"start month", StrategyRelative, "2023-06-01T00:00:00Z", ""},
		{"end month", StrategyRelative, "2023-07-01T00:00:00Z", ""},
		{"end of last month", StrategyRelative, "2023-06-01T00:00:00Z", ""},
		{"start of week", StrategyRelative, "2023-06-12T00:00:00Z", ""},
		{"start-of-year", StrategyRelative, "2023-01-01T00:00:00Z", ""},
		{"start of 3 days ago", StrategyRelative, "2023-06-12T00:00:00Z", ""},
		{"end of today", StrategyKeyword, "2023-06-16T00:00:00Z", ""},
		{"end of Nov 2009", StrategyFields, "2009-12-01T00:00:00Z", ""},
	})
}

func TestParse_Fields(t *testing.T) {
	p := newTestParser(t)

	runIntervalCases(t, p, []intervalCase{
		{"Thursday 7th November, 2013", StrategyFields, "2013-11-07T00:00:00Z", "2013-11-08T00:00:00Z"},
		{"18 Nov 2009", StrategyFields, "2009-11-18T00:00:00Z", "2009-11-19T00:00:00Z"},
		{"23 dec", StrategyFields, "2023-12-23T00:00:00Z", "2023-12-24T00:00:00Z"},
		{"jan", StrategyFields, "2023-01-01T00:00:00Z", "2023-02-01T00:00:00Z"},
		{"August", StrategyFields, "2023-08-01T00:00:00Z", "2023-09-01T00:00:00Z"},
		{"dec 99", StrategyFields, "1999-12-01T00:00:00Z", "2000-01-01T00:00:00Z"},
		{"dec 12", StrategyFields, "2012-12-01T00:00:00Z", "2013-01-01T00:00:00Z"},
		{"14 feb 2020 at 3:45pm", StrategyFields, "2020-02-14T15:45:00Z", ""},
		{"14 feb 2020 15:45:10", StrategyFields, "2020-02-14T15:45:10Z", ""},
		{"5 may 2021 12am", StrategyFields, "2021-05-05T00:00:00Z", ""},
		{"5 may 2021 12pm", StrategyFields, "2021-05-05T12:00:00Z", ""},
		{"2020-05-14 at 1pm", StrategyFields, "2020-05-14T13:00:00Z", ""},
		{"friday 5pm", StrategyFields, "2023-06-16T17:00:00Z", ""},
		{"thursday 9am", StrategyFields, "2023-06-15T09:00:00Z", ""},
	})

	t.Run("Era years", func(t *testing.T) {
		got, err := p.Parse("15 mar 44 bc")
		require.NoError(t, err)
		assert.Equal(t, -43, got.Year())
		assert.Equal(t, 3, got.Month())
		assert.Equal(t, 15, got.Day())

		got, err = p.Parse("1 jan 800 ad")
		require.NoError(t, err)
		assert.Equal(t, 800, got.Year())
	})

	t.Run("Clock granularity", func(t *testing.T) {
		res, err := p.ParseDetailed("14 feb 2020 15:45:10")
		require.NoError(t, err)
		assert.Equal(t, entity.Second, res.Granularity)

		res, err = p.ParseDetailed("14 feb 2020 at 3:45pm")
		require.NoError(t, err)
		assert.Equal(t, entity.Minute, res.Granularity)
		assert.False(t, res.Relative)
	})
}

func TestFold(t *testing.T) {
	assert.Equal(t, "last tuesday", fold("  Last \t TUESDAY "))
	assert.Equal(t, "", fold("   "))
}

func TestSplitBoundary(t *testing.T) {
	tests := []struct {
		in   string
		text string
		edge string
	}{
		{"start of this month", "this month", "start"},
		{"end-of-week", "week", "end"},
		{"end month", "month", "end"},
		{"ending soon", "ending soon", ""},
		{"today", "today", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			text, edge := splitBoundary(tt.in)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.edge, edge)
		})
	}
}
