package parser

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/timenorm/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Thursday
var fixedNow = time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestParser(t *testing.T, opts ...Option) *Parser {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedNow).Maybe()
	mockTime.EXPECT().Since(mock.Anything).Return(core.Duration(0)).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return NewParser(mockTime, mockLogger, opts...)
}

type intervalCase struct {
	input    string
	strategy string
	start    string
	end      string
}

func runIntervalCases(t *testing.T, p *Parser, cases []intervalCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			res, err := p.ParseDetailed(tc.input)
			require.NoError(t, err)
			if tc.strategy != "" {
				assert.Equal(t, tc.strategy, res.Strategy)
			}
			assert.Equal(t, tc.start, res.Interval.Start().ISOString(), "start")
			end := tc.end
			if end == "" {
				end = tc.start
			}
			assert.Equal(t, end, res.Interval.End().ISOString(), "end")
		})
	}
}

func TestParse_FixedFormats(t *testing.T) {
	p := newTestParser(t)

	runIntervalCases(t, p, []intervalCase{
		{"1258540200000", StrategyEpoch, "2009-11-18T10:30:00Z", ""},
		{"-12345678", StrategyEpoch, "1969-12-31T20:34:14Z", ""},
		{"-86400000000", StrategyEpoch, "1967-04-07T00:00:00Z", ""},
		{"0", StrategyEpoch, "1970-01-01T00:00:00Z", ""},
		{"1.2585402e12", StrategyScientific, "2009-11-18T10:30:00Z", ""},
		{"2009-11-18T10:30:00Z", StrategyISO, "2009-11-18T10:30:00Z", ""},
		{"2009-11-18T10:30:00", StrategyISO, "2009-11-18T10:30:00Z", ""},
		{"2009-11-18T11:30:00+01:00", StrategyISO, "2009-11-18T10:30:00Z", ""},
		{"2009-11-18T11:30:00+0100", StrategyISO, "2009-11-18T10:30:00Z", ""},
		{"2009-11-18T10:30Z", StrategyISO, "2009-11-18T10:30:00Z", ""},
		{"2009-11-18T9:5:7", StrategyISO, "2009-11-18T09:05:07Z", ""},
		{"-0044-03-15T00:00:00Z", StrategyISO, "-0044-03-15T00:00:00Z", ""},
		{"10000-01-01T12:00:00Z", StrategyISO, "10000-01-01T12:00:00Z", ""},
		{"2017-12-2", StrategyISO, "2017-12-02T00:00:00Z", "2017-12-03T00:00:00Z"},
		{"2017-12-02", StrategyISO, "2017-12-02T00:00:00Z", "2017-12-03T00:00:00Z"},
		{"Wed Nov 18 10:30:00 UTC 2009", StrategyLayout, "2009-11-18T10:30:00Z", ""},
		{"Wed Nov 18 02:30:00 PST 2009", StrategyLayout, "2009-11-18T10:30:00Z", ""},
		{"Wed Jul 01 11:30:00 CEST 2009", StrategyLayout, "2009-07-01T09:30:00Z", ""},
		{"18 Nov 2009 11:30:00 CET", StrategyLayout, "2009-11-18T10:30:00Z", ""},
		{"18 Nov 2009 10:30:00 GMT", StrategyLayout, "2009-11-18T10:30:00Z", ""},
		{"Wed, 18 Nov 2009 10:30:00 +0000", StrategyLayout, "2009-11-18T10:30:00Z", ""},
		{"18/11/2009 11:30 +0100", StrategyLayout, "2009-11-18T10:30:00Z", ""},
		{"2009/11/18", StrategyLayout, "2009-11-18T00:00:00Z", "2009-11-19T00:00:00Z"},
		{"Nov 2009", StrategyLayout, "2009-11-01T00:00:00Z", "2009-12-01T00:00:00Z"},
		{"dec 2016", StrategyLayout, "2016-12-01T00:00:00Z", "2017-01-01T00:00:00Z"},
		{"March 2020", StrategyLayout, "2020-03-01T00:00:00Z", "2020-04-01T00:00:00Z"},
		{"2020-05-14 13:19:19", StrategyLayout, "2020-05-14T13:19:19Z", ""},
		{"2020-05-14 13:19", StrategyLayout, "2020-05-14T13:19:00Z", ""},
		{"Sep 02, 2022 6:07:52 PM", StrategyLayout, "2022-09-02T18:07:52Z", ""},
	})
}

func TestParse_Granularity(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		input string
		want  entity.TimeUnit
	}{
		{"2009-11-18T10:30:00Z", entity.Second},
		{"2009-11-18T10:30:00.123Z", entity.Millisecond},
		{"2009-11-18", entity.Day},
		{"Nov 2009", entity.Month},
		{"2020-05-14 13:19", entity.Minute},
		{"1258540200000", entity.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := p.ParseDetailed(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Granularity)
			assert.False(t, res.Relative)
		})
	}

	t.Run("Milliseconds survive", func(t *testing.T) {
		got, err := p.Parse("2009-11-18T10:30:00.123Z")
		require.NoError(t, err)
		assert.Equal(t, int64(1258540200123), got.UnixMilli())
	})
}

func TestParse_RoundTrip(t *testing.T) {
	p := newTestParser(t)

	instants := []entity.Instant{
		entity.NewInstant(2009, 11, 18, 10, 30, 0),
		entity.NewInstant(1970, 1, 1, 0, 0, 0),
		entity.NewInstant(2024, 2, 29, 23, 59, 59),
		entity.NewInstant(1901, 7, 4, 12, 0, 1),
		entity.NewInstant(2999, 12, 31, 0, 0, 0),
	}

	for _, want := range instants {
		t.Run(want.ISOString(), func(t *testing.T) {
			got, err := p.Parse(want.ISOString())
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "iso: %s", got)

			got, err = p.Parse(want.String())
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "string: %s", got)
		})
	}

	t.Run("Years outside four digits", func(t *testing.T) {
		for _, want := range []entity.Instant{
			entity.NewInstant(-44, 3, 15, 0, 0, 0),
			entity.NewInstant(10000, 1, 1, 0, 0, 0),
			entity.Ancient,
			entity.DistantFuture,
		} {
			got, err := p.Parse(want.ISOString())
			require.NoError(t, err, want.ISOString())
			assert.True(t, want.Equal(got), "iso: %s", got.ISOString())
		}
	})

	t.Run("Era-marked year", func(t *testing.T) {
		bc, err := p.Parse("15 mar 44 bc")
		require.NoError(t, err)
		got, err := p.Parse(bc.ISOString())
		require.NoError(t, err)
		assert.True(t, bc.Equal(got), "iso: %s", bc.ISOString())
	})
}

func TestParse_Ambiguous(t *testing.T) {
	t.Run("Second group is a month: day/month", func(t *testing.T) {
		p := newTestParser(t)
		res, err := p.ParseDetailed("09/10/2020")
		require.NoError(t, err)
		assert.Equal(t, StrategyAmbiguous, res.Strategy)
		assert.Equal(t, 10, res.Interval.Start().Month())
		assert.Equal(t, 9, res.Interval.Start().Day())
		assert.Equal(t, entity.Day.Millis(), res.Interval.Millis())
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, HeuristicDayMonth, res.Warnings[0].Heuristic)
	})

	t.Run("Forced non-US", func(t *testing.T) {
		p := newTestParser(t)
		got, err := p.Parse("19/10/2020")
		require.NoError(t, err)
		assert.Equal(t, 10, got.Month())
		assert.Equal(t, 19, got.Day())
	})

	t.Run("Swapped to US order", func(t *testing.T) {
		p := newTestParser(t)
		res, err := p.ParseDetailed("10/19/2020")
		require.NoError(t, err)
		assert.Equal(t, "2020-10-19T00:00:00Z", res.Interval.Start().ISOString())
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "month/day (US)", res.Warnings[0].Assumption)
	})

	t.Run("Two-digit years", func(t *testing.T) {
		p := newTestParser(t)
		res, err := p.ParseDetailed("18/11/09")
		require.NoError(t, err)
		assert.Equal(t, "2009-11-18T00:00:00Z", res.Interval.Start().ISOString())
		require.Len(t, res.Warnings, 2)
		assert.Equal(t, HeuristicTwoDigitYear, res.Warnings[0].Heuristic)

		got, err := p.Parse("01/02/75")
		require.NoError(t, err)
		assert.Equal(t, "1975-02-01T00:00:00Z", got.ISOString())
	})

	t.Run("Warnings are logged", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedNow).Maybe()
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Ambiguous time input", mock.Anything).Once()

		p := NewParser(mockTime, mockLogger)
		_, err := p.Parse("19/10/2020")
		require.NoError(t, err)
	})

	t.Run("Day overflow rolls over", func(t *testing.T) {
		p := newTestParser(t)
		got, err := p.Parse("31/02/2020")
		require.NoError(t, err)
		assert.Equal(t, "2020-03-02T00:00:00Z", got.ISOString())
	})

	for _, input := range []string{"00/10/2020", "12/10/202", "12/10/0999", "32/10/2020", "13/13/2020", "10/45/2020"} {
		t.Run("Rejects "+input, func(t *testing.T) {
			p := newTestParser(t)
			_, err := p.Parse(input)
			require.Error(t, err)
			assert.True(t, errs.IsParseError(err))
		})
	}
}

func TestParse_Failures(t *testing.T) {
	p := newTestParser(t)

	t.Run("Scientific notation out of range is a hard failure", func(t *testing.T) {
		_, err := p.Parse("1.23456789e30")
		require.Error(t, err)
		assert.True(t, errs.IsParseError(err))
		assert.Contains(t, err.Error(), "epoch")
	})

	t.Run("Bare offset is no time, not a parse error", func(t *testing.T) {
		for _, input := range []string{"+0100", "-0500", "+0000 "} {
			_, err := p.Parse(input)
			require.Error(t, err)
			assert.True(t, errs.IsNoTimeError(err), input)
			assert.False(t, errs.IsParseError(err), input)

			_, ok := p.ParseLenient(input)
			assert.False(t, ok)
		}
	})

	t.Run("Unknown zone abbreviation is not read as UTC", func(t *testing.T) {
		_, err := p.Parse("Wed Nov 18 10:30:00 XYZ 2009")
		require.Error(t, err)
		assert.True(t, errs.IsParseError(err))
		assert.Contains(t, err.Error(), "zone abbreviation XYZ")
	})

	for _, input := range []string{"", "   ", "not a date", "2017-13-01", "tuesday", "2020"} {
		t.Run("Unparseable "+input, func(t *testing.T) {
			_, err := p.Parse(input)
			require.Error(t, err)
			assert.True(t, errs.IsParseError(err))
		})
	}

	t.Run("Lenient", func(t *testing.T) {
		_, ok := p.ParseLenient("gibberish")
		assert.False(t, ok)

		got, ok := p.ParseLenient("2009-11-18")
		assert.True(t, ok)
		assert.Equal(t, 18, got.Day())
	})
}

func TestParse_PreferEnd(t *testing.T) {
	p := newTestParser(t, WithPreferEnd(true))
	assert.True(t, p.PreferEnd())

	tests := []struct {
		input string
		want  string
	}{
		{"2017-12-2", "2017-12-03T00:00:00Z"},
		{"Nov 2009", "2009-12-01T00:00:00Z"},
		{"2009/11/18", "2009-11-19T00:00:00Z"},
		{"2009-11-18T10:30:00Z", "2009-11-18T10:30:00Z"},
		{"2020-05-14 13:19", "2020-05-14T13:19:00Z"},
		{"today", "2023-06-16T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ISOString())
		})
	}

	t.Run("Intervals are unaffected", func(t *testing.T) {
		iv, err := p.ParseInterval("2017-12-2")
		require.NoError(t, err)
		assert.Equal(t, "2017-12-02T00:00:00Z/2017-12-03T00:00:00Z", iv.ISOString())
	})
}

func TestParse_Range(t *testing.T) {
	p := newTestParser(t)

	t.Run("Each side contributes its start", func(t *testing.T) {
		res, err := p.ParseDetailed("18 Nov 2009 to 23 Nov 2009")
		require.NoError(t, err)
		assert.Equal(t, StrategyRange, res.Strategy)
		assert.True(t, res.Interval.Start().Equal(entity.NewInstant(2009, 11, 18, 0, 0, 0)))
		assert.True(t, res.Interval.End().Equal(entity.NewInstant(2009, 11, 23, 0, 0, 0)))
		assert.False(t, res.Relative)
	})

	t.Run("Single date is a whole day", func(t *testing.T) {
		iv, err := p.ParseInterval("18 Nov 2009")
		require.NoError(t, err)
		assert.True(t, iv.Start().Equal(entity.NewInstant(2009, 11, 18, 0, 0, 0)))
		assert.True(t, iv.End().Equal(entity.NewInstant(2009, 11, 19, 0, 0, 0)))
	})

	t.Run("Relative sides", func(t *testing.T) {
		res, err := p.ParseDetailed("yesterday TO now")
		require.NoError(t, err)
		assert.Equal(t, "2023-06-14T00:00:00Z/2023-06-15T10:30:00Z", res.Interval.ISOString())
		assert.True(t, res.Relative)
	})

	t.Run("Reversed range", func(t *testing.T) {
		_, err := p.ParseInterval("23 Nov 2009 to 18 Nov 2009")
		require.Error(t, err)
		assert.True(t, errs.IsInvalidIntervalError(err))
	})

	t.Run("Bad side", func(t *testing.T) {
		_, err := p.ParseInterval("18 Nov 2009 to bogus")
		assert.True(t, errs.IsParseError(err))
	})
}

func TestParseLayout(t *testing.T) {
	p := newTestParser(t)

	t.Run("Inverse of format", func(t *testing.T) {
		for _, s := range []string{"2007-09-08 00:03:52", "2007-01-08 00:03:52"} {
			got, err := p.ParseLayout(s, time.DateTime)
			require.NoError(t, err)
			assert.Equal(t, s, got.Format(time.DateTime))
		}
	})

	t.Run("Matches calendar construction", func(t *testing.T) {
		got, err := p.ParseLayout("2007-09-08 00:03:52", time.DateTime)
		require.NoError(t, err)
		assert.True(t, got.Equal(entity.NewInstant(2007, 9, 8, 0, 3, 52)))
	})

	t.Run("Two-digit year", func(t *testing.T) {
		got, err := p.ParseLayout("30 Nov 20", "02 Jan 06")
		require.NoError(t, err)
		assert.True(t, got.Equal(entity.NewInstant(2020, 11, 30, 0, 0, 0)))
	})

	t.Run("No year in layout uses the current year", func(t *testing.T) {
		got, err := p.ParseLayout("13:00:00 GMT", "15:04:05 MST")
		require.NoError(t, err)
		assert.Equal(t, 13, got.Hour())
		assert.Equal(t, 2023, got.Year())
	})

	t.Run("Zone abbreviation", func(t *testing.T) {
		got, err := p.ParseLayout("18 Nov 2009 05:30 EST", "02 Jan 2006 15:04 MST")
		require.NoError(t, err)
		assert.True(t, got.Equal(entity.NewInstant(2009, 11, 18, 10, 30, 0)))

		_, err = p.ParseLayout("18 Nov 2009 05:30 QQT", "02 Jan 2006 15:04 MST")
		assert.True(t, errs.IsParseError(err))
	})

	t.Run("Mismatch", func(t *testing.T) {
		_, err := p.ParseLayout("yesterday", time.DateOnly)
		assert.True(t, errs.IsParseError(err))
	})
}

func TestMake(t *testing.T) {
	p := newTestParser(t)
	want := entity.NewInstant(2009, 11, 18, 10, 30, 0)

	inputs := map[string]any{
		"instant":      want,
		"instant ptr":  &want,
		"time":         want.Std(),
		"int64":        int64(1258540200000),
		"int":          1258540200000,
		"float64":      1.2585402e12,
		"string":       "2009-11-18T10:30:00Z",
		"epoch string": "1258540200000",
		"bytes":        []byte("2009-11-18T10:30:00Z"),
	}

	for name, v := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := p.Make(v)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	t.Run("Unsupported values", func(t *testing.T) {
		_, err := p.Make(nil)
		assert.True(t, errs.IsParseError(err))

		_, err = p.Make(struct{}{})
		assert.True(t, errs.IsParseError(err))

		var nilTime *time.Time
		_, err = p.Make(nilTime)
		assert.True(t, errs.IsParseError(err))
	})
}

func TestParser_Recorder(t *testing.T) {
	newRecordingParser := func(t *testing.T) (*Parser, *coremocks.MockParseRecorder) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedNow).Maybe()
		mockTime.EXPECT().Since(fixedNow).Return(core.Millisecond).Maybe()

		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

		recorder := coremocks.NewMockParseRecorder(t)
		return NewParser(mockTime, mockLogger, WithRecorder(recorder)), recorder
	}

	t.Run("Match", func(t *testing.T) {
		p, recorder := newRecordingParser(t)
		recorder.EXPECT().RecordParse(StrategyISO, core.ParseOutcomeMatched, core.Millisecond).Once()

		_, err := p.Parse("2009-11-18T10:30:00Z")
		require.NoError(t, err)
	})

	t.Run("Failure", func(t *testing.T) {
		p, recorder := newRecordingParser(t)
		recorder.EXPECT().RecordParse("", core.ParseOutcomeFailed, mock.Anything).Once()

		_, err := p.Parse("gibberish")
		require.Error(t, err)
	})

	t.Run("No time", func(t *testing.T) {
		p, recorder := newRecordingParser(t)
		recorder.EXPECT().RecordParse("", core.ParseOutcomeNoTime, mock.Anything).Once()

		_, err := p.Parse("+0100")
		require.Error(t, err)
	})

	t.Run("Ambiguity", func(t *testing.T) {
		p, recorder := newRecordingParser(t)
		recorder.EXPECT().RecordParse(StrategyAmbiguous, core.ParseOutcomeMatched, mock.Anything).Once()
		recorder.EXPECT().RecordAmbiguity(HeuristicDayMonth).Once()

		_, err := p.Parse("19/10/2020")
		require.NoError(t, err)
	})
}
