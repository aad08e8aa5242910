package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	"github.com/amirhossein-jamali/timenorm/internal/domain/usecase/parser"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Thursday
var fixedNow = time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTimeRouter(opts TimeOptions) *gin.Engine {
	tp := timeprovider.NewFixedTimeProvider(fixedNow)
	log := logger.NewNoopLogger()
	h := NewTimeHandler(parser.NewParser(tp, log, parser.WithPreferEnd(opts.PreferEnd)), log, opts)

	r := gin.New()
	r.GET("/parse", h.Parse)
	r.POST("/parse/batch", h.ParseBatch)
	r.GET("/interval", h.Interval)
	r.GET("/duration", h.Duration)
	r.GET("/humanize", h.Humanize)
	r.GET("/diff", h.Diff)
	return r
}

func get(t *testing.T, r http.Handler, path string, params url.Values, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path+"?"+params.Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w
}

func TestTimeHandler_Parse(t *testing.T) {
	r := newTimeRouter(TimeOptions{})

	t.Run("Day granularity", func(t *testing.T) {
		var resp dto.ParseResponse
		w := get(t, r, "/parse", url.Values{"q": {"2009-11-18"}}, &resp)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2009-11-18T00:00:00Z", resp.Instant)
		assert.Equal(t, "2009-11-18T00:00:00Z", resp.Start)
		assert.Equal(t, "2009-11-19T00:00:00Z", resp.End)
		assert.Equal(t, "day", resp.Granularity)
		assert.Equal(t, parser.StrategyISO, resp.Strategy)
		assert.False(t, resp.Relative)
	})

	t.Run("Relative keyword", func(t *testing.T) {
		var resp dto.ParseResponse
		get(t, r, "/parse", url.Values{"q": {"yesterday"}}, &resp)
		assert.Equal(t, "2023-06-14T00:00:00Z", resp.Start)
		assert.True(t, resp.Relative)
	})

	t.Run("Ambiguous input carries a warning", func(t *testing.T) {
		var resp dto.ParseResponse
		get(t, r, "/parse", url.Values{"q": {"31/02/2020"}}, &resp)
		assert.Equal(t, "2020-03-02T00:00:00Z", resp.Start)
		assert.NotEmpty(t, resp.Warnings)
	})

	t.Run("Missing query", func(t *testing.T) {
		var resp dto.ErrorResponse
		w := get(t, r, "/parse", url.Values{}, &resp)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInvalidRequest, resp.Code)
	})

	t.Run("Unparseable", func(t *testing.T) {
		var resp dto.ErrorResponse
		w := get(t, r, "/parse", url.Values{"q": {"not a date"}}, &resp)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeParseError, resp.Code)
		assert.Contains(t, resp.Message, "not a date")
	})

	t.Run("Bare offset holds no time", func(t *testing.T) {
		var resp dto.ErrorResponse
		w := get(t, r, "/parse", url.Values{"q": {"+0100"}}, &resp)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeNoTime, resp.Code)
	})
}

func TestTimeHandler_ParsePreferEnd(t *testing.T) {
	r := newTimeRouter(TimeOptions{PreferEnd: true})

	var resp dto.ParseResponse
	get(t, r, "/parse", url.Values{"q": {"Nov 2009"}}, &resp)
	assert.Equal(t, "2009-12-01T00:00:00Z", resp.Instant)
	assert.Equal(t, "2009-11-01T00:00:00Z", resp.Start)
}

func TestTimeHandler_ParseBatch(t *testing.T) {
	r := newTimeRouter(TimeOptions{BatchConcurrency: 2, BatchMaxInputs: 3, ParseTimeout: time.Second})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/parse/batch", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Per-item results in order", func(t *testing.T) {
		w := post(`{"inputs":["2009-11-18","not a date","Nov 2009"]}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.BatchParseResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 3)
		assert.Equal(t, 1, resp.Failed)

		assert.Equal(t, 0, resp.Results[0].Index)
		require.NotNil(t, resp.Results[0].Result)
		assert.Equal(t, "2009-11-18T00:00:00Z", resp.Results[0].Result.Start)

		assert.Nil(t, resp.Results[1].Result)
		require.NotNil(t, resp.Results[1].Error)
		assert.Equal(t, errs.CodeParseError, resp.Results[1].Error.Code)

		require.NotNil(t, resp.Results[2].Result)
		assert.Equal(t, "month", resp.Results[2].Result.Granularity)
	})

	t.Run("Too many inputs", func(t *testing.T) {
		w := post(`{"inputs":["a","b","c","d"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "at most 3")
	})

	t.Run("Empty inputs", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, post(`{"inputs":[]}`).Code)
		assert.Equal(t, http.StatusBadRequest, post(`{`).Code)
	})
}

func TestTimeHandler_Interval(t *testing.T) {
	r := newTimeRouter(TimeOptions{})

	var resp dto.IntervalResponse
	w := get(t, r, "/interval", url.Values{"q": {"Nov 2009"}}, &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2009-11-01T00:00:00Z", resp.Start)
	assert.Equal(t, "2009-12-01T00:00:00Z", resp.End)
	assert.Equal(t, "2009-11-01T00:00:00Z/2009-12-01T00:00:00Z", resp.ISO)
	assert.Equal(t, "1 Nov 2009 to 1 Dec 2009", resp.Text)
	assert.Equal(t, "month", resp.Length.Unit)
	assert.InDelta(t, 1.0, resp.Length.Value, 1e-9)
}

func TestTimeHandler_Duration(t *testing.T) {
	r := newTimeRouter(TimeOptions{})

	var resp dto.DurationResponse
	w := get(t, r, "/duration", url.Values{"q": {"3 days"}}, &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3.0, resp.Value)
	assert.Equal(t, "day", resp.Unit)
	assert.Equal(t, int64(3*24*60*60*1000), resp.Millis)
	assert.Equal(t, "3 days", resp.Text)

	var bad dto.ErrorResponse
	w = get(t, r, "/duration", url.Values{"q": {"soon"}}, &bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimeHandler_Humanize(t *testing.T) {
	r := newTimeRouter(TimeOptions{DisplayZone: time.FixedZone("UTC+2", 2*60*60)})

	var resp dto.HumanizeResponse
	w := get(t, r, "/humanize", url.Values{"q": {"yesterday"}}, &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2023-06-14T00:00:00Z", resp.Instant)
	assert.Equal(t, "2023-06-15T10:30:00Z", resp.Now)
	assert.Equal(t, "1 day ago", resp.Relative)
	assert.NotEmpty(t, resp.Interval)
	assert.Equal(t, "2023-06-14T02:00:00+02:00", resp.Local)

	w = get(t, r, "/humanize", url.Values{"q": {"yesterday"}, "minUnit": {"fortnight"}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimeHandler_Diff(t *testing.T) {
	r := newTimeRouter(TimeOptions{})

	t.Run("Explicit calendar unit", func(t *testing.T) {
		var resp dto.DiffResponse
		w := get(t, r, "/diff", url.Values{"from": {"2020-01-01"}, "to": {"2020-03-01"}, "unit": {"months"}}, &resp)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "month", resp.Duration.Unit)
		assert.InDelta(t, 2.0, resp.Duration.Value, 1e-9)
	})

	t.Run("Best unit", func(t *testing.T) {
		var resp dto.DiffResponse
		get(t, r, "/diff", url.Values{"from": {"2023-06-15T12:30:00Z"}, "to": {"2023-06-15T10:30:00Z"}}, &resp)
		assert.Equal(t, "hour", resp.Duration.Unit)
		assert.InDelta(t, -2.0, resp.Duration.Value, 1e-9)
	})

	t.Run("Missing operand", func(t *testing.T) {
		w := get(t, r, "/diff", url.Values{"from": {"today"}}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
