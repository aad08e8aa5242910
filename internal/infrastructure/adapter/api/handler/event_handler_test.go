package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/timenorm/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EventHandlerTestSuite struct {
	suite.Suite
	useCase *usecasemocks.MockEventUseCase
	router  *gin.Engine
}

func (s *EventHandlerTestSuite) SetupTest() {
	s.useCase = usecasemocks.NewMockEventUseCase(s.T())
	h := NewEventHandler(s.useCase, logger.NewNoopLogger())

	s.router = gin.New()
	s.router.POST("/events", h.Record)
	s.router.GET("/events", h.Find)
	s.router.GET("/events/histogram", h.Histogram)
	s.router.GET("/events/:id", h.Get)
}

func (s *EventHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *EventHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleEvent(t *testing.T) *entity.Event {
	t.Helper()
	e, err := entity.NewEvent("ev-1", "Shop", "pageview", 2,
		entity.NewInstant(2023, 6, 14, 0, 0, 0), "yesterday",
		map[string]any{"path": "/cart"}, fixedInstant())
	require.NoError(t, err)
	return e
}

func fixedInstant() entity.Instant {
	return entity.FromTime(fixedNow)
}

func (s *EventHandlerTestSuite) TestRecord_Success() {
	event := sampleEvent(s.T())
	s.useCase.EXPECT().
		Record(mock.Anything, usecase.RecordEventRequest{
			Dataspace: "Shop",
			EventType: "pageview",
			Count:     2,
			Time:      "yesterday",
			Props:     map[string]any{"path": "/cart"},
		}).
		Return(event, nil).
		Once()

	w := s.do(http.MethodPost, "/events",
		`{"dataspace":"Shop","eventType":"pageview","count":2,"time":"yesterday","props":{"path":"/cart"}}`)

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("/events/ev-1", w.Header().Get("Location"))

	var resp dto.EventResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("ev-1", resp.ID)
	s.Equal("shop", resp.Dataspace)
	s.Equal("2023-06-14T00:00:00Z", resp.Time)
	s.Equal("yesterday", resp.RawTime)
	s.Equal("/cart", resp.Props["path"])
	s.Equal("2023-06-15T10:30:00Z", resp.CreatedAt)
}

func (s *EventHandlerTestSuite) TestRecord_InvalidBody() {
	for _, body := range []string{
		`{"eventType":"pageview"}`,
		`{"dataspace":"shop","eventType":"pageview","count":-1}`,
		`not json`,
	} {
		w := s.do(http.MethodPost, "/events", body)
		s.Equal(http.StatusBadRequest, w.Code, body)
		s.Equal(errs.CodeInvalidRequest, s.decodeError(w).Code, body)
	}
}

func (s *EventHandlerTestSuite) TestRecord_UnparseableTime() {
	s.useCase.EXPECT().
		Record(mock.Anything, mock.AnythingOfType("usecase.RecordEventRequest")).
		Return(nil, errs.NewParseError("next blursday", "no strategy matched", nil)).
		Once()

	w := s.do(http.MethodPost, "/events", `{"dataspace":"shop","eventType":"pageview","time":"next blursday"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	resp := s.decodeError(w)
	s.Equal(errs.CodeParseError, resp.Code)
	s.Contains(resp.Message, "next blursday")
}

func (s *EventHandlerTestSuite) TestGet() {
	s.Run("Found", func() {
		s.useCase.EXPECT().Get(mock.Anything, "ev-1").Return(sampleEvent(s.T()), nil).Once()

		w := s.do(http.MethodGet, "/events/ev-1", "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("Not found", func() {
		s.useCase.EXPECT().Get(mock.Anything, "nope").
			Return(nil, fmt.Errorf("%w: nope", errs.ErrEventNotFound)).Once()

		w := s.do(http.MethodGet, "/events/nope", "")
		s.Equal(http.StatusNotFound, w.Code)
		s.Equal(errs.CodeEventNotFound, s.decodeError(w).Code)
	})

	s.Run("Database down hides the cause", func() {
		s.useCase.EXPECT().Get(mock.Anything, "ev-2").
			Return(nil, fmt.Errorf("%w: dial tcp: refused", errs.ErrDatabaseConnection)).Once()

		w := s.do(http.MethodGet, "/events/ev-2", "")
		s.Equal(http.StatusServiceUnavailable, w.Code)
		resp := s.decodeError(w)
		s.Equal(errs.CodeDatabase, resp.Code)
		s.NotContains(resp.Message, "dial tcp")
	})

	s.Run("Unexpected failure", func() {
		s.useCase.EXPECT().Get(mock.Anything, "ev-3").Return(nil, errors.New("boom")).Once()

		w := s.do(http.MethodGet, "/events/ev-3", "")
		s.Equal(http.StatusInternalServerError, w.Code)
		s.Equal(errs.CodeInternalServer, s.decodeError(w).Code)
	})
}

func (s *EventHandlerTestSuite) TestFind() {
	s.useCase.EXPECT().FindInPeriod(mock.Anything, "shop", "last week").
		Return([]*entity.Event{sampleEvent(s.T())}, nil).Once()

	w := s.do(http.MethodGet, "/events?dataspace=shop&period=last+week", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp dto.EventListResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("last week", resp.Period)
	s.Len(resp.Events, 1)
}

func (s *EventHandlerTestSuite) TestFind_MissingPeriod() {
	w := s.do(http.MethodGet, "/events?dataspace=shop", "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.decodeError(w).Message, "period")
}

func (s *EventHandlerTestSuite) TestHistogram() {
	s.useCase.EXPECT().DailyHistogram(mock.Anything, "shop", "this week").
		Return([]usecase.DayCount{
			{Day: entity.NewInstant(2023, 6, 12, 0, 0, 0), Count: 3},
			{Day: entity.NewInstant(2023, 6, 13, 0, 0, 0), Count: 0},
			{Day: entity.NewInstant(2023, 6, 14, 0, 0, 0), Count: 1.5},
		}, nil).Once()

	w := s.do(http.MethodGet, "/events/histogram?dataspace=shop&period=this+week", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp dto.HistogramResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(4.5, resp.Total)
	s.Require().Len(resp.Days, 3)
	s.Equal("2023-06-12", resp.Days[0].Day)
	s.Equal(0.0, resp.Days[1].Count)
}

func (s *EventHandlerTestSuite) TestHistogram_BadPeriod() {
	s.useCase.EXPECT().DailyHistogram(mock.Anything, "shop", "+0100").
		Return(nil, errs.ErrNoTime).Once()

	w := s.do(http.MethodGet, "/events/histogram?dataspace=shop&period=%2B0100", "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errs.CodeNoTime, s.decodeError(w).Code)
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tp := timeprovider.NewFixedTimeProvider(fixedNow)

	tests := []struct {
		name     string
		pingErr  error
		status   int
		overall  string
		database string
	}{
		{"Healthy", nil, http.StatusOK, "ok", "ok"},
		{"Database down", errors.New("connection refused"), http.StatusServiceUnavailable, "degraded", "unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(stubPinger{err: tt.pingErr}, tp, logger.NewNoopLogger())
			r := gin.New()
			r.GET("/health", h.Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, w.Code)
			var resp dto.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.overall, resp.Status)
			assert.Equal(t, tt.database, resp.Database)
			assert.Equal(t, "2023-06-15T10:30:00Z", resp.Time)
		})
	}
}
