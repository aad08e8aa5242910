package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventUseCase usecase.EventUseCase
	logger       coreport.Logger
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(eventUseCase usecase.EventUseCase, logger coreport.Logger) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
		logger:       logger,
	}
}

// Record handles POST /events
func (h *EventHandler) Record(c *gin.Context) {
	var req dto.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid event request format", map[string]any{
			"error": err.Error(),
		})
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	event, err := h.eventUseCase.Record(c.Request.Context(), usecase.RecordEventRequest{
		Dataspace: req.Dataspace,
		EventType: req.EventType,
		Count:     req.Count,
		Time:      req.Time,
		Props:     req.Props,
	})
	if err != nil {
		abortWithError(c, h.logger, err, "Error recording event", map[string]any{
			"dataspace": req.Dataspace,
			"time":      req.Time,
		})
		return
	}

	c.Header("Location", c.FullPath()+"/"+event.ID)
	c.JSON(http.StatusCreated, toEventResponse(event))
}

// Get handles GET /events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id := c.Param("id")
	event, err := h.eventUseCase.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, h.logger, err, "Error getting event", map[string]any{"event_id": id})
		return
	}

	c.JSON(http.StatusOK, toEventResponse(event))
}

// Find handles GET /events?dataspace=&period=
func (h *EventHandler) Find(c *gin.Context) {
	dataspace, period, ok := periodQuery(c)
	if !ok {
		return
	}

	events, err := h.eventUseCase.FindInPeriod(c.Request.Context(), dataspace, period)
	if err != nil {
		abortWithError(c, h.logger, err, "Error finding events", map[string]any{
			"dataspace": dataspace,
			"period":    period,
		})
		return
	}

	resp := dto.EventListResponse{
		Dataspace: dataspace,
		Period:    period,
		Events:    make([]dto.EventResponse, 0, len(events)),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, toEventResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

// Histogram handles GET /events/histogram?dataspace=&period=
func (h *EventHandler) Histogram(c *gin.Context) {
	dataspace, period, ok := periodQuery(c)
	if !ok {
		return
	}

	buckets, err := h.eventUseCase.DailyHistogram(c.Request.Context(), dataspace, period)
	if err != nil {
		abortWithError(c, h.logger, err, "Error building histogram", map[string]any{
			"dataspace": dataspace,
			"period":    period,
		})
		return
	}

	resp := dto.HistogramResponse{
		Dataspace: dataspace,
		Period:    period,
		Days:      make([]dto.DayCountResponse, 0, len(buckets)),
	}
	for _, b := range buckets {
		resp.Total += b.Count
		resp.Days = append(resp.Days, dto.DayCountResponse{Day: b.Day.ISODateString(), Count: b.Count})
	}
	c.JSON(http.StatusOK, resp)
}

func periodQuery(c *gin.Context) (string, string, bool) {
	dataspace, ok := requiredQuery(c, "dataspace")
	if !ok {
		return "", "", false
	}
	period, ok := requiredQuery(c, "period")
	if !ok {
		return "", "", false
	}
	return dataspace, period, true
}

func toEventResponse(e *entity.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:        e.ID,
		Dataspace: e.Dataspace,
		EventType: e.EventType,
		Count:     e.Count,
		Time:      e.Time.ISOString(),
		RawTime:   e.RawTime,
		Props:     e.Props,
		CreatedAt: e.CreatedAt.ISOString(),
	}
}
