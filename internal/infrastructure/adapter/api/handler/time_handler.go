package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/calendar"
	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timenorm/internal/domain/usecase/parser"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TimeOptions tunes the time endpoints
type TimeOptions struct {
	PreferEnd        bool
	DisplayZone      *time.Location
	BatchConcurrency int
	BatchMaxInputs   int
	ParseTimeout     time.Duration
}

// TimeHandler serves the parsing and formatting endpoints
type TimeHandler struct {
	parser  usecase.TimeParser
	logger  coreport.Logger
	options TimeOptions
}

// NewTimeHandler creates a new time handler instance
func NewTimeHandler(parser usecase.TimeParser, logger coreport.Logger, options TimeOptions) *TimeHandler {
	return &TimeHandler{
		parser:  parser,
		logger:  logger,
		options: options,
	}
}

// Parse handles GET /parse?q=
func (h *TimeHandler) Parse(c *gin.Context) {
	q, ok := requiredQuery(c, "q")
	if !ok {
		return
	}

	res, err := h.parser.ParseDetailed(q)
	if err != nil {
		abortWithError(c, h.logger, err, "Parse rejected", map[string]any{"input": q})
		return
	}

	c.JSON(http.StatusOK, h.toParseResponse(res))
}

// ParseBatch handles POST /parse/batch
func (h *TimeHandler) ParseBatch(c *gin.Context) {
	var req dto.BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}
	if h.options.BatchMaxInputs > 0 && len(req.Inputs) > h.options.BatchMaxInputs {
		badRequest(c, "Too many inputs: at most "+strconv.Itoa(h.options.BatchMaxInputs)+" per batch")
		return
	}

	ctx := c.Request.Context()
	if h.options.ParseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.options.ParseTimeout)
		defer cancel()
	}

	results, err := parser.BatchParse(ctx, h.parser, req.Inputs, h.options.BatchConcurrency)
	if err != nil {
		abortWithError(c, h.logger, err, "Batch parse aborted", map[string]any{"inputs": len(req.Inputs)})
		return
	}

	resp := dto.BatchParseResponse{Results: make([]dto.BatchItemResponse, 0, len(results))}
	for _, r := range results {
		item := dto.BatchItemResponse{Index: r.Index, Input: r.Input}
		if r.Err != nil {
			body := errorResponse(r.Err)
			item.Error = &body
			resp.Failed++
		} else {
			parsed := h.toParseResponse(r.Result)
			item.Result = &parsed
		}
		resp.Results = append(resp.Results, item)
	}

	c.JSON(http.StatusOK, resp)
}

// Interval handles GET /interval?q=
func (h *TimeHandler) Interval(c *gin.Context) {
	q, ok := requiredQuery(c, "q")
	if !ok {
		return
	}

	iv, err := h.parser.ParseInterval(q)
	if err != nil {
		abortWithError(c, h.logger, err, "Interval rejected", map[string]any{"input": q})
		return
	}

	c.JSON(http.StatusOK, dto.IntervalResponse{
		Input:  q,
		Start:  iv.Start().ISOString(),
		End:    iv.End().ISOString(),
		ISO:    iv.ISOString(),
		Text:   iv.String(),
		Human:  calendar.FormatInterval(iv, h.parser.Now()),
		Length: toDurationResponse(iv.Length()),
	})
}

// Duration handles GET /duration?q=
func (h *TimeHandler) Duration(c *gin.Context) {
	q, ok := requiredQuery(c, "q")
	if !ok {
		return
	}

	d, err := h.parser.ParseDuration(q)
	if err != nil {
		abortWithError(c, h.logger, err, "Duration rejected", map[string]any{"input": q})
		return
	}

	c.JSON(http.StatusOK, toDurationResponse(d))
}

// Humanize handles GET /humanize?q=&minUnit=
func (h *TimeHandler) Humanize(c *gin.Context) {
	q, ok := requiredQuery(c, "q")
	if !ok {
		return
	}
	minUnit, ok := unitQuery(c, "minUnit", entity.Second)
	if !ok {
		return
	}

	res, err := h.parser.ParseDetailed(q)
	if err != nil {
		abortWithError(c, h.logger, err, "Humanize rejected", map[string]any{"input": q})
		return
	}

	now := h.parser.Now()
	at := h.pick(res.Interval)
	resp := dto.HumanizeResponse{
		Input:    q,
		Instant:  at.ISOString(),
		Now:      now.ISOString(),
		Relative: calendar.FormatRelative(at, now, minUnit),
	}
	if !res.Interval.IsPoint() {
		resp.Interval = calendar.FormatInterval(res.Interval, now)
	}
	if h.options.DisplayZone != nil && h.options.DisplayZone != time.UTC {
		resp.Local = at.In(h.options.DisplayZone).Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, resp)
}

// Diff handles GET /diff?from=&to=&unit=. Without a unit the best-fitting one is used.
func (h *TimeHandler) Diff(c *gin.Context) {
	from, ok := requiredQuery(c, "from")
	if !ok {
		return
	}
	to, ok := requiredQuery(c, "to")
	if !ok {
		return
	}

	a, err := h.parser.Parse(from)
	if err != nil {
		abortWithError(c, h.logger, err, "Diff rejected", map[string]any{"input": from})
		return
	}
	b, err := h.parser.Parse(to)
	if err != nil {
		abortWithError(c, h.logger, err, "Diff rejected", map[string]any{"input": to})
		return
	}

	var d entity.Duration
	if c.Query("unit") == "" {
		d = entity.NewDuration(float64(a.DiffMillis(b)), entity.Millisecond).FixUnits()
	} else {
		unit, ok := unitQuery(c, "unit", entity.Millisecond)
		if !ok {
			return
		}
		d = a.Diff(b, unit)
	}

	c.JSON(http.StatusOK, dto.DiffResponse{
		From:     a.ISOString(),
		To:       b.ISOString(),
		Duration: toDurationResponse(d),
	})
}

// pick mirrors Parse: the start of the span, or its end in prefer-end mode
func (h *TimeHandler) pick(iv entity.Interval) entity.Instant {
	if h.options.PreferEnd {
		return iv.End()
	}
	return iv.Start()
}

func (h *TimeHandler) toParseResponse(res *usecase.ParseResult) dto.ParseResponse {
	resp := dto.ParseResponse{
		Input:       res.Input,
		Instant:     h.pick(res.Interval).ISOString(),
		Start:       res.Interval.Start().ISOString(),
		End:         res.Interval.End().ISOString(),
		Granularity: res.Granularity.String(),
		Strategy:    res.Strategy,
		Relative:    res.Relative,
	}
	for _, w := range res.Warnings {
		resp.Warnings = append(resp.Warnings, dto.WarningResponse{Heuristic: w.Heuristic, Assumption: w.Assumption})
	}
	return resp
}

func toDurationResponse(d entity.Duration) dto.DurationResponse {
	return dto.DurationResponse{
		Value:  d.Value,
		Unit:   d.Unit.String(),
		Millis: d.Millis(),
		Text:   d.String(),
		Human:  calendar.FormatDuration(d, entity.Second),
	}
}

func requiredQuery(c *gin.Context, name string) (string, bool) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		badRequest(c, "Missing required query parameter: "+name)
		return "", false
	}
	return v, true
}

func unitQuery(c *gin.Context, name string, fallback entity.TimeUnit) (entity.TimeUnit, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	unit, err := entity.ParseTimeUnit(raw)
	if err != nil {
		badRequest(c, err.Error())
		return fallback, false
	}
	return unit, true
}
