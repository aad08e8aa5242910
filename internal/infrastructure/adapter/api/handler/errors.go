package handler

import (
	"context"
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrParse),
		errors.Is(err, errs.ErrNoTime),
		errors.Is(err, errs.ErrInvalidInterval),
		errors.Is(err, errs.ErrInvalidUnit),
		errors.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateEvent):
		return http.StatusConflict
	case errors.Is(err, errs.ErrConstraintViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrDatabaseConnection),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse builds the body for err. Server-side failures never leak their cause.
func errorResponse(err error) dto.ErrorResponse {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		if status == http.StatusServiceUnavailable {
			return dto.ErrorResponse{Code: errs.ErrorCode(errs.ErrDatabaseConnection), Message: "Service temporarily unavailable"}
		}
		return dto.ErrorResponse{Code: errs.ErrorCode(errs.ErrInternalServer), Message: "Internal server error"}
	}
	return dto.ErrorResponse{Code: errs.ErrorCode(err), Message: err.Error()}
}

// abortWithError records err on the context for the request logger and writes the response
func abortWithError(c *gin.Context, logger coreport.Logger, err error, logMsg string, fields map[string]any) {
	status := statusFor(err)
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	fields["status"] = status
	if status >= http.StatusInternalServerError {
		logger.Error(logMsg, fields)
	} else {
		logger.Debug(logMsg, fields)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorResponse(err))
}

// badRequest rejects malformed input that never reached the domain
func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: message,
	})
}
