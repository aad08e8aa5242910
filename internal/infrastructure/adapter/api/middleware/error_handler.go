package middleware

import (
	"net/http"

	errs "github.com/amirhossein-jamali/timenorm/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(RequestIDKey),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    errs.ErrorCode(errs.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// NotFound answers unknown routes with the standard error body
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidRequest),
			Message: "Route not found: " + c.Request.Method + " " + c.Request.URL.Path,
		})
	}
}
