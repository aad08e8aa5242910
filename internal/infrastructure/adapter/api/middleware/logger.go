package middleware

import (
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key and the header carrying the request ID
const RequestIDKey = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or assigns a fresh one, echoing it back
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDKey)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDKey, id)
		c.Next()
	}
}

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		c.Next()

		latency := timeProvider.Since(start).Std()
		statusCode := c.Writer.Status()

		fields := map[string]any{
			"method":      method,
			"path":        path,
			"query":       c.Request.URL.RawQuery,
			"status":      statusCode,
			"latency_ms":  latency.Milliseconds(),
			"ip":          ip,
			"request_id":  c.GetString(RequestIDKey),
			"user_agent":  c.Request.UserAgent(),
			"status_text": statusText(statusCode),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		if statusCode >= 500 {
			logger.Warn("Request failed", fields)
			return
		}
		logger.Info("Request processed", fields)
	}
}

// statusText returns the class of the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
