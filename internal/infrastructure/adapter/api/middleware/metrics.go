package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// RequestObserver receives one observation per handled request
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics reports request latency labelled by route template, so /events/:id is one series
func Metrics(observer RequestObserver, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveRequest(c.Request.Method, route, c.Writer.Status(), timeProvider.Since(start).Std())
	}
}
