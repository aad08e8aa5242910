package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers the router dispatches to
type Handlers struct {
	Time   *handler.TimeHandler
	Event  *handler.EventHandler
	Health *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/parse", h.Time.Parse)
		v1.POST("/parse/batch", h.Time.ParseBatch)
		v1.GET("/interval", h.Time.Interval)
		v1.GET("/duration", h.Time.Duration)
		v1.GET("/humanize", h.Time.Humanize)
		v1.GET("/diff", h.Time.Diff)
	}

	events := v1.Group("/events")
	{
		events.POST("", h.Event.Record)
		events.GET("", h.Event.Find)
		events.GET("/histogram", h.Event.Histogram)
		events.GET("/:id", h.Event.Get)
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMetrics exposes the Prometheus handler at path
func SetupMetrics(router *gin.Engine, path string, metricsHandler http.Handler) {
	router.GET(path, gin.WrapH(metricsHandler))
}

// SetupMiddlewares configures global middlewares for the API. observer may be nil
// when metrics are disabled.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, observer middleware.RequestObserver, corsOrigins []string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	if observer != nil {
		router.Use(middleware.Metrics(observer, timeProvider))
	}
	router.Use(middleware.CORS(corsOrigins))
}
