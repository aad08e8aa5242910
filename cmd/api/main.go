package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	eventUseCase "github.com/amirhossein-jamali/timenorm/internal/domain/usecase/event"
	"github.com/amirhossein-jamali/timenorm/internal/domain/usecase/parser"

	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      coreport.ParseLogLevel(cfg.Logger.Level),
		Output:     cfg.Logger.Output,
		Rotation: logger.RotationOptions{
			MaxSizeMB:  cfg.Logger.Rotation.MaxSizeMB,
			MaxAgeDays: cfg.Logger.Rotation.MaxAgeDays,
			MaxBackups: cfg.Logger.Rotation.MaxBackups,
			Compress:   cfg.Logger.Rotation.Compress,
		},
	})
	defer func() { _ = appLogger.Flush() }()

	displayZone, err := time.LoadLocation(cfg.Parser.DisplayZone)
	if err != nil {
		appLogger.Warn("Unknown display zone, falling back to UTC", map[string]any{
			"zone":  cfg.Parser.DisplayZone,
			"error": err.Error(),
		})
		displayZone = time.UTC
	}

	tp := timeProvider.NewRealTimeProvider()

	// Only relative expressions see a pinned clock; storage and request timing stay on the wall clock
	parserClock := tp
	if ref := cfg.Parser.ReferenceTime; ref != "" {
		at, ok := parser.NewParser(tp, appLogger).ParseLenient(ref)
		if !ok {
			log.Fatalf("Configuration validation failed: parser.referenceTime %q is not a time", ref)
		}
		appLogger.Warn("Parser clock pinned", map[string]any{"reference_time": at.ISOString()})
		parserClock = timeProvider.NewFixedTimeProvider(at.Std())
	}

	// Connect to the database
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	err = dbManager.MigrationManager().MigrateAll(migrateCtx)
	cancelMigrate()
	if err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	var appMetrics *metrics.Metrics
	var observer middleware.RequestObserver
	parserOpts := []parser.Option{parser.WithPreferEnd(cfg.Parser.PreferEnd)}
	if cfg.Metrics.Enabled {
		appMetrics = metrics.NewMetrics()
		observer = appMetrics
		parserOpts = append(parserOpts, parser.WithRecorder(appMetrics))
	}

	timeParser := parser.NewParser(parserClock, appLogger, parserOpts...)

	// Repositories and use cases
	eventRepo := repository.NewEventRepository(dbManager.DB(), timeParser, tp, appLogger)
	events := eventUseCase.NewEventUseCase(eventRepo, timeParser, tp, appLogger)

	// HTTP layer
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, observer, cfg.Server.CORSOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Time: handler.NewTimeHandler(timeParser, appLogger, handler.TimeOptions{
			PreferEnd:        cfg.Parser.PreferEnd,
			DisplayZone:      displayZone,
			BatchConcurrency: cfg.Parser.BatchConcurrency,
			BatchMaxInputs:   cfg.Parser.BatchMaxInputs,
			ParseTimeout:     cfg.Parser.ParseTimeout,
		}),
		Event:  handler.NewEventHandler(events, appLogger),
		Health: handler.NewHealthHandler(dbManager, tp, appLogger),
	})
	if appMetrics != nil {
		routes.SetupMetrics(router, cfg.Metrics.Path, appMetrics.Handler())
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":       server.Addr,
			"env":        cfg.Environment,
			"driver":     cfg.Database.Driver,
			"prefer_end": cfg.Parser.PreferEnd,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path (or TN_DB_PATH environment variable)")
		}
	case database.DriverPostgres:
		for key, val := range map[string]string{
			"database.host (or TN_DB_HOST environment variable)":         cfg.Database.Host,
			"database.username (or TN_DB_USERNAME environment variable)": cfg.Database.Username,
			"database.password (or TN_DB_PASSWORD environment variable)": cfg.Database.Password,
			"database.database (or TN_DB_NAME environment variable)":     cfg.Database.Database,
		} {
			if val == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be %s or %s",
			cfg.Database.Driver, database.DriverSQLite, database.DriverPostgres)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Parser.BatchConcurrency <= 0 {
		missingConfigs = append(missingConfigs, "parser.batchConcurrency")
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("invalid metrics path: %q, must start with /", cfg.Metrics.Path)
	}

	if err := middleware.CORSConfig(cfg.Server.CORSOrigins).Validate(); err != nil {
		return fmt.Errorf("invalid server.corsOrigins: %w", err)
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverPostgres {
			mode := strings.ToLower(cfg.Database.SSLMode)
			if mode != "require" && mode != "verify-ca" && mode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}
		if slices.Contains(cfg.Server.CORSOrigins, "*") {
			warnings = append(warnings, "server.corsOrigins allows any origin")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
