package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/database/migration"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorMapper       *ErrorMapper
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// Connect opens the database, retrying up to RetryAttempts times, and starts pool monitoring
func (m *Manager) Connect() (*gorm.DB, error) {
	m.logger.Info("Connecting to database", m.connectionFields())

	dialector, err := Dialector(m.config)
	if err != nil {
		return nil, err
	}

	attempts := max(m.config.RetryAttempts, 1)
	var gormDB *gorm.DB
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   fmt.Sprintf("%ds", m.config.RetryDelay),
			})
			m.timeProvider.Sleep(coreport.Duration(time.Duration(m.config.RetryDelay) * time.Second))
		}

		gormDB, err = gorm.Open(dialector, &gorm.Config{
			Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc: func() time.Time {
				return m.timeProvider.Now().UTC()
			},
			PrepareStmt: !m.config.IsSQLite(),
		})
		if err == nil {
			err = m.ping(gormDB)
		}
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	openConns := m.config.MaxOpenConns
	if m.config.IsSQLite() {
		// one writer at a time; extra connections only produce "database is locked"
		openConns = 1
	}
	sqlDB.SetMaxOpenConns(openConns)
	sqlDB.SetMaxIdleConns(min(m.config.MaxIdleConns, openConns))
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	fields := m.connectionFields()
	fields["max_open_conns"] = openConns
	fields["query_timeout"] = m.config.QueryTimeout.String()
	m.logger.Info("Successfully connected to database", fields)

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider, m.config.Driver)
	m.connectionMonitor = NewConnectionPoolMonitor(m, m.logger)

	if err := m.connectionMonitor.Start(30 * time.Second); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	return m.db, nil
}

func (m *Manager) ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := m.WithTimeout(context.Background())
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func (m *Manager) connectionFields() map[string]any {
	if m.config.IsSQLite() {
		return map[string]any{"driver": m.config.Driver, "path": m.config.Path}
	}
	return map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	}
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks the connection is alive
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not connected")
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// GetErrorMapper returns the error mapper
func (m *Manager) GetErrorMapper() *ErrorMapper {
	return m.errorMapper
}

// MigrationManager returns the migration manager; nil until Connect succeeds
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}
