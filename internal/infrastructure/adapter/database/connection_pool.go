package database

import (
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

// ConnectionPoolMonitor samples sql.DBStats on an interval and warns when the pool runs hot
type ConnectionPoolMonitor struct {
	db           *Manager
	logger       coreport.Logger
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *Manager, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start collects once immediately, then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring; safe to call more than once
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns the last sampled pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}

	return *m.metricsCache
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	if m.db.DB() == nil {
		return fmt.Errorf("database not connected")
	}
	sqlDB, err := m.db.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.metricsCache = &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 1 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return nil
}

// PoolMetrics returns the monitor's last sample, or zero values before Connect
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}
