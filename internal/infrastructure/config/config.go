package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Parser      ParserConfig   `mapstructure:"parser"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
}

// DatabaseConfig contains database connection settings. Driver is "postgres" or
// "sqlite"; Path is only read for sqlite.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level    string         `mapstructure:"level"`
	Format   string         `mapstructure:"format"`
	Output   string         `mapstructure:"output"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig applies when the logger output is a file
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"maxSizeMb"`
	MaxAgeDays int  `mapstructure:"maxAgeDays"`
	MaxBackups int  `mapstructure:"maxBackups"`
	Compress   bool `mapstructure:"compress"`
}

// ParserConfig contains time normalization settings
type ParserConfig struct {
	// PreferEnd makes whole-unit matches resolve to their end ("as of" semantics)
	PreferEnd bool `mapstructure:"preferEnd"`

	// ReferenceTime pins "now" for relative expressions, e.g. when replaying old logs.
	// Any parseable expression; empty means the wall clock.
	ReferenceTime string `mapstructure:"referenceTime"`

	// DisplayZone is an IANA zone used only when rendering local hours
	DisplayZone      string        `mapstructure:"displayZone"`
	BatchConcurrency int           `mapstructure:"batchConcurrency"`
	BatchMaxInputs   int           `mapstructure:"batchMaxInputs"`
	ParseTimeout     time.Duration `mapstructure:"parseTimeout"` // milliseconds
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
