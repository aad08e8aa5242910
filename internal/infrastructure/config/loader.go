package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. TN_SERVER_PORT
const EnvPrefix = "TN"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths)
}

// LoadConfigFrom reads <env>.yaml from the first of paths that has it, then applies
// environment overrides
func LoadConfigFrom(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Set environment variables to override config
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Process environment variable overrides for sensitive values
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.corsOrigins", []string{"*"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "timenorm.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.rotation.maxSizeMb", 100)
	v.SetDefault("logger.rotation.maxAgeDays", 14)
	v.SetDefault("logger.rotation.maxBackups", 5)
	v.SetDefault("logger.rotation.compress", true)

	v.SetDefault("parser.preferEnd", false)
	v.SetDefault("parser.referenceTime", "")
	v.SetDefault("parser.displayZone", "UTC")
	v.SetDefault("parser.batchConcurrency", 8)
	v.SetDefault("parser.batchMaxInputs", 1000)
	v.SetDefault("parser.parseTimeout", 2000) // milliseconds

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment to use based on TN_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	// Database sensitive information
	for env, key := range map[string]string{
		"TN_DB_DRIVER":   "database.driver",
		"TN_DB_PATH":     "database.path",
		"TN_DB_HOST":     "database.host",
		"TN_DB_PORT":     "database.port",
		"TN_DB_USERNAME": "database.username",
		"TN_DB_PASSWORD": "database.password",
		"TN_DB_NAME":     "database.database",
		"TN_DB_SSL_MODE": "database.sslMode",

		"TN_SERVER_HOST":   "server.host",
		"TN_LOGGER_LEVEL":  "logger.level",
		"TN_LOGGER_OUTPUT": "logger.output",

		"TN_PARSER_DISPLAY_ZONE":   "parser.displayZone",
		"TN_PARSER_REFERENCE_TIME": "parser.referenceTime",
	} {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	if port := getEnvInt("TN_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if maxOpenConns := getEnvInt("TN_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("TN_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if retryAttempts := getEnvInt("TN_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if concurrency := getEnvInt("TN_PARSER_BATCH_CONCURRENCY", 0); concurrency > 0 {
		v.Set("parser.batchConcurrency", concurrency)
	}
	if preferEnd := os.Getenv("TN_PARSER_PREFER_END"); preferEnd != "" {
		if b, err := strconv.ParseBool(preferEnd); err == nil {
			v.Set("parser.preferEnd", b)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.RetryDelay *= time.Second

	config.Parser.ParseTimeout *= time.Millisecond
}
