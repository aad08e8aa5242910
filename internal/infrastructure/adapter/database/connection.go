package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dialector returns the gorm dialector for the configured driver. File-backed sqlite
// databases get their parent directory created first.
func Dialector(config *Config) (gorm.Dialector, error) {
	switch config.Driver {
	case DriverPostgres:
		return postgres.Open(config.DSN()), nil
	case DriverSQLite:
		if err := ensureSQLiteDir(config.Path); err != nil {
			return nil, err
		}
		return sqlite.Open(config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}
}

func ensureSQLiteDir(path string) error {
	if strings.Contains(path, ":memory:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}
