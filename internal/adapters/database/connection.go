// Package database provides the gorm-backed settings store
package database

import (
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weathertext.app/internal/config"
	"weathertext.app/pkg/errors"
)

// OpenDB opens a connection for the configured driver and migrates the schema
func OpenDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.NewStorageError("failed to create database directory", err)
			}
		}
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, errors.NewConfigurationError("unsupported database driver: "+cfg.Driver, nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.NewStorageError("failed to connect to database", err)
	}

	if err := RunMigrations(db); err != nil {
		_ = CloseDB(db)
		return nil, err
	}

	return db, nil
}

// RunMigrations executes database schema migrations
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&SettingsModel{}); err != nil {
		return errors.NewStorageError("failed to migrate database", err)
	}
	return nil
}

// CloseDB safely closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
