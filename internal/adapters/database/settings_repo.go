package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weathertext.app/pkg/errors"
)

// SettingsModel stores one settings blob per name
type SettingsModel struct {
	Name      string `gorm:"primaryKey;size:64"`
	Data      string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (SettingsModel) TableName() string {
	return "settings"
}

// SettingsStoreAdapter implements the SettingsStore port using GORM
type SettingsStoreAdapter struct {
	db   *gorm.DB
	name string
}

// NewSettingsStoreAdapter creates a settings store for the row identified by name
func NewSettingsStoreAdapter(db *gorm.DB, name string) (*SettingsStoreAdapter, error) {
	if db == nil {
		return nil, errors.NewConfigurationError("database connection cannot be nil", nil)
	}
	if name == "" {
		return nil, errors.NewValidationError("settings name cannot be empty")
	}
	return &SettingsStoreAdapter{db: db, name: name}, nil
}

// Load returns the stored blob, or nil when the row does not exist yet
func (s *SettingsStoreAdapter) Load(ctx context.Context) ([]byte, error) {
	var model SettingsModel
	result := s.db.WithContext(ctx).Where("name = ?", s.name).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.NewStorageError("failed to load settings", result.Error)
	}

	return []byte(model.Data), nil
}

// Save inserts or replaces the settings row
func (s *SettingsStoreAdapter) Save(ctx context.Context, data []byte) error {
	model := SettingsModel{Name: s.name, Data: string(data)}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewStorageError("failed to save settings", result.Error)
	}

	return nil
}

// GetStoreName returns the name of this store
func (s *SettingsStoreAdapter) GetStoreName() string {
	return "database"
}

// Ping checks the underlying connection
func (s *SettingsStoreAdapter) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.NewStorageError("failed to get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewStorageError("database ping failed", err)
	}
	return nil
}

// Close closes the database connection
func (s *SettingsStoreAdapter) Close() error {
	return CloseDB(s.db)
}
