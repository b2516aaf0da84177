package storage

import (
	"fmt"

	"weathertext.app/internal/adapters/database"
	"weathertext.app/internal/config"
	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

type SettingsStoreFactory struct{}

func NewSettingsStoreFactory() *SettingsStoreFactory {
	return &SettingsStoreFactory{}
}

// CreateSettingsStore builds the store selected by SETTINGS_STORE. Stores
// holding a connection also implement io.Closer.
func (f *SettingsStoreFactory) CreateSettingsStore(cfg *config.Config) (ports.SettingsStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("config cannot be nil", nil)
	}

	switch cfg.Settings.Store {
	case config.SettingsStoreFile:
		store, err := NewFileSettingsStore(cfg.Settings.FilePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.SettingsStoreRedis:
		store, err := NewRedisSettingsStore(&cfg.Redis, cfg.Settings.RedisKey)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.SettingsStoreDatabase:
		db, err := database.OpenDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		store, err := database.NewSettingsStoreAdapter(db, cfg.Settings.Name)
		if err != nil {
			_ = database.CloseDB(db)
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported settings store: %s", cfg.Settings.Store.String()), nil)
	}
}
