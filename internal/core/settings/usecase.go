package settings

import (
	"context"
	"encoding/json"
	"sync"

	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

type UseCase struct {
	store  ports.SettingsStore
	logger ports.Logger

	mu      sync.RWMutex
	current Settings
}

type UseCaseDependencies struct {
	Store  ports.SettingsStore
	Logger ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("settings store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		store:   deps.Store,
		logger:  deps.Logger,
		current: Defaults(),
	}, nil
}

// Load reads the persisted blob and merges it over the defaults.
// The merged result becomes the current settings.
func (uc *UseCase) Load(ctx context.Context) (Settings, error) {
	blob, err := uc.store.Load(ctx)
	if err != nil {
		return uc.Current(), err
	}

	merged, rejected, err := Merge(Defaults(), blob)
	if err != nil {
		return uc.Current(), errors.NewConfigurationError("invalid persisted settings", err)
	}
	if len(rejected) > 0 {
		uc.logger.Warn("Ignoring invalid persisted settings values",
			ports.F("store", uc.store.GetStoreName()),
			ports.F("keys", rejected))
	}

	uc.mu.Lock()
	uc.current = merged
	uc.mu.Unlock()

	uc.logger.Info("Settings loaded",
		ports.F("store", uc.store.GetStoreName()),
		ports.F("source", merged.Source.String()),
		ports.F("cache_seconds", merged.CacheSeconds),
		ports.F("add_ribbon", merged.AddRibbon),
		ports.F("persisted", len(blob) > 0))

	return merged, nil
}

// Current returns the settings in effect
func (uc *UseCase) Current() Settings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

// Update applies patch, validates the result and saves it. On any failure the
// current settings are left untouched.
func (uc *UseCase) Update(ctx context.Context, patch Patch) (Settings, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.current.Apply(patch)
	if err := next.Validate(); err != nil {
		return uc.current, errors.NewValidationError("invalid settings: " + err.Error())
	}

	if err := uc.save(ctx, next); err != nil {
		return uc.current, err
	}

	uc.current = next
	uc.logger.Info("Settings updated",
		ports.F("source", next.Source.String()),
		ports.F("cache_seconds", next.CacheSeconds),
		ports.F("add_ribbon", next.AddRibbon))

	return next, nil
}

// Save persists the current settings as they are
func (uc *UseCase) Save(ctx context.Context) error {
	uc.mu.RLock()
	current := uc.current
	uc.mu.RUnlock()

	return uc.save(ctx, current)
}

func (uc *UseCase) save(ctx context.Context, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.NewStorageError("failed to encode settings", err)
	}
	if err := uc.store.Save(ctx, data); err != nil {
		uc.logger.Error("Failed to save settings",
			ports.F("store", uc.store.GetStoreName()),
			ports.F("error", err.Error()))
		return err
	}
	return nil
}
