package weather

import (
	"context"

	"weathertext.app/internal/core/settings"
	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

// SettingsReader exposes the settings currently in effect
type SettingsReader interface {
	Current() settings.Settings
}

// Service is what the host shells call: it reads the selected provider and
// cache seconds from settings and serves text from the process-wide table.
type Service struct {
	cache    *UseCase
	settings SettingsReader
	table    *Table
	logger   ports.Logger
}

type ServiceDependencies struct {
	Cache    *UseCase
	Settings SettingsReader
	Table    *Table
	Logger   ports.Logger
}

func NewService(deps ServiceDependencies) (*Service, error) {
	if deps.Cache == nil {
		return nil, errors.NewValidationError("weather use case is required")
	}
	if deps.Settings == nil {
		return nil, errors.NewValidationError("settings reader is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	table := deps.Table
	if table == nil {
		table = NewTable()
	}

	return &Service{
		cache:    deps.Cache,
		settings: deps.Settings,
		table:    table,
		logger:   deps.Logger,
	}, nil
}

// CurrentText returns the weather text of the selected provider
func (s *Service) CurrentText(ctx context.Context) (CachedItem, error) {
	current := s.settings.Current()
	return s.cache.Get(ctx, current.Source, current.CacheSeconds, s.table)
}

// InsertInto fetches the current text and inserts it into document at position
func (s *Service) InsertInto(ctx context.Context, document string, position int) (string, CachedItem, error) {
	// reject a bad position before spending a fetch on it
	if _, err := InsertAt(document, position, ""); err != nil {
		return "", CachedItem{}, err
	}

	item, err := s.CurrentText(ctx)
	if err != nil {
		return "", CachedItem{}, err
	}

	updated, err := InsertAt(document, position, item.Text)
	if err != nil {
		return "", CachedItem{}, err
	}

	s.logger.Debug("Weather text inserted",
		ports.F("provider", item.Provider.String()),
		ports.F("position", position),
		ports.F("length", len(item.Text)))

	return updated, item, nil
}

// CacheEntries returns a snapshot of the table ordered by provider
func (s *Service) CacheEntries() []CachedItem {
	return s.table.Entries()
}

// CacheIsEmpty reports whether nothing is cached
func (s *Service) CacheIsEmpty() bool {
	return IsEmpty(s.table)
}
