package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"weathertext.app/internal/adapters/api"
	"weathertext.app/internal/adapters/infrastructure"
	"weathertext.app/internal/config"
	"weathertext.app/internal/core/settings"
	"weathertext.app/internal/core/weather"
	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	settingsUseCase *settings.UseCase
	weatherUseCase  *weather.UseCase
	weatherService  *weather.Service

	// the cache table lives as long as the process
	table *weather.Table

	// Adapters
	httpAdapter *api.HTTPServerAdapter

	// Infrastructure
	ports *ports.ApplicationPorts
}

func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, err
	}

	app, err := NewApplicationWithDependencies(ctx, cfg, deps)
	if err != nil {
		_ = deps.Close()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(ctx context.Context, cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
		table:  weather.NewTable(),
	}

	if err := app.initializeUseCases(ctx); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases(ctx context.Context) error {
	settingsUseCase, err := settings.NewUseCase(settings.UseCaseDependencies{
		Store:  a.ports.SettingsStore,
		Logger: a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create settings use case: %w", err)
	}

	if _, err := settingsUseCase.Load(ctx); err != nil {
		if !errors.IsConfigurationError(err) {
			return fmt.Errorf("load settings: %w", err)
		}
		// an unreadable blob is replaced on the next save
		a.ports.Logger.Warn("Persisted settings are unreadable, using defaults", ports.F("error", err.Error()))
	}
	a.settingsUseCase = settingsUseCase

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Registry:        a.ports.ProviderRegistry,
		Metrics:         a.ports.Metrics,
		Logger:          a.ports.Logger,
		CoalesceFetches: a.config.Weather.CoalesceFetches,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	weatherService, err := weather.NewService(weather.ServiceDependencies{
		Cache:    weatherUseCase,
		Settings: settingsUseCase,
		Table:    a.table,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather service: %w", err)
	}
	a.weatherService = weatherService

	return nil
}

func (a *Application) initializeAdapters() error {
	healthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		SettingsStoreChecker: infrastructure.NewSettingsStoreHealthChecker(a.ports.SettingsStore),
		ProviderChecker: infrastructure.NewProviderSelectionHealthChecker(func() ports.ProviderID {
			return a.settingsUseCase.Current().Source
		}),
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:          api.ServerConfig{Port: a.config.Server.Port},
		WeatherService:  a.weatherService,
		SettingsUseCase: a.settingsUseCase,
		HealthChecker:   healthChecker,
		MetricsHandler:  a.deps.Metrics().Handler(),
		Logger:          a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter

	return nil
}

// Start serves HTTP until ctx is canceled
func (a *Application) Start(ctx context.Context) error {
	a.ports.Logger.Info("Starting application",
		ports.F("port", a.config.Server.Port),
		ports.F("source", a.settingsUseCase.Current().Source.String()))

	return a.httpAdapter.Start(ctx)
}

// Shutdown releases the settings store and log files
func (a *Application) Shutdown(ctx context.Context) error {
	a.ports.Logger.Info("Shutting down application")

	done := make(chan error, 1)
	go func() { done <- a.deps.Close() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}

func (a *Application) WeatherService() *weather.Service {
	return a.weatherService
}

func (a *Application) SettingsUseCase() *settings.UseCase {
	return a.settingsUseCase
}
