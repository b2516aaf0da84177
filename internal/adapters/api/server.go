// Package api provides the HTTP host shell for the weather text service
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weathertext.app/internal/core/settings"
	"weathertext.app/internal/core/weather"
	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router          *gin.Engine
	config          ServerConfig
	weatherService  WeatherService
	settingsUseCase SettingsUseCase
	healthChecker   ports.SystemHealthChecker
	logger          ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type WeatherService interface {
	CurrentText(ctx context.Context) (weather.CachedItem, error)
	InsertInto(ctx context.Context, document string, position int) (string, weather.CachedItem, error)
	CacheEntries() []weather.CachedItem
	CacheIsEmpty() bool
}

type SettingsUseCase interface {
	Current() settings.Settings
	Update(ctx context.Context, patch settings.Patch) (settings.Settings, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config          ServerConfig
	WeatherService  WeatherService
	SettingsUseCase SettingsUseCase
	HealthChecker   ports.SystemHealthChecker
	MetricsHandler  http.Handler
	Logger          ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(opts.Logger))

	server := &HTTPServerAdapter{
		router:          router,
		config:          opts.Config,
		weatherService:  opts.WeatherService,
		settingsUseCase: opts.SettingsUseCase,
		healthChecker:   opts.HealthChecker,
		logger:          opts.Logger,
	}

	server.setupRoutes(opts.MetricsHandler)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherService == nil {
		return errors.NewValidationError("weather service is required")
	}
	if opts.SettingsUseCase == nil {
		return errors.NewValidationError("settings use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(metricsHandler http.Handler) {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/weather/text", s.getWeatherText)
		api.POST("/weather/insert", s.insertWeather)
		api.GET("/settings", s.getSettings)
		api.PATCH("/settings", s.patchSettings)
		api.GET("/cache", s.getCache)
	}

	s.router.GET("/health", s.getHealth)
	if metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	s.router.NoRoute(s.notFound)
}

// notFound answers unknown routes with the JSON error body
func (s *HTTPServerAdapter) notFound(c *gin.Context) {
	s.handleError(c, errors.NewNotFoundError(fmt.Sprintf("route %s %s not found", c.Request.Method, c.Request.URL.Path)))
}

// Start serves until ctx is canceled, then shuts down gracefully
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", ports.F("port", s.config.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return errors.NewConfigurationError("HTTP server error", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}
	return nil
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
