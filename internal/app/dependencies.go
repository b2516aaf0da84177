package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"weathertext.app/internal/adapters/external"
	"weathertext.app/internal/adapters/infrastructure"
	"weathertext.app/internal/adapters/storage"
	"weathertext.app/internal/config"
	"weathertext.app/internal/ports"
	"weathertext.app/pkg/logger"
)

const serviceName = "weathertext"

type DependencyContainer struct {
	config  *config.Config
	ports   *ports.ApplicationPorts
	metrics *infrastructure.PrometheusMetricsCollector
	closers []io.Closer
}

// DependencyOptions overrides pieces of the container, mainly for tests
type DependencyOptions struct {
	LogOutput     io.Writer
	SettingsStore ports.SettingsStore
	HTTPClient    external.HTTPClient
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	if err := container.initializePorts(opts); err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	output := opts.LogOutput
	if output == nil {
		output = os.Stdout
	}
	appLogger := infrastructure.NewSlogLoggerAdapter(logger.New(logger.Options{
		Level:  c.config.Log.Level,
		Format: c.config.Log.Format,
		Output: output,
	}).WithField("service", serviceName))

	// Provider calls go to their own file when configured
	var providerLogger ports.Logger = appLogger.With(ports.F("component", "provider_calls"))
	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
		if err != nil {
			appLogger.Warn("Failed to create file logger, falling back to slog", ports.F("error", err.Error()))
		} else {
			c.closers = append(c.closers, fileLogger)
			providerLogger = fileLogger
			appLogger.Info("Provider file logging enabled", ports.F("path", fileLogger.Path()))
		}
	}

	var wttr ports.TextProvider = external.NewWttrProviderAdapter(external.WttrProviderParams{
		URL:     c.config.Weather.WttrURL,
		Timeout: c.config.Weather.HTTPTimeout,
		Client:  opts.HTTPClient,
		Logger:  appLogger.With(ports.F("component", "wttr")),
	})
	var openWeatherMap ports.TextProvider = external.NewOpenWeatherMapProviderAdapter()

	if c.config.Weather.EnableLogging {
		wttr = external.NewTextProviderLoggingDecorator(wttr, providerLogger)
		openWeatherMap = external.NewTextProviderLoggingDecorator(openWeatherMap, providerLogger)
	}

	c.metrics = infrastructure.NewPrometheusMetricsCollector()
	c.metrics.Registry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	registry, err := external.NewProviderRegistryAdapter(external.ProviderRegistryParams{
		Wttr:           wttr,
		OpenWeatherMap: openWeatherMap,
		Metrics:        c.metrics,
	})
	if err != nil {
		return fmt.Errorf("create provider registry: %w", err)
	}

	store := opts.SettingsStore
	if store == nil {
		store, err = storage.NewSettingsStoreFactory().CreateSettingsStore(c.config)
		if err != nil {
			return fmt.Errorf("create settings store: %w", err)
		}
		if closer, ok := store.(io.Closer); ok {
			c.closers = append(c.closers, closer)
		}
	}
	appLogger.Info("Settings store initialized", ports.F("store", store.GetStoreName()))

	c.ports = &ports.ApplicationPorts{
		ProviderRegistry: registry,
		SettingsStore:    store,
		Metrics:          c.metrics,
		Logger:           appLogger,
	}
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the Prometheus collector behind the MetricsCollector port
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Close releases connections and files in reverse order of creation
func (c *DependencyContainer) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			slog.Warn("Error closing resource", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	c.closers = nil
	return firstErr
}
