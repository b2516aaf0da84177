package external

import (
	"context"
	"time"

	"weathertext.app/internal/ports"
)

// TextProviderLoggingDecorator decorates a text provider with structured logging
type TextProviderLoggingDecorator struct {
	provider ports.TextProvider
	logger   ports.Logger
}

// NewTextProviderLoggingDecorator creates a new logging decorator for text providers
func NewTextProviderLoggingDecorator(provider ports.TextProvider, logger ports.Logger) ports.TextProvider {
	return &TextProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetWeatherText wraps the provider call with structured logging
func (d *TextProviderLoggingDecorator) GetWeatherText(ctx context.Context) (string, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather text request started",
		ports.F("provider", providerName),
		ports.F("event", "request"))

	startTime := time.Now()
	text, err := d.provider.GetWeatherText(ctx)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather text request failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return "", err
	}

	d.logger.Info("Weather text request completed",
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("bytes", len(text)))

	return text, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *TextProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
