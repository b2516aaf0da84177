package external

import (
	"context"
	"fmt"
	"time"

	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

// ProviderRegistryAdapter dispatches fetches over the closed provider set
type ProviderRegistryAdapter struct {
	wttr           ports.TextProvider
	openWeatherMap ports.TextProvider
	metrics        ports.MetricsCollector
}

// ProviderRegistryParams holds the strategy for every provider
type ProviderRegistryParams struct {
	Wttr           ports.TextProvider
	OpenWeatherMap ports.TextProvider
	Metrics        ports.MetricsCollector
}

func NewProviderRegistryAdapter(params ProviderRegistryParams) (*ProviderRegistryAdapter, error) {
	if params.Wttr == nil {
		return nil, errors.NewValidationError("wttr provider is required")
	}
	if params.OpenWeatherMap == nil {
		return nil, errors.NewValidationError("openweathermap provider is required")
	}
	if params.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &ProviderRegistryAdapter{
		wttr:           params.Wttr,
		openWeatherMap: params.OpenWeatherMap,
		metrics:        params.Metrics,
	}, nil
}

// Fetch runs the strategy of provider. Unset and unknown providers fail
// with ConfigurationError without any outbound call.
func (r *ProviderRegistryAdapter) Fetch(ctx context.Context, provider ports.ProviderID) (string, error) {
	strategy, err := r.strategyFor(provider)
	if err != nil {
		return "", err
	}

	start := time.Now()
	text, err := strategy.GetWeatherText(ctx)
	r.metrics.RecordProviderRequest(ctx, provider.String(), err == nil, time.Since(start))

	if err != nil {
		return "", err
	}
	return text, nil
}

func (r *ProviderRegistryAdapter) strategyFor(provider ports.ProviderID) (ports.TextProvider, error) {
	switch provider {
	case ports.ProviderWttr:
		return r.wttr, nil
	case ports.ProviderOpenWeatherMap:
		return r.openWeatherMap, nil
	case ports.ProviderUnset:
		return nil, errors.NewConfigurationError("no provider configured", nil)
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unknown provider %s (%d)", provider.String(), int(provider)), nil)
	}
}
