package external

import (
	"context"

	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

// OpenWeatherMapProviderAdapter is selectable in settings but has no fetch strategy yet
type OpenWeatherMapProviderAdapter struct{}

func NewOpenWeatherMapProviderAdapter() *OpenWeatherMapProviderAdapter {
	return &OpenWeatherMapProviderAdapter{}
}

// GetWeatherText always fails with NotImplementedError
func (p *OpenWeatherMapProviderAdapter) GetWeatherText(ctx context.Context) (string, error) {
	return "", errors.NewNotImplementedError("weather provider openweathermap is not implemented")
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return ports.ProviderOpenWeatherMap.String()
}
