package ports

import (
	"context"
	"strings"
)

// ProviderID identifies a weather text source
type ProviderID int

const (
	ProviderUnset ProviderID = iota
	ProviderWttr
	ProviderOpenWeatherMap

	// ProviderUnknown marks a persisted or requested value that matches no provider
	ProviderUnknown
)

// String returns the settings representation of the provider
func (p ProviderID) String() string {
	switch p {
	case ProviderUnset:
		return "not-selected"
	case ProviderWttr:
		return "wttr"
	case ProviderOpenWeatherMap:
		return "openweathermap"
	default:
		return "unknown"
	}
}

// IsValid reports whether the value can be stored in settings
func (p ProviderID) IsValid() bool {
	return p == ProviderUnset || p == ProviderWttr || p == ProviderOpenWeatherMap
}

// ProviderIDFromString converts a settings value to ProviderID
func ProviderIDFromString(s string) ProviderID {
	switch strings.TrimSpace(s) {
	case "", "not-selected":
		return ProviderUnset
	case "wttr":
		return ProviderWttr
	case "openweathermap":
		return ProviderOpenWeatherMap
	default:
		return ProviderUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and envconfig
func (p *ProviderID) UnmarshalText(text []byte) error {
	*p = ProviderIDFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (p ProviderID) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// SelectableProviders lists the values a user may choose, in display order
func SelectableProviders() []ProviderID {
	return []ProviderID{ProviderUnset, ProviderWttr, ProviderOpenWeatherMap}
}

// TextProvider is a single provider's fetch strategy
type TextProvider interface {
	GetWeatherText(ctx context.Context) (string, error)
	GetProviderName() string
}

// ProviderRegistry dispatches a fetch to the strategy of the given provider
type ProviderRegistry interface {
	Fetch(ctx context.Context, provider ProviderID) (string, error)
}
