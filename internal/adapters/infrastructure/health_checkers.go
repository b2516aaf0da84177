package infrastructure

import (
	"context"

	"weathertext.app/internal/ports"
)

// locator is implemented by stores backed by a local file
type locator interface {
	Path() string
}

// pinger is implemented by stores that hold a connection
type pinger interface {
	Ping(ctx context.Context) error
}

// SettingsStoreHealthChecker verifies the settings store is reachable
type SettingsStoreHealthChecker struct {
	store ports.SettingsStore
}

func NewSettingsStoreHealthChecker(store ports.SettingsStore) *SettingsStoreHealthChecker {
	return &SettingsStoreHealthChecker{store: store}
}

// Check pings connection-backed stores and reads the blob otherwise
func (s *SettingsStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "settingsStore",
		Details:   make(map[string]interface{}),
	}

	if s.store == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "settings store is not configured"
		return status
	}
	status.Details["store"] = s.store.GetStoreName()
	if l, ok := s.store.(locator); ok {
		status.Details["path"] = l.Path()
	}

	var err error
	if p, ok := s.store.(pinger); ok {
		err = p.Ping(ctx)
	} else {
		_, err = s.store.Load(ctx)
	}
	if err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = ports.HealthStatusHealthy
	return status
}

// ProviderSelectionHealthChecker reports whether the selected provider can serve text
type ProviderSelectionHealthChecker struct {
	selected func() ports.ProviderID
}

func NewProviderSelectionHealthChecker(selected func() ports.ProviderID) *ProviderSelectionHealthChecker {
	return &ProviderSelectionHealthChecker{selected: selected}
}

func (p *ProviderSelectionHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	source := p.selected()
	status := ports.HealthStatus{
		Component: "weatherProvider",
		Status:    ports.HealthStatusHealthy,
		Details: map[string]interface{}{
			"source": source.String(),
		},
	}

	switch source {
	case ports.ProviderWttr:
	case ports.ProviderUnset:
		status.Status = ports.HealthStatusDegraded
		status.Error = "no provider configured"
	case ports.ProviderOpenWeatherMap:
		status.Status = ports.HealthStatusDegraded
		status.Error = "selected provider is not implemented"
	default:
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "unknown provider"
	}

	return status
}
