package ports

import "context"

// Health states, ordered from best to worst
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"
)

// HealthChecker reports the state of one component
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is one component's report. Degraded means the component works
// but cannot serve weather text as configured.
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// SystemHealthChecker runs every component check, keyed by component name
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}

// OverallStatus folds component reports into the worst state among them
func OverallStatus(components map[string]HealthStatus) string {
	overall := HealthStatusHealthy
	for _, component := range components {
		switch component.Status {
		case HealthStatusUnhealthy:
			return HealthStatusUnhealthy
		case HealthStatusDegraded:
			overall = HealthStatusDegraded
		}
	}
	return overall
}
