package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	ProviderRegistry ProviderRegistry

	// Settings
	SettingsStore SettingsStore

	// Infrastructure
	Metrics MetricsCollector
	Logger  Logger
}
