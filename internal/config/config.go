package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	CatalogDir  string
	CORSOrigins []string
	Upstream    UpstreamConfig
	ESPN        ESPNConfig
	OddsAPI     OddsAPIConfig
	Metrics     MetricsConfig
	Logging     LoggingConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		CatalogDir:  envOrDefault(envCatalogDir, ""),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Upstream:    loadUpstream(),
		ESPN:        loadESPN(),
		OddsAPI:     loadOddsAPI(),
		Metrics:     loadMetrics(),
		Logging:     loadLogging(),
	}
}
