package config

import "strings"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string // host:port, as the OTLP HTTP exporter expects
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	endpoint, insecure := otlpEndpoint(
		envOrDefault(envOtelEndpoint, ""),
		boolEnvOrDefault(envOtelInsecure, true),
	)
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpEndpoint: endpoint,
		OtlpInsecure: insecure,
	}
}

// otlpEndpoint accepts the URL form most collectors document and reduces it
// to host:port. An explicit scheme overrides the insecure flag.
func otlpEndpoint(raw string, insecure bool) (string, bool) {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "https://"):
		raw, insecure = strings.TrimPrefix(raw, "https://"), false
	case strings.HasPrefix(raw, "http://"):
		raw, insecure = strings.TrimPrefix(raw, "http://"), true
	}
	return strings.TrimRight(raw, "/"), insecure
}
