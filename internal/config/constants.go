package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envCatalogDir      = "CATALOG_DIR"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envUpstreamRate    = "UPSTREAM_RATE_LIMIT"
	envUpstreamBurst   = "UPSTREAM_RATE_BURST"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultPort        = "4000"
	defaultProvider    = "espn"
	defaultMetricsPort = "9090"
	defaultServiceName = "sports-intel-service"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	// Public feeds publish no quota; stay well under what a browser dashboard would generate.
	defaultUpstreamRate    = 10.0
	defaultUpstreamBurst   = 5
	defaultUpstreamTimeout = 10 * Duration(time.Second)
)

var defaultCORSOrigins = []string{"*"}
