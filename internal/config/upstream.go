package config

// UpstreamConfig controls the shared outbound HTTP client.
type UpstreamConfig struct {
	Timeout   Duration
	RateLimit float64 // requests per second across all upstreams
	RateBurst int
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		Timeout:   durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		RateLimit: floatEnvOrDefault(envUpstreamRate, defaultUpstreamRate),
		RateBurst: intEnvOrDefault(envUpstreamBurst, defaultUpstreamBurst),
	}
}
