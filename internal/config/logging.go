package config

// LoggingConfig selects the slog handler and minimum level.
type LoggingConfig struct {
	Level  string
	Format string // "text" or "json"
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
