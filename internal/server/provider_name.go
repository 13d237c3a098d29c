package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/sports-intel-service/internal/logging"
)

const (
	providerESPN    = "espn"
	providerFixture = "fixture"
	providerOdds    = "oddsapi"
)

// normalizeProviderName maps the configured PROVIDER onto a known upstream
// mode. Unknown values fall back to live ESPN.
func normalizeProviderName(raw string, logger *slog.Logger) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case providerESPN, providerFixture:
		return name
	case "":
		return providerESPN
	default:
		logging.Warn(logger, "unknown provider, falling back to espn", slog.String(logging.FieldProvider, raw))
		return providerESPN
	}
}
