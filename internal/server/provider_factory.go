package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	"github.com/preston-bernstein/sports-intel-service/internal/config"
	"github.com/preston-bernstein/sports-intel-service/internal/metrics"
	"github.com/preston-bernstein/sports-intel-service/internal/providers"
	"github.com/preston-bernstein/sports-intel-service/internal/providers/espn"
	"github.com/preston-bernstein/sports-intel-service/internal/providers/fixture"
	"github.com/preston-bernstein/sports-intel-service/internal/providers/oddsapi"
)

// fixtureAPIKey lets the odds client run against canned data without a real key.
const fixtureAPIKey = "fixture"

// providerFactory assembles the upstream clients with shared wrappers (rate limit + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// transport returns the base client every upstream shares. In fixture mode
// requests never leave the process.
func (f providerFactory) transport(cfg config.Config) providers.Doer {
	client := &http.Client{Timeout: cfg.Upstream.Timeout}
	if normalizeProviderName(cfg.Provider, f.logger) == providerFixture {
		client.Transport = fixture.New()
	}
	return providers.NewRateLimitedDoer(client, cfg.Upstream.RateLimit, cfg.Upstream.RateBurst, f.logger)
}

func (f providerFactory) build(cfg config.Config, cat *catalog.Catalog) (*espn.Client, *oddsapi.Client) {
	shared := f.transport(cfg)

	espnClient := espn.NewClient(espn.Config{
		SiteBaseURL:      cfg.ESPN.SiteBaseURL,
		StandingsBaseURL: cfg.ESPN.StandingsBaseURL,
		UserAgent:        cfg.ESPN.UserAgent,
		HTTPClient:       providers.NewInstrumentedDoer(shared, providerESPN, f.metrics, f.logger),
		Catalog:          cat,
		Logger:           f.logger,
	})

	apiKey := cfg.OddsAPI.APIKey
	if apiKey == "" && normalizeProviderName(cfg.Provider, nil) == providerFixture {
		apiKey = fixtureAPIKey
	}
	oddsClient := oddsapi.NewClient(oddsapi.Config{
		BaseURL:    cfg.OddsAPI.BaseURL,
		APIKey:     apiKey,
		Regions:    cfg.OddsAPI.Regions,
		HTTPClient: providers.NewInstrumentedDoer(shared, providerOdds, f.metrics, f.logger),
		Logger:     f.logger,
	})

	return espnClient, oddsClient
}
