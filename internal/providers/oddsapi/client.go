// Package oddsapi fetches multi-bookmaker prices from The Odds API v4.
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/sports-intel-service/internal/domain/odds"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
	"github.com/preston-bernstein/sports-intel-service/internal/providers"
)

// Config controls how the client reaches The Odds API.
type Config struct {
	BaseURL    string
	APIKey     string
	Regions    string
	HTTPClient providers.Doer
	Logger     *slog.Logger
}

// Client fetches odds and maps them to domain games.
type Client struct {
	baseURL    string
	apiKey     string
	regions    string
	httpClient providers.Doer
	logger     *slog.Logger
}

// NewClient constructs an Odds API client with the provided configuration.
func NewClient(cfg Config) *Client {
	regions := cfg.Regions
	if regions == "" {
		regions = defaultRegions
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
		regions:    regions,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// FetchOdds returns upcoming and live games for sportKey with American prices
// for the h2h, spreads and totals markets. Bookmakers keep upstream order.
func (c *Client) FetchOdds(ctx context.Context, sportKey string) ([]odds.Game, error) {
	if c.apiKey == "" {
		return nil, providers.ErrProviderUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sports/"+url.PathEscape(sportKey)+"/odds", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("apiKey", c.apiKey)
	q.Set("regions", c.regions)
	q.Set("markets", defaultMarkets)
	q.Set("oddsFormat", oddsFormatAmerican)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oddsapi: %w", err)
	}
	if err := providers.CheckResponse(providerName, resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload []eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("oddsapi: decode odds: %w", err)
	}

	if remaining := resp.Header.Get("x-requests-remaining"); remaining != "" {
		logging.Debug(c.logger, "odds quota", slog.String(logging.FieldProvider, providerName), slog.String("remaining", remaining))
	}

	games := make([]odds.Game, 0, len(payload))
	for _, e := range payload {
		games = append(games, mapGame(e))
	}
	return games, nil
}
