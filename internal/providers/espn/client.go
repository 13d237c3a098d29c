// Package espn reshapes ESPN's public site and standings feeds into the
// fixture, form, standings and scoreboard shapes served by the API.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	"github.com/preston-bernstein/sports-intel-service/internal/providers"
)

// Config controls how the ESPN client reaches the upstream feeds.
type Config struct {
	SiteBaseURL      string
	StandingsBaseURL string
	UserAgent        string
	HTTPClient       providers.Doer
	Catalog          *catalog.Catalog
	Logger           *slog.Logger
}

// Client fetches ESPN feeds and normalizes them. It holds no mutable state.
type Client struct {
	siteBaseURL      string
	standingsBaseURL string
	userAgent        string
	httpClient       providers.Doer
	catalog          *catalog.Catalog
	logger           *slog.Logger
	now              func() time.Time
}

// NewClient constructs an ESPN client. A nil catalog falls back to the embedded one.
func NewClient(cfg Config) *Client {
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	return &Client{
		siteBaseURL:      normalizeBaseURL(cfg.SiteBaseURL, defaultSiteBaseURL),
		standingsBaseURL: normalizeBaseURL(cfg.StandingsBaseURL, defaultStandingsBaseURL),
		userAgent:        resolveUserAgent(cfg.UserAgent),
		httpClient:       resolveHTTPClient(cfg.HTTPClient),
		catalog:          cat,
		logger:           cfg.Logger,
		now:              time.Now,
	}
}

// resolveTeam maps a display name to its catalog entry and league.
func (c *Client) resolveTeam(name string) (catalog.Team, catalog.League, bool) {
	t, ok := c.catalog.Team(name)
	if !ok {
		return catalog.Team{}, catalog.League{}, false
	}
	l, ok := c.catalog.League(t.League)
	if !ok {
		return catalog.Team{}, catalog.League{}, false
	}
	return t, l, true
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("espn: %w", err)
	}
	if err := providers.CheckResponse(providerName, resp); err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("espn: decode %s: %w", req.URL.Path, err)
	}
	return nil
}

func (c *Client) scheduleURL(l catalog.League, teamID int) string {
	return fmt.Sprintf("%s/sports/%s/%s/teams/%d/schedule", c.siteBaseURL, l.Sport, l.Path, teamID)
}

func (c *Client) standingsURL(l catalog.League) string {
	return fmt.Sprintf("%s/sports/%s/%s/standings", c.standingsBaseURL, l.Sport, l.Path)
}

func (c *Client) scoreboardURL(l catalog.League) string {
	return fmt.Sprintf("%s/sports/%s/%s/scoreboard", c.siteBaseURL, l.Sport, l.Path)
}
