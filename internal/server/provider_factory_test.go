package server

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	"github.com/preston-bernstein/sports-intel-service/internal/config"
	"github.com/preston-bernstein/sports-intel-service/internal/metrics"
	"github.com/preston-bernstein/sports-intel-service/internal/providers"
)

func fixtureConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		Upstream: config.UpstreamConfig{RateLimit: 0, RateBurst: 1},
	}
}

func TestProviderFactoryFixtureModeServesCannedData(t *testing.T) {
	rec := metrics.NewRecorder()
	espnClient, oddsClient := newProviderFactory(nil, rec).build(fixtureConfig(), catalog.Default())

	table, err := espnClient.Standings(context.Background(), "nba")
	if err != nil || len(table.Standings) == 0 {
		t.Fatalf("expected fixture standings, got %+v err %v", table, err)
	}
	games, err := oddsClient.FetchOdds(context.Background(), "basketball_nba")
	if err != nil || len(games) != 2 {
		t.Fatalf("expected fixture odds, got %d err %v", len(games), err)
	}

	if rec.ProviderCalls(providerESPN) != 1 || rec.ProviderCalls(providerOdds) != 1 {
		t.Fatalf("expected one instrumented call per provider, got espn=%d odds=%d",
			rec.ProviderCalls(providerESPN), rec.ProviderCalls(providerOdds))
	}
}

func TestProviderFactoryLiveModeRequiresOddsKey(t *testing.T) {
	cfg := fixtureConfig()
	cfg.Provider = "espn"
	_, oddsClient := newProviderFactory(nil, nil).build(cfg, catalog.Default())

	if _, err := oddsClient.FetchOdds(context.Background(), "basketball_nba"); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable without key, got %v", err)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	cases := map[string]string{
		"":          providerESPN,
		"ESPN":      providerESPN,
		" fixture ": providerFixture,
		"bogus":     providerESPN,
	}
	for in, want := range cases {
		if got := normalizeProviderName(in, nil); got != want {
			t.Fatalf("normalizeProviderName(%q) = %q, want %q", in, got, want)
		}
	}
}
