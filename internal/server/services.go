package server

import (
	"fmt"
	"log/slog"

	appodds "github.com/preston-bernstein/sports-intel-service/internal/app/odds"
	"github.com/preston-bernstein/sports-intel-service/internal/app/scrape"
	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	"github.com/preston-bernstein/sports-intel-service/internal/config"
	"github.com/preston-bernstein/sports-intel-service/internal/metrics"
)

// Services is the transport-independent application core shared by the
// HTTP server, the CLI and the MCP tool server.
type Services struct {
	Catalog *catalog.Catalog
	Scrape  *scrape.Service
	Odds    *appodds.Service
}

// BuildServices loads the catalog and wires both upstream clients. recorder may be nil.
func BuildServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (Services, error) {
	cat, err := catalog.Open(cfg.CatalogDir)
	if err != nil {
		return Services{}, fmt.Errorf("load catalog: %w", err)
	}

	espnClient, oddsClient := newProviderFactory(logger, recorder).build(cfg, cat)

	return Services{
		Catalog: cat,
		Scrape:  scrape.NewService(espnClient, cat, recorder, logger),
		Odds:    appodds.NewService(oddsClient, cat, logger),
	}, nil
}
