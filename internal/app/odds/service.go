// Package odds serves bookmaker prices for catalog leagues and finds the
// best price for an outcome.
package odds

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	domainodds "github.com/preston-bernstein/sports-intel-service/internal/domain/odds"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
	finder "github.com/preston-bernstein/sports-intel-service/internal/odds"
)

var (
	// ErrGameNotFound is returned when no game in the league has the requested id.
	ErrGameNotFound = errors.New("game not found")
	// ErrUnknownLeague is returned when the league is not in the catalog.
	ErrUnknownLeague = errors.New("unknown league")
	// ErrMissingParam is returned when a required argument is empty.
	ErrMissingParam = errors.New("missing parameter")
)

// Fetcher returns normalized games for an Odds API sport key.
type Fetcher interface {
	FetchOdds(ctx context.Context, sportKey string) ([]domainodds.Game, error)
}

// LeagueLookup resolves a league code.
type LeagueLookup interface {
	League(code string) (catalog.League, bool)
}

// Service coordinates odds lookups.
type Service struct {
	fetcher Fetcher
	leagues LeagueLookup
	logger  *slog.Logger
}

// NewService constructs a Service.
func NewService(fetcher Fetcher, leagues LeagueLookup, logger *slog.Logger) *Service {
	return &Service{fetcher: fetcher, leagues: leagues, logger: logger}
}

// Games returns every priced game for a league.
func (s *Service) Games(ctx context.Context, league string) ([]domainodds.Game, error) {
	league = strings.TrimSpace(league)
	if league == "" {
		return nil, fmt.Errorf("%w: league is required", ErrMissingParam)
	}
	l, ok := s.leagues.League(league)
	if !ok || l.OddsKey == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLeague, league)
	}
	games, err := s.fetcher.FetchOdds(ctx, l.OddsKey)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "odds fetch failed",
			slog.String(logging.FieldLeague, l.Code),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return games, nil
}

// Best fetches the league's games, finds gameID and returns the best price
// for outcome in market. An empty market means h2h.
func (s *Service) Best(ctx context.Context, league, gameID, market, outcome string) (domainodds.BestPrice, error) {
	if strings.TrimSpace(gameID) == "" || strings.TrimSpace(outcome) == "" {
		return domainodds.BestPrice{}, fmt.Errorf("%w: gameId and outcome are required", ErrMissingParam)
	}
	games, err := s.Games(ctx, league)
	if err != nil {
		return domainodds.BestPrice{}, err
	}
	for _, g := range games {
		if g.ID == gameID {
			return s.BestFor(g, market, outcome), nil
		}
	}
	return domainodds.BestPrice{}, fmt.Errorf("%w: %q", ErrGameNotFound, gameID)
}

// BestFor runs the price comparison on a game the caller already holds.
func (s *Service) BestFor(game domainodds.Game, market, outcome string) domainodds.BestPrice {
	if strings.TrimSpace(market) == "" {
		market = domainodds.MarketH2H
	}
	return finder.FindBestOdds(game, market, outcome)
}
