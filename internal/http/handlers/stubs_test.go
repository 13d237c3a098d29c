package handlers

import (
	"context"

	"github.com/preston-bernstein/sports-intel-service/internal/app/scrape"
	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	domainodds "github.com/preston-bernstein/sports-intel-service/internal/domain/odds"
	finder "github.com/preston-bernstein/sports-intel-service/internal/odds"
)

type stubScrape struct {
	data    any
	dash    scrape.Dashboard
	err     error
	lastReq scrape.Request
	team    string
}

func (s *stubScrape) Handle(ctx context.Context, req scrape.Request) (any, error) {
	s.lastReq = req
	return s.data, s.err
}

func (s *stubScrape) Dashboard(ctx context.Context, teamName string) (scrape.Dashboard, error) {
	s.team = teamName
	return s.dash, s.err
}

type stubOdds struct {
	games []domainodds.Game
	best  domainodds.BestPrice
	err   error
	args  []string
}

func (s *stubOdds) Games(ctx context.Context, league string) ([]domainodds.Game, error) {
	s.args = []string{league}
	return s.games, s.err
}

func (s *stubOdds) Best(ctx context.Context, league, gameID, market, outcome string) (domainodds.BestPrice, error) {
	s.args = []string{league, gameID, market, outcome}
	return s.best, s.err
}

func (s *stubOdds) BestFor(game domainodds.Game, market, outcome string) domainodds.BestPrice {
	if market == "" {
		market = domainodds.MarketH2H
	}
	return finder.FindBestOdds(game, market, outcome)
}

type stubLeagues []catalog.League

func (s stubLeagues) Leagues() []catalog.League { return s }
