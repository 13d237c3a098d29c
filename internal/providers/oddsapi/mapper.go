package oddsapi

import (
	"math"

	"github.com/preston-bernstein/sports-intel-service/internal/domain/odds"
	"github.com/preston-bernstein/sports-intel-service/internal/timeutil"
)

func mapGame(e eventResponse) odds.Game {
	g := odds.Game{
		ID:         e.ID,
		Sport:      e.SportKey,
		HomeTeam:   e.HomeTeam,
		AwayTeam:   e.AwayTeam,
		Bookmakers: make([]odds.Bookmaker, 0, len(e.Bookmakers)),
	}
	if ts, ok := timeutil.ParseTimestamp(e.CommenceTime); ok {
		g.CommenceTime = ts
	}
	for _, b := range e.Bookmakers {
		g.Bookmakers = append(g.Bookmakers, mapBookmaker(b))
	}
	return g
}

func mapBookmaker(b bookmakerResponse) odds.Bookmaker {
	out := odds.Bookmaker{
		Key:     b.Key,
		Title:   b.Title,
		Markets: make(map[string][]odds.Quote, len(b.Markets)),
	}
	if ts, ok := timeutil.ParseTimestamp(b.LastUpdate); ok {
		out.LastUpdate = ts
	}
	for _, m := range b.Markets {
		quotes := make([]odds.Quote, 0, len(m.Outcomes))
		for _, o := range m.Outcomes {
			quotes = append(quotes, odds.Quote{
				Name:  o.Name,
				Price: int(math.Round(o.Price)),
				Point: o.Point,
			})
		}
		out.Markets[m.Key] = quotes
	}
	return out
}
