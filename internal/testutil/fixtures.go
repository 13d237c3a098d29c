package testutil

import (
	"time"

	domainodds "github.com/preston-bernstein/sports-intel-service/internal/domain/odds"
)

// SampleOddsGame returns a Celtics/Knicks game priced by two books, with
// FanDuel holding the better Celtics moneyline.
func SampleOddsGame(id string) domainodds.Game {
	updated := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return domainodds.Game{
		ID:           id,
		Sport:        "basketball_nba",
		HomeTeam:     "Boston Celtics",
		AwayTeam:     "New York Knicks",
		CommenceTime: time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC),
		Bookmakers: []domainodds.Bookmaker{
			{
				Key:        "draftkings",
				Title:      "DraftKings",
				LastUpdate: updated,
				Markets: map[string][]domainodds.Quote{
					domainodds.MarketH2H: {{Name: "Boston Celtics", Price: -180}, {Name: "New York Knicks", Price: 155}},
				},
			},
			{
				Key:        "fanduel",
				Title:      "FanDuel",
				LastUpdate: updated,
				Markets: map[string][]domainodds.Quote{
					domainodds.MarketH2H: {{Name: "Boston Celtics", Price: -165}, {Name: "New York Knicks", Price: 140}},
				},
			},
		},
	}
}
