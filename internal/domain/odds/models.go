package odds

import "time"

// Market keys used by The Odds API.
const (
	MarketH2H     = "h2h"
	MarketSpreads = "spreads"
	MarketTotals  = "totals"
)

// Quote is one bookmaker's American-odds price for one outcome.
type Quote struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

// Bookmaker carries one book's markets for a game.
type Bookmaker struct {
	Key        string             `json:"key"`
	Title      string             `json:"title"`
	LastUpdate time.Time          `json:"lastUpdate"`
	Markets    map[string][]Quote `json:"markets"`
}

// Game is a normalized event with bookmakers in upstream order.
type Game struct {
	ID           string      `json:"id"`
	Sport        string      `json:"sport"`
	HomeTeam     string      `json:"homeTeam"`
	AwayTeam     string      `json:"awayTeam"`
	CommenceTime time.Time   `json:"commenceTime"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// BestPrice is the highest price found for an outcome. All fields are nil
// when no bookmaker offers it.
type BestPrice struct {
	BestOdds           *int     `json:"bestOdds"`
	BestBook           *string  `json:"bestBook"`
	ImpliedProbability *float64 `json:"impliedProbability"`
}
