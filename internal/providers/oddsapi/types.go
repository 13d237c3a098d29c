package oddsapi

type eventResponse struct {
	ID           string              `json:"id"`
	SportKey     string              `json:"sport_key"`
	SportTitle   string              `json:"sport_title"`
	CommenceTime string              `json:"commence_time"`
	HomeTeam     string              `json:"home_team"`
	AwayTeam     string              `json:"away_team"`
	Bookmakers   []bookmakerResponse `json:"bookmakers"`
}

type bookmakerResponse struct {
	Key        string           `json:"key"`
	Title      string           `json:"title"`
	LastUpdate string           `json:"last_update"`
	Markets    []marketResponse `json:"markets"`
}

type marketResponse struct {
	Key      string            `json:"key"`
	Outcomes []outcomeResponse `json:"outcomes"`
}

type outcomeResponse struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point"`
}
