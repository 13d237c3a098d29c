package scoreboard

// Side is one competitor on a scoreboard line. Score is kept as the
// upstream display string.
type Side struct {
	Name  string `json:"name"`
	Logo  string `json:"logo"`
	Score string `json:"score"`
}

// Entry is one game on a league's scoreboard.
type Entry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	HomeTeam  Side   `json:"homeTeam"`
	AwayTeam  Side   `json:"awayTeam"`
	Venue     string `json:"venue"`
	Broadcast string `json:"broadcast"`
}
