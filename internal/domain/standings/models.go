package standings

import "sort"

// MaxRows caps the number of rows returned for a table.
const MaxRows = 20

// Row is one team's line in a league table.
type Row struct {
	Rank              int     `json:"rank"`
	Team              string  `json:"team"`
	Abbreviation      string  `json:"abbreviation"`
	Logo              string  `json:"logo"`
	GamesPlayed       int     `json:"gamesPlayed"`
	Wins              int     `json:"wins"`
	Draws             int     `json:"draws"`
	Losses            int     `json:"losses"`
	PointsFor         int     `json:"pointsFor"`
	PointsAgainst     int     `json:"pointsAgainst"`
	PointDifferential int     `json:"pointDifferential"`
	Points            int     `json:"points"`
	WinPct            float64 `json:"winPct"`
	Streak            string  `json:"streak"`
	Division          string  `json:"division"`
}

// Table is the standings payload for one league.
type Table struct {
	League    string `json:"league"`
	Standings []Row  `json:"standings"`
	Error     string `json:"error,omitempty"`
}

// NewTableError builds the empty table returned for an unknown league.
func NewTableError(league, msg string) Table {
	return Table{League: league, Standings: []Row{}, Error: msg}
}

// Rank orders rows by points when any row has points, otherwise by win
// percentage, and truncates to MaxRows. Equal keys keep their input order.
func Rank(rows []Row) []Row {
	byPoints := false
	for _, r := range rows {
		if r.Points > 0 {
			byPoints = true
			break
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if byPoints {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].WinPct > rows[j].WinPct
	})
	if len(rows) > MaxRows {
		rows = rows[:MaxRows]
	}
	return rows
}
