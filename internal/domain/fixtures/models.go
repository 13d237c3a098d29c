package fixtures

// Result tags a completed fixture from the requested team's side.
type Result string

const (
	ResultWin  Result = "W"
	ResultDraw Result = "D"
	ResultLoss Result = "L"
)

// Fixture is the next scheduled game for a team.
type Fixture struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeLogo  string `json:"homeLogo"`
	AwayLogo  string `json:"awayLogo"`
	Date      string `json:"date"`
	Venue     string `json:"venue"`
	Broadcast string `json:"broadcast"`
	Status    string `json:"status"`
}

// FormEntry is one completed game reduced to a result.
type FormEntry struct {
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Date      string `json:"date"`
	Result    Result `json:"result"`
	Status    string `json:"status"`
}

// UpcomingFixture is the minimal shape returned for a team's upcoming schedule.
type UpcomingFixture struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Venue    string `json:"venue"`
}

// TeamOverview pairs a team's next fixture with its recent form.
// Error is set, with empty data, when the team is not in the catalog.
type TeamOverview struct {
	NextFixture *Fixture    `json:"nextFixture"`
	Form        []FormEntry `json:"form"`
	Error       string      `json:"error,omitempty"`
}

// NewTeamOverviewError builds the empty overview returned for an unknown team.
func NewTeamOverviewError(msg string) TeamOverview {
	return TeamOverview{Form: []FormEntry{}, Error: msg}
}

// ResultFor compares a team's score with its opponent's.
func ResultFor(teamScore, opponentScore int) Result {
	switch {
	case teamScore == opponentScore:
		return ResultDraw
	case teamScore > opponentScore:
		return ResultWin
	default:
		return ResultLoss
	}
}
