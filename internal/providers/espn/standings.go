package espn

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"github.com/preston-bernstein/sports-intel-service/internal/domain/standings"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
)

// Stat aliases in priority order. ESPN names the same figure differently
// across sports (goals vs points, ties vs draws).
var (
	rankAliases          = []string{"rank", "playoffSeed", "R"}
	gamesPlayedAliases   = []string{"gamesPlayed", "GP"}
	winsAliases          = []string{"wins", "W"}
	drawsAliases         = []string{"ties", "draws", "T", "D"}
	lossesAliases        = []string{"losses", "L"}
	pointsForAliases     = []string{"pointsFor", "goalsFor", "PF", "GF", "F"}
	pointsAgainstAliases = []string{"pointsAgainst", "goalsAgainst", "PA", "GA", "A"}
	differentialAliases  = []string{"pointDifferential", "differential", "goalDifferential", "DIFF", "GD", "PD"}
	pointsAliases        = []string{"points", "PTS", "P"}
	winPctAliases        = []string{"winPercent", "winPct", "PCT"}
	streakAliases        = []string{"streak", "STRK"}
)

// Standings returns the league table, ranked and capped at 20 rows.
// An unknown league yields a table carrying Error and no network call.
func (c *Client) Standings(ctx context.Context, leagueCode string) (standings.Table, error) {
	l, ok := c.catalog.League(leagueCode)
	if !ok {
		logging.Warn(c.logger, "league not in catalog", slog.String(logging.FieldLeague, leagueCode))
		return standings.NewTableError(leagueCode, errLeagueMiss), nil
	}

	var payload standingsResponse
	if err := c.getJSON(ctx, c.standingsURL(l), nil, &payload); err != nil {
		return standings.Table{}, err
	}
	return standings.Table{League: l.Code, Standings: buildStandings(payload)}, nil
}

func buildStandings(payload standingsResponse) []standings.Row {
	rows := make([]standings.Row, 0)
	if payload.Standings != nil {
		rows = appendEntries(rows, payload.Standings.Entries, payload.Name)
	}
	for _, g := range payload.Children {
		rows = appendGroup(rows, g)
	}
	for _, g := range payload.Groups {
		rows = appendGroup(rows, g)
	}
	return standings.Rank(rows)
}

func appendGroup(rows []standings.Row, g standingsGroup) []standings.Row {
	if g.Standings != nil {
		rows = appendEntries(rows, g.Standings.Entries, g.Name)
	}
	for _, child := range g.Children {
		rows = appendGroup(rows, child)
	}
	for _, child := range g.Groups {
		rows = appendGroup(rows, child)
	}
	return rows
}

func appendEntries(rows []standings.Row, entries []standingsEntry, division string) []standings.Row {
	for _, e := range entries {
		index := len(rows)
		row := standings.Row{
			Rank:              statInt(e.Stats, rankAliases, index+1),
			Team:              unknownValue,
			GamesPlayed:       statInt(e.Stats, gamesPlayedAliases, 0),
			Wins:              statInt(e.Stats, winsAliases, 0),
			Draws:             statInt(e.Stats, drawsAliases, 0),
			Losses:            statInt(e.Stats, lossesAliases, 0),
			PointsFor:         statInt(e.Stats, pointsForAliases, 0),
			PointsAgainst:     statInt(e.Stats, pointsAgainstAliases, 0),
			PointDifferential: statInt(e.Stats, differentialAliases, 0),
			Points:            statInt(e.Stats, pointsAliases, 0),
			WinPct:            statFloat(e.Stats, winPctAliases, 0),
			Streak:            statText(e.Stats, streakAliases),
			Division:          division,
		}
		if e.Team != nil {
			if e.Team.DisplayName != "" {
				row.Team = e.Team.DisplayName
			}
			row.Abbreviation = e.Team.Abbreviation
			row.Logo = e.Team.logoURL()
		}
		rows = append(rows, row)
	}
	return rows
}

// lookupStat returns the first stat, in alias order, whose name or
// abbreviation matches and which carries a value.
func lookupStat(stats []stat, aliases []string) (stat, bool) {
	for _, alias := range aliases {
		for _, s := range stats {
			if s.Name != alias && s.Abbreviation != alias {
				continue
			}
			if s.Value != nil {
				return s, true
			}
			if _, err := strconv.ParseFloat(s.DisplayValue, 64); err == nil {
				return s, true
			}
		}
	}
	return stat{}, false
}

func (s stat) number() float64 {
	if s.Value != nil {
		return *s.Value
	}
	n, _ := strconv.ParseFloat(s.DisplayValue, 64)
	return n
}

func statInt(stats []stat, aliases []string, fallback int) int {
	s, ok := lookupStat(stats, aliases)
	if !ok {
		return fallback
	}
	return int(math.Round(s.number()))
}

func statFloat(stats []stat, aliases []string, fallback float64) float64 {
	s, ok := lookupStat(stats, aliases)
	if !ok {
		return fallback
	}
	return s.number()
}

// statText prefers the display form, which is how streaks ("W3") are encoded.
func statText(stats []stat, aliases []string) string {
	for _, alias := range aliases {
		for _, s := range stats {
			if s.Name != alias && s.Abbreviation != alias {
				continue
			}
			if s.DisplayValue != "" {
				return s.DisplayValue
			}
			if s.Value != nil {
				return strconv.FormatFloat(*s.Value, 'f', -1, 64)
			}
		}
	}
	return ""
}
