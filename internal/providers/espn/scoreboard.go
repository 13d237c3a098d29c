package espn

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/preston-bernstein/sports-intel-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
	"github.com/preston-bernstein/sports-intel-service/internal/timeutil"
)

// Scoreboard returns every game on the league's scoreboard. date is optional
// (YYYY-MM-DD or YYYYMMDD); ESPN defaults to the current day. An unknown
// league returns an empty list.
func (c *Client) Scoreboard(ctx context.Context, leagueCode, date string) ([]scoreboard.Entry, error) {
	l, ok := c.catalog.League(leagueCode)
	if !ok {
		logging.Warn(c.logger, "league not in catalog", slog.String(logging.FieldLeague, leagueCode))
		return []scoreboard.Entry{}, nil
	}

	query := url.Values{}
	if compact, ok := timeutil.CompactDate(date); ok {
		query.Set("dates", compact)
	}

	var payload scoreboardResponse
	if err := c.getJSON(ctx, c.scoreboardURL(l), query, &payload); err != nil {
		return nil, err
	}

	out := make([]scoreboard.Entry, 0, len(payload.Events))
	for _, e := range payload.Events {
		out = append(out, toScoreboardEntry(e))
	}
	return out, nil
}

func toScoreboardEntry(e event) scoreboard.Entry {
	home, away := e.sides()
	return scoreboard.Entry{
		ID:     e.ID,
		Name:   e.Name,
		Date:   e.dateString(),
		Status: e.statusText(),
		HomeTeam: scoreboard.Side{
			Name:  home.name(defaultHome),
			Logo:  home.logo(),
			Score: home.score().DisplayOr(defaultScore),
		},
		AwayTeam: scoreboard.Side{
			Name:  away.name(defaultAway),
			Logo:  away.logo(),
			Score: away.score().DisplayOr(defaultScore),
		},
		Venue:     e.venue(),
		Broadcast: e.broadcast(),
	}
}
