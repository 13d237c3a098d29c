package espn

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	"github.com/preston-bernstein/sports-intel-service/internal/domain/fixtures"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
)

// TeamOverview returns the team's next fixture and its last five results.
// An unknown team yields an overview carrying Error and no network call.
func (c *Client) TeamOverview(ctx context.Context, teamName string) (fixtures.TeamOverview, error) {
	t, l, ok := c.resolveTeam(teamName)
	if !ok {
		logging.Warn(c.logger, "team not in catalog", slog.String(logging.FieldTeam, teamName))
		return fixtures.NewTeamOverviewError(errTeamMissing), nil
	}

	events, err := c.fetchSchedule(ctx, l, t)
	if err != nil {
		return fixtures.TeamOverview{}, err
	}
	return buildOverview(events, t), nil
}

// Form returns only the recent results from TeamOverview.
func (c *Client) Form(ctx context.Context, teamName string) ([]fixtures.FormEntry, error) {
	overview, err := c.TeamOverview(ctx, teamName)
	if err != nil {
		return nil, err
	}
	return overview.Form, nil
}

// Fixtures returns up to five events scheduled strictly after now, soonest first.
func (c *Client) Fixtures(ctx context.Context, teamName string) ([]fixtures.UpcomingFixture, error) {
	t, l, ok := c.resolveTeam(teamName)
	if !ok {
		logging.Warn(c.logger, "team not in catalog", slog.String(logging.FieldTeam, teamName))
		return []fixtures.UpcomingFixture{}, nil
	}

	events, err := c.fetchSchedule(ctx, l, t)
	if err != nil {
		return nil, err
	}
	return upcoming(events, c.now()), nil
}

func (c *Client) fetchSchedule(ctx context.Context, l catalog.League, t catalog.Team) ([]event, error) {
	var payload scheduleResponse
	if err := c.getJSON(ctx, c.scheduleURL(l, t.ID), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Events, nil
}

func buildOverview(events []event, t catalog.Team) fixtures.TeamOverview {
	var pending, done []event
	for _, e := range events {
		if e.completed() {
			done = append(done, e)
		} else {
			pending = append(pending, e)
		}
	}

	overview := fixtures.TeamOverview{Form: make([]fixtures.FormEntry, 0, maxFormEntries)}
	if len(pending) > 0 {
		sortByKickoff(pending, false)
		next := toFixture(pending[0])
		overview.NextFixture = &next
	}

	sortByKickoff(done, true)
	if len(done) > maxFormEntries {
		done = done[:maxFormEntries]
	}
	for _, e := range done {
		overview.Form = append(overview.Form, toFormEntry(e, t))
	}
	return overview
}

func upcoming(events []event, now time.Time) []fixtures.UpcomingFixture {
	future := make([]event, 0, len(events))
	for _, e := range events {
		if ts, ok := e.kickoff(); ok && ts.After(now) {
			future = append(future, e)
		}
	}
	sortByKickoff(future, false)
	if len(future) > maxUpcomingEvents {
		future = future[:maxUpcomingEvents]
	}

	out := make([]fixtures.UpcomingFixture, 0, len(future))
	for _, e := range future {
		home, away := e.sides()
		out = append(out, fixtures.UpcomingFixture{
			ID:       e.ID,
			Name:     e.Name,
			Date:     e.dateString(),
			HomeTeam: home.name(pendingValue),
			AwayTeam: away.name(pendingValue),
			Venue:    e.venue(),
		})
	}
	return out
}

func toFixture(e event) fixtures.Fixture {
	home, away := e.sides()
	return fixtures.Fixture{
		ID:        e.ID,
		Name:      e.Name,
		HomeTeam:  home.name(pendingValue),
		AwayTeam:  away.name(pendingValue),
		HomeLogo:  home.logo(),
		AwayLogo:  away.logo(),
		Date:      e.dateString(),
		Venue:     e.venue(),
		Broadcast: e.broadcast(),
		Status:    e.statusText(),
	}
}

func toFormEntry(e event, t catalog.Team) fixtures.FormEntry {
	home, away := e.sides()
	homeScore := home.score().Value
	awayScore := away.score().Value

	teamScore, oppScore := awayScore, homeScore
	if isTeam(home, t) {
		teamScore, oppScore = homeScore, awayScore
	}

	return fixtures.FormEntry{
		HomeTeam:  home.name(unknownValue),
		AwayTeam:  away.name(unknownValue),
		HomeScore: homeScore,
		AwayScore: awayScore,
		Date:      e.dateString(),
		Result:    fixtures.ResultFor(teamScore, oppScore),
		Status:    e.statusText(),
	}
}

// isTeam reports whether c is the requested team, by display name first and
// numeric id second.
func isTeam(c *competitor, t catalog.Team) bool {
	if c == nil {
		return false
	}
	if c.Team != nil && c.Team.DisplayName == t.Name {
		return true
	}
	return c.teamID() == strconv.Itoa(t.ID)
}
