// Package scrape dispatches normalizer requests by type and assembles the
// team dashboard.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	"github.com/preston-bernstein/sports-intel-service/internal/domain/fixtures"
	"github.com/preston-bernstein/sports-intel-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/sports-intel-service/internal/domain/standings"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
	"github.com/preston-bernstein/sports-intel-service/internal/metrics"
)

// Request types accepted by Handle.
const (
	TypeTeam       = "team"
	TypeForm       = "form"
	TypeFixtures   = "fixtures"
	TypeStandings  = "standings"
	TypeScoreboard = "scoreboard"
)

var (
	// ErrInvalidType is returned for a request type outside the known set.
	ErrInvalidType = errors.New("invalid type")
	// ErrMissingParam is returned when a request lacks the team or league it needs.
	ErrMissingParam = errors.New("missing parameter")
)

// Normalizer is the upstream surface the service dispatches to.
type Normalizer interface {
	TeamOverview(ctx context.Context, teamName string) (fixtures.TeamOverview, error)
	Form(ctx context.Context, teamName string) ([]fixtures.FormEntry, error)
	Fixtures(ctx context.Context, teamName string) ([]fixtures.UpcomingFixture, error)
	Standings(ctx context.Context, leagueCode string) (standings.Table, error)
	Scoreboard(ctx context.Context, leagueCode, date string) ([]scoreboard.Entry, error)
}

// TeamLookup resolves a team to its league.
type TeamLookup interface {
	Team(name string) (catalog.Team, bool)
}

// Request is one scrape call.
type Request struct {
	Type     string `json:"type"`
	TeamName string `json:"teamName"`
	League   string `json:"league"`
	Date     string `json:"date,omitempty"`
}

// Dashboard joins a team's overview, upcoming fixtures and league table.
type Dashboard struct {
	Team      string                     `json:"team"`
	League    string                     `json:"league"`
	Overview  fixtures.TeamOverview      `json:"overview"`
	Fixtures  []fixtures.UpcomingFixture `json:"fixtures"`
	Standings standings.Table            `json:"standings"`
}

// Service coordinates scrape operations.
type Service struct {
	normalizer Normalizer
	teams      TeamLookup
	recorder   *metrics.Recorder
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a Service. recorder and logger may be nil.
func NewService(normalizer Normalizer, teams TeamLookup, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		normalizer: normalizer,
		teams:      teams,
		recorder:   recorder,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle validates req and returns the normalized shape for its type.
func (s *Service) Handle(ctx context.Context, req Request) (any, error) {
	reqType := strings.ToLower(strings.TrimSpace(req.Type))
	start := s.now()
	data, err := s.dispatch(ctx, reqType, req)
	if !errors.Is(err, ErrInvalidType) {
		s.recorder.RecordScrape(reqType, s.now().Sub(start), err)
	}

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Warn(logger, "scrape failed",
			slog.String(logging.FieldType, reqType),
			slog.String(logging.FieldTeam, req.TeamName),
			slog.String(logging.FieldLeague, req.League),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	logging.Debug(logger, "scrape served", slog.String(logging.FieldType, reqType), slog.String(logging.FieldTeam, req.TeamName))
	return data, nil
}

func (s *Service) dispatch(ctx context.Context, reqType string, req Request) (any, error) {
	team := strings.TrimSpace(req.TeamName)
	switch reqType {
	case TypeTeam, TypeForm, TypeFixtures:
		if team == "" {
			return nil, fmt.Errorf("%w: teamName is required for %s", ErrMissingParam, reqType)
		}
	case TypeStandings, TypeScoreboard:
		if team == "" && strings.TrimSpace(req.League) == "" {
			return nil, fmt.Errorf("%w: league or teamName is required for %s", ErrMissingParam, reqType)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}

	switch reqType {
	case TypeTeam:
		return s.normalizer.TeamOverview(ctx, team)
	case TypeForm:
		return s.normalizer.Form(ctx, team)
	case TypeFixtures:
		return s.normalizer.Fixtures(ctx, team)
	case TypeStandings:
		return s.normalizer.Standings(ctx, s.leagueFor(req.League, team))
	default:
		return s.normalizer.Scoreboard(ctx, s.leagueFor(req.League, team), req.Date)
	}
}

// leagueFor prefers an explicit league and falls back to the team's league.
func (s *Service) leagueFor(league, team string) string {
	if league = strings.TrimSpace(league); league != "" {
		return league
	}
	if s.teams == nil {
		return ""
	}
	if t, ok := s.teams.Team(team); ok {
		return t.League
	}
	return ""
}

// Dashboard fetches the overview, fixtures and standings for a team
// concurrently. The first upstream error cancels the others and is returned.
func (s *Service) Dashboard(ctx context.Context, teamName string) (Dashboard, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return Dashboard{}, fmt.Errorf("%w: team is required", ErrMissingParam)
	}

	out := Dashboard{Team: teamName, League: s.leagueFor("", teamName)}
	if s.teams != nil {
		if t, ok := s.teams.Team(teamName); ok {
			out.Team = t.Name
		}
	}

	start := s.now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview, err := s.normalizer.TeamOverview(gctx, out.Team)
		out.Overview = overview
		return err
	})
	g.Go(func() error {
		upcoming, err := s.normalizer.Fixtures(gctx, out.Team)
		out.Fixtures = upcoming
		return err
	})
	g.Go(func() error {
		table, err := s.normalizer.Standings(gctx, out.League)
		out.Standings = table
		return err
	})
	err := g.Wait()
	s.recorder.RecordScrape("dashboard", s.now().Sub(start), err)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "dashboard failed",
			slog.String(logging.FieldTeam, teamName),
			slog.String("error", err.Error()),
		)
		return Dashboard{}, err
	}
	return out, nil
}
