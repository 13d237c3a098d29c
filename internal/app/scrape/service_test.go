package scrape

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	"github.com/preston-bernstein/sports-intel-service/internal/domain/fixtures"
	"github.com/preston-bernstein/sports-intel-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/sports-intel-service/internal/domain/standings"
	"github.com/preston-bernstein/sports-intel-service/internal/metrics"
)

type stubNormalizer struct {
	mu    sync.Mutex
	calls []string
	args  []string

	standingsErr error
	overviewErr  error
}

func (s *stubNormalizer) record(call, arg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
	s.args = append(s.args, arg)
}

func (s *stubNormalizer) TeamOverview(ctx context.Context, teamName string) (fixtures.TeamOverview, error) {
	s.record("team", teamName)
	return fixtures.TeamOverview{Form: []fixtures.FormEntry{{Result: fixtures.ResultWin}}}, s.overviewErr
}

func (s *stubNormalizer) Form(ctx context.Context, teamName string) ([]fixtures.FormEntry, error) {
	s.record("form", teamName)
	return []fixtures.FormEntry{{Result: fixtures.ResultDraw}}, nil
}

func (s *stubNormalizer) Fixtures(ctx context.Context, teamName string) ([]fixtures.UpcomingFixture, error) {
	s.record("fixtures", teamName)
	return []fixtures.UpcomingFixture{{ID: "f1"}}, nil
}

func (s *stubNormalizer) Standings(ctx context.Context, leagueCode string) (standings.Table, error) {
	s.record("standings", leagueCode)
	return standings.Table{League: leagueCode, Standings: []standings.Row{}}, s.standingsErr
}

func (s *stubNormalizer) Scoreboard(ctx context.Context, leagueCode, date string) ([]scoreboard.Entry, error) {
	s.record("scoreboard", leagueCode+"|"+date)
	return []scoreboard.Entry{{ID: "s1"}}, nil
}

func TestHandleDispatchesByType(t *testing.T) {
	cases := []struct {
		req      Request
		wantCall string
		wantArg  string
	}{
		{Request{Type: "team", TeamName: "Arsenal"}, "team", "Arsenal"},
		{Request{Type: "FORM", TeamName: "Arsenal"}, "form", "Arsenal"},
		{Request{Type: "fixtures", TeamName: " Arsenal "}, "fixtures", "Arsenal"},
		{Request{Type: "standings", League: "nba"}, "standings", "nba"},
		{Request{Type: "standings", TeamName: "Arsenal"}, "standings", "epl"},
		{Request{Type: "scoreboard", League: "nhl", Date: "2024-03-01"}, "scoreboard", "nhl|2024-03-01"},
		{Request{Type: "scoreboard", TeamName: "Boston Celtics"}, "scoreboard", "nba|"},
		{Request{Type: "standings", TeamName: "Nobody FC"}, "standings", ""},
	}
	for _, tc := range cases {
		stub := &stubNormalizer{}
		svc := NewService(stub, catalog.Default(), nil, nil)
		data, err := svc.Handle(context.Background(), tc.req)
		if err != nil {
			t.Fatalf("%+v: unexpected error %v", tc.req, err)
		}
		if data == nil {
			t.Fatalf("%+v: expected data", tc.req)
		}
		if len(stub.calls) != 1 || stub.calls[0] != tc.wantCall || stub.args[0] != tc.wantArg {
			t.Fatalf("%+v: got calls %v args %v", tc.req, stub.calls, stub.args)
		}
	}
}

func TestHandleRejectsInvalidType(t *testing.T) {
	stub := &stubNormalizer{}
	svc := NewService(stub, catalog.Default(), nil, nil)
	if _, err := svc.Handle(context.Background(), Request{Type: "odds", TeamName: "Arsenal"}); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
	if len(stub.calls) != 0 {
		t.Fatalf("expected no dispatch")
	}
}

func TestHandleRequiresParams(t *testing.T) {
	svc := NewService(&stubNormalizer{}, catalog.Default(), nil, nil)
	for _, req := range []Request{
		{Type: "team"},
		{Type: "form", League: "epl"},
		{Type: "fixtures", TeamName: "  "},
		{Type: "standings"},
		{Type: "scoreboard"},
	} {
		if _, err := svc.Handle(context.Background(), req); !errors.Is(err, ErrMissingParam) {
			t.Fatalf("%+v: expected ErrMissingParam, got %v", req, err)
		}
	}
}

func TestHandleRecordsScrapeMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	svc := NewService(&stubNormalizer{}, catalog.Default(), rec, nil)
	if _, err := svc.Handle(context.Background(), Request{Type: "team", TeamName: "Arsenal"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := rec.ScrapeCount("team"); got != 1 {
		t.Fatalf("expected one recorded scrape, got %d", got)
	}
}

func TestDashboardJoinsConcurrentFetches(t *testing.T) {
	stub := &stubNormalizer{}
	svc := NewService(stub, catalog.Default(), nil, nil)

	d, err := svc.Dashboard(context.Background(), "arsenal")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if d.Team != "Arsenal" || d.League != "epl" {
		t.Fatalf("expected canonical team and league, got %s %s", d.Team, d.League)
	}
	if len(d.Overview.Form) != 1 || len(d.Fixtures) != 1 || d.Standings.League != "epl" {
		t.Fatalf("unexpected dashboard %+v", d)
	}
	if len(stub.calls) != 3 {
		t.Fatalf("expected three upstream calls, got %v", stub.calls)
	}
}

func TestDashboardReturnsFirstError(t *testing.T) {
	want := errors.New("standings down")
	svc := NewService(&stubNormalizer{standingsErr: want}, catalog.Default(), nil, nil)
	if _, err := svc.Dashboard(context.Background(), "Arsenal"); !errors.Is(err, want) {
		t.Fatalf("expected standings error, got %v", err)
	}
}

func TestDashboardRequiresTeam(t *testing.T) {
	svc := NewService(&stubNormalizer{}, nil, nil, nil)
	if _, err := svc.Dashboard(context.Background(), ""); !errors.Is(err, ErrMissingParam) {
		t.Fatalf("expected ErrMissingParam, got %v", err)
	}
}
