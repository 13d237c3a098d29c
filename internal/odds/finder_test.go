package odds

import (
	"math"
	"testing"

	domainodds "github.com/preston-bernstein/sports-intel-service/internal/domain/odds"
)

func book(title string, quotes ...domainodds.Quote) domainodds.Bookmaker {
	return domainodds.Bookmaker{Key: title, Title: title, Markets: map[string][]domainodds.Quote{domainodds.MarketH2H: quotes}}
}

func TestFindBestOddsPicksHighestPrice(t *testing.T) {
	game := domainodds.Game{Bookmakers: []domainodds.Bookmaker{
		book("B", domainodds.Quote{Name: "Lakers", Price: 120}),
		book("A", domainodds.Quote{Name: "Lakers", Price: 150}),
	}}
	got := FindBestOdds(game, domainodds.MarketH2H, "Lakers")
	if got.BestOdds == nil || *got.BestOdds != 150 || *got.BestBook != "A" {
		t.Fatalf("expected +150 at A, got %+v", got)
	}
	if got.ImpliedProbability == nil || math.Abs(*got.ImpliedProbability-0.4) > 1e-9 {
		t.Fatalf("expected implied probability 0.4, got %v", got.ImpliedProbability)
	}
}

func TestFindBestOddsNoneOffered(t *testing.T) {
	game := domainodds.Game{Bookmakers: []domainodds.Bookmaker{
		book("A", domainodds.Quote{Name: "Celtics", Price: -200}),
		{Title: "C", Markets: map[string][]domainodds.Quote{}},
	}}
	got := FindBestOdds(game, domainodds.MarketH2H, "Lakers")
	if got.BestOdds != nil || got.BestBook != nil || got.ImpliedProbability != nil {
		t.Fatalf("expected all nil, got %+v", got)
	}
	if got := FindBestOdds(game, domainodds.MarketSpreads, "Celtics"); got.BestOdds != nil {
		t.Fatalf("expected nil for missing market, got %+v", got)
	}
	if got := FindBestOdds(domainodds.Game{}, domainodds.MarketH2H, "Celtics"); got.BestOdds != nil {
		t.Fatalf("expected nil for game without bookmakers")
	}
}

func TestFindBestOddsTieKeepsFirstSeen(t *testing.T) {
	game := domainodds.Game{Bookmakers: []domainodds.Bookmaker{
		book("First", domainodds.Quote{Name: "Lakers", Price: 130}),
		book("Second", domainodds.Quote{Name: "Lakers", Price: 130}),
	}}
	got := FindBestOdds(game, domainodds.MarketH2H, "Lakers")
	if *got.BestBook != "First" {
		t.Fatalf("expected first-seen bookmaker, got %s", *got.BestBook)
	}
}

func TestFindBestOddsNegativePrices(t *testing.T) {
	game := domainodds.Game{Bookmakers: []domainodds.Bookmaker{
		book("A", domainodds.Quote{Name: "Celtics", Price: -180}),
		book("B", domainodds.Quote{Name: "Celtics", Price: -170}),
		book("C", domainodds.Quote{Name: "Celtics", Price: -175}),
	}}
	got := FindBestOdds(game, domainodds.MarketH2H, "Celtics")
	if *got.BestOdds != -170 || *got.BestBook != "B" {
		t.Fatalf("expected -170 at B, got %d at %s", *got.BestOdds, *got.BestBook)
	}
}

func TestFindBestOddsUsesFirstMatchingQuotePerBook(t *testing.T) {
	game := domainodds.Game{Bookmakers: []domainodds.Bookmaker{
		book("A", domainodds.Quote{Name: "Lakers", Price: 100}, domainodds.Quote{Name: "Lakers", Price: 500}),
	}}
	got := FindBestOdds(game, domainodds.MarketH2H, "Lakers")
	if *got.BestOdds != 100 {
		t.Fatalf("expected first quote per bookmaker, got %d", *got.BestOdds)
	}
}
