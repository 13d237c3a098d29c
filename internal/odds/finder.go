// Package odds compares bookmaker prices for a single outcome.
package odds

import domainodds "github.com/preston-bernstein/sports-intel-service/internal/domain/odds"

// FindBestOdds scans bookmakers in order and returns the highest price any of
// them offers for outcome in market. Only strictly higher prices replace the
// current best, so the first bookmaker wins ties. All fields are nil when no
// bookmaker offers the outcome.
func FindBestOdds(game domainodds.Game, market, outcome string) domainodds.BestPrice {
	var (
		best  int
		book  string
		found bool
	)
	for _, b := range game.Bookmakers {
		quote, ok := findQuote(b.Markets[market], outcome)
		if !ok {
			continue
		}
		if !found || quote.Price > best {
			best, book, found = quote.Price, b.Title, true
		}
	}
	if !found {
		return domainodds.BestPrice{}
	}

	out := domainodds.BestPrice{BestOdds: &best, BestBook: &book}
	if p, err := ImpliedProbability(best); err == nil {
		out.ImpliedProbability = &p
	}
	return out
}

func findQuote(quotes []domainodds.Quote, outcome string) (domainodds.Quote, bool) {
	for _, q := range quotes {
		if q.Name == outcome {
			return q, true
		}
	}
	return domainodds.Quote{}, false
}
