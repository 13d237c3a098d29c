package oddsapi

import "time"

const (
	providerName       = "oddsapi"
	defaultBaseURL     = "https://api.the-odds-api.com/v4"
	defaultRegions     = "us"
	defaultMarkets     = "h2h,spreads,totals"
	oddsFormatAmerican = "american"
	defaultHTTPTimeout = 10 * time.Second
)
