package espn

import "time"

const (
	providerName = "espn"

	defaultSiteBaseURL      = "https://site.api.espn.com/apis/site/v2"
	defaultStandingsBaseURL = "https://site.api.espn.com/apis/v2"
	defaultUserAgent        = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	defaultHTTPTimeout      = 10 * time.Second

	maxFormEntries    = 5
	maxUpcomingEvents = 5

	unknownValue   = "Unknown"
	pendingValue   = "TBD"
	defaultHome    = "Home"
	defaultAway    = "Away"
	defaultScore   = "0"
	errTeamMissing = "Team not found"
	errLeagueMiss  = "League not found"
)
