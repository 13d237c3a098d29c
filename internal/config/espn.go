package config

const (
	envESPNSiteBaseURL      = "ESPN_SITE_BASE_URL"
	envESPNStandingsBaseURL = "ESPN_STANDINGS_BASE_URL"
	envESPNUserAgent        = "ESPN_USER_AGENT"

	defaultESPNSiteBaseURL      = "https://site.api.espn.com/apis/site/v2"
	defaultESPNStandingsBaseURL = "https://site.api.espn.com/apis/v2"
	defaultESPNUserAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// ESPNConfig controls how we talk to the ESPN public feeds.
type ESPNConfig struct {
	SiteBaseURL      string
	StandingsBaseURL string
	UserAgent        string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		SiteBaseURL:      envOrDefault(envESPNSiteBaseURL, defaultESPNSiteBaseURL),
		StandingsBaseURL: envOrDefault(envESPNStandingsBaseURL, defaultESPNStandingsBaseURL),
		UserAgent:        envOrDefault(envESPNUserAgent, defaultESPNUserAgent),
	}
}
