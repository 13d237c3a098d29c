package espn

type scheduleResponse struct {
	Events []event `json:"events"`
}

type scoreboardResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Status       *status       `json:"status"`
	Competitions []competition `json:"competitions"`
}

type competition struct {
	Venue       *venue       `json:"venue"`
	Status      *status      `json:"status"`
	Broadcasts  []broadcast  `json:"broadcasts"`
	Competitors []competitor `json:"competitors"`
}

type venue struct {
	FullName string `json:"fullName"`
}

type broadcast struct {
	Names []string `json:"names"`
	Media *struct {
		ShortName string `json:"shortName"`
	} `json:"media"`
}

type status struct {
	Type *statusType `json:"type"`
}

type statusType struct {
	Completed   bool   `json:"completed"`
	State       string `json:"state"`
	Description string `json:"description"`
	ShortDetail string `json:"shortDetail"`
}

type competitor struct {
	ID       string `json:"id"`
	HomeAway string `json:"homeAway"`
	Team     *team  `json:"team"`
	Score    Score  `json:"score"`
}

type team struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
	Logos        []logo `json:"logos"`
}

type logo struct {
	Href string `json:"href"`
}

type standingsResponse struct {
	Name      string           `json:"name"`
	Children  []standingsGroup `json:"children"`
	Groups    []standingsGroup `json:"groups"`
	Standings *standingsBlock  `json:"standings"`
}

type standingsGroup struct {
	Name         string           `json:"name"`
	Abbreviation string           `json:"abbreviation"`
	Children     []standingsGroup `json:"children"`
	Groups       []standingsGroup `json:"groups"`
	Standings    *standingsBlock  `json:"standings"`
}

type standingsBlock struct {
	Entries []standingsEntry `json:"entries"`
}

type standingsEntry struct {
	Team  *team  `json:"team"`
	Stats []stat `json:"stats"`
}

type stat struct {
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	Type         string   `json:"type"`
	Value        *float64 `json:"value"`
	DisplayValue string   `json:"displayValue"`
}
