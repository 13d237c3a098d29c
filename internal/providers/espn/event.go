package espn

import (
	"sort"
	"time"

	"github.com/preston-bernstein/sports-intel-service/internal/timeutil"
)

func (e event) competition() *competition {
	if len(e.Competitions) == 0 {
		return nil
	}
	return &e.Competitions[0]
}

// sides returns the home and away competitors. The first competitor not
// tagged home is treated as away.
func (e event) sides() (home, away *competitor) {
	comp := e.competition()
	if comp == nil {
		return nil, nil
	}
	for i := range comp.Competitors {
		c := &comp.Competitors[i]
		if c.HomeAway == "home" && home == nil {
			home = c
		} else if away == nil {
			away = c
		}
	}
	return home, away
}

func (e event) statusType() *statusType {
	if comp := e.competition(); comp != nil && comp.Status != nil && comp.Status.Type != nil {
		return comp.Status.Type
	}
	if e.Status != nil && e.Status.Type != nil {
		return e.Status.Type
	}
	return nil
}

func (e event) completed() bool {
	st := e.statusType()
	return st != nil && st.Completed
}

func (e event) statusText() string {
	st := e.statusType()
	if st == nil {
		return unknownValue
	}
	if st.Description != "" {
		return st.Description
	}
	if st.ShortDetail != "" {
		return st.ShortDetail
	}
	return unknownValue
}

func (e event) venue() string {
	if comp := e.competition(); comp != nil && comp.Venue != nil && comp.Venue.FullName != "" {
		return comp.Venue.FullName
	}
	return pendingValue
}

func (e event) broadcast() string {
	comp := e.competition()
	if comp == nil {
		return pendingValue
	}
	for _, b := range comp.Broadcasts {
		if len(b.Names) > 0 && b.Names[0] != "" {
			return b.Names[0]
		}
		if b.Media != nil && b.Media.ShortName != "" {
			return b.Media.ShortName
		}
	}
	return pendingValue
}

func (e event) kickoff() (time.Time, bool) {
	return timeutil.ParseTimestamp(e.Date)
}

// dateString renders the kickoff as RFC3339, or the raw upstream value when
// it does not parse.
func (e event) dateString() string {
	if ts, ok := e.kickoff(); ok {
		return ts.Format(time.RFC3339)
	}
	return e.Date
}

func (c *competitor) name(fallback string) string {
	if c == nil || c.Team == nil || c.Team.DisplayName == "" {
		return fallback
	}
	return c.Team.DisplayName
}

func (c *competitor) logo() string {
	if c == nil || c.Team == nil {
		return ""
	}
	return c.Team.logoURL()
}

func (c *competitor) teamID() string {
	if c == nil {
		return ""
	}
	if c.Team != nil && c.Team.ID != "" {
		return c.Team.ID
	}
	return c.ID
}

func (c *competitor) score() Score {
	if c == nil {
		return Score{}
	}
	return c.Score
}

func (t *team) logoURL() string {
	if t == nil {
		return ""
	}
	if t.Logo != "" {
		return t.Logo
	}
	for _, l := range t.Logos {
		if l.Href != "" {
			return l.Href
		}
	}
	return ""
}

// sortByKickoff orders events by date. Unparseable dates compare as the zero time.
func sortByKickoff(events []event, descending bool) {
	sort.SliceStable(events, func(i, j int) bool {
		ti, _ := events[i].kickoff()
		tj, _ := events[j].kickoff()
		if descending {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})
}
