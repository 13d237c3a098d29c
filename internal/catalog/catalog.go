// Package catalog holds the league and team reference tables used to resolve
// request parameters into ESPN and The Odds API identifiers.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	leaguesFile = "leagues.yaml"
	teamsFile   = "teams.yaml"
)

//go:embed leagues.yaml teams.yaml
var embedded embed.FS

// League describes one supported competition.
type League struct {
	Code    string `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	Sport   string `json:"sport" yaml:"sport"`
	Path    string `json:"league" yaml:"path"`
	OddsKey string `json:"oddsKey" yaml:"odds"`
}

// Team maps an ESPN display name to its league and numeric id.
type Team struct {
	Name   string `json:"name" yaml:"name"`
	League string `json:"league" yaml:"-"`
	ID     int    `json:"id" yaml:"id"`
}

// Catalog is an immutable lookup over leagues and teams.
type Catalog struct {
	leagues  map[string]League
	order    []string
	teams    map[string]Team
	folded   map[string]string
	byLeague map[string][]Team
}

type leaguesDoc struct {
	Leagues []League `yaml:"leagues"`
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(embedded)
})

// Default returns the catalog compiled into the binary. It panics if the
// embedded tables are malformed, which only a bad build can cause.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded tables: %v", err))
	}
	return c
}

// Open returns the embedded catalog when dir is empty, otherwise it loads
// leagues.yaml and teams.yaml from dir.
func Open(dir string) (*Catalog, error) {
	if dir == "" {
		return loadDefault()
	}
	return Load(os.DirFS(dir))
}

// Load reads both tables from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	leagues, err := fs.ReadFile(fsys, leaguesFile)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", leaguesFile, err)
	}
	teams, err := fs.ReadFile(fsys, teamsFile)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", teamsFile, err)
	}
	return Parse(leagues, teams)
}

// Parse builds a catalog from raw YAML documents.
func Parse(leaguesYAML, teamsYAML []byte) (*Catalog, error) {
	var ld leaguesDoc
	if err := yaml.Unmarshal(leaguesYAML, &ld); err != nil {
		return nil, fmt.Errorf("catalog: decode leagues: %w", err)
	}
	var td map[string][]Team
	if err := yaml.Unmarshal(teamsYAML, &td); err != nil {
		return nil, fmt.Errorf("catalog: decode teams: %w", err)
	}

	c := &Catalog{
		leagues:  make(map[string]League, len(ld.Leagues)),
		teams:    make(map[string]Team),
		folded:   make(map[string]string),
		byLeague: make(map[string][]Team),
	}
	for _, l := range ld.Leagues {
		if l.Code == "" || l.Sport == "" || l.Path == "" {
			return nil, fmt.Errorf("catalog: league %q is missing code, sport or path", l.Code)
		}
		if _, dup := c.leagues[l.Code]; dup {
			return nil, fmt.Errorf("catalog: duplicate league %q", l.Code)
		}
		c.leagues[l.Code] = l
		c.order = append(c.order, l.Code)
	}
	if len(c.order) == 0 {
		return nil, errors.New("catalog: no leagues defined")
	}

	codes := make([]string, 0, len(td))
	for code := range td {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if _, ok := c.leagues[code]; !ok {
			return nil, fmt.Errorf("catalog: teams listed under unknown league %q", code)
		}
		for _, t := range td[code] {
			if t.Name == "" || t.ID <= 0 {
				return nil, fmt.Errorf("catalog: league %q has a team without name or id", code)
			}
			if _, dup := c.teams[t.Name]; dup {
				return nil, fmt.Errorf("catalog: duplicate team %q", t.Name)
			}
			t.League = code
			c.teams[t.Name] = t
			c.folded[strings.ToLower(t.Name)] = t.Name
			c.byLeague[code] = append(c.byLeague[code], t)
		}
	}
	return c, nil
}

// League looks up a league by code.
func (c *Catalog) League(code string) (League, bool) {
	if c == nil {
		return League{}, false
	}
	l, ok := c.leagues[strings.ToLower(strings.TrimSpace(code))]
	return l, ok
}

// Team looks up a team by display name, falling back to a case-insensitive match.
func (c *Catalog) Team(name string) (Team, bool) {
	if c == nil {
		return Team{}, false
	}
	name = strings.TrimSpace(name)
	if t, ok := c.teams[name]; ok {
		return t, true
	}
	if canonical, ok := c.folded[strings.ToLower(name)]; ok {
		return c.teams[canonical], true
	}
	return Team{}, false
}

// Leagues returns every league in file order.
func (c *Catalog) Leagues() []League {
	if c == nil {
		return nil
	}
	out := make([]League, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.leagues[code])
	}
	return out
}

// TeamsInLeague returns the teams listed for a league code.
func (c *Catalog) TeamsInLeague(code string) []Team {
	if c == nil {
		return nil
	}
	teams := c.byLeague[strings.ToLower(strings.TrimSpace(code))]
	out := make([]Team, len(teams))
	copy(out, teams)
	return out
}
