package teams

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/omarshaarawi/spottergrid/internal/models"
)

//go:embed catalog.yaml
var catalogYAML []byte

var ErrUnknownTeam = errors.New("unknown team")

// Catalog is a read-only table of teams and special-teams role colors.
type Catalog struct {
	DefaultColor     string            `yaml:"default_color"`
	DefaultRoleColor string            `yaml:"default_role_color"`
	Teams            []models.Team     `yaml:"teams"`
	Roles            map[string]string `yaml:"roles"`

	byName map[string]models.Team
}

var defaultCatalog = mustParse(catalogYAML)

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	return defaultCatalog
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decoding team catalog: %w", err)
	}

	c.byName = make(map[string]models.Team, len(c.Teams))
	for _, team := range c.Teams {
		if team.Name == "" {
			return nil, errors.New("team catalog entry without a name")
		}
		c.byName[team.Name] = team
	}
	return &c, nil
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.Teams))
	for i, team := range c.Teams {
		names[i] = team.Name
	}
	return names
}

// Team returns the catalog entry for name. Unknown names get the default
// color and no logo.
func (c *Catalog) Team(name string) models.Team {
	if team, ok := c.byName[name]; ok {
		return team
	}
	return models.Team{Name: name, Color: c.DefaultColor}
}

func (c *Catalog) Logo(name string) (string, bool) {
	team, ok := c.byName[name]
	if !ok || team.Logo == "" {
		return "", false
	}
	return team.Logo, true
}

func (c *Catalog) Color(name string) string {
	if team, ok := c.byName[name]; ok && team.Color != "" {
		return team.Color
	}
	return c.DefaultColor
}

func (c *Catalog) RoleColor(role string) string {
	if color, ok := c.Roles[role]; ok {
		return color
	}
	return c.DefaultRoleColor
}

// Search filters teams whose name contains term, ignoring case, in catalog
// order. An empty term matches every team.
func (c *Catalog) Search(term string) []models.Team {
	needle := strings.ToLower(strings.TrimSpace(term))
	var out []models.Team
	for _, team := range c.Teams {
		if strings.Contains(strings.ToLower(team.Name), needle) {
			out = append(out, team)
		}
	}
	return out
}

// Resolve finds the team a user most likely meant: an exact match, then the
// tightest fuzzy match, then the closest name by edit distance.
func (c *Catalog) Resolve(term string) (models.Team, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return models.Team{}, fmt.Errorf("%w: empty name", ErrUnknownTeam)
	}

	for _, team := range c.Teams {
		if strings.EqualFold(team.Name, term) {
			return team, nil
		}
	}

	ranks := fuzzy.RankFindFold(term, c.Names())
	if len(ranks) > 0 {
		sort.Stable(ranks)
		return c.Teams[ranks[0].OriginalIndex], nil
	}

	var bestMatch *models.Team
	bestSimilarity := 0.0
	threshold := 0.6

	for i, team := range c.Teams {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(term), strings.ToLower(team.Name))
		maxLen := float64(max(len(term), len(team.Name)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestSimilarity {
			bestSimilarity = similarity
			bestMatch = &c.Teams[i]
		}
	}

	if bestMatch == nil {
		return models.Team{}, fmt.Errorf("%w: %s", ErrUnknownTeam, term)
	}
	return *bestMatch, nil
}
