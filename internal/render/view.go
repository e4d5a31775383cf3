package render

import (
	"strings"

	"github.com/omarshaarawi/spottergrid/internal/board"
	"github.com/omarshaarawi/spottergrid/internal/models"
	"github.com/omarshaarawi/spottergrid/internal/teams"
)

const (
	BandOffense = "offense"
	BandDefense = "defense"
)

// compactRoles is the badge count at which role circles shrink to fit one row.
const compactRoles = 5

type cellView struct {
	Number  int
	Empty   bool
	Offense bandView
	Defense bandView
}

type bandView struct {
	Side    string
	Special bool
	Full    bool
	Players []playerView
}

func (b bandView) Present() bool {
	return len(b.Players) > 0
}

type playerView struct {
	Position     string
	FirstName    string
	LastName     string
	Roles        []roleView
	CompactRoles bool
}

type roleView struct {
	Code       string
	Background string
	Text       string
}

// SplitName breaks a display name into its first word and the remainder.
func SplitName(name string) (first, last string) {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return "", ""
	case 1:
		return words[0], ""
	}
	return words[0], strings.Join(words[1:], " ")
}

func buildCells(b *models.Board, catalog *teams.Catalog) []cellView {
	grid := board.Grid(b.Cells)
	cells := make([]cellView, len(grid))
	for i, gc := range grid {
		cells[i] = cellView{
			Number:  gc.Number,
			Empty:   gc.Empty(),
			Offense: buildBand(gc.Offense, BandOffense, len(gc.Defense) == 0, catalog),
			Defense: buildBand(gc.Defense, BandDefense, len(gc.Offense) == 0, catalog),
		}
	}
	return cells
}

func buildBand(players []*models.Player, side string, full bool, catalog *teams.Catalog) bandView {
	band := bandView{Side: side, Special: board.OnlySpecialTeams(players), Full: full}
	for _, p := range players {
		band.Players = append(band.Players, buildPlayer(p, catalog))
	}
	return band
}

func buildPlayer(p *models.Player, catalog *teams.Catalog) playerView {
	first, last := SplitName(displayName(p))
	pv := playerView{
		Position:     p.Position,
		FirstName:    first,
		LastName:     last,
		CompactRoles: len(p.SpecialTeams) >= compactRoles,
	}
	for _, role := range p.SpecialTeams {
		bg := catalog.RoleColor(role)
		pv.Roles = append(pv.Roles, roleView{
			Code:       role,
			Background: bg,
			Text:       teams.ContrastTextColor(bg),
		})
	}
	return pv
}

// displayName prefers the phonetic spelling spotters read aloud.
func displayName(p *models.Player) string {
	if p.PhoneticName != "" {
		return p.PhoneticName
	}
	return p.Name
}
