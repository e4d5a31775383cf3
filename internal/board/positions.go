package board

import (
	"strings"

	"github.com/omarshaarawi/spottergrid/internal/models"
)

var offensivePositions = map[string]bool{
	"QB": true,
	"RB": true,
	"WR": true,
	"TE": true,
	"OL": true,
	"FB": true,
	"OT": true,
	"OG": true,
	"C":  true,
	"LS": true,
}

// Compound tokens are listed literally; special-teams membership is tested
// against the whole position string.
var specialTeamsPositions = map[string]bool{
	"K":   true,
	"LS":  true,
	"P":   true,
	"SNP": true,
	"P/K": true,
	"K/P": true,
	"PK":  true,
	"KP":  true,
	"ST":  true,
}

// IsTruthy normalizes the string flags used for ignore and flip.
func IsTruthy(raw string) bool {
	switch raw {
	case "y", "Y", "true", "True", "TRUE":
		return true
	}
	return false
}

// IsNaturallyOffensive reports whether position, or any slash-separated part
// of it, is an offensive position. Unknown positions default to defense.
func IsNaturallyOffensive(position string) bool {
	if offensivePositions[position] {
		return true
	}
	if !strings.Contains(position, "/") {
		return false
	}
	for _, pos := range strings.Split(position, "/") {
		if offensivePositions[pos] {
			return true
		}
	}
	return false
}

func IsSpecialTeams(position string) bool {
	return specialTeamsPositions[position]
}

// NaturalSide is the side a player lands on before any override.
func NaturalSide(p *models.Player) models.Side {
	if IsNaturallyOffensive(p.Position) {
		return models.Offense
	}
	return models.Defense
}

// manuallyPlaced reports whether a flip value was supplied at all. Such
// players are never picked up by automatic relocation.
func manuallyPlaced(p *models.Player) bool {
	return p.Flip != ""
}

// OnlySpecialTeams reports whether players is non-empty and made up entirely
// of special-teams positions.
func OnlySpecialTeams(players []*models.Player) bool {
	if len(players) == 0 {
		return false
	}
	for _, p := range players {
		if !IsSpecialTeams(p.Position) {
			return false
		}
	}
	return true
}
