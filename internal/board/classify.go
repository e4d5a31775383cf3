package board

import (
	"github.com/omarshaarawi/spottergrid/internal/models"
)

// ActivePlayers drops ignored players. The returned pointers refer to the
// elements of players.
func ActivePlayers(players []models.Player) []*models.Player {
	active := make([]*models.Player, 0, len(players))
	for i := range players {
		if IsTruthy(players[i].Ignore) {
			continue
		}
		active = append(active, &players[i])
	}
	return active
}

// Classify places every player on its number's offense or defense side,
// honoring the flip override. Input order is kept within each side.
func Classify(players []*models.Player) models.BoardMap {
	m := make(models.BoardMap)
	for _, p := range players {
		cell, ok := m[p.Number]
		if !ok {
			cell = &models.Cell{Offense: []*models.Player{}, Defense: []*models.Player{}}
			m[p.Number] = cell
		}

		side := NaturalSide(p)
		if IsTruthy(p.Flip) {
			side = side.Opposite()
		}
		cell.Add(side, p)
	}
	return m
}
