package board

import (
	"slices"

	"github.com/omarshaarawi/spottergrid/internal/models"
)

// SortDefense stable-sorts each defense side so special teamers come last.
func SortDefense(m models.BoardMap) {
	for _, cell := range m {
		slices.SortStableFunc(cell.Defense, func(a, b *models.Player) int {
			aST := IsSpecialTeams(a.Position)
			bST := IsSpecialTeams(b.Position)
			switch {
			case aST && !bST:
				return 1
			case !aST && bST:
				return -1
			}
			return 0
		})
	}
}
