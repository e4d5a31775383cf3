package board

import (
	"github.com/omarshaarawi/spottergrid/internal/models"
)

const (
	GridSize  = 10
	CellCount = GridSize * GridSize
)

type GridCell struct {
	Number  int
	Offense []*models.Player
	Defense []*models.Player
}

func (c GridCell) Empty() bool {
	return len(c.Offense) == 0 && len(c.Defense) == 0
}

// Grid lays the board out row-major over numbers 0-99. Numbers outside that
// range stay in the map but have no place on the grid.
func Grid(m models.BoardMap) [CellCount]GridCell {
	var grid [CellCount]GridCell
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			num := row*GridSize + col
			grid[num].Number = num
			if cell, ok := m[num]; ok {
				grid[num].Offense = cell.Offense
				grid[num].Defense = cell.Defense
			}
		}
	}
	return grid
}

// Rows splits the grid into GridSize rows of GridSize cells.
func Rows(m models.BoardMap) [][]GridCell {
	grid := Grid(m)
	rows := make([][]GridCell, GridSize)
	for row := range rows {
		rows[row] = grid[row*GridSize : (row+1)*GridSize]
	}
	return rows
}
