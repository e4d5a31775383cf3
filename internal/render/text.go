package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/omarshaarawi/spottergrid/internal/board"
	"github.com/omarshaarawi/spottergrid/internal/models"
)

const (
	textCellWidth  = 14
	textCellHeight = 6
)

var (
	cellStyle      = lipgloss.NewStyle().Width(textCellWidth).Height(textCellHeight).Border(lipgloss.NormalBorder())
	emptyCellStyle = cellStyle.BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("240"))
	numberStyle    = lipgloss.NewStyle().Bold(true).Width(textCellWidth).Align(lipgloss.Center)
	offenseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	defenseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	specialStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	titleStyle     = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

// Text renders the board as a 10x10 terminal grid. Offense sits above the
// divider and defense below it.
func Text(b *models.Board) string {
	rows := board.Rows(b.Cells)
	rendered := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = textCell(cell)
		}
		rendered[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title(b)),
		lipgloss.JoinVertical(lipgloss.Left, rendered...),
	)
}

func textCell(cell board.GridCell) string {
	if cell.Empty() {
		return emptyCellStyle.Render(numberStyle.Render(fmt.Sprint(cell.Number)))
	}

	lines := []string{numberStyle.Render(fmt.Sprint(cell.Number))}
	lines = append(lines, textBand(cell.Offense, offenseStyle)...)
	if len(cell.Offense) > 0 && len(cell.Defense) > 0 {
		lines = append(lines, strings.Repeat("-", textCellWidth))
	}
	lines = append(lines, textBand(cell.Defense, defenseStyle)...)
	return cellStyle.Render(strings.Join(lines, "\n"))
}

func textBand(players []*models.Player, style lipgloss.Style) []string {
	if board.OnlySpecialTeams(players) {
		style = specialStyle
	}
	lines := make([]string, 0, len(players))
	for _, p := range players {
		lines = append(lines, style.Render(truncate(p.Position+" "+displayName(p), textCellWidth)))
	}
	return lines
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
