package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableRowStyle    = lipgloss.NewStyle().Padding(0, 1)
	tableSepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Table renders rows as padded, pipe-separated columns sized to the widest
// cell in each column. Cells beyond the header count are dropped.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	// Padding counts towards the lipgloss width.
	total := len(widths) - 1
	for i := range widths {
		widths[i] += 2
		total += widths[i]
	}

	var sb strings.Builder
	writeTableRow(&sb, headers, widths, tableHeaderStyle)
	sb.WriteString(tableSepStyle.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")
	for _, row := range rows {
		writeTableRow(&sb, row, widths, tableRowStyle)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func writeTableRow(sb *strings.Builder, cells []string, widths []int, style lipgloss.Style) {
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(style.Width(widths[i]).Render(cell))
		if i < len(widths)-1 {
			sb.WriteString(tableSepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")
}
