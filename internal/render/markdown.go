package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/omarshaarawi/spottergrid/internal/models"
)

// Markdown lists populated numbers for chat delivery.
func Markdown(b *models.Board) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *%s*\n\n", title(b)))

	numbers := make([]int, 0, len(b.Cells))
	for n, cell := range b.Cells {
		if cell.Len() > 0 {
			numbers = append(numbers, n)
		}
	}
	slices.Sort(numbers)

	if len(numbers) == 0 {
		sb.WriteString("No active players on this roster.")
		return sb.String()
	}

	for _, n := range numbers {
		cell := b.Cells[n]
		sb.WriteString(fmt.Sprintf("*%d*", n))
		if len(cell.Offense) > 0 {
			sb.WriteString(fmt.Sprintf("  🟩 %s", markdownPlayers(cell.Offense)))
		}
		if len(cell.Defense) > 0 {
			sb.WriteString(fmt.Sprintf("  🟥 %s", markdownPlayers(cell.Defense)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n%d players, %d ignored", b.Active, b.Ignored))
	if relocated := b.RelocatedPlayers(); relocated > 0 {
		sb.WriteString(fmt.Sprintf(", 🔄 %d auto-flipped", relocated))
	}
	if twoWay := b.TwoWayNumbers(); twoWay > 0 {
		sb.WriteString(fmt.Sprintf(", %d two-way numbers", twoWay))
	}

	return sb.String()
}

func markdownPlayers(players []*models.Player) string {
	parts := make([]string, len(players))
	for i, p := range players {
		entry := fmt.Sprintf("%s %s", EscapeMarkdown(p.Position), EscapeMarkdown(displayName(p)))
		if len(p.SpecialTeams) > 0 {
			entry += fmt.Sprintf(" (%s)", EscapeMarkdown(strings.Join(p.SpecialTeams, ",")))
		}
		parts[i] = entry
	}
	return strings.Join(parts, " / ")
}

var markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

// EscapeMarkdown escapes the characters Telegram's legacy Markdown treats as
// entity delimiters.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
