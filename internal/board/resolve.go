package board

import (
	"log/slog"
	"slices"

	"github.com/omarshaarawi/spottergrid/internal/models"
)

// Relocation rules, applied to each cell in this order.
const (
	RuleCrossSide       = "cross-side"
	RuleDefenseCrowding = "defense-crowding"
	RuleOffenseCrowding = "offense-crowding"
	RuleResidualCleanup = "residual-cleanup"
)

var Rules = []string{RuleCrossSide, RuleDefenseCrowding, RuleOffenseCrowding, RuleResidualCleanup}

// Resolve moves special-teams players between sides of each cell to reduce
// crowding. Cells are visited in number order and mutated in place; every
// individual move is returned.
func Resolve(m models.BoardMap, logger *slog.Logger) []models.Move {
	if logger == nil {
		logger = slog.Default()
	}

	numbers := make([]int, 0, len(m))
	for n := range m {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	var moves []models.Move
	for _, n := range numbers {
		r := cellResolver{number: n, cell: m[n], logger: logger}
		r.resolve()
		moves = append(moves, r.moves...)
	}
	return moves
}

type cellResolver struct {
	number int
	cell   *models.Cell
	logger *slog.Logger
	moves  []models.Move
}

func (r *cellResolver) resolve() {
	cell := r.cell

	if cell.TwoWay() {
		offenseST := relocatable(cell.Offense)
		defenseST := relocatable(cell.Defense)

		if len(offenseST) > 0 || len(defenseST) > 0 {
			r.logger.Debug("Offense/defense conflict",
				"number", r.number,
				"offense", labels(cell.Offense),
				"defense", labels(cell.Defense),
				"special_teams_offense", labels(offenseST),
				"special_teams_defense", labels(defenseST),
			)
		}

		if len(offenseST) > 0 && hasRegular(cell.Defense) {
			r.move(offenseST, models.Offense, RuleCrossSide)
		} else if len(defenseST) > 0 && hasRegular(cell.Offense) {
			r.move(defenseST, models.Defense, RuleCrossSide)
		}
	}

	if len(cell.Defense) > 1 {
		r.crowding(models.Defense, RuleDefenseCrowding)
	}

	if len(cell.Offense) > 1 {
		r.crowding(models.Offense, RuleOffenseCrowding)
	}

	if cell.TwoWay() {
		defenseST := relocatable(cell.Defense)
		if len(defenseST) > 0 && hasRegular(cell.Defense) {
			r.logger.Debug("Special teamers left with regular defense",
				"number", r.number,
				"offense", labels(cell.Offense),
				"defense", labels(cell.Defense),
				"special_teams", labels(defenseST),
			)
			r.move(defenseST, models.Defense, RuleResidualCleanup)
		}
	}
}

// crowding moves the special teamers off side when they share it with at
// least one regular player.
func (r *cellResolver) crowding(side models.Side, rule string) {
	players := r.cell.Side(side)
	special := relocatable(players)
	if len(special) == 0 || !hasRegular(players) {
		return
	}
	r.logger.Debug("Same-side conflict",
		"number", r.number,
		"side", side.String(),
		"players", labels(players),
		"special_teams", labels(special),
	)
	r.move(special, side, rule)
}

func (r *cellResolver) move(players []*models.Player, from models.Side, rule string) {
	for _, p := range players {
		if !r.cell.Move(p, from) {
			continue
		}
		r.moves = append(r.moves, models.Move{
			Number: r.number,
			Player: p,
			From:   from,
			To:     from.Opposite(),
			Rule:   rule,
		})
		r.logger.Debug("Auto-flipped player",
			"number", r.number,
			"player", p.Name,
			"position", p.Position,
			"from", from.String(),
			"to", from.Opposite().String(),
			"rule", rule,
		)
	}
}

// relocatable returns the special teamers that were not placed by hand.
func relocatable(players []*models.Player) []*models.Player {
	var out []*models.Player
	for _, p := range players {
		if IsSpecialTeams(p.Position) && !manuallyPlaced(p) {
			out = append(out, p)
		}
	}
	return out
}

func hasRegular(players []*models.Player) bool {
	for _, p := range players {
		if !IsSpecialTeams(p.Position) {
			return true
		}
	}
	return false
}

func labels(players []*models.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.String()
	}
	return out
}
