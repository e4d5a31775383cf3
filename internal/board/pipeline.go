package board

import (
	"log/slog"

	"github.com/omarshaarawi/spottergrid/internal/models"
)

// Pipeline runs ingestion filtering, classification, conflict resolution and
// the defense sort over one roster. It keeps no state between builds.
type Pipeline struct {
	logger *slog.Logger
}

func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

func (p *Pipeline) Logger() *slog.Logger {
	return p.logger
}

// Build classifies players into a fresh board. The board's cells point at
// the elements of players.
func (p *Pipeline) Build(players []models.Player) *models.Board {
	active := ActivePlayers(players)
	cells := Classify(active)
	moves := Resolve(cells, p.logger)
	SortDefense(cells)

	b := &models.Board{
		Cells:   cells,
		Moves:   moves,
		Active:  len(active),
		Ignored: len(players) - len(active),
	}

	if twoWay := b.TwoWayNumbers(); twoWay > 0 {
		p.logger.Info("Auto-flipping complete", "two_way_numbers", twoWay, "moves", len(moves))
	}

	return b
}
