package checkers

import (
	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/pkg"
	"golang.org/x/exp/rand"
)

// ChooseMove prefers a move that crowns a man, otherwise picks at random.
// Capture is already mandatory in the legal set.
func (that *Game) ChooseMove(rng *rand.Rand) (entity.Move, error) {
	if that.outcome.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	moves := that.moves()
	if len(moves) == 0 {
		return nil, apperror.ErrNoAvailableMoves
	}

	var crowning []Move
	for _, m := range moves {
		if piece := that.board.at(m.From); !piece.King && m.To.Row == crownRow(piece.Owner) {
			crowning = append(crowning, m)
		}
	}

	if len(crowning) > 0 {
		return pkg.Pick(rng, crowning), nil
	}

	return pkg.Pick(rng, moves), nil
}
