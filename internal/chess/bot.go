package chess

import (
	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/pkg"
	"golang.org/x/exp/rand"
)

const captureWeight = 10

// ChooseMove takes the most valuable capture available, otherwise a random move.
func (that *Game) ChooseMove(rng *rand.Rand) (entity.Move, error) {
	if that.outcome.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	moves := that.moves()
	if len(moves) == 0 {
		return nil, apperror.ErrNoAvailableMoves
	}

	scores := make([]float64, len(moves))
	for i, m := range moves {
		scores[i] = captureWeight*Values[that.board.at(m.To).Kind] + rng.Float64()
	}

	return moves[pkg.Argmax(scores)], nil
}
