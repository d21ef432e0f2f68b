package reversi

import (
	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/pkg"
	"golang.org/x/exp/rand"
)

const jitter = 0.5

// Weights rates squares: corners are best, squares next to them are worst.
var Weights = [Size][Size]float64{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// ChooseMove scores each square by weight plus discs flipped.
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
		flipped := that.board.flips(m.coord(), that.turn)
		scores[i] = Weights[m.Row][m.Col] + float64(len(flipped)) + rng.Float64()*jitter
	}

	return moves[pkg.Argmax(scores)], nil
}
