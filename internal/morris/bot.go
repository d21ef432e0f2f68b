package morris

import (
	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/pkg"
	"golang.org/x/exp/rand"
)

const (
	millScore  = 100
	blockScore = 50
)

// ChooseMove closes a mill when possible, otherwise blocks one. Removal targets are random.
func (that *Game) ChooseMove(rng *rand.Rand) (entity.Move, error) {
	if that.outcome.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	moves := that.LegalMoves()
	if len(moves) == 0 {
		return nil, apperror.ErrNoAvailableMoves
	}

	if that.phase == PhaseRemoving {
		return pkg.Pick(rng, moves), nil
	}

	scores := make([]float64, len(moves))
	for i, move := range moves {
		scores[i] = that.score(move) + rng.Float64()
	}

	return moves[pkg.Argmax(scores)], nil
}

func (that *Game) score(move entity.Move) float64 {
	var from, to int

	switch m := move.(type) {
	case Place:
		from, to = -1, m.At
	case Slide:
		from, to = m.From, m.To
	default:
		return 0
	}

	after := that.board
	if from >= 0 {
		after[from] = entity.NoPlayer
	}
	after[to] = that.turn
	if after.InMill(to) {
		return millScore
	}

	blocked := that.board
	blocked[to] = that.turn.Opponent()
	if blocked.InMill(to) {
		return blockScore
	}

	return 0
}
