package connectfour

import (
	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"golang.org/x/exp/rand"
)

// Priority orders columns from the centre outwards.
var Priority = [Columns]int{3, 2, 4, 1, 5, 0, 6}

// ChooseMove wins if it can, blocks an immediate loss, otherwise plays the most central open column.
func (that *Game) ChooseMove(_ *rand.Rand) (entity.Move, error) {
	if that.outcome.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	moves := that.moves()
	if len(moves) == 0 {
		return nil, apperror.ErrNoAvailableMoves
	}

	if m, ok := that.completing(moves, that.turn); ok {
		return m, nil
	}

	if m, ok := that.completing(moves, that.turn.Opponent()); ok {
		return m, nil
	}

	for _, col := range Priority {
		if that.board[0][col].IsNone() {
			return Drop{Col: col}, nil
		}
	}

	return moves[0], nil
}

func (that *Game) completing(moves []Drop, player entity.Player) (Drop, bool) {
	for _, m := range moves {
		board := that.board
		if board.wins(board.drop(m.Col, player)) {
			return m, true
		}
	}

	return Drop{}, false
}
