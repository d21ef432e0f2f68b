package tictactoe

import (
	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/pkg"
	"golang.org/x/exp/rand"
)

// ChooseMove wins if it can, blocks otherwise, then prefers the center.
func (that *Game) ChooseMove(rng *rand.Rand) (entity.Move, error) {
	if that.outcome.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	moves := that.LegalMoves()
	if len(moves) == 0 {
		return nil, apperror.ErrNoAvailableMoves
	}

	if cell, ok := that.completing(that.turn); ok {
		return Mark{Cell: cell}, nil
	}

	if cell, ok := that.completing(that.turn.Opponent()); ok {
		return Mark{Cell: cell}, nil
	}

	if that.board[center].IsNone() {
		return Mark{Cell: center}, nil
	}

	return pkg.Pick(rng, moves), nil
}

// completing finds an empty cell that gives player three in a row.
func (that *Game) completing(player entity.Player) (int, bool) {
	for i, cell := range that.board {
		if !cell.IsNone() {
			continue
		}

		board := that.board
		board[i] = player
		if board.winner() == player {
			return i, true
		}
	}

	return 0, false
}
