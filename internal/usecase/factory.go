package usecase

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/checkers"
	"github.com/rocketscienceinc/boardgames-hub/internal/chess"
	"github.com/rocketscienceinc/boardgames-hub/internal/connectfour"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/ludo"
	"github.com/rocketscienceinc/boardgames-hub/internal/morris"
	"github.com/rocketscienceinc/boardgames-hub/internal/reversi"
	"github.com/rocketscienceinc/boardgames-hub/internal/snakes"
	"github.com/rocketscienceinc/boardgames-hub/internal/tictactoe"
)

// NewState returns the initial position of the variant's game.
func NewState(variant entity.Variant) (entity.State, error) {
	state, err := newState(variant)
	if err != nil {
		return nil, err
	}

	players := state.Players()
	for _, seat := range variant.Computer {
		if !slices.Contains(players, seat) {
			return nil, fmt.Errorf("%w: %s has no seat %s", apperror.ErrInvalidVariant, variant.Game, seat)
		}
	}

	return state, nil
}

func newState(variant entity.Variant) (entity.State, error) {
	if !slices.Contains(entity.Kinds, variant.Game) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownGame, variant.Game)
	}

	if variant.Game == entity.Ludo {
		game, err := ludo.New(variant.SeatCount())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidVariant, err)
		}

		return game, nil
	}

	if variant.SeatCount() != 2 {
		return nil, fmt.Errorf("%w: %s is played by two, not %d", apperror.ErrInvalidVariant, variant.Game, variant.Players)
	}

	switch variant.Game {
	case entity.Chess:
		return chess.New(), nil
	case entity.Checkers:
		return checkers.New(), nil
	case entity.Reversi:
		return reversi.New(), nil
	case entity.Morris:
		return morris.New(), nil
	case entity.ConnectFour:
		return connectfour.New(), nil
	case entity.TicTacToe:
		return tictactoe.New(), nil
	case entity.SnakesAndLadders:
		return snakes.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownGame, variant.Game)
	}
}
