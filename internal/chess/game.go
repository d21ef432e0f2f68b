package chess

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

// Move relocates the piece on From to To. A pawn reaching the last row always becomes a queen.
type Move struct {
	From entity.Coord `json:"from"`
	To   entity.Coord `json:"to"`
}

func (that Move) String() string {
	return square(that.From) + square(that.To)
}

func square(c entity.Coord) string {
	return fmt.Sprintf("%c%d", 'a'+c.Col, Size-c.Row)
}

type Game struct {
	board   Board
	turn    entity.Player
	check   bool
	outcome entity.Outcome
}

func New() *Game {
	return &Game{board: NewBoard(), turn: entity.P1}
}

// FromBoard starts a game from an arbitrary position with player to move.
func FromBoard(board Board, player entity.Player) *Game {
	game := &Game{board: board, turn: player}
	game.check = board.InCheck(player)

	return game
}

func (that *Game) Board() Board { return that.board }

func (that *Game) InCheck() bool { return that.check }

func (that *Game) Kind() entity.Kind { return entity.Chess }

func (that *Game) Turn() entity.Player { return that.turn }

func (that *Game) Players() []entity.Player { return []entity.Player{entity.P1, entity.P2} }

func (that *Game) Outcome() entity.Outcome { return that.outcome }

func (that *Game) moves() []Move {
	if that.outcome.IsOver() {
		return nil
	}

	return that.board.legalMoves(that.turn)
}

func (that *Game) LegalMoves() []entity.Move {
	moves := that.moves()

	out := make([]entity.Move, len(moves))
	for i, m := range moves {
		out[i] = m
	}

	return out
}

func (that *Game) Apply(move entity.Move) (entity.State, entity.Effects, error) {
	if that.outcome.IsOver() {
		return that, entity.Effects{}, apperror.ErrGameFinished
	}

	m, ok := move.(Move)
	if !ok || !slices.Contains(that.moves(), m) {
		return that, entity.Effects{}, fmt.Errorf("%w: %v", apperror.ErrIllegalMove, move)
	}

	next := *that
	captured, promoted := next.board.move(m)

	effects := entity.Effects{Promoted: promoted}
	if !captured.IsEmpty() {
		effects.Captured = 1
	}

	next.turn = that.turn.Opponent()
	next.check = next.board.InCheck(next.turn)
	effects.Check = next.check

	if len(next.board.legalMoves(next.turn)) == 0 {
		if next.check {
			next.outcome = entity.Win(that.turn)
		} else {
			next.outcome = entity.Draw()
		}
	}

	return &next, effects, nil
}
