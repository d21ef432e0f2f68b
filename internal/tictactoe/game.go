package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

const center = 4

// Mark places the mover's symbol on a cell 0..8, row by row.
type Mark struct {
	Cell int `json:"cell"`
}

func (that Mark) String() string {
	return fmt.Sprintf("mark %d", that.Cell)
}

type Board [9]entity.Player

type Game struct {
	board   Board
	turn    entity.Player
	outcome entity.Outcome
}

func New() *Game {
	return &Game{turn: entity.P1}
}

func (that *Game) Board() Board { return that.board }

func (that *Game) Kind() entity.Kind { return entity.TicTacToe }

func (that *Game) Turn() entity.Player { return that.turn }

func (that *Game) Players() []entity.Player { return []entity.Player{entity.P1, entity.P2} }

func (that *Game) Outcome() entity.Outcome { return that.outcome }

func (that *Game) LegalMoves() []entity.Move {
	if that.outcome.IsOver() {
		return nil
	}

	moves := make([]entity.Move, 0, len(that.board))
	for i, cell := range that.board {
		if cell.IsNone() {
			moves = append(moves, Mark{Cell: i})
		}
	}

	return moves
}

func (that *Game) Apply(move entity.Move) (entity.State, entity.Effects, error) {
	if that.outcome.IsOver() {
		return that, entity.Effects{}, apperror.ErrGameFinished
	}

	mark, ok := move.(Mark)
	if !ok {
		return that, entity.Effects{}, fmt.Errorf("%w: %v is not a mark", apperror.ErrIllegalMove, move)
	}

	if err := that.validateMove(mark.Cell); err != nil {
		return that, entity.Effects{}, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	next := *that
	next.board[mark.Cell] = that.turn
	next.updateGameStatus()

	return &next, entity.Effects{}, nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(cell int) error {
	if cell < 0 || cell >= len(that.board) {
		return fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}

	if !that.board[cell].IsNone() {
		return ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *Game) updateGameStatus() {
	if winner := that.board.winner(); !winner.IsNone() {
		that.outcome = entity.Win(winner)
		return
	}

	if that.board.full() {
		that.outcome = entity.Draw()
		return
	}

	that.turn = that.turn.Opponent()
}

func (that Board) winner() entity.Player {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if !a.IsNone() && a == b && b == c {
			return a
		}
	}

	return entity.NoPlayer
}

func (that Board) full() bool {
	for _, cell := range that {
		if cell.IsNone() {
			return false
		}
	}

	return true
}
