package connectfour

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

const (
	Rows    = 6
	Columns = 7
	connect = 4
)

var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Board is indexed [row][col]; row 0 is the top.
type Board [Rows][Columns]entity.Player

// landing returns the lowest empty row of col, or -1 when the column is full.
func (that *Board) landing(col int) int {
	for row := Rows - 1; row >= 0; row-- {
		if that[row][col].IsNone() {
			return row
		}
	}

	return -1
}

// wins reports whether the disc on c completes four in a line.
func (that *Board) wins(c entity.Coord) bool {
	player := that[c.Row][c.Col]

	for _, d := range axes {
		count := 1
		for _, sign := range [2]int{1, -1} {
			cur := c.Add(sign*d[0], sign*d[1])
			for cur.In(Rows, Columns) && that[cur.Row][cur.Col] == player {
				count++
				cur = cur.Add(sign*d[0], sign*d[1])
			}
		}

		if count >= connect {
			return true
		}
	}

	return false
}

func (that *Board) full() bool {
	for col := range Columns {
		if that[0][col].IsNone() {
			return false
		}
	}

	return true
}

// drop places player's disc in col and returns where it landed.
func (that *Board) drop(col int, player entity.Player) entity.Coord {
	row := that.landing(col)
	if row < 0 {
		panic(fmt.Sprintf("connectfour: column %d is full", col))
	}

	that[row][col] = player

	return entity.Coord{Row: row, Col: col}
}

// Drop releases a disc into a column.
type Drop struct {
	Col int `json:"col"`
}

func (that Drop) String() string {
	return fmt.Sprintf("drop %d", that.Col)
}

type Game struct {
	board   Board
	turn    entity.Player
	outcome entity.Outcome
}

func New() *Game {
	return &Game{turn: entity.P1}
}

// FromBoard starts a game from an arbitrary position with player to move.
func FromBoard(board Board, player entity.Player) *Game {
	return &Game{board: board, turn: player}
}

func (that *Game) Board() Board { return that.board }

func (that *Game) Kind() entity.Kind { return entity.ConnectFour }

func (that *Game) Turn() entity.Player { return that.turn }

func (that *Game) Players() []entity.Player { return []entity.Player{entity.P1, entity.P2} }

func (that *Game) Outcome() entity.Outcome { return that.outcome }

func (that *Game) moves() []Drop {
	if that.outcome.IsOver() {
		return nil
	}

	var moves []Drop
	for col := range Columns {
		if that.board[0][col].IsNone() {
			moves = append(moves, Drop{Col: col})
		}
	}

	return moves
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

	m, ok := move.(Drop)
	if !ok || !slices.Contains(that.moves(), m) {
		return that, entity.Effects{}, fmt.Errorf("%w: %v", apperror.ErrIllegalMove, move)
	}

	next := *that
	landed := next.board.drop(m.Col, that.turn)

	switch {
	case next.board.wins(landed):
		next.outcome = entity.Win(that.turn)
	case next.board.full():
		next.outcome = entity.Draw()
	default:
		next.turn = that.turn.Opponent()
	}

	return &next, entity.Effects{}, nil
}
