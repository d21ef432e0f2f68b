package reversi

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

const Size = 8

// Board is indexed [row][col]. P1 plays black and moves first.
type Board [Size][Size]entity.Player

func NewBoard() Board {
	var board Board
	board[3][3], board[4][4] = entity.P2, entity.P2
	board[3][4], board[4][3] = entity.P1, entity.P1

	return board
}

func (that Board) Count(player entity.Player) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if that[row][col] == player {
				count++
			}
		}
	}

	return count
}

// flips returns the opponent discs bracketed by placing player's disc on c.
func (that *Board) flips(c entity.Coord, player entity.Player) []entity.Coord {
	if !that[c.Row][c.Col].IsNone() {
		return nil
	}

	var flipped []entity.Coord
	for _, d := range entity.Directions8 {
		var run []entity.Coord

		cur := c.Add(d[0], d[1])
		for cur.In(Size, Size) && that[cur.Row][cur.Col] == player.Opponent() {
			run = append(run, cur)
			cur = cur.Add(d[0], d[1])
		}

		if len(run) > 0 && cur.In(Size, Size) && that[cur.Row][cur.Col] == player {
			flipped = append(flipped, run...)
		}
	}

	return flipped
}

func (that *Board) legalMoves(player entity.Player) []Move {
	var moves []Move
	for row := range Size {
		for col := range Size {
			c := entity.Coord{Row: row, Col: col}
			if len(that.flips(c, player)) > 0 {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Move places a disc on an empty square.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("%c%d", 'a'+that.Col, that.Row+1)
}

func (that Move) coord() entity.Coord {
	return entity.Coord{Row: that.Row, Col: that.Col}
}

type Game struct {
	board   Board
	turn    entity.Player
	outcome entity.Outcome
}

func New() *Game {
	return &Game{board: NewBoard(), turn: entity.P1}
}

// FromBoard starts a game from an arbitrary position with player to move.
func FromBoard(board Board, player entity.Player) *Game {
	return &Game{board: board, turn: player}
}

func (that *Game) Board() Board { return that.board }

func (that *Game) Kind() entity.Kind { return entity.Reversi }

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
	flipped := next.board.flips(m.coord(), that.turn)

	next.board[m.Row][m.Col] = that.turn
	for _, c := range flipped {
		next.board[c.Row][c.Col] = that.turn
	}

	effects := entity.Effects{Flipped: len(flipped)}

	opponent := that.turn.Opponent()
	switch {
	case len(next.board.legalMoves(opponent)) > 0:
		next.turn = opponent
	case len(next.board.legalMoves(that.turn)) > 0:
		effects.Passed = []entity.Player{opponent}
		effects.ExtraTurn = true
	default:
		next.outcome = next.board.result()
	}

	return &next, effects, nil
}

// result decides a finished board by disc majority.
func (that *Board) result() entity.Outcome {
	p1, p2 := that.Count(entity.P1), that.Count(entity.P2)

	switch {
	case p1 > p2:
		return entity.Win(entity.P1)
	case p2 > p1:
		return entity.Win(entity.P2)
	default:
		return entity.Draw()
	}
}
