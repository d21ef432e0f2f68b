package checkers

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

const Size = 8

type Piece struct {
	Owner entity.Player `json:"owner,omitempty"`
	King  bool          `json:"king,omitempty"`
}

func (that Piece) IsEmpty() bool {
	return that.Owner.IsNone()
}

// Board is indexed [row][col]; only squares with odd row+col are used.
type Board [Size][Size]Piece

func NewBoard() Board {
	var board Board
	for row := range Size {
		for col := range Size {
			if !Dark(row, col) {
				continue
			}

			switch {
			case row <= 2:
				board[row][col] = Piece{Owner: entity.P2}
			case row >= 5:
				board[row][col] = Piece{Owner: entity.P1}
			}
		}
	}

	return board
}

func Dark(row, col int) bool {
	return (row+col)%2 == 1
}

func (that Board) At(c entity.Coord) Piece {
	return that.at(c)
}

func (that *Board) at(c entity.Coord) Piece {
	if !c.In(Size, Size) {
		panic(fmt.Sprintf("checkers: square %s is off the board", c))
	}

	return that[c.Row][c.Col]
}

func (that Board) Count(player entity.Player) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if that[row][col].Owner == player {
				count++
			}
		}
	}

	return count
}

// Move is a single step or a single jump. A multi-jump is a sequence of jumps by the same piece.
type Move struct {
	From entity.Coord `json:"from"`
	To   entity.Coord `json:"to"`
}

func (that Move) String() string {
	sep := "-"
	if that.IsCapture() {
		sep = "x"
	}

	return fmt.Sprintf("%s%s%s", that.From, sep, that.To)
}

func (that Move) IsCapture() bool {
	dr := that.To.Row - that.From.Row
	return dr == 2 || dr == -2
}

func (that Move) jumped() entity.Coord {
	return entity.Coord{Row: (that.From.Row + that.To.Row) / 2, Col: (that.From.Col + that.To.Col) / 2}
}

// crownRow is the far row where a player's men become kings.
func crownRow(player entity.Player) int {
	if player == entity.P1 {
		return 0
	}

	return Size - 1
}

func directions(piece Piece) [][2]int {
	if piece.King {
		return [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	}

	if piece.Owner == entity.P1 {
		return [][2]int{{-1, -1}, {-1, 1}}
	}

	return [][2]int{{1, -1}, {1, 1}}
}

func (that *Board) captures(from entity.Coord) []Move {
	piece := that.at(from)

	var moves []Move
	for _, d := range directions(piece) {
		over, land := from.Add(d[0], d[1]), from.Add(2*d[0], 2*d[1])
		if !land.In(Size, Size) || !that.at(land).IsEmpty() {
			continue
		}

		if jumped := that.at(over); !jumped.IsEmpty() && jumped.Owner != piece.Owner {
			moves = append(moves, Move{From: from, To: land})
		}
	}

	return moves
}

func (that *Board) steps(from entity.Coord) []Move {
	var moves []Move
	for _, d := range directions(that.at(from)) {
		to := from.Add(d[0], d[1])
		if to.In(Size, Size) && that.at(to).IsEmpty() {
			moves = append(moves, Move{From: from, To: to})
		}
	}

	return moves
}

// legalMoves applies the mandatory capture rule across all of player's pieces.
func (that *Board) legalMoves(player entity.Player) []Move {
	var jumps, steps []Move

	for row := range Size {
		for col := range Size {
			from := entity.Coord{Row: row, Col: col}
			if that.at(from).Owner != player {
				continue
			}

			jumps = append(jumps, that.captures(from)...)
			steps = append(steps, that.steps(from)...)
		}
	}

	if len(jumps) > 0 {
		return jumps
	}

	return steps
}

type Game struct {
	board Board
	turn  entity.Player

	// chain is set while a piece owes another jump.
	chaining bool
	chain    entity.Coord

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

// Continuing reports the square of the piece that must keep jumping, if any.
func (that *Game) Continuing() (entity.Coord, bool) { return that.chain, that.chaining }

func (that *Game) Kind() entity.Kind { return entity.Checkers }

func (that *Game) Turn() entity.Player { return that.turn }

func (that *Game) Players() []entity.Player { return []entity.Player{entity.P1, entity.P2} }

func (that *Game) Outcome() entity.Outcome { return that.outcome }

func (that *Game) moves() []Move {
	switch {
	case that.outcome.IsOver():
		return nil
	case that.chaining:
		return that.board.captures(that.chain)
	default:
		return that.board.legalMoves(that.turn)
	}
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
	next.chaining = false

	var effects entity.Effects

	piece := next.board.at(m.From)
	next.board[m.From.Row][m.From.Col] = Piece{}

	if m.IsCapture() {
		over := m.jumped()
		next.board[over.Row][over.Col] = Piece{}
		effects.Captured = 1
	}

	if !piece.King && m.To.Row == crownRow(piece.Owner) {
		piece.King = true
		effects.Promoted = true
	}

	next.board[m.To.Row][m.To.Col] = piece

	if m.IsCapture() && len(next.board.captures(m.To)) > 0 {
		next.chaining = true
		next.chain = m.To
		effects.ExtraTurn = true

		return &next, effects, nil
	}

	opponent := that.turn.Opponent()
	next.turn = opponent

	if next.board.Count(opponent) == 0 || len(next.board.legalMoves(opponent)) == 0 {
		next.outcome = entity.Win(that.turn)
	}

	return &next, effects, nil
}
