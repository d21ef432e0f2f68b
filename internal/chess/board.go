package chess

import (
	"fmt"

	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

const Size = 8

type PieceKind uint8

const (
	None PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceLetters = [...]string{None: ".", Pawn: "p", Knight: "n", Bishop: "b", Rook: "r", Queen: "q", King: "k"}

// Values is the material table used by the computer.
var Values = [...]float64{None: 0, Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: 9, King: 100}

func (that PieceKind) String() string {
	return pieceLetters[that]
}

type Piece struct {
	Owner entity.Player `json:"owner,omitempty"`
	Kind  PieceKind     `json:"kind"`
}

func (that Piece) IsEmpty() bool {
	return that.Kind == None
}

var backRank = [Size]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

var (
	knightSteps = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	rookRays    = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopRays  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Board is indexed [row][col]. P2 starts on rows 0-1, P1 on rows 6-7.
type Board [Size][Size]Piece

func NewBoard() Board {
	var board Board
	for col, kind := range backRank {
		board[0][col] = Piece{Owner: entity.P2, Kind: kind}
		board[1][col] = Piece{Owner: entity.P2, Kind: Pawn}
		board[6][col] = Piece{Owner: entity.P1, Kind: Pawn}
		board[7][col] = Piece{Owner: entity.P1, Kind: kind}
	}

	return board
}

func (that Board) At(c entity.Coord) Piece {
	return that.at(c)
}

func (that *Board) at(c entity.Coord) Piece {
	if !c.In(Size, Size) {
		panic(fmt.Sprintf("chess: square %s is off the board", c))
	}

	return that[c.Row][c.Col]
}

func (that *Board) set(c entity.Coord, piece Piece) {
	that[c.Row][c.Col] = piece
}

// forward is the row direction a player's pawns travel.
func forward(player entity.Player) int {
	if player == entity.P1 {
		return -1
	}

	return 1
}

func pawnStartRow(player entity.Player) int {
	if player == entity.P1 {
		return 6
	}

	return 1
}

func lastRow(player entity.Player) int {
	if player == entity.P1 {
		return 0
	}

	return Size - 1
}

// pseudoMoves lists moves that obey piece movement but may leave the king attacked.
func (that *Board) pseudoMoves(player entity.Player) []Move {
	var moves []Move

	for row := range Size {
		for col := range Size {
			from := entity.Coord{Row: row, Col: col}
			piece := that.at(from)
			if piece.IsEmpty() || piece.Owner != player {
				continue
			}

			moves = that.pieceMoves(moves, from, piece)
		}
	}

	return moves
}

func (that *Board) pieceMoves(moves []Move, from entity.Coord, piece Piece) []Move {
	switch piece.Kind {
	case Pawn:
		return that.pawnMoves(moves, from, piece.Owner)
	case Knight:
		return that.steps(moves, from, piece.Owner, knightSteps[:])
	case Bishop:
		return that.rays(moves, from, piece.Owner, bishopRays[:])
	case Rook:
		return that.rays(moves, from, piece.Owner, rookRays[:])
	case Queen:
		moves = that.rays(moves, from, piece.Owner, rookRays[:])
		return that.rays(moves, from, piece.Owner, bishopRays[:])
	case King:
		return that.steps(moves, from, piece.Owner, entity.Directions8[:])
	default:
		return moves
	}
}

func (that *Board) pawnMoves(moves []Move, from entity.Coord, player entity.Player) []Move {
	dir := forward(player)

	one := from.Add(dir, 0)
	if one.In(Size, Size) && that.at(one).IsEmpty() {
		moves = append(moves, Move{From: from, To: one})

		two := from.Add(2*dir, 0)
		if from.Row == pawnStartRow(player) && that.at(two).IsEmpty() {
			moves = append(moves, Move{From: from, To: two})
		}
	}

	for _, dc := range [2]int{-1, 1} {
		diag := from.Add(dir, dc)
		if !diag.In(Size, Size) {
			continue
		}

		if target := that.at(diag); !target.IsEmpty() && target.Owner != player {
			moves = append(moves, Move{From: from, To: diag})
		}
	}

	return moves
}

func (that *Board) steps(moves []Move, from entity.Coord, player entity.Player, offsets [][2]int) []Move {
	for _, d := range offsets {
		to := from.Add(d[0], d[1])
		if !to.In(Size, Size) {
			continue
		}

		if target := that.at(to); target.IsEmpty() || target.Owner != player {
			moves = append(moves, Move{From: from, To: to})
		}
	}

	return moves
}

func (that *Board) rays(moves []Move, from entity.Coord, player entity.Player, dirs [][2]int) []Move {
	for _, d := range dirs {
		for to := from.Add(d[0], d[1]); to.In(Size, Size); to = to.Add(d[0], d[1]) {
			target := that.at(to)
			if target.IsEmpty() {
				moves = append(moves, Move{From: from, To: to})
				continue
			}

			if target.Owner != player {
				moves = append(moves, Move{From: from, To: to})
			}

			break
		}
	}

	return moves
}

// move plays m on the board and reports what was captured and whether a pawn was promoted.
func (that *Board) move(m Move) (Piece, bool) {
	piece := that.at(m.From)
	captured := that.at(m.To)

	promoted := piece.Kind == Pawn && m.To.Row == lastRow(piece.Owner)
	if promoted {
		piece.Kind = Queen
	}

	that.set(m.To, piece)
	that.set(m.From, Piece{})

	return captured, promoted
}

func (that *Board) king(player entity.Player) (entity.Coord, bool) {
	for row := range Size {
		for col := range Size {
			if p := that[row][col]; p.Kind == King && p.Owner == player {
				return entity.Coord{Row: row, Col: col}, true
			}
		}
	}

	return entity.Coord{}, false
}

// InCheck reports whether any opposing piece attacks player's king.
func (that *Board) InCheck(player entity.Player) bool {
	square, ok := that.king(player)
	if !ok {
		return false
	}

	for _, m := range that.pseudoMoves(player.Opponent()) {
		if m.To == square {
			return true
		}
	}

	return false
}

// legalMoves filters pseudo moves that would leave the mover's own king attacked.
func (that *Board) legalMoves(player entity.Player) []Move {
	pseudo := that.pseudoMoves(player)
	legal := make([]Move, 0, len(pseudo))

	for _, m := range pseudo {
		next := *that
		next.move(m)
		if !next.InCheck(player) {
			legal = append(legal, m)
		}
	}

	return legal
}
