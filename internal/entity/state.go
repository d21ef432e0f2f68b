package entity

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Move is a game specific action. Concrete moves are comparable values.
type Move interface {
	fmt.Stringer
}

// Effects describes what a move did besides moving a piece.
type Effects struct {
	Captured  int      `json:"captured,omitempty"`
	Flipped   int      `json:"flipped,omitempty"`
	Promoted  bool     `json:"promoted,omitempty"`
	Mill      bool     `json:"mill,omitempty"`
	ExtraTurn bool     `json:"extra_turn,omitempty"`
	Check     bool     `json:"check,omitempty"`
	Passed    []Player `json:"passed,omitempty"`
	Rolled    int      `json:"rolled,omitempty"`
}

// State is an immutable game position. Apply never changes the receiver.
type State interface {
	Kind() Kind
	Turn() Player
	Players() []Player
	Outcome() Outcome

	// LegalMoves is empty once the game is over.
	LegalMoves() []Move
	Apply(move Move) (State, Effects, error)

	// ChooseMove picks the computer's move for the player to act.
	ChooseMove(rng *rand.Rand) (Move, error)
}

// Coord is a square on a rectangular board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) Add(dr, dc int) Coord {
	return Coord{Row: that.Row + dr, Col: that.Col + dc}
}

func (that Coord) In(rows, cols int) bool {
	return that.Row >= 0 && that.Row < rows && that.Col >= 0 && that.Col < cols
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Directions8 are the king-step offsets.
var Directions8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
