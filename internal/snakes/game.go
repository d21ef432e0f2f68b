package snakes

import (
	"fmt"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

const (
	Start  = 1
	Finish = 100
	Six    = 6
)

// Snakes maps a snake's head to its tail.
var Snakes = map[int]int{16: 6, 47: 26, 49: 11, 56: 53, 62: 19, 64: 60, 87: 24, 93: 73, 95: 75, 98: 78}

// Ladders maps the foot of a ladder to its top.
var Ladders = map[int]int{1: 38, 4: 14, 9: 31, 21: 42, 28: 84, 36: 44, 51: 67, 71: 91, 80: 100}

// Roll moves the player to act by the die value.
type Roll struct {
	Value int `json:"value"`
}

func (that Roll) String() string { return fmt.Sprintf("roll %d", that.Value) }

// Advance is where a token on pos ends up after roll. A roll past the last square is lost.
func Advance(pos, roll int) int {
	to := pos + roll
	if to > Finish {
		return pos
	}

	if tail, ok := Snakes[to]; ok {
		return tail
	}

	if top, ok := Ladders[to]; ok {
		return top
	}

	return to
}

type Game struct {
	positions [2]int
	turn      entity.Player
	outcome   entity.Outcome
}

func New() *Game {
	return &Game{positions: [2]int{Start, Start}, turn: entity.P1}
}

func seat(player entity.Player) int {
	if player == entity.P1 {
		return 0
	}

	return 1
}

func (that *Game) Position(player entity.Player) int { return that.positions[seat(player)] }

func (that *Game) Kind() entity.Kind { return entity.SnakesAndLadders }

func (that *Game) Turn() entity.Player { return that.turn }

func (that *Game) Players() []entity.Player { return []entity.Player{entity.P1, entity.P2} }

func (that *Game) Outcome() entity.Outcome { return that.outcome }

func (that *Game) LegalMoves() []entity.Move {
	if that.outcome.IsOver() {
		return nil
	}

	moves := make([]entity.Move, 0, Six)
	for value := 1; value <= Six; value++ {
		moves = append(moves, Roll{Value: value})
	}

	return moves
}

func (that *Game) Apply(move entity.Move) (entity.State, entity.Effects, error) {
	if that.outcome.IsOver() {
		return that, entity.Effects{}, apperror.ErrGameFinished
	}

	m, ok := move.(Roll)
	if !ok || m.Value < 1 || m.Value > Six {
		return that, entity.Effects{}, fmt.Errorf("%w: %v", apperror.ErrIllegalMove, move)
	}

	next := *that

	mover := seat(that.turn)
	next.positions[mover] = Advance(that.positions[mover], m.Value)

	if next.positions[mover] == Finish {
		next.outcome = entity.Win(that.turn)
	} else {
		next.turn = that.turn.Opponent()
	}

	return &next, entity.Effects{Rolled: m.Value}, nil
}
