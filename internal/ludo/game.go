package ludo

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

var ErrPlayerCount = errors.New("ludo needs 2 to 4 players")

type Phase string

const (
	PhaseRolling Phase = "rolling"
	PhaseMoving  Phase = "moving"
)

// Roll records the die value for the player to act.
type Roll struct {
	Value int `json:"value"`
}

func (that Roll) String() string { return fmt.Sprintf("roll %d", that.Value) }

// Advance moves one of the mover's tokens by the rolled value.
type Advance struct {
	Token int `json:"token"`
}

func (that Advance) String() string { return fmt.Sprintf("advance %d", that.Token) }

type Seat struct {
	Player entity.Player `json:"player"`
	Color  Color         `json:"color"`
	Tokens [Tokens]int   `json:"tokens"`
}

func (that Seat) finished() bool {
	for _, pos := range that.Tokens {
		if pos != Goal {
			return false
		}
	}

	return true
}

type Game struct {
	seats   [4]Seat
	count   int
	current int
	phase   Phase
	roll    int
	outcome entity.Outcome
}

func New(players int) (*Game, error) {
	colors, err := colorsFor(players)
	if err != nil {
		return nil, err
	}

	game := &Game{count: players, phase: PhaseRolling}
	for i, color := range colors {
		game.seats[i] = Seat{
			Player: entity.Seats[i],
			Color:  color,
			Tokens: [Tokens]int{Base, Base, Base, Base},
		}
	}

	return game, nil
}

func (that *Game) Seats() []Seat { return slices.Clone(that.seats[:that.count]) }

func (that *Game) Phase() Phase { return that.phase }

// Rolled is the die value waiting to be used, zero while rolling.
func (that *Game) Rolled() int { return that.roll }

func (that *Game) Kind() entity.Kind { return entity.Ludo }

func (that *Game) Turn() entity.Player { return that.seats[that.current].Player }

func (that *Game) Players() []entity.Player {
	players := make([]entity.Player, that.count)
	for i := range players {
		players[i] = that.seats[i].Player
	}

	return players
}

func (that *Game) Outcome() entity.Outcome { return that.outcome }

func (that *Game) movable() []Advance {
	seat := that.seats[that.current]

	var moves []Advance
	for i, pos := range seat.Tokens {
		if _, ok := target(seat.Color, pos, that.roll); ok {
			moves = append(moves, Advance{Token: i})
		}
	}

	return moves
}

func (that *Game) LegalMoves() []entity.Move {
	if that.outcome.IsOver() {
		return nil
	}

	if that.phase == PhaseRolling {
		moves := make([]entity.Move, 0, Six)
		for value := 1; value <= Six; value++ {
			moves = append(moves, Roll{Value: value})
		}

		return moves
	}

	var moves []entity.Move
	for _, m := range that.movable() {
		moves = append(moves, m)
	}

	return moves
}

func (that *Game) Apply(move entity.Move) (entity.State, entity.Effects, error) {
	if that.outcome.IsOver() {
		return that, entity.Effects{}, apperror.ErrGameFinished
	}

	if !slices.Contains(that.LegalMoves(), move) {
		return that, entity.Effects{}, fmt.Errorf("%w: %v in %s phase", apperror.ErrIllegalMove, move, that.phase)
	}

	next := *that

	var effects entity.Effects
	switch m := move.(type) {
	case Roll:
		next.roll = m.Value
		effects.Rolled = m.Value

		if len(next.movable()) == 0 {
			effects.Passed = []entity.Player{that.Turn()}
			next.passTurn()
		} else {
			next.phase = PhaseMoving
		}
	case Advance:
		effects = next.advance(m.Token)
		effects.Rolled = that.roll
	}

	return &next, effects, nil
}

func (that *Game) advance(token int) entity.Effects {
	var effects entity.Effects

	seat := &that.seats[that.current]
	pos, _ := target(seat.Color, seat.Tokens[token], that.roll)
	seat.Tokens[token] = pos

	if onTrack(pos) && !IsSafe(pos) {
		for i := range that.count {
			if i == that.current {
				continue
			}

			for j, other := range that.seats[i].Tokens {
				if other == pos {
					that.seats[i].Tokens[j] = Base
					effects.Captured++
				}
			}
		}
	}

	if seat.finished() {
		that.outcome = entity.Win(seat.Player)
		return effects
	}

	if that.roll == Six || effects.Captured > 0 || pos == Goal {
		effects.ExtraTurn = true
		that.phase = PhaseRolling
		that.roll = 0

		return effects
	}

	that.passTurn()

	return effects
}

func (that *Game) passTurn() {
	that.current = (that.current + 1) % that.count
	that.phase = PhaseRolling
	that.roll = 0
}
