package ludo

import (
	"testing"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, players int) *Game {
	t.Helper()

	game, err := New(players)
	require.NoError(t, err)

	return game
}

func play(t *testing.T, state entity.State, moves ...entity.Move) (*Game, entity.Effects) {
	t.Helper()

	var effects entity.Effects
	for _, m := range moves {
		next, fx, err := state.Apply(m)
		require.NoError(t, err, "move %s", m)
		state, effects = next, fx
	}

	return state.(*Game), effects
}

func TestNew(t *testing.T) {
	t.Run("Two players are red and yellow", func(t *testing.T) {
		game := newGame(t, 2)

		seats := game.Seats()
		require.Len(t, seats, 2)
		assert.Equal(t, Seat{Player: entity.P1, Color: Red, Tokens: [Tokens]int{Base, Base, Base, Base}}, seats[0])
		assert.Equal(t, Yellow, seats[1].Color)
		assert.Equal(t, entity.P2, seats[1].Player)
		assert.Equal(t, PhaseRolling, game.Phase())
	})

	t.Run("Four players use every color", func(t *testing.T) {
		game := newGame(t, 4)

		assert.Equal(t, []entity.Player{entity.P1, entity.P2, entity.P3, entity.P4}, game.Players())
		assert.Equal(t, Blue, game.Seats()[3].Color)
	})

	t.Run("Rejects five players", func(t *testing.T) {
		_, err := New(5)

		require.ErrorIs(t, err, ErrPlayerCount)
	})
}

func TestTarget(t *testing.T) {
	cases := []struct {
		name  string
		color Color
		pos   int
		roll  int
		want  int
		ok    bool
	}{
		{"base needs a six", Red, Base, 5, Base, false},
		{"six leaves base", Green, Base, 6, 13, true},
		{"plain step", Red, 10, 4, 14, true},
		{"wraps around the track", Green, 50, 4, 2, true},
		{"last track square", Red, 48, 2, 50, true},
		{"turns into the home lane", Red, 50, 1, HomeStart, true},
		{"green turns home", Green, 10, 3, HomeStart + 1, true},
		{"exact goal from the track", Red, 50, 6, Goal, true},
		{"home lane step", Yellow, 101, 3, 104, true},
		{"home overshoot", Yellow, 103, 3, 103, false},
		{"goal is locked", Blue, Goal, 1, Goal, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := target(tc.color, tc.pos, tc.roll)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("Panics on a corrupt position", func(t *testing.T) {
		assert.Panics(t, func() { target(Red, 77, 1) })
	})
}

func TestGame_Apply(t *testing.T) {
	t.Run("Roll without a movable token passes the turn", func(t *testing.T) {
		// When: P1 rolls a three with every token at base
		game, effects := play(t, newGame(t, 2), Roll{Value: 3})

		// Then: P2 rolls next
		assert.Equal(t, 3, effects.Rolled)
		assert.Equal(t, []entity.Player{entity.P1}, effects.Passed)
		assert.Equal(t, entity.P2, game.Turn())
		assert.Equal(t, PhaseRolling, game.Phase())
	})

	t.Run("Six brings a token out and rolls again", func(t *testing.T) {
		// When: P1 rolls a six
		game, _ := play(t, newGame(t, 2), Roll{Value: 6})

		// Then: every token may leave base
		assert.Equal(t, PhaseMoving, game.Phase())
		assert.Len(t, game.LegalMoves(), Tokens)

		// When: the first token moves out
		game, effects := play(t, game, Advance{Token: 0})

		// Then: it stands on red's start and P1 rolls again
		assert.True(t, effects.ExtraTurn)
		assert.Equal(t, StartIndex[Red], game.Seats()[0].Tokens[0])
		assert.Equal(t, entity.P1, game.Turn())
		assert.Equal(t, PhaseRolling, game.Phase())
	})

	t.Run("Landing on an enemy sends it home", func(t *testing.T) {
		// Given: red on 5 and yellow on 7
		game := newGame(t, 2)
		game.seats[0].Tokens[0] = 5
		game.seats[1].Tokens[0] = 7

		// When: red moves two
		game, effects := play(t, game, Roll{Value: 2}, Advance{Token: 0})

		// Then: yellow is captured and red rolls again
		assert.Equal(t, 1, effects.Captured)
		assert.True(t, effects.ExtraTurn)
		assert.Equal(t, Base, game.Seats()[1].Tokens[0])
		assert.Equal(t, entity.P1, game.Turn())
	})

	t.Run("Safe cells protect tokens", func(t *testing.T) {
		// Given: yellow on the safe cell 8
		game := newGame(t, 2)
		game.seats[0].Tokens[0] = 5
		game.seats[1].Tokens[0] = 8

		// When: red lands there too
		game, effects := play(t, game, Roll{Value: 3}, Advance{Token: 0})

		// Then: both share the cell and the turn passes
		assert.Zero(t, effects.Captured)
		assert.Equal(t, 8, game.Seats()[1].Tokens[0])
		assert.Equal(t, entity.P2, game.Turn())
	})

	t.Run("Moving during the roll phase is rejected", func(t *testing.T) {
		_, _, err := newGame(t, 2).Apply(Advance{Token: 0})

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Finished tokens never move", func(t *testing.T) {
		game := newGame(t, 2)
		game.seats[0].Tokens = [Tokens]int{Goal, Base, Base, Base}

		game, _ = play(t, game, Roll{Value: 6})

		assert.NotContains(t, game.LegalMoves(), entity.Move(Advance{Token: 0}))
		assert.Len(t, game.LegalMoves(), 3)
	})

	t.Run("Last token home wins", func(t *testing.T) {
		// Given: three red tokens finished and the fourth two short
		game := newGame(t, 3)
		game.seats[0].Tokens = [Tokens]int{Goal, Goal, Goal, Goal - 2}

		// When: red rolls two and finishes
		game, _ = play(t, game, Roll{Value: 2}, Advance{Token: 3})

		// Then: red wins and the game is over
		assert.Equal(t, entity.Win(entity.P1), game.Outcome())
		assert.Empty(t, game.LegalMoves())

		_, _, err := game.Apply(Roll{Value: 1})
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_ChooseMove(t *testing.T) {
	rng := pkg.NewRand(13)

	t.Run("Rolls during the roll phase", func(t *testing.T) {
		move, err := newGame(t, 2).ChooseMove(rng)
		require.NoError(t, err)

		roll, ok := move.(Roll)
		require.True(t, ok)
		assert.GreaterOrEqual(t, roll.Value, 1)
		assert.LessOrEqual(t, roll.Value, Six)
	})

	t.Run("Refuses to move once finished", func(t *testing.T) {
		game := newGame(t, 2)
		game.seats[0].Tokens = [Tokens]int{Goal, Goal, Goal, Goal - 1}
		game, _ = play(t, game, Roll{Value: 1}, Advance{Token: 3})
		require.True(t, game.Outcome().IsOver())

		_, err := game.ChooseMove(rng)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Prefers a capture", func(t *testing.T) {
		// Given: red can hit yellow with token 0 or simply advance token 1
		game := newGame(t, 2)
		game.seats[0].Tokens = [Tokens]int{5, 20, Base, Base}
		game.seats[1].Tokens[0] = 7
		game, _ = play(t, game, Roll{Value: 2})

		move, err := game.ChooseMove(rng)
		require.NoError(t, err)

		assert.Equal(t, Advance{Token: 0}, move)
	})

	t.Run("Prefers finishing", func(t *testing.T) {
		game := newGame(t, 2)
		game.seats[0].Tokens = [Tokens]int{Goal - 3, 30, Base, Base}
		game, _ = play(t, game, Roll{Value: 3})

		move, err := game.ChooseMove(rng)
		require.NoError(t, err)

		assert.Equal(t, Advance{Token: 0}, move)
	})

	t.Run("Four computers play legally", func(t *testing.T) {
		var state entity.State = newGame(t, 4)

		for range 5000 {
			if state.Outcome().IsOver() {
				break
			}

			move, err := state.ChooseMove(rng)
			require.NoError(t, err)

			state, _, err = state.Apply(move)
			require.NoError(t, err)
		}
	})
}
