package chess

import (
	"testing"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(name string) entity.Coord {
	return entity.Coord{Row: Size - int(name[1]-'0'), Col: int(name[0] - 'a')}
}

func mv(from, to string) Move {
	return Move{From: sq(from), To: sq(to)}
}

func play(t *testing.T, game *Game, moves ...Move) (*Game, entity.Effects) {
	t.Helper()

	var effects entity.Effects
	for _, m := range moves {
		next, fx, err := game.Apply(m)
		require.NoError(t, err, "move %s", m)
		game, effects = next.(*Game), fx
	}

	return game, effects
}

func TestNewGame(t *testing.T) {
	// Given: a new game
	game := New()

	// Then: white has sixteen pawn moves and four knight moves
	assert.Equal(t, entity.P1, game.Turn())
	assert.Len(t, game.LegalMoves(), 20)
	assert.Equal(t, Piece{Owner: entity.P1, Kind: King}, game.Board().At(sq("e1")))
	assert.Equal(t, Piece{Owner: entity.P2, Kind: Queen}, game.Board().At(sq("d8")))
}

func TestGame_Apply(t *testing.T) {
	t.Run("Pawn double step from the start row", func(t *testing.T) {
		// When: white plays e2e4
		game, _ := play(t, New(), mv("e2", "e4"))

		// Then: the pawn stands on e4 and black moves
		assert.Equal(t, Pawn, game.Board().At(sq("e4")).Kind)
		assert.True(t, game.Board().At(sq("e2")).IsEmpty())
		assert.Equal(t, entity.P2, game.Turn())
	})

	t.Run("Rejects a move that is not legal", func(t *testing.T) {
		// Given: a new game
		game := New()

		// When: white tries to move a pawn three squares
		_, _, err := game.Apply(mv("e2", "e5"))

		// Then: it is rejected and the state is untouched
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, NewBoard(), game.Board())
	})

	t.Run("Fool's mate ends the game", func(t *testing.T) {
		// When: the shortest checkmate is played
		game, effects := play(t, New(),
			mv("f2", "f3"), mv("e7", "e5"),
			mv("g2", "g4"), mv("d8", "h4"),
		)

		// Then: black wins by checkmate
		assert.True(t, effects.Check)
		assert.Equal(t, entity.Win(entity.P2), game.Outcome())
		assert.Empty(t, game.LegalMoves())

		_, _, err := game.Apply(mv("a2", "a3"))
		require.ErrorIs(t, err, apperror.ErrGameFinished)

		_, err = game.ChooseMove(pkg.NewRand(1))
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Stalemate is a draw", func(t *testing.T) {
		// Given: a lone black king in the corner
		var board Board
		board.set(sq("a8"), Piece{Owner: entity.P2, Kind: King})
		board.set(sq("c3"), Piece{Owner: entity.P1, Kind: Queen})
		board.set(sq("h1"), Piece{Owner: entity.P1, Kind: King})

		// When: the queen boxes the king in without check
		game, effects := play(t, FromBoard(board, entity.P1), mv("c3", "c7"))

		// Then: the game is drawn
		assert.False(t, effects.Check)
		assert.Equal(t, entity.Draw(), game.Outcome())
	})

	t.Run("Pawn promotes to a queen", func(t *testing.T) {
		// Given: a white pawn on the seventh rank
		var board Board
		board.set(sq("h7"), Piece{Owner: entity.P1, Kind: Pawn})
		board.set(sq("a8"), Piece{Owner: entity.P2, Kind: King})
		board.set(sq("e1"), Piece{Owner: entity.P1, Kind: King})

		// When: the pawn advances to the last rank
		game, effects := play(t, FromBoard(board, entity.P1), mv("h7", "h8"))

		// Then: it became a queen which gives check
		assert.True(t, effects.Promoted)
		assert.True(t, effects.Check)
		assert.True(t, game.InCheck())
		assert.Equal(t, Piece{Owner: entity.P1, Kind: Queen}, game.Board().At(sq("h8")))
		assert.False(t, game.Outcome().IsOver())
	})

	t.Run("Capture is reported", func(t *testing.T) {
		// When: white takes a pawn
		_, effects := play(t, New(), mv("e2", "e4"), mv("d7", "d5"), mv("e4", "d5"))

		// Then: one piece was captured
		assert.Equal(t, 1, effects.Captured)
	})
}

func TestGame_LegalMoves(t *testing.T) {
	t.Run("Pinned piece stays on the pin line", func(t *testing.T) {
		// Given: a white rook pinned to its king by a black rook
		var board Board
		board.set(sq("e1"), Piece{Owner: entity.P1, Kind: King})
		board.set(sq("e2"), Piece{Owner: entity.P1, Kind: Rook})
		board.set(sq("e8"), Piece{Owner: entity.P2, Kind: Rook})
		board.set(sq("a8"), Piece{Owner: entity.P2, Kind: King})
		game := FromBoard(board, entity.P1)

		// When: listing legal moves
		moves := game.LegalMoves()

		// Then: the rook may slide along the file or capture, but not leave it
		assert.Contains(t, moves, entity.Move(mv("e2", "e8")))
		assert.Contains(t, moves, entity.Move(mv("e2", "e5")))
		assert.NotContains(t, moves, entity.Move(mv("e2", "d2")))
	})

	t.Run("King may not step into check", func(t *testing.T) {
		// Given: a black rook controls the d file
		var board Board
		board.set(sq("e1"), Piece{Owner: entity.P1, Kind: King})
		board.set(sq("d8"), Piece{Owner: entity.P2, Kind: Rook})
		board.set(sq("a8"), Piece{Owner: entity.P2, Kind: King})
		game := FromBoard(board, entity.P1)

		// Then: the king cannot go to the d file
		moves := game.LegalMoves()
		assert.NotContains(t, moves, entity.Move(mv("e1", "d1")))
		assert.NotContains(t, moves, entity.Move(mv("e1", "d2")))
		assert.Contains(t, moves, entity.Move(mv("e1", "f1")))
	})

	t.Run("Every legal move keeps the own king safe", func(t *testing.T) {
		game, _ := play(t, New(), mv("e2", "e4"), mv("e7", "e5"), mv("d1", "h5"))

		for _, m := range game.LegalMoves() {
			next, _, err := game.Apply(m)
			require.NoError(t, err)
			board := next.(*Game).Board()
			assert.False(t, board.InCheck(entity.P2), "move %s", m)
		}
	})
}

func TestGame_ChooseMove(t *testing.T) {
	t.Run("Takes the most valuable piece", func(t *testing.T) {
		// Given: a rook that can take either a queen or a pawn
		var board Board
		board.set(sq("a4"), Piece{Owner: entity.P1, Kind: Rook})
		board.set(sq("f4"), Piece{Owner: entity.P2, Kind: Queen})
		board.set(sq("a6"), Piece{Owner: entity.P2, Kind: Pawn})
		board.set(sq("h1"), Piece{Owner: entity.P1, Kind: King})
		board.set(sq("h8"), Piece{Owner: entity.P2, Kind: King})
		game := FromBoard(board, entity.P1)

		// When: the computer picks a move
		move, err := game.ChooseMove(pkg.NewRand(3))
		require.NoError(t, err)

		// Then: it takes the queen
		assert.Equal(t, mv("a4", "f4"), move)
	})

	t.Run("Always returns a legal move", func(t *testing.T) {
		rng := pkg.NewRand(11)
		var state entity.State = New()

		for range 40 {
			if state.Outcome().IsOver() {
				break
			}

			move, err := state.ChooseMove(rng)
			require.NoError(t, err)
			require.Contains(t, state.LegalMoves(), move)

			state, _, err = state.Apply(move)
			require.NoError(t, err)
		}
	})
}
