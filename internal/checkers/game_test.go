package checkers

import (
	"testing"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(row, col int) entity.Coord {
	return entity.Coord{Row: row, Col: col}
}

func TestNewGame(t *testing.T) {
	// Given: a new game
	game := New()

	// Then: each side has twelve men and P1 has seven opening steps
	board := game.Board()
	assert.Equal(t, 12, board.Count(entity.P1))
	assert.Equal(t, 12, board.Count(entity.P2))

	moves := game.LegalMoves()
	assert.Len(t, moves, 7)
	for _, m := range moves {
		assert.False(t, m.(Move).IsCapture())
	}
}

func TestGame_Apply(t *testing.T) {
	t.Run("Capture is mandatory", func(t *testing.T) {
		// Given: P1 can jump with one man while another could step
		var board Board
		board[5][2] = Piece{Owner: entity.P1}
		board[4][3] = Piece{Owner: entity.P2}
		board[5][6] = Piece{Owner: entity.P1}
		board[0][7] = Piece{Owner: entity.P2}
		game := FromBoard(board, entity.P1)

		// When: listing moves
		moves := game.LegalMoves()

		// Then: only the jump is offered and a plain step is rejected
		assert.Equal(t, []entity.Move{Move{From: at(5, 2), To: at(3, 4)}}, moves)

		_, _, err := game.Apply(Move{From: at(5, 6), To: at(4, 7)})
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Multi-jump keeps the turn on the same piece", func(t *testing.T) {
		// Given: a man that can jump twice in a row
		var board Board
		board[5][0] = Piece{Owner: entity.P1}
		board[4][1] = Piece{Owner: entity.P2}
		board[2][3] = Piece{Owner: entity.P2}
		board[0][7] = Piece{Owner: entity.P2}
		board[7][6] = Piece{Owner: entity.P1}
		game := FromBoard(board, entity.P1)

		// When: making the first jump
		next, effects, err := game.Apply(Move{From: at(5, 0), To: at(3, 2)})
		require.NoError(t, err)

		// Then: P1 still moves and only the follow-up jump is legal
		assert.Equal(t, 1, effects.Captured)
		assert.True(t, effects.ExtraTurn)
		assert.Equal(t, entity.P1, next.Turn())
		assert.Equal(t, []entity.Move{Move{From: at(3, 2), To: at(1, 4)}}, next.LegalMoves())

		chain, ok := next.(*Game).Continuing()
		assert.True(t, ok)
		assert.Equal(t, at(3, 2), chain)

		// When: finishing the chain
		last, effects, err := next.Apply(Move{From: at(3, 2), To: at(1, 4)})
		require.NoError(t, err)

		// Then: the turn passes to P2 with both jumped men gone
		assert.False(t, effects.ExtraTurn)
		assert.Equal(t, entity.P2, last.Turn())
		assert.Equal(t, 1, last.(*Game).Board().Count(entity.P2))
	})

	t.Run("Man reaching the far row is crowned", func(t *testing.T) {
		// Given: a P1 man one step from the crown row
		var board Board
		board[1][2] = Piece{Owner: entity.P1}
		board[7][0] = Piece{Owner: entity.P2}
		game := FromBoard(board, entity.P1)

		// When: it steps forward
		next, effects, err := game.Apply(Move{From: at(1, 2), To: at(0, 1)})
		require.NoError(t, err)

		// Then: it is a king
		assert.True(t, effects.Promoted)
		assert.Equal(t, Piece{Owner: entity.P1, King: true}, next.(*Game).Board()[0][1])
	})

	t.Run("Capturing the last piece wins", func(t *testing.T) {
		// Given: P2 has a single man in reach
		var board Board
		board[5][2] = Piece{Owner: entity.P1}
		board[4][3] = Piece{Owner: entity.P2}
		game := FromBoard(board, entity.P1)

		// When: P1 jumps it
		next, _, err := game.Apply(Move{From: at(5, 2), To: at(3, 4)})
		require.NoError(t, err)

		// Then: P1 wins
		assert.Equal(t, entity.Win(entity.P1), next.Outcome())
		assert.Empty(t, next.LegalMoves())
	})

	t.Run("Player without moves loses", func(t *testing.T) {
		// Given: a P2 man blocked at the bottom edge
		var board Board
		board[7][0] = Piece{Owner: entity.P2}
		board[3][2] = Piece{Owner: entity.P1}
		board[6][5] = Piece{Owner: entity.P1}
		game := FromBoard(board, entity.P1)

		// When: P1 makes any step
		next, _, err := game.Apply(Move{From: at(3, 2), To: at(2, 1)})
		require.NoError(t, err)

		// Then: P2 cannot move and loses
		assert.Equal(t, entity.Win(entity.P1), next.Outcome())
	})

	t.Run("Kings move in all four directions", func(t *testing.T) {
		var board Board
		board[3][4] = Piece{Owner: entity.P1, King: true}
		board[0][1] = Piece{Owner: entity.P2}
		game := FromBoard(board, entity.P1)

		assert.Len(t, game.LegalMoves(), 4)
	})
}

func TestGame_ChooseMove(t *testing.T) {
	t.Run("Prefers crowning", func(t *testing.T) {
		// Given: one man can reach the crown row, another can step elsewhere
		var board Board
		board[1][2] = Piece{Owner: entity.P1}
		board[5][4] = Piece{Owner: entity.P1}
		board[7][0] = Piece{Owner: entity.P2}
		game := FromBoard(board, entity.P1)

		rng := pkg.NewRand(5)
		for range 20 {
			// When: the computer picks a move
			move, err := game.ChooseMove(rng)
			require.NoError(t, err)

			// Then: it is always a crowning step
			assert.Equal(t, 0, move.(Move).To.Row)
		}
	})

	t.Run("Full game stays legal", func(t *testing.T) {
		rng := pkg.NewRand(9)
		var state entity.State = New()

		for range 300 {
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
