package morris

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

type Phase string

const (
	PhasePlacing  Phase = "placing"
	PhaseMoving   Phase = "moving"
	PhaseFlying   Phase = "flying"
	PhaseRemoving Phase = "removing"
)

// Place puts a new piece on an empty node.
type Place struct {
	At int `json:"at"`
}

func (that Place) String() string { return fmt.Sprintf("place %d", that.At) }

// Slide moves a piece to an adjacent node, or to any empty node while flying.
type Slide struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (that Slide) String() string { return fmt.Sprintf("slide %d-%d", that.From, that.To) }

// Remove takes an opponent piece after a mill.
type Remove struct {
	At int `json:"at"`
}

func (that Remove) String() string { return fmt.Sprintf("remove %d", that.At) }

type Game struct {
	board   Board
	turn    entity.Player
	phase   Phase
	placed  [2]int
	outcome entity.Outcome
}

func New() *Game {
	return &Game{turn: entity.P1, phase: PhasePlacing}
}

// FromBoard starts a game from an arbitrary position. placed counts the pieces each of P1 and P2 put down so far.
func FromBoard(board Board, player entity.Player, placed [2]int) *Game {
	game := &Game{board: board, turn: player, placed: placed}
	game.phase = game.phaseFor(player)

	return game
}

func seat(player entity.Player) int {
	if player == entity.P1 {
		return 0
	}

	return 1
}

func (that *Game) Board() Board { return that.board }

func (that *Game) Phase() Phase { return that.phase }

func (that *Game) Placed(player entity.Player) int { return that.placed[seat(player)] }

func (that *Game) Kind() entity.Kind { return entity.Morris }

func (that *Game) Turn() entity.Player { return that.turn }

func (that *Game) Players() []entity.Player { return []entity.Player{entity.P1, entity.P2} }

func (that *Game) Outcome() entity.Outcome { return that.outcome }

// phaseFor is the phase player acts in at the start of their turn.
func (that *Game) phaseFor(player entity.Player) Phase {
	switch {
	case that.placed[0] < PiecesEach || that.placed[1] < PiecesEach:
		return PhasePlacing
	case that.board.Count(player) == flyingAt:
		return PhaseFlying
	default:
		return PhaseMoving
	}
}

func (that *Game) movesFor(player entity.Player, phase Phase) []entity.Move {
	var moves []entity.Move

	switch phase {
	case PhaseRemoving:
		for _, node := range that.board.removable(player.Opponent()) {
			moves = append(moves, Remove{At: node})
		}
	case PhasePlacing:
		for node, owner := range that.board {
			if owner.IsNone() {
				moves = append(moves, Place{At: node})
			}
		}
	case PhaseMoving, PhaseFlying:
		for from, owner := range that.board {
			if owner != player {
				continue
			}

			targets := Adjacency[from]
			if phase == PhaseFlying {
				targets = that.empty()
			}

			for _, to := range targets {
				if that.board[to].IsNone() {
					moves = append(moves, Slide{From: from, To: to})
				}
			}
		}
	}

	return moves
}

func (that *Game) empty() []int {
	var nodes []int
	for node, owner := range that.board {
		if owner.IsNone() {
			nodes = append(nodes, node)
		}
	}

	return nodes
}

func (that *Game) LegalMoves() []entity.Move {
	if that.outcome.IsOver() {
		return nil
	}

	return that.movesFor(that.turn, that.phase)
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
	case Place:
		next.board[m.At] = that.turn
		next.placed[seat(that.turn)]++
		effects.Mill = next.afterArrival(m.At)
	case Slide:
		next.board[m.From] = entity.NoPlayer
		next.board[m.To] = that.turn
		effects.Mill = next.afterArrival(m.To)
	case Remove:
		next.board[m.At] = entity.NoPlayer
		effects.Captured = 1
		next.afterRemoval()
	}

	effects.ExtraTurn = next.phase == PhaseRemoving

	return &next, effects, nil
}

// afterArrival enters the removing phase when node closed a mill and there is something to take.
func (that *Game) afterArrival(node int) bool {
	if !that.board.InMill(node) {
		that.endTurn()
		return false
	}

	if len(that.board.removable(that.turn.Opponent())) == 0 {
		that.endTurn()
		return true
	}

	that.phase = PhaseRemoving

	return true
}

func (that *Game) afterRemoval() {
	victim := that.turn.Opponent()

	if that.placed[seat(victim)] == PiecesEach {
		if that.board.Count(victim) < flyingAt || len(that.movesFor(victim, that.phaseFor(victim))) == 0 {
			that.outcome = entity.Win(that.turn)
			return
		}
	}

	that.endTurn()
}

func (that *Game) endTurn() {
	mover, next := that.turn, that.turn.Opponent()

	that.turn = next
	that.phase = that.phaseFor(next)

	if that.placed[seat(next)] == PiecesEach && len(that.movesFor(next, that.phase)) == 0 {
		that.outcome = entity.Win(mover)
	}
}
