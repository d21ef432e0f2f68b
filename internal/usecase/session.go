package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/ludo"
	"github.com/rocketscienceinc/boardgames-hub/internal/snakes"
	"golang.org/x/exp/rand"
)

type outcomeRecorder interface {
	Record(ctx context.Context, game entity.Kind, outcome entity.Outcome) error
}

// Update is published after every applied move.
type Update struct {
	SessionID string
	Move      entity.Move
	Mover     entity.Player
	State     entity.State
	Effects   entity.Effects
}

// Listener receives updates while the session lock is held and must not call back into the session.
type Listener func(Update)

// Session owns the canonical state of one game and runs the computer seats.
type Session struct {
	id      string
	variant entity.Variant
	delay   time.Duration

	logger   *slog.Logger
	recorder outcomeRecorder
	listener Listener

	mu         sync.Mutex
	state      entity.State
	rng        *rand.Rand
	generation uint64
	timer      *time.Timer
	closed     bool
}

type sessionConfig struct {
	id       string
	variant  entity.Variant
	delay    time.Duration
	rng      *rand.Rand
	logger   *slog.Logger
	recorder outcomeRecorder
	listener Listener
}

func newSession(conf sessionConfig) (*Session, error) {
	state, err := NewState(conf.variant)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &Session{
		id:      conf.id,
		variant: conf.variant,
		delay:   conf.delay,

		logger:   conf.logger.With("component", "session", "session_id", conf.id, "game", conf.variant.Game),
		recorder: conf.recorder,
		listener: conf.listener,

		state: state,
		rng:   conf.rng,
	}, nil
}

func (that *Session) ID() string { return that.id }

func (that *Session) Variant() entity.Variant { return that.variant }

// State returns the current snapshot. Snapshots are immutable.
func (that *Session) State() entity.State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

func (that *Session) LegalMoves() []entity.Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state.LegalMoves()
}

func (that *Session) IsComputerTurn() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.isComputerTurn()
}

func (that *Session) isComputerTurn() bool {
	return !that.state.Outcome().IsOver() && that.variant.IsComputer(that.state.Turn())
}

// ChooseMove asks the heuristic opponent for a move in the current position without playing it.
func (that *Session) ChooseMove() (entity.Move, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state.Outcome().IsOver() {
		return nil, apperror.ErrGameFinished
	}

	move, err := that.state.ChooseMove(that.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to choose move: %w", err)
	}

	return move, nil
}

// ApplyMove plays a human move. The state is unchanged when an error is returned.
// Dice are never accepted here, RollDice draws them.
func (that *Session) ApplyMove(ctx context.Context, move entity.Move) (entity.State, entity.Effects, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.state, entity.Effects{}, apperror.ErrSessionClosed
	}

	if that.isComputerTurn() {
		return that.state, entity.Effects{}, apperror.ErrComputerTurn
	}

	if isDiceRoll(move) {
		return that.state, entity.Effects{}, fmt.Errorf("%w: %v, use RollDice", apperror.ErrIllegalMove, move)
	}

	return that.apply(ctx, move)
}

// RollDice draws a die value for a human player of a dice game and plays it.
func (that *Session) RollDice(ctx context.Context) (entity.State, entity.Effects, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.variant.Game != entity.Ludo && that.variant.Game != entity.SnakesAndLadders {
		return that.state, entity.Effects{}, fmt.Errorf("%w: %s has no dice", apperror.ErrIllegalMove, that.variant.Game)
	}

	if that.closed {
		return that.state, entity.Effects{}, apperror.ErrSessionClosed
	}

	if that.isComputerTurn() {
		return that.state, entity.Effects{}, apperror.ErrComputerTurn
	}

	value := that.rng.Intn(ludo.Six) + 1
	if that.variant.Game == entity.SnakesAndLadders {
		return that.apply(ctx, snakes.Roll{Value: value})
	}

	return that.apply(ctx, ludo.Roll{Value: value})
}

func isDiceRoll(move entity.Move) bool {
	switch move.(type) {
	case ludo.Roll, snakes.Roll:
		return true
	default:
		return false
	}
}

// Restart discards the game and any pending computer turn, then starts over.
func (that *Session) Restart() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return apperror.ErrSessionClosed
	}

	state, err := NewState(that.variant)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	that.cancelPending()
	that.state = state
	that.logger.Info("game restarted")
	that.schedule()

	return nil
}

// Close stops the session. A pending computer turn never fires after Close returns.
func (that *Session) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelPending()
	that.closed = true
}

// start schedules the first computer turn when a computer seat opens the game.
func (that *Session) start() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.schedule()
}

func (that *Session) apply(ctx context.Context, move entity.Move) (entity.State, entity.Effects, error) {
	log := that.logger.With("method", "apply")

	mover := that.state.Turn()

	next, effects, err := that.state.Apply(move)
	if err != nil {
		return that.state, entity.Effects{}, fmt.Errorf("failed to apply %v: %w", move, err)
	}

	that.state = next
	that.generation++

	log.Debug("move applied", "player", mover, "move", move.String())

	if that.listener != nil {
		that.listener(Update{SessionID: that.id, Move: move, Mover: mover, State: next, Effects: effects})
	}

	if outcome := next.Outcome(); outcome.IsOver() {
		log.Info("game finished", "outcome", outcome.String())
		that.record(ctx, outcome)

		return next, effects, nil
	}

	that.schedule()

	return next, effects, nil
}

func (that *Session) record(ctx context.Context, outcome entity.Outcome) {
	if that.recorder == nil {
		return
	}

	if err := that.recorder.Record(ctx, that.variant.Game, outcome); err != nil {
		that.logger.Error("failed to record outcome", "error", err)
	}
}

// schedule arms a one-shot timer for the computer seat to act. It is tagged with the
// current generation and becomes a no-op once anything else changed the session.
func (that *Session) schedule() {
	if that.closed || !that.isComputerTurn() {
		return
	}

	generation := that.generation
	that.timer = time.AfterFunc(that.delay, func() {
		that.computerTurn(generation)
	})
}

func (that *Session) cancelPending() {
	that.generation++

	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}
}

func (that *Session) computerTurn(generation uint64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || generation != that.generation || !that.isComputerTurn() {
		return
	}

	log := that.logger.With("method", "computerTurn")

	move, err := that.state.ChooseMove(that.rng)
	if err != nil {
		log.Error("computer could not choose a move", "error", err)
		return
	}

	if _, _, err = that.apply(context.Background(), move); err != nil {
		log.Error("computer move rejected", "move", move.String(), "error", err)
	}
}
