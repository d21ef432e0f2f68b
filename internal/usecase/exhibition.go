package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

// ExhibitionResult is how a computer-only game ended. Outcome is empty when the turn cap stopped it.
type ExhibitionResult struct {
	Game    entity.Kind
	Outcome entity.Outcome
	Moves   int
}

// PlayExhibition runs a game with every seat on the computer and waits until it ends,
// maxMoves moves were played or ctx is done.
func (that *GameManager) PlayExhibition(ctx context.Context, variant entity.Variant, maxMoves int) (ExhibitionResult, error) {
	log := that.logger.With("method", "PlayExhibition", "game", variant.Game)

	state, err := NewState(variant)
	if err != nil {
		return ExhibitionResult{}, fmt.Errorf("failed to create game: %w", err)
	}

	variant.Computer = state.Players()

	var (
		moves   atomic.Int64
		once    sync.Once
		outcome atomic.Value
	)

	done := make(chan struct{})

	listener := func(update Update) {
		count := moves.Add(1)

		if result := update.State.Outcome(); result.IsOver() {
			outcome.Store(result)
			once.Do(func() { close(done) })

			return
		}

		if maxMoves > 0 && count >= int64(maxMoves) {
			once.Do(func() { close(done) })
		}
	}

	session, err := that.StartGame(ctx, variant, listener)
	if err != nil {
		return ExhibitionResult{}, err
	}

	defer func() {
		if endErr := that.EndGame(session.ID()); endErr != nil {
			log.Error("failed to end game", "error", endErr)
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ExhibitionResult{Game: variant.Game, Moves: int(moves.Load())}, fmt.Errorf("exhibition interrupted: %w", ctx.Err())
	}

	result := ExhibitionResult{Game: variant.Game, Moves: int(moves.Load())}
	if stored, ok := outcome.Load().(entity.Outcome); ok {
		result.Outcome = stored
	} else {
		log.Warn("move cap reached", "moves", result.Moves)
	}

	return result, nil
}
