package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/pkg"
)

type Options struct {
	// ThinkingDelay is how long a computer seat waits before moving.
	ThinkingDelay time.Duration
	// Seed makes computer play reproducible; zero seeds from the clock.
	Seed uint64
}

type GameManager struct {
	logger   *slog.Logger
	recorder outcomeRecorder
	options  Options

	mu       sync.Mutex
	sessions map[string]*Session
	started  uint64
}

func NewGameManager(logger *slog.Logger, recorder outcomeRecorder, options Options) *GameManager {
	return &GameManager{
		logger:   logger,
		recorder: recorder,
		options:  options,

		sessions: make(map[string]*Session),
	}
}

// StartGame opens a session for variant. If a computer seat moves first its turn is scheduled right away.
func (that *GameManager) StartGame(_ context.Context, variant entity.Variant, listener Listener) (*Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.started++

	seed := that.options.Seed
	if seed != 0 {
		seed += that.started
	}

	session, err := newSession(sessionConfig{
		id:       pkg.GenerateGameID(),
		variant:  variant,
		delay:    that.options.ThinkingDelay,
		rng:      pkg.NewRand(seed),
		logger:   that.logger,
		recorder: that.recorder,
		listener: listener,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", variant.Game, err)
	}

	that.sessions[session.ID()] = session
	session.start()

	that.logger.Info("game started", "session_id", session.ID(), "game", variant.Game, "players", variant.SeatCount())

	return session, nil
}

func (that *GameManager) Get(id string) (*Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	return session, nil
}

// EndGame closes the session and forgets it.
func (that *GameManager) EndGame(id string) error {
	log := that.logger.With("method", "EndGame")

	that.mu.Lock()
	session, ok := that.sessions[id]
	delete(that.sessions, id)
	that.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	session.Close()
	log.Info("game deleted", "session_id", id)

	return nil
}

// Active returns the number of open sessions.
func (that *GameManager) Active() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.sessions)
}
