package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/boardgames-hub/internal/config"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/repository"
	"github.com/rocketscienceinc/boardgames-hub/internal/repository/storage"
	"github.com/rocketscienceinc/boardgames-hub/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var recorder repository.StatsRepository

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		recorder = repository.NewStatsRepository(redisStorage)
	}

	gameManager := usecase.NewGameManager(logger, recorder, usecase.Options{
		ThinkingDelay: conf.ThinkingDelay,
		Seed:          conf.Seed,
	})

	variants, err := exhibitionVariants(conf.Exhibition)
	if err != nil {
		return err
	}

	for round := 1; round <= conf.Exhibition.Rounds; round++ {
		for _, variant := range variants {
			result, err := gameManager.PlayExhibition(ctx, variant, conf.Exhibition.MaxMoves)
			if errors.Is(err, context.Canceled) {
				log.Info("Application context canceled, shutting down")
				return nil
			}

			if err != nil {
				return fmt.Errorf("exhibition %s failed: %w", variant.Game, err)
			}

			log.Info("exhibition finished",
				"round", round,
				"game", result.Game,
				"outcome", result.Outcome.String(),
				"moves", result.Moves,
			)
		}
	}

	if recorder == nil {
		return nil
	}

	for _, variant := range variants {
		stats, err := recorder.GetByGame(ctx, variant.Game)
		if errors.Is(err, repository.ErrStatsNotFound) {
			continue
		}

		if err != nil {
			return fmt.Errorf("could not read stats: %w", err)
		}

		log.Info("stats", "game", stats.Game, "played", stats.Played, "draws", stats.Draws, "wins", stats.Wins)
	}

	return nil
}

func exhibitionVariants(conf config.Exhibition) ([]entity.Variant, error) {
	variants := make([]entity.Variant, 0, len(conf.Games))

	for _, name := range conf.Games {
		kind, err := entity.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("bad exhibition config: %w", err)
		}

		variant := entity.Variant{Game: kind}
		if kind == entity.Ludo {
			variant.Players = conf.LudoPlayers
		}

		variants = append(variants, variant)
	}

	return variants, nil
}
