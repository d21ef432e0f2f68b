package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
)

var ErrStatsNotFound = errors.New("stats not found")

const (
	fieldPlayed     = "played"
	fieldDraws      = "draws"
	fieldLastPlayed = "last_played"
	winsPrefix      = "wins:"
)

// Stats are the finished-game tallies of one game.
type Stats struct {
	Game       entity.Kind             `json:"game"`
	Played     int64                   `json:"played"`
	Draws      int64                   `json:"draws"`
	Wins       map[entity.Player]int64 `json:"wins"`
	LastPlayed time.Time               `json:"last_played"`
}

type StatsRepository interface {
	Record(ctx context.Context, game entity.Kind, outcome entity.Outcome) error
	GetByGame(ctx context.Context, game entity.Kind) (*Stats, error)
	DeleteByGame(ctx context.Context, game entity.Kind) error
}

type dbStats struct {
	client *redis.Client
	now    func() time.Time
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
		now:    time.Now,
	}
}

func statsKey(game entity.Kind) string {
	return "stats:" + string(game)
}

// Record adds a finished game to the tallies. Unfinished outcomes are rejected.
func (that *dbStats) Record(ctx context.Context, game entity.Kind, outcome entity.Outcome) error {
	if err := outcome.Validate(); err != nil {
		return fmt.Errorf("invalid outcome: %w", err)
	}

	if !outcome.IsOver() {
		return fmt.Errorf("%w: game %s is not finished", entity.ErrUnknownResult, game)
	}

	key := statsKey(game)

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, fieldPlayed, 1)

		if outcome.IsWin() {
			pipe.HIncrBy(ctx, key, winsPrefix+string(outcome.Winner), 1)
		} else {
			pipe.HIncrBy(ctx, key, fieldDraws, 1)
		}

		pipe.HSet(ctx, key, fieldLastPlayed, that.now().Unix())

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

func (that *dbStats) GetByGame(ctx context.Context, game entity.Kind) (*Stats, error) {
	fields, err := that.client.HGetAll(ctx, statsKey(game)).Result()
	if err != nil {
		return &Stats{}, fmt.Errorf("%w by game", err)
	}

	if len(fields) == 0 {
		return &Stats{}, ErrStatsNotFound
	}

	stats := &Stats{Game: game, Wins: make(map[entity.Player]int64)}
	for field, raw := range fields {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return &Stats{}, fmt.Errorf("failed to parse %s: %w", field, err)
		}

		switch {
		case field == fieldPlayed:
			stats.Played = value
		case field == fieldDraws:
			stats.Draws = value
		case field == fieldLastPlayed:
			stats.LastPlayed = time.Unix(value, 0)
		case strings.HasPrefix(field, winsPrefix):
			stats.Wins[entity.Player(strings.TrimPrefix(field, winsPrefix))] = value
		}
	}

	return stats, nil
}

func (that *dbStats) DeleteByGame(ctx context.Context, game entity.Kind) error {
	deleted, err := that.client.Del(ctx, statsKey(game)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete stats by game: %w", err)
	}

	if deleted == 0 {
		return ErrStatsNotFound
	}

	return nil
}
