package ludo

import (
	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"github.com/rocketscienceinc/boardgames-hub/internal/pkg"
	"golang.org/x/exp/rand"
)

const (
	goalScore    = 100
	captureScore = 50
	exitScore    = 30
	safeScore    = 20
	advanceScore = 5
	jitter       = 5
)

// ChooseMove rolls the die while rolling, otherwise picks the best scoring token.
func (that *Game) ChooseMove(rng *rand.Rand) (entity.Move, error) {
	if that.outcome.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	if that.phase == PhaseRolling {
		return Roll{Value: rng.Intn(Six) + 1}, nil
	}

	moves := that.movable()
	if len(moves) == 0 {
		return nil, apperror.ErrNoAvailableMoves
	}

	scores := make([]float64, len(moves))
	for i, m := range moves {
		scores[i] = that.score(m) + rng.Float64()*jitter
	}

	return moves[pkg.Argmax(scores)], nil
}

func (that *Game) score(m Advance) float64 {
	seat := that.seats[that.current]
	from := seat.Tokens[m.Token]
	to, _ := target(seat.Color, from, that.roll)

	score := float64(advanceScore)

	if to == Goal {
		score += goalScore
	}

	if onTrack(to) && !IsSafe(to) && that.occupiedByEnemy(to) {
		score += captureScore
	}

	if from == Base {
		score += exitScore
	}

	if IsSafe(to) {
		score += safeScore
	}

	return score
}

func (that *Game) occupiedByEnemy(pos int) bool {
	for i := range that.count {
		if i == that.current {
			continue
		}

		for _, other := range that.seats[i].Tokens {
			if other == pos {
				return true
			}
		}
	}

	return false
}
