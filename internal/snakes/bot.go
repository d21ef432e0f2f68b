package snakes

import (
	"github.com/rocketscienceinc/boardgames-hub/internal/apperror"
	"github.com/rocketscienceinc/boardgames-hub/internal/entity"
	"golang.org/x/exp/rand"
)

// ChooseMove rolls the die. There is nothing else to decide.
func (that *Game) ChooseMove(rng *rand.Rand) (entity.Move, error) {
	if that.outcome.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	return Roll{Value: rng.Intn(Six) + 1}, nil
}
