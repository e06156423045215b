package engine

import (
	"math/rand"

	"github.com/rocketscienceinc/cycles-bot/internal/apperror"
	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

type randomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy returns a baseline strategy picking uniformly among the
// legal moves. Useful as a sparring partner and for transport testing.
func NewRandomStrategy(rng *rand.Rand) Strategy {
	return &randomStrategy{rng: rng}
}

func (that *randomStrategy) ChooseDirection(state *entity.GameState, self, _ entity.Agent) (entity.Direction, error) {
	moves := state.LegalMoves(self)
	if len(moves) == 0 {
		return 0, apperror.ErrNoLegalMove
	}

	return moves[that.rng.Intn(len(moves))], nil
}
