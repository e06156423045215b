package engine

import (
	"github.com/rocketscienceinc/cycles-bot/internal/apperror"
	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

type greedyStrategy struct{}

// NewGreedyStrategy returns the one-ply strategy: for every legal move it
// scores own reachable territory against the opponent's summed reply
// territories and takes the best.
func NewGreedyStrategy() Strategy {
	return &greedyStrategy{}
}

func (that *greedyStrategy) ChooseDirection(state *entity.GameState, self, opponent entity.Agent) (entity.Direction, error) {
	bestScore := 0
	bestDir := entity.Up
	found := false

	for _, dir := range entity.Directions {
		if !state.IsLegal(self, dir) {
			continue
		}

		next, moved := state.Apply(self, dir)
		score := TerritoryFrom(&next.Grid, moved.Position) - opponentPressure(&next, opponent)

		// First legal direction wins ties: enumeration order is the
		// deterministic tie-break.
		if !found || score > bestScore {
			bestScore = score
			bestDir = dir
			found = true
		}
	}

	if !found {
		return 0, apperror.ErrNoLegalMove
	}

	return bestDir, nil
}

// opponentPressure sums the opponent's reachable territory over every legal
// reply from its unmoved position. Summing instead of taking the single best
// reply is a deliberate heuristic simplification kept for behavioral parity
// with earlier bots; it overweights positions where the opponent has many
// open replies.
func opponentPressure(state *entity.GameState, opponent entity.Agent) int {
	pressure := 0
	for _, dir := range entity.Directions {
		if !state.IsLegal(opponent, dir) {
			continue
		}
		pressure += Territory(&state.Grid, opponent.Position.Step(dir))
	}
	return pressure
}
