package engine

import (
	"math"

	"github.com/rocketscienceinc/cycles-bot/internal/apperror"
	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

type minimaxStrategy struct {
	maxDepth int
}

// NewMinimaxStrategy returns the adversarial strategy: depth-limited minimax
// with alpha-beta pruning, flood-fill territory difference at the leaves.
func NewMinimaxStrategy(maxDepth int) Strategy {
	if maxDepth < 1 {
		maxDepth = DefaultSearchDepth
	}

	return &minimaxStrategy{maxDepth: maxDepth}
}

func (that *minimaxStrategy) ChooseDirection(state *entity.GameState, self, opponent entity.Agent) (entity.Direction, error) {
	bestScore := 0
	bestDir := entity.Up
	found := false

	for _, dir := range entity.Directions {
		if !state.IsLegal(self, dir) {
			continue
		}

		next, moved := state.Apply(self, dir)
		score := minimax(&next, moved, opponent, that.maxDepth-1, false, math.MinInt, math.MaxInt)

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

// minimax explores alternating plies: maximizing for the controlled agent,
// minimizing for the opponent. Pruning skips branches that cannot change the
// chosen value, never the value itself.
func minimax(state *entity.GameState, self, opponent entity.Agent, depth int, maximizing bool, alpha, beta int) int {
	if depth == 0 || gameOver(state, self, opponent) {
		return evaluate(state, self, opponent)
	}

	if maximizing {
		moves := state.LegalMoves(self)
		if len(moves) == 0 {
			// The stuck side forfeits its ply, the other keeps moving.
			return minimax(state, self, opponent, depth-1, false, alpha, beta)
		}

		maxEval := math.MinInt
		for _, dir := range moves {
			next, moved := state.Apply(self, dir)
			eval := minimax(&next, moved, opponent, depth-1, false, alpha, beta)

			if eval > maxEval {
				maxEval = eval
			}
			if eval > alpha {
				alpha = eval
			}
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	moves := state.LegalMoves(opponent)
	if len(moves) == 0 {
		return minimax(state, self, opponent, depth-1, true, alpha, beta)
	}

	minEval := math.MaxInt
	for _, dir := range moves {
		next, moved := state.Apply(opponent, dir)
		eval := minimax(&next, self, moved, depth-1, true, alpha, beta)

		if eval < minEval {
			minEval = eval
		}
		if eval < beta {
			beta = eval
		}
		if beta <= alpha {
			break
		}
	}
	return minEval
}

// evaluate scores a leaf: the controlled agent's reachable territory minus
// the opponent's, both on the same hypothetical grid. Both heads sit on
// their own trails, so the head-seeded fill is the one that discriminates.
func evaluate(state *entity.GameState, self, opponent entity.Agent) int {
	return TerritoryFrom(&state.Grid, self.Position) - TerritoryFrom(&state.Grid, opponent.Position)
}

// gameOver reports whether neither agent has a legal move left.
func gameOver(state *entity.GameState, self, opponent entity.Agent) bool {
	for _, dir := range entity.Directions {
		if state.IsLegal(self, dir) || state.IsLegal(opponent, dir) {
			return false
		}
	}
	return true
}
