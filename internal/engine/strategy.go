package engine

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

const (
	StrategyMinimax = "minimax"
	StrategyGreedy  = "greedy"
	StrategyRandom  = "random"

	// DefaultSearchDepth bounds the adversarial lookahead. Each extra ply
	// multiplies the number of flood fills by up to 4.
	DefaultSearchDepth = 3
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy chooses one direction for the controlled agent from the current
// snapshot. Implementations never mutate the snapshot: hypothetical moves
// are explored on deep copies only.
type Strategy interface {
	ChooseDirection(state *entity.GameState, self, opponent entity.Agent) (entity.Direction, error)
}

// New - builds the strategy selected by configuration.
func New(name string, searchDepth int) (Strategy, error) {
	switch name {
	case StrategyMinimax:
		return NewMinimaxStrategy(searchDepth), nil
	case StrategyGreedy:
		return NewGreedyStrategy(), nil
	case StrategyRandom:
		return NewRandomStrategy(rand.New(rand.NewSource(rand.Int63()))), nil //nolint: gosec // it's ok
	default:
		return nil, ErrUnknownStrategy
	}
}
