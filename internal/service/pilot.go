package service

import (
	"fmt"

	"github.com/rocketscienceinc/cycles-bot/internal/apperror"
	"github.com/rocketscienceinc/cycles-bot/internal/engine"
	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

type PilotService interface {
	DecideMove(state *entity.GameState) (entity.Move, error)
}

type pilotService struct {
	name     string
	strategy engine.Strategy

	// Per-turn copies of the agent records, fully overwritten before use.
	self     entity.Agent
	opponent entity.Agent
}

func NewPilotService(name string, strategy engine.Strategy) PilotService {
	return &pilotService{
		name:     name,
		strategy: strategy,
	}
}

// DecideMove - resolves the controlled and opposing agent from the snapshot
// and delegates direction choice to the strategy.
//
// A missing controlled agent means the transport and configuration disagree
// about our identity; that is fatal, not recoverable mid-game. A missing
// legal move is not a bug: apperror.ErrNoLegalMove is surfaced unchanged so
// the caller can treat it as end of game. There is deliberately no fallback
// direction here.
func (that *pilotService) DecideMove(state *entity.GameState) (entity.Move, error) {
	if state.Finished {
		return entity.Move{}, apperror.ErrGameFinished
	}

	self, err := state.AgentByName(that.name)
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrAgentNotFound, that.name)
	}

	opponent, err := state.OpponentOf(that.name)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to resolve opponent: %w", err)
	}

	that.self = self
	that.opponent = opponent

	dir, err := that.strategy.ChooseDirection(state, that.self, that.opponent)
	if err != nil {
		return entity.Move{}, fmt.Errorf("strategy failed to choose a direction: %w", err)
	}

	return entity.Move{Direction: dir}, nil
}
