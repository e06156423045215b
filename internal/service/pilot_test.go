package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cycles-bot/internal/apperror"
	"github.com/rocketscienceinc/cycles-bot/internal/engine"
	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

func openState() *entity.GameState {
	grid := entity.NewGrid(5, 5)
	grid.Occupy(entity.Position{X: 0, Y: 0})
	grid.Occupy(entity.Position{X: 4, Y: 4})

	return &entity.GameState{
		Grid: grid,
		Agents: []entity.Agent{
			{Name: "me", Position: entity.Position{X: 0, Y: 0}},
			{Name: "them", Position: entity.Position{X: 4, Y: 4}},
		},
	}
}

func TestPilotService_DecideMove(t *testing.T) {
	t.Run("chooses a legal direction", func(t *testing.T) {
		// Given: a pilot controlling "me" on an open grid
		pilot := NewPilotService("me", engine.NewMinimaxStrategy(3))

		// When: a move is requested
		move, err := pilot.DecideMove(openState())

		// Then: the returned direction is legal from (0,0)
		require.NoError(t, err)
		assert.Contains(t, []entity.Direction{entity.Down, entity.Right}, move.Direction)
	})

	t.Run("controlled identity missing", func(t *testing.T) {
		// Given: a pilot whose name matches no agent in the snapshot
		pilot := NewPilotService("stranger", engine.NewGreedyStrategy())

		// Then: the mismatch is surfaced as a fatal error
		_, err := pilot.DecideMove(openState())
		require.ErrorIs(t, err, apperror.ErrAgentNotFound)
	})

	t.Run("finished game", func(t *testing.T) {
		pilot := NewPilotService("me", engine.NewGreedyStrategy())

		state := openState()
		state.Finished = true

		_, err := pilot.DecideMove(state)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("no legal move is passed through", func(t *testing.T) {
		// Given: "me" walled in on all four sides
		state := openState()
		state.Grid.Occupy(entity.Position{X: 1, Y: 0})
		state.Grid.Occupy(entity.Position{X: 0, Y: 1})

		pilot := NewPilotService("me", engine.NewMinimaxStrategy(3))

		// Then: the distinguished no-move condition survives wrapping
		_, err := pilot.DecideMove(state)
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})
}
