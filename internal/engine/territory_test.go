package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

func TestTerritory_EmptyGrid(t *testing.T) {
	// Given: a completely empty grid
	grid := entity.NewGrid(6, 4)

	// Then: the whole grid is reachable from any free cell
	for _, start := range []entity.Position{{X: 0, Y: 0}, {X: 3, Y: 2}, {X: 5, Y: 3}} {
		assert.Equal(t, 24, Territory(&grid, start))
	}
}

func TestTerritory_OccupiedStart(t *testing.T) {
	grid := entity.NewGrid(4, 4)
	grid.Occupy(entity.Position{X: 2, Y: 2})

	// Then: an occupied start cell is worth nothing
	assert.Equal(t, 0, Territory(&grid, entity.Position{X: 2, Y: 2}))
}

func TestTerritory_OutOfBoundsStart(t *testing.T) {
	grid := entity.NewGrid(4, 4)

	assert.Equal(t, 0, Territory(&grid, entity.Position{X: -1, Y: 0}))
	assert.Equal(t, 0, Territory(&grid, entity.Position{X: 4, Y: 4}))
}

func TestTerritory_WalledRegion(t *testing.T) {
	// Given: a vertical wall splitting a 5x5 grid at x=2
	grid := entity.NewGrid(5, 5)
	for y := 0; y < 5; y++ {
		grid.Occupy(entity.Position{X: 2, Y: y})
	}

	// Then: each side only reaches its own 2x5 region
	assert.Equal(t, 10, Territory(&grid, entity.Position{X: 0, Y: 0}))
	assert.Equal(t, 10, Territory(&grid, entity.Position{X: 4, Y: 4}))
}

func TestTerritory_Idempotent(t *testing.T) {
	// Given: an irregular set of occupied cells
	grid := entity.NewGrid(7, 7)
	for _, pos := range []entity.Position{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 4}, {X: 5, Y: 5}, {X: 0, Y: 6}} {
		grid.Occupy(pos)
	}

	start := entity.Position{X: 3, Y: 3}

	// When: the fill runs twice on the same inputs
	first := Territory(&grid, start)
	second := Territory(&grid, start)

	// Then: the counts match and the grid is unchanged
	require.Equal(t, first, second)
	assert.Equal(t, 44, grid.FreeCells())
}

func TestTerritoryFrom_OccupiedHead(t *testing.T) {
	// Given: an agent standing on its own trail in an otherwise empty grid
	grid := entity.NewGrid(4, 4)
	head := entity.Position{X: 1, Y: 1}
	grid.Occupy(head)

	// Then: the head does not count, everything reachable from it does
	assert.Equal(t, 15, TerritoryFrom(&grid, head))

	// Then: the plain estimator still scores an occupied start as zero
	assert.Equal(t, 0, Territory(&grid, head))
}

func TestTerritoryFrom_WalledHead(t *testing.T) {
	// Given: the head on the gap of a wall splitting a 5x5 grid at x=2
	grid := entity.NewGrid(5, 5)
	for y := 0; y < 5; y++ {
		grid.Occupy(entity.Position{X: 2, Y: y})
	}
	head := entity.Position{X: 2, Y: 2}

	// Then: both 2x5 chambers are reachable through the head's neighbors
	assert.Equal(t, 20, TerritoryFrom(&grid, head))
}

func TestTerritoryFrom_BoxedHead(t *testing.T) {
	// Given: a head with all four neighbors occupied
	grid := entity.NewGrid(3, 3)
	head := entity.Position{X: 1, Y: 1}
	grid.Occupy(head)
	for _, dir := range entity.Directions {
		grid.Occupy(head.Step(dir))
	}

	assert.Equal(t, 0, TerritoryFrom(&grid, head))
}

func TestTerritoryFrom_OutOfBoundsHead(t *testing.T) {
	grid := entity.NewGrid(3, 3)

	assert.Equal(t, 0, TerritoryFrom(&grid, entity.Position{X: -1, Y: 1}))
	assert.Equal(t, 0, TerritoryFrom(&grid, entity.Position{X: 3, Y: 0}))
}

func TestTerritory_DoesNotMutateGrid(t *testing.T) {
	grid := entity.NewGrid(3, 3)
	grid.Occupy(entity.Position{X: 1, Y: 1})

	before := grid.Clone()
	_ = Territory(&grid, entity.Position{X: 0, Y: 0})

	require.Equal(t, before.Cells, grid.Cells)
}
