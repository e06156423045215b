package engine

import "github.com/rocketscienceinc/cycles-bot/internal/entity"

// Territory counts the cells reachable from start by 4-directional steps
// through free cells, including the start cell itself when it is free.
// Breadth-first flood fill; the grid is never modified. This is the dominant
// cost of every search, callers bound how often it runs.
func Territory(grid *entity.Grid, start entity.Position) int {
	visited := make([]bool, len(grid.Cells))

	queue := make([]entity.Position, 0, len(grid.Cells))
	queue = append(queue, start)

	area := 0
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		if !grid.IsFree(pos) {
			continue
		}

		idx := pos.Y*grid.Width + pos.X
		if visited[idx] {
			continue
		}
		visited[idx] = true
		area++

		for _, dir := range entity.Directions {
			queue = append(queue, pos.Step(dir))
		}
	}

	return area
}

// TerritoryFrom counts the free cells an agent can reach from its head. The
// head cell carries the agent's own trail and is already occupied, so the
// fill seeds there but exempts it from the occupancy check and does not
// count it: only the free cells reachable from the head are scored.
func TerritoryFrom(grid *entity.Grid, head entity.Position) int {
	if !grid.InBounds(head) {
		return 0
	}

	visited := make([]bool, len(grid.Cells))
	visited[head.Y*grid.Width+head.X] = true

	queue := make([]entity.Position, 0, len(grid.Cells))
	for _, dir := range entity.Directions {
		queue = append(queue, head.Step(dir))
	}

	area := 0
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		if !grid.IsFree(pos) {
			continue
		}

		idx := pos.Y*grid.Width + pos.X
		if visited[idx] {
			continue
		}
		visited[idx] = true
		area++

		for _, dir := range entity.Directions {
			queue = append(queue, pos.Step(dir))
		}
	}

	return area
}
