package entity

import "errors"

var ErrAgentNotInGame = errors.New("agent is not part of the game")

// Agent is one light-cycle on the grid. Value type: strategies copy it
// freely while exploring hypothetical moves.
type Agent struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// Move is the wire-bound representation of a chosen direction.
type Move struct {
	Direction Direction `json:"-"`
}

// GameState is one authoritative snapshot of a running game. It is consumed
// entirely within the turn that produced it.
type GameState struct {
	Grid     Grid    `json:"grid"`
	Agents   []Agent `json:"agents"`
	Finished bool    `json:"finished"`
}

// AgentByName - finds the agent record matching the given name.
func (that *GameState) AgentByName(name string) (Agent, error) {
	for _, agent := range that.Agents {
		if agent.Name == name {
			return agent, nil
		}
	}

	return Agent{}, ErrAgentNotInGame
}

// OpponentOf returns the first agent whose name differs from the given one.
func (that *GameState) OpponentOf(name string) (Agent, error) {
	for _, agent := range that.Agents {
		if agent.Name != name {
			return agent, nil
		}
	}

	return Agent{}, ErrAgentNotInGame
}

// IsLegal reports whether the agent may move in the given direction: the
// target cell must be inside the grid and currently free.
func (that *GameState) IsLegal(agent Agent, dir Direction) bool {
	return that.Grid.IsFree(agent.Position.Step(dir))
}

// LegalMoves enumerates the agent's legal directions in canonical order.
func (that *GameState) LegalMoves(agent Agent) []Direction {
	moves := make([]Direction, 0, len(Directions))
	for _, dir := range Directions {
		if that.IsLegal(agent, dir) {
			moves = append(moves, dir)
		}
	}
	return moves
}

// Apply returns a successor state in which the agent has moved one cell in
// the given direction and its new cell is occupied. The receiver is not
// modified; the successor shares no cells with it.
func (that *GameState) Apply(agent Agent, dir Direction) (GameState, Agent) {
	next := GameState{
		Grid:     that.Grid.Clone(),
		Agents:   make([]Agent, len(that.Agents)),
		Finished: that.Finished,
	}
	copy(next.Agents, that.Agents)

	moved := Agent{Name: agent.Name, Position: agent.Position.Step(dir)}
	next.Grid.Occupy(moved.Position)

	for i, a := range next.Agents {
		if a.Name == moved.Name {
			next.Agents[i] = moved
		}
	}

	return next, moved
}
