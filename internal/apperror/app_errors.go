package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoLegalMove      = errors.New("no legal move available")
	ErrAgentNotFound    = errors.New("controlled agent not found in game state")
	ErrConnectionClosed = errors.New("connection to game server closed")
	ErrSessionInactive  = errors.New("game session is not active")
)
