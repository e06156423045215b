package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/cycles-bot/internal/apperror"
	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

type transport interface {
	ReceiveState() (*entity.GameState, error)
	SendMove(move entity.Move) error
}

type pilot interface {
	DecideMove(state *entity.GameState) (entity.Move, error)
}

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
}

// SessionManager drives one game session: receive a snapshot, decide a move,
// send it, until the game ends or the connection drops. One decision runs to
// completion before the next snapshot is requested; the receive call is the
// only suspension point.
type SessionManager struct {
	logger    *slog.Logger
	pilot     pilot
	transport transport
	matchRepo matchRepo

	mu      sync.RWMutex
	match   entity.Match
	last    entity.Direction
	moved   bool
	started bool
}

func NewSessionManager(logger *slog.Logger, pilotSvc pilot, trans transport, matchRepo matchRepo, playerName string) *SessionManager {
	return &SessionManager{
		logger:    logger.With("component", "session"),
		pilot:     pilotSvc,
		transport: trans,
		matchRepo: matchRepo,
		match: entity.Match{
			ID:         uuid.NewString(),
			PlayerName: playerName,
			Outcome:    entity.OutcomeOngoing,
		},
	}
}

// Run - plays the session until the game finishes, we are boxed in, or the
// connection is lost. A lost connection ends the loop, it is never retried
// here. A session plays exactly one game: calling Run again reports
// apperror.ErrSessionInactive.
func (that *SessionManager) Run(ctx context.Context) error {
	that.mu.Lock()
	if that.started {
		that.mu.Unlock()
		return apperror.ErrSessionInactive
	}
	that.started = true
	that.mu.Unlock()

	for turn := 0; ; turn++ {
		select {
		case <-ctx.Done():
			that.finish(ctx, entity.OutcomeFinished)
			return ctx.Err() //nolint: wrapcheck // nothing to add
		default:
		}

		state, err := that.transport.ReceiveState()
		if err != nil {
			if errors.Is(err, apperror.ErrConnectionClosed) {
				that.logger.Info("connection closed, stopping session")
				that.finish(ctx, entity.OutcomeFinished)
				return nil
			}
			return fmt.Errorf("failed to receive game state: %w", err)
		}

		if state.Finished {
			that.logger.Info("game finished", "turns", turn)
			that.finish(ctx, entity.OutcomeFinished)
			return nil
		}

		if opponent, oppErr := state.OpponentOf(that.match.PlayerName); oppErr == nil {
			that.match.OpponentName = opponent.Name
		}

		move, err := that.pilot.DecideMove(state)
		if err != nil {
			// Being boxed in is a reachable end of game, not a bug.
			if errors.Is(err, apperror.ErrNoLegalMove) {
				that.logger.Info("no legal move left, conceding", "turns", turn)
				that.finish(ctx, entity.OutcomeBoxedIn)
				return nil
			}
			return fmt.Errorf("failed to decide move: %w", err)
		}

		that.recordTurn(turn, move.Direction)

		if err = that.transport.SendMove(move); err != nil {
			return fmt.Errorf("failed to send move: %w", err)
		}

		that.logger.Debug("move sent", "turn", turn, "direction", move.Direction.String())
	}
}

// Status reports the last decision for the status endpoint.
func (that *SessionManager) Status() (int, string, string) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	direction := ""
	if that.moved {
		direction = that.last.String()
	}

	return len(that.match.Turns), direction, that.match.Outcome
}

func (that *SessionManager) recordTurn(turn int, dir entity.Direction) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.last = dir
	that.moved = true
	that.match.Turns = append(that.match.Turns, entity.TurnRecord{
		Turn:      turn,
		Direction: dir.String(),
	})
}

// finish records the final trace. Persistence is best effort: a failing
// repository must not turn a finished game into a session error.
func (that *SessionManager) finish(ctx context.Context, outcome string) {
	that.mu.Lock()
	that.match.Outcome = outcome
	match := that.match
	that.mu.Unlock()

	// The session context may already be canceled at this point.
	if err := that.matchRepo.CreateOrUpdate(context.WithoutCancel(ctx), &match); err != nil {
		that.logger.Error("could not save match trace", "match", match.ID, "error", err)
	}
}
