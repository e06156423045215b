package gameclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/cycles-bot/internal/apperror"
	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

const handshakeTimeout = 10 * time.Second

var ErrConnectRejected = errors.New("server rejected the connect request")

// Client is the session with the game server. All methods block; the turn
// loop drives them one at a time.
type Client struct {
	logger *slog.Logger
	conn   *websocket.Conn
	name   string
}

// Connect - dials the game server and registers under the given name. The
// session is only usable once the server acknowledges the connect action.
func Connect(ctx context.Context, logger *slog.Logger, serverURL, name string) (*Client, error) {
	log := logger.With("component", "gameclient")

	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}

	conn, resp, err := dialer.DialContext(ctx, serverURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial game server: %w", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	client := &Client{
		logger: log,
		conn:   conn,
		name:   name,
	}

	if err = client.register(); err != nil {
		conn.Close()
		return nil, err
	}

	log.Info("connected to game server", "server", serverURL, "player", name)

	return client, nil
}

func (that *Client) register() error {
	msg, err := newMessage(ActionConnect, Payload{Player: &Player{Name: that.name}})
	if err != nil {
		return fmt.Errorf("failed to marshal connect payload: %w", err)
	}

	if err = that.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to send connect request: %w", err)
	}

	var ack Message
	if err = that.conn.ReadJSON(&ack); err != nil {
		return fmt.Errorf("failed to read connect response: %w", err)
	}

	if ack.Action != ActionConnect {
		return fmt.Errorf("%w: unexpected action %q", ErrConnectRejected, ack.Action)
	}

	var payload Payload
	if len(ack.Payload) > 0 {
		if err = json.Unmarshal(ack.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal connect response: %w", err)
		}
	}

	if payload.Error != "" {
		return fmt.Errorf("%w: %s", ErrConnectRejected, payload.Error)
	}

	return nil
}

// ReceiveState blocks until the server publishes the next game snapshot.
// A closed connection is reported as apperror.ErrConnectionClosed; the
// caller stops its turn loop instead of retrying.
func (that *Client) ReceiveState() (*entity.GameState, error) {
	for {
		var msg Message
		if err := that.conn.ReadJSON(&msg); err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrConnectionClosed, err)
		}

		if msg.Action != ActionState {
			that.logger.Debug("ignoring message", "action", msg.Action)
			continue
		}

		var payload Payload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
		}

		if payload.Game == nil {
			return nil, fmt.Errorf("%w: state message without game", apperror.ErrConnectionClosed)
		}

		return payload.Game, nil
	}
}

// SendMove transmits the chosen direction for the current turn.
func (that *Client) SendMove(move entity.Move) error {
	msg, err := newMessage(ActionMove, Payload{Move: &MovePayload{Direction: move.Direction.String()}})
	if err != nil {
		return fmt.Errorf("failed to marshal move payload: %w", err)
	}

	if err = that.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to send move: %w", err)
	}

	return nil
}

func (that *Client) Close() error {
	return that.conn.Close() //nolint: wrapcheck // nothing to add
}
