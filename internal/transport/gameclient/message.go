package gameclient

import (
	"encoding/json"

	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

const (
	ActionConnect = "connect"
	ActionState   = "game:state"
	ActionMove    = "game:move"
)

// Message is the envelope every frame on the game socket is wrapped in.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player *Player           `json:"player,omitempty"`
	Game   *entity.GameState `json:"game,omitempty"`
	Move   *MovePayload      `json:"move,omitempty"`
	Error  string            `json:"error,omitempty"`
}

type Player struct {
	Name string `json:"name"`
}

type MovePayload struct {
	Direction string `json:"direction"`
}

func newMessage(action string, payload Payload) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	return Message{Action: action, Payload: raw}, nil
}
