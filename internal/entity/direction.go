package entity

import (
	"errors"
	"fmt"
)

// Direction is one of the four cardinal moves an agent can make.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions - canonical enumeration order. Tie-breaking in the strategies
// depends on this order, do not reorder.
var Directions = [4]Direction{Up, Down, Left, Right}

var ErrUnknownDirection = errors.New("unknown direction")

// Vector returns the unit displacement for the direction.
func (that Direction) Vector() (int, int) {
	switch that {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (that Direction) String() string {
	switch that {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(that))
	}
}

// parseDirection - maps a wire name back to a Direction, the inverse of
// String.
func parseDirection(name string) (Direction, error) {
	switch name {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
}
