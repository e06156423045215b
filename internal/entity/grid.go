package entity

// Position is an integer cell coordinate on the grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the position one cell away in the given direction.
func (that Position) Step(dir Direction) Position {
	dx, dy := dir.Vector()
	return Position{X: that.X + dx, Y: that.Y + dy}
}

// Grid is the occupancy field of one game. Dimensions never change after
// creation and an occupied cell is never cleared.
type Grid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []bool `json:"cells"`
}

func NewGrid(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		Cells:  make([]bool, width*height),
	}
}

func (that *Grid) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < that.Width && pos.Y >= 0 && pos.Y < that.Height
}

// IsFree reports whether pos is inside the grid and not yet occupied.
func (that *Grid) IsFree(pos Position) bool {
	return that.InBounds(pos) && !that.Cells[pos.Y*that.Width+pos.X]
}

func (that *Grid) Occupy(pos Position) {
	if that.InBounds(pos) {
		that.Cells[pos.Y*that.Width+pos.X] = true
	}
}

// Clone returns a deep copy. Hypothetical moves during search are applied to
// clones only, the live grid is never mutated.
func (that *Grid) Clone() Grid {
	cells := make([]bool, len(that.Cells))
	copy(cells, that.Cells)

	return Grid{
		Width:  that.Width,
		Height: that.Height,
		Cells:  cells,
	}
}

func (that *Grid) FreeCells() int {
	free := 0
	for _, occupied := range that.Cells {
		if !occupied {
			free++
		}
	}
	return free
}
