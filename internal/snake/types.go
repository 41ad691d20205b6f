package snake

import "fmt"

// Board geometry. The drawing surface is CanvasSize x CanvasSize units,
// split into Width x Height cells of SquareSize units each.
const (
	CanvasSize = 500
	SquareSize = 10
	Width      = CanvasSize / SquareSize
	Height     = CanvasSize / SquareSize
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// InBounds reports whether the cell lies on the board.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// The four legal directions.
var (
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Valid reports whether d is one of Left, Right, Up or Down.
func (d Direction) Valid() bool {
	switch d {
	case Left, Right, Up, Down:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// RunState is the engine's lifecycle state.
type RunState int

const (
	// StateInit waits for the player to start a run.
	StateInit RunState = iota
	// StateRunning is normal play.
	StateRunning
	// StateLosing shrinks the snake away after a collision, then resets.
	StateLosing
)

func (s RunState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateLosing:
		return "losing"
	default:
		return "unknown"
	}
}
