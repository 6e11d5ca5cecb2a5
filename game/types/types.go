package types

// Grid represents the arena dimensions
type Grid struct {
	Width  int
	Height int
}

// Outside reports whether c lies beyond the arena walls
func (g Grid) Outside(c Cell) bool {
	return c.X < 0 || c.X >= g.Width || c.Y < 0 || c.Y >= g.Height
}

// Cells returns the number of cells in the arena
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Cell is one discrete grid coordinate. Y grows upward.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Direction is a snake heading. The zero value None means no input.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Vector converts a Direction into a unit step
func (d Direction) Vector() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: 1}
	case Down:
		return Cell{X: 0, Y: -1}
	case Left:
		return Cell{X: -1, Y: 0}
	case Right:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Directions lists the four headings in input precedence order
var Directions = [4]Direction{Up, Down, Right, Left}

// MoveOutcome is the result of one tick of movement
type MoveOutcome int

const (
	Continue MoveOutcome = iota
	Collided
)

func (o MoveOutcome) String() string {
	if o == Collided {
		return "collided"
	}
	return "continue"
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Game constants
const (
	DefaultFoodCap   = 10 // Maximum concurrent food items
	HistorySize      = 50 // Final lengths kept for the rolling average
	InitialSnakeSize = 2  // Head plus one trailing segment
)
