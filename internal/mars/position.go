package mars

import "fmt"

// Coordinates is a cell on the grid. The grid's bottom-left corner is (0,0).
type Coordinates struct {
	X, Y int
}

// Position is a cell plus a heading. Transitions return a new Position.
type Position struct {
	Coordinates
	Orientation Orientation
}

func (p Position) String() string {
	return fmt.Sprintf("%d %d %s", p.X, p.Y, p.Orientation)
}

func TurnLeft(p Position) Position {
	p.Orientation = p.Orientation.Left()
	return p
}

func TurnRight(p Position) Position {
	p.Orientation = p.Orientation.Right()
	return p
}

// MoveForward advances one cell in the direction the robot faces.
func MoveForward(p Position) Position {
	switch p.Orientation {
	case North:
		p.Y++
	case East:
		p.X++
	case South:
		p.Y--
	case West:
		p.X--
	}
	return p
}

// OutOfBounds reports whether p lies outside the grid spanning (0,0) to topRight.
func OutOfBounds(p Position, topRight Coordinates) bool {
	return p.X < 0 || p.Y < 0 || p.X > topRight.X || p.Y > topRight.Y
}
