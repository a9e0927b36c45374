package snake

import "fmt"

// Position is a cell coordinate. Coordinates are signed so a move off the
// top or left edge yields a negative value; Grid.Contains is the only
// bounds check.
type Position struct {
	X, Y int
}

// Move returns the position one cell away in direction d.
func (p Position) Move(d Direction) Position {
	off := d.Offset()
	return Position{X: p.X + off.X, Y: p.Y + off.Y}
}

// Direction represents the snake's heading.
type Direction int

const (
	Left Direction = iota
	Down
	Up
	Right
)

// Offset returns the unit step for the direction.
func (d Direction) Offset() Position {
	switch d {
	case Left:
		return Position{X: -1}
	case Down:
		return Position{Y: 1}
	case Up:
		return Position{Y: -1}
	case Right:
		return Position{X: 1}
	}
	return Position{}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Down:
		return Up
	case Up:
		return Down
	default:
		return Left
	}
}

// AreOpposite reports whether a and b point in opposite directions.
func AreOpposite(a, b Direction) bool {
	return a.Opposite() == b
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name produced by Direction.String back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	}
	return Up, fmt.Errorf("snake: unknown direction %q", s)
}
