package mission

import "errors"

var (
	// ErrMalformedLine is returned when a line is not a grid, position or instruction line.
	ErrMalformedLine = errors.New("malformed line")

	// ErrMissingBounds is returned when the input has no grid line.
	ErrMissingBounds = errors.New("missing grid boundaries")

	// ErrDuplicateBounds is returned when the grid line appears more than once.
	ErrDuplicateBounds = errors.New("grid boundaries defined more than once")

	// ErrNoRobots is returned when the input defines no robot positions.
	ErrNoRobots = errors.New("no robots defined")

	// ErrCountMismatch is returned when positions and instruction lines do not pair up.
	ErrCountMismatch = errors.New("each robot needs a position and an instruction line")

	// ErrOutOfRange is returned in strict mode for coordinates or programs past the puzzle limits.
	ErrOutOfRange = errors.New("value out of range")
)
