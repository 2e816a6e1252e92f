package mars

import "fmt"

// Orientation is the heading of a robot on the grid.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

var right = map[Orientation]Orientation{
	North: East,
	East:  South,
	South: West,
	West:  North,
}

var left = map[Orientation]Orientation{
	North: West,
	West:  South,
	South: East,
	East:  North,
}

var orientationNames = map[Orientation]string{
	North: "N",
	East:  "E",
	South: "S",
	West:  "W",
}

// Right is the next heading clockwise.
func (o Orientation) Right() Orientation {
	return right[o]
}

// Left is the next heading counter-clockwise.
func (o Orientation) Left() Orientation {
	return left[o]
}

func (o Orientation) String() string {
	if s, ok := orientationNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation maps N, E, S or W to its Orientation.
func ParseOrientation(s string) (Orientation, error) {
	for o, name := range orientationNames {
		if name == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}
