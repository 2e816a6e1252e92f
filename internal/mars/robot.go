package mars

import (
	"fmt"
	"strings"
)

// Instruction is a single robot command.
type Instruction byte

const (
	Left    Instruction = 'L'
	Right   Instruction = 'R'
	Forward Instruction = 'F'
)

func (i Instruction) String() string {
	return string(i)
}

// ParseInstructions converts a string such as "FRRFLL" into instructions.
func ParseInstructions(s string) ([]Instruction, error) {
	out := make([]Instruction, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch ins := Instruction(s[i]); ins {
		case Left, Right, Forward:
			out = append(out, ins)
		default:
			return nil, fmt.Errorf("unknown instruction %q at %d", s[i], i)
		}
	}
	return out, nil
}

// Robot is a start position and the instructions it will execute.
type Robot struct {
	Start        Position
	Instructions []Instruction
}

// Result is where a robot ended up and whether it fell off the grid.
type Result struct {
	Position
	Lost bool
}

func (r Result) String() string {
	var b strings.Builder
	b.WriteString(r.Position.String())
	if r.Lost {
		b.WriteString(" LOST")
	}
	return b.String()
}
