package mission

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"martianrobots/internal/mars"
)

// Input format, one entry per line, blank lines ignored:
//
//	5 3          grid top-right corner
//	1 1 E        robot start position
//	RFRFRFRF     robot instructions
//
// The n-th position line belongs to the n-th instruction line.

const (
	MaxCoordinate   = 50
	MaxInstructions = 100
)

type file struct {
	Lines []*line `parser:"( @@ | EOL )*"`
}

type line struct {
	Pos lexer.Position

	Coords       *coords `parser:"  @@"`
	Instructions string  `parser:"| @Instructions"`
}

type coords struct {
	X           decimal `parser:"@Int"`
	Y           decimal `parser:"@Int"`
	Orientation string  `parser:"@Orientation?"`
}

// decimal reads digits in base 10, so "010" is ten.
type decimal int

func (d *decimal) Capture(values []string) error {
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return err
	}
	*d = decimal(n)
	return nil
}

var missionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	// \b keeps "1 1E" from lexing as "1 1 E".
	{Name: "Int", Pattern: `\d+\b`},
	{Name: "Orientation", Pattern: `[NESW]\b`},
	{Name: "Instructions", Pattern: `[LRF]+\b`},
})

var parser = participle.MustBuild[file](
	participle.Lexer(missionLexer),
	participle.Elide("Whitespace"),
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Mission is a parsed input file, ready for the simulator.
type Mission struct {
	TopRight mars.Coordinates
	Robots   []mars.Robot
}

type options struct {
	strict bool
}

type Option func(*options)

// Strict rejects coordinates above MaxCoordinate and programs longer than MaxInstructions.
func Strict(on bool) Option {
	return func(o *options) { o.strict = on }
}

// Load parses the mission file at path.
func Load(path string, opts ...Option) (*Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data, opts...)
}

// Parse reads a mission from data. name is used in error positions.
func Parse(name string, data []byte, opts ...Option) (*Mission, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	f, err := parser.ParseBytes(name, bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	var (
		m         Mission
		hasBounds bool
		positions []mars.Position
		programs  [][]mars.Instruction
		lastLine  int
	)
	for _, l := range f.Lines {
		if l.Pos.Line == lastLine {
			return nil, fmt.Errorf("%w: %s: more than one entry on the line", ErrMalformedLine, l.Pos)
		}
		lastLine = l.Pos.Line

		switch {
		case l.Coords == nil:
			if o.strict && len(l.Instructions) > MaxInstructions {
				return nil, fmt.Errorf("%w: %s: %d instructions, limit is %d", ErrOutOfRange, l.Pos, len(l.Instructions), MaxInstructions)
			}
			prog, err := mars.ParseInstructions(l.Instructions)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrMalformedLine, l.Pos, err)
			}
			programs = append(programs, prog)

		case l.Coords.Orientation == "":
			if hasBounds {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateBounds, l.Pos)
			}
			if err := o.checkCoords(l); err != nil {
				return nil, err
			}
			hasBounds = true
			m.TopRight = mars.Coordinates{X: int(l.Coords.X), Y: int(l.Coords.Y)}

		default:
			if err := o.checkCoords(l); err != nil {
				return nil, err
			}
			heading, err := mars.ParseOrientation(l.Coords.Orientation)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrMalformedLine, l.Pos, err)
			}
			positions = append(positions, mars.Position{
				Coordinates: mars.Coordinates{X: int(l.Coords.X), Y: int(l.Coords.Y)},
				Orientation: heading,
			})
		}
	}

	if !hasBounds {
		return nil, ErrMissingBounds
	}
	if len(positions) == 0 {
		return nil, ErrNoRobots
	}
	if len(positions) != len(programs) {
		return nil, fmt.Errorf("%w: %d positions, %d instruction lines", ErrCountMismatch, len(positions), len(programs))
	}

	m.Robots = make([]mars.Robot, len(positions))
	for i := range positions {
		m.Robots[i] = mars.Robot{Start: positions[i], Instructions: programs[i]}
	}
	return &m, nil
}

func (o options) checkCoords(l *line) error {
	if !o.strict {
		return nil
	}
	if l.Coords.X > MaxCoordinate || l.Coords.Y > MaxCoordinate {
		return fmt.Errorf("%w: %s: coordinates %d %d, limit is %d", ErrOutOfRange, l.Pos, l.Coords.X, l.Coords.Y, MaxCoordinate)
	}
	return nil
}
