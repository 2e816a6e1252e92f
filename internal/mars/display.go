package mars

import (
	"bufio"
	"io"
)

var headings = map[Orientation]byte{
	North: '^',
	East:  '>',
	South: 'v',
	West:  '<',
}

// Render draws the grid with the top row first. Scented cells show '*',
// surviving robots their heading and lost robots an 'X' where they fell.
// A lost robot's 'X' is never overwritten by a survivor ending on the same
// cell; between survivors the last one wins.
func Render(w io.Writer, topRight Coordinates, results []Result, scents []Position) error {
	cells := make(map[Coordinates]byte)
	for _, p := range scents {
		cells[p.Coordinates] = '*'
	}
	for _, r := range results {
		if r.Lost {
			cells[r.Coordinates] = 'X'
			continue
		}
		if cells[r.Coordinates] == 'X' {
			continue
		}
		cells[r.Coordinates] = headings[r.Orientation]
	}

	bw := bufio.NewWriter(w)
	for y := topRight.Y; y >= 0; y-- {
		for x := 0; x <= topRight.X; x++ {
			c, ok := cells[Coordinates{X: x, Y: y}]
			if !ok {
				c = '.'
			}
			bw.WriteByte(c)
			if x < topRight.X {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
