package mars

// Scents holds the positions where robots were lost during a run.
// Marks are only ever added.
type Scents struct {
	marks []Position
	index map[Position]struct{}
}

func NewScents() *Scents {
	return &Scents{index: make(map[Position]struct{})}
}

// Mark records the last valid position of a lost robot.
func (s *Scents) Mark(p Position) {
	s.index[p] = struct{}{}
	s.marks = append(s.marks, p)
}

// Has reports whether a mark matches p on x, y and orientation.
func (s *Scents) Has(p Position) bool {
	_, ok := s.index[p]
	return ok
}

func (s *Scents) Len() int {
	return len(s.marks)
}

// Marks returns the marks in the order they were left.
func (s *Scents) Marks() []Position {
	return append([]Position(nil), s.marks...)
}
