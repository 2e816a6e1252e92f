package mars

import "go.uber.org/zap"

// Stats counts what happened during the runs of a Simulator.
type Stats struct {
	Robots   int
	Lost     int
	Executed int
	// Skipped counts instructions left unexecuted after a robot was lost.
	Skipped int
	// Saved counts forward moves that were ignored because of a scent.
	Saved int
}

// Simulator drives robots across one grid. Robots run one after another and
// share the scents left by the ones before them.
type Simulator struct {
	topRight Coordinates
	scents   *Scents
	stats    Stats
	logger   *zap.Logger
}

func NewSimulator(topRight Coordinates, logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{topRight: topRight, scents: NewScents(), logger: logger}
}

// Simulate runs robots in order on a fresh grid and returns one result per robot.
func Simulate(topRight Coordinates, robots []Robot) []Result {
	return NewSimulator(topRight, nil).Run(robots)
}

// Run executes robots in order. Scents from earlier calls stay in effect.
func (s *Simulator) Run(robots []Robot) []Result {
	results := make([]Result, 0, len(robots))
	for i, r := range robots {
		res := s.step(i, r)
		results = append(results, res)
	}
	return results
}

func (s *Simulator) step(n int, r Robot) Result {
	cur := r.Start
	lost := false
	s.stats.Robots++

	for i, ins := range r.Instructions {
		if lost {
			s.stats.Skipped += len(r.Instructions) - i
			break
		}
		s.stats.Executed++
		switch ins {
		case Left:
			cur = TurnLeft(cur)
		case Right:
			cur = TurnRight(cur)
		case Forward:
			if s.scents.Has(cur) {
				s.stats.Saved++
				s.logger.Debug("forward ignored at scent",
					zap.Int("robot", n), zap.Stringer("position", cur))
				continue
			}
			next := MoveForward(cur)
			if OutOfBounds(next, s.topRight) {
				lost = true
				s.scents.Mark(cur)
				s.stats.Lost++
				s.logger.Debug("robot lost",
					zap.Int("robot", n), zap.Stringer("position", cur))
				continue
			}
			cur = next
		}
	}
	return Result{Position: cur, Lost: lost}
}

// TopRight is the grid's upper-right corner.
func (s *Simulator) TopRight() Coordinates {
	return s.topRight
}

// Scents returns the marks left so far.
func (s *Simulator) Scents() []Position {
	return s.scents.Marks()
}

func (s *Simulator) Stats() Stats {
	return s.stats
}
