package mars

import "testing"

var allOrientations = []Orientation{North, East, South, West}

func TestTurnFullCycle(t *testing.T) {
	for _, o := range allOrientations {
		start := Position{Coordinates{2, 3}, o}
		l, r := start, start
		for i := 0; i < 4; i++ {
			l = TurnLeft(l)
			r = TurnRight(r)
		}
		if l != start || r != start {
			t.Fatalf("start %v: want %v got left %v right %v", o, start, l, r)
		}
	}
}

func TestTurnKeepsCoordinates(t *testing.T) {
	want := map[Orientation][2]Orientation{
		North: {West, East},
		East:  {North, South},
		South: {East, West},
		West:  {South, North},
	}
	for o, lr := range want {
		p := Position{Coordinates{1, 4}, o}
		l, r := TurnLeft(p), TurnRight(p)
		if l.Coordinates != p.Coordinates || r.Coordinates != p.Coordinates {
			t.Fatalf("turning moved the robot: %v -> %v, %v", p, l, r)
		}
		if l.Orientation != lr[0] || r.Orientation != lr[1] {
			t.Fatalf("%v: want left %v right %v got %v %v", o, lr[0], lr[1], l.Orientation, r.Orientation)
		}
	}
}

func TestMoveForward(t *testing.T) {
	tests := []struct {
		o    Orientation
		want Coordinates
	}{
		{North, Coordinates{2, 3}},
		{East, Coordinates{3, 2}},
		{South, Coordinates{2, 1}},
		{West, Coordinates{1, 2}},
	}
	for _, tt := range tests {
		got := MoveForward(Position{Coordinates{2, 2}, tt.o})
		if got.Coordinates != tt.want || got.Orientation != tt.o {
			t.Fatalf("%v: want %v got %v", tt.o, tt.want, got)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	top := Coordinates{5, 3}
	tests := []struct {
		c    Coordinates
		want bool
	}{
		{Coordinates{0, 0}, false},
		{Coordinates{5, 3}, false},
		{Coordinates{-1, 0}, true},
		{Coordinates{0, -1}, true},
		{Coordinates{6, 3}, true},
		{Coordinates{5, 4}, true},
	}
	for _, tt := range tests {
		if got := OutOfBounds(Position{Coordinates: tt.c}, top); got != tt.want {
			t.Fatalf("%v: want %v got %v", tt.c, tt.want, got)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	for _, o := range allOrientations {
		got, err := ParseOrientation(o.String())
		if err != nil || got != o {
			t.Fatalf("%v: got %v, %v", o, got, err)
		}
	}
	if _, err := ParseOrientation("Q"); err == nil {
		t.Fatal("expected error for Q")
	}
}

func TestParseInstructions(t *testing.T) {
	got, err := ParseInstructions("LRF")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != Left || got[1] != Right || got[2] != Forward {
		t.Fatalf("got %v", got)
	}
	if _, err := ParseInstructions("LXF"); err == nil {
		t.Fatal("expected error for X")
	}
}

func TestScentsMatchOrientation(t *testing.T) {
	s := NewScents()
	p := Position{Coordinates{3, 3}, North}
	s.Mark(p)
	if !s.Has(p) {
		t.Fatal("mark not found")
	}
	if s.Has(Position{Coordinates{3, 3}, East}) {
		t.Fatal("scent must be keyed by orientation too")
	}
	if s.Len() != 1 {
		t.Fatalf("want 1 mark got %d", s.Len())
	}
}
