package snake

import "testing"

// newBoard places a one-segment snake on a fresh grid.
func newBoard(w, h int, origin Position, heading Direction) (*Grid, *Snake) {
	g := NewGrid(w, h)
	g.Put(origin, CellSnake)
	return g, NewSnakeHeading(origin, heading)
}

// steer applies a heading change before each update and returns the last status.
func steer(g *Grid, s *Snake, dirs ...Direction) Status {
	var st Status
	for _, d := range dirs {
		s.SetDir(d)
		st = s.Update(g)
	}
	return st
}

func TestSnakeUpdateMovesAndClearsTail(t *testing.T) {
	g, s := newBoard(DefaultWidth, DefaultHeight, Position{X: 1, Y: 2}, Up)
	g.Put(Position{X: 6, Y: 6}, CellApple)

	if st := s.Update(g); st != StatusMoved {
		t.Fatalf("Update() = %s, expected moved", st)
	}
	if s.Head() != (Position{X: 1, Y: 1}) {
		t.Errorf("Head() = %+v, expected (1,1)", s.Head())
	}
	checkGolden(t, "moved", g.Render())
}

func TestSnakeGrowthIsDelayed(t *testing.T) {
	g, s := newBoard(DefaultWidth, DefaultHeight, Position{X: 1, Y: 3}, Up)
	g.Put(Position{X: 1, Y: 1}, CellApple)

	if st := s.Update(g); st != StatusMoved || s.Len() != 1 {
		t.Fatalf("first update: status %s len %d", st, s.Len())
	}
	if st := s.Update(g); st != StatusAte || s.Len() != 1 {
		t.Fatalf("eating update: status %s len %d, expected ate with len 1", st, s.Len())
	}
	if st := steer(g, s, Right); st != StatusMoved || s.Len() != 2 {
		t.Fatalf("update after eating: status %s len %d, expected moved with len 2", st, s.Len())
	}
	if st := steer(g, s, Down); st != StatusMoved || s.Len() != 2 {
		t.Fatalf("second update after eating: status %s len %d", st, s.Len())
	}

	checkGolden(t, "grown", g.Render())
}

func TestSnakeLengthCountsApples(t *testing.T) {
	const apples = 5
	g, s := newBoard(10, 12, Position{X: 4, Y: 10}, Up)
	for i := 1; i <= apples; i++ {
		g.Put(Position{X: 4, Y: 10 - i}, CellApple)
	}

	for i := 0; i < apples+1; i++ {
		s.Update(g)
		if n := g.Count(CellSnake); n != s.Len() {
			t.Fatalf("after update %d: %d snake cells on the grid, snake length %d", i+1, n, s.Len())
		}
	}
	if s.Len() != 1+apples {
		t.Errorf("Len() = %d, expected %d", s.Len(), 1+apples)
	}
	for _, p := range s.Segments() {
		if g.CellAt(p) != CellSnake {
			t.Errorf("segment %+v is not marked on the grid", p)
		}
	}
}

func TestSnakeDiesAtWalls(t *testing.T) {
	tests := []struct {
		name    string
		origin  Position
		heading Direction
	}{
		{"top", Position{X: 2, Y: 0}, Up},
		{"left", Position{X: 0, Y: 2}, Left},
		{"bottom", Position{X: 2, Y: 4}, Down},
		{"right", Position{X: 4, Y: 2}, Right},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, s := newBoard(5, 5, tc.origin, tc.heading)
			if st := s.Update(g); st != StatusDied {
				t.Fatalf("Update() = %s, expected died", st)
			}
			if s.Head() != tc.origin {
				t.Errorf("dead snake moved to %+v", s.Head())
			}
			if g.CellAt(tc.origin) != CellSnake || g.Count(CellSnake) != 1 {
				t.Error("dying at the wall changed the grid")
			}
		})
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	tests := []struct {
		name   string
		apples int
	}{
		// The tail cell still counts even though it would be vacated.
		{"into tail", 3},
		{"into body", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, s := newBoard(10, 10, Position{X: 1, Y: 8}, Up)
			for i := 1; i <= tc.apples; i++ {
				g.Put(Position{X: 1, Y: 8 - i}, CellApple)
			}
			for i := 0; i <= tc.apples; i++ {
				s.Update(g)
			}
			if s.Len() != tc.apples+1 {
				t.Fatalf("Len() = %d, expected %d", s.Len(), tc.apples+1)
			}

			if st := steer(g, s, Right, Down); st != StatusMoved {
				t.Fatalf("turning should not kill the snake, got %s", st)
			}
			if st := steer(g, s, Left); st != StatusDied {
				t.Fatalf("Update() into own body = %s, expected died", st)
			}
		})
	}
}

func TestSnakeDeathIsTerminal(t *testing.T) {
	g, s := newBoard(5, 5, Position{X: 0, Y: 0}, Up)
	if st := s.Update(g); st != StatusDied {
		t.Fatalf("Update() = %s, expected died", st)
	}
	before := g.Render()

	for _, d := range []Direction{Right, Down, Right} {
		if st := steer(g, s, d); st != StatusDied {
			t.Fatalf("Update() after death = %s, expected died", st)
		}
	}
	if g.Render() != before {
		t.Error("updates after death changed the grid")
	}
	if s.Head() != (Position{}) {
		t.Errorf("dead snake moved to %+v", s.Head())
	}
}

func TestSnakeSetDirRejectsReversal(t *testing.T) {
	s := NewSnake(Position{X: 5, Y: 5})
	if s.Dir() != Up {
		t.Fatalf("NewSnake heading = %s, expected up", s.Dir())
	}

	steps := []struct {
		set      Direction
		expected Direction
	}{
		{Down, Up},
		{Up, Up},
		{Left, Left},
		{Right, Left},
		{Down, Down},
		{Up, Down},
		{Right, Right},
	}
	for _, step := range steps {
		s.SetDir(step.set)
		if s.Dir() != step.expected {
			t.Errorf("SetDir(%s): heading %s, expected %s", step.set, s.Dir(), step.expected)
		}
	}
}

func TestSnakeSegmentsIsCopy(t *testing.T) {
	s := NewSnake(Position{X: 3, Y: 3})
	segs := s.Segments()
	segs[0] = Position{X: 9, Y: 9}

	if s.Head() != (Position{X: 3, Y: 3}) {
		t.Errorf("mutating Segments() changed the snake: head %+v", s.Head())
	}
}
