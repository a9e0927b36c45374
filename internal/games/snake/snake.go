package snake

// Status is the outcome of the most recent Snake.Update.
type Status int

const (
	StatusMoved Status = iota
	StatusAte
	StatusDied
)

func (s Status) String() string {
	switch s {
	case StatusMoved:
		return "moved"
	case StatusAte:
		return "ate"
	case StatusDied:
		return "died"
	default:
		return "unknown"
	}
}

// Snake is an ordered chain of segments, head first.
//
// Growth lags eating by one tick: the update that lands on an apple reports
// StatusAte, and the following update keeps the cell the tail vacates as a
// new segment instead of clearing it.
type Snake struct {
	dir      Direction
	segments []Position
	status   Status
}

// NewSnake creates a one-segment snake at origin heading up.
func NewSnake(origin Position) *Snake {
	return NewSnakeHeading(origin, Up)
}

// NewSnakeHeading creates a one-segment snake at origin with the given heading.
func NewSnakeHeading(origin Position, heading Direction) *Snake {
	return &Snake{
		dir:      heading,
		segments: []Position{origin},
		status:   StatusMoved,
	}
}

// SetDir changes the heading unless d would reverse the snake into its own
// neck. Any other direction is accepted, including ones that will collide.
func (s *Snake) SetDir(d Direction) {
	if AreOpposite(s.dir, d) {
		return
	}
	s.dir = d
}

// Update advances the snake one cell and mirrors the move into grid.
// A dead snake stays dead and leaves the grid untouched.
func (s *Snake) Update(grid *Grid) Status {
	if s.status == StatusDied {
		return s.status
	}

	next := s.segments[0].Move(s.dir)
	if !grid.Contains(next) {
		s.status = StatusDied
		return s.status
	}

	// Checked before anything moves, so the cell the tail is about to
	// leave still counts as occupied.
	target := grid.CellAt(next)
	if target == CellSnake {
		s.status = StatusDied
		return s.status
	}

	// Each segment takes its predecessor's place; the last displaced
	// position is the freed tail.
	freed := next
	for i := range s.segments {
		s.segments[i], freed = freed, s.segments[i]
	}

	if s.status == StatusAte {
		s.segments = append(s.segments, freed)
	} else {
		grid.Put(freed, CellEmpty)
	}

	if target == CellApple {
		s.status = StatusAte
	} else {
		s.status = StatusMoved
	}

	grid.Put(next, CellSnake)

	return s.status
}

// Head returns the position of the first segment.
func (s *Snake) Head() Position {
	return s.segments[0]
}

// Segments returns a copy of the chain, head first.
func (s *Snake) Segments() []Position {
	out := make([]Position, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Dir returns the current heading.
func (s *Snake) Dir() Direction {
	return s.dir
}

// Status returns the outcome of the last update.
func (s *Snake) Status() Status {
	return s.status
}
