package snake

// Pilot steers a snake towards the food without looking further ahead than
// the next cell. It is deterministic so recorded autopilot runs replay
// exactly.
type Pilot struct {
	avoidTunnels bool
}

// NewPilot returns a pilot that also refuses to enter one-cell-wide alleys
// when it has a choice.
func NewPilot() *Pilot {
	return &Pilot{avoidTunnels: true}
}

// Next picks the heading for the snake's next move.
//
// Preference order: close the vertical gap to the food, then the horizontal
// gap (swapped when the secondary axis is the current heading), then keep
// going, then any other legal move. The whole order is tried first with the
// alley rule and then without it. When nothing is safe the heading is kept.
func (p *Pilot) Next(grid *Grid, s *Snake, food Position) Direction {
	head := s.Head()
	heading := s.Dir()

	primary, secondary, hasSecondary := towards(head, food)
	if hasSecondary && secondary == heading {
		primary, secondary = secondary, primary
	}

	candidates := []Direction{primary}
	if hasSecondary {
		candidates = append(candidates, secondary)
	}
	candidates = append(candidates, heading, Left, Down, Up, Right)

	if p.avoidTunnels {
		for _, d := range candidates {
			if safeMove(grid, head, heading, d, true) {
				return d
			}
		}
	}
	for _, d := range candidates {
		if safeMove(grid, head, heading, d, false) {
			return d
		}
	}
	return heading
}

// towards returns the axis moves that reduce the distance from head to food,
// vertical first.
func towards(head, food Position) (primary, secondary Direction, hasSecondary bool) {
	dx, dy := food.X-head.X, food.Y-head.Y

	horizontal := Right
	if dx < 0 {
		horizontal = Left
	}
	vertical := Down
	if dy < 0 {
		vertical = Up
	}

	switch {
	case dy != 0 && dx != 0:
		return vertical, horizontal, true
	case dy != 0:
		return vertical, vertical, false
	default:
		return horizontal, horizontal, false
	}
}

func safeMove(grid *Grid, head Position, heading, d Direction, avoidTunnels bool) bool {
	if AreOpposite(heading, d) {
		return false
	}
	next := head.Move(d)
	if blocked(grid, next) {
		return false
	}
	if !avoidTunnels {
		return true
	}

	// An alley is a cell walled in on both sides across the direction of travel.
	if d == Up || d == Down {
		return !(blocked(grid, next.Move(Left)) && blocked(grid, next.Move(Right)))
	}
	return !(blocked(grid, next.Move(Up)) && blocked(grid, next.Move(Down)))
}

func blocked(grid *Grid, p Position) bool {
	return !grid.Contains(p) || grid.CellAt(p) == CellSnake
}
