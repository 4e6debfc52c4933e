package core

// Level is the mutable puzzle state.
// Walls and Goals are fixed once parsed; moves change only the player
// position and Boxes. All grids are Height rows of Width cells.
type Level struct {
	Height    int
	Width     int
	PlayerRow int
	PlayerCol int
	Walls     [][]bool
	Goals     [][]bool
	Boxes     [][]bool
}

// newGrid allocates a h x w boolean grid.
func newGrid(h, w int) [][]bool {
	g := make([][]bool, h)
	for r := range g {
		g[r] = make([]bool, w)
	}
	return g
}

// cloneGrid returns a deep copy of a boolean grid.
func cloneGrid(g [][]bool) [][]bool {
	out := make([][]bool, len(g))
	for r, row := range g {
		out[r] = make([]bool, len(row))
		copy(out[r], row)
	}
	return out
}

// Clone returns a deep, independent copy of the level.
func (l *Level) Clone() *Level {
	return &Level{
		Height:    l.Height,
		Width:     l.Width,
		PlayerRow: l.PlayerRow,
		PlayerCol: l.PlayerCol,
		Walls:     cloneGrid(l.Walls),
		Goals:     cloneGrid(l.Goals),
		Boxes:     cloneGrid(l.Boxes),
	}
}

// InBounds returns true if (r, c) lies inside the level grid.
func (l *Level) InBounds(r, c int) bool {
	return r >= 0 && r < l.Height && c >= 0 && c < l.Width
}

// Wall reports whether (r, c) is a wall.
// Cells outside the grid count as walls.
func (l *Level) Wall(r, c int) bool {
	if !l.InBounds(r, c) {
		return true
	}
	return l.Walls[r][c]
}

// Goal reports whether (r, c) is a goal. False outside the grid.
func (l *Level) Goal(r, c int) bool {
	return l.InBounds(r, c) && l.Goals[r][c]
}

// Box reports whether (r, c) holds a box. False outside the grid.
func (l *Level) Box(r, c int) bool {
	return l.InBounds(r, c) && l.Boxes[r][c]
}

// IsPlayer reports whether the player stands on (r, c).
func (l *Level) IsPlayer(r, c int) bool {
	return l.PlayerRow == r && l.PlayerCol == c
}

// SameState returns true if both levels have the player on the same cell
// and boxes on the same cells. Walls and goals are not compared.
func (l *Level) SameState(other *Level) bool {
	if other == nil {
		return false
	}
	if l.PlayerRow != other.PlayerRow || l.PlayerCol != other.PlayerCol {
		return false
	}
	if l.Height != other.Height || l.Width != other.Width {
		return false
	}
	for r := 0; r < l.Height; r++ {
		for c := 0; c < l.Width; c++ {
			if l.Boxes[r][c] != other.Boxes[r][c] {
				return false
			}
		}
	}
	return true
}

// count returns the number of cells for which pred is true.
func (l *Level) count(pred func(r, c int) bool) int {
	n := 0
	for r := 0; r < l.Height; r++ {
		for c := 0; c < l.Width; c++ {
			if pred(r, c) {
				n++
			}
		}
	}
	return n
}

// BoxCount returns the number of boxes.
func (l *Level) BoxCount() int {
	return l.count(l.Box)
}

// GoalCount returns the number of goals.
func (l *Level) GoalCount() int {
	return l.count(l.Goal)
}

// BoxesOnGoals returns the number of boxes sitting on goals.
func (l *Level) BoxesOnGoals() int {
	return l.count(func(r, c int) bool {
		return l.Box(r, c) && l.Goal(r, c)
	})
}

// Solved returns true if the level has goals and every goal holds a box.
func (l *Level) Solved() bool {
	goals := l.GoalCount()
	return goals > 0 && l.BoxesOnGoals() == goals
}
