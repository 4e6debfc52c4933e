package core

// Apply attempts to move the player one step by (dr, dc).
//
// Rules, in order:
//  1. A wall (or the grid edge) in the target cell blocks the move.
//  2. A box in the target cell is pushed one cell further, unless that
//     cell is a wall, another box, or outside the grid.
//  3. The player steps into the target cell.
//
// The input level is never modified. On success the returned level is a
// fresh copy with at most one box moved; on failure it is nil.
func Apply(l *Level, dr, dc int) (*Level, Move, error) {
	dir, ok := DirFromDelta(dr, dc)
	if !ok {
		return nil, Move{}, ErrInvalidDirection
	}
	return ApplyDir(l, dir)
}

// ApplyDir is Apply for a typed direction.
func ApplyDir(l *Level, dir Dir) (*Level, Move, error) {
	dr, dc := dir.Delta()
	if dr == 0 && dc == 0 {
		return nil, Move{}, ErrInvalidDirection
	}

	r1, c1 := l.PlayerRow+dr, l.PlayerCol+dc
	if l.Wall(r1, c1) {
		return nil, Move{}, ErrBlocked
	}

	push := false
	if l.Box(r1, c1) {
		r2, c2 := r1+dr, c1+dc
		if l.Wall(r2, c2) || l.Box(r2, c2) {
			return nil, Move{}, ErrPushBlocked
		}
		push = true
	}

	// Every check has passed; only now touch a copy.
	next := l.Clone()
	if push {
		next.Boxes[r1][c1] = false
		next.Boxes[r1+dr][c1+dc] = true
	}
	next.PlayerRow = r1
	next.PlayerCol = c1

	return next, Move{Dir: dir, Push: push}, nil
}
