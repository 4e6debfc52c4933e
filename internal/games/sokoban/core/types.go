// Package core provides the rules of the Sokoban puzzle: level parsing,
// move application, and the undo/redo move history.
// This package is UI-agnostic and deterministic.
package core

// Dir represents one of the four axis-aligned move directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dr, dc) offset for moving one step in this direction.
// Up decreases the row, Down increases it.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// DirFromDelta maps a (dr, dc) offset back to a direction.
// Returns false for anything other than a single axis-aligned step.
func DirFromDelta(dr, dc int) (Dir, bool) {
	switch {
	case dr == -1 && dc == 0:
		return DirUp, true
	case dr == 1 && dc == 0:
		return DirDown, true
	case dr == 0 && dc == -1:
		return DirLeft, true
	case dr == 0 && dc == 1:
		return DirRight, true
	default:
		return 0, false
	}
}

// Move describes a single successful player step.
// Push is true iff a box was displaced by the step.
type Move struct {
	Dir  Dir
	Push bool
}

// Delta returns the (dr, dc) offset of the move.
func (m Move) Delta() (dr, dc int) {
	return m.Dir.Delta()
}

// Char returns the move letter: u, d, l, r for plain moves and
// U, D, L, R for pushes.
func (m Move) Char() rune {
	var c rune
	switch m.Dir {
	case DirUp:
		c = 'u'
	case DirDown:
		c = 'd'
	case DirLeft:
		c = 'l'
	case DirRight:
		c = 'r'
	default:
		return '?'
	}
	if m.Push {
		c -= 'a' - 'A'
	}
	return c
}

// ParseMoveCode maps a move letter to its direction.
// Letter case is ignored; push and move codes replay identically.
func ParseMoveCode(r rune) (Dir, error) {
	switch r {
	case 'u', 'U':
		return DirUp, nil
	case 'd', 'D':
		return DirDown, nil
	case 'l', 'L':
		return DirLeft, nil
	case 'r', 'R':
		return DirRight, nil
	default:
		return 0, ErrInvalidReplayCode
	}
}
