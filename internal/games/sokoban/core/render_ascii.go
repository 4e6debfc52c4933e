package core

import "strings"

// SymbolPlayerOnGoal marks the player standing on a goal in rendered
// output. Parse does not read it back.
const SymbolPlayerOnGoal = '+'

// Cell returns the level-text symbol for (r, c), or ' ' for floor.
func (l *Level) Cell(r, c int) rune {
	switch {
	case l.IsPlayer(r, c) && l.Goal(r, c):
		return SymbolPlayerOnGoal
	case l.IsPlayer(r, c):
		return SymbolPlayer
	case l.Wall(r, c):
		return SymbolWall
	case l.Box(r, c) && l.Goal(r, c):
		return SymbolBoxOnGoal
	case l.Box(r, c):
		return SymbolBox
	case l.Goal(r, c):
		return SymbolGoal
	default:
		return ' '
	}
}

// RenderASCII draws the level in level-text notation, one line per row.
// Trailing floor on each line is trimmed.
// Used for debugging, tests and the non-interactive CLI.
func RenderASCII(l *Level) string {
	var sb strings.Builder
	sb.Grow((l.Width + 1) * l.Height)
	for r := 0; r < l.Height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		var row strings.Builder
		for c := 0; c < l.Width; c++ {
			row.WriteRune(l.Cell(r, c))
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
	}
	return sb.String()
}
